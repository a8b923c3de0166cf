// Package upload persists profile images to disk and serves their public
// paths. Filenames are generated from the current time so concurrent uploads
// never collide.
package upload

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// URLPrefix is the public path prefix under which stored files are served.
const URLPrefix = "/uploads/"

type Store struct {
	dir string
	log *zap.Logger
}

// NewStore creates the uploads directory if absent.
func NewStore(dir string, log *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir, log: log}, nil
}

func (s *Store) Dir() string { return s.dir }

// Save writes the uploaded file under a generated name and returns its
// public path (/uploads/<name>). The original name is discarded except for
// the extension.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	name := strconv.FormatInt(time.Now().UnixNano(), 10) + ext

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		// leave no partial file behind
		os.Remove(dst.Name())
		return "", err
	}
	return URLPrefix + name, nil
}

// Remove deletes the file behind a public path. Best-effort: failures are
// logged, never returned, so cleanup can't fail the enclosing operation.
func (s *Store) Remove(publicPath string) {
	if publicPath == "" {
		return
	}
	name := filepath.Base(publicPath)
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		s.log.Warn("could not remove stored image",
			zap.String("path", publicPath), zap.Error(err))
	}
}

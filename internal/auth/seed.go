package auth

import (
	"context"
	"errors"

	"employee-admin/internal/models"
	"employee-admin/internal/store"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// EnsureAdmin creates the default admin identity if it does not exist yet.
// Runs once at startup, before the API accepts traffic.
func (s *Service) EnsureAdmin(ctx context.Context, username, password string) error {
	_, err := s.identities.FindByUsername(ctx, username)
	if err == nil {
		s.log.Info("default admin already exists", zap.String("username", username))
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.identities.Insert(ctx, &models.Admin{Username: username, PasswordHash: string(hash)}); err != nil {
		return err
	}
	s.log.Info("default admin created", zap.String("username", username))
	return nil
}

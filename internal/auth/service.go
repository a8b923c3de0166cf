// Package auth verifies admin credentials and issues signed, time-limited
// access tokens.
package auth

import (
	"context"
	"errors"

	"employee-admin/internal/store"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrUnknownUser means no identity exists for the username.
	ErrUnknownUser = errors.New("user not found")
	// ErrInvalidCredentials means the password did not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service struct {
	identities store.IdentityStore
	signer     *TokenSigner
	log        *zap.Logger
}

func NewService(identities store.IdentityStore, signer *TokenSigner, log *zap.Logger) *Service {
	return &Service{identities: identities, signer: signer, log: log}
}

// Login checks the credentials against the identity store and issues a token.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	admin, err := s.identities.FindByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return "", ErrUnknownUser
	}
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.signer.Issue(admin.ID)
}

package auth_test

import (
	"testing"
	"time"

	"employee-admin/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	signer := auth.NewTokenSigner("test-secret", time.Hour)

	token, err := signer.Issue("admin-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := signer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.ID)
	assert.Equal(t, auth.RoleAdmin, claims.Role)
}

func TestTokenExpired(t *testing.T) {
	signer := auth.NewTokenSigner("test-secret", -time.Minute)

	token, err := signer.Issue("admin-1")
	require.NoError(t, err)

	_, err = signer.Verify(token)
	assert.Error(t, err)
}

func TestTokenWrongSecret(t *testing.T) {
	signer := auth.NewTokenSigner("test-secret", time.Hour)
	other := auth.NewTokenSigner("another-secret", time.Hour)

	token, err := signer.Issue("admin-1")
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestTokenGarbage(t *testing.T) {
	signer := auth.NewTokenSigner("test-secret", time.Hour)

	_, err := signer.Verify("not.a.token")
	assert.Error(t, err)
}

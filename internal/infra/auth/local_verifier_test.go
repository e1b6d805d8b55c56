package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestNewLocalVerifier_RequiresSecret(t *testing.T) {
	_, err := NewLocalVerifier("")
	assert.Error(t, err)
}

func TestLocalVerifier_VerifyToken(t *testing.T) {
	verifier, err := NewLocalVerifier("test-secret")
	require.NoError(t, err)

	signed := signTestToken(t, "test-secret", jwt.MapClaims{
		"sub":   "uid-1",
		"email": "asha@example.com",
		"name":  "Asha",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	identity, err := verifier.VerifyToken(context.Background(), signed)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", identity.UID)
	assert.Equal(t, "asha@example.com", identity.Email)
	assert.Equal(t, "Asha", identity.Name)
}

func TestLocalVerifier_VerifyToken_WrongSecret(t *testing.T) {
	verifier, err := NewLocalVerifier("test-secret")
	require.NoError(t, err)

	signed := signTestToken(t, "other-secret", jwt.MapClaims{
		"sub": "uid-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	identity, err := verifier.VerifyToken(context.Background(), signed)
	assert.Error(t, err)
	assert.Nil(t, identity)
}

func TestLocalVerifier_VerifyToken_Expired(t *testing.T) {
	verifier, err := NewLocalVerifier("test-secret")
	require.NoError(t, err)

	signed := signTestToken(t, "test-secret", jwt.MapClaims{
		"sub": "uid-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	identity, err := verifier.VerifyToken(context.Background(), signed)
	assert.Error(t, err)
	assert.Nil(t, identity)
}

func TestLocalVerifier_VerifyToken_MissingSubject(t *testing.T) {
	verifier, err := NewLocalVerifier("test-secret")
	require.NoError(t, err)

	signed := signTestToken(t, "test-secret", jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	identity, err := verifier.VerifyToken(context.Background(), signed)
	assert.Error(t, err)
	assert.Nil(t, identity)
}

package auth

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
)

// localVerifier validates HS256-signed JWTs against a shared secret. It
// stands in for Firebase in development and tests, where minting real ID
// tokens is impractical.
type localVerifier struct {
	secret string
}

// NewLocalVerifier creates a token verifier for locally signed tokens
func NewLocalVerifier(secret string) (service.TokenVerifier, error) {
	if secret == "" {
		return nil, errors.New("local auth secret must be provided")
	}

	return &localVerifier{secret: secret}, nil
}

// VerifyToken validates the token signature and extracts the caller's identity
func (v *localVerifier) VerifyToken(ctx context.Context, tokenString string) (*entity.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(v.secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}

	uid, ok := claims["sub"].(string)
	if !ok || uid == "" {
		return nil, errors.New("token missing subject")
	}

	identity := &entity.Identity{UID: uid}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		identity.Name = name
	}

	return identity, nil
}

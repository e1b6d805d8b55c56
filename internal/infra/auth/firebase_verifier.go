// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"fmt"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// firebaseVerifier validates Firebase Authentication ID tokens. Sign-in and
// registration happen client-side against Firebase; the backend only checks
// the resulting ID token.
type firebaseVerifier struct {
	client *firebaseauth.Client
}

// NewFirebaseVerifier creates a token verifier backed by Firebase Authentication
func NewFirebaseVerifier(ctx context.Context, credentialsPath string) (service.TokenVerifier, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get auth client: %w", err)
	}

	return &firebaseVerifier{client: client}, nil
}

// VerifyToken validates the ID token and extracts the caller's identity
func (v *firebaseVerifier) VerifyToken(ctx context.Context, token string) (*entity.Identity, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to verify ID token: %w", err)
	}

	identity := &entity.Identity{UID: decoded.UID}
	if email, ok := decoded.Claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := decoded.Claims["name"].(string); ok {
		identity.Name = name
	}

	return identity, nil
}

package service

import (
	"context"

	"bazaar/internal/domain/entity"
)

// TokenVerifier validates a bearer token issued by the hosted auth service
// and resolves it to a user identity. Sign-in itself happens on the client;
// this service only ever consumes the resulting tokens.
type TokenVerifier interface {
	// VerifyToken checks the token's signature and expiry and returns the
	// identity it carries.
	VerifyToken(ctx context.Context, token string) (*entity.Identity, error)
}

// Package middleware contains middleware specific to the storefront API.
package middleware

import (
	"strings"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Context keys set by the auth middleware for handlers to read.
const (
	keyUserID   = "userID"
	keyIdentity = "identity"
)

// AuthMiddleware validates bearer tokens and exposes the caller's identity
// to handlers. Sign-in happens client-side against the hosted auth provider;
// the API only ever sees the resulting token.
type AuthMiddleware struct {
	verifier service.TokenVerifier
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate is the core middleware function that validates the bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return errors.WithStack(domainerrors.ErrAuthRequired)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return errors.WithStack(domainerrors.ErrTokenInvalid.WithDetails("authorization must use the Bearer scheme"))
		}

		identity, err := m.verifier.VerifyToken(c.Request().Context(), tokenString)
		if err != nil {
			return errors.WithStack(domainerrors.ErrTokenInvalid)
		}

		c.Set(keyUserID, identity.UID)
		c.Set(keyIdentity, identity)

		return next(c)
	}
}

// GetUserID extracts the authenticated user's UID from echo.Context.
func GetUserID(c echo.Context) (string, bool) {
	userID, ok := c.Get(keyUserID).(string)
	if !ok || userID == "" {
		return "", false
	}

	return userID, true
}

// GetIdentity extracts the full authenticated identity from echo.Context.
func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(keyIdentity).(*entity.Identity)
	if !ok || identity == nil {
		return nil, false
	}

	return identity, true
}

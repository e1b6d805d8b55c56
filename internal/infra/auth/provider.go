package auth

import (
	"context"
	"log/slog"

	"bazaar/config"
	"bazaar/internal/domain/constants"
	"bazaar/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// VerifierParams holds dependencies for TokenVerifier, injected by Fx
type VerifierParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewTokenVerifier creates a TokenVerifier based on configuration
func NewTokenVerifier(params VerifierParams) (service.TokenVerifier, error) {
	cfg := params.Config.Auth
	if cfg == nil {
		return nil, errors.New("auth is not configured")
	}

	switch cfg.Provider {
	case constants.AuthProviderFirebase:
		if params.Config.Firebase == nil || params.Config.Firebase.CredentialsPath == "" {
			return nil, errors.New("firebase credentials are required for firebase provider")
		}
		params.Logger.Info("Using Firebase token verifier")

		return NewFirebaseVerifier(params.Ctx, params.Config.Firebase.CredentialsPath)

	case constants.AuthProviderLocal:
		params.Logger.Info("Using local JWT token verifier")

		return NewLocalVerifier(cfg.LocalSecret)

	default:
		return nil, errors.Errorf("unknown auth provider: %s", cfg.Provider)
	}
}

// Module provides the auth FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewTokenVerifier),
)

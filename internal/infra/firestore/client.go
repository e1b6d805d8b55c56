// Package firestore contains the concrete implementation of the persistence
// layer using Cloud Firestore.
package firestore

import (
	"context"
	"log/slog"

	"bazaar/config"
	"bazaar/internal/errors"

	"cloud.google.com/go/firestore"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Collection names in the document store.
const (
	collectionProducts         = "products"
	collectionCarts            = "carts"
	collectionCartItems        = "items"
	collectionOrders           = "orders"
	collectionUsers            = "users"
	collectionCheckoutAttempts = "checkout_attempts"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New creates the Firestore client
func New(params Params) (*firestore.Client, error) {
	cfg := params.Config.Firestore
	if cfg == nil || cfg.ProjectID == "" {
		return nil, errors.New("firestore project ID must be configured")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	client, err := firestore.NewClient(params.Ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Logger.Info("Firestore client initialized",
		slog.String("project_id", cfg.ProjectID),
	)

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

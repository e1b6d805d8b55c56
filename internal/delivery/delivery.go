// Package delivery defines the contract shared by all serving surfaces.
package delivery

import "context"

// Delivery is a long-running serving surface (HTTP API, worker endpoint).
// Serve blocks until the server stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}

package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"
)

// Domain-specific errors for profile persistence.
var (
	// ErrProfileNotFound is returned when a user profile is not found.
	ErrProfileNotFound = errors.New("profile not found")
)

// ProfileRepository defines the interface for account metadata documents.
type ProfileRepository interface {
	// FindProfileByUserID retrieves a profile by the owning auth UID.
	FindProfileByUserID(ctx context.Context, userID string) (*entity.UserProfile, error)

	// CreateProfile writes a new profile document keyed by the auth UID.
	CreateProfile(ctx context.Context, profile *entity.UserProfile) error

	// UpdateProfile updates the mutable profile fields.
	UpdateProfile(ctx context.Context, profile *entity.UserProfile) error

	// DeleteProfile removes the profile document.
	DeleteProfile(ctx context.Context, userID string) error
}

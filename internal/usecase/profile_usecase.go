package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// ProfileInput carries the mutable profile fields.
type ProfileInput struct {
	Name     string
	Email    string
	Phone    string
	Location string
}

// ProfileUsecase defines the account metadata use cases.
type ProfileUsecase interface {
	// GetProfile retrieves the user's profile, provisioning an empty one
	// from the auth identity on first access.
	GetProfile(ctx context.Context, identity *entity.Identity) (*entity.UserProfile, error)

	// UpdateProfile overwrites the mutable profile fields.
	UpdateProfile(ctx context.Context, userID string, input *ProfileInput) (*entity.UserProfile, error)

	// DeleteProfile removes the user's profile document.
	DeleteProfile(ctx context.Context, userID string) error
}

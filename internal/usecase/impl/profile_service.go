package impl

import (
	"context"
	"log/slog"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type profileService struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	Logger      *slog.Logger
}

// NewProfileService creates a new profile service instance
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: params.ProfileRepo,
		logger:      params.Logger,
	}
}

// GetProfile retrieves the caller's profile. A first-time caller gets a
// profile provisioned from the auth identity, so the account page always
// has a document to render.
func (s *profileService) GetProfile(ctx context.Context, identity *entity.Identity) (*entity.UserProfile, error) {
	profile, err := s.profileRepo.FindProfileByUserID(ctx, identity.UID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to find profile")
	}

	profile = &entity.UserProfile{
		UserID:   identity.UID,
		Name:     identity.Name,
		Email:    identity.Email,
		JoinedAt: time.Now(),
	}
	if err := s.profileRepo.CreateProfile(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to provision profile")
	}

	s.logger.Info("Provisioned profile on first access",
		slog.String("user_id", identity.UID),
	)

	return profile, nil
}

// UpdateProfile overwrites the mutable profile fields
func (s *profileService) UpdateProfile(ctx context.Context, userID string, input *usecase.ProfileInput) (*entity.UserProfile, error) {
	profile, err := s.profileRepo.FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "profile not found")
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	profile.Name = input.Name
	profile.Email = input.Email
	profile.Phone = input.Phone
	profile.Location = input.Location

	if err := s.profileRepo.UpdateProfile(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return profile, nil
}

// DeleteProfile removes the caller's profile document
func (s *profileService) DeleteProfile(ctx context.Context, userID string) error {
	if err := s.profileRepo.DeleteProfile(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to delete profile")
	}

	s.logger.Info("Profile deleted", slog.String("user_id", userID))

	return nil
}

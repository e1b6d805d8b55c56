package firestore

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/firestore/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	client *firestore.Client
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(client *firestore.Client) repository.ProfileRepository {
	return &profileRepository{
		client: client,
	}
}

func (repo *profileRepository) profileRef(userID string) *firestore.DocumentRef {
	return repo.client.Collection(collectionUsers).Doc(userID)
}

// FindProfileByUserID retrieves a profile by the owning auth UID.
func (repo *profileRepository) FindProfileByUserID(ctx context.Context, userID string) (*entity.UserProfile, error) {
	snapshot, err := repo.profileRef(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrProfileNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to find profile")
	}

	var profileM model.ProfileModel
	if err := snapshot.DataTo(&profileM); err != nil {
		return nil, errors.Wrap(err, "failed to decode profile document")
	}

	return model.ToProfileDomain(snapshot.Ref.ID, &profileM), nil
}

// CreateProfile writes a new profile document keyed by the auth UID.
// Create fails if the document already exists, so concurrent first accesses
// cannot silently overwrite each other.
func (repo *profileRepository) CreateProfile(ctx context.Context, profile *entity.UserProfile) error {
	profileM := model.FromProfileDomain(profile)

	if _, err := repo.profileRef(profile.UserID).Create(ctx, profileM); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to create profile")
	}

	return nil
}

// UpdateProfile updates the mutable profile fields. JoinedAt is not touched.
func (repo *profileRepository) UpdateProfile(ctx context.Context, profile *entity.UserProfile) error {
	_, err := repo.profileRef(profile.UserID).Update(ctx, []firestore.Update{
		{Path: "name", Value: profile.Name},
		{Path: "email", Value: profile.Email},
		{Path: "phone", Value: profile.Phone},
		{Path: "location", Value: profile.Location},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrProfileNotFound
		}

		return domainerrors.NewStoreExecuteError(err, "failed to update profile")
	}

	return nil
}

// DeleteProfile removes the profile document.
func (repo *profileRepository) DeleteProfile(ctx context.Context, userID string) error {
	if _, err := repo.profileRef(userID).Delete(ctx); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to delete profile")
	}

	return nil
}

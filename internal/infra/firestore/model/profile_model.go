package model

import (
	"time"

	"bazaar/internal/domain/entity"
)

// ProfileModel is the Firestore-specific struct for the 'users' collection.
// The document ID is the auth UID.
type ProfileModel struct {
	Name     string    `firestore:"name"`
	Email    string    `firestore:"email"`
	Phone    string    `firestore:"phone"`
	Location string    `firestore:"location"`
	JoinedAt time.Time `firestore:"joinedAt"`
}

// FromProfileDomain converts a domain profile to its document form.
func FromProfileDomain(profile *entity.UserProfile) *ProfileModel {
	return &ProfileModel{
		Name:     profile.Name,
		Email:    profile.Email,
		Phone:    profile.Phone,
		Location: profile.Location,
		JoinedAt: profile.JoinedAt,
	}
}

// ToProfileDomain converts a stored profile document to the domain entity.
func ToProfileDomain(userID string, m *ProfileModel) *entity.UserProfile {
	return &entity.UserProfile{
		UserID:   userID,
		Name:     m.Name,
		Email:    m.Email,
		Phone:    m.Phone,
		Location: m.Location,
		JoinedAt: m.JoinedAt,
	}
}

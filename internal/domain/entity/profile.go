package entity

import "time"

// UserProfile is account metadata kept separately from the auth identity.
// The order lifecycle never reads it; only the account/settings surface does.
type UserProfile struct {
	UserID   string    `json:"user_id"`   // Auth UID, also the document ID.
	Name     string    `json:"name"`      // Display name.
	Email    string    `json:"email"`     // Contact email.
	Phone    string    `json:"phone"`     // Contact phone, optional.
	Location string    `json:"location"`  // Free-form location, optional.
	JoinedAt time.Time `json:"joined_at"` // When the profile was first provisioned.
}

package entity

// Identity is the signed-in user as reported by the auth service.
// It is passed explicitly into every use case call; there is no ambient
// session singleton.
type Identity struct {
	UID   string `json:"uid"`   // Stable user identifier from the auth provider.
	Email string `json:"email"` // Verified email, may be empty for some providers.
	Name  string `json:"name"`  // Display name, may be empty.
}

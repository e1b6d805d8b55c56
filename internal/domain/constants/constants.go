// Package constants holds shared configuration constants.
package constants

const (
	// EnvDevelop is the development environment name.
	EnvDevelop = "develop"
	// EnvProduction is the production environment name.
	EnvProduction = "production"
)

const (
	// PubSubProviderLocal publishes events to a local HTTP endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

const (
	// AuthProviderFirebase verifies bearer tokens against Firebase Auth.
	AuthProviderFirebase = "firebase"
	// AuthProviderLocal verifies HS256 tokens with a shared secret,
	// for development and tests only.
	AuthProviderLocal = "local"
)

// Package constants holds values shared across layers.
package constants

// Environment names
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider names
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Firestore collection names
const (
	CollectionUsers             = "users"
	CollectionSubscriptionPlans = "subscriptionPlans"
	CollectionSessions          = "sessions"
	CollectionBookings          = "bookings"
	CollectionActivities        = "activities"
	CollectionContracts         = "contracts"
	CollectionTutorials         = "tutorials"
	CollectionVideoMetadata     = "videoMetadata"
	CollectionAccessLogs        = "access_logs"
	CollectionCreditAdjustments = "creditAdjustments"
)

// MaxBatchWrites is the Firestore limit on writes in a single batch commit.
const MaxBatchWrites = 500

// HeaderAdminID carries the acting admin for clients that cannot send an ID token.
const HeaderAdminID = "X-Admin-Id"

// SystemActor is recorded when no acting admin is known.
const SystemActor = "system"

// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider identifiers used in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Payment method identifiers accepted by the wallet ledger.
const (
	PaymentMethodWallet = "wallet"
	PaymentMethodOnline = "online"
)

package models

// ExpirationStatus classifies a completion relative to a reference date.
type ExpirationStatus string

// Expiration statuses
const (
	StatusExpired     ExpirationStatus = "expired"
	StatusExpiresSoon ExpirationStatus = "expires soon"
)

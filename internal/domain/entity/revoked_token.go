package entity

import "time"

// RevokedToken records a bearer token invalidated before its natural expiry.
// Only a SHA-256 digest of the token is stored, never the raw bearer string.
// Entries are insert-only; an entry for an expired token is inert.
type RevokedToken struct {
	TokenDigest string    // Hex-encoded SHA-256 of the bearer token.
	RevokedAt   time.Time // When the token was blacklisted.
}

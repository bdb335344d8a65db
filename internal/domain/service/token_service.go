package service

import (
	"time"

	"ridehub/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionClaims is the verified content of a bearer token.
type SessionClaims struct {
	PrincipalID uuid.UUID
	Kind        entity.PrincipalKind
	IssuedAt    time.Time
	ExpiresAt   time.Time
}

// TokenService defines the interface for minting and validating the signed
// bearer tokens that carry a session. The token binds the principal id AND
// its kind, so a rider token can never pass a driver guard.
type TokenService interface {
	// Issue creates a signed token for a principal, valid for SessionTTL.
	Issue(principalID uuid.UUID, kind entity.PrincipalKind) (string, error)

	// Validate checks signature and expiry of a token string. Expired,
	// tampered and malformed tokens all fail with the same error; callers
	// cannot tell the failure modes apart.
	Validate(tokenString string) (*SessionClaims, error)

	// Digest returns the stable digest of a token used as the revocation
	// ledger key. Raw bearer strings are never persisted.
	Digest(tokenString string) string

	// SessionTTL returns the validity window of issued tokens.
	SessionTTL() time.Duration
}

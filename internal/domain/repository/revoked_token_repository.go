package repository

import (
	"context"
	"time"

	"ridehub/internal/domain/entity"
)

// RevokedTokenRepository is the revocation ledger: a blacklist of bearer
// token digests recorded at logout. The ledger is the sole owner of
// RevokedToken records; nothing else creates or mutates them.
type RevokedTokenRepository interface {
	// Revoke records a token digest. Revoking an already-revoked digest
	// succeeds silently.
	Revoke(ctx context.Context, token *entity.RevokedToken) error

	// IsRevoked reports whether a token digest is on the ledger. The access
	// guard consults this before any signature verification.
	IsRevoked(ctx context.Context, tokenDigest string) (bool, error)

	// DeleteExpired removes entries older than the given cutoff. Entries for
	// expired tokens are inert, so this exists purely as a compaction hook.
	DeleteExpired(ctx context.Context, before time.Time) error
}

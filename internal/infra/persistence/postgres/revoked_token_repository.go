package postgres

import (
	"context"
	"time"

	"ridehub/internal/domain/entity"
	domainerrors "ridehub/internal/domain/errors"
	"ridehub/internal/domain/repository"
	"ridehub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// revokedTokenRepository implements the domain.RevokedTokenRepository
// interface. The table is the logout ledger: a digest present in it means
// the session token must be rejected regardless of its signature.
type revokedTokenRepository struct {
	db *gorm.DB
}

// NewRevokedTokenRepository is the constructor for revokedTokenRepository.
func NewRevokedTokenRepository(db *gorm.DB) repository.RevokedTokenRepository {
	return &revokedTokenRepository{db: db}
}

// Revoke records a token digest in the ledger. Revoking the same digest
// twice is a no-op thanks to the ON CONFLICT clause, which keeps logout
// idempotent under retries.
func (repo *revokedTokenRepository) Revoke(ctx context.Context, token *entity.RevokedToken) error {
	tokenM := fromRevokedTokenDomain(token)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(tokenM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record revoked token")
	}

	return nil
}

// IsRevoked reports whether a token digest is present in the ledger. The
// check pins to the primary node: a logout followed immediately by a
// request must see the revocation.
func (repo *revokedTokenRepository) IsRevoked(ctx context.Context, tokenDigest string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.RevokedTokenModel{}).
		Where("token_digest = ?", tokenDigest).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check revoked token")
	}

	return count > 0, nil
}

// DeleteExpired removes ledger rows recorded before the given cutoff.
// Once a token's own expiry has passed the signature check rejects it
// anyway, so rows older than the session TTL are dead weight.
func (repo *revokedTokenRepository) DeleteExpired(ctx context.Context, before time.Time) error {
	if err := repo.db.WithContext(ctx).
		Where("revoked_at < ?", before).
		Delete(&model.RevokedTokenModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to prune revoked tokens")
	}

	return nil
}

// --- Mapper Functions ---

func fromRevokedTokenDomain(data *entity.RevokedToken) *model.RevokedTokenModel {
	if data == nil {
		return nil
	}

	return &model.RevokedTokenModel{
		TokenDigest: data.TokenDigest,
		RevokedAt:   data.RevokedAt,
	}
}

package model

import "time"

// RevokedTokenModel mirrors the 'revoked_tokens' table, the logout
// blacklist. Rows are insert-only; the primary key on the digest makes
// repeated revocations a no-op.
type RevokedTokenModel struct {
	TokenDigest string    `gorm:"type:char(64);primary_key"`
	RevokedAt   time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (RevokedTokenModel) TableName() string {
	return "revoked_tokens"
}

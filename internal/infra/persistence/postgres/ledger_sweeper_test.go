package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	mockRepo "ridehub/internal/mocks/repository"
	mockSvc "ridehub/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSweepLedgerOnce(t *testing.T) {
	repo := mockRepo.NewMockRevokedTokenRepository(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokenSvc.EXPECT().SessionTTL().Return(24 * time.Hour)
	repo.EXPECT().
		DeleteExpired(mock.Anything, mock.AnythingOfType("time.Time")).
		Run(func(ctx context.Context, before time.Time) {
			// The cutoff trails now by exactly one session TTL: anything
			// older belongs to a token that already expired on its own.
			assert.WithinDuration(t, time.Now().Add(-24*time.Hour), before, time.Minute)
		}).
		Return(nil)

	sweepLedgerOnce(context.Background(), repo, tokenSvc, logger)
}

func TestSweepLedgerOnce_DeleteFailureIsSwallowed(t *testing.T) {
	repo := mockRepo.NewMockRevokedTokenRepository(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokenSvc.EXPECT().SessionTTL().Return(24 * time.Hour)
	repo.EXPECT().
		DeleteExpired(mock.Anything, mock.AnythingOfType("time.Time")).
		Return(errors.New("database unavailable"))

	// Compaction is best-effort; a failed sweep must not panic or surface.
	sweepLedgerOnce(context.Background(), repo, tokenSvc, logger)
}

package postgres

import (
	"context"
	"log/slog"
	"time"

	"ridehub/internal/domain/repository"
	"ridehub/internal/domain/service"

	"go.uber.org/fx"
)

// sweepInterval is how often expired revocation entries are compacted.
const sweepInterval = time.Hour

// LedgerSweeperParams holds dependencies for the revocation ledger sweeper.
type LedgerSweeperParams struct {
	fx.In

	Lc           fx.Lifecycle
	RevokedRepo  repository.RevokedTokenRepository
	TokenService service.TokenService
	Logger       *slog.Logger
}

// StartLedgerSweeper runs a periodic compaction of the revocation ledger.
// An entry older than one session TTL belongs to a token that has expired
// on its own, so deleting it never revives a session.
func StartLedgerSweeper(params LedgerSweeperParams) {
	ctx, cancel := context.WithCancel(context.Background())

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go sweepLedger(ctx, params.RevokedRepo, params.TokenService, params.Logger)

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})
}

func sweepLedger(
	ctx context.Context,
	repo repository.RevokedTokenRepository,
	tokenSvc service.TokenService,
	logger *slog.Logger,
) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sweepLedgerOnce(ctx, repo, tokenSvc, logger)
		}
	}
}

func sweepLedgerOnce(
	ctx context.Context,
	repo repository.RevokedTokenRepository,
	tokenSvc service.TokenService,
	logger *slog.Logger,
) {
	cutoff := time.Now().Add(-tokenSvc.SessionTTL())

	if err := repo.DeleteExpired(ctx, cutoff); err != nil {
		logger.Warn("Failed to compact revocation ledger", slog.Any("error", err))

		return
	}

	logger.Debug("Compacted revocation ledger", slog.Time("cutoff", cutoff))
}

package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "ridehub/internal/delivery/context"
	"ridehub/internal/domain/entity"
	"ridehub/internal/domain/service"

	"github.com/google/uuid"
)

// publishAccountEvent emits a best-effort account event. Publishing failures
// are logged but never fail the account operation itself.
func publishAccountEvent(
	ctx context.Context,
	logger *slog.Logger,
	publisher service.EventPublisher,
	principalID uuid.UUID,
	kind entity.PrincipalKind,
	action string,
) {
	if publisher == nil {
		return
	}

	event := &service.AccountEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		PrincipalID: principalID,
		Kind:        kind,
		Action:      action,
		OccurredAt:  time.Now().UTC(),
	}

	if err := publisher.PublishAccountEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish account event",
			slog.String("action", action),
			slog.String("kind", kind.String()),
			slog.Any("error", err),
		)
	}
}

// normalizeEmail lowercases and trims the address so lookups and uniqueness
// are case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

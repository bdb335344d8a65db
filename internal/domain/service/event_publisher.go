package service

import (
	"context"
	"time"

	"ridehub/internal/domain/entity"

	"github.com/google/uuid"
)

// Account event actions published on the account lifecycle topic.
const (
	AccountEventRegistered = "registered"
	AccountEventLoggedIn   = "logged_in"
	AccountEventLoggedOut  = "logged_out"
)

// AccountEvent represents an account lifecycle event consumed by downstream
// services (dispatch, analytics). Publishing is fire-and-forget; failures are
// logged and never surfaced to the client.
type AccountEvent struct {
	RequestID   string               `json:"request_id,omitempty"` // For distributed tracing
	PrincipalID uuid.UUID            `json:"principal_id"`
	Kind        entity.PrincipalKind `json:"kind"`   // "rider" or "driver"
	Action      string               `json:"action"` // registered, logged_in, logged_out
	OccurredAt  time.Time            `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAccountEvent publishes an account lifecycle event for async processing
	PublishAccountEvent(ctx context.Context, event *AccountEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Weavr event types this service understands. Unknown types are persisted,
// logged and ignored, keeping forward compatibility with new remote types.
const (
	EventTypeAccountBalanceUpdated = "managed_account.balance.updated"
	EventTypeAccountStateChanged   = "managed_account.state.changed"
	EventTypeTransferStateChanged  = "transfer.state.changed"
	EventTypeCardStateChanged      = "card.state.changed"
)

type WebhookEventStatus string

const (
	WebhookEventReceived  WebhookEventStatus = "received"
	WebhookEventProcessed WebhookEventStatus = "processed"
	WebhookEventFailed    WebhookEventStatus = "failed"
)

// WebhookEvent is the persisted copy of an inbound provider notification.
// RemoteEventID is the idempotency key: a unique constraint on it makes
// redelivered events no-ops.
type WebhookEvent struct {
	ID            uint64
	RemoteEventID string
	Type          string
	Payload       json.RawMessage
	Status        WebhookEventStatus
	Error         *string

	ReceivedAt  time.Time
	ProcessedAt *time.Time
}

// InboundWebhookEvent is the provider event envelope as delivered on the
// webhook ingress.
type InboundWebhookEvent struct {
	ID   string          `json:"id" validate:"required"`
	Type string          `json:"type" validate:"required"`
	Data json.RawMessage `json:"data" validate:"required"`
}

// WebhookProcessOutcome reports what happened to one inbound event.
type WebhookProcessOutcome string

const (
	WebhookOutcomeProcessed WebhookProcessOutcome = "processed"
	WebhookOutcomeDuplicate WebhookProcessOutcome = "duplicate"
	WebhookOutcomeIgnored   WebhookProcessOutcome = "ignored"
	WebhookOutcomeFailed    WebhookProcessOutcome = "failed"
)

// BalanceUpdatedPayload is the data section of a balance.updated event.
// The id is the remote account id; the remote system only knows its own
// identifiers.
type BalanceUpdatedPayload struct {
	ID      string         `json:"id"`
	Balance WebhookBalance `json:"balance"`
}

type WebhookBalance struct {
	Available decimal.Decimal `json:"available"`
	Blocked   decimal.Decimal `json:"blocked"`
	Reserved  decimal.Decimal `json:"reserved"`
}

func (wb WebhookBalance) ToBalance() Balance {
	return Balance{
		Available: wb.Available,
		Blocked:   wb.Blocked,
		Reserved:  wb.Reserved,
	}
}

// StateChangedPayload is shared by account, transfer and card state
// change events.
type StateChangedPayload struct {
	ID    string `json:"id"`
	State string `json:"state"`
}

// WebhookEventResponse is the persisted event as rendered on the API.
type WebhookEventResponse struct {
	ID            uint64             `json:"id"`
	RemoteEventID string             `json:"remoteEventId"`
	Type          string             `json:"type"`
	Payload       json.RawMessage    `json:"payload"`
	Status        WebhookEventStatus `json:"status"`
	Error         *string            `json:"error,omitempty"`

	ReceivedAt  time.Time  `json:"receivedAt"`
	ProcessedAt *time.Time `json:"processedAt,omitempty"`
}

func (e WebhookEvent) ToResponse() WebhookEventResponse {
	return WebhookEventResponse{
		ID:            e.ID,
		RemoteEventID: e.RemoteEventID,
		Type:          e.Type,
		Payload:       e.Payload,
		Status:        e.Status,
		Error:         e.Error,
		ReceivedAt:    e.ReceivedAt,
		ProcessedAt:   e.ProcessedAt,
	}
}

package models

import (
	"time"
)

// Card shadows a remotely issued card. Cards live outside the ledger
// proper: only webhook-driven state changes keyed by remote id touch them.
type Card struct {
	ID        uint64
	AccountID *uint64
	RemoteID  *string
	State     CardState

	CreatedAt time.Time
	UpdatedAt time.Time
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChangeType names the trigger source of a balance mutation.
type ChangeType string

const (
	ChangeTypeAPIUpdate ChangeType = "api_update"
	ChangeTypeWeavrSync ChangeType = "weavr_sync"
)

// BalanceLog is an append-only audit entry, written synchronously with
// every balance mutation regardless of trigger source. Immutable once
// stored.
type BalanceLog struct {
	ID        uint64
	AccountID uint64

	Previous Balance
	New      Balance

	ChangeType ChangeType

	TransactionID       *uint64
	RemoteTransactionID *string
	Description         string

	CreatedAt time.Time
}

// ChangeAmount is the signed delta of the total balance.
func (bl BalanceLog) ChangeAmount() decimal.Decimal {
	return bl.New.Total().Sub(bl.Previous.Total())
}

type DoGetListBalanceLogRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

func (r DoGetListBalanceLogRequest) LimitOrDefault() int {
	if r.Limit <= 0 {
		return 50
	}
	return r.Limit
}

// BalanceLogResponse is the balance log entry as rendered on the API.
type BalanceLogResponse struct {
	ID        uint64 `json:"id"`
	AccountID uint64 `json:"accountId"`

	Previous     Balance         `json:"previous"`
	New          Balance         `json:"new"`
	ChangeAmount decimal.Decimal `json:"changeAmount"`
	ChangeType   ChangeType      `json:"changeType"`

	TransactionID       *uint64 `json:"transactionId,omitempty"`
	RemoteTransactionID *string `json:"remoteTransactionId,omitempty"`
	Description         string  `json:"description,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

func (bl BalanceLog) ToResponse() BalanceLogResponse {
	return BalanceLogResponse{
		ID:                  bl.ID,
		AccountID:           bl.AccountID,
		Previous:            bl.Previous,
		New:                 bl.New,
		ChangeAmount:        bl.ChangeAmount(),
		ChangeType:          bl.ChangeType,
		TransactionID:       bl.TransactionID,
		RemoteTransactionID: bl.RemoteTransactionID,
		Description:         bl.Description,
		CreatedAt:           bl.CreatedAt,
	}
}

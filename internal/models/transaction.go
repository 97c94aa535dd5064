package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a local ledger transaction. RemoteID is assigned exactly
// once, when the transaction has been synced to the remote system as a
// transfer, and is never reassigned afterwards.
type Transaction struct {
	ID        uint64
	AccountID uint64

	RemoteID *string

	// CounterpartyRemoteID is the destination managed account of the
	// remote transfer built from this transaction.
	CounterpartyRemoteID *string

	Amount      decimal.Decimal
	Currency    string
	Status      TransactionStatus
	Description string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t Transaction) HasRemoteID() bool {
	return t.RemoteID != nil && *t.RemoteID != ""
}

type CreateTransaction struct {
	AccountID            uint64          `json:"accountId" validate:"required"`
	CounterpartyRemoteID *string         `json:"counterpartyRemoteId"`
	Amount               decimal.Decimal `json:"amount" validate:"decimalNotZero"`
	Currency             string          `json:"currency" validate:"required,currency"`
	Description          string          `json:"description"`
}

type TransactionFilterOptions struct {
	AccountID uint64
	Status    []TransactionStatus
	Limit     int
	Offset    int
}

type DoGetListTransactionRequest struct {
	AccountID uint64 `query:"accountId"`
	// Status filters by one or more comma separated statuses.
	Status string `query:"status"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}

func (r DoGetListTransactionRequest) ToFilterOptions() TransactionFilterOptions {
	opts := TransactionFilterOptions{
		AccountID: r.AccountID,
		Limit:     r.Limit,
		Offset:    r.Offset,
	}
	for _, raw := range strings.Split(r.Status, ",") {
		if raw = strings.TrimSpace(raw); raw != "" {
			opts.Status = append(opts.Status, TransactionStatus(raw))
		}
	}
	return opts
}

// TransactionResponse is the transaction as rendered on the API.
type TransactionResponse struct {
	ID        uint64 `json:"id"`
	AccountID uint64 `json:"accountId"`

	RemoteID             *string `json:"remoteId,omitempty"`
	CounterpartyRemoteID *string `json:"counterpartyRemoteId,omitempty"`

	Amount      decimal.Decimal   `json:"amount"`
	Currency    string            `json:"currency"`
	Status      TransactionStatus `json:"status"`
	Description string            `json:"description,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (t Transaction) ToResponse() TransactionResponse {
	return TransactionResponse{
		ID:                   t.ID,
		AccountID:            t.AccountID,
		RemoteID:             t.RemoteID,
		CounterpartyRemoteID: t.CounterpartyRemoteID,
		Amount:               t.Amount,
		Currency:             t.Currency,
		Status:               t.Status,
		Description:          t.Description,
		CreatedAt:            t.CreatedAt,
		UpdatedAt:            t.UpdatedAt,
	}
}

package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Account is a ledger account shadowing a Weavr managed account. RemoteID
// is nil until creation has been synced to the remote system of record.
type Account struct {
	ID         uint64
	IdentityID *uint64
	Name       string
	Currency   string

	RemoteID *string
	IBAN     *string
	BIC      *string
	State    AccountState

	Balance Balance

	SyncStatus     SyncStatus
	LastSyncError  *string
	LastSyncedAt   *time.Time
	SyncAttempts   int
	ReviewRequired bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasRemoteID reports whether this account already exists remotely.
// Creation syncs check this before calling remote creation again, which
// keeps overlapping reconciliation sweeps from double-creating.
func (a Account) HasRemoteID() bool {
	return a.RemoteID != nil && *a.RemoteID != ""
}

func (a Account) HasIBAN() bool {
	return a.IBAN != nil && *a.IBAN != ""
}

type CreateAccount struct {
	IdentityID *uint64 `json:"identityId"`
	Name       string  `json:"name" validate:"required"`
	Currency   string  `json:"currency" validate:"required,currency"`
}

// AccountSyncedUpdate carries everything a successful remote creation or
// balance read writes back, applied in a single UPDATE statement.
type AccountSyncedUpdate struct {
	RemoteID string
	IBAN     *string
	BIC      *string
	Balance  Balance
	SyncedAt time.Time
}

type AccountFilterOptions struct {
	SyncStatus []SyncStatus
	Currency   string
	Limit      int
	Offset     int
}

type DoGetListAccountRequest struct {
	// SyncStatus filters by one or more comma separated statuses.
	SyncStatus string `query:"syncStatus"`
	Currency   string `query:"currency"`
	Limit      int    `query:"limit"`
	Offset     int    `query:"offset"`
}

func (r DoGetListAccountRequest) ToFilterOptions() AccountFilterOptions {
	opts := AccountFilterOptions{
		Currency: r.Currency,
		Limit:    r.Limit,
		Offset:   r.Offset,
	}
	for _, raw := range strings.Split(r.SyncStatus, ",") {
		if raw = strings.TrimSpace(raw); raw != "" {
			opts.SyncStatus = append(opts.SyncStatus, SyncStatus(raw))
		}
	}
	return opts
}

// AccountResponse is the account as rendered on the API.
type AccountResponse struct {
	ID         uint64  `json:"id"`
	IdentityID *uint64 `json:"identityId,omitempty"`
	Name       string  `json:"name"`
	Currency   string  `json:"currency"`

	RemoteID *string      `json:"remoteId,omitempty"`
	IBAN     *string      `json:"iban,omitempty"`
	BIC      *string      `json:"bic,omitempty"`
	State    AccountState `json:"state"`

	Balance      Balance         `json:"balance"`
	TotalBalance decimal.Decimal `json:"totalBalance"`

	SyncStatus     SyncStatus `json:"syncStatus"`
	LastSyncError  *string    `json:"lastSyncError,omitempty"`
	LastSyncedAt   *time.Time `json:"lastSyncedAt,omitempty"`
	SyncAttempts   int        `json:"syncAttempts"`
	ReviewRequired bool       `json:"reviewRequired"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a Account) ToResponse() AccountResponse {
	return AccountResponse{
		ID:             a.ID,
		IdentityID:     a.IdentityID,
		Name:           a.Name,
		Currency:       a.Currency,
		RemoteID:       a.RemoteID,
		IBAN:           a.IBAN,
		BIC:            a.BIC,
		State:          a.State,
		Balance:        a.Balance,
		TotalBalance:   a.Balance.Total(),
		SyncStatus:     a.SyncStatus,
		LastSyncError:  a.LastSyncError,
		LastSyncedAt:   a.LastSyncedAt,
		SyncAttempts:   a.SyncAttempts,
		ReviewRequired: a.ReviewRequired,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

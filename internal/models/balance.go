package models

import (
	"github.com/shopspring/decimal"
)

// Balance holds the three balance buckets of a ledger account. The total
// balance is never stored independently: it is always derived from the
// buckets through Total so there is exactly one canonical computation.
type Balance struct {
	Available decimal.Decimal `json:"available"`
	Blocked   decimal.Decimal `json:"blocked"`
	Reserved  decimal.Decimal `json:"reserved"`
}

func (b Balance) Total() decimal.Decimal {
	return b.Available.Add(b.Blocked).Add(b.Reserved)
}

func (b Balance) Equal(other Balance) bool {
	return b.Available.Equal(other.Available) &&
		b.Blocked.Equal(other.Blocked) &&
		b.Reserved.Equal(other.Reserved)
}

// BalanceLogsPayload is the kafka message for the balance-logs topic.
type BalanceLogsPayload struct {
	AccountID       uint64     `json:"accountId"`
	RemoteAccountID string     `json:"remoteAccountId,omitempty"`
	ChangeType      ChangeType `json:"changeType"`
	Before          Balance    `json:"before"`
	After           Balance    `json:"after"`
}

package models

import "strings"

// AccountState is the local account state vocabulary.
type AccountState string

const (
	AccountStateActive  AccountState = "active"
	AccountStateBlocked AccountState = "blocked"
	AccountStateClosed  AccountState = "closed"
	AccountStateUnknown AccountState = "unknown"
)

// MapRemoteAccountState translates the remote state vocabulary into the
// local one. Every known remote value has an explicit case; anything else
// resolves to unknown so an unexpected upstream value can never leave the
// ledger un-updatable.
func MapRemoteAccountState(remote string) AccountState {
	switch strings.ToUpper(remote) {
	case "ACTIVE":
		return AccountStateActive
	case "BLOCKED", "SUSPENDED":
		return AccountStateBlocked
	case "CLOSED", "DESTROYED":
		return AccountStateClosed
	default:
		return AccountStateUnknown
	}
}

// TransactionStatus is the local transaction state vocabulary.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusCancelled TransactionStatus = "cancelled"
	TransactionStatusUnknown   TransactionStatus = "unknown"
)

func MapRemoteTransferState(remote string) TransactionStatus {
	switch strings.ToUpper(remote) {
	case "INITIALISED", "SCHEDULED", "SUBMITTED", "APPROVED", "PENDING_CHALLENGE":
		return TransactionStatusPending
	case "COMPLETED":
		return TransactionStatusCompleted
	case "FAILED", "REJECTED", "RETURNED":
		return TransactionStatusFailed
	case "CANCELLED":
		return TransactionStatusCancelled
	default:
		return TransactionStatusUnknown
	}
}

// CardState is the local card state vocabulary.
type CardState string

const (
	CardStateActive    CardState = "active"
	CardStateFrozen    CardState = "frozen"
	CardStateBlocked   CardState = "blocked"
	CardStateDestroyed CardState = "destroyed"
	CardStateUnknown   CardState = "unknown"
)

func MapRemoteCardState(remote string) CardState {
	switch strings.ToUpper(remote) {
	case "ACTIVE":
		return CardStateActive
	case "FROZEN":
		return CardStateFrozen
	case "BLOCKED", "SUSPENDED":
		return CardStateBlocked
	case "DESTROYED":
		return CardStateDestroyed
	default:
		return CardStateUnknown
	}
}

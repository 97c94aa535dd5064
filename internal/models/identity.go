package models

import (
	"time"
)

type IdentityKind string

const (
	IdentityKindConsumer  IdentityKind = "consumer"
	IdentityKindCorporate IdentityKind = "corporate"
)

// Identity is a consumer or corporate owner record shadowing a Weavr
// identity. It carries the same sync metadata as Account.
type Identity struct {
	ID    uint64
	Kind  IdentityKind
	Name  string
	Email string

	RemoteID *string

	SyncStatus     SyncStatus
	LastSyncError  *string
	LastSyncedAt   *time.Time
	SyncAttempts   int
	ReviewRequired bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (i Identity) HasRemoteID() bool {
	return i.RemoteID != nil && *i.RemoteID != ""
}

type CreateIdentity struct {
	Kind  IdentityKind `json:"kind" validate:"required,oneof=consumer corporate"`
	Name  string       `json:"name" validate:"required"`
	Email string       `json:"email" validate:"required,email"`
}

// IdentityResponse is the identity as rendered on the API.
type IdentityResponse struct {
	ID    uint64       `json:"id"`
	Kind  IdentityKind `json:"kind"`
	Name  string       `json:"name"`
	Email string       `json:"email"`

	RemoteID *string `json:"remoteId,omitempty"`

	SyncStatus     SyncStatus `json:"syncStatus"`
	LastSyncError  *string    `json:"lastSyncError,omitempty"`
	LastSyncedAt   *time.Time `json:"lastSyncedAt,omitempty"`
	SyncAttempts   int        `json:"syncAttempts"`
	ReviewRequired bool       `json:"reviewRequired"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (i Identity) ToResponse() IdentityResponse {
	return IdentityResponse{
		ID:             i.ID,
		Kind:           i.Kind,
		Name:           i.Name,
		Email:          i.Email,
		RemoteID:       i.RemoteID,
		SyncStatus:     i.SyncStatus,
		LastSyncError:  i.LastSyncError,
		LastSyncedAt:   i.LastSyncedAt,
		SyncAttempts:   i.SyncAttempts,
		ReviewRequired: i.ReviewRequired,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
}

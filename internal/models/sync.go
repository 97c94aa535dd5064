package models

// SyncStatus tracks whether local state matches the remote system of record.
type SyncStatus string

const (
	SyncStatusPending     SyncStatus = "pending"
	SyncStatusSynced      SyncStatus = "synced"
	SyncStatusFailed      SyncStatus = "failed"
	SyncStatusPendingIBAN SyncStatus = "pending_iban"
	SyncStatusIBANFailed  SyncStatus = "iban_failed"
)

// SyncResult is the structured outcome of a single-entity sync operation.
// Sync operations never propagate errors past their own boundary: batch
// callers inspect the result and continue past individual failures.
type SyncResult struct {
	Success   bool
	RemoteID  string
	Err       error
	Retryable bool
}

func SyncResultOK(remoteID string) SyncResult {
	return SyncResult{Success: true, RemoteID: remoteID}
}

func SyncResultErr(err error, retryable bool) SyncResult {
	return SyncResult{Err: err, Retryable: retryable}
}

// SyncResultResponse is the API shape of a successful sync operation.
// Failed syncs are rendered through the regular error response instead.
type SyncResultResponse struct {
	Synced   bool   `json:"synced"`
	RemoteID string `json:"remoteId,omitempty"`
}

func (r SyncResult) ToResponse() SyncResultResponse {
	return SyncResultResponse{
		Synced:   r.Success,
		RemoteID: r.RemoteID,
	}
}

// SyncBatchReport summarizes one reconciliation sweep run.
type SyncBatchReport struct {
	Accounts   SyncBatchCounter `json:"accounts"`
	Identities SyncBatchCounter `json:"identities"`
}

type SyncBatchCounter struct {
	Attempted int `json:"attempted"`
	Synced    int `json:"synced"`
	Failed    int `json:"failed"`
}

func (c *SyncBatchCounter) Count(res SyncResult) {
	c.Attempted++
	if res.Success {
		c.Synced++
	} else {
		c.Failed++
	}
}

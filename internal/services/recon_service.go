package services

import (
	"context"

	"github.com/amberpay/go-weavr-sync/internal/common/xlog"
	"github.com/amberpay/go-weavr-sync/internal/models"
	"github.com/amberpay/go-weavr-sync/internal/monitoring"
	"github.com/amberpay/go-weavr-sync/internal/weavr"
)

type ReconService interface {
	RunSweep(ctx context.Context) (report models.SyncBatchReport, err error)
}

type recon service

var _ ReconService = (*recon)(nil)

// RunSweep retries every entity still waiting for a remote id, oldest
// first. Individual failures are counted and skipped, never aborting the
// batch. Entities flagged for review or past the attempt ceiling are not
// selected, so a permanently broken record cannot wedge the sweep.
func (rs *recon) RunSweep(ctx context.Context) (report models.SyncBatchReport, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	batchSize := rs.srv.conf.Recon.BatchSizeOrDefault()
	maxAttempts := rs.srv.conf.Recon.MaxSyncAttemptsOrDefault()

	identities, err := rs.srv.sqlRepo.GetIdentityRepository().GetPendingSync(ctx, batchSize, maxAttempts)
	if err != nil {
		err = checkDatabaseError(err)
		return
	}

	// Identities first: accounts reference them on the remote side.
	for _, ident := range identities {
		res := rs.srv.Identity.SyncCreation(ctx, weavr.Credentials{}, ident.ID)
		report.Identities.Count(res)
	}

	accounts, err := rs.srv.sqlRepo.GetAccountRepository().GetPendingSync(ctx, batchSize, maxAttempts)
	if err != nil {
		err = checkDatabaseError(err)
		return
	}

	for _, acc := range accounts {
		res := rs.srv.Account.SyncCreation(ctx, weavr.Credentials{}, acc.ID)
		report.Accounts.Count(res)
	}

	xlog.Info(ctx, "[SERVICE] reconciliation sweep finished",
		xlog.Int("identitiesAttempted", report.Identities.Attempted),
		xlog.Int("identitiesSynced", report.Identities.Synced),
		xlog.Int("identitiesFailed", report.Identities.Failed),
		xlog.Int("accountsAttempted", report.Accounts.Attempted),
		xlog.Int("accountsSynced", report.Accounts.Synced),
		xlog.Int("accountsFailed", report.Accounts.Failed))

	return
}

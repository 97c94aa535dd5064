package services

import (
	"context"
	"fmt"
	"time"

	"github.com/amberpay/go-weavr-sync/internal/common"
	"github.com/amberpay/go-weavr-sync/internal/common/xlog"
	"github.com/amberpay/go-weavr-sync/internal/models"
	"github.com/amberpay/go-weavr-sync/internal/monitoring"
	"github.com/amberpay/go-weavr-sync/internal/repositories"
	"github.com/amberpay/go-weavr-sync/internal/weavr"
)

func toBalance(b weavr.AccountBalances) models.Balance {
	return models.Balance{
		Available: b.Available,
		Blocked:   b.Blocked,
		Reserved:  b.Reserved,
	}
}

// SyncCreation pushes a local account that has no remote id yet to the
// remote system. Accounts that already carry a remote id return success
// without a remote call, which makes overlapping sweep runs safe.
func (as *account) SyncCreation(ctx context.Context, creds weavr.Credentials, accountID uint64) (res models.SyncResult) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(res.Err)) }()
	defer func() { as.srv.metrics.GetSyncPrometheus().Record("account", "create", syncOutcome(res)) }()

	creds = as.srv.credentials(creds)

	acc, err := as.srv.sqlRepo.GetAccountRepository().GetOneByID(ctx, accountID)
	if err != nil {
		return models.SyncResultErr(checkDatabaseError(err, models.ErrKeyAccountNotFound), false)
	}

	if acc.HasRemoteID() {
		return models.SyncResultOK(*acc.RemoteID)
	}

	resp, err := as.srv.weavr.CreateManagedAccount(ctx, creds, weavr.CreateManagedAccountRequest{
		ProfileID:    as.srv.conf.Weavr.ProfileID,
		FriendlyName: acc.Name,
		Currency:     acc.Currency,
		Tag:          fmt.Sprintf("account-%d", acc.ID),
	})
	if err != nil {
		return as.markCreationFailed(ctx, acc, models.SyncStatusFailed, err)
	}

	upd := models.AccountSyncedUpdate{
		RemoteID: resp.ID,
		Balance:  toBalance(resp.Balances),
		SyncedAt: time.Now(),
	}
	if resp.BankAccountDetails != nil {
		upd.IBAN = &resp.BankAccountDetails.IBAN
		upd.BIC = &resp.BankAccountDetails.BIC
	}

	err = as.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		if err := r.GetAccountRepository().MarkSynced(ctx, acc.ID, upd); err != nil {
			return err
		}
		if acc.Balance.Equal(upd.Balance) {
			return nil
		}
		_, err := r.GetBalanceLogRepository().Create(ctx, models.BalanceLog{
			AccountID:   acc.ID,
			Previous:    acc.Balance,
			New:         upd.Balance,
			ChangeType:  models.ChangeTypeWeavrSync,
			Description: "account creation sync",
		})
		return err
	})
	if err != nil {
		xlog.Error(ctx, "[SERVICE] remote account created but local writeback failed",
			xlog.Uint64("accountId", acc.ID), xlog.String("remoteId", resp.ID), xlog.Err(err))
		return models.SyncResultErr(checkDatabaseError(err), true)
	}

	if !acc.Balance.Equal(upd.Balance) {
		as.srv.publishBalanceLog(ctx, models.BalanceLogsPayload{
			AccountID:       acc.ID,
			RemoteAccountID: resp.ID,
			ChangeType:      models.ChangeTypeWeavrSync,
			Before:          acc.Balance,
			After:           upd.Balance,
		})
	}

	return models.SyncResultOK(resp.ID)
}

// SyncBalanceUpdate overwrites the local balance buckets from an
// authoritative remote read. The remote copy always wins; local arithmetic
// never feeds the stored balance.
func (as *account) SyncBalanceUpdate(ctx context.Context, creds weavr.Credentials, accountID uint64) (res models.SyncResult) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(res.Err)) }()
	defer func() { as.srv.metrics.GetSyncPrometheus().Record("account", "balance_update", syncOutcome(res)) }()

	creds = as.srv.credentials(creds)

	acc, err := as.srv.sqlRepo.GetAccountRepository().GetOneByID(ctx, accountID)
	if err != nil {
		return models.SyncResultErr(checkDatabaseError(err, models.ErrKeyAccountNotFound), false)
	}

	if !acc.HasRemoteID() {
		return models.SyncResultErr(common.ErrAccountNotSynced, false)
	}

	resp, err := as.srv.weavr.GetManagedAccount(ctx, creds, *acc.RemoteID)
	if err != nil {
		return models.SyncResultErr(checkRemoteError(err), weavr.IsTransient(err))
	}

	newBalance := toBalance(resp.Balances)
	changed := !acc.Balance.Equal(newBalance)

	err = as.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		upd := models.AccountSyncedUpdate{
			RemoteID: *acc.RemoteID,
			Balance:  newBalance,
			SyncedAt: time.Now(),
		}
		if err := r.GetAccountRepository().MarkSynced(ctx, acc.ID, upd); err != nil {
			return err
		}
		if !changed {
			return nil
		}
		_, err := r.GetBalanceLogRepository().Create(ctx, models.BalanceLog{
			AccountID:   acc.ID,
			Previous:    acc.Balance,
			New:         newBalance,
			ChangeType:  models.ChangeTypeWeavrSync,
			Description: "balance refresh from remote",
		})
		return err
	})
	if err != nil {
		xlog.Error(ctx, "[SERVICE] failed to store refreshed balance",
			xlog.Uint64("accountId", acc.ID), xlog.Err(err))
		return models.SyncResultErr(checkDatabaseError(err), true)
	}

	if changed {
		as.srv.publishBalanceLog(ctx, models.BalanceLogsPayload{
			AccountID:       acc.ID,
			RemoteAccountID: *acc.RemoteID,
			ChangeType:      models.ChangeTypeWeavrSync,
			Before:          acc.Balance,
			After:           newBalance,
		})
	}

	return models.SyncResultOK(*acc.RemoteID)
}

// UpgradeIBAN requests bank details for a synced account. Allocation is a
// multi-step remote workflow: an accepted-but-unfinished allocation parks
// the account in pending_iban and still counts as success.
func (as *account) UpgradeIBAN(ctx context.Context, creds weavr.Credentials, accountID uint64) (res models.SyncResult) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(res.Err)) }()
	defer func() { as.srv.metrics.GetSyncPrometheus().Record("account", "iban_upgrade", syncOutcome(res)) }()

	creds = as.srv.credentials(creds)

	acc, err := as.srv.sqlRepo.GetAccountRepository().GetOneByID(ctx, accountID)
	if err != nil {
		return models.SyncResultErr(checkDatabaseError(err, models.ErrKeyAccountNotFound), false)
	}

	if !acc.HasRemoteID() {
		return models.SyncResultErr(common.ErrAccountNotSynced, false)
	}

	if acc.HasIBAN() {
		return models.SyncResultOK(*acc.RemoteID)
	}

	resp, err := as.srv.weavr.UpgradeManagedAccountIBAN(ctx, creds, *acc.RemoteID)
	if err != nil {
		return as.markCreationFailed(ctx, acc, models.SyncStatusIBANFailed, err)
	}

	if !resp.Allocated() {
		if err := as.srv.sqlRepo.GetAccountRepository().SetSyncStatus(ctx, acc.ID, models.SyncStatusPendingIBAN); err != nil {
			return models.SyncResultErr(checkDatabaseError(err), true)
		}
		xlog.Info(ctx, "[SERVICE] iban allocation accepted, waiting for the remote workflow",
			xlog.Uint64("accountId", acc.ID), xlog.String("state", resp.State))
		return models.SyncResultOK(*acc.RemoteID)
	}

	err = as.srv.sqlRepo.GetAccountRepository().
		UpdateIBAN(ctx, acc.ID, resp.BankAccountDetails.IBAN, resp.BankAccountDetails.BIC, time.Now())
	if err != nil {
		return models.SyncResultErr(checkDatabaseError(err), true)
	}

	return models.SyncResultOK(*acc.RemoteID)
}

// GetIBAN reads the remote allocation state. When the allocation has
// finished since the last sync the details are written back locally, so a
// plain read heals a pending_iban account.
func (as *account) GetIBAN(ctx context.Context, creds weavr.Credentials, accountID uint64) (result models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	creds = as.srv.credentials(creds)

	result, err = as.srv.sqlRepo.GetAccountRepository().GetOneByID(ctx, accountID)
	if err != nil {
		err = checkDatabaseError(err, models.ErrKeyAccountNotFound)
		return
	}

	if !result.HasRemoteID() {
		err = models.GetErrMap(models.ErrKeyNotSynced)
		return
	}

	resp, remoteErr := as.srv.weavr.GetManagedAccountIBAN(ctx, creds, *result.RemoteID)
	if remoteErr != nil {
		err = checkRemoteError(remoteErr)
		return
	}

	if !resp.Allocated() || result.HasIBAN() {
		return result, nil
	}

	if err = as.srv.sqlRepo.GetAccountRepository().
		UpdateIBAN(ctx, result.ID, resp.BankAccountDetails.IBAN, resp.BankAccountDetails.BIC, time.Now()); err != nil {
		err = checkDatabaseError(err)
		return
	}

	result.IBAN = &resp.BankAccountDetails.IBAN
	result.BIC = &resp.BankAccountDetails.BIC
	result.SyncStatus = models.SyncStatusSynced

	return result, nil
}

// markCreationFailed records a remote failure on the account row. A
// permanent error flags the account for review immediately; a transient
// one only once the attempt ceiling is reached.
func (as *account) markCreationFailed(ctx context.Context, acc models.Account, status models.SyncStatus, remoteErr error) models.SyncResult {
	retryable := weavr.IsTransient(remoteErr)
	review := !retryable || acc.SyncAttempts+1 >= as.srv.conf.Recon.MaxSyncAttemptsOrDefault()

	if err := as.srv.sqlRepo.GetAccountRepository().
		MarkSyncFailed(ctx, acc.ID, remoteErr.Error(), status, review); err != nil {
		xlog.Error(ctx, "[SERVICE] failed to record sync failure",
			xlog.Uint64("accountId", acc.ID), xlog.Err(err))
	}

	xlog.Warn(ctx, "[SERVICE] account sync failed",
		xlog.Uint64("accountId", acc.ID),
		xlog.String("status", string(status)),
		xlog.Bool("retryable", retryable),
		xlog.Bool("reviewRequired", review),
		xlog.Err(remoteErr))

	return models.SyncResultErr(checkRemoteError(remoteErr), retryable)
}

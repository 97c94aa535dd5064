package services

import (
	"context"
	"errors"

	"github.com/amberpay/go-weavr-sync/internal/common"
	"github.com/amberpay/go-weavr-sync/internal/common/validation"
	"github.com/amberpay/go-weavr-sync/internal/common/xlog"
	"github.com/amberpay/go-weavr-sync/internal/models"
	"github.com/amberpay/go-weavr-sync/internal/monitoring"
	"github.com/amberpay/go-weavr-sync/internal/weavr"
)

type TransactionService interface {
	Create(ctx context.Context, in models.CreateTransaction) (out models.Transaction, err error)
	GetOneByID(ctx context.Context, id uint64) (result models.Transaction, err error)
	GetList(ctx context.Context, opts models.TransactionFilterOptions) (result []models.Transaction, err error)

	Sync(ctx context.Context, creds weavr.Credentials, trxID uint64) models.SyncResult
}

type transaction service

var _ TransactionService = (*transaction)(nil)

func (ts *transaction) Create(ctx context.Context, in models.CreateTransaction) (out models.Transaction, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if err = validation.ValidateStruct(in); err != nil {
		return
	}

	if _, err = ts.srv.sqlRepo.GetAccountRepository().GetOneByID(ctx, in.AccountID); err != nil {
		err = checkDatabaseError(err, models.ErrKeyAccountNotFound)
		return
	}

	out, err = ts.srv.sqlRepo.GetTransactionRepository().Create(ctx, in)
	if err != nil {
		err = checkDatabaseError(err)
		return
	}

	return
}

func (ts *transaction) GetOneByID(ctx context.Context, id uint64) (result models.Transaction, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	result, err = ts.srv.sqlRepo.GetTransactionRepository().GetOneByID(ctx, id)
	if err != nil {
		err = checkDatabaseError(err, models.ErrKeyTransactionNotFound)
		return
	}

	return
}

func (ts *transaction) GetList(ctx context.Context, opts models.TransactionFilterOptions) (result []models.Transaction, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	result, err = ts.srv.sqlRepo.GetTransactionRepository().GetList(ctx, opts)
	if err != nil {
		err = checkDatabaseError(err)
		return
	}

	return
}

// Sync pushes a local transaction to the remote system as a transfer. The
// transaction's remote id is assigned exactly once; a transaction that
// already has one is reported as success without touching the remote
// system.
func (ts *transaction) Sync(ctx context.Context, creds weavr.Credentials, trxID uint64) (res models.SyncResult) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(res.Err)) }()
	defer func() { ts.srv.metrics.GetSyncPrometheus().Record("transaction", "transfer", syncOutcome(res)) }()

	creds = ts.srv.credentials(creds)

	trx, err := ts.srv.sqlRepo.GetTransactionRepository().GetOneByID(ctx, trxID)
	if err != nil {
		return models.SyncResultErr(checkDatabaseError(err, models.ErrKeyTransactionNotFound), false)
	}

	if trx.HasRemoteID() {
		return models.SyncResultOK(*trx.RemoteID)
	}

	acc, err := ts.srv.sqlRepo.GetAccountRepository().GetOneByID(ctx, trx.AccountID)
	if err != nil {
		return models.SyncResultErr(checkDatabaseError(err, models.ErrKeyAccountNotFound), false)
	}

	// The owning account must exist remotely before its transactions can.
	if !acc.HasRemoteID() {
		return models.SyncResultErr(common.ErrAccountNotSynced, false)
	}
	if trx.CounterpartyRemoteID == nil || *trx.CounterpartyRemoteID == "" {
		return models.SyncResultErr(models.GetErrMap(models.ErrKeyValidation, "transaction has no counterparty account"), false)
	}

	req := weavr.CreateTransferRequest{
		ProfileID: ts.srv.conf.Weavr.ProfileID,
		Source: weavr.InstrumentRef{
			Type: weavr.InstrumentManagedAccounts,
			ID:   *acc.RemoteID,
		},
		Destination: weavr.InstrumentRef{
			Type: weavr.InstrumentManagedAccounts,
			ID:   *trx.CounterpartyRemoteID,
		},
		TransferAmount: weavr.TransferAmount{
			Currency: trx.Currency,
			Amount:   trx.Amount,
		},
		Description: trx.Description,
	}

	resp, err := ts.srv.weavr.CreateTransfer(ctx, creds, req)
	if err != nil {
		retryable := weavr.IsTransient(err)
		xlog.Warn(ctx, "[SERVICE] transaction sync failed",
			xlog.Uint64("transactionId", trx.ID),
			xlog.Bool("retryable", retryable),
			xlog.Err(err))
		return models.SyncResultErr(checkRemoteError(err), retryable)
	}

	status := models.MapRemoteTransferState(resp.State)
	if err = ts.srv.sqlRepo.GetTransactionRepository().
		SetRemoteID(ctx, trx.ID, resp.ID, status); err != nil {
		// A concurrent sync won the race and assigned the remote id first.
		if errors.Is(err, common.ErrRemoteIDAlreadySet) {
			if current, getErr := ts.srv.sqlRepo.GetTransactionRepository().GetOneByID(ctx, trx.ID); getErr == nil && current.HasRemoteID() {
				return models.SyncResultOK(*current.RemoteID)
			}
			return models.SyncResultErr(models.GetErrMap(models.ErrKeyAlreadySynced), false)
		}
		xlog.Error(ctx, "[SERVICE] remote transfer created but local writeback failed",
			xlog.Uint64("transactionId", trx.ID), xlog.String("remoteId", resp.ID), xlog.Err(err))
		return models.SyncResultErr(checkDatabaseError(err), true)
	}

	return models.SyncResultOK(resp.ID)
}

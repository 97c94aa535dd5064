package services

import (
	"context"

	"github.com/amberpay/go-weavr-sync/internal/common/validation"
	"github.com/amberpay/go-weavr-sync/internal/models"
	"github.com/amberpay/go-weavr-sync/internal/monitoring"
	"github.com/amberpay/go-weavr-sync/internal/weavr"
)

type AccountService interface {
	Create(ctx context.Context, in models.CreateAccount) (out models.Account, err error)
	GetOneByID(ctx context.Context, id uint64) (result models.Account, err error)
	GetList(ctx context.Context, opts models.AccountFilterOptions) (accounts []models.Account, err error)
	GetBalanceLogs(ctx context.Context, accountID uint64, limit, offset int) (logs []models.BalanceLog, err error)
	ClearReview(ctx context.Context, id uint64) (err error)

	SyncCreation(ctx context.Context, creds weavr.Credentials, accountID uint64) models.SyncResult
	SyncBalanceUpdate(ctx context.Context, creds weavr.Credentials, accountID uint64) models.SyncResult
	UpgradeIBAN(ctx context.Context, creds weavr.Credentials, accountID uint64) models.SyncResult
	GetIBAN(ctx context.Context, creds weavr.Credentials, accountID uint64) (result models.Account, err error)
}

type account service

var _ AccountService = (*account)(nil)

func (as *account) Create(ctx context.Context, in models.CreateAccount) (out models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if err = validation.ValidateStruct(in); err != nil {
		return
	}

	out, err = as.srv.sqlRepo.GetAccountRepository().Create(ctx, in)
	if err != nil {
		err = checkDatabaseError(err)
		return
	}

	return
}

func (as *account) GetOneByID(ctx context.Context, id uint64) (result models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	result, err = as.srv.sqlRepo.GetAccountRepository().GetOneByID(ctx, id)
	if err != nil {
		err = checkDatabaseError(err, models.ErrKeyAccountNotFound)
		return
	}

	return
}

func (as *account) GetList(ctx context.Context, opts models.AccountFilterOptions) (accounts []models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	accounts, err = as.srv.sqlRepo.GetAccountRepository().GetList(ctx, opts)
	if err != nil {
		err = checkDatabaseError(err)
		return
	}

	return
}

func (as *account) GetBalanceLogs(ctx context.Context, accountID uint64, limit, offset int) (logs []models.BalanceLog, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if _, err = as.srv.sqlRepo.GetAccountRepository().GetOneByID(ctx, accountID); err != nil {
		err = checkDatabaseError(err, models.ErrKeyAccountNotFound)
		return
	}

	logs, err = as.srv.sqlRepo.GetBalanceLogRepository().GetListByAccountID(ctx, accountID, limit, offset)
	if err != nil {
		err = checkDatabaseError(err)
		return
	}

	return
}

// ClearReview puts a flagged account back into the sweep's working set.
func (as *account) ClearReview(ctx context.Context, id uint64) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if _, err = as.srv.sqlRepo.GetAccountRepository().GetOneByID(ctx, id); err != nil {
		err = checkDatabaseError(err, models.ErrKeyAccountNotFound)
		return
	}

	if err = as.srv.sqlRepo.GetAccountRepository().ClearReview(ctx, id); err != nil {
		err = checkDatabaseError(err)
		return
	}

	return
}

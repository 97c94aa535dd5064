package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/amberpay/go-weavr-sync/internal/common"
	"github.com/amberpay/go-weavr-sync/internal/models"
	"github.com/amberpay/go-weavr-sync/internal/monitoring"
)

type AccountRepository interface {
	Create(ctx context.Context, in models.CreateAccount) (result models.Account, err error)
	GetOneByID(ctx context.Context, id uint64) (result models.Account, err error)
	GetOneByRemoteID(ctx context.Context, remoteID string) (result models.Account, err error)
	GetList(ctx context.Context, opts models.AccountFilterOptions) (result []models.Account, err error)
	GetPendingSync(ctx context.Context, limit, maxAttempts int) (result []models.Account, err error)
	MarkSynced(ctx context.Context, id uint64, upd models.AccountSyncedUpdate) (err error)
	MarkSyncFailed(ctx context.Context, id uint64, syncErr string, status models.SyncStatus, reviewRequired bool) (err error)
	UpdateIBAN(ctx context.Context, id uint64, iban, bic string, syncedAt time.Time) (err error)
	SetSyncStatus(ctx context.Context, id uint64, status models.SyncStatus) (err error)
	UpdateBalance(ctx context.Context, id uint64, balance models.Balance) (err error)
	UpdateState(ctx context.Context, id uint64, state models.AccountState) (err error)
	ClearReview(ctx context.Context, id uint64) (err error)
}

type accountRepository sqlRepo

var _ AccountRepository = (*accountRepository)(nil)

func (ar *accountRepository) Create(ctx context.Context, in models.CreateAccount) (result models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ar.r.writeConn(ctx)

	result = models.Account{
		IdentityID: in.IdentityID,
		Name:       in.Name,
		Currency:   in.Currency,
		State:      models.AccountStateActive,
		SyncStatus: models.SyncStatusPending,
	}
	err = db.QueryRowContext(ctx, queryAccountCreate,
		in.IdentityID, in.Name, in.Currency, models.AccountStateActive, models.SyncStatusPending,
	).Scan(&result.ID, &result.CreatedAt, &result.UpdatedAt)
	if err != nil {
		return models.Account{}, err
	}

	return
}

func (ar *accountRepository) GetOneByID(ctx context.Context, id uint64) (result models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return ar.getOne(ctx, `"id" = ?`, id)
}

func (ar *accountRepository) GetOneByRemoteID(ctx context.Context, remoteID string) (result models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return ar.getOne(ctx, `"remoteId" = ?`, remoteID)
}

func (ar *accountRepository) getOne(ctx context.Context, pred string, args ...interface{}) (result models.Account, err error) {
	db := ar.r.readConn(ctx)

	query, qArgs, err := buildGetAccountQuery(pred, args...)
	if err != nil {
		return result, fmt.Errorf("failed to build query: %w", err)
	}

	err = scanAccount(db.QueryRowContext(ctx, query, qArgs...), &result)
	if errors.Is(err, sql.ErrNoRows) {
		err = common.ErrAccountNotFound
	}

	return
}

func (ar *accountRepository) GetList(ctx context.Context, opts models.AccountFilterOptions) (result []models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	query, args, err := buildListAccountQuery(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	return ar.queryMany(ctx, query, args...)
}

func (ar *accountRepository) GetPendingSync(ctx context.Context, limit, maxAttempts int) (result []models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	query, args, err := buildPendingSyncAccountQuery(limit, maxAttempts)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	return ar.queryMany(ctx, query, args...)
}

func (ar *accountRepository) queryMany(ctx context.Context, query string, args ...interface{}) (result []models.Account, err error) {
	db := ar.r.readConn(ctx)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var account models.Account
		if err = scanAccount(rows, &account); err != nil {
			return nil, err
		}
		result = append(result, account)
	}

	return result, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAccount(row rowScanner, account *models.Account) error {
	return row.Scan(
		&account.ID,
		&account.IdentityID,
		&account.Name,
		&account.Currency,
		&account.RemoteID,
		&account.IBAN,
		&account.BIC,
		&account.State,
		&account.Balance.Available,
		&account.Balance.Blocked,
		&account.Balance.Reserved,
		&account.SyncStatus,
		&account.LastSyncError,
		&account.LastSyncedAt,
		&account.SyncAttempts,
		&account.ReviewRequired,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
}

func (ar *accountRepository) MarkSynced(ctx context.Context, id uint64, upd models.AccountSyncedUpdate) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return ar.exec(ctx, queryAccountMarkSynced,
		id, upd.RemoteID, upd.IBAN, upd.BIC,
		upd.Balance.Available, upd.Balance.Blocked, upd.Balance.Reserved,
		models.SyncStatusSynced, upd.SyncedAt,
	)
}

func (ar *accountRepository) MarkSyncFailed(ctx context.Context, id uint64, syncErr string, status models.SyncStatus, reviewRequired bool) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return ar.exec(ctx, queryAccountMarkSyncFailed, id, status, syncErr, reviewRequired)
}

func (ar *accountRepository) UpdateIBAN(ctx context.Context, id uint64, iban, bic string, syncedAt time.Time) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return ar.exec(ctx, queryAccountUpdateIBAN, id, iban, bic, models.SyncStatusSynced, syncedAt)
}

func (ar *accountRepository) SetSyncStatus(ctx context.Context, id uint64, status models.SyncStatus) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return ar.exec(ctx, queryAccountSetSyncStatus, id, status)
}

// UpdateBalance overwrites the balance buckets from an authoritative remote
// figure and leaves the account synced.
func (ar *accountRepository) UpdateBalance(ctx context.Context, id uint64, balance models.Balance) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return ar.exec(ctx, queryAccountUpdateBalance, id, balance.Available, balance.Blocked, balance.Reserved)
}

func (ar *accountRepository) UpdateState(ctx context.Context, id uint64, state models.AccountState) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return ar.exec(ctx, queryAccountUpdateState, id, state)
}

func (ar *accountRepository) ClearReview(ctx context.Context, id uint64) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return ar.exec(ctx, queryAccountClearReview, id, models.SyncStatusPending)
}

func (ar *accountRepository) exec(ctx context.Context, query string, args ...interface{}) error {
	db := ar.r.writeConn(ctx)

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	affectedRows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if affectedRows == 0 {
		return common.ErrNoRowsAffected
	}

	return nil
}

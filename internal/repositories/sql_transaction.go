package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/amberpay/go-weavr-sync/internal/common"
	"github.com/amberpay/go-weavr-sync/internal/models"
	"github.com/amberpay/go-weavr-sync/internal/monitoring"

	sq "github.com/Masterminds/squirrel"
)

// query to transaction database
var (
	transactionColumns = []string{
		`"id"`,
		`"accountId"`,
		`"remoteId"`,
		`"counterpartyRemoteId"`,
		`"amount"`,
		`COALESCE("currency", '') as "currency"`,
		`"status"`,
		`COALESCE("description", '') as "description"`,
		`"createdAt"`,
		`"updatedAt"`,
	}

	queryTransactionCreate = `
		INSERT INTO transaction(
			"accountId", "counterpartyRemoteId", "amount", "currency", "status", "description", "createdAt", "updatedAt"
		)
		VALUES(
			$1, $2, $3, $4, $5, $6, now(), now()
		)
		RETURNING "id", "createdAt", "updatedAt";
	`

	// remoteId is assigned exactly once. The IS NULL guard turns a second
	// assignment into zero affected rows instead of an overwrite.
	querySetTransactionRemoteID = `
		UPDATE transaction SET
			"remoteId" = $2,
			"status" = $3,
			"updatedAt" = now()
		WHERE "id" = $1 AND "remoteId" IS NULL;
	`

	queryTransactionUpdateStatusByRemoteID = `
		UPDATE transaction SET
			"status" = $2,
			"updatedAt" = now()
		WHERE "remoteId" = $1;
	`
)

type TransactionRepository interface {
	Create(ctx context.Context, in models.CreateTransaction) (result models.Transaction, err error)
	GetOneByID(ctx context.Context, id uint64) (result models.Transaction, err error)
	GetOneByRemoteID(ctx context.Context, remoteID string) (result models.Transaction, err error)
	GetList(ctx context.Context, opts models.TransactionFilterOptions) (result []models.Transaction, err error)
	SetRemoteID(ctx context.Context, id uint64, remoteID string, status models.TransactionStatus) (err error)
	UpdateStatusByRemoteID(ctx context.Context, remoteID string, status models.TransactionStatus) (err error)
}

type transactionRepository sqlRepo

var _ TransactionRepository = (*transactionRepository)(nil)

func (tr *transactionRepository) Create(ctx context.Context, in models.CreateTransaction) (result models.Transaction, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := tr.r.writeConn(ctx)

	result = models.Transaction{
		AccountID:            in.AccountID,
		CounterpartyRemoteID: in.CounterpartyRemoteID,
		Amount:               in.Amount,
		Currency:             in.Currency,
		Status:               models.TransactionStatusPending,
		Description:          in.Description,
	}
	err = db.QueryRowContext(ctx, queryTransactionCreate,
		in.AccountID, in.CounterpartyRemoteID, in.Amount, in.Currency, models.TransactionStatusPending, in.Description,
	).Scan(&result.ID, &result.CreatedAt, &result.UpdatedAt)
	if err != nil {
		return models.Transaction{}, err
	}

	return
}

func (tr *transactionRepository) GetOneByID(ctx context.Context, id uint64) (result models.Transaction, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return tr.getOne(ctx, sq.Eq{`"id"`: id})
}

func (tr *transactionRepository) GetOneByRemoteID(ctx context.Context, remoteID string) (result models.Transaction, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return tr.getOne(ctx, sq.Eq{`"remoteId"`: remoteID})
}

func (tr *transactionRepository) getOne(ctx context.Context, pred sq.Eq) (result models.Transaction, err error) {
	db := tr.r.readConn(ctx)

	query, args, err := sq.Select(transactionColumns...).
		From("transaction").
		Where(pred).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return result, fmt.Errorf("failed to build query: %w", err)
	}

	err = scanTransaction(db.QueryRowContext(ctx, query, args...), &result)
	if errors.Is(err, sql.ErrNoRows) {
		err = common.ErrTransactionNotFound
	}

	return
}

func (tr *transactionRepository) GetList(ctx context.Context, opts models.TransactionFilterOptions) (result []models.Transaction, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := tr.r.readConn(ctx)

	query := sq.Select(transactionColumns...).
		From("transaction").
		PlaceholderFormat(sq.Dollar)

	if opts.AccountID != 0 {
		query = query.Where(sq.Eq{`"accountId"`: opts.AccountID})
	}
	if len(opts.Status) > 0 {
		statuses := make([]string, 0, len(opts.Status))
		for _, s := range opts.Status {
			statuses = append(statuses, string(s))
		}
		query = query.Where(sq.Eq{`"status"`: statuses})
	}
	query = query.OrderBy(`"id" ASC`)
	if opts.Limit > 0 {
		query = query.Limit(uint64(opts.Limit))
	}
	if opts.Offset > 0 {
		query = query.Offset(uint64(opts.Offset))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var trx models.Transaction
		if err = scanTransaction(rows, &trx); err != nil {
			return nil, err
		}
		result = append(result, trx)
	}

	return result, rows.Err()
}

func scanTransaction(row rowScanner, trx *models.Transaction) error {
	return row.Scan(
		&trx.ID,
		&trx.AccountID,
		&trx.RemoteID,
		&trx.CounterpartyRemoteID,
		&trx.Amount,
		&trx.Currency,
		&trx.Status,
		&trx.Description,
		&trx.CreatedAt,
		&trx.UpdatedAt,
	)
}

func (tr *transactionRepository) SetRemoteID(ctx context.Context, id uint64, remoteID string, status models.TransactionStatus) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := tr.r.writeConn(ctx)

	res, err := db.ExecContext(ctx, querySetTransactionRemoteID, id, remoteID, status)
	if err != nil {
		return err
	}

	affectedRows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if affectedRows == 0 {
		return common.ErrRemoteIDAlreadySet
	}

	return nil
}

func (tr *transactionRepository) UpdateStatusByRemoteID(ctx context.Context, remoteID string, status models.TransactionStatus) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := tr.r.writeConn(ctx)

	res, err := db.ExecContext(ctx, queryTransactionUpdateStatusByRemoteID, remoteID, status)
	if err != nil {
		return err
	}

	affectedRows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if affectedRows == 0 {
		return common.ErrTransactionNotFound
	}

	return nil
}

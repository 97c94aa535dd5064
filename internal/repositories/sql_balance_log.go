package repositories

import (
	"context"
	"fmt"

	"github.com/amberpay/go-weavr-sync/internal/models"
	"github.com/amberpay/go-weavr-sync/internal/monitoring"

	sq "github.com/Masterminds/squirrel"
)

// query to balance_log database
var (
	balanceLogColumns = []string{
		`"id"`,
		`"accountId"`,
		`"previousAvailable"`,
		`"previousBlocked"`,
		`"previousReserved"`,
		`"newAvailable"`,
		`"newBlocked"`,
		`"newReserved"`,
		`"changeType"`,
		`"transactionId"`,
		`"remoteTransactionId"`,
		`COALESCE("description", '') as "description"`,
		`"createdAt"`,
	}

	queryBalanceLogCreate = `
		INSERT INTO balance_log(
			"accountId", "previousAvailable", "previousBlocked", "previousReserved",
			"newAvailable", "newBlocked", "newReserved",
			"changeType", "transactionId", "remoteTransactionId", "description", "createdAt"
		)
		VALUES(
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now()
		)
		RETURNING "id", "createdAt";
	`
)

type BalanceLogRepository interface {
	Create(ctx context.Context, in models.BalanceLog) (result models.BalanceLog, err error)
	GetListByAccountID(ctx context.Context, accountID uint64, limit, offset int) (result []models.BalanceLog, err error)
}

type balanceLogRepository sqlRepo

var _ BalanceLogRepository = (*balanceLogRepository)(nil)

func (blr *balanceLogRepository) Create(ctx context.Context, in models.BalanceLog) (result models.BalanceLog, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := blr.r.writeConn(ctx)

	result = in
	err = db.QueryRowContext(ctx, queryBalanceLogCreate,
		in.AccountID,
		in.Previous.Available, in.Previous.Blocked, in.Previous.Reserved,
		in.New.Available, in.New.Blocked, in.New.Reserved,
		in.ChangeType, in.TransactionID, in.RemoteTransactionID, in.Description,
	).Scan(&result.ID, &result.CreatedAt)
	if err != nil {
		return models.BalanceLog{}, err
	}

	return
}

func (blr *balanceLogRepository) GetListByAccountID(ctx context.Context, accountID uint64, limit, offset int) (result []models.BalanceLog, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := blr.r.readConn(ctx)

	query := sq.Select(balanceLogColumns...).
		From("balance_log").
		Where(sq.Eq{`"accountId"`: accountID}).
		OrderBy(`"id" DESC`).
		PlaceholderFormat(sq.Dollar)

	if limit > 0 {
		query = query.Limit(uint64(limit))
	}
	if offset > 0 {
		query = query.Offset(uint64(offset))
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
		var log models.BalanceLog
		err = rows.Scan(
			&log.ID,
			&log.AccountID,
			&log.Previous.Available,
			&log.Previous.Blocked,
			&log.Previous.Reserved,
			&log.New.Available,
			&log.New.Blocked,
			&log.New.Reserved,
			&log.ChangeType,
			&log.TransactionID,
			&log.RemoteTransactionID,
			&log.Description,
			&log.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, log)
	}

	return result, rows.Err()
}

package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/amberpay/go-weavr-sync/internal/common"
	"github.com/amberpay/go-weavr-sync/internal/models"
	"github.com/amberpay/go-weavr-sync/internal/monitoring"
)

// query to card database
var (
	queryCardGetOneByRemoteID = `
	SELECT
		"id",
		"accountId",
		"remoteId",
		"state",
		"createdAt",
		"updatedAt"
	FROM card
	WHERE "remoteId" = $1;`

	queryCardUpdateStateByRemoteID = `
		UPDATE card SET
			"state" = $2,
			"updatedAt" = now()
		WHERE "remoteId" = $1;
	`
)

type CardRepository interface {
	GetOneByRemoteID(ctx context.Context, remoteID string) (result models.Card, err error)
	UpdateStateByRemoteID(ctx context.Context, remoteID string, state models.CardState) (err error)
}

type cardRepository sqlRepo

var _ CardRepository = (*cardRepository)(nil)

func (cr *cardRepository) GetOneByRemoteID(ctx context.Context, remoteID string) (result models.Card, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := cr.r.readConn(ctx)

	err = db.QueryRowContext(ctx, queryCardGetOneByRemoteID, remoteID).Scan(
		&result.ID,
		&result.AccountID,
		&result.RemoteID,
		&result.State,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		err = common.ErrCardNotFound
	}

	return
}

func (cr *cardRepository) UpdateStateByRemoteID(ctx context.Context, remoteID string, state models.CardState) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := cr.r.writeConn(ctx)

	res, err := db.ExecContext(ctx, queryCardUpdateStateByRemoteID, remoteID, state)
	if err != nil {
		return err
	}

	affectedRows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if affectedRows == 0 {
		return common.ErrCardNotFound
	}

	return nil
}

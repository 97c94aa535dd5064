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

	sq "github.com/Masterminds/squirrel"
)

// query to identity database
var (
	identityColumns = []string{
		`"id"`,
		`"kind"`,
		`"name"`,
		`COALESCE("email", '') as "email"`,
		`"remoteId"`,
		`"syncStatus"`,
		`"lastSyncError"`,
		`"lastSyncedAt"`,
		`"syncAttempts"`,
		`"reviewRequired"`,
		`"createdAt"`,
		`"updatedAt"`,
	}

	queryIdentityCreate = `
		INSERT INTO identity(
			"kind", "name", "email", "syncStatus", "syncAttempts", "reviewRequired", "createdAt", "updatedAt"
		)
		VALUES(
			$1, $2, $3, $4, 0, false, now(), now()
		)
		RETURNING "id", "createdAt", "updatedAt";
	`

	queryIdentityMarkSynced = `
		UPDATE identity SET
			"remoteId" = $2,
			"syncStatus" = $3,
			"lastSyncError" = NULL,
			"lastSyncedAt" = $4,
			"syncAttempts" = 0,
			"reviewRequired" = false,
			"updatedAt" = now()
		WHERE "id" = $1;
	`

	queryIdentityMarkSyncFailed = `
		UPDATE identity SET
			"syncStatus" = $2,
			"lastSyncError" = $3,
			"syncAttempts" = "syncAttempts" + 1,
			"reviewRequired" = $4,
			"updatedAt" = now()
		WHERE "id" = $1;
	`

	queryIdentityClearReview = `
		UPDATE identity SET
			"reviewRequired" = false,
			"syncAttempts" = 0,
			"syncStatus" = $2,
			"lastSyncError" = NULL,
			"updatedAt" = now()
		WHERE "id" = $1;
	`
)

type IdentityRepository interface {
	Create(ctx context.Context, in models.CreateIdentity) (result models.Identity, err error)
	GetOneByID(ctx context.Context, id uint64) (result models.Identity, err error)
	GetPendingSync(ctx context.Context, limit, maxAttempts int) (result []models.Identity, err error)
	MarkSynced(ctx context.Context, id uint64, remoteID string, syncedAt time.Time) (err error)
	MarkSyncFailed(ctx context.Context, id uint64, syncErr string, reviewRequired bool) (err error)
	ClearReview(ctx context.Context, id uint64) (err error)
}

type identityRepository sqlRepo

var _ IdentityRepository = (*identityRepository)(nil)

func (ir *identityRepository) Create(ctx context.Context, in models.CreateIdentity) (result models.Identity, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ir.r.writeConn(ctx)

	result = models.Identity{
		Kind:       in.Kind,
		Name:       in.Name,
		Email:      in.Email,
		SyncStatus: models.SyncStatusPending,
	}
	err = db.QueryRowContext(ctx, queryIdentityCreate,
		in.Kind, in.Name, in.Email, models.SyncStatusPending,
	).Scan(&result.ID, &result.CreatedAt, &result.UpdatedAt)
	if err != nil {
		return models.Identity{}, err
	}

	return
}

func (ir *identityRepository) GetOneByID(ctx context.Context, id uint64) (result models.Identity, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ir.r.readConn(ctx)

	query, args, err := sq.Select(identityColumns...).
		From("identity").
		Where(sq.Eq{`"id"`: id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return result, fmt.Errorf("failed to build query: %w", err)
	}

	err = scanIdentity(db.QueryRowContext(ctx, query, args...), &result)
	if errors.Is(err, sql.ErrNoRows) {
		err = common.ErrIdentityNotFound
	}

	return
}

func (ir *identityRepository) GetPendingSync(ctx context.Context, limit, maxAttempts int) (result []models.Identity, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ir.r.readConn(ctx)

	query, args, err := sq.Select(identityColumns...).
		From("identity").
		Where(sq.Eq{`"syncStatus"`: []string{string(models.SyncStatusPending), string(models.SyncStatusFailed)}}).
		Where(sq.Lt{`"syncAttempts"`: maxAttempts}).
		Where(sq.Eq{`"reviewRequired"`: false}).
		OrderBy(`"id" ASC`).
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var identity models.Identity
		if err = scanIdentity(rows, &identity); err != nil {
			return nil, err
		}
		result = append(result, identity)
	}

	return result, rows.Err()
}

func scanIdentity(row rowScanner, identity *models.Identity) error {
	return row.Scan(
		&identity.ID,
		&identity.Kind,
		&identity.Name,
		&identity.Email,
		&identity.RemoteID,
		&identity.SyncStatus,
		&identity.LastSyncError,
		&identity.LastSyncedAt,
		&identity.SyncAttempts,
		&identity.ReviewRequired,
		&identity.CreatedAt,
		&identity.UpdatedAt,
	)
}

func (ir *identityRepository) MarkSynced(ctx context.Context, id uint64, remoteID string, syncedAt time.Time) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return ir.exec(ctx, queryIdentityMarkSynced, id, remoteID, models.SyncStatusSynced, syncedAt)
}

func (ir *identityRepository) MarkSyncFailed(ctx context.Context, id uint64, syncErr string, reviewRequired bool) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return ir.exec(ctx, queryIdentityMarkSyncFailed, id, models.SyncStatusFailed, syncErr, reviewRequired)
}

func (ir *identityRepository) ClearReview(ctx context.Context, id uint64) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return ir.exec(ctx, queryIdentityClearReview, id, models.SyncStatusPending)
}

func (ir *identityRepository) exec(ctx context.Context, query string, args ...interface{}) error {
	db := ir.r.writeConn(ctx)

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

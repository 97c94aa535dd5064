package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/amberpay/go-weavr-sync/internal/common"
	"github.com/amberpay/go-weavr-sync/internal/models"
	"github.com/amberpay/go-weavr-sync/internal/monitoring"

	"github.com/lib/pq"
)

const pgUniqueViolation = "23505"

// query to webhook_event database
var (
	queryWebhookEventCreate = `
		INSERT INTO webhook_event(
			"remoteEventId", "type", "payload", "status", "receivedAt"
		)
		VALUES(
			$1, $2, $3, $4, now()
		)
		RETURNING "id", "receivedAt";
	`

	queryWebhookEventGetOneByID = `
	SELECT
		"id",
		"remoteEventId",
		"type",
		"payload",
		"status",
		"error",
		"receivedAt",
		"processedAt"
	FROM webhook_event
	WHERE "id" = $1;`

	queryWebhookEventMarkProcessed = `
		UPDATE webhook_event SET
			"status" = $2,
			"error" = NULL,
			"processedAt" = now()
		WHERE "id" = $1;
	`

	queryWebhookEventMarkFailed = `
		UPDATE webhook_event SET
			"status" = $2,
			"error" = $3,
			"processedAt" = now()
		WHERE "id" = $1;
	`
)

type WebhookEventRepository interface {
	Create(ctx context.Context, in models.WebhookEvent) (result models.WebhookEvent, err error)
	GetOneByID(ctx context.Context, id uint64) (result models.WebhookEvent, err error)
	MarkProcessed(ctx context.Context, id uint64) (err error)
	MarkFailed(ctx context.Context, id uint64, procErr string) (err error)
}

type webhookEventRepository sqlRepo

var _ WebhookEventRepository = (*webhookEventRepository)(nil)

// Create persists an inbound event. The unique index on remoteEventId is
// the idempotency barrier: a redelivered event surfaces here as
// common.ErrDuplicateWebhookEvent.
func (wer *webhookEventRepository) Create(ctx context.Context, in models.WebhookEvent) (result models.WebhookEvent, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := wer.r.writeConn(ctx)

	result = in
	result.Status = models.WebhookEventReceived
	err = db.QueryRowContext(ctx, queryWebhookEventCreate,
		in.RemoteEventID, in.Type, []byte(in.Payload), models.WebhookEventReceived,
	).Scan(&result.ID, &result.ReceivedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return models.WebhookEvent{}, common.ErrDuplicateWebhookEvent
		}
		return models.WebhookEvent{}, err
	}

	return
}

func (wer *webhookEventRepository) GetOneByID(ctx context.Context, id uint64) (result models.WebhookEvent, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := wer.r.readConn(ctx)

	var payload []byte
	err = db.QueryRowContext(ctx, queryWebhookEventGetOneByID, id).Scan(
		&result.ID,
		&result.RemoteEventID,
		&result.Type,
		&payload,
		&result.Status,
		&result.Error,
		&result.ReceivedAt,
		&result.ProcessedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		err = common.ErrWebhookEventNotFound
	}
	result.Payload = payload

	return
}

func (wer *webhookEventRepository) MarkProcessed(ctx context.Context, id uint64) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return wer.exec(ctx, queryWebhookEventMarkProcessed, id, models.WebhookEventProcessed)
}

func (wer *webhookEventRepository) MarkFailed(ctx context.Context, id uint64, procErr string) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return wer.exec(ctx, queryWebhookEventMarkFailed, id, models.WebhookEventFailed, procErr)
}

func (wer *webhookEventRepository) exec(ctx context.Context, query string, args ...interface{}) error {
	db := wer.r.writeConn(ctx)

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

package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/amberpay/go-weavr-sync/internal/common"
	"github.com/amberpay/go-weavr-sync/internal/common/validation"
	"github.com/amberpay/go-weavr-sync/internal/common/xlog"
	"github.com/amberpay/go-weavr-sync/internal/models"
	"github.com/amberpay/go-weavr-sync/internal/monitoring"
	"github.com/amberpay/go-weavr-sync/internal/repositories"
)

type WebhookService interface {
	Process(ctx context.Context, in models.InboundWebhookEvent) (outcome models.WebhookProcessOutcome, err error)
	Replay(ctx context.Context, eventID uint64) (outcome models.WebhookProcessOutcome, err error)
	GetOneByID(ctx context.Context, eventID uint64) (result models.WebhookEvent, err error)
}

type webhook service

var _ WebhookService = (*webhook)(nil)

// Process persists an inbound provider event and applies it to local
// state. The event row is written before any handler runs, so the ingress
// can acknowledge receipt the moment persistence succeeds. Redelivered
// events are detected by the cache fast path or, authoritatively, by the
// unique index on the remote event id.
func (ws *webhook) Process(ctx context.Context, in models.InboundWebhookEvent) (outcome models.WebhookProcessOutcome, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	start := time.Now()
	defer func() {
		ws.srv.metrics.GetWebhookPrometheus().Record(in.Type, string(outcome), time.Since(start))
	}()

	if err = validation.ValidateStruct(in); err != nil {
		outcome = models.WebhookOutcomeFailed
		return
	}

	dedupKey := repositories.WebhookDedupKey(in.ID)
	fresh, cacheErr := ws.srv.cacheRepo.SetIfNotExists(ctx, dedupKey, "1", ws.srv.conf.Webhook.DedupTTL)
	if cacheErr != nil {
		// The unique index below still dedupes; the cache only saves a round trip.
		xlog.Warn(ctx, "[SERVICE] webhook dedup cache unavailable",
			xlog.String("remoteEventId", in.ID), xlog.Err(cacheErr))
	} else if !fresh {
		xlog.Info(ctx, "[SERVICE] dropping redelivered webhook event",
			xlog.String("remoteEventId", in.ID), xlog.String("type", in.Type))
		outcome = models.WebhookOutcomeDuplicate
		return
	}

	event, err := ws.srv.sqlRepo.GetWebhookEventRepository().Create(ctx, models.WebhookEvent{
		RemoteEventID: in.ID,
		Type:          in.Type,
		Payload:       in.Data,
	})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateWebhookEvent) {
			xlog.Info(ctx, "[SERVICE] dropping redelivered webhook event",
				xlog.String("remoteEventId", in.ID), xlog.String("type", in.Type))
			outcome, err = models.WebhookOutcomeDuplicate, nil
			return
		}
		// Free the dedup key so a redelivery can retry the insert.
		if delErr := ws.srv.cacheRepo.Del(ctx, dedupKey); delErr != nil {
			xlog.Warn(ctx, "[SERVICE] failed to release webhook dedup key",
				xlog.String("remoteEventId", in.ID), xlog.Err(delErr))
		}
		outcome, err = models.WebhookOutcomeFailed, checkDatabaseError(err)
		return
	}

	return ws.apply(ctx, event)
}

// Replay re-runs the handler of an already persisted event, for manual
// recovery after a handler bug is fixed.
func (ws *webhook) Replay(ctx context.Context, eventID uint64) (outcome models.WebhookProcessOutcome, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	event, err := ws.srv.sqlRepo.GetWebhookEventRepository().GetOneByID(ctx, eventID)
	if err != nil {
		outcome, err = models.WebhookOutcomeFailed, checkDatabaseError(err, models.ErrKeyWebhookNotFound)
		return
	}

	xlog.Info(ctx, "[SERVICE] replaying webhook event",
		xlog.Uint64("eventId", event.ID), xlog.String("type", event.Type))

	return ws.apply(ctx, event)
}

func (ws *webhook) GetOneByID(ctx context.Context, eventID uint64) (result models.WebhookEvent, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	result, err = ws.srv.sqlRepo.GetWebhookEventRepository().GetOneByID(ctx, eventID)
	if err != nil {
		err = checkDatabaseError(err, models.ErrKeyWebhookNotFound)
		return
	}

	return
}

// apply dispatches a persisted event to its handler and records the
// terminal status on the event row.
func (ws *webhook) apply(ctx context.Context, event models.WebhookEvent) (models.WebhookProcessOutcome, error) {
	outcome, procErr := ws.dispatch(ctx, event)
	if procErr != nil {
		if markErr := ws.srv.sqlRepo.GetWebhookEventRepository().
			MarkFailed(ctx, event.ID, procErr.Error()); markErr != nil {
			xlog.Error(ctx, "[SERVICE] failed to record webhook failure",
				xlog.Uint64("eventId", event.ID), xlog.Err(markErr))
		}
		return models.WebhookOutcomeFailed, procErr
	}

	if err := ws.srv.sqlRepo.GetWebhookEventRepository().MarkProcessed(ctx, event.ID); err != nil {
		xlog.Error(ctx, "[SERVICE] failed to mark webhook event processed",
			xlog.Uint64("eventId", event.ID), xlog.Err(err))
	}

	return outcome, nil
}

func (ws *webhook) dispatch(ctx context.Context, event models.WebhookEvent) (models.WebhookProcessOutcome, error) {
	switch event.Type {
	case models.EventTypeAccountBalanceUpdated:
		return ws.handleBalanceUpdated(ctx, event)
	case models.EventTypeAccountStateChanged:
		return ws.handleAccountStateChanged(ctx, event)
	case models.EventTypeTransferStateChanged:
		return ws.handleTransferStateChanged(ctx, event)
	case models.EventTypeCardStateChanged:
		return ws.handleCardStateChanged(ctx, event)
	default:
		xlog.Info(ctx, "[SERVICE] ignoring webhook event of unknown type",
			xlog.Uint64("eventId", event.ID), xlog.String("type", event.Type))
		return models.WebhookOutcomeIgnored, nil
	}
}

// handleBalanceUpdated overwrites the local balance from the event and
// leaves the account synced. The remote figure always wins; a balance log is
// written only when the event actually changes something.
func (ws *webhook) handleBalanceUpdated(ctx context.Context, event models.WebhookEvent) (models.WebhookProcessOutcome, error) {
	var payload models.BalanceUpdatedPayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		return models.WebhookOutcomeFailed, fmt.Errorf("decode balance payload: %w", err)
	}

	acc, err := ws.srv.sqlRepo.GetAccountRepository().GetOneByRemoteID(ctx, payload.ID)
	if err != nil {
		if errors.Is(err, common.ErrAccountNotFound) {
			xlog.Info(ctx, "[SERVICE] webhook references unknown account",
				xlog.Uint64("eventId", event.ID), xlog.String("remoteAccountId", payload.ID))
			return models.WebhookOutcomeIgnored, nil
		}
		return models.WebhookOutcomeFailed, checkDatabaseError(err)
	}

	newBalance := payload.Balance.ToBalance()
	changed := !acc.Balance.Equal(newBalance)
	if !changed && acc.SyncStatus == models.SyncStatusSynced {
		return models.WebhookOutcomeProcessed, nil
	}

	err = ws.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		if err := r.GetAccountRepository().UpdateBalance(ctx, acc.ID, newBalance); err != nil {
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
			Description: "balance update webhook",
		})
		return err
	})
	if err != nil {
		return models.WebhookOutcomeFailed, checkDatabaseError(err)
	}

	if changed {
		ws.srv.publishBalanceLog(ctx, models.BalanceLogsPayload{
			AccountID:       acc.ID,
			RemoteAccountID: payload.ID,
			ChangeType:      models.ChangeTypeWeavrSync,
			Before:          acc.Balance,
			After:           newBalance,
		})
	}

	return models.WebhookOutcomeProcessed, nil
}

func (ws *webhook) handleAccountStateChanged(ctx context.Context, event models.WebhookEvent) (models.WebhookProcessOutcome, error) {
	var payload models.StateChangedPayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		return models.WebhookOutcomeFailed, fmt.Errorf("decode state payload: %w", err)
	}

	acc, err := ws.srv.sqlRepo.GetAccountRepository().GetOneByRemoteID(ctx, payload.ID)
	if err != nil {
		if errors.Is(err, common.ErrAccountNotFound) {
			xlog.Info(ctx, "[SERVICE] webhook references unknown account",
				xlog.Uint64("eventId", event.ID), xlog.String("remoteAccountId", payload.ID))
			return models.WebhookOutcomeIgnored, nil
		}
		return models.WebhookOutcomeFailed, checkDatabaseError(err)
	}

	state := models.MapRemoteAccountState(payload.State)
	if err := ws.srv.sqlRepo.GetAccountRepository().UpdateState(ctx, acc.ID, state); err != nil {
		return models.WebhookOutcomeFailed, checkDatabaseError(err)
	}

	return models.WebhookOutcomeProcessed, nil
}

func (ws *webhook) handleTransferStateChanged(ctx context.Context, event models.WebhookEvent) (models.WebhookProcessOutcome, error) {
	var payload models.StateChangedPayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		return models.WebhookOutcomeFailed, fmt.Errorf("decode state payload: %w", err)
	}

	status := models.MapRemoteTransferState(payload.State)
	err := ws.srv.sqlRepo.GetTransactionRepository().UpdateStatusByRemoteID(ctx, payload.ID, status)
	if err != nil {
		if errors.Is(err, common.ErrTransactionNotFound) {
			xlog.Info(ctx, "[SERVICE] webhook references unknown transfer",
				xlog.Uint64("eventId", event.ID), xlog.String("remoteTransferId", payload.ID))
			return models.WebhookOutcomeIgnored, nil
		}
		return models.WebhookOutcomeFailed, checkDatabaseError(err)
	}

	return models.WebhookOutcomeProcessed, nil
}

func (ws *webhook) handleCardStateChanged(ctx context.Context, event models.WebhookEvent) (models.WebhookProcessOutcome, error) {
	var payload models.StateChangedPayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		return models.WebhookOutcomeFailed, fmt.Errorf("decode state payload: %w", err)
	}

	state := models.MapRemoteCardState(payload.State)
	err := ws.srv.sqlRepo.GetCardRepository().UpdateStateByRemoteID(ctx, payload.ID, state)
	if err != nil {
		if errors.Is(err, common.ErrCardNotFound) {
			xlog.Info(ctx, "[SERVICE] webhook references unknown card",
				xlog.Uint64("eventId", event.ID), xlog.String("remoteCardId", payload.ID))
			return models.WebhookOutcomeIgnored, nil
		}
		return models.WebhookOutcomeFailed, checkDatabaseError(err)
	}

	return models.WebhookOutcomeProcessed, nil
}

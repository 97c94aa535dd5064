package services_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/amberpay/go-weavr-sync/internal/common"
	"github.com/amberpay/go-weavr-sync/internal/models"
	"github.com/amberpay/go-weavr-sync/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func inboundEvent(id, eventType string, data any) models.InboundWebhookEvent {
	raw, _ := json.Marshal(data)
	return models.InboundWebhookEvent{
		ID:   id,
		Type: eventType,
		Data: raw,
	}
}

func TestWebhookProcess(t *testing.T) {
	type args struct {
		event models.InboundWebhookEvent
	}

	tests := []struct {
		name        string
		args        args
		doMock      func(h testServiceHelper, args args)
		wantOutcome models.WebhookProcessOutcome
		wantErr     bool
	}{
		{
			name: "balance update overwrites the local balance and logs it",
			args: args{event: inboundEvent("evt-1", models.EventTypeAccountBalanceUpdated, models.BalanceUpdatedPayload{
				ID: "ma-1",
				Balance: models.WebhookBalance{
					Available: decimal.NewFromInt(80),
				},
			})},
			doMock: func(h testServiceHelper, args args) {
				h.mockCacheRepository.EXPECT().
					SetIfNotExists(gomock.Any(), repositories.WebhookDedupKey("evt-1"), gomock.Any(), h.config.Webhook.DedupTTL).
					Return(true, nil)
				h.mockWebhookEventRepository.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(models.WebhookEvent{ID: 100, RemoteEventID: "evt-1", Type: args.event.Type, Payload: args.event.Data}, nil)

				acc := syncedAccount(1, "ma-1")
				acc.Balance = models.Balance{Available: decimal.NewFromInt(50)}
				h.mockAccountRepository.EXPECT().
					GetOneByRemoteID(gomock.Any(), "ma-1").
					Return(acc, nil)
				h.atomicPassthrough()
				h.mockAccountRepository.EXPECT().
					UpdateBalance(gomock.Any(), uint64(1), gomock.Any()).
					Return(nil)
				h.mockBalanceLogRepository.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, log models.BalanceLog) (models.BalanceLog, error) {
						assert.True(t, log.New.Available.Equal(decimal.NewFromInt(80)))
						return log, nil
					})
				h.mockPublisher.EXPECT().
					Publish(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
				h.mockWebhookEventRepository.EXPECT().
					MarkProcessed(gomock.Any(), uint64(100)).
					Return(nil)
			},
			wantOutcome: models.WebhookOutcomeProcessed,
		},
		{
			name: "unchanged balance writes nothing",
			args: args{event: inboundEvent("evt-2", models.EventTypeAccountBalanceUpdated, models.BalanceUpdatedPayload{
				ID: "ma-2",
				Balance: models.WebhookBalance{
					Available: decimal.NewFromInt(50),
				},
			})},
			doMock: func(h testServiceHelper, args args) {
				h.mockCacheRepository.EXPECT().
					SetIfNotExists(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(true, nil)
				h.mockWebhookEventRepository.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(models.WebhookEvent{ID: 101, Type: args.event.Type, Payload: args.event.Data}, nil)

				acc := syncedAccount(2, "ma-2")
				acc.Balance = models.Balance{Available: decimal.NewFromInt(50)}
				h.mockAccountRepository.EXPECT().
					GetOneByRemoteID(gomock.Any(), "ma-2").
					Return(acc, nil)
				h.mockWebhookEventRepository.EXPECT().
					MarkProcessed(gomock.Any(), uint64(101)).
					Return(nil)
			},
			wantOutcome: models.WebhookOutcomeProcessed,
		},
		{
			name: "balance update marks a stale account synced without a balance log",
			args: args{event: inboundEvent("evt-8", models.EventTypeAccountBalanceUpdated, models.BalanceUpdatedPayload{
				ID: "ma-8",
				Balance: models.WebhookBalance{
					Available: decimal.NewFromInt(50),
				},
			})},
			doMock: func(h testServiceHelper, args args) {
				h.mockCacheRepository.EXPECT().
					SetIfNotExists(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(true, nil)
				h.mockWebhookEventRepository.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(models.WebhookEvent{ID: 108, Type: args.event.Type, Payload: args.event.Data}, nil)

				acc := syncedAccount(8, "ma-8")
				acc.SyncStatus = models.SyncStatusPendingIBAN
				acc.Balance = models.Balance{Available: decimal.NewFromInt(50)}
				h.mockAccountRepository.EXPECT().
					GetOneByRemoteID(gomock.Any(), "ma-8").
					Return(acc, nil)
				h.atomicPassthrough()
				h.mockAccountRepository.EXPECT().
					UpdateBalance(gomock.Any(), uint64(8), gomock.Any()).
					Return(nil)
				h.mockWebhookEventRepository.EXPECT().
					MarkProcessed(gomock.Any(), uint64(108)).
					Return(nil)
			},
			wantOutcome: models.WebhookOutcomeProcessed,
		},
		{
			name: "redelivery caught by the cache never reaches the database",
			args: args{event: inboundEvent("evt-3", models.EventTypeAccountBalanceUpdated, models.BalanceUpdatedPayload{ID: "ma-3"})},
			doMock: func(h testServiceHelper, args args) {
				h.mockCacheRepository.EXPECT().
					SetIfNotExists(gomock.Any(), repositories.WebhookDedupKey("evt-3"), gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantOutcome: models.WebhookOutcomeDuplicate,
		},
		{
			name: "redelivery caught by the unique index is a no-op",
			args: args{event: inboundEvent("evt-4", models.EventTypeAccountBalanceUpdated, models.BalanceUpdatedPayload{ID: "ma-4"})},
			doMock: func(h testServiceHelper, args args) {
				h.mockCacheRepository.EXPECT().
					SetIfNotExists(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(true, nil)
				h.mockWebhookEventRepository.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(models.WebhookEvent{}, common.ErrDuplicateWebhookEvent)
			},
			wantOutcome: models.WebhookOutcomeDuplicate,
		},
		{
			name: "event for an unknown account is persisted and ignored",
			args: args{event: inboundEvent("evt-5", models.EventTypeAccountBalanceUpdated, models.BalanceUpdatedPayload{ID: "ma-unknown"})},
			doMock: func(h testServiceHelper, args args) {
				h.mockCacheRepository.EXPECT().
					SetIfNotExists(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(true, nil)
				h.mockWebhookEventRepository.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(models.WebhookEvent{ID: 102, Type: args.event.Type, Payload: args.event.Data}, nil)
				h.mockAccountRepository.EXPECT().
					GetOneByRemoteID(gomock.Any(), "ma-unknown").
					Return(models.Account{}, common.ErrAccountNotFound)
				h.mockWebhookEventRepository.EXPECT().
					MarkProcessed(gomock.Any(), uint64(102)).
					Return(nil)
			},
			wantOutcome: models.WebhookOutcomeIgnored,
		},
		{
			name: "unknown event type is persisted and ignored",
			args: args{event: inboundEvent("evt-6", "managed_card.pin.changed", map[string]string{"id": "c-1"})},
			doMock: func(h testServiceHelper, args args) {
				h.mockCacheRepository.EXPECT().
					SetIfNotExists(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(true, nil)
				h.mockWebhookEventRepository.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(models.WebhookEvent{ID: 103, Type: args.event.Type, Payload: args.event.Data}, nil)
				h.mockWebhookEventRepository.EXPECT().
					MarkProcessed(gomock.Any(), uint64(103)).
					Return(nil)
			},
			wantOutcome: models.WebhookOutcomeIgnored,
		},
		{
			name: "transfer state change updates the transaction",
			args: args{event: inboundEvent("evt-7", models.EventTypeTransferStateChanged, models.StateChangedPayload{
				ID:    "tr-1",
				State: "COMPLETED",
			})},
			doMock: func(h testServiceHelper, args args) {
				h.mockCacheRepository.EXPECT().
					SetIfNotExists(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(true, nil)
				h.mockWebhookEventRepository.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(models.WebhookEvent{ID: 104, Type: args.event.Type, Payload: args.event.Data}, nil)
				h.mockTransactionRepository.EXPECT().
					UpdateStatusByRemoteID(gomock.Any(), "tr-1", models.TransactionStatusCompleted).
					Return(nil)
				h.mockWebhookEventRepository.EXPECT().
					MarkProcessed(gomock.Any(), uint64(104)).
					Return(nil)
			},
			wantOutcome: models.WebhookOutcomeProcessed,
		},
		{
			name: "card state change updates the card",
			args: args{event: inboundEvent("evt-8", models.EventTypeCardStateChanged, models.StateChangedPayload{
				ID:    "card-1",
				State: "FROZEN",
			})},
			doMock: func(h testServiceHelper, args args) {
				h.mockCacheRepository.EXPECT().
					SetIfNotExists(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(true, nil)
				h.mockWebhookEventRepository.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(models.WebhookEvent{ID: 105, Type: args.event.Type, Payload: args.event.Data}, nil)
				h.mockCardRepository.EXPECT().
					UpdateStateByRemoteID(gomock.Any(), "card-1", models.CardStateFrozen).
					Return(nil)
				h.mockWebhookEventRepository.EXPECT().
					MarkProcessed(gomock.Any(), uint64(105)).
					Return(nil)
			},
			wantOutcome: models.WebhookOutcomeProcessed,
		},
		{
			name: "account state change updates the account",
			args: args{event: inboundEvent("evt-9", models.EventTypeAccountStateChanged, models.StateChangedPayload{
				ID:    "ma-9",
				State: "BLOCKED",
			})},
			doMock: func(h testServiceHelper, args args) {
				h.mockCacheRepository.EXPECT().
					SetIfNotExists(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(true, nil)
				h.mockWebhookEventRepository.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(models.WebhookEvent{ID: 106, Type: args.event.Type, Payload: args.event.Data}, nil)
				h.mockAccountRepository.EXPECT().
					GetOneByRemoteID(gomock.Any(), "ma-9").
					Return(syncedAccount(9, "ma-9"), nil)
				h.mockAccountRepository.EXPECT().
					UpdateState(gomock.Any(), uint64(9), models.AccountStateBlocked).
					Return(nil)
				h.mockWebhookEventRepository.EXPECT().
					MarkProcessed(gomock.Any(), uint64(106)).
					Return(nil)
			},
			wantOutcome: models.WebhookOutcomeProcessed,
		},
		{
			name: "handler failure is recorded on the event row",
			args: args{event: inboundEvent("evt-10", models.EventTypeTransferStateChanged, models.StateChangedPayload{
				ID:    "tr-10",
				State: "COMPLETED",
			})},
			doMock: func(h testServiceHelper, args args) {
				h.mockCacheRepository.EXPECT().
					SetIfNotExists(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(true, nil)
				h.mockWebhookEventRepository.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(models.WebhookEvent{ID: 107, Type: args.event.Type, Payload: args.event.Data}, nil)
				h.mockTransactionRepository.EXPECT().
					UpdateStatusByRemoteID(gomock.Any(), "tr-10", models.TransactionStatusCompleted).
					Return(assert.AnError)
				h.mockWebhookEventRepository.EXPECT().
					MarkFailed(gomock.Any(), uint64(107), gomock.Any()).
					Return(nil)
			},
			wantOutcome: models.WebhookOutcomeFailed,
			wantErr:     true,
		},
		{
			name: "persist failure releases the dedup key",
			args: args{event: inboundEvent("evt-11", models.EventTypeCardStateChanged, models.StateChangedPayload{ID: "card-11"})},
			doMock: func(h testServiceHelper, args args) {
				h.mockCacheRepository.EXPECT().
					SetIfNotExists(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(true, nil)
				h.mockWebhookEventRepository.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(models.WebhookEvent{}, assert.AnError)
				h.mockCacheRepository.EXPECT().
					Del(gomock.Any(), repositories.WebhookDedupKey("evt-11")).
					Return(nil)
			},
			wantOutcome: models.WebhookOutcomeFailed,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			h := serviceTestHelper(t)
			tt.doMock(h, tt.args)

			outcome, err := h.services.Webhook.Process(context.Background(), tt.args.event)

			assert.Equal(t, tt.wantOutcome, outcome)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestWebhookReplay(t *testing.T) {
	t.Run("re-runs the handler of a persisted event", func(t *testing.T) {
		h := serviceTestHelper(t)

		payload, _ := json.Marshal(models.StateChangedPayload{ID: "tr-1", State: "FAILED"})
		h.mockWebhookEventRepository.EXPECT().
			GetOneByID(gomock.Any(), uint64(55)).
			Return(models.WebhookEvent{
				ID:      55,
				Type:    models.EventTypeTransferStateChanged,
				Payload: payload,
				Status:  models.WebhookEventFailed,
			}, nil)
		h.mockTransactionRepository.EXPECT().
			UpdateStatusByRemoteID(gomock.Any(), "tr-1", models.TransactionStatusFailed).
			Return(nil)
		h.mockWebhookEventRepository.EXPECT().
			MarkProcessed(gomock.Any(), uint64(55)).
			Return(nil)

		outcome, err := h.services.Webhook.Replay(context.Background(), 55)

		assert.NoError(t, err)
		assert.Equal(t, models.WebhookOutcomeProcessed, outcome)
	})

	t.Run("unknown event id", func(t *testing.T) {
		h := serviceTestHelper(t)

		h.mockWebhookEventRepository.EXPECT().
			GetOneByID(gomock.Any(), uint64(99)).
			Return(models.WebhookEvent{}, common.ErrWebhookEventNotFound)

		_, err := h.services.Webhook.Replay(context.Background(), 99)

		assert.Error(t, err)
	})
}

package services_test

import (
	"context"
	"testing"

	"github.com/amberpay/go-weavr-sync/internal/common"
	"github.com/amberpay/go-weavr-sync/internal/models"
	"github.com/amberpay/go-weavr-sync/internal/weavr"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string {
	return &s
}

func pendingAccount(id uint64) models.Account {
	return models.Account{
		ID:         id,
		Name:       "operating",
		Currency:   "EUR",
		State:      models.AccountStateActive,
		SyncStatus: models.SyncStatusPending,
	}
}

func syncedAccount(id uint64, remoteID string) models.Account {
	acc := pendingAccount(id)
	acc.RemoteID = strPtr(remoteID)
	acc.SyncStatus = models.SyncStatusSynced
	return acc
}

func TestAccountSyncCreation(t *testing.T) {
	type args struct {
		accountID uint64
	}

	tests := []struct {
		name          string
		args          args
		doMock        func(h testServiceHelper, args args)
		wantSuccess   bool
		wantRetryable bool
		wantRemoteID  string
	}{
		{
			name: "creates the remote account and writes back",
			args: args{accountID: 1},
			doMock: func(h testServiceHelper, args args) {
				h.mockAccountRepository.EXPECT().
					GetOneByID(gomock.Any(), args.accountID).
					Return(pendingAccount(args.accountID), nil)
				h.mockWeavrClient.EXPECT().
					CreateManagedAccount(gomock.Any(), gomock.Any(), weavr.CreateManagedAccountRequest{
						ProfileID:    "profile-1",
						FriendlyName: "operating",
						Currency:     "EUR",
						Tag:          "account-1",
					}).
					Return(&weavr.ManagedAccountResponse{ID: "ma-1"}, nil)
				h.atomicPassthrough()
				h.mockAccountRepository.EXPECT().
					MarkSynced(gomock.Any(), args.accountID, gomock.Any()).
					Return(nil)
			},
			wantSuccess:  true,
			wantRemoteID: "ma-1",
		},
		{
			name: "opening balance produces a balance log",
			args: args{accountID: 2},
			doMock: func(h testServiceHelper, args args) {
				h.mockAccountRepository.EXPECT().
					GetOneByID(gomock.Any(), args.accountID).
					Return(pendingAccount(args.accountID), nil)
				h.mockWeavrClient.EXPECT().
					CreateManagedAccount(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&weavr.ManagedAccountResponse{
						ID:       "ma-2",
						Balances: weavr.AccountBalances{Available: decimal.NewFromInt(100)},
					}, nil)
				h.atomicPassthrough()
				h.mockAccountRepository.EXPECT().
					MarkSynced(gomock.Any(), args.accountID, gomock.Any()).
					Return(nil)
				h.mockBalanceLogRepository.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(models.BalanceLog{ID: 1}, nil)
				h.mockPublisher.EXPECT().
					Publish(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantSuccess:  true,
			wantRemoteID: "ma-2",
		},
		{
			name: "already synced account makes no remote call",
			args: args{accountID: 3},
			doMock: func(h testServiceHelper, args args) {
				h.mockAccountRepository.EXPECT().
					GetOneByID(gomock.Any(), args.accountID).
					Return(syncedAccount(args.accountID, "ma-3"), nil)
			},
			wantSuccess:  true,
			wantRemoteID: "ma-3",
		},
		{
			name: "transient remote failure stays retryable",
			args: args{accountID: 4},
			doMock: func(h testServiceHelper, args args) {
				h.mockAccountRepository.EXPECT().
					GetOneByID(gomock.Any(), args.accountID).
					Return(pendingAccount(args.accountID), nil)
				h.mockWeavrClient.EXPECT().
					CreateManagedAccount(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, &weavr.APIError{StatusCode: 503, Message: "unavailable"})
				h.mockAccountRepository.EXPECT().
					MarkSyncFailed(gomock.Any(), args.accountID, gomock.Any(), models.SyncStatusFailed, false).
					Return(nil)
			},
			wantRetryable: true,
		},
		{
			name: "permanent remote failure flags review",
			args: args{accountID: 5},
			doMock: func(h testServiceHelper, args args) {
				h.mockAccountRepository.EXPECT().
					GetOneByID(gomock.Any(), args.accountID).
					Return(pendingAccount(args.accountID), nil)
				h.mockWeavrClient.EXPECT().
					CreateManagedAccount(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, &weavr.APIError{StatusCode: 409, Code: "DUPLICATE_TAG"})
				h.mockAccountRepository.EXPECT().
					MarkSyncFailed(gomock.Any(), args.accountID, gomock.Any(), models.SyncStatusFailed, true).
					Return(nil)
			},
		},
		{
			name: "transient failure at the attempt ceiling flags review",
			args: args{accountID: 6},
			doMock: func(h testServiceHelper, args args) {
				acc := pendingAccount(args.accountID)
				acc.SyncAttempts = 2
				h.mockAccountRepository.EXPECT().
					GetOneByID(gomock.Any(), args.accountID).
					Return(acc, nil)
				h.mockWeavrClient.EXPECT().
					CreateManagedAccount(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, &weavr.APIError{StatusCode: 500})
				h.mockAccountRepository.EXPECT().
					MarkSyncFailed(gomock.Any(), args.accountID, gomock.Any(), models.SyncStatusFailed, true).
					Return(nil)
			},
			wantRetryable: true,
		},
		{
			name: "unknown account",
			args: args{accountID: 7},
			doMock: func(h testServiceHelper, args args) {
				h.mockAccountRepository.EXPECT().
					GetOneByID(gomock.Any(), args.accountID).
					Return(models.Account{}, common.ErrAccountNotFound)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			h := serviceTestHelper(t)
			tt.doMock(h, tt.args)

			res := h.services.Account.SyncCreation(context.Background(), weavr.Credentials{}, tt.args.accountID)

			assert.Equal(t, tt.wantSuccess, res.Success)
			assert.Equal(t, tt.wantRetryable, res.Retryable)
			if tt.wantSuccess {
				assert.Equal(t, tt.wantRemoteID, res.RemoteID)
				assert.NoError(t, res.Err)
			} else {
				assert.Error(t, res.Err)
			}
		})
	}
}

func TestAccountSyncBalanceUpdate(t *testing.T) {
	type args struct {
		accountID uint64
	}

	tests := []struct {
		name        string
		args        args
		doMock      func(h testServiceHelper, args args)
		wantSuccess bool
	}{
		{
			name: "unchanged balance writes no log",
			args: args{accountID: 1},
			doMock: func(h testServiceHelper, args args) {
				acc := syncedAccount(args.accountID, "ma-1")
				acc.Balance = models.Balance{Available: decimal.NewFromInt(50)}
				h.mockAccountRepository.EXPECT().
					GetOneByID(gomock.Any(), args.accountID).
					Return(acc, nil)
				h.mockWeavrClient.EXPECT().
					GetManagedAccount(gomock.Any(), gomock.Any(), "ma-1").
					Return(&weavr.ManagedAccountResponse{
						ID:       "ma-1",
						Balances: weavr.AccountBalances{Available: decimal.NewFromInt(50)},
					}, nil)
				h.atomicPassthrough()
				h.mockAccountRepository.EXPECT().
					MarkSynced(gomock.Any(), args.accountID, gomock.Any()).
					Return(nil)
			},
			wantSuccess: true,
		},
		{
			name: "changed balance writes exactly one log and publishes",
			args: args{accountID: 2},
			doMock: func(h testServiceHelper, args args) {
				acc := syncedAccount(args.accountID, "ma-2")
				acc.Balance = models.Balance{Available: decimal.NewFromInt(50)}
				h.mockAccountRepository.EXPECT().
					GetOneByID(gomock.Any(), args.accountID).
					Return(acc, nil)
				h.mockWeavrClient.EXPECT().
					GetManagedAccount(gomock.Any(), gomock.Any(), "ma-2").
					Return(&weavr.ManagedAccountResponse{
						ID:       "ma-2",
						Balances: weavr.AccountBalances{Available: decimal.NewFromInt(75)},
					}, nil)
				h.atomicPassthrough()
				h.mockAccountRepository.EXPECT().
					MarkSynced(gomock.Any(), args.accountID, gomock.Any()).
					Return(nil)
				h.mockBalanceLogRepository.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, log models.BalanceLog) (models.BalanceLog, error) {
						assert.True(t, log.Previous.Available.Equal(decimal.NewFromInt(50)))
						assert.True(t, log.New.Available.Equal(decimal.NewFromInt(75)))
						assert.Equal(t, models.ChangeTypeWeavrSync, log.ChangeType)
						return log, nil
					})
				h.mockPublisher.EXPECT().
					Publish(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantSuccess: true,
		},
		{
			name: "account without remote id is rejected",
			args: args{accountID: 3},
			doMock: func(h testServiceHelper, args args) {
				h.mockAccountRepository.EXPECT().
					GetOneByID(gomock.Any(), args.accountID).
					Return(pendingAccount(args.accountID), nil)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			h := serviceTestHelper(t)
			tt.doMock(h, tt.args)

			res := h.services.Account.SyncBalanceUpdate(context.Background(), weavr.Credentials{}, tt.args.accountID)

			assert.Equal(t, tt.wantSuccess, res.Success)
		})
	}
}

func TestAccountUpgradeIBAN(t *testing.T) {
	type args struct {
		accountID uint64
	}

	tests := []struct {
		name           string
		args           args
		doMock         func(h testServiceHelper, args args)
		wantSuccess    bool
		wantSyncStatus models.SyncStatus
	}{
		{
			name: "allocation finished writes the details back",
			args: args{accountID: 1},
			doMock: func(h testServiceHelper, args args) {
				h.mockAccountRepository.EXPECT().
					GetOneByID(gomock.Any(), args.accountID).
					Return(syncedAccount(args.accountID, "ma-1"), nil)
				h.mockWeavrClient.EXPECT().
					UpgradeManagedAccountIBAN(gomock.Any(), gomock.Any(), "ma-1").
					Return(&weavr.IBANResponse{
						State: weavr.IBANStateAllocated,
						BankAccountDetails: &weavr.BankAccountDetails{
							IBAN: "DE89370400440532013000",
							BIC:  "COBADEFFXXX",
						},
					}, nil)
				h.mockAccountRepository.EXPECT().
					UpdateIBAN(gomock.Any(), args.accountID, "DE89370400440532013000", "COBADEFFXXX", gomock.Any()).
					Return(nil)
			},
			wantSuccess: true,
		},
		{
			name: "pending allocation parks the account",
			args: args{accountID: 2},
			doMock: func(h testServiceHelper, args args) {
				h.mockAccountRepository.EXPECT().
					GetOneByID(gomock.Any(), args.accountID).
					Return(syncedAccount(args.accountID, "ma-2"), nil)
				h.mockWeavrClient.EXPECT().
					UpgradeManagedAccountIBAN(gomock.Any(), gomock.Any(), "ma-2").
					Return(&weavr.IBANResponse{State: weavr.IBANStatePendingAllocation}, nil)
				h.mockAccountRepository.EXPECT().
					SetSyncStatus(gomock.Any(), args.accountID, models.SyncStatusPendingIBAN).
					Return(nil)
			},
			wantSuccess: true,
		},
		{
			name: "account that already has an iban makes no remote call",
			args: args{accountID: 3},
			doMock: func(h testServiceHelper, args args) {
				acc := syncedAccount(args.accountID, "ma-3")
				acc.IBAN = strPtr("DE89370400440532013000")
				h.mockAccountRepository.EXPECT().
					GetOneByID(gomock.Any(), args.accountID).
					Return(acc, nil)
			},
			wantSuccess: true,
		},
		{
			name: "unsynced account is rejected",
			args: args{accountID: 4},
			doMock: func(h testServiceHelper, args args) {
				h.mockAccountRepository.EXPECT().
					GetOneByID(gomock.Any(), args.accountID).
					Return(pendingAccount(args.accountID), nil)
			},
		},
		{
			name: "remote failure is recorded as iban_failed",
			args: args{accountID: 5},
			doMock: func(h testServiceHelper, args args) {
				h.mockAccountRepository.EXPECT().
					GetOneByID(gomock.Any(), args.accountID).
					Return(syncedAccount(args.accountID, "ma-5"), nil)
				h.mockWeavrClient.EXPECT().
					UpgradeManagedAccountIBAN(gomock.Any(), gomock.Any(), "ma-5").
					Return(nil, &weavr.APIError{StatusCode: 400, Code: "STATE_INVALID"})
				h.mockAccountRepository.EXPECT().
					MarkSyncFailed(gomock.Any(), args.accountID, gomock.Any(), models.SyncStatusIBANFailed, true).
					Return(nil)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			h := serviceTestHelper(t)
			tt.doMock(h, tt.args)

			res := h.services.Account.UpgradeIBAN(context.Background(), weavr.Credentials{}, tt.args.accountID)

			assert.Equal(t, tt.wantSuccess, res.Success)
		})
	}
}

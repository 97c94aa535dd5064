package services_test

import (
	"context"
	"testing"

	"github.com/amberpay/go-weavr-sync/internal/models"
	"github.com/amberpay/go-weavr-sync/internal/weavr"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestReconRunSweep(t *testing.T) {
	t.Run("continues past individual failures", func(t *testing.T) {
		h := serviceTestHelper(t)

		batchSize := h.config.Recon.BatchSizeOrDefault()
		maxAttempts := h.config.Recon.MaxSyncAttemptsOrDefault()

		identOK := pendingIdentity(1, models.IdentityKindConsumer)
		identOK.RemoteID = strPtr("cons-1")
		identFail := pendingIdentity(2, models.IdentityKindConsumer)

		h.mockIdentityRepository.EXPECT().
			GetPendingSync(gomock.Any(), batchSize, maxAttempts).
			Return([]models.Identity{identOK, identFail}, nil)
		h.mockIdentityRepository.EXPECT().
			GetOneByID(gomock.Any(), uint64(1)).
			Return(identOK, nil)
		h.mockIdentityRepository.EXPECT().
			GetOneByID(gomock.Any(), uint64(2)).
			Return(identFail, nil)
		h.mockWeavrClient.EXPECT().
			CreateConsumer(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, &weavr.APIError{StatusCode: 409, Code: "EMAIL_TAKEN"})
		h.mockIdentityRepository.EXPECT().
			MarkSyncFailed(gomock.Any(), uint64(2), gomock.Any(), true).
			Return(nil)

		accOK := syncedAccount(10, "ma-10")
		accFail := pendingAccount(11)

		h.mockAccountRepository.EXPECT().
			GetPendingSync(gomock.Any(), batchSize, maxAttempts).
			Return([]models.Account{accOK, accFail}, nil)
		h.mockAccountRepository.EXPECT().
			GetOneByID(gomock.Any(), uint64(10)).
			Return(accOK, nil)
		h.mockAccountRepository.EXPECT().
			GetOneByID(gomock.Any(), uint64(11)).
			Return(accFail, nil)
		h.mockWeavrClient.EXPECT().
			CreateManagedAccount(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, &weavr.APIError{StatusCode: 503})
		h.mockAccountRepository.EXPECT().
			MarkSyncFailed(gomock.Any(), uint64(11), gomock.Any(), models.SyncStatusFailed, false).
			Return(nil)

		report, err := h.services.Recon.RunSweep(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 2, report.Identities.Attempted)
		assert.Equal(t, 1, report.Identities.Synced)
		assert.Equal(t, 1, report.Identities.Failed)
		assert.Equal(t, 2, report.Accounts.Attempted)
		assert.Equal(t, 1, report.Accounts.Synced)
		assert.Equal(t, 1, report.Accounts.Failed)
	})

	t.Run("empty working set is a clean run", func(t *testing.T) {
		h := serviceTestHelper(t)

		h.mockIdentityRepository.EXPECT().
			GetPendingSync(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)
		h.mockAccountRepository.EXPECT().
			GetPendingSync(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		report, err := h.services.Recon.RunSweep(context.Background())

		assert.NoError(t, err)
		assert.Zero(t, report.Identities.Attempted)
		assert.Zero(t, report.Accounts.Attempted)
	})
}

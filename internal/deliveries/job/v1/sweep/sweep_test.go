package sweep_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/amberpay/go-weavr-sync/internal/common/xlog"
	"github.com/amberpay/go-weavr-sync/internal/config"
	"github.com/amberpay/go-weavr-sync/internal/deliveries/job/v1/sweep"
	"github.com/amberpay/go-weavr-sync/internal/models"
	"github.com/amberpay/go-weavr-sync/internal/services/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

func sweepTestHelper(t *testing.T) (map[string]func(ctx context.Context) error, *mock.MockReconService) {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	mockRecon := mock.NewMockReconService(mockCtrl)

	cfg := config.Config{
		ExponentialBackoff: config.ExponentialBackOffConfig{
			// stop after the first failed attempt so tests do not sleep
			MaxBackoffTime:    time.Nanosecond,
			BackoffMultiplier: 1,
			MaxRetries:        1,
		},
	}

	return sweep.Routes(cfg, mockRecon), mockRecon
}

func Test_RunReconSweep(t *testing.T) {
	t.Run("clean sweep succeeds", func(t *testing.T) {
		routes, mockRecon := sweepTestHelper(t)

		mockRecon.EXPECT().RunSweep(gomock.Any()).Return(models.SyncBatchReport{
			Identities: models.SyncBatchCounter{Attempted: 2, Synced: 2},
			Accounts:   models.SyncBatchCounter{Attempted: 1, Synced: 1},
		}, nil)

		fn, ok := routes["RunReconSweep"]
		require.True(t, ok)
		assert.NoError(t, fn(context.Background()))
	})

	t.Run("batch level failure surfaces after retries", func(t *testing.T) {
		routes, mockRecon := sweepTestHelper(t)

		mockRecon.EXPECT().RunSweep(gomock.Any()).
			Return(models.SyncBatchReport{}, errors.New("pending query timed out")).
			MinTimes(1)

		err := routes["RunReconSweep"](context.Background())
		assert.Error(t, err)
	})
}

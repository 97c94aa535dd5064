package services_test

import (
	"context"
	"os"
	"testing"
	"time"

	metricsMock "github.com/amberpay/go-weavr-sync/internal/common/metrics/mock"
	publisherMock "github.com/amberpay/go-weavr-sync/internal/common/publisher/mock"
	"github.com/amberpay/go-weavr-sync/internal/common/xlog"
	"github.com/amberpay/go-weavr-sync/internal/config"
	"github.com/amberpay/go-weavr-sync/internal/repositories"
	"github.com/amberpay/go-weavr-sync/internal/repositories/mock"
	"github.com/amberpay/go-weavr-sync/internal/services"
	weavrMock "github.com/amberpay/go-weavr-sync/internal/weavr/mock"

	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

type testServiceHelper struct {
	mockCtrl *gomock.Controller
	config   config.Config

	mockSQLRepository          *mock.MockSQLRepository
	mockAccountRepository      *mock.MockAccountRepository
	mockIdentityRepository     *mock.MockIdentityRepository
	mockTransactionRepository  *mock.MockTransactionRepository
	mockCardRepository         *mock.MockCardRepository
	mockBalanceLogRepository   *mock.MockBalanceLogRepository
	mockWebhookEventRepository *mock.MockWebhookEventRepository
	mockCacheRepository        *mock.MockCacheRepository
	mockWeavrClient            *weavrMock.MockClient
	mockPublisher              *publisherMock.MockPublisher

	services *services.Services
}

func serviceTestHelper(t *testing.T) testServiceHelper {
	t.Helper()
	t.Parallel()

	mockCtrl := gomock.NewController(t)

	mockSQLRepository := mock.NewMockSQLRepository(mockCtrl)
	mockAccountRepository := mock.NewMockAccountRepository(mockCtrl)
	mockIdentityRepository := mock.NewMockIdentityRepository(mockCtrl)
	mockTransactionRepository := mock.NewMockTransactionRepository(mockCtrl)
	mockCardRepository := mock.NewMockCardRepository(mockCtrl)
	mockBalanceLogRepository := mock.NewMockBalanceLogRepository(mockCtrl)
	mockWebhookEventRepository := mock.NewMockWebhookEventRepository(mockCtrl)
	mockCacheRepository := mock.NewMockCacheRepository(mockCtrl)
	mockWeavrClient := weavrMock.NewMockClient(mockCtrl)
	mockPublisher := publisherMock.NewMockPublisher(mockCtrl)

	mockSQLRepository.EXPECT().GetAccountRepository().Return(mockAccountRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetIdentityRepository().Return(mockIdentityRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetTransactionRepository().Return(mockTransactionRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetCardRepository().Return(mockCardRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetBalanceLogRepository().Return(mockBalanceLogRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetWebhookEventRepository().Return(mockWebhookEventRepository).AnyTimes()

	mockMetrics := metricsMock.NewMockMetrics(mockCtrl)
	mockMetrics.EXPECT().GetSyncPrometheus().Return(nil).AnyTimes()
	mockMetrics.EXPECT().GetWebhookPrometheus().Return(nil).AnyTimes()

	conf := config.Config{
		Weavr: config.WeavrConfig{
			APIKey:             "service-api-key",
			AuthToken:          "service-auth-token",
			ProfileID:          "profile-1",
			ConsumerProfileID:  "consumer-profile-1",
			CorporateProfileID: "corporate-profile-1",
		},
		Recon: config.ReconConfig{
			BatchSize:       10,
			MaxSyncAttempts: 3,
		},
		MessageBroker: config.MessageBroker{
			Enabled:          true,
			BalanceLogsTopic: "balance-logs",
		},
		Webhook: config.WebhookConfig{
			DedupTTL: time.Minute,
		},
	}

	serv := services.New(
		conf,
		mockSQLRepository,
		mockCacheRepository,
		mockWeavrClient,
		mockPublisher,
		mockMetrics,
	)

	return testServiceHelper{
		mockCtrl:                   mockCtrl,
		config:                     conf,
		mockSQLRepository:          mockSQLRepository,
		mockAccountRepository:      mockAccountRepository,
		mockIdentityRepository:     mockIdentityRepository,
		mockTransactionRepository:  mockTransactionRepository,
		mockCardRepository:         mockCardRepository,
		mockBalanceLogRepository:   mockBalanceLogRepository,
		mockWebhookEventRepository: mockWebhookEventRepository,
		mockCacheRepository:        mockCacheRepository,
		mockWeavrClient:            mockWeavrClient,
		mockPublisher:              mockPublisher,
		services:                   serv,
	}
}

// atomicPassthrough makes the mocked Atomic run its steps against the same
// mocked sub-repositories, without a real transaction.
func (h testServiceHelper) atomicPassthrough() {
	h.mockSQLRepository.EXPECT().
		Atomic(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, steps func(context.Context, repositories.SQLRepository) error) error {
			return steps(ctx, h.mockSQLRepository)
		})
}

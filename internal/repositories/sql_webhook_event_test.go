package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/amberpay/go-weavr-sync/internal/common"
	"github.com/amberpay/go-weavr-sync/internal/config"
	"github.com/amberpay/go-weavr-sync/internal/models"
)

func TestWebhookEventRepositoryTestSuite(t *testing.T) {
	t.Helper()
	suite.Run(t, new(webhookEventTestSuite))
}

type webhookEventTestSuite struct {
	suite.Suite
	t    *testing.T
	db   *sql.DB
	mock sqlmock.Sqlmock
	repo WebhookEventRepository
}

func (suite *webhookEventTestSuite) SetupTest() {
	var err error
	var cfg config.Config

	suite.db, suite.mock, err = sqlmock.New()
	require.NoError(suite.T(), err)
	suite.t = suite.T()

	suite.repo = NewSQLRepository(suite.db, suite.db, cfg).GetWebhookEventRepository()
}

func (suite *webhookEventTestSuite) TearDownTest() {
	defer suite.db.Close()
}

func (suite *webhookEventTestSuite) TestRepository_Create() {
	in := models.WebhookEvent{
		RemoteEventID: "evt-123",
		Type:          models.EventTypeAccountBalanceUpdated,
		Payload:       []byte(`{"id":"ma-1"}`),
	}

	testCases := []struct {
		name       string
		setupMocks func()
		wantErr    error
	}{
		{
			name: "test success",
			setupMocks: func() {
				suite.mock.ExpectQuery(`INSERT INTO webhook_event`).
					WithArgs("evt-123", models.EventTypeAccountBalanceUpdated, []byte(`{"id":"ma-1"}`), string(models.WebhookEventReceived)).
					WillReturnRows(sqlmock.NewRows([]string{"id", "receivedAt"}).AddRow(uint64(11), time.Now()))
			},
		},
		{
			name: "test duplicate remote event id",
			setupMocks: func() {
				suite.mock.ExpectQuery(`INSERT INTO webhook_event`).
					WillReturnError(&pq.Error{Code: pq.ErrorCode(pgUniqueViolation)})
			},
			wantErr: common.ErrDuplicateWebhookEvent,
		},
		{
			name: "test insert error",
			setupMocks: func() {
				suite.mock.ExpectQuery(`INSERT INTO webhook_event`).
					WillReturnError(assert.AnError)
			},
			wantErr: assert.AnError,
		},
	}

	for _, tt := range testCases {
		tt := tt
		suite.t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			got, err := suite.repo.Create(context.TODO(), in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, uint64(11), got.ID)
			assert.Equal(t, models.WebhookEventReceived, got.Status)
		})
	}
}

func (suite *webhookEventTestSuite) TestRepository_GetOneByID() {
	now := time.Now()

	suite.t.Run("test success", func(t *testing.T) {
		suite.mock.ExpectQuery(`SELECT .+ FROM webhook_event`).
			WithArgs(uint64(11)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "remoteEventId", "type", "payload", "status", "error", "receivedAt", "processedAt"}).
				AddRow(uint64(11), "evt-123", models.EventTypeCardStateChanged, []byte(`{}`), string(models.WebhookEventReceived), nil, now, nil))

		got, err := suite.repo.GetOneByID(context.TODO(), 11)
		require.NoError(t, err)
		assert.Equal(t, "evt-123", got.RemoteEventID)
		assert.Equal(t, models.EventTypeCardStateChanged, got.Type)
	})

	suite.t.Run("test not found", func(t *testing.T) {
		suite.mock.ExpectQuery(`SELECT .+ FROM webhook_event`).
			WillReturnError(sql.ErrNoRows)

		_, err := suite.repo.GetOneByID(context.TODO(), 99)
		assert.ErrorIs(t, err, common.ErrWebhookEventNotFound)
	})
}

func (suite *webhookEventTestSuite) TestRepository_MarkProcessed() {
	suite.mock.ExpectExec(`UPDATE webhook_event SET`).
		WithArgs(uint64(11), string(models.WebhookEventProcessed)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := suite.repo.MarkProcessed(context.TODO(), 11)
	assert.NoError(suite.t, err)
}

func (suite *webhookEventTestSuite) TestRepository_MarkFailed() {
	suite.mock.ExpectExec(`UPDATE webhook_event SET`).
		WithArgs(uint64(11), string(models.WebhookEventFailed), "account not found").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := suite.repo.MarkFailed(context.TODO(), 11, "account not found")
	assert.NoError(suite.t, err)
}

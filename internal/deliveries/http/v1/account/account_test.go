package account_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/amberpay/go-weavr-sync/internal/common/validation"
	"github.com/amberpay/go-weavr-sync/internal/common/xlog"
	"github.com/amberpay/go-weavr-sync/internal/deliveries/http/v1/account"
	"github.com/amberpay/go-weavr-sync/internal/models"
	"github.com/amberpay/go-weavr-sync/internal/services/mock"
	"github.com/amberpay/go-weavr-sync/internal/weavr"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

func accountTestHelper(t *testing.T) (*echo.Echo, *mock.MockAccountService) {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	mockSvc := mock.NewMockAccountService(mockCtrl)

	e := echo.New()
	account.New(e.Group("/api/v1"), mockSvc)

	return e, mockSvc
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func Test_Handler_create(t *testing.T) {
	t.Run("created account is rendered with its balance total", func(t *testing.T) {
		e, mockSvc := accountTestHelper(t)

		mockSvc.EXPECT().
			Create(gomock.Any(), models.CreateAccount{Name: "operating", Currency: "EUR"}).
			Return(models.Account{
				ID:       1,
				Name:     "operating",
				Currency: "EUR",
				Balance: models.Balance{
					Available: decimal.NewFromInt(10),
					Blocked:   decimal.NewFromInt(5),
				},
				SyncStatus: models.SyncStatusPending,
			}, nil)

		rec := doRequest(e, http.MethodPost, "/api/v1/accounts", `{"name":"operating","currency":"EUR"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"totalBalance":"15"`)
		assert.Contains(t, rec.Body.String(), `"syncStatus":"pending"`)
	})

	t.Run("validation failures render the 422 shape", func(t *testing.T) {
		e, mockSvc := accountTestHelper(t)

		valErr := validation.ValidateStruct(models.CreateAccount{Currency: "eur"})
		mockSvc.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(models.Account{}, valErr)

		rec := doRequest(e, http.MethodPost, "/api/v1/accounts", `{"currency":"eur"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "validation error")
	})
}

func Test_Handler_getOne(t *testing.T) {
	t.Run("unknown account maps to 404 with its error code", func(t *testing.T) {
		e, mockSvc := accountTestHelper(t)

		mockSvc.EXPECT().
			GetOneByID(gomock.Any(), uint64(7)).
			Return(models.Account{}, models.GetErrMap(models.ErrKeyAccountNotFound))

		rec := doRequest(e, http.MethodGet, "/api/v1/accounts/7", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), models.ErrKeyAccountNotFound)
	})

	t.Run("non numeric id is rejected before the service runs", func(t *testing.T) {
		e, _ := accountTestHelper(t)

		rec := doRequest(e, http.MethodGet, "/api/v1/accounts/abc", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func Test_Handler_getList(t *testing.T) {
	e, mockSvc := accountTestHelper(t)

	mockSvc.EXPECT().
		GetList(gomock.Any(), models.AccountFilterOptions{
			SyncStatus: []models.SyncStatus{models.SyncStatusPending, models.SyncStatusFailed},
			Currency:   "EUR",
			Limit:      10,
		}).
		Return([]models.Account{{ID: 1}, {ID: 2}}, nil)

	rec := doRequest(e, http.MethodGet, "/api/v1/accounts?syncStatus=pending,failed&currency=EUR&limit=10", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_rows":2`)
	assert.Contains(t, rec.Body.String(), `"kind":"collection"`)
}

func Test_Handler_syncCreation(t *testing.T) {
	t.Run("per request credentials are forwarded to the service", func(t *testing.T) {
		e, mockSvc := accountTestHelper(t)

		mockSvc.EXPECT().
			SyncCreation(gomock.Any(), weavr.Credentials{APIKey: "caller-key", AuthToken: "caller-token"}, uint64(3)).
			Return(models.SyncResultOK("ma-3"))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts/3/sync", nil)
		req.Header.Set("X-Api-Key", "caller-key")
		req.Header.Set("X-Auth-Token", "caller-token")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"synced":true,"remoteId":"ma-3"}`, rec.Body.String())
	})

	t.Run("remote failure maps to 502", func(t *testing.T) {
		e, mockSvc := accountTestHelper(t)

		mockSvc.EXPECT().
			SyncCreation(gomock.Any(), gomock.Any(), uint64(3)).
			Return(models.SyncResultErr(models.GetErrMap(models.ErrKeyRemoteTransient), true))

		rec := doRequest(e, http.MethodPost, "/api/v1/accounts/3/sync", "")

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), models.ErrKeyRemoteTransient)
	})
}

func Test_Handler_clearReview(t *testing.T) {
	e, mockSvc := accountTestHelper(t)

	mockSvc.EXPECT().ClearReview(gomock.Any(), uint64(9)).Return(nil)

	rec := doRequest(e, http.MethodPost, "/api/v1/accounts/9/clear-review", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/amberpay/go-weavr-sync/internal/common/ctxdata"
	"github.com/amberpay/go-weavr-sync/internal/common/http/middleware"
	"github.com/amberpay/go-weavr-sync/internal/common/xlog"
	"github.com/amberpay/go-weavr-sync/internal/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

func newTestApp(conf config.Config) (*echo.Echo, middleware.AppMiddleware) {
	e := echo.New()
	return e, middleware.NewMiddleware(conf)
}

func Test_Middleware_InternalAuth(t *testing.T) {
	tests := []struct {
		name      string
		secretKey string
		wantCode  int
	}{
		{
			name:      "valid secret key passes through",
			secretKey: "shared-secret",
			wantCode:  http.StatusOK,
		},
		{
			name:     "missing secret key is unauthorized",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:      "wrong secret key is unauthorized",
			secretKey: "guess",
			wantCode:  http.StatusUnauthorized,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, m := newTestApp(config.Config{SecretKey: "shared-secret"})
			e.GET("/protected", func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			}, m.InternalAuth)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.secretKey != "" {
				req.Header.Set("X-Secret-Key", tt.secretKey)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func Test_Middleware_Context(t *testing.T) {
	t.Run("inbound correlation id is propagated", func(t *testing.T) {
		e, m := newTestApp(config.Config{})
		e.Use(m.Context())

		var got string
		e.GET("/", func(c echo.Context) error {
			got = ctxdata.GetCorrelationId(c.Request().Context())
			return c.NoContent(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Correlation-Id", "corr-42")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "corr-42", got)
		assert.Equal(t, "corr-42", rec.Header().Get("X-Correlation-Id"))
	})

	t.Run("a correlation id is generated when absent", func(t *testing.T) {
		e, m := newTestApp(config.Config{})
		e.Use(m.Context())

		var got string
		e.GET("/", func(c echo.Context) error {
			got = ctxdata.GetCorrelationId(c.Request().Context())
			return c.NoContent(http.StatusOK)
		})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, got)
		assert.Equal(t, got, rec.Header().Get("X-Correlation-Id"))
	})
}

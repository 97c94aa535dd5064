package weavr_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amberpay/go-weavr-sync/internal/common/cache"
	"github.com/amberpay/go-weavr-sync/internal/config"
	"github.com/amberpay/go-weavr-sync/internal/weavr"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) weavr.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return weavr.New(config.WeavrConfig{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	}, nil)
}

func TestClient_CreateManagedAccount(t *testing.T) {
	creds := weavr.Credentials{APIKey: "key", AuthToken: "token"}

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/multi/managed_accounts", r.URL.Path)
		assert.Equal(t, "key", r.Header.Get("api-key"))
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))

		var req weavr.CreateManagedAccountRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "EUR", req.Currency)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":       "r1",
			"state":    "ACTIVE",
			"currency": "EUR",
			"balances": map[string]string{
				"available": "10.50",
				"blocked":   "0",
				"reserved":  "0",
			},
		})
	})

	res, err := c.CreateManagedAccount(context.Background(), creds, weavr.CreateManagedAccountRequest{
		ProfileID:    "profile-1",
		FriendlyName: "main",
		Currency:     "EUR",
	})
	require.NoError(t, err)
	assert.Equal(t, "r1", res.ID)
	assert.True(t, res.Balances.Available.Equal(decimal.RequireFromString("10.50")))
	assert.Nil(t, res.BankAccountDetails)
}

func TestClient_CreateManagedAccount_missingID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"state": "ACTIVE"})
	})

	_, err := c.CreateManagedAccount(context.Background(), weavr.Credentials{APIKey: "key"}, weavr.CreateManagedAccountRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid weavr response")
	assert.False(t, weavr.IsTransient(err))
}

func TestClient_remoteErrorClassification(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		wantTransient bool
	}{
		{name: "conflict is permanent", status: http.StatusConflict, wantTransient: false},
		{name: "not found is permanent", status: http.StatusNotFound, wantTransient: false},
		{name: "too many requests is transient", status: http.StatusTooManyRequests, wantTransient: true},
		{name: "bad gateway is transient", status: http.StatusBadGateway, wantTransient: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"message":   "boom",
					"errorCode": "SOME_CODE",
				})
			})

			_, err := c.GetManagedAccount(context.Background(), weavr.Credentials{APIKey: "key"}, "r1")
			require.Error(t, err)

			var apiErr *weavr.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, "SOME_CODE", apiErr.Code)
			assert.Equal(t, tt.wantTransient, weavr.IsTransient(err))
		})
	}
}

func TestClient_GetManagedAccountIBAN(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/multi/managed_accounts/r1/iban", r.URL.Path)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"state": "ALLOCATED",
			"bankAccountDetails": map[string]string{
				"iban": "DE89370400440532013000",
				"bic":  "COBADEFFXXX",
			},
		})
	})

	res, err := c.GetManagedAccountIBAN(context.Background(), weavr.Credentials{APIKey: "key"}, "r1")
	require.NoError(t, err)
	assert.True(t, res.Allocated())
	assert.Equal(t, "DE89370400440532013000", res.BankAccountDetails.IBAN)
}

func TestClient_GetManagedAccountIBANCached(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_ = json.NewEncoder(w).Encode(map[string]any{
			"state": "ALLOCATED",
			"bankAccountDetails": map[string]string{
				"iban": "DE89370400440532013000",
				"bic":  "COBADEFFXXX",
			},
		})
	}))
	t.Cleanup(srv.Close)

	ibanCache := cache.NewInMemoryClient[weavr.IBANResponse]()
	t.Cleanup(ibanCache.Close)

	c := weavr.New(config.WeavrConfig{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	}, nil, weavr.WithIBANCache(ibanCache))

	for i := 0; i < 3; i++ {
		res, err := c.GetManagedAccountIBAN(context.Background(), weavr.Credentials{APIKey: "key"}, "r1")
		require.NoError(t, err)
		assert.True(t, res.Allocated())
	}

	assert.Equal(t, 1, hits)
}

func TestClient_networkErrorIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := weavr.New(config.WeavrConfig{
		BaseURL: srv.URL,
		Timeout: time.Second,
	}, nil)

	_, err := c.GetManagedAccount(context.Background(), weavr.Credentials{APIKey: "key"}, "r1")
	require.Error(t, err)
	assert.True(t, weavr.IsTransient(err))
}

package weavr

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/amberpay/go-weavr-sync/internal/common/cache"
	"github.com/amberpay/go-weavr-sync/internal/common/ctxdata"
	"github.com/amberpay/go-weavr-sync/internal/common/metrics"
	"github.com/amberpay/go-weavr-sync/internal/common/xlog"
	"github.com/amberpay/go-weavr-sync/internal/config"
	"github.com/amberpay/go-weavr-sync/internal/monitoring"

	"github.com/go-resty/resty/v2"
)

var logMessage = "[WEAVR-CLIENT]"

const serviceName = "weavr"

// retryableHTTPCodes are retried transparently by the resty client before
// the error classification ever sees them.
var retryableHTTPCodes = map[int]struct{}{
	http.StatusRequestTimeout:      {},
	http.StatusTooManyRequests:     {},
	http.StatusInternalServerError: {},
	http.StatusBadGateway:          {},
	http.StatusServiceUnavailable:  {},
	http.StatusGatewayTimeout:      {},
}

//go:generate mockgen -source=client.go -destination=mock/client.go -package=mock

// Client is the gateway to the remote system of record. Every method
// returns either a typed, validated response or a classified error.
type Client interface {
	CreateManagedAccount(ctx context.Context, creds Credentials, req CreateManagedAccountRequest) (*ManagedAccountResponse, error)
	GetManagedAccount(ctx context.Context, creds Credentials, remoteID string) (*ManagedAccountResponse, error)
	UpgradeManagedAccountIBAN(ctx context.Context, creds Credentials, remoteID string) (*IBANResponse, error)
	GetManagedAccountIBAN(ctx context.Context, creds Credentials, remoteID string) (*IBANResponse, error)
	CreateConsumer(ctx context.Context, creds Credentials, req CreateIdentityRequest) (*IdentityResponse, error)
	CreateCorporate(ctx context.Context, creds Credentials, req CreateIdentityRequest) (*IdentityResponse, error)
	CreateTransfer(ctx context.Context, creds Credentials, req CreateTransferRequest) (*TransferResponse, error)
}

type client struct {
	baseURL    string
	httpClient *resty.Client
	metrics    metrics.Metrics

	ibanCache cache.Client[IBANResponse]
}

type Option func(*client)

// WithIBANCache caches allocated IBAN details per managed account. An IBAN
// never changes once allocated, so a hit skips the remote round trip.
func WithIBANCache(c cache.Client[IBANResponse]) Option {
	return func(cl *client) {
		cl.ibanCache = c
	}
}

// ibanCacheTTL bounds staleness for the unallocated-to-allocated transition
// only. Allocated entries are effectively immutable.
const ibanCacheTTL = 24 * time.Hour

func New(configuration config.WeavrConfig, metrics metrics.Metrics, opts ...Option) Client {
	retryWaitTime := time.Duration(configuration.RetryWaitTime) * time.Millisecond

	timeout := configuration.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	restyClient := resty.New()
	restyClient = restyClient.AddRetryCondition(func(r *resty.Response, err error) bool {
		if r == nil {
			return false
		}

		_, shouldRetry := retryableHTTPCodes[r.StatusCode()]
		return shouldRetry
	})

	restyClient = restyClient.
		SetTransport(monitoring.NewMiddlewareRoundTripper(restyClient.GetClient().Transport)).
		SetRetryCount(configuration.RetryCount).
		SetRetryWaitTime(retryWaitTime).
		SetTimeout(timeout)

	c := client{
		baseURL:    configuration.BaseURL,
		httpClient: restyClient,
		metrics:    metrics,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

type validatable interface {
	Validate() error
}

// request issues one authenticated call and decodes the response into out.
// endpointLabel is the un-parameterized path used as the metrics label.
func (c client) request(ctx context.Context, creds Credentials, method, path, endpointLabel string, body any, out validatable) error {
	startTime := time.Now()
	url := c.baseURL + path

	logFields := []xlog.Field{
		xlog.String("url", url),
		xlog.String("method", method),
	}

	xlog.Info(ctx, logMessage, append(logFields, xlog.String("message", "send request to weavr"))...)

	req := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Correlation-Id", ctxdata.GetCorrelationId(ctx)).
		SetHeader("api-key", creds.APIKey)

	if creds.AuthToken != "" {
		req = req.SetHeader("Authorization", "Bearer "+creds.AuthToken)
	}

	if body != nil {
		req = req.SetBody(body)
	}

	var httpRes *resty.Response
	var err error

	switch method {
	case http.MethodGet:
		httpRes, err = req.Get(url)
	case http.MethodPost:
		httpRes, err = req.Post(url)
	default:
		return fmt.Errorf("unsupported HTTP method: %s", method)
	}

	if err != nil {
		xlog.Warn(ctx, logMessage, append(logFields, xlog.Err(err))...)
		return fmt.Errorf("failed send request: %w", err)
	}

	if c.metrics != nil {
		c.metrics.GetHTTPClientPrometheus().Record(
			time.Since(startTime),
			serviceName,
			method,
			c.baseURL+endpointLabel,
			httpRes.StatusCode(),
		)
	}

	logFields = append(logFields, xlog.String("httpStatusCode", httpRes.Status()))

	if httpRes.StatusCode() < 200 || httpRes.StatusCode() >= 300 {
		xlog.Warn(ctx, logMessage, append(logFields, xlog.Any("httpResponse", httpRes.Body()))...)

		var errBody apiErrorBody
		_ = json.Unmarshal(httpRes.Body(), &errBody)

		return &APIError{
			StatusCode: httpRes.StatusCode(),
			Code:       errBody.ErrorCode,
			Message:    errBody.Message,
		}
	}

	xlog.Info(ctx, logMessage, logFields...)

	if out == nil {
		return nil
	}

	if err = json.Unmarshal(httpRes.Body(), out); err != nil {
		return fmt.Errorf("error unmarshal response: %w", err)
	}

	// malformed upstream responses fail fast here rather than letting
	// missing fields leak into balance arithmetic
	if err = out.Validate(); err != nil {
		return fmt.Errorf("invalid weavr response: %w", err)
	}

	return nil
}

func (c client) CreateManagedAccount(ctx context.Context, creds Credentials, req CreateManagedAccountRequest) (res *ManagedAccountResponse, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	res = &ManagedAccountResponse{}
	if err = c.request(ctx, creds, http.MethodPost, "/multi/managed_accounts", "/multi/managed_accounts", req, res); err != nil {
		return nil, err
	}

	return res, nil
}

func (c client) GetManagedAccount(ctx context.Context, creds Credentials, remoteID string) (res *ManagedAccountResponse, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	path := fmt.Sprintf("/multi/managed_accounts/%s", remoteID)

	res = &ManagedAccountResponse{}
	if err = c.request(ctx, creds, http.MethodGet, path, "/multi/managed_accounts/:id", nil, res); err != nil {
		return nil, err
	}

	return res, nil
}

func (c client) UpgradeManagedAccountIBAN(ctx context.Context, creds Credentials, remoteID string) (res *IBANResponse, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	path := fmt.Sprintf("/multi/managed_accounts/%s/iban", remoteID)

	res = &IBANResponse{}
	if err = c.request(ctx, creds, http.MethodPost, path, "/multi/managed_accounts/:id/iban", nil, res); err != nil {
		return nil, err
	}

	return res, nil
}

func (c client) GetManagedAccountIBAN(ctx context.Context, creds Credentials, remoteID string) (res *IBANResponse, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	cacheKey := "weavr:iban:" + remoteID
	if c.ibanCache != nil {
		if cached, cacheErr := c.ibanCache.Get(ctx, cacheKey); cacheErr == nil && cached.Allocated() {
			return &cached, nil
		}
	}

	path := fmt.Sprintf("/multi/managed_accounts/%s/iban", remoteID)

	res = &IBANResponse{}
	if err = c.request(ctx, creds, http.MethodGet, path, "/multi/managed_accounts/:id/iban", nil, res); err != nil {
		return nil, err
	}

	if c.ibanCache != nil && res.Allocated() {
		if cacheErr := c.ibanCache.Set(ctx, cacheKey, *res, ibanCacheTTL); cacheErr != nil {
			xlog.Warn(ctx, logMessage, xlog.String("message", "failed to cache iban details"), xlog.Err(cacheErr))
		}
	}

	return res, nil
}

func (c client) CreateConsumer(ctx context.Context, creds Credentials, req CreateIdentityRequest) (res *IdentityResponse, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	res = &IdentityResponse{}
	if err = c.request(ctx, creds, http.MethodPost, "/multi/consumers", "/multi/consumers", req, res); err != nil {
		return nil, err
	}

	return res, nil
}

func (c client) CreateCorporate(ctx context.Context, creds Credentials, req CreateIdentityRequest) (res *IdentityResponse, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	res = &IdentityResponse{}
	if err = c.request(ctx, creds, http.MethodPost, "/multi/corporates", "/multi/corporates", req, res); err != nil {
		return nil, err
	}

	return res, nil
}

func (c client) CreateTransfer(ctx context.Context, creds Credentials, req CreateTransferRequest) (res *TransferResponse, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	res = &TransferResponse{}
	if err = c.request(ctx, creds, http.MethodPost, "/multi/transfers", "/multi/transfers", req, res); err != nil {
		return nil, err
	}

	return res, nil
}

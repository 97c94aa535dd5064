package weavr

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
)

// APIError is a classified error from the remote system of record. It
// always carries the HTTP status when one was received.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("weavr api error: status %d, code %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("weavr api error: status %d: %s", e.StatusCode, e.Message)
}

// Transient reports whether the failure is worth retrying: request
// timeout, rate limiting, or any server-side error.
func (e *APIError) Transient() bool {
	switch e.StatusCode {
	case 408, 429:
		return true
	}
	return e.StatusCode >= 500
}

// IsTransient classifies a remote-call failure. Network and timeout
// errors never produced a status code and are retryable; anything else
// unrecognized (e.g. a malformed response body) is treated as permanent
// so it surfaces instead of being retried forever.
func IsTransient(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Transient()
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

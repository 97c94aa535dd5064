package retry

import (
	"context"

	"github.com/amberpay/go-weavr-sync/internal/common/xlog"
	"github.com/amberpay/go-weavr-sync/internal/config"

	"github.com/cenkalti/backoff/v4"
)

const DefaultMaxRetries uint64 = 3

// Retryer retries an operation with exponential backoff. When retries are
// exhausted the giveUp callback runs and its error is returned.
type Retryer interface {
	Retry(ctx context.Context, operation, giveUp func() error) error
	StopRetryWithErr(err error) error
}

type exponentialBackoff struct {
	ebCfg *config.ExponentialBackOffConfig
}

func NewExponentialBackOff(ebCfg *config.ExponentialBackOffConfig) Retryer {
	if ebCfg.MaxBackoffTime < 0 {
		ebCfg.MaxBackoffTime = backoff.DefaultMaxElapsedTime
	}

	if ebCfg.BackoffMultiplier <= 0 {
		ebCfg.BackoffMultiplier = backoff.DefaultMultiplier
	}

	if ebCfg.MaxRetries <= 0 {
		ebCfg.MaxRetries = DefaultMaxRetries
	}

	return &exponentialBackoff{ebCfg: ebCfg}
}

// Retry creates a fresh ExponentialBackOff instance per execution so
// concurrent callers do not share backoff state.
func (r *exponentialBackoff) Retry(ctx context.Context, operation, giveUp func() error) error {
	eb := backoff.NewExponentialBackOff()
	eb.MaxElapsedTime = r.ebCfg.MaxBackoffTime
	eb.Multiplier = r.ebCfg.BackoffMultiplier

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(eb, r.ebCfg.MaxRetries), ctx))
	if err != nil {
		xlog.Debugf(ctx, "retries exhausted with err: %v", err)
		if giveUp != nil {
			return giveUp()
		}
		return err
	}

	return nil
}

// StopRetryWithErr marks an error as permanent so the backoff loop stops.
// Call it from inside the operation func.
func (r *exponentialBackoff) StopRetryWithErr(err error) error {
	return backoff.Permanent(err)
}

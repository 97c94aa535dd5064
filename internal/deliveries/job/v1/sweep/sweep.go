package sweep

import (
	"context"

	"github.com/amberpay/go-weavr-sync/internal/common/retry"
	"github.com/amberpay/go-weavr-sync/internal/common/xlog"
	"github.com/amberpay/go-weavr-sync/internal/config"
	"github.com/amberpay/go-weavr-sync/internal/services"
)

type sweepHandler struct {
	cfg      config.Config
	reconSrv services.ReconService
}

func Routes(cfg config.Config, rs services.ReconService) map[string]func(ctx context.Context) error {
	handler := sweepHandler{
		cfg:      cfg,
		reconSrv: rs,
	}
	return map[string]func(ctx context.Context) error{
		"RunReconSweep": handler.RunReconSweep,
		// add more job here
	}
}

// RunReconSweep retries the whole sweep with backoff when it fails at the
// batch level, such as the pending query timing out. Per-entity sync
// failures are counted inside the report and never fail the run.
func (sh *sweepHandler) RunReconSweep(ctx context.Context) error {
	retryer := retry.NewExponentialBackOff(&sh.cfg.ExponentialBackoff)

	return retryer.Retry(ctx, func() error {
		report, err := sh.reconSrv.RunSweep(ctx)
		if err != nil {
			return err
		}

		xlog.Info(ctx, "RunReconSweep",
			xlog.Int("identitiesAttempted", report.Identities.Attempted),
			xlog.Int("identitiesSynced", report.Identities.Synced),
			xlog.Int("identitiesFailed", report.Identities.Failed),
			xlog.Int("accountsAttempted", report.Accounts.Attempted),
			xlog.Int("accountsSynced", report.Accounts.Synced),
			xlog.Int("accountsFailed", report.Accounts.Failed),
		)

		return nil
	}, nil)
}

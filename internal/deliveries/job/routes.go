package job

import (
	"context"
	"errors"

	"github.com/amberpay/go-weavr-sync/internal/common/ctxdata"
	"github.com/amberpay/go-weavr-sync/internal/common/xlog"
	"github.com/amberpay/go-weavr-sync/internal/config"
	v1sweep "github.com/amberpay/go-weavr-sync/internal/deliveries/job/v1/sweep"
	"github.com/amberpay/go-weavr-sync/internal/services"

	"github.com/google/uuid"
)

type JobRoutes map[string]map[string]func(ctx context.Context) error

type Job struct {
	Routes JobRoutes
}

func New(cfg config.Config, srv *services.Services) *Job {
	v1group := "v1"

	jobRoutes := JobRoutes{
		v1group: v1sweep.Routes(cfg, srv.Recon),
		// add other version routes
	}

	return &Job{jobRoutes}
}

func (j *Job) Start(ctx context.Context, jobName, version string) {
	fn, ok := j.Routes[version][jobName]
	if !ok {
		xlog.LogJob(ctx, jobName, version, errors.New("invalid version or job name"))
		return
	}

	ctx = ctxdata.Sets(ctx, ctxdata.SetCorrelationId(uuid.New().String()))

	err := fn(ctx)
	xlog.LogJob(ctx, jobName, version, err)
}

// Names lists the registered jobs per version, for the worker list command.
func (j *Job) Names() map[string][]string {
	out := make(map[string][]string, len(j.Routes))
	for version, jobs := range j.Routes {
		for name := range jobs {
			out[version] = append(out[version], name)
		}
	}
	return out
}

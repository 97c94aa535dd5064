package http

import (
	"context"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/amberpay/go-weavr-sync/internal/common/graceful"
	commonhttp "github.com/amberpay/go-weavr-sync/internal/common/http"
	"github.com/amberpay/go-weavr-sync/internal/common/http/middleware"
	"github.com/amberpay/go-weavr-sync/internal/common/xlog"
	"github.com/amberpay/go-weavr-sync/internal/config"
	"github.com/amberpay/go-weavr-sync/internal/deliveries/http/health"
	"github.com/amberpay/go-weavr-sync/internal/services"

	v1account "github.com/amberpay/go-weavr-sync/internal/deliveries/http/v1/account"
	v1identity "github.com/amberpay/go-weavr-sync/internal/deliveries/http/v1/identity"
	v1recon "github.com/amberpay/go-weavr-sync/internal/deliveries/http/v1/recon"
	v1transaction "github.com/amberpay/go-weavr-sync/internal/deliveries/http/v1/transaction"
	v1webhook "github.com/amberpay/go-weavr-sync/internal/deliveries/http/v1/webhook"

	"github.com/amberpay/go-weavr-sync/internal/common/ctxdata"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

type svc struct {
	e               *echo.Echo
	addr            string
	gracefulTimeout time.Duration
}

var _ graceful.ProcessStartStopper = (*svc)(nil)

func (s *svc) Start() graceful.ProcessStarter {
	return func() error {
		return s.e.Start(s.addr)
	}
}

func (s *svc) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		err := s.e.Shutdown(ctx)

		if err != nil {
			xlog.Errorf(ctx, "[SHUTDOWN] HTTP server error: %v", err)
		} else {
			xlog.Info(ctx, "[SHUTDOWN] HTTP server stopped successfully")
		}

		return err
	}
}

func NewHTTPServer(
	ctx context.Context,
	conf config.Config,
	nr *newrelic.Application,
	srv *services.Services,
) *svc {
	app := echo.New()

	svc := &svc{
		e:               app,
		addr:            fmt.Sprintf(":%d", conf.App.HTTPPort),
		gracefulTimeout: conf.App.GracefulTimeout,
	}

	m := middleware.NewMiddleware(conf)
	// options middleware
	app.Pre(echomiddleware.RemoveTrailingSlash())
	app.Use(echomiddleware.Recover())
	app.Use(echomiddleware.RequestID())
	app.Use(m.Context())
	app.Use(m.Logger())

	if nr != nil {
		app.Use(nrecho.Middleware(nr))

		app.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				txn := newrelic.FromContext(c.Request().Context())
				if txn != nil {
					txn.AddAttribute("x-correlation-id", ctxdata.GetCorrelationId(c.Request().Context()))
				}

				return next(c)
			}
		})
	}

	// pprof
	// Endpoint debug/pprof/
	env := config.StringToEnvironment(conf.App.Env)
	if env != config.PROD_ENV {
		pprof.Register(app)
	}

	// prometheus metrics
	app.Use(echoprometheus.NewMiddleware(conf.App.Name))
	app.GET("/metrics", echoprometheus.NewHandler())

	// apiGroup
	apiGroup := app.Group("/api")

	// health check
	health.New(apiGroup)

	// v1Group
	v1Group := apiGroup.Group("/v1")
	// the provider delivery endpoint is registered before the auth
	// middleware: Weavr cannot send the internal secret key
	v1webhook.NewIngress(v1Group, srv.Webhook)

	// v1Group middleware
	v1Group.Use(m.InternalAuth)
	// v1Group register api
	v1account.New(v1Group, srv.Account)
	v1identity.New(v1Group, srv.Identity)
	v1transaction.New(v1Group, srv.Transaction)
	v1webhook.New(v1Group, srv.Webhook)
	v1recon.New(v1Group, srv.Recon)

	// prepare an endpoint for 'Not Found'.
	app.Any("*", func(c echo.Context) error {
		errorMessage := fmt.Errorf("route '%s' does not exist in this API", c.Request().URL)
		return commonhttp.RestErrorResponse(c, nethttp.StatusNotFound, errorMessage)
	})

	return svc
}

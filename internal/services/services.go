package services

import (
	"github.com/amberpay/go-weavr-sync/internal/common/metrics"
	"github.com/amberpay/go-weavr-sync/internal/common/publisher"
	"github.com/amberpay/go-weavr-sync/internal/config"
	"github.com/amberpay/go-weavr-sync/internal/repositories"
	"github.com/amberpay/go-weavr-sync/internal/weavr"
)

type service struct {
	srv *Services
}

//go:generate mockgen -package=mock -destination=mock/services.go github.com/amberpay/go-weavr-sync/internal/services AccountService,IdentityService,TransactionService,WebhookService,ReconService

type Services struct {
	conf config.Config

	sqlRepo   repositories.SQLRepository
	cacheRepo repositories.CacheRepository
	weavr     weavr.Client

	balanceLogPub publisher.Publisher
	metrics       metrics.Metrics

	common service

	Account     *account
	Identity    *identity
	Transaction *transaction
	Webhook     *webhook
	Recon       *recon
}

func New(
	conf config.Config,
	sqlRepo repositories.SQLRepository,
	cacheRepo repositories.CacheRepository,
	weavrClient weavr.Client,
	balanceLogPub publisher.Publisher,
	metrics metrics.Metrics,
) *Services {
	srv := &Services{
		conf:          conf,
		sqlRepo:       sqlRepo,
		cacheRepo:     cacheRepo,
		weavr:         weavrClient,
		balanceLogPub: balanceLogPub,
		metrics:       metrics,
	}
	srv.common.srv = srv
	srv.Account = (*account)(&srv.common)
	srv.Identity = (*identity)(&srv.common)
	srv.Transaction = (*transaction)(&srv.common)
	srv.Webhook = (*webhook)(&srv.common)
	srv.Recon = (*recon)(&srv.common)

	return srv
}

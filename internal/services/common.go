package services

import (
	"context"
	"errors"

	"github.com/amberpay/go-weavr-sync/internal/common"
	"github.com/amberpay/go-weavr-sync/internal/common/publisher"
	"github.com/amberpay/go-weavr-sync/internal/common/xlog"
	"github.com/amberpay/go-weavr-sync/internal/models"
	"github.com/amberpay/go-weavr-sync/internal/weavr"
)

var notFoundKeys = map[error]string{
	common.ErrDataNotFound:         models.ErrKeyDataNotFound,
	common.ErrAccountNotFound:      models.ErrKeyAccountNotFound,
	common.ErrIdentityNotFound:     models.ErrKeyIdentityNotFound,
	common.ErrTransactionNotFound:  models.ErrKeyTransactionNotFound,
	common.ErrWebhookEventNotFound: models.ErrKeyWebhookNotFound,
}

func checkDatabaseError(err error, code ...string) error {
	for sentinel, key := range notFoundKeys {
		if errors.Is(err, sentinel) {
			if len(code) > 0 {
				key = code[0]
			}
			return models.GetErrMap(key)
		}
	}
	if errors.Is(err, common.ErrNoRows) {
		return models.GetErrMap(models.ErrKeyDataNotFound)
	}

	return models.GetErrMap(models.ErrKeyDatabaseError, err.Error())
}

// credentials falls back to the service-level pair when the caller did not
// supply one. Background jobs always run on the service pair.
func (s *Services) credentials(creds weavr.Credentials) weavr.Credentials {
	if creds.Empty() {
		return weavr.Credentials{
			APIKey:    s.conf.Weavr.APIKey,
			AuthToken: s.conf.Weavr.AuthToken,
		}
	}
	return creds
}

// publishBalanceLog emits the mutation to the balance-logs topic. Publishing
// happens after the database write committed; a broker failure is logged and
// never rolls back ledger state.
func (s *Services) publishBalanceLog(ctx context.Context, payload models.BalanceLogsPayload) {
	if s.balanceLogPub == nil || !s.conf.MessageBroker.Enabled {
		return
	}

	err := s.balanceLogPub.Publish(ctx, payload, publisher.WithKey(payload.RemoteAccountID))
	if err != nil {
		xlog.Error(ctx, "[SERVICE] failed to publish balance log",
			xlog.Uint64("accountId", payload.AccountID), xlog.Err(err))
	}
}

func checkRemoteError(err error) error {
	if weavr.IsTransient(err) {
		return models.GetErrMap(models.ErrKeyRemoteTransient, err.Error())
	}
	return models.GetErrMap(models.ErrKeyRemotePermanent, err.Error())
}

func syncOutcome(res models.SyncResult) string {
	if res.Success {
		return "success"
	}
	if res.Retryable {
		return "transient_failure"
	}
	return "permanent_failure"
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/amberpay/go-weavr-sync/internal/common/xlog"
	"github.com/amberpay/go-weavr-sync/internal/config"
)

//go:generate mockgen -source=sql_main.go -destination=mock/sql_main.go -package=mock

type sqlRepo struct {
	r *Repository
}

type Repository struct {
	dbWrite *sql.DB
	dbRead  *sql.DB
	config  config.Config
	common  sqlRepo

	ar  *accountRepository
	ir  *identityRepository
	tr  *transactionRepository
	cr  *cardRepository
	blr *balanceLogRepository
	wer *webhookEventRepository
}

func NewSQLRepository(dbWrite, dbRead *sql.DB, cfg config.Config) *Repository {
	rtx := &Repository{
		dbWrite: dbWrite,
		dbRead:  dbRead,
		config:  cfg,
	}
	rtx.common.r = rtx
	rtx.ar = (*accountRepository)(&rtx.common)
	rtx.ir = (*identityRepository)(&rtx.common)
	rtx.tr = (*transactionRepository)(&rtx.common)
	rtx.cr = (*cardRepository)(&rtx.common)
	rtx.blr = (*balanceLogRepository)(&rtx.common)
	rtx.wer = (*webhookEventRepository)(&rtx.common)

	return rtx
}

type SQLRepository interface {
	// Atomic runs steps inside a single database transaction. The tx is
	// carried on the context, so every repository call made through the
	// passed-in SQLRepository joins it.
	Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) error
	GetAccountRepository() AccountRepository
	GetIdentityRepository() IdentityRepository
	GetTransactionRepository() TransactionRepository
	GetCardRepository() CardRepository
	GetBalanceLogRepository() BalanceLogRepository
	GetWebhookEventRepository() WebhookEventRepository
}

var _ SQLRepository = (*Repository)(nil)

func (r *Repository) Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) (err error) {
	tx, err := r.dbWrite.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	xlog.Info(ctx, "[DATABASE.TRANSACTION.BEGIN]")
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			err = fmt.Errorf("panic happened because: %v", p)
			xlog.Error(ctx, "[DATABASE.TRANSACTION.PANIC]", xlog.Err(err))
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
			}
			xlog.Warn(ctx, "[DATABASE.TRANSACTION.ROLLBACK]", xlog.Err(err))
		} else {
			if err = tx.Commit(); err != nil {
				if errors.Is(err, sql.ErrTxDone) {
					xlog.Warn(ctx, "[DATABASE.TRANSACTION.ALREADY_COMMITTED_OR_ROLLEDBACK]", xlog.Err(err))
					err = nil
				}
			}

			xlog.Info(ctx, "[DATABASE.TRANSACTION.COMMIT]")
		}
	}()
	ctx = withTxConn(ctx, tx)
	err = steps(ctx, r)
	return
}

func (r *Repository) GetAccountRepository() AccountRepository {
	return r.ar
}

func (r *Repository) GetIdentityRepository() IdentityRepository {
	return r.ir
}

func (r *Repository) GetTransactionRepository() TransactionRepository {
	return r.tr
}

func (r *Repository) GetCardRepository() CardRepository {
	return r.cr
}

func (r *Repository) GetBalanceLogRepository() BalanceLogRepository {
	return r.blr
}

func (r *Repository) GetWebhookEventRepository() WebhookEventRepository {
	return r.wer
}

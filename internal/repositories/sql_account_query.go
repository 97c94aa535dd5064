package repositories

import (
	"github.com/amberpay/go-weavr-sync/internal/models"

	sq "github.com/Masterminds/squirrel"
)

// query to account database
var (
	accountColumns = []string{
		`"id"`,
		`"identityId"`,
		`"name"`,
		`COALESCE("currency", '') as "currency"`,
		`"remoteId"`,
		`"iban"`,
		`"bic"`,
		`COALESCE("state", '') as "state"`,
		`"availableBalance"`,
		`"blockedBalance"`,
		`"reservedBalance"`,
		`"syncStatus"`,
		`"lastSyncError"`,
		`"lastSyncedAt"`,
		`"syncAttempts"`,
		`"reviewRequired"`,
		`"createdAt"`,
		`"updatedAt"`,
	}

	queryAccountCreate = `
		INSERT INTO account(
			"identityId", "name", "currency", "state", "availableBalance", "blockedBalance", "reservedBalance",
			"syncStatus", "syncAttempts", "reviewRequired", "createdAt", "updatedAt"
		)
		VALUES(
			$1, $2, $3, $4, 0, 0, 0, $5, 0, false, now(), now()
		)
		RETURNING "id", "createdAt", "updatedAt";
	`

	queryAccountMarkSynced = `
		UPDATE account SET
			"remoteId" = $2,
			"iban" = COALESCE($3, "iban"),
			"bic" = COALESCE($4, "bic"),
			"availableBalance" = $5,
			"blockedBalance" = $6,
			"reservedBalance" = $7,
			"syncStatus" = $8,
			"lastSyncError" = NULL,
			"lastSyncedAt" = $9,
			"syncAttempts" = 0,
			"reviewRequired" = false,
			"updatedAt" = now()
		WHERE "id" = $1;
	`

	queryAccountMarkSyncFailed = `
		UPDATE account SET
			"syncStatus" = $2,
			"lastSyncError" = $3,
			"syncAttempts" = "syncAttempts" + 1,
			"reviewRequired" = $4,
			"updatedAt" = now()
		WHERE "id" = $1;
	`

	queryAccountUpdateIBAN = `
		UPDATE account SET
			"iban" = $2,
			"bic" = $3,
			"syncStatus" = $4,
			"lastSyncError" = NULL,
			"lastSyncedAt" = $5,
			"updatedAt" = now()
		WHERE "id" = $1;
	`

	queryAccountSetSyncStatus = `
		UPDATE account SET
			"syncStatus" = $2,
			"updatedAt" = now()
		WHERE "id" = $1;
	`

	queryAccountUpdateBalance = `
		UPDATE account SET
			"availableBalance" = $2,
			"blockedBalance" = $3,
			"reservedBalance" = $4,
			"syncStatus" = 'synced',
			"lastSyncError" = NULL,
			"lastSyncedAt" = now(),
			"updatedAt" = now()
		WHERE "id" = $1;
	`

	queryAccountUpdateState = `
		UPDATE account SET
			"state" = $2,
			"updatedAt" = now()
		WHERE "id" = $1;
	`

	queryAccountClearReview = `
		UPDATE account SET
			"reviewRequired" = false,
			"syncAttempts" = 0,
			"syncStatus" = $2,
			"lastSyncError" = NULL,
			"updatedAt" = now()
		WHERE "id" = $1;
	`
)

func buildGetAccountQuery(pred interface{}, args ...interface{}) (string, []interface{}, error) {
	return sq.Select(accountColumns...).
		From("account").
		Where(pred, args...).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

func buildListAccountQuery(opts models.AccountFilterOptions) (string, []interface{}, error) {
	query := sq.Select(accountColumns...).
		From("account").
		PlaceholderFormat(sq.Dollar)

	if len(opts.SyncStatus) > 0 {
		statuses := make([]string, 0, len(opts.SyncStatus))
		for _, s := range opts.SyncStatus {
			statuses = append(statuses, string(s))
		}
		query = query.Where(sq.Eq{`"syncStatus"`: statuses})
	}
	if opts.Currency != "" {
		query = query.Where(sq.Eq{`"currency"`: opts.Currency})
	}

	query = query.OrderBy(`"id" ASC`)
	if opts.Limit > 0 {
		query = query.Limit(uint64(opts.Limit))
	}
	if opts.Offset > 0 {
		query = query.Offset(uint64(opts.Offset))
	}

	return query.ToSql()
}

// buildPendingSyncAccountQuery selects accounts that still need a creation
// sync and have not hit the attempt ceiling. Flagged rows stay out of the
// sweep until an operator clears them.
func buildPendingSyncAccountQuery(limit, maxAttempts int) (string, []interface{}, error) {
	return sq.Select(accountColumns...).
		From("account").
		Where(sq.Eq{`"syncStatus"`: []string{string(models.SyncStatusPending), string(models.SyncStatusFailed)}}).
		Where(sq.Lt{`"syncAttempts"`: maxAttempts}).
		Where(sq.Eq{`"reviewRequired"`: false}).
		OrderBy(`"id" ASC`).
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

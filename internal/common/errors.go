package common

import (
	"database/sql"
	"errors"
	"fmt"
)

var (
	ErrNoRowsAffected = errors.New("no rows affected")
	ErrDataNotFound   = errors.New("data not found")
	ErrNoRows         = sql.ErrNoRows

	ErrAccountNotFound      = errors.New("account not found")
	ErrIdentityNotFound     = errors.New("identity not found")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrCardNotFound         = errors.New("card not found")
	ErrWebhookEventNotFound = errors.New("webhook event not found")

	// the operation needs a remote id the entity does not have yet
	ErrAccountNotSynced  = errors.New("account has no remote id, sync creation first")
	ErrIdentityNotSynced = errors.New("identity has no remote id, sync creation first")

	ErrRemoteIDAlreadySet    = errors.New("remote id already set")
	ErrDuplicateWebhookEvent = errors.New("webhook event already received")
	ErrDuplicateRemoteID     = errors.New("remote id already assigned to another entity")

	ErrValidation = errors.New("validation error")

	ErrInvalidAmount      = errors.New("amount must not be zero")
	ErrMissingCurrency    = errors.New("missing currency")
	ErrMissingCredentials = errors.New("missing remote api credentials")
)

type WrapError struct {
	Causer interface{}
	Err    error
}

func (e WrapError) Error() string {
	return fmt.Sprintf("%v, root cause: %v", e.Causer, e.Err)
}

func (e WrapError) Unwrap() error {
	return e.Err
}

package models

import (
	"errors"
	"fmt"
)

type (
	MapErrs     map[string]ErrorDetail
	ErrorDetail struct {
		Code         string `json:"code,omitempty"`
		ErrorMessage error  `json:"message,omitempty"`
	}
)

func (e ErrorDetail) Error() string {
	return fmt.Sprintf("code: %s, message: %v", e.Code, e.ErrorMessage)
}

// Error keys shared between services and the http delivery layer.
const (
	ErrKeyDataNotFound        = "40401"
	ErrKeyAccountNotFound     = "40402"
	ErrKeyIdentityNotFound    = "40403"
	ErrKeyTransactionNotFound = "40404"
	ErrKeyWebhookNotFound     = "40405"

	ErrKeyValidation     = "40001"
	ErrKeyNotSynced      = "40901"
	ErrKeyAlreadySynced  = "40902"
	ErrKeyDuplicateEvent = "40903"

	ErrKeyRemoteTransient = "50201"
	ErrKeyRemotePermanent = "50202"
	ErrKeyDatabaseError   = "50001"
	ErrKeyInternalError   = "50002"
)

var MapErrors = MapErrs{
	ErrKeyDataNotFound:        {Code: ErrKeyDataNotFound, ErrorMessage: errors.New("data not found")},
	ErrKeyAccountNotFound:     {Code: ErrKeyAccountNotFound, ErrorMessage: errors.New("account not found")},
	ErrKeyIdentityNotFound:    {Code: ErrKeyIdentityNotFound, ErrorMessage: errors.New("identity not found")},
	ErrKeyTransactionNotFound: {Code: ErrKeyTransactionNotFound, ErrorMessage: errors.New("transaction not found")},
	ErrKeyWebhookNotFound:     {Code: ErrKeyWebhookNotFound, ErrorMessage: errors.New("webhook event not found")},
	ErrKeyValidation:          {Code: ErrKeyValidation, ErrorMessage: errors.New("request validation failed")},
	ErrKeyNotSynced:           {Code: ErrKeyNotSynced, ErrorMessage: errors.New("entity has not been synced to the remote system")},
	ErrKeyAlreadySynced:       {Code: ErrKeyAlreadySynced, ErrorMessage: errors.New("entity is already synced")},
	ErrKeyDuplicateEvent:      {Code: ErrKeyDuplicateEvent, ErrorMessage: errors.New("webhook event already received")},
	ErrKeyRemoteTransient:     {Code: ErrKeyRemoteTransient, ErrorMessage: errors.New("remote system temporarily unavailable")},
	ErrKeyRemotePermanent:     {Code: ErrKeyRemotePermanent, ErrorMessage: errors.New("remote system rejected the request")},
	ErrKeyDatabaseError:       {Code: ErrKeyDatabaseError, ErrorMessage: errors.New("database error")},
	ErrKeyInternalError:       {Code: ErrKeyInternalError, ErrorMessage: errors.New("internal server error")},
}

func GetErrMap(code string, args ...string) ErrorDetail {
	v, ok := MapErrors[code]
	if !ok {
		return ErrorDetail{
			Code:         code,
			ErrorMessage: errors.New("unknown error mapping"),
		}
	}
	if len(args) > 0 {
		v.ErrorMessage = fmt.Errorf("%s caused by %s", v.ErrorMessage, args[0])
	}

	return v
}

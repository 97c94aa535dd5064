package weavr

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Credentials are supplied by the caller per request; this service never
// manages credential acquisition.
type Credentials struct {
	APIKey    string
	AuthToken string
}

func (c Credentials) Empty() bool {
	return c.APIKey == "" && c.AuthToken == ""
}

type CreateManagedAccountRequest struct {
	ProfileID    string `json:"profileId"`
	FriendlyName string `json:"friendlyName"`
	Currency     string `json:"currency"`
	Tag          string `json:"tag,omitempty"`
}

type AccountBalances struct {
	Available decimal.Decimal `json:"available"`
	Blocked   decimal.Decimal `json:"blocked"`
	Reserved  decimal.Decimal `json:"reserved"`
}

type BankAccountDetails struct {
	IBAN string `json:"iban"`
	BIC  string `json:"bic"`
}

type ManagedAccountResponse struct {
	ID                 string              `json:"id"`
	ProfileID          string              `json:"profileId"`
	FriendlyName       string              `json:"friendlyName"`
	Currency           string              `json:"currency"`
	State              string              `json:"state"`
	Balances           AccountBalances     `json:"balances"`
	BankAccountDetails *BankAccountDetails `json:"bankAccountDetails,omitempty"`
}

func (r *ManagedAccountResponse) Validate() error {
	if r.ID == "" {
		return errors.New("managed account response missing id")
	}
	return nil
}

// IBAN allocation states as the remote system reports them.
const (
	IBANStateAllocated         = "ALLOCATED"
	IBANStatePendingAllocation = "PENDING_ALLOCATION"
	IBANStateUnallocated       = "UNALLOCATED"
)

type IBANResponse struct {
	State              string              `json:"state"`
	BankAccountDetails *BankAccountDetails `json:"bankAccountDetails,omitempty"`
}

func (r *IBANResponse) Validate() error {
	if r.State == "" {
		return errors.New("iban response missing state")
	}
	return nil
}

// Allocated reports whether bank details are final and usable.
func (r *IBANResponse) Allocated() bool {
	return r.State == IBANStateAllocated && r.BankAccountDetails != nil && r.BankAccountDetails.IBAN != ""
}

type CreateIdentityRequest struct {
	ProfileID string `json:"profileId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Tag       string `json:"tag,omitempty"`
}

type IdentityResponse struct {
	ID    string `json:"id"`
	State string `json:"state,omitempty"`
}

func (r *IdentityResponse) Validate() error {
	if r.ID == "" {
		return errors.New("identity response missing id")
	}
	return nil
}

// InstrumentManagedAccounts is the instrument type every transfer in this
// service moves money between.
const InstrumentManagedAccounts = "managed_accounts"

type InstrumentRef struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

type TransferAmount struct {
	Currency string          `json:"currency"`
	Amount   decimal.Decimal `json:"amount"`
}

type CreateTransferRequest struct {
	ProfileID      string         `json:"profileId,omitempty"`
	Source         InstrumentRef  `json:"source"`
	Destination    InstrumentRef  `json:"destination"`
	TransferAmount TransferAmount `json:"transferAmount"`
	Description    string         `json:"description,omitempty"`
}

type TransferResponse struct {
	ID    string `json:"id"`
	State string `json:"state"`
}

func (r *TransferResponse) Validate() error {
	if r.ID == "" {
		return errors.New("transfer response missing id")
	}
	return nil
}

// apiErrorBody is the remote error envelope.
type apiErrorBody struct {
	Message   string `json:"message"`
	ErrorCode string `json:"errorCode"`
}

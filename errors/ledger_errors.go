package errors

import (
	stderrors "errors"

	"ftl/jsonx"
	"ftl/ledger"
)

// LedgerErrorCode represents standardized error codes for ledger operations
type LedgerErrorCode string

const (
	// General errors
	ErrCodeInternal LedgerErrorCode = "internal_error"

	// Validation errors
	ErrCodeInvalidAddress LedgerErrorCode = "invalid_address"
	ErrCodeInvalidAmount  LedgerErrorCode = "invalid_amount"

	// Business logic errors
	ErrCodeBalanceTooLow      LedgerErrorCode = "balance_too_low"
	ErrCodeAllowanceTooLow    LedgerErrorCode = "allowance_too_low"
	ErrCodeAmountOverflow     LedgerErrorCode = "amount_overflow"
	ErrCodeNotInitialized     LedgerErrorCode = "not_initialized"
	ErrCodeAlreadyInitialized LedgerErrorCode = "already_initialized"
)

// Error message constants - user-friendly and concise
const (
	ErrMsgInvalidAddress     = "Account address is invalid"
	ErrMsgInvalidAmount      = "Amount is invalid"
	ErrMsgBalanceTooLow      = "Not enough balance in the source account"
	ErrMsgAllowanceTooLow    = "Not enough remaining allowance for the spender"
	ErrMsgAmountOverflow     = "Amount arithmetic overflowed"
	ErrMsgNotInitialized     = "Ledger has not been initialized"
	ErrMsgAlreadyInitialized = "Ledger has already been initialized"
)

// LedgerError represents a standardized ledger error
type LedgerError struct {
	Code    LedgerErrorCode `json:"code"`
	Message string          `json:"message"`
}

// Error implements the error interface
func (e *LedgerError) Error() string {
	payload, _ := jsonx.Marshal(LedgerError{
		Code:    e.Code,
		Message: e.Message,
	})
	return string(payload)
}

func NewLedgerError(code LedgerErrorCode, message string) *LedgerError {
	return &LedgerError{Code: code, Message: message}
}

// FromError maps core ledger sentinels to coded errors. Unknown errors
// map to internal_error so store faults are never confused with the
// caller-correctable preconditions.
func FromError(err error) *LedgerError {
	switch {
	case stderrors.Is(err, ledger.ErrBalanceTooLow):
		return NewLedgerError(ErrCodeBalanceTooLow, ErrMsgBalanceTooLow)
	case stderrors.Is(err, ledger.ErrAllowanceTooLow):
		return NewLedgerError(ErrCodeAllowanceTooLow, ErrMsgAllowanceTooLow)
	case stderrors.Is(err, ledger.ErrAmountOverflow):
		return NewLedgerError(ErrCodeAmountOverflow, ErrMsgAmountOverflow)
	case stderrors.Is(err, ledger.ErrNotInitialized):
		return NewLedgerError(ErrCodeNotInitialized, ErrMsgNotInitialized)
	case stderrors.Is(err, ledger.ErrAlreadyInitialized):
		return NewLedgerError(ErrCodeAlreadyInitialized, ErrMsgAlreadyInitialized)
	default:
		return NewLedgerError(ErrCodeInternal, err.Error())
	}
}

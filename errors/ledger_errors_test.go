package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"ftl/jsonx"
	"ftl/ledger"
)

func TestFromErrorMapsSentinels(t *testing.T) {
	cases := []struct {
		err  error
		code LedgerErrorCode
	}{
		{ledger.ErrBalanceTooLow, ErrCodeBalanceTooLow},
		{ledger.ErrAllowanceTooLow, ErrCodeAllowanceTooLow},
		{ledger.ErrAmountOverflow, ErrCodeAmountOverflow},
		{ledger.ErrNotInitialized, ErrCodeNotInitialized},
		{ledger.ErrAlreadyInitialized, ErrCodeAlreadyInitialized},
		{fmt.Errorf("wrapped: %w", ledger.ErrBalanceTooLow), ErrCodeBalanceTooLow},
		{stderrors.New("disk on fire"), ErrCodeInternal},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.code, FromError(tc.err).Code, "for %v", tc.err)
	}
}

func TestLedgerErrorPayload(t *testing.T) {
	err := NewLedgerError(ErrCodeBalanceTooLow, ErrMsgBalanceTooLow)

	var decoded LedgerError
	assert.NoError(t, jsonx.Unmarshal([]byte(err.Error()), &decoded))
	assert.Equal(t, ErrCodeBalanceTooLow, decoded.Code)
	assert.Equal(t, ErrMsgBalanceTooLow, decoded.Message)
}

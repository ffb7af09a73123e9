package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ftl/db"
	"ftl/errors"
	"ftl/events"
	"ftl/ledger"
	"ftl/store"
	"ftl/types"
)

func testAddress(b byte) string {
	var addr types.Address
	addr[0] = b
	return addr.String()
}

func newTestService(t *testing.T) *LedgerService {
	t.Helper()

	stores, err := store.NewStoreFactory().CreateStoresWithProvider(db.NewMemoryProvider())
	require.NoError(t, err)

	router := events.NewRouter(events.NewEventBus(0))
	return NewLedgerService(ledger.NewLedger(stores.Balances, stores.Allowances, stores.Meta, router))
}

func newInitializedService(t *testing.T) *LedgerService {
	t.Helper()
	svc := newTestService(t)
	require.NoError(t, svc.Init(testAddress(1), "10000", "FTL", 6))
	return svc
}

func assertCode(t *testing.T, err error, code errors.LedgerErrorCode) {
	t.Helper()
	var ledgerErr *errors.LedgerError
	require.ErrorAs(t, err, &ledgerErr)
	assert.Equal(t, code, ledgerErr.Code)
}

func TestServiceInitAndReads(t *testing.T) {
	svc := newInitializedService(t)

	supply, err := svc.TotalSupply()
	require.NoError(t, err)
	assert.Equal(t, "10000", supply)

	balance, err := svc.GetBalance(testAddress(1))
	require.NoError(t, err)
	assert.Equal(t, "10000", balance)

	meta, err := svc.Info()
	require.NoError(t, err)
	assert.Equal(t, "FTL", meta.Symbol)
}

func TestServiceTransferFlow(t *testing.T) {
	svc := newInitializedService(t)

	require.NoError(t, svc.Transfer(testAddress(1), testAddress(2), "100"))

	balance, err := svc.GetBalance(testAddress(2))
	require.NoError(t, err)
	assert.Equal(t, "100", balance)

	balances, err := svc.ListBalances()
	require.NoError(t, err)
	assert.Equal(t, "9900", balances[testAddress(1)])
}

func TestServiceDelegatedFlow(t *testing.T) {
	svc := newInitializedService(t)

	require.NoError(t, svc.Approve(testAddress(1), testAddress(2), "500"))

	allowance, err := svc.GetAllowance(testAddress(1), testAddress(2))
	require.NoError(t, err)
	assert.Equal(t, "500", allowance)

	require.NoError(t, svc.TransferFrom(testAddress(2), testAddress(1), testAddress(3), "400"))

	allowance, err = svc.GetAllowance(testAddress(1), testAddress(2))
	require.NoError(t, err)
	assert.Equal(t, "100", allowance)
}

func TestServiceErrorCodes(t *testing.T) {
	svc := newInitializedService(t)

	assertCode(t, svc.Transfer(testAddress(2), testAddress(3), "100"), errors.ErrCodeBalanceTooLow)
	assertCode(t, svc.TransferFrom(testAddress(2), testAddress(1), testAddress(3), "100"), errors.ErrCodeAllowanceTooLow)
	assertCode(t, svc.Transfer("bogus", testAddress(3), "100"), errors.ErrCodeInvalidAddress)
	assertCode(t, svc.Transfer(testAddress(1), testAddress(3), "12a"), errors.ErrCodeInvalidAmount)
	assertCode(t, svc.Init(testAddress(1), "1", "FTL", 6), errors.ErrCodeAlreadyInitialized)
}

func TestServiceNotInitialized(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.TotalSupply()
	assertCode(t, err, errors.ErrCodeNotInitialized)
}

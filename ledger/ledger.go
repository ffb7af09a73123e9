package ledger

import (
	"errors"
	"fmt"
	"sync"

	"github.com/holiman/uint256"

	"ftl/events"
	"ftl/logx"
	"ftl/store"
	"ftl/types"
)

var (
	ErrBalanceTooLow      = errors.New("balance too low")
	ErrAllowanceTooLow    = errors.New("allowance too low")
	ErrAmountOverflow     = errors.New("amount overflow")
	ErrNotInitialized     = errors.New("ledger not initialized")
	ErrAlreadyInitialized = errors.New("ledger already initialized")
)

// Ledger owns the total supply, the balance mapping and the allowance
// mapping. Every state-mutating operation takes the authenticated
// caller as an explicit parameter; the host resolves identity before
// the call reaches the ledger.
//
// The mutex serializes whole operations: one call runs to completion
// before the next begins, so the balance check and the balance update
// can never interleave.
type Ledger struct {
	mu         sync.Mutex
	balances   store.BalanceStore
	allowances store.AllowanceStore
	meta       store.MetaStore
	router     *events.Router
}

func NewLedger(balances store.BalanceStore, allowances store.AllowanceStore, meta store.MetaStore, router *events.Router) *Ledger {
	return &Ledger{
		balances:   balances,
		allowances: allowances,
		meta:       meta,
		router:     router,
	}
}

// Init performs the one-time genesis: it fixes the total supply,
// credits all of it to the constructing caller and emits the minting
// Transfer event. Any supply value, including zero, is accepted.
func (l *Ledger) Init(owner types.Address, totalSupply *uint256.Int, symbol string, decimals uint32) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	totalSupply = normalizeAmount(totalSupply)

	existing, err := l.meta.TokenMeta()
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrAlreadyInitialized
	}

	// Meta and the owner's opening balance land in one batch; a failed
	// genesis leaves the ledger uninitialized with no partial state.
	err = l.meta.CommitGenesis(&store.TokenMeta{
		TotalSupply: totalSupply,
		Symbol:      symbol,
		Decimals:    decimals,
	}, owner)
	if err != nil {
		return err
	}

	l.emit(events.NewMint(owner, totalSupply))
	logx.Info("LEDGER", fmt.Sprintf("Initialized with supply %s credited to %s", totalSupply.Dec(), owner))
	return nil
}

// Initialized reports whether genesis has run
func (l *Ledger) Initialized() (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	meta, err := l.meta.TokenMeta()
	if err != nil {
		return false, err
	}
	return meta != nil, nil
}

// TokenMeta returns the genesis-time token metadata
func (l *Ledger) TokenMeta() (*store.TokenMeta, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	meta, err := l.meta.TokenMeta()
	if err != nil {
		return nil, err
	}
	if meta == nil {
		return nil, ErrNotInitialized
	}
	return meta, nil
}

// TotalSupply returns the fixed value set at genesis
func (l *Ledger) TotalSupply() (*uint256.Int, error) {
	meta, err := l.TokenMeta()
	if err != nil {
		return nil, err
	}
	return meta.TotalSupply, nil
}

// BalanceOf returns the stored balance, zero for accounts with no entry
func (l *Ledger) BalanceOf(addr types.Address) (*uint256.Int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.balances.Balance(addr)
}

// Allowance returns how much spender may still transfer out of owner's
// balance, zero for pairs with no entry
func (l *Ledger) Allowance(owner, spender types.Address) (*uint256.Int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.allowances.Allowance(owner, spender)
}

// AllBalances returns every account with a stored balance entry
func (l *Ledger) AllBalances() (map[types.Address]*uint256.Int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.balances.All()
}

// Transfer moves value from the caller's balance to the recipient
func (l *Ledger) Transfer(caller, to types.Address, value *uint256.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.transferFromTo(caller, to, normalizeAmount(value))
}

// TransferFrom moves value out of the owner's balance on the owner's
// behalf, limited by the allowance the owner granted to the caller.
//
// The allowance is decremented before the balance check, matching the
// contract this ledger replaces: a delegated transfer that fails with
// ErrBalanceTooLow has already consumed allowance. Clients relying on
// the allowance after a failed call must re-read it.
func (l *Ledger) TransferFrom(caller, from, to types.Address, value *uint256.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	value = normalizeAmount(value)

	allowance, err := l.allowances.Allowance(from, caller)
	if err != nil {
		return err
	}
	if value.Gt(allowance) {
		return ErrAllowanceTooLow
	}

	remaining, underflow := new(uint256.Int).SubOverflow(allowance, value)
	if underflow {
		return ErrAmountOverflow
	}
	if err := l.allowances.SetAllowance(from, caller, remaining); err != nil {
		return err
	}

	if err := l.transferFromTo(from, to, value); err != nil {
		logx.Warn("LEDGER", fmt.Sprintf("Delegated transfer %s -> %s by %s failed after allowance decrement: %v", from, to, caller, err))
		return err
	}
	return nil
}

// Approve sets (not increments) the allowance of spender over the
// caller's balance and emits an Approval event. A second call replaces
// the prior allowance entirely.
func (l *Ledger) Approve(caller, spender types.Address, value *uint256.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	value = normalizeAmount(value)

	if err := l.allowances.SetAllowance(caller, spender, value); err != nil {
		return err
	}

	l.emit(events.NewApproval(caller, spender, value))
	return nil
}

// transferFromTo is the privileged transfer primitive. Callers have
// already established authorization; this only enforces the balance
// precondition. Both balances commit in one batch and the Transfer
// event fires after the commit, so a failed call leaves no trace.
func (l *Ledger) transferFromTo(from, to types.Address, value *uint256.Int) error {
	balanceFrom, err := l.balances.Balance(from)
	if err != nil {
		return err
	}
	balanceTo, err := l.balances.Balance(to)
	if err != nil {
		return err
	}

	if value.Gt(balanceFrom) {
		return ErrBalanceTooLow
	}

	if from == to {
		// Debit and credit cancel out. The balance check above still
		// ran; only the write is skipped.
		l.emit(events.NewTransfer(from, to, value))
		return nil
	}

	newFrom, underflow := new(uint256.Int).SubOverflow(balanceFrom, value)
	if underflow {
		return ErrAmountOverflow
	}
	newTo, overflow := new(uint256.Int).AddOverflow(balanceTo, value)
	if overflow {
		return ErrAmountOverflow
	}

	err = l.balances.SetBalanceBatch([]store.BalanceEntry{
		{Address: from, Balance: newFrom},
		{Address: to, Balance: newTo},
	})
	if err != nil {
		return err
	}

	l.emit(events.NewTransfer(from, to, value))
	return nil
}

func (l *Ledger) emit(event events.LedgerEvent) {
	if l.router != nil {
		l.router.Emit(event)
	}
}

// normalizeAmount clones the caller's amount so later mutations on the
// caller side cannot reach stored state or emitted events. Nil means
// zero.
func normalizeAmount(value *uint256.Int) *uint256.Int {
	if value == nil {
		return uint256.NewInt(0)
	}
	return value.Clone()
}

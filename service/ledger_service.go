package service

import (
	"fmt"

	"github.com/holiman/uint256"

	"ftl/errors"
	"ftl/ledger"
	"ftl/logx"
	"ftl/store"
	"ftl/types"
	"ftl/utils"
)

// LedgerService is the host-facing surface over the core ledger. It
// parses text-form addresses and amounts from the host, forwards the
// authenticated caller identity, and translates core sentinels into
// coded errors.
type LedgerService struct {
	ledger *ledger.Ledger
}

func NewLedgerService(ld *ledger.Ledger) *LedgerService {
	return &LedgerService{ledger: ld}
}

// Init runs genesis, crediting the whole supply to owner
func (s *LedgerService) Init(owner, totalSupply, symbol string, decimals uint32) error {
	ownerAddr, err := parseAddress(owner)
	if err != nil {
		return err
	}
	supply, err := parseAmount(totalSupply)
	if err != nil {
		return err
	}

	if err := s.ledger.Init(ownerAddr, supply, symbol, decimals); err != nil {
		logx.Error("SERVICE", "Init failed:", err.Error())
		return errors.FromError(err)
	}
	return nil
}

// Info returns the genesis-time token metadata
func (s *LedgerService) Info() (*store.TokenMeta, error) {
	meta, err := s.ledger.TokenMeta()
	if err != nil {
		return nil, errors.FromError(err)
	}
	return meta, nil
}

// TotalSupply returns the fixed supply as a decimal string
func (s *LedgerService) TotalSupply() (string, error) {
	supply, err := s.ledger.TotalSupply()
	if err != nil {
		return "", errors.FromError(err)
	}
	return utils.AmountToString(supply), nil
}

// GetBalance returns the balance of addr, "0" for unknown accounts
func (s *LedgerService) GetBalance(addr string) (string, error) {
	account, err := parseAddress(addr)
	if err != nil {
		return "", err
	}
	balance, err := s.ledger.BalanceOf(account)
	if err != nil {
		return "", errors.FromError(err)
	}
	return utils.AmountToString(balance), nil
}

// GetAllowance returns the remaining allowance of the (owner, spender) pair
func (s *LedgerService) GetAllowance(owner, spender string) (string, error) {
	ownerAddr, err := parseAddress(owner)
	if err != nil {
		return "", err
	}
	spenderAddr, err := parseAddress(spender)
	if err != nil {
		return "", err
	}
	allowance, err := s.ledger.Allowance(ownerAddr, spenderAddr)
	if err != nil {
		return "", errors.FromError(err)
	}
	return utils.AmountToString(allowance), nil
}

// ListBalances returns every account holding a stored balance entry
func (s *LedgerService) ListBalances() (map[string]string, error) {
	balances, err := s.ledger.AllBalances()
	if err != nil {
		return nil, errors.FromError(err)
	}
	result := make(map[string]string, len(balances))
	for addr, balance := range balances {
		result[addr.String()] = utils.AmountToString(balance)
	}
	return result, nil
}

// Transfer moves value from caller to recipient
func (s *LedgerService) Transfer(caller, to, value string) error {
	callerAddr, err := parseAddress(caller)
	if err != nil {
		return err
	}
	toAddr, err := parseAddress(to)
	if err != nil {
		return err
	}
	amount, err := parseAmount(value)
	if err != nil {
		return err
	}

	if err := s.ledger.Transfer(callerAddr, toAddr, amount); err != nil {
		logx.Warn("SERVICE", fmt.Sprintf("Transfer %s -> %s value %s failed: %v", caller, to, value, err))
		return errors.FromError(err)
	}
	logx.Info("SERVICE", fmt.Sprintf("Transfer %s -> %s value %s", caller, to, value))
	return nil
}

// TransferFrom moves value out of from on the owner's behalf
func (s *LedgerService) TransferFrom(caller, from, to, value string) error {
	callerAddr, err := parseAddress(caller)
	if err != nil {
		return err
	}
	fromAddr, err := parseAddress(from)
	if err != nil {
		return err
	}
	toAddr, err := parseAddress(to)
	if err != nil {
		return err
	}
	amount, err := parseAmount(value)
	if err != nil {
		return err
	}

	if err := s.ledger.TransferFrom(callerAddr, fromAddr, toAddr, amount); err != nil {
		logx.Warn("SERVICE", fmt.Sprintf("TransferFrom %s -> %s by %s value %s failed: %v", from, to, caller, value, err))
		return errors.FromError(err)
	}
	logx.Info("SERVICE", fmt.Sprintf("TransferFrom %s -> %s by %s value %s", from, to, caller, value))
	return nil
}

// Approve sets the allowance of spender over the caller's balance
func (s *LedgerService) Approve(caller, spender, value string) error {
	callerAddr, err := parseAddress(caller)
	if err != nil {
		return err
	}
	spenderAddr, err := parseAddress(spender)
	if err != nil {
		return err
	}
	amount, err := parseAmount(value)
	if err != nil {
		return err
	}

	if err := s.ledger.Approve(callerAddr, spenderAddr, amount); err != nil {
		logx.Error("SERVICE", fmt.Sprintf("Approve %s -> %s value %s failed: %v", caller, spender, value, err))
		return errors.FromError(err)
	}
	logx.Info("SERVICE", fmt.Sprintf("Approve %s -> %s value %s", caller, spender, value))
	return nil
}

func parseAddress(s string) (types.Address, error) {
	addr, err := types.ParseAddress(s)
	if err != nil {
		return types.Address{}, errors.NewLedgerError(errors.ErrCodeInvalidAddress, errors.ErrMsgInvalidAddress)
	}
	return addr, nil
}

func parseAmount(s string) (*uint256.Int, error) {
	amount, err := utils.AmountFromString(s)
	if err != nil {
		return nil, errors.NewLedgerError(errors.ErrCodeInvalidAmount, errors.ErrMsgInvalidAmount)
	}
	return amount, nil
}

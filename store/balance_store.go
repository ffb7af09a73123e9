package store

import (
	"fmt"
	"sync"

	"github.com/holiman/uint256"

	"ftl/db"
	"ftl/jsonx"
	"ftl/logx"
	"ftl/types"
	"ftl/utils"
)

// BalanceEntry pairs an account with its new balance for batch commits.
type BalanceEntry struct {
	Address types.Address
	Balance *uint256.Int
}

// BalanceStore persists the account -> balance mapping. Absent
// accounts hold balance zero; reads never fail on a missing entry.
type BalanceStore interface {
	Balance(addr types.Address) (*uint256.Int, error)
	SetBalance(addr types.Address, balance *uint256.Int) error
	SetBalanceBatch(entries []BalanceEntry) error
	All() (map[types.Address]*uint256.Int, error)
	MustClose()
}

// balanceRecord is the stored JSON form of one balance entry
type balanceRecord struct {
	Address string `json:"address"`
	Balance string `json:"balance"`
}

type GenericBalanceStore struct {
	mu         sync.RWMutex
	dbProvider db.DatabaseProvider
}

func NewGenericBalanceStore(dbProvider db.DatabaseProvider) (*GenericBalanceStore, error) {
	if dbProvider == nil {
		return nil, fmt.Errorf("provider cannot be nil")
	}

	return &GenericBalanceStore{
		dbProvider: dbProvider,
	}, nil
}

// Balance returns the stored balance, zero when the account has no entry
func (bs *GenericBalanceStore) Balance(addr types.Address) (*uint256.Int, error) {
	bs.mu.RLock()
	defer bs.mu.RUnlock()

	data, err := bs.dbProvider.Get(bs.getDbKey(addr))
	if err != nil {
		return nil, fmt.Errorf("could not get balance of %s from db: %w", addr, err)
	}
	if data == nil {
		return uint256.NewInt(0), nil
	}

	return decodeBalanceRecord(addr, data)
}

func (bs *GenericBalanceStore) SetBalance(addr types.Address, balance *uint256.Int) error {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	data, err := encodeBalanceRecord(addr, balance)
	if err != nil {
		return err
	}
	if err := bs.dbProvider.Put(bs.getDbKey(addr), data); err != nil {
		return fmt.Errorf("failed to write balance to db: %w", err)
	}
	return nil
}

// SetBalanceBatch commits several balances atomically. Transfers go
// through here so the debit and the credit land together or not at all.
func (bs *GenericBalanceStore) SetBalanceBatch(entries []BalanceEntry) error {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	batch := bs.dbProvider.Batch()
	for _, entry := range entries {
		data, err := encodeBalanceRecord(entry.Address, entry.Balance)
		if err != nil {
			return err
		}
		batch.Put(bs.getDbKey(entry.Address), data)
	}

	if err := batch.Write(); err != nil {
		return fmt.Errorf("failed to write batch of balances to db: %w", err)
	}
	return nil
}

// All returns every stored balance, used for conservation checks and
// holder listings. Requires an iterable provider.
func (bs *GenericBalanceStore) All() (map[types.Address]*uint256.Int, error) {
	bs.mu.RLock()
	defer bs.mu.RUnlock()

	iterable, ok := bs.dbProvider.(db.IterableProvider)
	if !ok {
		return nil, fmt.Errorf("provider does not support iteration")
	}

	balances := make(map[types.Address]*uint256.Int)
	var iterErr error
	err := iterable.IteratePrefix([]byte(PrefixBalance), func(key, value []byte) bool {
		var record balanceRecord
		if iterErr = jsonx.Unmarshal(value, &record); iterErr != nil {
			return false
		}
		addr, err := types.ParseAddress(record.Address)
		if err != nil {
			iterErr = err
			return false
		}
		balance, err := utils.AmountFromString(record.Balance)
		if err != nil {
			iterErr = err
			return false
		}
		balances[addr] = balance
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate balances: %w", err)
	}
	if iterErr != nil {
		return nil, fmt.Errorf("failed to decode balance record: %w", iterErr)
	}
	return balances, nil
}

func (bs *GenericBalanceStore) MustClose() {
	if err := bs.dbProvider.Close(); err != nil {
		logx.Error("BALANCE_STORE", "Failed to close db provider:", err.Error())
	}
}

func (bs *GenericBalanceStore) getDbKey(addr types.Address) []byte {
	return balanceDbKey(addr)
}

func balanceDbKey(addr types.Address) []byte {
	return []byte(PrefixBalance + addr.String())
}

func encodeBalanceRecord(addr types.Address, balance *uint256.Int) ([]byte, error) {
	data, err := jsonx.Marshal(balanceRecord{
		Address: addr.String(),
		Balance: utils.AmountToString(balance),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal balance record: %w", err)
	}
	return data, nil
}

func decodeBalanceRecord(addr types.Address, data []byte) (*uint256.Int, error) {
	var record balanceRecord
	if err := jsonx.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal balance of %s: %w", addr, err)
	}
	return utils.AmountFromString(record.Balance)
}

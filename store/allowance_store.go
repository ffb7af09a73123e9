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

// AllowanceStore persists the (owner, spender) -> remaining allowance
// mapping. Absent pairs hold allowance zero.
type AllowanceStore interface {
	Allowance(owner, spender types.Address) (*uint256.Int, error)
	SetAllowance(owner, spender types.Address, value *uint256.Int) error
	MustClose()
}

// allowanceRecord is the stored JSON form of one allowance entry
type allowanceRecord struct {
	Owner   string `json:"owner"`
	Spender string `json:"spender"`
	Value   string `json:"value"`
}

type GenericAllowanceStore struct {
	mu         sync.RWMutex
	dbProvider db.DatabaseProvider
}

func NewGenericAllowanceStore(dbProvider db.DatabaseProvider) (*GenericAllowanceStore, error) {
	if dbProvider == nil {
		return nil, fmt.Errorf("provider cannot be nil")
	}

	return &GenericAllowanceStore{
		dbProvider: dbProvider,
	}, nil
}

// Allowance returns the stored allowance, zero when the pair has no entry
func (as *GenericAllowanceStore) Allowance(owner, spender types.Address) (*uint256.Int, error) {
	as.mu.RLock()
	defer as.mu.RUnlock()

	data, err := as.dbProvider.Get(as.getDbKey(owner, spender))
	if err != nil {
		return nil, fmt.Errorf("could not get allowance %s -> %s from db: %w", owner, spender, err)
	}
	if data == nil {
		return uint256.NewInt(0), nil
	}

	var record allowanceRecord
	if err := jsonx.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal allowance %s -> %s: %w", owner, spender, err)
	}
	return utils.AmountFromString(record.Value)
}

// SetAllowance overwrites the allowance for the pair. Approve and the
// delegated-transfer decrement both land here.
func (as *GenericAllowanceStore) SetAllowance(owner, spender types.Address, value *uint256.Int) error {
	as.mu.Lock()
	defer as.mu.Unlock()

	data, err := jsonx.Marshal(allowanceRecord{
		Owner:   owner.String(),
		Spender: spender.String(),
		Value:   utils.AmountToString(value),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal allowance record: %w", err)
	}

	if err := as.dbProvider.Put(as.getDbKey(owner, spender), data); err != nil {
		return fmt.Errorf("failed to write allowance to db: %w", err)
	}
	return nil
}

func (as *GenericAllowanceStore) MustClose() {
	if err := as.dbProvider.Close(); err != nil {
		logx.Error("ALLOWANCE_STORE", "Failed to close db provider:", err.Error())
	}
}

func (as *GenericAllowanceStore) getDbKey(owner, spender types.Address) []byte {
	return []byte(PrefixAllowance + owner.String() + ":" + spender.String())
}

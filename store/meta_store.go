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

// TokenMeta holds the values fixed at genesis: the total supply the
// conservation invariant is checked against, plus display metadata.
type TokenMeta struct {
	TotalSupply *uint256.Int
	Symbol      string
	Decimals    uint32
}

// MetaStore persists token metadata. TokenMeta returns nil before the
// ledger has been initialized.
type MetaStore interface {
	TokenMeta() (*TokenMeta, error)
	SetTokenMeta(meta *TokenMeta) error
	CommitGenesis(meta *TokenMeta, owner types.Address) error
	MustClose()
}

type tokenMetaRecord struct {
	TotalSupply string `json:"total_supply"`
	Symbol      string `json:"symbol"`
	Decimals    uint32 `json:"decimals"`
}

type GenericMetaStore struct {
	mu         sync.RWMutex
	dbProvider db.DatabaseProvider
}

func NewGenericMetaStore(dbProvider db.DatabaseProvider) (*GenericMetaStore, error) {
	if dbProvider == nil {
		return nil, fmt.Errorf("provider cannot be nil")
	}

	return &GenericMetaStore{
		dbProvider: dbProvider,
	}, nil
}

func (ms *GenericMetaStore) TokenMeta() (*TokenMeta, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	data, err := ms.dbProvider.Get([]byte(MetaKeyToken))
	if err != nil {
		return nil, fmt.Errorf("could not get token meta from db: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var record tokenMetaRecord
	if err := jsonx.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal token meta: %w", err)
	}
	totalSupply, err := utils.AmountFromString(record.TotalSupply)
	if err != nil {
		return nil, err
	}
	return &TokenMeta{
		TotalSupply: totalSupply,
		Symbol:      record.Symbol,
		Decimals:    record.Decimals,
	}, nil
}

func (ms *GenericMetaStore) SetTokenMeta(meta *TokenMeta) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	data, err := jsonx.Marshal(tokenMetaRecord{
		TotalSupply: utils.AmountToString(meta.TotalSupply),
		Symbol:      meta.Symbol,
		Decimals:    meta.Decimals,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal token meta: %w", err)
	}

	if err := ms.dbProvider.Put([]byte(MetaKeyToken), data); err != nil {
		return fmt.Errorf("failed to write token meta to db: %w", err)
	}
	return nil
}

// CommitGenesis writes the token meta and the owner's opening balance
// in one batch on the shared provider. Genesis either lands whole or
// not at all, so a failed write leaves the ledger uninitialized with
// no stray balance behind.
func (ms *GenericMetaStore) CommitGenesis(meta *TokenMeta, owner types.Address) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	metaData, err := jsonx.Marshal(tokenMetaRecord{
		TotalSupply: utils.AmountToString(meta.TotalSupply),
		Symbol:      meta.Symbol,
		Decimals:    meta.Decimals,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal token meta: %w", err)
	}
	balanceData, err := encodeBalanceRecord(owner, meta.TotalSupply)
	if err != nil {
		return err
	}

	batch := ms.dbProvider.Batch()
	batch.Put([]byte(MetaKeyToken), metaData)
	batch.Put(balanceDbKey(owner), balanceData)
	if err := batch.Write(); err != nil {
		return fmt.Errorf("failed to commit genesis to db: %w", err)
	}
	return nil
}

func (ms *GenericMetaStore) MustClose() {
	if err := ms.dbProvider.Close(); err != nil {
		logx.Error("META_STORE", "Failed to close db provider:", err.Error())
	}
}

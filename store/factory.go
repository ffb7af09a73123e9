package store

import (
	"fmt"
	"path/filepath"

	"ftl/db"
	"ftl/logx"
)

// StoreType represents the type of store backend
type StoreType string

const (
	// MemoryStoreType keeps state in process memory (tests, ephemeral hosts)
	MemoryStoreType StoreType = "memory"

	// LevelDBStoreType uses the LevelDB implementation
	LevelDBStoreType StoreType = "leveldb"

	// BoltStoreType uses the bbolt single-file implementation
	BoltStoreType StoreType = "bolt"

	// RedisStoreType uses the Redis implementation
	RedisStoreType StoreType = "redis"
)

// StoreConfig holds configuration for creating store instances
type StoreConfig struct {
	// Type specifies which store backend to use
	Type StoreType `json:"type" yaml:"type" ini:"type"`

	// Directory is the database directory path (for file-based backends)
	Directory string `json:"directory" yaml:"directory" ini:"directory"`

	// Address is the server address (for the Redis backend)
	Address string `json:"address" yaml:"address" ini:"address"`
}

// Validate validates the store configuration
func (sc *StoreConfig) Validate() error {
	switch sc.Type {
	case MemoryStoreType:
		return nil
	case LevelDBStoreType, BoltStoreType:
		if sc.Directory == "" {
			return fmt.Errorf("directory cannot be empty for %s store", sc.Type)
		}
		return nil
	case RedisStoreType:
		if sc.Address == "" {
			return fmt.Errorf("address cannot be empty for redis store")
		}
		return nil
	case "":
		return fmt.Errorf("store type cannot be empty")
	default:
		return fmt.Errorf("unsupported store type: %s", sc.Type)
	}
}

// Stores bundles the four ledger stores backed by one shared provider.
type Stores struct {
	Balances   BalanceStore
	Allowances AllowanceStore
	Meta       MetaStore
	Events     EventStore

	provider db.DatabaseProvider
}

// MustClose closes the shared provider behind all stores
func (s *Stores) MustClose() {
	if err := s.provider.Close(); err != nil {
		logx.Error("STORE", "Failed to close db provider:", err.Error())
	}
}

// StoreFactory takes responsibility to create store instances
type StoreFactory struct{}

// NewStoreFactory creates a new store factory
func NewStoreFactory() *StoreFactory {
	return &StoreFactory{}
}

// CreateProvider creates the database provider configured in cfg
func (f *StoreFactory) CreateProvider(cfg *StoreConfig) (db.IterableProvider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Type {
	case MemoryStoreType:
		return db.NewMemoryProvider(), nil
	case LevelDBStoreType:
		return db.NewLevelDBProvider(filepath.Join(cfg.Directory, "ledger"))
	case BoltStoreType:
		return db.NewBoltProvider(filepath.Join(cfg.Directory, "ledger.db"))
	case RedisStoreType:
		return db.NewRedisProvider(cfg.Address)
	default:
		return nil, fmt.Errorf("unsupported store type: %s", cfg.Type)
	}
}

// CreateStores builds all ledger stores on top of one shared provider
func (f *StoreFactory) CreateStores(cfg *StoreConfig) (*Stores, error) {
	provider, err := f.CreateProvider(cfg)
	if err != nil {
		return nil, err
	}
	return f.CreateStoresWithProvider(provider)
}

// CreateStoresWithProvider builds the stores over an existing provider.
// Tests use this with a memory provider.
func (f *StoreFactory) CreateStoresWithProvider(provider db.IterableProvider) (*Stores, error) {
	balances, err := NewGenericBalanceStore(provider)
	if err != nil {
		return nil, fmt.Errorf("failed to create balance store: %w", err)
	}
	allowances, err := NewGenericAllowanceStore(provider)
	if err != nil {
		return nil, fmt.Errorf("failed to create allowance store: %w", err)
	}
	meta, err := NewGenericMetaStore(provider)
	if err != nil {
		return nil, fmt.Errorf("failed to create meta store: %w", err)
	}
	eventStore, err := NewGenericEventStore(provider)
	if err != nil {
		return nil, fmt.Errorf("failed to create event store: %w", err)
	}

	return &Stores{
		Balances:   balances,
		Allowances: allowances,
		Meta:       meta,
		Events:     eventStore,
		provider:   provider,
	}, nil
}

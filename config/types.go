package config

import (
	"github.com/holiman/uint256"

	"ftl/store"
	"ftl/types"
	"ftl/utils"
)

// TokenConfig describes the token fixed at genesis
type TokenConfig struct {
	Symbol      string `yaml:"symbol"`
	Decimals    uint32 `yaml:"decimals"`
	TotalSupply string `yaml:"total_supply"`
}

// GenesisConfig holds the configuration from genesis.yml
type GenesisConfig struct {
	Token TokenConfig `yaml:"token"`
	// Owner is the constructing caller credited with the entire supply
	Owner string `yaml:"owner"`
}

// ConfigFile is the top-level structure for genesis.yml
type ConfigFile struct {
	Config GenesisConfig `yaml:"config"`
}

// OwnerAddress parses the configured owner account
func (g *GenesisConfig) OwnerAddress() (types.Address, error) {
	return types.ParseAddress(g.Owner)
}

// Supply parses the configured total supply
func (g *GenesisConfig) Supply() (*uint256.Int, error) {
	return utils.AmountFromString(g.Token.TotalSupply)
}

// LedgerConfig holds the runtime configuration from ledger.ini
type LedgerConfig struct {
	Store store.StoreConfig
	// EventBufferSize is the per-subscriber event channel buffer,
	// 0 selects the default
	EventBufferSize int
}

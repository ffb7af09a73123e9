package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ftl/store"
	"ftl/types"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func testOwner() string {
	raw := make([]byte, types.AddressLen)
	raw[0] = 1
	return base58.Encode(raw)
}

func TestLoadGenesisConfig(t *testing.T) {
	owner := testOwner()
	path := writeFile(t, "genesis.yml", `
config:
  token:
    symbol: FTL
    decimals: 6
    total_supply: "1000000"
  owner: `+owner+`
`)

	cfg, err := LoadGenesisConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "FTL", cfg.Token.Symbol)
	assert.Equal(t, uint32(6), cfg.Token.Decimals)

	supply, err := cfg.Supply()
	require.NoError(t, err)
	assert.Equal(t, uint64(1000000), supply.Uint64())

	addr, err := cfg.OwnerAddress()
	require.NoError(t, err)
	assert.Equal(t, owner, addr.String())
}

func TestLoadGenesisConfigRejectsBadOwner(t *testing.T) {
	path := writeFile(t, "genesis.yml", `
config:
  token:
    total_supply: "100"
  owner: "tooshort"
`)
	_, err := LoadGenesisConfig(path)
	assert.Error(t, err)
}

func TestLoadGenesisConfigRejectsBadSupply(t *testing.T) {
	path := writeFile(t, "genesis.yml", `
config:
  token:
    total_supply: "12abc"
  owner: `+testOwner()+`
`)
	_, err := LoadGenesisConfig(path)
	assert.Error(t, err)
}

func TestLoadLedgerConfig(t *testing.T) {
	path := writeFile(t, "ledger.ini", `
[store]
type = leveldb
directory = /var/lib/ftl

[events]
buffer_size = 128
`)

	cfg, err := LoadLedgerConfig(path)
	require.NoError(t, err)
	assert.Equal(t, store.LevelDBStoreType, cfg.Store.Type)
	assert.Equal(t, "/var/lib/ftl", cfg.Store.Directory)
	assert.Equal(t, 128, cfg.EventBufferSize)
}

func TestLoadLedgerConfigDefaults(t *testing.T) {
	path := writeFile(t, "ledger.ini", `
[store]
type = memory
`)

	cfg, err := LoadLedgerConfig(path)
	require.NoError(t, err)
	assert.Equal(t, store.MemoryStoreType, cfg.Store.Type)
	assert.Equal(t, 0, cfg.EventBufferSize)
}

func TestLoadLedgerConfigRejectsUnknownStore(t *testing.T) {
	path := writeFile(t, "ledger.ini", `
[store]
type = cassandra
`)
	_, err := LoadLedgerConfig(path)
	assert.Error(t, err)
}

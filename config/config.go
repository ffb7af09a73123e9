package config

import (
	"fmt"
	"os"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"ftl/logx"
	"ftl/store"
)

// LoadGenesisConfig reads and parses the genesis.yml file
func LoadGenesisConfig(path string) (*GenesisConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open genesis config: %w", err)
	}
	defer file.Close()

	var cfgFile ConfigFile
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfgFile); err != nil {
		return nil, fmt.Errorf("failed to decode genesis config: %w", err)
	}

	if _, err := cfgFile.Config.OwnerAddress(); err != nil {
		return nil, err
	}
	if _, err := cfgFile.Config.Supply(); err != nil {
		return nil, err
	}

	logx.Info("CONFIG", fmt.Sprintf("Loaded genesis config: owner=%s, supply=%s, symbol=%s", cfgFile.Config.Owner, cfgFile.Config.Token.TotalSupply, cfgFile.Config.Token.Symbol))
	return &cfgFile.Config, nil
}

// LoadLedgerConfig reads runtime settings from a ledger.ini file
func LoadLedgerConfig(path string) (*LedgerConfig, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger config: %w", err)
	}

	var storeConfig store.StoreConfig
	if err := cfg.Section("store").MapTo(&storeConfig); err != nil {
		return nil, fmt.Errorf("failed to parse store section: %w", err)
	}
	if err := storeConfig.Validate(); err != nil {
		return nil, err
	}

	bufferSize := cfg.Section("events").Key("buffer_size").MustInt(0)

	return &LedgerConfig{
		Store:           storeConfig,
		EventBufferSize: bufferSize,
	}, nil
}

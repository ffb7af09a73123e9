package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"ftl/config"
	"ftl/events"
	"ftl/ledger"
	"ftl/logx"
	"ftl/service"
	"ftl/store"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "ftl",
	Short: "FTL fungible token ledger CLI",
	Long: "Command line host for the FTL fungible token ledger. The host is trusted:\n" +
		"the --caller flag supplies the authenticated identity for state-mutating\n" +
		"operations, and one process runs one call at a time.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logx.Error("CMD", "Command execution failed:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "ledger.ini", "path to the ledger.ini runtime config")
}

// openService wires stores, event routing and the core ledger from the
// runtime config. Callers must MustClose the returned stores.
func openService() (*service.LedgerService, *store.Stores, error) {
	cfg, err := config.LoadLedgerConfig(configPath)
	if err != nil {
		return nil, nil, err
	}

	stores, err := store.NewStoreFactory().CreateStores(&cfg.Store)
	if err != nil {
		return nil, nil, err
	}

	router := events.NewRouter(events.NewEventBus(cfg.EventBufferSize))
	router.AddSink(store.NewEventSink(stores.Events))

	ld := ledger.NewLedger(stores.Balances, stores.Allowances, stores.Meta, router)
	return service.NewLedgerService(ld), stores, nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ftl/config"
)

var genesisPath string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the ledger from a genesis file",
	Long: "Runs the one-time genesis: fixes the total supply and credits all of it\n" +
		"to the owner account named in the genesis file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		genesis, err := config.LoadGenesisConfig(genesisPath)
		if err != nil {
			return err
		}

		svc, stores, err := openService()
		if err != nil {
			return err
		}
		defer stores.MustClose()

		if err := svc.Init(genesis.Owner, genesis.Token.TotalSupply, genesis.Token.Symbol, genesis.Token.Decimals); err != nil {
			return err
		}

		fmt.Printf("Ledger initialized: supply %s credited to %s\n", genesis.Token.TotalSupply, genesis.Owner)
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&genesisPath, "genesis", "genesis.yml", "path to the genesis file")
	rootCmd.AddCommand(initCmd)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ftl/utils"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show token metadata and total supply",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, stores, err := openService()
		if err != nil {
			return err
		}
		defer stores.MustClose()

		meta, err := svc.Info()
		if err != nil {
			return err
		}

		fmt.Printf("Symbol:       %s\n", meta.Symbol)
		fmt.Printf("Decimals:     %d\n", meta.Decimals)
		fmt.Printf("Total supply: %s\n", utils.AmountToString(meta.TotalSupply))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

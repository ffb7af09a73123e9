package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var allowanceCmd = &cobra.Command{
	Use:   "allowance <owner> <spender>",
	Short: "Show the remaining allowance of a spender over an owner's balance",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, stores, err := openService()
		if err != nil {
			return err
		}
		defer stores.MustClose()

		allowance, err := svc.GetAllowance(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Println(allowance)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(allowanceCmd)
}

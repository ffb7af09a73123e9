package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	approveCaller  string
	approveSpender string
	approveValue   string
)

var approveCmd = &cobra.Command{
	Use:   "approve",
	Short: "Set a spender's allowance over the caller's balance",
	Long: "Sets (never adds to) the amount the spender may transfer out of the\n" +
		"caller's balance. A second approve replaces the prior allowance.",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, stores, err := openService()
		if err != nil {
			return err
		}
		defer stores.MustClose()

		if err := svc.Approve(approveCaller, approveSpender, approveValue); err != nil {
			return err
		}
		fmt.Println("OK")
		return nil
	},
}

func init() {
	approveCmd.Flags().StringVar(&approveCaller, "caller", "", "authenticated caller (owner) address (required)")
	approveCmd.Flags().StringVar(&approveSpender, "spender", "", "spender address (required)")
	approveCmd.Flags().StringVar(&approveValue, "value", "", "allowance amount (required)")
	approveCmd.MarkFlagRequired("caller")
	approveCmd.MarkFlagRequired("spender")
	approveCmd.MarkFlagRequired("value")
	rootCmd.AddCommand(approveCmd)
}

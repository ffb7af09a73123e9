package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	transferCaller string
	transferTo     string
	transferValue  string
)

var transferCmd = &cobra.Command{
	Use:   "transfer",
	Short: "Transfer tokens from the caller to a recipient",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, stores, err := openService()
		if err != nil {
			return err
		}
		defer stores.MustClose()

		if err := svc.Transfer(transferCaller, transferTo, transferValue); err != nil {
			return err
		}
		fmt.Println("OK")
		return nil
	},
}

func init() {
	transferCmd.Flags().StringVar(&transferCaller, "caller", "", "authenticated caller address (required)")
	transferCmd.Flags().StringVar(&transferTo, "to", "", "recipient address (required)")
	transferCmd.Flags().StringVar(&transferValue, "value", "", "amount to transfer (required)")
	transferCmd.MarkFlagRequired("caller")
	transferCmd.MarkFlagRequired("to")
	transferCmd.MarkFlagRequired("value")
	rootCmd.AddCommand(transferCmd)
}

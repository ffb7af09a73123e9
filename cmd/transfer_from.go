package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	tfCaller string
	tfFrom   string
	tfTo     string
	tfValue  string
)

var transferFromCmd = &cobra.Command{
	Use:   "transfer-from",
	Short: "Transfer tokens out of another account using an allowance",
	Long: "Moves tokens out of --from on that owner's behalf. The caller must hold\n" +
		"an allowance from the owner covering the amount; the allowance is\n" +
		"consumed before the owner's balance is checked.",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, stores, err := openService()
		if err != nil {
			return err
		}
		defer stores.MustClose()

		if err := svc.TransferFrom(tfCaller, tfFrom, tfTo, tfValue); err != nil {
			return err
		}
		fmt.Println("OK")
		return nil
	},
}

func init() {
	transferFromCmd.Flags().StringVar(&tfCaller, "caller", "", "authenticated caller (spender) address (required)")
	transferFromCmd.Flags().StringVar(&tfFrom, "from", "", "owner address to debit (required)")
	transferFromCmd.Flags().StringVar(&tfTo, "to", "", "recipient address (required)")
	transferFromCmd.Flags().StringVar(&tfValue, "value", "", "amount to transfer (required)")
	transferFromCmd.MarkFlagRequired("caller")
	transferFromCmd.MarkFlagRequired("from")
	transferFromCmd.MarkFlagRequired("to")
	transferFromCmd.MarkFlagRequired("value")
	rootCmd.AddCommand(transferFromCmd)
}

package cmd

import (
	"crypto/rand"
	"fmt"

	"github.com/spf13/cobra"

	"ftl/types"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Account helpers",
}

var accountNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Generate a fresh random account address",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := make([]byte, types.AddressLen)
		if _, err := rand.Read(raw); err != nil {
			return fmt.Errorf("failed to generate address: %w", err)
		}
		addr, err := types.AddressFromBytes(raw)
		if err != nil {
			return err
		}
		fmt.Println(addr.String())
		return nil
	},
}

func init() {
	accountCmd.AddCommand(accountNewCmd)
	rootCmd.AddCommand(accountCmd)
}

package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var balanceAll bool

var balanceCmd = &cobra.Command{
	Use:   "balance [address]",
	Short: "Show the balance of an account",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, stores, err := openService()
		if err != nil {
			return err
		}
		defer stores.MustClose()

		if balanceAll {
			balances, err := svc.ListBalances()
			if err != nil {
				return err
			}
			addrs := make([]string, 0, len(balances))
			for addr := range balances {
				addrs = append(addrs, addr)
			}
			sort.Strings(addrs)
			for _, addr := range addrs {
				fmt.Printf("%s %s\n", addr, balances[addr])
			}
			return nil
		}

		if len(args) != 1 {
			return fmt.Errorf("an address argument is required unless --all is set")
		}
		balance, err := svc.GetBalance(args[0])
		if err != nil {
			return err
		}
		fmt.Println(balance)
		return nil
	},
}

func init() {
	balanceCmd.Flags().BoolVar(&balanceAll, "all", false, "list every account with a stored balance")
	rootCmd.AddCommand(balanceCmd)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ftl/jsonx"
)

var (
	eventsLimit  uint32
	eventsOffset uint32
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List recorded ledger events in emission order",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, stores, err := openService()
		if err != nil {
			return err
		}
		defer stores.MustClose()

		records, err := stores.Events.List(eventsLimit, eventsOffset)
		if err != nil {
			return err
		}

		for _, record := range records {
			line, err := jsonx.Marshal(record)
			if err != nil {
				return err
			}
			fmt.Println(string(line))
		}
		return nil
	},
}

func init() {
	eventsCmd.Flags().Uint32Var(&eventsLimit, "limit", 0, "maximum number of events to show (0 = all)")
	eventsCmd.Flags().Uint32Var(&eventsOffset, "offset", 0, "number of events to skip")
	rootCmd.AddCommand(eventsCmd)
}

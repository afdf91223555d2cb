package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func storesCmd() *cobra.Command {
	storesRoot := &cobra.Command{
		Use:   "stores",
		Short: "View and manage store check policies",
		Long: "Stores are deactivated after 10 consecutive check failures.\n" +
			"Use reactivate once the store is reachable again.",
	}

	storesRoot.AddCommand(
		storesListCmd(),
		storesReactivateCmd(),
	)

	return storesRoot
}

func storesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "List stores and their health",
		Example: `  invctl stores list`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			stores, err := c.ListStores(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(stores)
			}
			if len(stores) == 0 {
				fmt.Println("No stores configured.")
				return nil
			}
			return printStoresTable(os.Stdout, stores)
		},
	}
}

func storesReactivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "reactivate <store_id>",
		Short:   "Reactivate a store and reset its failure count",
		Args:    cobra.ExactArgs(1),
		Example: `  invctl stores reactivate 12`,
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid store id %q: %w", args[0], err)
			}

			c := newClient()
			s, err := c.ReactivateStore(context.Background(), id)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(s)
			}
			fmt.Printf("Store %d (%s) reactivated.\n", s.StoreID, s.StoreName)
			return nil
		},
	}
}

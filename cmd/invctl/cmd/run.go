package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Trigger a scheduled inventory check now",
		Long: "Runs the priority and routine check batches immediately. Fails with a\n" +
			"conflict if a scheduled run is already in progress.",
		Example: `  invctl run`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			sum, err := c.RunInventoryCheck(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(sum)
			}
			fmt.Printf("Checked %d priority and %d routine products: %d available, %d failed.\n",
				sum.Priority, sum.Routine, sum.Available, sum.Failed)
			return nil
		},
	}
}

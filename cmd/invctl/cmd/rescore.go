package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func rescoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rescore <product_id>...",
		Short:   "Recompute purchaseability scores",
		Long:    "Recomputes the purchaseability score for the given products from their check history.",
		Args:    cobra.MinimumNArgs(1),
		Example: `  invctl rescore 101 102 103`,
		RunE: func(_ *cobra.Command, args []string) error {
			ids := make([]int64, 0, len(args))
			for _, a := range args {
				id, err := strconv.ParseInt(a, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid product id %q: %w", a, err)
				}
				ids = append(ids, id)
			}

			c := newClient()
			scored, err := c.Rescore(context.Background(), ids)
			if err != nil {
				return err
			}

			fmt.Printf("Rescored %d products.\n", scored)
			return nil
		},
	}
}

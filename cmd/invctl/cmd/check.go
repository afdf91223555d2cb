package cmd

import (
	"context"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/inventory-tracker/internal/api/client"
)

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <uuid>...",
		Short: "Run a live availability check",
		Long: "Checks one or more products against their stores right now and records\n" +
			"the result. Up to 20 products may be checked in one call.",
		Args: cobra.RangeArgs(1, 20),
		Example: `  invctl check 6f1c2a9e-0d43-4b8e-9a55-2f6a1c7e8b10
  invctl check UUID1 UUID2 UUID3 --output json`,
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			ctx := context.Background()

			if len(args) == 1 {
				res, err := c.CheckProduct(ctx, args[0])
				if err != nil {
					return err
				}
				if jsonOutput() {
					return outputJSON(res)
				}
				return printChecksTable(os.Stdout, []apiclient.ProductCheck{*res})
			}

			resp, err := c.CheckProducts(ctx, args)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			if err := printChecksTable(os.Stdout, resp.Results); err != nil {
				return err
			}
			fmt.Println()
			if err := printCheckSummary(os.Stdout, &resp.Summary); err != nil {
				return err
			}
			for _, e := range resp.Errors {
				fmt.Fprintln(os.Stderr, "error:", e)
			}
			return nil
		},
	}
}

func stylingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "styling <uuid>...",
		Short: "Check products for a styling recommendation",
		Long: "Checks the products of a styling recommendation and lists available\n" +
			"alternatives for any product that is not purchasable.",
		Args:    cobra.MinimumNArgs(1),
		Example: `  invctl styling UUID1 UUID2 UUID3`,
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			resp, err := c.CheckStyling(context.Background(), args)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}

			if err := printChecksTable(os.Stdout, resp.Results); err != nil {
				return err
			}
			fmt.Printf("\n%d checked, %d available, %d unavailable.\n",
				resp.TotalChecked, resp.AvailableCount, resp.UnavailableCount)

			for _, uuid := range slices.Sorted(maps.Keys(resp.Alternatives)) {
				alts := resp.Alternatives[uuid]
				if len(alts) == 0 {
					continue
				}
				fmt.Printf("\nAlternatives for %s:\n", uuid)
				if err := printAlternativesTable(os.Stdout, alts); err != nil {
					return err
				}
			}
			for _, e := range resp.Errors {
				fmt.Fprintln(os.Stderr, "error:", e)
			}
			return nil
		},
	}
}

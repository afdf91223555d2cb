package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/inventory-tracker/internal/api/client"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "status <uuid>",
		Short:   "Show stored inventory state for a product",
		Long:    "Shows the last recorded inventory state without contacting the store.",
		Args:    cobra.ExactArgs(1),
		Example: `  invctl status 6f1c2a9e-0d43-4b8e-9a55-2f6a1c7e8b10`,
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			st, err := c.GetInventoryStatus(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(st)
			}
			return printStatusDetail(os.Stdout, st)
		},
	}
}

func scoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <uuid>",
		Short: "Show the purchaseability score for a product",
		Args:  cobra.ExactArgs(1),
		Example: `  invctl score 6f1c2a9e-0d43-4b8e-9a55-2f6a1c7e8b10
  invctl score 6f1c2a9e-0d43-4b8e-9a55-2f6a1c7e8b10 --output json`,
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			s, err := c.GetScore(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(s)
			}
			return printScoreDetail(os.Stdout, s)
		},
	}
}

func alternativesCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "alternatives <uuid>",
		Aliases: []string{"alts"},
		Short:   "Find available substitutes for a product",
		Long: "Lists available products in the same category within 30% of the\n" +
			"product's price, ordered by purchaseability score.",
		Args:    cobra.ExactArgs(1),
		Example: `  invctl alternatives 6f1c2a9e-0d43-4b8e-9a55-2f6a1c7e8b10 --limit 10`,
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			resp, err := c.GetAlternatives(context.Background(), args[0], limit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			o := resp.OriginalProduct
			fmt.Printf("%s (%s) $%.2f\n\n", o.Name, o.BrandName, o.CurrentPrice)
			if resp.TotalFound == 0 {
				fmt.Println("No alternatives found.")
				return nil
			}
			return printAlternativesTable(os.Stdout, resp.Alternatives)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 5, "maximum alternatives to return (1-20)")

	return cmd
}

func logsCmd() *cobra.Command {
	var params apiclient.CheckLogsParams

	cmd := &cobra.Command{
		Use:   "logs <uuid>",
		Short: "Show the check audit log for a product",
		Args:  cobra.ExactArgs(1),
		Example: `  invctl logs 6f1c2a9e-0d43-4b8e-9a55-2f6a1c7e8b10
  invctl logs 6f1c2a9e-0d43-4b8e-9a55-2f6a1c7e8b10 --status failed --limit 10`,
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			resp, err := c.ListCheckLogs(context.Background(), args[0], &params)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			if len(resp.Logs) == 0 {
				fmt.Println("No checks recorded.")
				return nil
			}
			if err := printCheckLogsTable(os.Stdout, resp.Logs); err != nil {
				return err
			}
			fmt.Printf("\nShowing %d of %d entries.\n", len(resp.Logs), resp.Total)
			return nil
		},
	}

	cmd.Flags().StringVar(&params.Status, "status", "", "filter by status (success, failed, partial, timeout)")
	cmd.Flags().IntVar(&params.Limit, "limit", 50, "maximum entries to return")
	cmd.Flags().IntVar(&params.Offset, "offset", 0, "entries to skip")

	return cmd
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "stats",
		Short:   "Show inventory statistics",
		Example: `  invctl stats`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			st, err := c.GetStatistics(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(st)
			}
			return printStats(os.Stdout, st)
		},
	}
}

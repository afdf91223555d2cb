package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	apiclient "github.com/donaldgifford/inventory-tracker/internal/api/client"
	domain "github.com/donaldgifford/inventory-tracker/pkg/types"
)

const timeLayout = "2006-01-02 15:04:05"

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printChecksTable(w io.Writer, checks []apiclient.ProductCheck) error {
	tw := newTabWriter(w)
	tw.writef("UUID\tPRODUCT\tSTORE\tSTOCK\tAVAILABLE\tPRICE\tMS\tERROR\n")
	for i := range checks {
		c := &checks[i]
		tw.writef("%s\t%s\t%s\t%s\t%v\t%s\t%d\t%s\n",
			c.ProductUUID,
			truncate(c.ProductName, 32),
			c.StoreName,
			c.StockStatus,
			c.IsAvailable,
			money(c.CurrentPrice),
			c.ResponseTimeMs,
			truncate(c.ErrorMessage, 40),
		)
	}
	return tw.finish()
}

func printCheckSummary(w io.Writer, s *apiclient.CheckSummary) error {
	tw := newTabWriter(w)
	tw.writef("Checked:\t%d\n", s.TotalChecked)
	tw.writef("Available:\t%d\n", s.AvailableCount)
	tw.writef("Unavailable:\t%d\n", s.UnavailableCount)
	tw.writef("Availability:\t%.1f%%\n", s.AvailabilityRate)
	return tw.finish()
}

func printAlternativesTable(w io.Writer, alts []domain.AlternativeProduct) error {
	tw := newTabWriter(w)
	tw.writef("UUID\tNAME\tBRAND\tPRICE\tSCORE\n")
	for i := range alts {
		a := &alts[i]
		tw.writef("%s\t%s\t%s\t$%.2f\t%d\n",
			a.UUID,
			truncate(a.Name, 40),
			a.BrandName,
			a.CurrentPrice,
			a.PurchaseabilityScore,
		)
	}
	return tw.finish()
}

func printStatusDetail(w io.Writer, s *apiclient.InventoryStatus) error {
	tw := newTabWriter(w)
	tw.writef("UUID:\t%s\n", s.ProductUUID)
	tw.writef("Product:\t%s\n", s.ProductName)
	tw.writef("Store:\t%s\n", s.StoreName)
	tw.writef("Stock:\t%s\n", s.StockStatus)
	tw.writef("Available:\t%v\n", s.IsAvailable)
	if s.StockQuantity != nil {
		tw.writef("Quantity:\t%d\n", *s.StockQuantity)
	}
	tw.writef("Price:\t%s\n", money(s.CurrentPrice))
	tw.writef("Price Changed:\t%v\n", s.PriceChanged)
	tw.writef("Last Checked:\t%s\n", timestamp(s.LastChecked))
	tw.writef("Unavailable Streak:\t%d\n", s.ConsecutiveUnavailableCount)
	switch {
	case s.NeedsUrgentCheck:
		tw.writef("Next Check:\turgent\n")
	case s.NeedsCheck:
		tw.writef("Next Check:\tdue\n")
	default:
		tw.writef("Next Check:\tnot due\n")
	}
	return tw.finish()
}

func printScoreDetail(w io.Writer, s *apiclient.Score) error {
	tw := newTabWriter(w)
	tw.writef("UUID:\t%s\n", s.ProductUUID)
	tw.writef("Overall:\t%d/100\n", s.OverallScore)
	tw.writef("Availability:\t%d\n", s.AvailabilityScore)
	tw.writef("Reliability:\t%d\n", s.ReliabilityScore)
	tw.writef("Price Stability:\t%d\n", s.PriceStabilityScore)
	tw.writef("Delivery:\t%d\n", s.DeliveryScore)
	tw.writef("Confidence:\t%.2f\n", s.ConfidenceLevel)
	tw.writef("Highly Purchasable:\t%v\n", s.IsHighlyPurchasable)
	tw.writef("Styling Pick:\t%v\n", s.IsRecommendedForStyling)
	if !s.LastCalculatedAt.IsZero() {
		tw.writef("Calculated:\t%s\n", s.LastCalculatedAt.Format(timeLayout))
	}
	return tw.finish()
}

func printCheckLogsTable(w io.Writer, logs []domain.InventoryCheckLog) error {
	tw := newTabWriter(w)
	tw.writef("CHECKED\tTYPE\tSTATUS\tFROM\tTO\tCHANGED\tERROR\n")
	for i := range logs {
		l := &logs[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%v\t%s\n",
			l.CheckedAt.Format(timeLayout),
			l.CheckType,
			l.Status,
			l.PreviousStockStatus,
			l.NewStockStatus,
			l.AvailabilityChanged,
			truncate(l.ErrorMessage, 40),
		)
	}
	return tw.finish()
}

func printStoresTable(w io.Writer, stores []domain.StoreAPIConfig) error {
	tw := newTabWriter(w)
	tw.writef("ID\tNAME\tTYPE\tACTIVE\tFAILURES\tLAST SUCCESS\n")
	for i := range stores {
		s := &stores[i]
		tw.writef("%d\t%s\t%s\t%v\t%d\t%s\n",
			s.StoreID,
			s.StoreName,
			s.APIType,
			s.IsActive,
			s.ConsecutiveFailures,
			timestamp(s.LastSuccessfulCheck),
		)
	}
	return tw.finish()
}

func printStats(w io.Writer, st *domain.InventoryStats) error {
	tw := newTabWriter(w)
	o := st.Overview
	tw.writef("Products:\t%d\n", o.TotalProducts)
	tw.writef("In Stock:\t%d\n", o.InStock)
	tw.writef("Low Stock:\t%d\n", o.LowStock)
	tw.writef("Out of Stock:\t%d\n", o.OutOfStock)
	tw.writef("Unknown:\t%d\n", o.Unknown)
	tw.writef("Purchasable:\t%d\n", o.Purchasable)
	tw.writef("Checked (24h):\t%d\n", o.RecentlyChecked)
	tw.writef("Avg Score:\t%.1f\n", st.Scores.AverageOverallScore)
	tw.writef("High Scores:\t%d\n", st.Scores.HighScoreProducts)
	a := st.RecentActivity
	tw.writef("Checks (24h):\t%d (%d ok, %d failed, %.1f%%)\n",
		a.TotalChecks, a.SuccessfulChecks, a.FailedChecks, a.SuccessRate)
	tw.writef("Avg Response:\t%.0fms\n", a.AverageResponseTimeMs)
	if err := tw.finish(); err != nil {
		return err
	}
	if len(st.Stores) == 0 {
		return nil
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	tw = newTabWriter(w)
	tw.writef("STORE\tACTIVE\tFAILURES\tPRODUCTS\tAVAILABLE\n")
	for i := range st.Stores {
		s := &st.Stores[i]
		tw.writef("%s\t%v\t%d\t%d\t%d\n",
			s.Name, s.IsActive, s.ConsecutiveFailures, s.ProductCount, s.AvailableCount)
	}
	return tw.finish()
}

func printJobRunsTable(w io.Writer, runs []domain.JobRun) error {
	tw := newTabWriter(w)
	tw.writef("JOB\tSTATUS\tSTARTED\tCOMPLETED\tROWS\tERROR\n")
	for i := range runs {
		r := &runs[i]
		rows := "-"
		if r.RowsAffected != nil {
			rows = fmt.Sprintf("%d", *r.RowsAffected)
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			r.JobName,
			r.Status,
			r.StartedAt.Format(timeLayout),
			timestamp(r.CompletedAt),
			rows,
			truncate(r.ErrorText, 40),
		)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func money(p *float64) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("$%.2f", *p)
}

func timestamp(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(timeLayout)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// LastRun returns a stat panel showing time since the last completed
// scheduled inventory check.
func LastRun() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Last Run").
		Description("Time since the last completed scheduled inventory check").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`time() - invt_scheduler_last_run_timestamp{job="inventory-tracker"}`,
			"", "A",
		)).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(5400, 10800)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// NextRun returns a stat panel showing time until the next scheduled check.
func NextRun() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Next Run").
		Description("Time until the next scheduled inventory check").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`invt_scheduler_next_run_timestamp{job="inventory-tracker"} - time()`,
			"", "A",
		)).
		Unit("s").
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// LockContention returns a stat panel showing product lock waits in the
// past hour.
func LockContention() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Lock Waits (1h)").
		Description("Product checks that waited on another replica's lock").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`sum(increase(invt_lock_contention_total{job="inventory-tracker"}[1h]))`,
			"", "A",
		)).
		Thresholds(ThresholdsGreenYellowRed(10, 100)).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeArea)
}

// BatchSize returns a stat panel showing products selected for the last
// hour's batches.
func BatchSize() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Selected (1h)").
		Description("Products selected for scheduled checks in the last hour").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`sum(increase(invt_batch_products_total{job="inventory-tracker",tier="priority"}[1h]))`,
			"priority", "A",
		)).
		WithTarget(PromQuery(
			`sum(increase(invt_batch_products_total{job="inventory-tracker",tier="routine"}[1h]))`,
			"routine", "B",
		)).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		GraphMode(common.BigValueGraphModeNone)
}

// BatchDuration returns a timeseries panel showing p50 and p95 check batch
// durations.
func BatchDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Batch Duration").
		Description("Check batch duration percentiles").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(FullWidth).
		WithTarget(PromQuery(Quantile(0.5, "invt_batch_duration_seconds"), "p50", "A")).
		WithTarget(PromQuery(Quantile(0.95, "invt_batch_duration_seconds"), "p95", "B")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

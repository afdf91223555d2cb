package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// StoreFailureStreaks returns a timeseries panel showing each store's
// consecutive failure count against the breaker threshold.
func StoreFailureStreaks() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Store Failure Streaks").
		Description(fmt.Sprintf("Consecutive check failures per store (deactivated at %d)", BreakerThreshold)).
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`max by (store) (invt_store_consecutive_failures{job="inventory-tracker"})`,
			"store {{store}}", "A",
		)).
		Min(0).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("last", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenYellowRed(float64(BreakerThreshold)/2, float64(BreakerThreshold))).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// StoreDeactivations returns a stat panel showing breaker trips in the past
// 24 hours.
func StoreDeactivations() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Deactivations (24h)").
		Description("Stores deactivated by the failure breaker in the last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`sum(increase(invt_store_deactivations_total{job="inventory-tracker"}[24h]))`,
			"", "A",
		)).
		Thresholds(ThresholdsGreenYellowRed(1, 3)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

// StoreThrottled returns a stat panel showing checks refused by per-store
// daily budgets in the past 24 hours.
func StoreThrottled() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Throttled (24h)").
		Description("Checks refused by store daily request limits").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`sum(increase(invt_store_throttled_total{job="inventory-tracker"}[24h]))`,
			"", "A",
		)).
		Thresholds(ThresholdsGreenYellowRed(1, 100)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

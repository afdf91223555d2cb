package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// CheckRate returns a timeseries panel showing availability checks per
// minute split by outcome.
func CheckRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Checks / min").
		Description("Availability checks per minute by status").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`invt:checks:rate5m * 60`, "{{status}}", "A")).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// CheckLatency returns a timeseries panel showing p95 external check latency
// per API type.
func CheckLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Check Latency (p95)").
		Description("95th percentile store request duration by API type").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			Quantile(0.95, "invt_check_duration_seconds", "api_type"),
			"{{api_type}}", "A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenYellowRed(5, 20)).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// CheckErrors returns a timeseries panel showing failed checks per minute
// by error kind.
func CheckErrors() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Check Errors / min").
		Description("Failed checks per minute by error kind (config, transport, parse, validation)").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`invt:check_errors:rate5m * 60`, "{{kind}}", "A")).
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// AvailabilityTransitions returns a timeseries panel showing restock and
// sell-out flips.
func AvailabilityTransitions() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Availability Transitions").
		Description("Products flipping between purchasable and not, per hour").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`invt:availability_transitions:rate5m * 3600`, "{{direction}}", "A")).
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleBars)
}

// PriceChanges returns a timeseries panel showing observed price changes
// per hour.
func PriceChanges() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Price Changes / hour").
		Description("Price moves above the change threshold").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum(rate(invt_price_changes_total{job="inventory-tracker"}[5m])) * 3600`,
			"changes/h", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// AlternativesServed returns a timeseries panel showing how many substitute
// products are being returned.
func AlternativesServed() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Alternatives Served / hour").
		Description("Substitute products returned by alternative lookups").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum(rate(invt_alternatives_served_total{job="inventory-tracker"}[5m])) * 3600`,
			"alternatives/h", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

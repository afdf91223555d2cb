package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
)

// ScoreDistribution returns a bar gauge panel showing the distribution of
// computed purchaseability scores across histogram buckets.
func ScoreDistribution() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Score Distribution").
		Description("Distribution of overall purchaseability scores (0-100)").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(FullWidth).
		WithTarget(PromQuery(
			`sum(increase(invt_purchaseability_score_distribution_bucket{job="inventory-tracker"}[1h])) by (le)`,
			"{{le}}", "A",
		)).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

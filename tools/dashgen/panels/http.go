package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// LiveCheckRoutes matches the API routes that run availability checks
// synchronously, as echo renders their path label.
const LiveCheckRoutes = `/api/v1/(products/:uuid/inventory/check|inventory/check|inventory/styling-check)`

// RequestsByRoute returns a timeseries panel of API request rate per route
// template. Requests that matched no route are left to UnmatchedRequests.
func RequestsByRoute() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Requests by Route").
		Description("API requests per second by route template").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(`sum by (path) (rate(invt_http_requests_total{job="%s", path!="unmatched"}[5m]))`, Job),
			"{{path}}", "A",
		)).
		WithTarget(PromQuery(`invt:http_requests:rate5m`, "total", "B")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// LiveCheckLatency returns a timeseries panel of p50 and p95 latency for the
// endpoints that call out to stores while the client waits.
func LiveCheckLatency() *timeseries.PanelBuilder {
	q := func(quantile float64) string {
		return fmt.Sprintf(
			`histogram_quantile(%g, sum(rate(invt_http_request_duration_seconds_bucket{job="%s", path=~"%s"}[5m])) by (le, path))`,
			quantile, Job, LiveCheckRoutes,
		)
	}
	return timeseries.NewPanelBuilder().
		Title("Live Check Latency").
		Description("Latency of the synchronous check endpoints, which include store response time").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(q(0.5), "p50 {{path}}", "A")).
		WithTarget(PromQuery(q(0.95), "p95 {{path}}", "B")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenYellowRed(10, 30)).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ErrorRate returns a timeseries panel showing the HTTP 5xx error rate
// as a percentage.
func ErrorRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Error Rate %").
		Description("HTTP 5xx error rate as percentage of total requests").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`invt:http_errors:rate5m / invt:http_requests:rate5m * 100`,
			"error %", "A",
		)).
		Unit("percent").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// UnmatchedRequests returns a timeseries panel of requests that hit no
// registered route, typically scanners or a client on an old API path.
func UnmatchedRequests() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Unmatched Requests").
		Description("Requests per second that matched no API route").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(`sum by (method) (rate(invt_http_requests_total{job="%s", path="unmatched"}[5m]))`, Job),
			"{{method}}", "A",
		)).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

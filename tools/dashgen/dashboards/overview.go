// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/inventory-tracker/tools/dashgen/panels"
)

// BuildOverview constructs the inventory tracker overview dashboard with all
// metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Inventory Tracker Overview").
		Uid("invt-overview").
		Tags([]string{"invt", "inventory-tracker"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.ActiveStoresStat()).
		WithPanel(panels.UptimeStat()))

	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestsByRoute()).
		WithPanel(panels.LiveCheckLatency()).
		WithPanel(panels.ErrorRate()).
		WithPanel(panels.UnmatchedRequests()))

	b.WithRow(dashboard.NewRowBuilder("Checks").
		WithPanel(panels.CheckRate()).
		WithPanel(panels.CheckLatency()).
		WithPanel(panels.CheckErrors()))

	b.WithRow(dashboard.NewRowBuilder("Stores").
		WithPanel(panels.StoreFailureStreaks()).
		WithPanel(panels.StoreDeactivations()).
		WithPanel(panels.StoreThrottled()))

	b.WithRow(dashboard.NewRowBuilder("Inventory").
		WithPanel(panels.AvailabilityTransitions()).
		WithPanel(panels.PriceChanges()).
		WithPanel(panels.AlternativesServed()))

	b.WithRow(dashboard.NewRowBuilder("Scheduler").
		WithPanel(panels.LastRun()).
		WithPanel(panels.NextRun()).
		WithPanel(panels.LockContention()).
		WithPanel(panels.BatchSize()).
		WithPanel(panels.BatchDuration()))

	b.WithRow(dashboard.NewRowBuilder("Scoring").
		WithPanel(panels.ScoreDistribution()))

	b.WithRow(dashboard.NewRowBuilder("Notifications").
		WithPanel(panels.NotificationsRate()).
		WithPanel(panels.NotificationLatency()).
		WithPanel(panels.NotificationFailures()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}

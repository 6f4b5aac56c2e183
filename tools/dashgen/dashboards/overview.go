// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/mercado-search/tools/dashgen/panels"
)

// BuildOverview constructs the mercado-search overview dashboard.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Mercado Search Overview").
		Uid("mercado-search-overview").
		Tags([]string{"mercado-search", "mercadolibre"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.QuotaGauge()).
		WithPanel(panels.UptimeStat()))

	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	b.WithRow(dashboard.NewRowBuilder("MercadoLibre API").
		WithPanel(panels.APICallsRate()).
		WithPanel(panels.APILatency()).
		WithPanel(panels.DailyUsage()).
		WithPanel(panels.LimitHits()))

	b.WithRow(dashboard.NewRowBuilder("Search").
		WithPanel(panels.SearchesRate()).
		WithPanel(panels.LoadMoreRate()).
		WithPanel(panels.StaleResponses()).
		WithPanel(panels.DetailFetches()))

	b.WithRow(dashboard.NewRowBuilder("Favorites").
		WithPanel(panels.RefreshDuration()).
		WithPanel(panels.FavoritesRefreshed()).
		WithPanel(panels.PriceChanges()).
		WithPanel(panels.RefreshErrors()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}

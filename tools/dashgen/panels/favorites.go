package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// RefreshDuration returns a timeseries panel of favorites refresh cycle
// duration percentiles.
func RefreshDuration() *timeseries.PanelBuilder {
	const h = "mercadosearch_favorites_refresh_duration_seconds"
	return timeseries.NewPanelBuilder().
		Title("Refresh Duration").
		Description("Favorites refresh cycle duration").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(Quantile(0.50, h), "p50", "A")).
		WithTarget(PromQuery(Quantile(0.95, h), "p95", "B")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// FavoritesRefreshed returns a stat panel of favorites updated in the past
// 24 hours.
func FavoritesRefreshed() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Refreshed (24h)").
		Description("Favorites re-fetched and updated in the last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(4).
		WithTarget(PromQuery(Increase24h("mercadosearch_favorites_refreshed_total"), "", "A")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeArea)
}

// PriceChanges returns a stat panel of favorite price changes observed in
// the past 24 hours.
func PriceChanges() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Price Changes (24h)").
		Description("Favorites whose price changed on refresh").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(4).
		WithTarget(PromQuery(Increase24h("mercadosearch_favorites_price_changes_total"), "", "A")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeArea)
}

// RefreshErrors returns a stat panel of favorite refresh failures in the
// past 24 hours.
func RefreshErrors() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Refresh Errors (24h)").
		Description("Favorites that failed to refresh in the last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(4).
		WithTarget(PromQuery(Increase24h("mercadosearch_favorites_refresh_errors_total"), "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

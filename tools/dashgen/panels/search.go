package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// SearchesRate returns a timeseries panel of fresh searches by outcome.
func SearchesRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Searches").
		Description("Fresh searches per second by outcome").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(6).
		WithTarget(PromQuery(Rate("mercadosearch_searches_total", "outcome"), "{{outcome}}", "A")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// LoadMoreRate returns a timeseries panel comparing appended pages with
// silently dropped load-more failures.
func LoadMoreRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Load More").
		Description("Pages appended and failed load-more fetches per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(6).
		WithTarget(PromQuery(Rate("mercadosearch_load_more_pages_total"), "pages/s", "A")).
		WithTarget(PromQuery(`mercadosearch:load_more_failures:rate5m`, "failures/s", "B")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// StaleResponses returns a stat panel of search responses discarded in the
// past 24 hours because a newer search replaced them.
func StaleResponses() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Stale Responses (24h)").
		Description("Search responses discarded after being superseded").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(Increase24h("mercadosearch_stale_responses_total"), "", "A")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeArea)
}

// DetailFetches returns a timeseries panel of product detail fetches by
// outcome.
func DetailFetches() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Detail Fetches").
		Description("Product detail fetches per second by outcome").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(6).
		WithTarget(PromQuery(Rate("mercadosearch_detail_fetches_total", "outcome"), "{{outcome}}", "A")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

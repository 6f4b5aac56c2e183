package main

import "errors"

// KnownMetrics is the set of metric names exported by mercado-search plus
// the recording rules that dashboards and alerts reference.
var KnownMetrics = map[string]bool{
	"mercadosearch_http_request_duration_seconds": true,
	"mercadosearch_http_requests_total":           true,
	"mercadosearch_http_panics_total":             true,
	"mercadosearch_healthz_up":                    true,
	"mercadosearch_readyz_up":                     true,

	"mercadosearch_meli_api_calls_total":        true,
	"mercadosearch_meli_api_duration_seconds":   true,
	"mercadosearch_meli_daily_usage":            true,
	"mercadosearch_meli_daily_limit_hits_total": true,

	"mercadosearch_searches_total":           true,
	"mercadosearch_load_more_pages_total":    true,
	"mercadosearch_load_more_failures_total": true,
	"mercadosearch_stale_responses_total":    true,
	"mercadosearch_detail_fetches_total":     true,

	"mercadosearch_favorites_refreshed_total":          true,
	"mercadosearch_favorites_refresh_errors_total":     true,
	"mercadosearch_favorites_refresh_duration_seconds": true,
	"mercadosearch_favorites_price_changes_total":      true,
	"mercadosearch_notification_duration_seconds":      true,
	"mercadosearch_notification_failures_total":        true,

	// Recording rules.
	"mercadosearch:http_requests:rate5m":      true,
	"mercadosearch:http_errors:rate5m":        true,
	"mercadosearch:meli_api_calls:rate5m":     true,
	"mercadosearch:meli_api_errors:rate5m":    true,
	"mercadosearch:searches:rate5m":           true,
	"mercadosearch:load_more_failures:rate5m": true,

	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into
// ../../deploy (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}

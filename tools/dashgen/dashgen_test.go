package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/prometheus/promql/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/mercado-search/tools/dashgen/dashboards"
	"github.com/donaldgifford/mercado-search/tools/dashgen/rules"
	"github.com/donaldgifford/mercado-search/tools/dashgen/validate"
)

func TestDefaultConfigValid(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate_EmptyOutputDir(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "", DashboardEnabled: true}
	assert.Error(t, cfg.Validate())
}

func TestConfigValidate_NothingEnabled(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "/tmp", DashboardEnabled: false, RulesEnabled: false}
	assert.Error(t, cfg.Validate())
}

func TestBuildOverviewDashboard(t *testing.T) {
	t.Parallel()

	dash, err := dashboards.BuildOverview().Build()
	require.NoError(t, err)

	require.NotNil(t, dash.Uid)
	assert.Equal(t, "mercado-search-overview", *dash.Uid)

	require.NotNil(t, dash.Title)
	assert.Equal(t, "Mercado Search Overview", *dash.Title)

	require.NotNil(t, dash.Templating)
	assert.Len(t, dash.Templating.List, 1)
	assert.Equal(t, "datasource", dash.Templating.List[0].Name)

	assert.Len(t, dash.Panels, 5)

	totalPanels := 0
	for _, p := range dash.Panels {
		if p.RowPanel != nil {
			totalPanels += len(p.RowPanel.Panels)
		}
	}
	assert.Equal(t, 19, totalPanels)

	result := validate.Dashboard(dash, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings, "unexpected warnings: %v", result.Warnings)
}

func TestRecordingRules(t *testing.T) {
	t.Parallel()

	cr := rules.RecordingRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "mercado-search-recording-rules", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "mercado-search-recording", group.Name)

	expectedRecords := []string{
		"mercadosearch:http_requests:rate5m",
		"mercadosearch:http_errors:rate5m",
		"mercadosearch:meli_api_calls:rate5m",
		"mercadosearch:meli_api_errors:rate5m",
		"mercadosearch:searches:rate5m",
		"mercadosearch:load_more_failures:rate5m",
	}
	require.Len(t, group.Rules, len(expectedRecords))
	for i, rule := range group.Rules {
		assert.Equal(t, expectedRecords[i], rule.Record)
		assert.NotEmpty(t, rule.Expr)
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)

	data, err := yaml.Marshal(cr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "apiVersion: monitoring.coreos.com/v1")

	data, err = yaml.Marshal(cr.File())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "apiVersion")
	assert.Contains(t, string(data), "record: mercadosearch:http_requests:rate5m")
}

func TestAlertRules(t *testing.T) {
	t.Parallel()

	cr := rules.AlertRules()
	assert.Equal(t, "mercado-search-alerts", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "mercado-search-alerts", group.Name)

	expectedAlerts := []string{
		"MercadoSearchDown",
		"MercadoSearchReadinessDown",
		"MercadoSearchHighErrorRate",
		"MercadoSearchMeliErrors",
		"MercadoSearchSearchFailures",
		"MercadoSearchLoadMoreFailures",
		"MercadoSearchQuotaHigh",
		"MercadoSearchLimitReached",
		"MercadoSearchRefreshErrors",
		"MercadoSearchNotificationFailures",
	}
	require.Len(t, group.Rules, len(expectedAlerts))
	for i, rule := range group.Rules {
		assert.Equal(t, expectedAlerts[i], rule.Alert)
		assert.NotEmpty(t, rule.Expr)
		assert.NotEmpty(t, rule.Labels["severity"], "alert %s missing severity", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["summary"], "alert %s missing summary", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["description"], "alert %s missing description", rule.Alert)
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
}

func TestValidateRules_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rule    rules.Rule
		wantErr string
	}{
		{
			name:    "syntax error",
			rule:    rules.Rule{Alert: "Broken", Expr: `sum(rate(mercadosearch_searches_total[5m])`},
			wantErr: "invalid PromQL",
		},
		{
			name:    "unknown metric",
			rule:    rules.Rule{Alert: "Typo", Expr: `mercadosearch_serches_total > 0`},
			wantErr: `unknown metric "mercadosearch_serches_total"`,
		},
		{
			name:    "histogram suffix accepted only for known base",
			rule:    rules.Rule{Alert: "Hist", Expr: `rate(mercadosearch_bogus_seconds_bucket[5m]) > 0`},
			wantErr: "unknown metric",
		},
		{
			name:    "unlisted recording rule",
			rule:    rules.Rule{Record: "mercadosearch:bogus:rate5m", Expr: `up`},
			wantErr: "not listed as a known metric",
		},
		{
			name:    "invalid for duration",
			rule:    rules.Rule{Alert: "Slow", Expr: `up == 0`, For: "five minutes"},
			wantErr: "invalid for duration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cr := rules.PrometheusRule{Spec: rules.PrometheusRuleSpec{
				Groups: []rules.RuleGroup{{Name: "g", Rules: []rules.Rule{tt.rule}}},
			}}
			result := validate.Rules(cr, KnownMetrics)
			require.False(t, result.Ok())
			assert.Contains(t, result.Errors[0], tt.wantErr)
		})
	}
}

func TestMetricNames(t *testing.T) {
	t.Parallel()

	node, err := parser.ParseExpr(
		`histogram_quantile(0.95, sum(rate(mercadosearch_http_request_duration_seconds_bucket[5m])) by (le)) / on() up`,
	)
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"mercadosearch_http_request_duration_seconds_bucket", "up"},
		validate.MetricNames(node),
	)
}

func TestRun_WritesArtifacts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := Config{OutputDir: dir, DashboardEnabled: true, RulesEnabled: true}

	var out bytes.Buffer
	require.NoError(t, run(&out, cfg, false))

	dashPath := filepath.Join(dir, "grafana", "data", "mercado-search-overview.json")
	raw, err := os.ReadFile(dashPath)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "mercado-search-overview", decoded["uid"])

	for _, name := range []string{"mercado-search-recording-rules.yaml", "mercado-search-alerts.yaml"} {
		raw, err := os.ReadFile(filepath.Join(dir, "prometheus", name))
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(raw, []byte(generatedHeader)), "%s missing header", name)
	}

	assert.Contains(t, out.String(), "wrote "+dashPath)
}

func TestRun_ValidateOnly(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "out")
	cfg := Config{OutputDir: dir, RulesEnabled: true}

	var out bytes.Buffer
	require.NoError(t, run(&out, cfg, true))
	assert.Equal(t, "validation passed\n", out.String())

	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "validate-only must not write files")
}

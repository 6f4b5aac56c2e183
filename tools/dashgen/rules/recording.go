package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata:   metadata("mercado-search-recording-rules"),
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "mercado-search-recording",
					Rules: []Rule{
						{
							Record: "mercadosearch:http_requests:rate5m",
							Expr:   `sum(rate(mercadosearch_http_requests_total[5m]))`,
						},
						{
							Record: "mercadosearch:http_errors:rate5m",
							Expr:   `sum(rate(mercadosearch_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "mercadosearch:meli_api_calls:rate5m",
							Expr:   `sum(rate(mercadosearch_meli_api_calls_total[5m]))`,
						},
						{
							Record: "mercadosearch:meli_api_errors:rate5m",
							Expr:   `sum(rate(mercadosearch_meli_api_calls_total{status!~"2.."}[5m]))`,
						},
						{
							Record: "mercadosearch:searches:rate5m",
							Expr:   `sum by (outcome) (rate(mercadosearch_searches_total[5m]))`,
						},
						{
							Record: "mercadosearch:load_more_failures:rate5m",
							Expr:   `sum(rate(mercadosearch_load_more_failures_total[5m]))`,
						},
					},
				},
			},
		},
	}
}

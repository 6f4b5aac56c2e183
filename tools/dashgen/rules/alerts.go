package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// mercado-search operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata:   metadata("mercado-search-alerts"),
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "mercado-search-alerts",
					Rules: []Rule{
						alert("MercadoSearchDown", `absent(up{job="mercado-search"})`, "2m", "critical",
							"mercado-search is down",
							"The mercado-search job has been absent for more than 2 minutes."),
						alert("MercadoSearchReadinessDown", `mercadosearch_readyz_up == 0`, "2m", "critical",
							"mercado-search readiness check is failing",
							"The readiness probe cannot reach Postgres. Favorites endpoints are failing."),
						alert("MercadoSearchHighErrorRate",
							`mercadosearch:http_errors:rate5m / mercadosearch:http_requests:rate5m > 0.05`, "5m", "warning",
							"High HTTP error rate on mercado-search",
							"More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes."),
						alert("MercadoSearchMeliErrors",
							`mercadosearch:meli_api_errors:rate5m / mercadosearch:meli_api_calls:rate5m > 0.2`, "10m", "warning",
							"MercadoLibre API calls are failing",
							"More than 20% of MercadoLibre API calls returned an error for 10 minutes."),
						alert("MercadoSearchSearchFailures",
							`mercadosearch:searches:rate5m{outcome="error"} > 0.1`, "5m", "warning",
							"Searches are failing",
							"Fresh searches have been failing at more than 0.1/s for the last 5 minutes."),
						alert("MercadoSearchLoadMoreFailures", `mercadosearch:load_more_failures:rate5m > 0.05`, "10m", "info",
							"Load-more pages are being dropped",
							"Load-more failures are not shown to users. Result lists may be truncated."),
						alert("MercadoSearchQuotaHigh", `mercadosearch_meli_daily_usage > 40000`, "5m", "warning",
							"MercadoLibre daily usage is above 80% of the budget",
							"Rolling 24h usage has exceeded 40000 calls (budget is 50000)."),
						alert("MercadoSearchLimitReached",
							`increase(mercadosearch_meli_daily_limit_hits_total[5m]) > 0`, "0m", "critical",
							"MercadoLibre daily budget has been reached",
							"API calls are being refused until the rolling window frees up."),
						alert("MercadoSearchRefreshErrors",
							`increase(mercadosearch_favorites_refresh_errors_total[1h]) > 10`, "0m", "warning",
							"Favorites refresh is failing",
							"More than 10 favorites failed to refresh in the last hour."),
						alert("MercadoSearchNotificationFailures",
							`increase(mercadosearch_notification_failures_total[5m]) > 0`, "1m", "warning",
							"Price change notifications are failing",
							"One or more Discord webhook deliveries have failed."),
					},
				},
			},
		},
	}
}

func alert(name, expr, forDur, severity, summary, description string) Rule {
	return Rule{
		Alert: name,
		Expr:  expr,
		For:   forDur,
		Labels: map[string]string{
			"severity": severity,
		},
		Annotations: map[string]string{
			"summary":     summary,
			"description": description,
		},
	}
}

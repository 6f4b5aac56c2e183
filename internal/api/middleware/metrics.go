// Package middleware provides Echo middleware for mercado-search.
package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/mercado-search/internal/metrics"
)

// unmatchedRoute labels requests that matched no registered route, so that
// arbitrary URLs cannot create new label values.
const unmatchedRoute = "unmatched"

// probePaths are excluded from request metrics. The health handlers keep
// their own up/down gauges.
var probePaths = map[string]struct{}{
	"/metrics": {},
	"/healthz": {},
	"/readyz":  {},
}

// Metrics returns Echo middleware that records request duration and status
// labelled by route template, so /api/v1/items/MLA1 and /api/v1/items/MLA2
// share a series.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, skip := probePaths[c.Request().URL.Path]; skip {
				return next(c)
			}

			start := time.Now()

			err := next(c)
			if err != nil {
				// Let the error handler write the response so the
				// recorded status matches what the client sees.
				c.Error(err)
				err = nil
			}

			route := c.Path()
			if route == "" {
				route = unmatchedRoute
			}
			status := strconv.Itoa(c.Response().Status)
			method := c.Request().Method

			metrics.HTTPRequestDuration.
				WithLabelValues(method, route, status).
				Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.
				WithLabelValues(method, route, status).
				Inc()

			return err
		}
	}
}

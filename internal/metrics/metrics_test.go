package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HTTPPanicsTotal)
	assert.NotNil(t, HealthzUp)
	assert.NotNil(t, ReadyzUp)
	assert.NotNil(t, MeliAPICallsTotal)
	assert.NotNil(t, MeliAPIDuration)
	assert.NotNil(t, MeliDailyUsage)
	assert.NotNil(t, MeliDailyLimitHits)
	assert.NotNil(t, SearchesTotal)
	assert.NotNil(t, LoadMorePagesTotal)
	assert.NotNil(t, LoadMoreFailuresTotal)
	assert.NotNil(t, StaleResponsesTotal)
	assert.NotNil(t, DetailFetchesTotal)
	assert.NotNil(t, FavoritesRefreshedTotal)
	assert.NotNil(t, FavoritesRefreshErrorsTotal)
	assert.NotNil(t, FavoritesRefreshDuration)
	assert.NotNil(t, FavoritesPriceChangesTotal)
	assert.NotNil(t, NotificationDuration)
	assert.NotNil(t, NotificationFailuresTotal)
}

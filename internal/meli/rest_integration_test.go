//go:build integration

package meli_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/mercado-search/internal/meli"
)

// TestClient_Integration hits the live MercadoLibre API.
// Run with: go test -tags=integration -run TestClient_Integration ./internal/meli/...
//
// Environment variables:
//   - MELI_INTEGRATION: must be set to run at all
//   - MELI_CLIENT_ID, MELI_CLIENT_SECRET: optional app credentials
func TestClient_Integration(t *testing.T) {
	if os.Getenv("MELI_INTEGRATION") == "" {
		t.Skip("MELI_INTEGRATION must be set for integration tests")
	}

	var opts []meli.Option
	if id, secret := os.Getenv("MELI_CLIENT_ID"), os.Getenv("MELI_CLIENT_SECRET"); id != "" && secret != "" {
		opts = append(opts, meli.WithTokenProvider(meli.NewOAuthTokenProvider(id, secret)))
	}
	client := meli.NewClient(opts...)
	ctx := context.Background()

	cats, err := client.Categories(ctx, "MLA")
	require.NoError(t, err)
	require.NotEmpty(t, cats)

	resp, err := client.Search(ctx, meli.SearchRequest{
		SiteID:     "MLA",
		CategoryID: cats[0].ID,
		Query:      "",
		Limit:      3,
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Positive(t, resp.Total)
	require.NotEmpty(t, resp.Items)

	for _, item := range resp.Items {
		assert.NotEmpty(t, item.ID)
		assert.NotEmpty(t, item.Title)
	}

	item, err := client.Item(ctx, resp.Items[0].ID)
	require.NoError(t, err)
	assert.Equal(t, resp.Items[0].ID, item.ID)

	_, err = client.ItemDescription(ctx, item.ID)
	require.NoError(t, err)
}

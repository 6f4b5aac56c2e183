//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/donaldgifford/mercado-search/internal/store"
	domain "github.com/donaldgifford/mercado-search/pkg/types"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("mercado_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr, 4)
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	applied, err := s.Migrate(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, applied)

	return s
}

func testFavorite(id string, price float64) *domain.Favorite {
	return &domain.Favorite{
		ID:        id,
		Title:     "Samsung Galaxy S23 256GB",
		Price:     price,
		Currency:  "ARS",
		Thumbnail: "http://http2.mlstatic.com/D_123-I.jpg",
	}
}

func TestPostgresStore_Ping(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestPostgresStore_MigrateIdempotent(t *testing.T) {
	s := setupPostgres(t)

	applied, err := s.Migrate(context.Background())
	require.NoError(t, err)
	assert.Empty(t, applied)
}

func TestPostgresStore_Favorites(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	f := testFavorite("MLA1", 1500.5)
	require.NoError(t, s.AddFavorite(ctx, f))
	assert.False(t, f.CreatedAt.IsZero())

	got, err := s.GetFavorite(ctx, "MLA1")
	require.NoError(t, err)
	assert.Equal(t, "Samsung Galaxy S23 256GB", got.Title)
	assert.InDelta(t, 1500.5, got.Price, 0.001)

	// Adding again refreshes instead of failing.
	f.Title = "Samsung Galaxy S23 256GB Negro"
	require.NoError(t, s.AddFavorite(ctx, f))
	got, err = s.GetFavorite(ctx, "MLA1")
	require.NoError(t, err)
	assert.Equal(t, "Samsung Galaxy S23 256GB Negro", got.Title)

	require.NoError(t, s.UpdateFavoritePrice(ctx, "MLA1", "Galaxy S23", 1399))
	got, err = s.GetFavorite(ctx, "MLA1")
	require.NoError(t, err)
	assert.InDelta(t, 1399, got.Price, 0.001)
	assert.Equal(t, "Galaxy S23", got.Title)

	require.NoError(t, s.RemoveFavorite(ctx, "MLA1"))
	_, err = s.GetFavorite(ctx, "MLA1")
	require.ErrorIs(t, err, pgx.ErrNoRows)
	require.ErrorIs(t, s.RemoveFavorite(ctx, "MLA1"), pgx.ErrNoRows)
	require.ErrorIs(t, s.UpdateFavoritePrice(ctx, "MLA1", "x", 1), pgx.ErrNoRows)
}

func TestPostgresStore_ListFavorites(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	require.NoError(t, s.AddFavorite(ctx, testFavorite("MLA1", 100)))
	require.NoError(t, s.AddFavorite(ctx, testFavorite("MLA2", 200)))
	usd := testFavorite("MLA3", 300)
	usd.Currency = "USD"
	usd.Title = "Apple iPhone 15"
	require.NoError(t, s.AddFavorite(ctx, usd))

	all, total, err := s.ListFavorites(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, all, 3)

	cur := "USD"
	onlyUSD, total, err := s.ListFavorites(ctx, &store.FavoriteQuery{Currency: &cur})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "MLA3", onlyUSD[0].ID)

	title := "iphone"
	byTitle, _, err := s.ListFavorites(ctx, &store.FavoriteQuery{Title: &title})
	require.NoError(t, err)
	require.Len(t, byTitle, 1)

	paged, total, err := s.ListFavorites(ctx, &store.FavoriteQuery{OrderBy: "price", Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, paged, 1)
	assert.Equal(t, "MLA2", paged[0].ID)
}

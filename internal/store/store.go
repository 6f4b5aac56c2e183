// Package store defines the datastore abstraction for saved favorites.
// Business logic depends on the Store interface, never on concrete
// implementations, so it can be tested with mocks and no database.
package store

import (
	"context"

	domain "github.com/donaldgifford/mercado-search/pkg/types"
)

// FavoriteQuery defines optional filters for listing favorites.
type FavoriteQuery struct {
	Currency *string
	MinPrice *float64
	MaxPrice *float64
	Title    *string // case-insensitive substring
	Limit    int     // default 50
	Offset   int
	OrderBy  string // "created_at", "price", "title"
}

// Store defines all data access operations for favorites.
type Store interface {
	// AddFavorite inserts f or refreshes an existing row with the same id.
	AddFavorite(ctx context.Context, f *domain.Favorite) error
	// GetFavorite returns pgx.ErrNoRows when id is not saved.
	GetFavorite(ctx context.Context, id string) (*domain.Favorite, error)
	ListFavorites(ctx context.Context, q *FavoriteQuery) ([]domain.Favorite, int, error)
	// RemoveFavorite returns pgx.ErrNoRows when id is not saved.
	RemoveFavorite(ctx context.Context, id string) error
	UpdateFavoritePrice(ctx context.Context, id, title string, price float64) error

	Ping(ctx context.Context) error
}

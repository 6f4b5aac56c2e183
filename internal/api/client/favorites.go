package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/mercado-search/pkg/types"
)

// FavoritesResponse wraps a paginated favorites response.
type FavoritesResponse struct {
	Favorites []domain.Favorite `json:"favorites"`
	Total     int               `json:"total"`
	Limit     int               `json:"limit"`
	Offset    int               `json:"offset"`
}

// ListFavoritesParams defines query parameters for favorite queries.
type ListFavoritesParams struct {
	Currency string
	Title    string
	MinPrice float64
	MaxPrice float64
	Limit    int
	Offset   int
	OrderBy  string
}

// RefreshResult reports a manual favorites refresh.
type RefreshResult struct {
	Checked      int `json:"checked"`
	Updated      int `json:"updated"`
	PriceChanges int `json:"price_changes"`
	Failed       int `json:"failed"`
}

// ListFavorites returns favorites matching the given parameters.
func (c *Client) ListFavorites(
	ctx context.Context,
	params *ListFavoritesParams,
) (*FavoritesResponse, error) {
	q := url.Values{}
	if params.Currency != "" {
		q.Set("currency", params.Currency)
	}
	if params.Title != "" {
		q.Set("title", params.Title)
	}
	if params.MinPrice > 0 {
		q.Set("min_price", strconv.FormatFloat(params.MinPrice, 'f', -1, 64))
	}
	if params.MaxPrice > 0 {
		q.Set("max_price", strconv.FormatFloat(params.MaxPrice, 'f', -1, 64))
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}
	if params.OrderBy != "" {
		q.Set("order_by", params.OrderBy)
	}

	path := "/api/v1/favorites"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp FavoritesResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetFavorite returns a single favorite.
func (c *Client) GetFavorite(ctx context.Context, id string) (*domain.Favorite, error) {
	var f domain.Favorite
	if err := c.get(ctx, "/api/v1/favorites/"+url.PathEscape(id), &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// AddFavorite saves an item by ID and returns the stored favorite.
func (c *Client) AddFavorite(ctx context.Context, id string) (*domain.Favorite, error) {
	var f domain.Favorite
	body := map[string]string{"id": id}
	if err := c.post(ctx, "/api/v1/favorites", body, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// RemoveFavorite deletes a favorite.
func (c *Client) RemoveFavorite(ctx context.Context, id string) error {
	return c.del(ctx, "/api/v1/favorites/"+url.PathEscape(id), nil)
}

// RefreshFavorites re-fetches every favorite on the server.
func (c *Client) RefreshFavorites(ctx context.Context) (*RefreshResult, error) {
	var res RefreshResult
	if err := c.post(ctx, "/api/v1/favorites/refresh", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

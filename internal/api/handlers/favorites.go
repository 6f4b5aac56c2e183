package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/jackc/pgx/v5"

	"github.com/donaldgifford/mercado-search/internal/engine"
	"github.com/donaldgifford/mercado-search/internal/repository"
	"github.com/donaldgifford/mercado-search/internal/store"
	"github.com/donaldgifford/mercado-search/pkg/format"
	domain "github.com/donaldgifford/mercado-search/pkg/types"
)

// Refresher defines the interface for triggering a favorites refresh.
type Refresher interface {
	RunRefresh(ctx context.Context) (*engine.RefreshResult, error)
}

// FavoritesHandler handles saved favorites.
type FavoritesHandler struct {
	store     store.Store
	repo      repository.Repository
	refresher Refresher
}

// NewFavoritesHandler creates a new FavoritesHandler.
func NewFavoritesHandler(s store.Store, repo repository.Repository, r Refresher) *FavoritesHandler {
	return &FavoritesHandler{store: s, repo: repo, refresher: r}
}

// --- Input/Output types ---

// ListFavoritesInput is the input for listing favorites with optional filters.
type ListFavoritesInput struct {
	Currency string  `query:"currency" doc:"Filter by currency code"                example:"ARS"`
	Title    string  `query:"title"    doc:"Case-insensitive title substring"`
	MinPrice float64 `query:"min_price" doc:"Minimum price"                         minimum:"0"`
	MaxPrice float64 `query:"max_price" doc:"Maximum price"                         minimum:"0"`
	Limit    int     `query:"limit"    doc:"Number of results (default 50)"         minimum:"1" maximum:"500"`
	Offset   int     `query:"offset"   doc:"Pagination offset"                      minimum:"0"`
	OrderBy  string  `query:"order_by" doc:"Sort field"                             enum:"created_at,price,title,"`
}

// ListFavoritesOutput is the response for listing favorites.
type ListFavoritesOutput struct {
	Body struct {
		Favorites []domain.Favorite `json:"favorites"`
		Total     int               `json:"total"`
		Limit     int               `json:"limit"`
		Offset    int               `json:"offset"`
	}
}

// FavoriteIDInput identifies a single favorite.
type FavoriteIDInput struct {
	ID string `path:"id" doc:"MercadoLibre item ID" example:"MLA1234567890"`
}

// FavoriteOutput is the response for a single favorite.
type FavoriteOutput struct {
	Body domain.Favorite
}

// AddFavoriteInput is the request body for saving a favorite.
type AddFavoriteInput struct {
	Body struct {
		ID string `json:"id" minLength:"1" doc:"MercadoLibre item ID to save" example:"MLA1234567890"`
	}
}

// RefreshFavoritesOutput is the response body for a manual refresh.
type RefreshFavoritesOutput struct {
	Body struct {
		Checked      int `json:"checked"       doc:"Favorites re-fetched"`
		Updated      int `json:"updated"       doc:"Favorites whose title or price changed"`
		PriceChanges int `json:"price_changes" doc:"Favorites whose price changed"`
		Failed       int `json:"failed"        doc:"Favorites that could not be refreshed"`
	}
}

// --- Handlers ---

// ListFavorites returns saved favorites with optional filters.
func (h *FavoritesHandler) ListFavorites(
	ctx context.Context,
	input *ListFavoritesInput,
) (*ListFavoritesOutput, error) {
	q := &store.FavoriteQuery{
		Limit:   input.Limit,
		Offset:  input.Offset,
		OrderBy: input.OrderBy,
	}

	if input.Currency != "" {
		q.Currency = &input.Currency
	}

	if input.Title != "" {
		q.Title = &input.Title
	}

	if input.MinPrice != 0 {
		q.MinPrice = &input.MinPrice
	}

	if input.MaxPrice != 0 {
		q.MaxPrice = &input.MaxPrice
	}

	favorites, total, err := h.store.ListFavorites(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing favorites failed: " + err.Error())
	}

	resp := &ListFavoritesOutput{}
	resp.Body.Favorites = favorites
	if resp.Body.Favorites == nil {
		resp.Body.Favorites = []domain.Favorite{}
	}
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset

	return resp, nil
}

// GetFavorite returns a single favorite by item ID.
func (h *FavoritesHandler) GetFavorite(ctx context.Context, input *FavoriteIDInput) (*FavoriteOutput, error) {
	f, err := h.store.GetFavorite(ctx, input.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, huma.Error404NotFound("favorite not found")
		}
		return nil, huma.Error500InternalServerError("getting favorite failed: " + err.Error())
	}

	return &FavoriteOutput{Body: *f}, nil
}

// AddFavorite fetches the item from MercadoLibre and saves it. Saving an
// item twice refreshes the stored copy.
func (h *FavoritesHandler) AddFavorite(ctx context.Context, input *AddFavoriteInput) (*FavoriteOutput, error) {
	p, err := h.repo.Product(ctx, input.Body.ID)
	if err != nil {
		return nil, upstreamError(domain.AsError(err))
	}

	formatted := format.Product(*p)
	f := domain.FavoriteFromProduct(&formatted)
	if err := h.store.AddFavorite(ctx, f); err != nil {
		return nil, huma.Error500InternalServerError("saving favorite failed: " + err.Error())
	}

	return &FavoriteOutput{Body: *f}, nil
}

// RemoveFavorite deletes a favorite.
func (h *FavoritesHandler) RemoveFavorite(ctx context.Context, input *FavoriteIDInput) (*struct{}, error) {
	if err := h.store.RemoveFavorite(ctx, input.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, huma.Error404NotFound("favorite not found")
		}
		return nil, huma.Error500InternalServerError("removing favorite failed: " + err.Error())
	}
	return nil, nil
}

// RefreshFavorites re-fetches every favorite immediately.
func (h *FavoritesHandler) RefreshFavorites(ctx context.Context, _ *struct{}) (*RefreshFavoritesOutput, error) {
	if h.refresher == nil {
		return nil, huma.Error503ServiceUnavailable("favorites refresh is not configured")
	}

	res, err := h.refresher.RunRefresh(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("favorites refresh failed: " + err.Error())
	}

	resp := &RefreshFavoritesOutput{}
	resp.Body.Checked = res.Checked
	resp.Body.Updated = res.Updated
	resp.Body.PriceChanges = res.PriceChanges
	resp.Body.Failed = res.Failed
	return resp, nil
}

// RegisterFavoriteRoutes registers favorites endpoints with the Huma API.
func RegisterFavoriteRoutes(api huma.API, h *FavoritesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-favorites",
		Method:      http.MethodGet,
		Path:        "/api/v1/favorites",
		Summary:     "List favorites",
		Description: "Returns saved favorites with optional filters for currency, title, price range, and pagination.",
		Tags:        []string{"favorites"},
	}, h.ListFavorites)

	huma.Register(api, huma.Operation{
		OperationID: "get-favorite",
		Method:      http.MethodGet,
		Path:        "/api/v1/favorites/{id}",
		Summary:     "Get a favorite",
		Tags:        []string{"favorites"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetFavorite)

	huma.Register(api, huma.Operation{
		OperationID:   "add-favorite",
		Method:        http.MethodPost,
		Path:          "/api/v1/favorites",
		Summary:       "Save a favorite",
		Description:   "Fetches the item from MercadoLibre and saves its current title and price.",
		Tags:          []string{"favorites"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadGateway},
	}, h.AddFavorite)

	huma.Register(api, huma.Operation{
		OperationID:   "remove-favorite",
		Method:        http.MethodDelete,
		Path:          "/api/v1/favorites/{id}",
		Summary:       "Remove a favorite",
		Tags:          []string{"favorites"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
	}, h.RemoveFavorite)

	huma.Register(api, huma.Operation{
		OperationID: "refresh-favorites",
		Method:      http.MethodPost,
		Path:        "/api/v1/favorites/refresh",
		Summary:     "Refresh favorites",
		Description: "Re-fetches every favorite and stores its current title and price.",
		Tags:        []string{"favorites"},
		Errors:      []int{http.StatusInternalServerError, http.StatusServiceUnavailable},
	}, h.RefreshFavorites)
}

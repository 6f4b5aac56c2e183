package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/mercado-search/internal/repository"
	"github.com/donaldgifford/mercado-search/internal/screen"
	"github.com/donaldgifford/mercado-search/pkg/logger"
	domain "github.com/donaldgifford/mercado-search/pkg/types"
)

// CatalogHandler serves categories, searches and item details. Each request
// drives its own screen controller.
type CatalogHandler struct {
	repo   repository.Repository
	siteID string
	log    *slog.Logger
}

// NewCatalogHandler creates a new CatalogHandler. siteID is the site used
// when a request does not name one.
func NewCatalogHandler(repo repository.Repository, siteID string, log *slog.Logger) *CatalogHandler {
	if siteID == "" {
		siteID = domain.DefaultSiteID
	}
	return &CatalogHandler{repo: repo, siteID: siteID, log: logger.Component(log, "api")}
}

// --- Input/Output types ---

// ListCategoriesInput is the input for listing categories.
type ListCategoriesInput struct {
	SiteID string `query:"site" doc:"MercadoLibre site ID (default from config)" example:"MLA" pattern:"^[A-Z]{3}$"`
}

// ListCategoriesOutput is the response for listing categories.
type ListCategoriesOutput struct {
	Body struct {
		SiteID     string            `json:"site_id"`
		Categories []domain.Category `json:"categories"`
	}
}

// GetItemInput is the input for getting a single item.
type GetItemInput struct {
	ID string `path:"id" doc:"MercadoLibre item ID" example:"MLA1234567890"`
}

// GetItemOutput is the response for getting a single item.
type GetItemOutput struct {
	Body domain.Product
}

// --- Handlers ---

// ListCategories returns the top-level categories of a site.
func (h *CatalogHandler) ListCategories(
	ctx context.Context,
	input *ListCategoriesInput,
) (*ListCategoriesOutput, error) {
	site := h.site(input.SiteID)

	c := screen.NewCategoriesController(h.repo, h.screenOptions(ctx, site)...)
	defer c.Close()

	if err := await(ctx, c.Ready()); err != nil {
		return nil, err
	}

	state := c.Snapshot()
	if state.Err != nil {
		return nil, upstreamError(state.Err)
	}

	resp := &ListCategoriesOutput{}
	resp.Body.SiteID = site
	resp.Body.Categories = state.Categories
	if resp.Body.Categories == nil {
		resp.Body.Categories = []domain.Category{}
	}
	return resp, nil
}

// GetItem returns a product with its description and display fields.
func (h *CatalogHandler) GetItem(ctx context.Context, input *GetItemInput) (*GetItemOutput, error) {
	c := screen.NewDetailController(h.repo, &input.ID, h.screenOptions(ctx, h.siteID)...)
	defer c.Close()

	if err := await(ctx, c.Ready()); err != nil {
		return nil, err
	}

	state := c.Snapshot()
	if state.Err != nil {
		return nil, upstreamError(state.Err)
	}
	if state.Product == nil {
		return nil, huma.Error502BadGateway("item not loaded")
	}

	return &GetItemOutput{Body: *state.Product}, nil
}

func (h *CatalogHandler) site(requested string) string {
	if requested != "" {
		return requested
	}
	return h.siteID
}

func (h *CatalogHandler) screenOptions(ctx context.Context, site string) []screen.Option {
	return []screen.Option{
		screen.WithContext(ctx),
		screen.WithLogger(h.log),
		screen.WithSiteID(site),
	}
}

// await blocks until ready is closed or ctx is done.
func await(ctx context.Context, ready <-chan struct{}) error {
	select {
	case <-ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// upstreamError maps a screen error onto an HTTP status.
func upstreamError(err *domain.Error) error {
	switch err.Kind {
	case domain.KindInvalidIdentifier:
		return huma.Error422UnprocessableEntity(err.Error())
	case domain.KindRequestFailed:
		return huma.Error502BadGateway("MercadoLibre request failed: " + err.Message)
	default:
		return huma.Error500InternalServerError(err.Error())
	}
}

// RegisterCatalogRoutes registers catalog endpoints with the Huma API.
func RegisterCatalogRoutes(api huma.API, h *CatalogHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/api/v1/categories",
		Summary:     "List categories",
		Description: "Returns the top-level categories of a MercadoLibre site.",
		Tags:        []string{"catalog"},
		Errors:      []int{http.StatusBadGateway},
	}, h.ListCategories)

	huma.Register(api, huma.Operation{
		OperationID: "search-items",
		Method:      http.MethodGet,
		Path:        "/api/v1/search",
		Summary:     "Search items",
		Description: "Searches a site, optionally within a category, and accumulates up to `pages` result pages.",
		Tags:        []string{"catalog"},
		Errors:      []int{http.StatusUnprocessableEntity, http.StatusBadGateway},
	}, h.Search)

	huma.Register(api, huma.Operation{
		OperationID: "get-item",
		Method:      http.MethodGet,
		Path:        "/api/v1/items/{id}",
		Summary:     "Get an item",
		Description: "Returns an item with its description, formatted price and formatted address.",
		Tags:        []string{"catalog"},
		Errors:      []int{http.StatusBadGateway},
	}, h.GetItem)
}

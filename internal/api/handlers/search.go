package handlers

import (
	"context"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/mercado-search/internal/screen"
	domain "github.com/donaldgifford/mercado-search/pkg/types"
)

// SearchInput is the input for the search endpoint.
type SearchInput struct {
	Query      string `query:"q"        doc:"Search text"                                  example:"iphone 15"`
	CategoryID string `query:"category" doc:"Restrict the search to this category"         example:"MLA1051"`
	SiteID     string `query:"site"     doc:"MercadoLibre site ID (default from config)"   example:"MLA"       pattern:"^[A-Z]{3}$"`
	Pages      int    `query:"pages"    doc:"Number of result pages to accumulate"         default:"1"         minimum:"1" maximum:"20"`
}

// SearchOutput is the response body for the search endpoint.
type SearchOutput struct {
	Body struct {
		Query      string           `json:"query"`
		CategoryID *string          `json:"category_id,omitempty"`
		Products   []domain.Product `json:"products"`
		Offset     int              `json:"offset"            doc:"Offset of the next page"`
		Total      int              `json:"total"             doc:"Total matching items reported by MercadoLibre"`
		HasMore    bool             `json:"has_more"          doc:"Whether more results are available"`
		Pages      int              `json:"pages"             doc:"Number of pages accumulated"`
	}
}

// Search runs a search and then loads more pages until Pages are
// accumulated or the results are exhausted. A failed extra page ends the
// accumulation without failing the request.
func (h *CatalogHandler) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	var category *string
	if input.CategoryID != "" {
		category = &input.CategoryID
	}
	if category == nil && strings.TrimSpace(input.Query) == "" {
		return nil, huma.Error422UnprocessableEntity("q or category is required")
	}

	opts := append(h.screenOptions(ctx, h.site(input.SiteID)), screen.WithQuery(input.Query))
	c := screen.NewSearchController(h.repo, category, opts...)
	defer c.Close()

	if err := await(ctx, c.Ready()); err != nil {
		return nil, err
	}
	if category == nil {
		c.Search(input.Query)
	}

	state := c.Snapshot()
	if state.Err != nil {
		return nil, upstreamError(state.Err)
	}

	pages := 1
	for pages < input.Pages && state.HasMore() {
		c.LoadMore()
		next := c.Snapshot()
		if len(next.Results) == len(state.Results) && next.HasMore() {
			h.log.Debug("load more made no progress", "query", input.Query, "offset", next.Offset)
			break
		}
		state = next
		pages++
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp := &SearchOutput{}
	resp.Body.Query = state.Query
	resp.Body.CategoryID = state.CategoryID
	resp.Body.Products = state.Results
	if resp.Body.Products == nil {
		resp.Body.Products = []domain.Product{}
	}
	resp.Body.Offset = state.Offset
	resp.Body.Total = state.Total
	resp.Body.HasMore = state.HasMore()
	resp.Body.Pages = pages
	return resp, nil
}

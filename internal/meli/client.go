// Package meli provides a MercadoLibre REST API client abstracted behind
// interfaces for testability.
package meli

import (
	"context"
)

// SearchRequest defines the parameters for a site search.
type SearchRequest struct {
	SiteID     string
	CategoryID string // empty searches the whole site
	Query      string
	Offset     int
	Limit      int // zero leaves the server default
}

// SearchResponse holds one page of search results.
type SearchResponse struct {
	Items  []Item
	Total  int
	Offset int
	Limit  int
}

// API defines the MercadoLibre endpoints used by mercado-search.
type API interface {
	Categories(ctx context.Context, siteID string) ([]CategoryRef, error)
	Search(ctx context.Context, req SearchRequest) (*SearchResponse, error)
	Item(ctx context.Context, itemID string) (*Item, error)
	ItemDescription(ctx context.Context, itemID string) (*ItemDescription, error)
}

// TokenProvider defines the interface for obtaining OAuth2 tokens.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

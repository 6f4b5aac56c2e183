// Package repository is the single entry point screen controllers use to
// reach the remote catalog. It forwards typed requests to the MercadoLibre
// client and reports every failure as a domain RequestFailed error. It does
// not retry or cache.
package repository

import (
	"context"
	"log/slog"
	"strings"

	"github.com/donaldgifford/mercado-search/internal/meli"
	"github.com/donaldgifford/mercado-search/pkg/logger"
	domain "github.com/donaldgifford/mercado-search/pkg/types"
)

// SearchRequest identifies one page of a catalog search.
type SearchRequest struct {
	SiteID     string // empty uses the repository's site
	CategoryID string // empty searches the whole site
	Query      string
	Offset     int
}

// Repository defines the catalog operations available to controllers.
type Repository interface {
	Categories(ctx context.Context, siteID string) ([]domain.Category, error)
	Search(ctx context.Context, req SearchRequest) (*domain.SearchPage, error)
	Product(ctx context.Context, itemID string) (*domain.Product, error)
	ProductDescription(ctx context.Context, itemID string) (*domain.Description, error)
}

// MeliRepository implements Repository on top of a meli.API.
type MeliRepository struct {
	api      meli.API
	siteID   string
	pageSize int
	log      *slog.Logger
}

// Ensure MeliRepository implements Repository at compile time.
var _ Repository = (*MeliRepository)(nil)

// Option configures a MeliRepository.
type Option func(*MeliRepository)

// WithSiteID sets the site used when a request does not name one.
func WithSiteID(siteID string) Option {
	return func(r *MeliRepository) {
		if siteID != "" {
			r.siteID = siteID
		}
	}
}

// WithPageSize requests pages of n results instead of the server default.
func WithPageSize(n int) Option {
	return func(r *MeliRepository) {
		r.pageSize = n
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *slog.Logger) Option {
	return func(r *MeliRepository) {
		r.log = logger.Component(l, "repository")
	}
}

// New creates a MeliRepository backed by api.
func New(api meli.API, opts ...Option) *MeliRepository {
	r := &MeliRepository{
		api:    api,
		siteID: domain.DefaultSiteID,
		log:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SiteID returns the default site of the repository.
func (r *MeliRepository) SiteID() string {
	return r.siteID
}

// Categories lists the top-level categories of siteID.
func (r *MeliRepository) Categories(ctx context.Context, siteID string) ([]domain.Category, error) {
	refs, err := r.api.Categories(ctx, r.site(siteID))
	if err != nil {
		return nil, r.failed("categories", err)
	}
	return meli.ToCategories(refs), nil
}

// Search fetches one page of results. The query is trimmed before sending.
func (r *MeliRepository) Search(ctx context.Context, req SearchRequest) (*domain.SearchPage, error) {
	resp, err := r.api.Search(ctx, meli.SearchRequest{
		SiteID:     r.site(req.SiteID),
		CategoryID: req.CategoryID,
		Query:      strings.TrimSpace(req.Query),
		Offset:     req.Offset,
		Limit:      r.pageSize,
	})
	if err != nil {
		return nil, r.failed("search", err)
	}

	r.log.Debug("search page fetched",
		"category", req.CategoryID,
		"offset", req.Offset,
		"items", len(resp.Items),
		"total", resp.Total,
	)

	return &domain.SearchPage{
		Products: meli.ToProducts(resp.Items),
		Total:    resp.Total,
	}, nil
}

// Product fetches the details of a single item.
func (r *MeliRepository) Product(ctx context.Context, itemID string) (*domain.Product, error) {
	item, err := r.api.Item(ctx, itemID)
	if err != nil {
		return nil, r.failed("item", err)
	}
	p := meli.ToProduct(item)
	return &p, nil
}

// ProductDescription fetches the plain-text description of an item.
func (r *MeliRepository) ProductDescription(
	ctx context.Context,
	itemID string,
) (*domain.Description, error) {
	desc, err := r.api.ItemDescription(ctx, itemID)
	if err != nil {
		return nil, r.failed("description", err)
	}
	d := meli.ToDescription(desc)
	return &d, nil
}

func (r *MeliRepository) site(siteID string) string {
	if siteID == "" {
		return r.siteID
	}
	return siteID
}

func (r *MeliRepository) failed(op string, err error) error {
	r.log.Debug("request failed", "op", op, "error", err)
	return domain.RequestFailed(err.Error())
}

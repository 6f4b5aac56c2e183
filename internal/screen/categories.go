package screen

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/donaldgifford/mercado-search/internal/repository"
	domain "github.com/donaldgifford/mercado-search/pkg/types"
)

// CategoriesState is the snapshot published by a CategoriesController.
type CategoriesState struct {
	Categories []domain.Category
	Loading    bool
	Err        *domain.Error
}

func cloneCategoriesState(s CategoriesState) CategoriesState {
	s.Categories = slices.Clone(s.Categories)
	return s
}

// CategoriesController loads the flat category list of a site.
type CategoriesController struct {
	repo   repository.Repository
	siteID string
	log    *slog.Logger
	holder *Holder[CategoriesState]
	scope  *scope

	mu  sync.Mutex
	gen uint64
}

// NewCategoriesController creates a categories screen and starts the
// initial Fetch in the background.
func NewCategoriesController(repo repository.Repository, opts ...Option) *CategoriesController {
	o := buildOptions("categories", opts)

	c := &CategoriesController{
		repo:   repo,
		siteID: o.siteID,
		log:    o.log,
		holder: newHolder(CategoriesState{}, cloneCategoriesState),
		scope:  newScope(o.parent),
	}
	c.scope.start(c.Fetch)

	return c
}

// Snapshot returns the current state.
func (c *CategoriesController) Snapshot() CategoriesState {
	return c.holder.Snapshot()
}

// Subscribe streams state changes. See Holder.Subscribe.
func (c *CategoriesController) Subscribe() (<-chan CategoriesState, func()) {
	return c.holder.Subscribe()
}

// Ready is closed once the construction-time Fetch has finished.
func (c *CategoriesController) Ready() <-chan struct{} {
	return c.scope.ready
}

// Close cancels in-flight requests and closes subscriber channels.
func (c *CategoriesController) Close() {
	c.scope.shutdown(c.holder.close)
}

// Fetch reloads the category list. A failure keeps the previous list.
func (c *CategoriesController) Fetch() {
	c.mu.Lock()
	if c.scope.closed() {
		c.mu.Unlock()
		return
	}
	c.gen++
	gen := c.gen
	c.holder.update(func(s *CategoriesState) {
		s.Loading = true
	})
	c.mu.Unlock()

	cats, err := c.repo.Categories(c.scope.ctx, c.siteID)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.scope.closed() || gen != c.gen {
		return
	}

	c.holder.update(func(s *CategoriesState) {
		if err != nil {
			s.Err = domain.AsError(err)
		} else {
			s.Categories = cats
			s.Err = nil
		}
		s.Loading = false
	})

	if err != nil {
		c.log.Debug("categories failed", "site", c.siteID, "error", err)
		return
	}
	c.log.Debug("categories loaded", "site", c.siteID, "count", len(cats))
}

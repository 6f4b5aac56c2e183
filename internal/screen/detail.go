package screen

import (
	"log/slog"
	"sync"

	"github.com/donaldgifford/mercado-search/internal/metrics"
	"github.com/donaldgifford/mercado-search/internal/repository"
	"github.com/donaldgifford/mercado-search/pkg/format"
	domain "github.com/donaldgifford/mercado-search/pkg/types"
)

// DetailState is the snapshot published by a DetailController.
type DetailState struct {
	ProductID *string
	Product   *domain.Product
	Loading   bool
	Err       *domain.Error
}

func cloneDetailState(s DetailState) DetailState {
	if s.Product != nil {
		p := *s.Product
		s.Product = &p
	}
	return s
}

// DetailController loads one product and its description.
type DetailController struct {
	repo   repository.Repository
	log    *slog.Logger
	holder *Holder[DetailState]
	scope  *scope

	mu  sync.Mutex
	gen uint64
}

// NewDetailController creates a detail screen for productID and starts
// Fetch in the background.
func NewDetailController(
	repo repository.Repository,
	productID *string,
	opts ...Option,
) *DetailController {
	o := buildOptions("detail", opts)

	c := &DetailController{
		repo:   repo,
		log:    o.log,
		holder: newHolder(DetailState{}, cloneDetailState),
		scope:  newScope(o.parent),
	}
	c.scope.start(func() { c.Fetch(productID) })

	return c
}

// Snapshot returns the current state.
func (c *DetailController) Snapshot() DetailState {
	return c.holder.Snapshot()
}

// Subscribe streams state changes. See Holder.Subscribe.
func (c *DetailController) Subscribe() (<-chan DetailState, func()) {
	return c.holder.Subscribe()
}

// Ready is closed once the construction-time Fetch has finished.
func (c *DetailController) Ready() <-chan struct{} {
	return c.scope.ready
}

// Close cancels in-flight requests and closes subscriber channels.
func (c *DetailController) Close() {
	c.scope.shutdown(c.holder.close)
}

// Fetch loads the product and then its description, merges the description
// text and display fields, and publishes the result. A nil or empty id
// fails with InvalidIdentifier without touching the network. If either
// request fails nothing partial is published.
func (c *DetailController) Fetch(productID *string) {
	c.mu.Lock()
	if c.scope.closed() {
		c.mu.Unlock()
		return
	}
	c.gen++
	gen := c.gen

	if productID == nil || *productID == "" {
		c.holder.update(func(s *DetailState) {
			s.ProductID = nil
			s.Loading = false
			s.Err = domain.InvalidIdentifier()
		})
		c.mu.Unlock()
		metrics.DetailFetchesTotal.WithLabelValues("invalid").Inc()
		return
	}

	id := *productID
	c.holder.update(func(s *DetailState) {
		s.ProductID = &id
		s.Loading = true
		s.Err = nil
	})
	c.mu.Unlock()

	product, err := c.load(id)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.scope.closed() || gen != c.gen {
		return
	}

	if err != nil {
		metrics.DetailFetchesTotal.WithLabelValues("error").Inc()
		c.log.Debug("detail failed", "id", id, "error", err)
		c.holder.update(func(s *DetailState) {
			s.Loading = false
			s.Err = domain.AsError(err)
		})
		return
	}

	metrics.DetailFetchesTotal.WithLabelValues("success").Inc()
	c.holder.update(func(s *DetailState) {
		s.Product = product
		s.Loading = false
	})
	c.log.Debug("detail loaded", "id", id)
}

func (c *DetailController) load(id string) (*domain.Product, error) {
	p, err := c.repo.Product(c.scope.ctx, id)
	if err != nil {
		return nil, err
	}

	desc, err := c.repo.ProductDescription(c.scope.ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *p
	merged.Description = desc.Text
	merged = format.Product(merged)
	return &merged, nil
}

package screen

import (
	"log/slog"
	"math"
	"slices"
	"sync"

	"github.com/donaldgifford/mercado-search/internal/metrics"
	"github.com/donaldgifford/mercado-search/internal/repository"
	"github.com/donaldgifford/mercado-search/pkg/format"
	domain "github.com/donaldgifford/mercado-search/pkg/types"
)

// UnknownTotal is the result ceiling before the first page arrives.
const UnknownTotal = math.MaxInt

// Phase is the position of a search screen in its state machine.
type Phase int

// Search phases.
const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseError
	PhaseLoadingMore
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseError:
		return "error"
	case PhaseLoadingMore:
		return "loading_more"
	default:
		return "unknown"
	}
}

// SearchState is the snapshot published by a SearchController.
type SearchState struct {
	Query       string
	CategoryID  *string
	Results     []domain.Product
	Loading     bool
	LoadingMore bool
	Err         *domain.Error
	Offset      int
	Total       int
	Searched    bool // at least one search succeeded
}

// Phase derives the state machine position from the flags.
func (s SearchState) Phase() Phase {
	switch {
	case s.Loading:
		return PhaseLoading
	case s.LoadingMore:
		return PhaseLoadingMore
	case s.Err != nil:
		return PhaseError
	case s.Searched:
		return PhaseLoaded
	default:
		return PhaseIdle
	}
}

// HasMore reports whether the server has results beyond those accumulated.
func (s SearchState) HasMore() bool {
	return len(s.Results) < s.Total
}

// KnownTotal returns the server's total once a page has arrived.
func (s SearchState) KnownTotal() (int, bool) {
	return s.Total, s.Total != UnknownTotal
}

// ShouldLoadMore reports whether the presentation layer, having just
// rendered the row at lastRenderedIndex, should call LoadMore. It fires
// only when that row is the last accumulated result.
func (s SearchState) ShouldLoadMore(lastRenderedIndex int) bool {
	n := len(s.Results)
	return n > 0 &&
		lastRenderedIndex == n-1 &&
		!s.Loading &&
		!s.LoadingMore &&
		s.HasMore()
}

func cloneSearchState(s SearchState) SearchState {
	s.Results = slices.Clone(s.Results)
	return s
}

// SearchController drives a catalog search with incremental pagination.
// The category scope is fixed at construction.
type SearchController struct {
	repo       repository.Repository
	siteID     string
	categoryID *string
	log        *slog.Logger
	holder     *Holder[SearchState]
	scope      *scope

	mu           sync.Mutex // serializes state transitions
	gen          uint64     // bumped by every Search
	resultsQuery string     // query that produced the accumulated results
}

// NewSearchController creates a search screen. When categoryID is non-nil
// the controller immediately searches that category with the current query
// in the background; Ready is closed once that search completes.
func NewSearchController(
	repo repository.Repository,
	categoryID *string,
	opts ...Option,
) *SearchController {
	o := buildOptions("search", opts)

	if categoryID != nil {
		id := *categoryID
		categoryID = &id
	}

	c := &SearchController{
		repo:       repo,
		siteID:     o.siteID,
		categoryID: categoryID,
		log:        o.log,
		holder: newHolder(SearchState{
			Query:      o.query,
			CategoryID: categoryID,
			Total:      UnknownTotal,
		}, cloneSearchState),
		scope: newScope(o.parent),
	}

	if categoryID != nil {
		c.scope.start(func() { c.Search(o.query) })
	} else {
		c.scope.skip()
	}

	return c
}

// Snapshot returns the current state.
func (c *SearchController) Snapshot() SearchState {
	return c.holder.Snapshot()
}

// Subscribe streams state changes. See Holder.Subscribe.
func (c *SearchController) Subscribe() (<-chan SearchState, func()) {
	return c.holder.Subscribe()
}

// Ready is closed once construction-time work has finished.
func (c *SearchController) Ready() <-chan struct{} {
	return c.scope.ready
}

// Close cancels in-flight requests and closes subscriber channels.
func (c *SearchController) Close() {
	c.scope.shutdown(c.holder.close)
}

// SetQuery replaces the query text without searching.
func (c *SearchController) SetQuery(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.holder.update(func(s *SearchState) {
		s.Query = text
	})
}

// Search fetches the first page for query within the controller's category
// scope. On success the accumulated results are replaced; on failure they
// are kept and Err is set. A later Search supersedes any earlier Search or
// LoadMore still in flight, whose responses are then dropped.
func (c *SearchController) Search(query string) {
	c.mu.Lock()
	if c.scope.closed() {
		c.mu.Unlock()
		return
	}
	c.gen++
	gen := c.gen
	c.holder.update(func(s *SearchState) {
		s.Query = query
		s.Loading = true
		s.LoadingMore = false
		s.Err = nil
	})
	c.mu.Unlock()

	c.log.Debug("search started", "query", query, "category", c.category(), "generation", gen)

	page, err := c.repo.Search(c.scope.ctx, c.request(query, 0))

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.current(gen) {
		return
	}

	if err != nil {
		metrics.SearchesTotal.WithLabelValues("error").Inc()
		c.log.Debug("search failed", "query", query, "error", err)
		c.holder.update(func(s *SearchState) {
			s.Loading = false
			s.Err = domain.AsError(err)
		})
		return
	}

	metrics.SearchesTotal.WithLabelValues("success").Inc()
	products := format.Products(page.Products)
	c.resultsQuery = query
	c.holder.update(func(s *SearchState) {
		s.Results = products
		s.Offset = len(products)
		s.Total = page.Total
		s.Loading = false
		s.Searched = true
	})
	c.log.Debug("search loaded", "query", query, "results", len(products), "total", page.Total)
}

// LoadMore appends the next page of the current results. It returns
// without a request before the first successful search, while a search or
// another LoadMore is in flight, or when every result has been accumulated.
// Failures only clear LoadingMore.
func (c *SearchController) LoadMore() {
	c.mu.Lock()
	if c.scope.closed() {
		c.mu.Unlock()
		return
	}

	var (
		skip   bool
		offset int
	)
	c.holder.view(func(s *SearchState) {
		skip = !s.Searched || s.Loading || s.LoadingMore || !s.HasMore()
		offset = s.Offset
	})
	if skip {
		c.mu.Unlock()
		return
	}

	gen := c.gen
	query := c.resultsQuery
	c.holder.update(func(s *SearchState) {
		s.LoadingMore = true
	})
	c.mu.Unlock()

	c.log.Debug("load more started", "query", query, "offset", offset)

	page, err := c.repo.Search(c.scope.ctx, c.request(query, offset))

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.current(gen) {
		return
	}

	if err != nil {
		metrics.LoadMoreFailuresTotal.Inc()
		c.log.Debug("load more failed", "offset", offset, "error", err)
		c.holder.update(func(s *SearchState) {
			s.LoadingMore = false
		})
		return
	}

	metrics.LoadMorePagesTotal.Inc()
	products := format.Products(page.Products)
	c.holder.update(func(s *SearchState) {
		s.Results = slices.Concat(s.Results, products)
		s.Offset += len(products)
		s.Total = page.Total
		if len(products) == 0 {
			// The server stopped returning rows before its advertised total.
			s.Total = len(s.Results)
		}
		s.LoadingMore = false
	})
	c.log.Debug("load more loaded", "offset", offset, "results", len(products))
}

// current reports whether a response for gen may still be applied. Callers
// hold c.mu.
func (c *SearchController) current(gen uint64) bool {
	if c.scope.closed() {
		return false
	}
	if gen != c.gen {
		metrics.StaleResponsesTotal.Inc()
		c.log.Debug("dropping stale response", "generation", gen, "current", c.gen)
		return false
	}
	return true
}

func (c *SearchController) request(query string, offset int) repository.SearchRequest {
	return repository.SearchRequest{
		SiteID:     c.siteID,
		CategoryID: c.category(),
		Query:      query,
		Offset:     offset,
	}
}

func (c *SearchController) category() string {
	if c.categoryID == nil {
		return ""
	}
	return *c.categoryID
}

// Package engine keeps saved favorites current by periodically re-fetching
// each product from the catalog.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/donaldgifford/mercado-search/internal/metrics"
	"github.com/donaldgifford/mercado-search/internal/notify"
	"github.com/donaldgifford/mercado-search/internal/repository"
	"github.com/donaldgifford/mercado-search/internal/store"
	"github.com/donaldgifford/mercado-search/pkg/logger"
)

const (
	defaultBatchSize   = 100
	defaultMaxPerCycle = 500
)

// RefreshResult summarizes one refresh cycle.
type RefreshResult struct {
	Checked      int
	Updated      int
	PriceChanges int
	Failed       int
}

// Engine refreshes favorites against the catalog.
type Engine struct {
	store    store.Store
	repo     repository.Repository
	notifier notify.Notifier
	log      *slog.Logger

	dropsOnly bool

	batchSize   int
	maxPerCycle int
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithNotifier sets where price changes are reported. The default logs
// and discards them.
func WithNotifier(n notify.Notifier) EngineOption {
	return func(e *Engine) {
		e.notifier = n
	}
}

// WithDropsOnly limits notifications to price decreases.
func WithDropsOnly(v bool) EngineOption {
	return func(e *Engine) {
		e.dropsOnly = v
	}
}

// WithBatchSize sets how many favorites are read from the store at a time.
func WithBatchSize(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.batchSize = n
		}
	}
}

// WithMaxPerCycle caps the product fetches made by one refresh cycle.
func WithMaxPerCycle(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.maxPerCycle = n
		}
	}
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(s store.Store, r repository.Repository, opts ...EngineOption) *Engine {
	eng := &Engine{
		store:       s,
		repo:        r,
		log:         logger.Discard(),
		batchSize:   defaultBatchSize,
		maxPerCycle: defaultMaxPerCycle,
	}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.notifier == nil {
		eng.notifier = notify.NewNoOpNotifier(eng.log)
	}
	return eng
}

// RunRefresh re-fetches every favorite, oldest first, and stores the
// current title and price of those that changed. A product that fails to
// load is logged and skipped. Price changes are sent to the notifier as
// one batch once the cycle ends, even when it ends early.
func (eng *Engine) RunRefresh(ctx context.Context) (*RefreshResult, error) {
	start := time.Now()
	defer func() {
		metrics.FavoritesRefreshDuration.Observe(time.Since(start).Seconds())
	}()

	res := &RefreshResult{}
	var changes []notify.PriceChange
	defer func() {
		eng.notify(context.WithoutCancel(ctx), changes)
	}()

	q := &store.FavoriteQuery{OrderBy: "created_at", Limit: eng.batchSize}

	for {
		favorites, total, err := eng.store.ListFavorites(ctx, q)
		if err != nil {
			return res, fmt.Errorf("listing favorites: %w", err)
		}

		for i := range favorites {
			if ctx.Err() != nil {
				return res, ctx.Err()
			}
			if res.Checked >= eng.maxPerCycle {
				eng.log.Warn("refresh budget exhausted",
					"checked", res.Checked,
					"max_per_cycle", eng.maxPerCycle,
				)
				return res, nil
			}

			f := &favorites[i]
			res.Checked++

			p, err := eng.repo.Product(ctx, f.ID)
			if err != nil {
				res.Failed++
				metrics.FavoritesRefreshErrorsTotal.Inc()
				eng.log.Error("refreshing favorite failed", "id", f.ID, "error", err)
				continue
			}

			if p.Title == f.Title && p.Price == f.Price {
				continue
			}

			if err := eng.store.UpdateFavoritePrice(ctx, f.ID, p.Title, p.Price); err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					// Removed while the cycle was running.
					continue
				}
				res.Failed++
				metrics.FavoritesRefreshErrorsTotal.Inc()
				eng.log.Error("storing favorite failed", "id", f.ID, "error", err)
				continue
			}

			res.Updated++
			metrics.FavoritesRefreshedTotal.Inc()
			if p.Price != f.Price {
				res.PriceChanges++
				metrics.FavoritesPriceChangesTotal.Inc()
				changes = append(changes, notify.PriceChange{
					ID:        f.ID,
					Title:     p.Title,
					Permalink: p.Permalink,
					Thumbnail: p.Thumbnail,
					Currency:  p.Currency,
					OldPrice:  f.Price,
					NewPrice:  p.Price,
				})
				eng.log.Info("favorite price changed",
					"id", f.ID,
					"old", f.Price,
					"new", p.Price,
				)
			}
		}

		q.Offset += len(favorites)
		if len(favorites) == 0 || q.Offset >= total {
			break
		}
	}

	eng.log.Info("favorites refreshed",
		"checked", res.Checked,
		"updated", res.Updated,
		"price_changes", res.PriceChanges,
		"failed", res.Failed,
	)

	return res, nil
}

func (eng *Engine) notify(ctx context.Context, changes []notify.PriceChange) {
	if eng.dropsOnly {
		drops := changes[:0]
		for i := range changes {
			if changes[i].Drop() {
				drops = append(drops, changes[i])
			}
		}
		changes = drops
	}
	if len(changes) == 0 {
		return
	}

	if err := eng.notifier.SendBatch(ctx, changes); err != nil {
		metrics.NotificationFailuresTotal.Inc()
		eng.log.Error("sending price change notification", "count", len(changes), "error", err)
	}
}

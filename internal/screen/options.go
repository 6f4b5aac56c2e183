package screen

import (
	"context"
	"log/slog"
	"sync"

	"github.com/donaldgifford/mercado-search/pkg/logger"
	domain "github.com/donaldgifford/mercado-search/pkg/types"
)

// Option configures a controller.
type Option func(*options)

type options struct {
	parent context.Context
	log    *slog.Logger
	siteID string
	query  string
}

// WithContext derives the controller scope from ctx instead of
// context.Background. Cancelling ctx has the same effect as Close.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		o.parent = ctx
	}
}

// WithLogger sets the logger used for state transitions.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// WithSiteID sets the MercadoLibre site the controller queries.
func WithSiteID(siteID string) Option {
	return func(o *options) {
		if siteID != "" {
			o.siteID = siteID
		}
	}
}

// WithQuery sets the initial query text of a search controller.
func WithQuery(q string) Option {
	return func(o *options) {
		o.query = q
	}
}

func buildOptions(component string, opts []Option) options {
	o := options{
		parent: context.Background(),
		siteID: domain.DefaultSiteID,
	}
	for _, opt := range opts {
		opt(&o)
	}
	o.log = logger.Component(o.log, component)
	return o
}

// scope is the lifetime shared by every controller: a cancellable context
// and the background work started at construction.
type scope struct {
	ctx    context.Context
	cancel context.CancelFunc
	ready  chan struct{}
	once   sync.Once
}

func newScope(parent context.Context) *scope {
	ctx, cancel := context.WithCancel(parent)
	return &scope{
		ctx:    ctx,
		cancel: cancel,
		ready:  make(chan struct{}),
	}
}

// start runs fn in the background and marks the scope ready when it returns.
func (s *scope) start(fn func()) {
	go func() {
		defer close(s.ready)
		fn()
	}()
}

// skip marks the scope ready without any construction-time work.
func (s *scope) skip() {
	close(s.ready)
}

// closed reports whether the scope was cancelled.
func (s *scope) closed() bool {
	return s.ctx.Err() != nil
}

// shutdown cancels the scope, waits for construction-time work to stop and
// then runs release. Only the first call has any effect.
func (s *scope) shutdown(release func()) {
	s.once.Do(func() {
		s.cancel()
		<-s.ready
		release()
	})
}

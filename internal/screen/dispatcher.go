package screen

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"songsearch/internal/domain"
	"songsearch/internal/eventbus"
)

// Searcher runs one search request
type Searcher interface {
	SearchTracks(ctx context.Context, query string) ([]domain.Track, error)
}

// Outcome describes how one dispatch settled
type Outcome struct {
	Query      string
	Generation uint64
	Tracks     []domain.Track
	Err        error
	Skipped    bool // empty query, nothing was sent
	Stale      bool // superseded by a newer dispatch and not applied
}

// Pending is the handle of one dispatch
type Pending struct {
	done    chan struct{}
	outcome Outcome
}

func newPending() *Pending {
	return &Pending{done: make(chan struct{})}
}

func (p *Pending) resolve(o Outcome) {
	p.outcome = o
	close(p.done)
}

// Done is closed once the dispatch has settled
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the dispatch settles or ctx is done
func (p *Pending) Wait(ctx context.Context) (Outcome, error) {
	select {
	case <-p.done:
		return p.outcome, nil
	case <-ctx.Done():
		return Outcome{}, ctx.Err()
	}
}

// DispatcherOption configures a Dispatcher
type DispatcherOption func(*Dispatcher)

// WithCancelStale makes every new dispatch cancel the one before it.
// Without it the last response to arrive wins.
func WithCancelStale(enabled bool) DispatcherOption {
	return func(d *Dispatcher) { d.cancelStale = enabled }
}

// WithEventBus publishes search lifecycle events on bus
func WithEventBus(bus eventbus.EventBus) DispatcherOption {
	return func(d *Dispatcher) { d.bus = bus }
}

// WithLogger sets the diagnostic sink
func WithLogger(log *zap.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if log != nil {
			d.log = log
		}
	}
}

// Dispatcher turns the current query into a search request and applies
// the result to the store
type Dispatcher struct {
	store       *Store
	searcher    Searcher
	bus         eventbus.EventBus
	log         *zap.Logger
	cancelStale bool

	// mu orders dispatches against result application
	mu         sync.Mutex
	generation uint64
	cancelPrev context.CancelFunc
}

// NewDispatcher creates a dispatcher bound to store
func NewDispatcher(store *Store, searcher Searcher, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		store:    store,
		searcher: searcher,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.log = d.log.Named("dispatcher")
	return d
}

// ExecuteSearch reads the current query and, if it is not empty, issues one
// request in the background. Failures are logged and leave the results as
// they were. The returned Pending settles when the request does.
func (d *Dispatcher) ExecuteSearch(ctx context.Context) *Pending {
	p := newPending()

	query := d.store.Query()
	if query == "" {
		d.publish(eventbus.SearchSkippedEvent{})
		p.resolve(Outcome{Skipped: true})
		return p
	}

	d.mu.Lock()
	d.generation++
	gen := d.generation
	reqCtx, cancel := context.WithCancel(ctx)
	if d.cancelStale {
		if d.cancelPrev != nil {
			d.cancelPrev()
		}
		d.cancelPrev = cancel
	}
	d.mu.Unlock()

	d.log.Debug("dispatching search", zap.String("query", query), zap.Uint64("generation", gen))
	d.publish(eventbus.SearchRequestedEvent{Query: query, Generation: gen})

	go func() {
		out := d.run(reqCtx, query, gen)
		d.release(gen, cancel)
		p.resolve(out)
	}()

	return p
}

func (d *Dispatcher) run(ctx context.Context, query string, gen uint64) Outcome {
	out := Outcome{Query: query, Generation: gen}

	tracks, err := d.searcher.SearchTracks(ctx, query)

	// The staleness check and the replace happen under one lock so a newer
	// dispatch cannot start and land in between.
	d.mu.Lock()
	if d.cancelStale && gen != d.generation {
		d.mu.Unlock()
		out.Stale = true
		out.Err = err
		d.log.Debug("discarding stale search result", zap.String("query", query), zap.Uint64("generation", gen))
		return out
	}

	if err != nil {
		d.mu.Unlock()
		out.Err = err
		d.log.Error("error fetching Deezer data", zap.String("query", query), zap.Error(err))
		d.publish(eventbus.SearchFailedEvent{Query: query, Generation: gen, Err: err})
		return out
	}

	d.store.ReplaceTracks(tracks)
	d.mu.Unlock()

	out.Tracks = tracks
	d.publish(eventbus.SearchCompletedEvent{Query: query, Generation: gen, Count: len(tracks)})
	return out
}

// release frees the request context of a settled dispatch
func (d *Dispatcher) release(gen uint64, cancel context.CancelFunc) {
	cancel()

	d.mu.Lock()
	if d.cancelStale && gen == d.generation {
		d.cancelPrev = nil
	}
	d.mu.Unlock()
}

func (d *Dispatcher) publish(e eventbus.DomainEvent) {
	if d.bus != nil {
		d.bus.Publish(e)
	}
}

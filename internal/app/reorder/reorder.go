// Package reorder implements drag-and-drop reordering for any manually
// sorted collection.
//
// HandleMove computes the new sequence in memory and returns it at once. The
// renumbered order is written to the store in the background; the caller
// never waits for it. Failed writes are logged, counted and reported to the
// acknowledgement callback, but not retried or rolled back, so the returned
// sequence and the persisted order can diverge until the next reload.
//
// Background writes are not sequenced against each other. When two moves
// are made in quick succession, whichever write arrives last wins.
package reorder

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/menu-cms/internal/domain"
	"github.com/jsamuelsen11/menu-cms/internal/domain/ordering"
	"github.com/jsamuelsen11/menu-cms/internal/platform/telemetry"
)

// Reassigner is the store capability the controller persists through.
// Every ports.OrderedStore satisfies it.
type Reassigner interface {
	ReassignOrder(ctx context.Context, pairs []ordering.Pair) error
}

// Ack reports the outcome of one background write. Seq increases with every
// write started by a controller, so a receiver can tell which of two racing
// writes finished last.
type Ack struct {
	Seq   uint64
	Kind  string
	Pairs []ordering.Pair
	Err   error
}

// Option configures a Controller.
type Option func(*options)

type options struct {
	ack     func(Ack)
	metrics *telemetry.Metrics
}

// WithAcknowledge registers fn to be called after every background write,
// successful or not. fn runs on the writer goroutine.
func WithAcknowledge(fn func(Ack)) Option {
	return func(o *options) { o.ack = fn }
}

// WithMetrics records menu.reorder.total and menu.reorder.duration.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// Controller applies moves to one kind of collection.
type Controller[T ordering.Entity[T]] struct {
	kind    domain.Kind
	store   Reassigner
	timeout time.Duration
	logger  *slog.Logger
	opts    options

	seq      atomic.Uint64
	inflight sync.WaitGroup
}

// New returns a controller persisting through store. Each background write
// is bounded by timeout.
func New[T ordering.Entity[T]](kind domain.Kind, store Reassigner, timeout time.Duration, logger *slog.Logger, opts ...Option) *Controller[T] {
	c := &Controller[T]{
		kind:    kind,
		store:   store,
		timeout: timeout,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(&c.opts)
	}
	return c
}

// HandleMove moves sourceID to the position held by destinationID and
// returns the new sequence with every element's order set to its index.
//
// If either id is missing from current, or both name the same element,
// current is returned unchanged and nothing is written. Otherwise the
// renumbered pairs are persisted in the background using a context that
// outlives ctx's cancellation.
func (c *Controller[T]) HandleMove(ctx context.Context, current []T, sourceID, destinationID string) []T {
	moved, ok := ordering.MoveByID(current, sourceID, destinationID)
	if !ok {
		c.logger.DebugContext(ctx, "move ignored",
			slog.String("kind", c.kind.Name),
			slog.String("source_id", sourceID),
			slog.String("destination_id", destinationID),
		)
		return current
	}

	pairs := ordering.Pairs(moved)
	seq := c.seq.Add(1)
	detached := context.WithoutCancel(ctx)

	c.inflight.Go(func() {
		c.persist(detached, seq, pairs)
	})

	return ordering.Renumber(moved)
}

// Wait blocks until every background write has finished or ctx is done.
func (c *Controller[T]) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		c.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Controller[T]) persist(ctx context.Context, seq uint64, pairs []ordering.Pair) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	err := c.store.ReassignOrder(ctx, pairs)
	c.record(ctx, start, err)

	if err != nil {
		c.logger.ErrorContext(ctx, "failed to persist order",
			slog.String("operation", "HandleMove"),
			slog.String("kind", c.kind.Name),
			slog.Uint64("seq", seq),
			slog.Int("pairs", len(pairs)),
			slog.Any("error", err),
		)
	} else {
		c.logger.InfoContext(ctx, "order persisted",
			slog.String("kind", c.kind.Name),
			slog.Uint64("seq", seq),
			slog.Int("pairs", len(pairs)),
		)
	}

	if c.opts.ack != nil {
		c.opts.ack(Ack{Seq: seq, Kind: c.kind.Name, Pairs: pairs, Err: err})
	}
}

func (c *Controller[T]) record(ctx context.Context, start time.Time, err error) {
	m := c.opts.metrics
	if m == nil {
		return
	}

	result := telemetry.ResultSuccess
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrBatchRejected):
		result = telemetry.ResultRejected
	default:
		result = telemetry.ResultError
	}

	attrs := metric.WithAttributes(
		telemetry.AttrKind.String(c.kind.Name),
		telemetry.AttrResult.String(result),
	)
	m.ReorderTotal.Add(ctx, 1, attrs)
	m.ReorderDuration.Record(ctx, time.Since(start).Seconds(), attrs)
}

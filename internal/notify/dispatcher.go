package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type OutboxStore interface {
	PendingOutbox(ctx context.Context, maxAttempts int, limit int) ([]models.OutboxEvent, error)
	MarkDelivered(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) error
}

type Options struct {
	PollInterval time.Duration
	MaxAttempts  int
	BatchSize    int
}

// Dispatcher drains the outbox in the background. Failures stay inside the
// worker: they are logged and retried, never returned to whoever enqueued.
type Dispatcher struct {
	store OutboxStore
	sinks []Sink
	log   *zap.Logger
	opts  Options

	wake chan struct{}
	stop chan struct{}
	done chan struct{}

	startOnce sync.Once
	stopOnce  sync.Once
}

func NewDispatcher(
	store OutboxStore,
	log *zap.Logger,
	opts Options,
	sinks ...Sink,
) *Dispatcher {
	if opts.PollInterval <= 0 {
		opts.PollInterval = 2 * time.Second
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 5
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 50
	}

	return &Dispatcher{
		store: store,
		sinks: sinks,
		log:   log,
		opts:  opts,
		wake:  make(chan struct{}, 1),
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
}

func (d *Dispatcher) Start() {
	d.startOnce.Do(func() {
		go d.worker()
	})
}

// Wake asks the worker to look at the outbox now. It never blocks.
func (d *Dispatcher) Wake() {
	select {
	case d.wake <- struct{}{}:
	default:
		// a wake-up is already pending
	}
}

// Stop makes one final pass over the outbox and waits for the worker to exit.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		close(d.stop)
	})
	d.startOnce.Do(func() {
		close(d.done)
	})
	<-d.done
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	ticker := time.NewTicker(d.opts.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-d.stop:
			d.flushLogged(context.Background())
			return
		case <-d.wake:
		case <-ticker.C:
		}
		d.flushLogged(context.Background())
	}
}

func (d *Dispatcher) flushLogged(ctx context.Context) {
	if _, err := d.Flush(ctx); err != nil {
		d.log.Error("notify: load outbox", zap.Error(err))
	}
}

// Flush delivers every pending event once and reports how many were delivered.
func (d *Dispatcher) Flush(ctx context.Context) (int, error) {
	delivered := 0
	seen := make(map[uuid.UUID]bool)

	for {
		batch, err := d.store.PendingOutbox(ctx, d.opts.MaxAttempts, d.opts.BatchSize)
		if err != nil {
			return delivered, err
		}

		progressed := false
		for _, ev := range batch {
			if seen[ev.ID] {
				continue
			}
			seen[ev.ID] = true
			progressed = true

			if d.deliver(ctx, ev) {
				delivered++
			}
		}

		if !progressed || len(batch) < d.opts.BatchSize {
			return delivered, nil
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, ev models.OutboxEvent) bool {
	var errs []error
	for _, s := range d.sinks {
		if err := s.Deliver(ctx, ev); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		fields := []zap.Field{
			zap.String("event_id", ev.ID.String()),
			zap.String("type", ev.Type),
			zap.Int("attempt", ev.Attempts+1),
			zap.Error(err),
		}
		if ev.Attempts+1 >= d.opts.MaxAttempts {
			d.log.Error("notify: giving up on event", fields...)
		} else {
			d.log.Warn("notify: delivery failed", fields...)
		}

		if mErr := d.store.MarkFailed(ctx, ev.ID, err.Error()); mErr != nil {
			d.log.Error("notify: record failure", zap.String("event_id", ev.ID.String()), zap.Error(mErr))
		}
		return false
	}

	if err := d.store.MarkDelivered(ctx, ev.ID, time.Now().UTC()); err != nil {
		d.log.Error("notify: mark delivered", zap.String("event_id", ev.ID.String()), zap.Error(err))
		return false
	}
	return true
}

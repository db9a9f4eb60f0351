// Package driver runs the periodic recomputation loop.
//
// Each tick runs a completion scan over all timers and recalculates the
// display of the selected timer, then hands the resulting frame to a sink.
// Stop guarantees that no tick is delivered after it returns.
package driver

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/overtime-timer/overtime-go/pkg/collection"
)

// Interval limits.
const (
	DefaultInterval = 100 * time.Millisecond
	MinInterval     = 10 * time.Millisecond
	MaxInterval     = time.Second
)

// Driver errors.
var (
	ErrAlreadyStarted  = errors.New("driver already started")
	ErrInvalidInterval = errors.New("invalid tick interval")
)

// Ticker is the part of collection.Manager the driver needs.
type Ticker interface {
	Tick() collection.Frame
}

// Sink receives one frame per tick.
type Sink func(collection.Frame)

// Driver ticks a Ticker on a fixed interval.
type Driver struct {
	mu       sync.Mutex
	ticker   Ticker
	sink     Sink
	interval time.Duration
	logger   *slog.Logger

	started bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// New creates a Driver. A zero interval selects DefaultInterval.
func New(t Ticker, interval time.Duration, sink Sink, logger *slog.Logger) (*Driver, error) {
	if interval == 0 {
		interval = DefaultInterval
	}
	if interval < MinInterval || interval > MaxInterval {
		return nil, ErrInvalidInterval
	}
	if sink == nil {
		sink = func(collection.Frame) {}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Driver{
		ticker:   t,
		sink:     sink,
		interval: interval,
		logger:   logger.With("component", "driver"),
	}, nil
}

// Interval returns the tick interval.
func (d *Driver) Interval() time.Duration {
	return d.interval
}

// Start delivers one tick immediately and then one per interval until ctx
// is done or Stop is called. A Driver can only be started once.
//
// The first tick runs on the caller's goroutine with no lock held, so its
// sink may call Done or Stop.
func (d *Driver) Start(ctx context.Context) error {
	d.mu.Lock()
	if d.started {
		d.mu.Unlock()
		return ErrAlreadyStarted
	}
	d.started = true

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	d.cancel, d.done = cancel, done
	d.mu.Unlock()

	first := make(chan struct{})
	go d.run(ctx, done, first)

	if ctx.Err() == nil {
		d.sink(d.ticker.Tick())
	}
	close(first)

	d.logger.Debug("started", "interval", d.interval)
	return nil
}

// run waits for the first tick to finish, then ticks until ctx is done.
func (d *Driver) run(ctx context.Context, done, first chan struct{}) {
	defer close(done)

	select {
	case <-ctx.Done():
		return
	case <-first:
	}

	t := time.NewTicker(d.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			// A tick racing with cancellation is dropped.
			if ctx.Err() != nil {
				return
			}
			d.sink(d.ticker.Tick())
		}
	}
}

// Stop cancels the loop and waits for it to exit. It is safe to call
// multiple times and before Start. A sink must not call Stop from a
// periodic tick, which runs on the loop goroutine; cancel the context
// passed to Start instead.
func (d *Driver) Stop() {
	d.mu.Lock()
	cancel, done := d.cancel, d.done
	d.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done

	d.logger.Debug("stopped")
}

// Done returns a channel closed when the loop has exited, or nil before
// Start.
func (d *Driver) Done() <-chan struct{} {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.done
}

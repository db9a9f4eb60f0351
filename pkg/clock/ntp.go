package clock

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/beevik/ntp"
)

// NTP defaults.
const (
	// DefaultSyncInterval is how often the offset is refreshed.
	DefaultSyncInterval = 10 * time.Minute

	// MinSyncInterval is the shortest accepted refresh interval.
	MinSyncInterval = 5 * time.Second

	// AllowedOffsetDrift is the change below which a new offset is ignored.
	AllowedOffsetDrift = 500 * time.Millisecond
)

// ErrNoServer is returned when NTP is configured without a server.
var ErrNoServer = errors.New("ntp server not set")

// QueryFunc queries an NTP server. It matches ntp.Query.
type QueryFunc func(host string) (*ntp.Response, error)

// NTP is the system clock corrected by an offset obtained from an NTP
// server. A failed query keeps the previous offset.
type NTP struct {
	mu       sync.RWMutex
	server   string
	interval time.Duration
	offset   time.Duration
	query    QueryFunc
	logger   *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewNTP creates an NTP clock for server. Call Start to begin syncing.
func NewNTP(server string, interval time.Duration, logger *slog.Logger) (*NTP, error) {
	if server == "" {
		return nil, ErrNoServer
	}
	if interval == 0 {
		interval = DefaultSyncInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	if interval < MinSyncInterval {
		logger.Warn("ntp sync interval too short", "interval", interval, "min", MinSyncInterval)
		interval = MinSyncInterval
	}

	return &NTP{
		server:   server,
		interval: interval,
		query:    ntp.Query,
		logger:   logger.With("component", "ntp", "server", server),
	}, nil
}

// SetQueryFunc replaces the NTP query function (used in tests).
func (c *NTP) SetQueryFunc(fn QueryFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = fn
}

// Now returns the corrected time.
func (c *NTP) Now() time.Time {
	return time.Now().Add(c.Offset())
}

// Offset returns the current correction.
func (c *NTP) Offset() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.offset
}

// Start runs one synchronous sync and then refreshes in the background
// until ctx is done or Stop is called.
func (c *NTP) Start(ctx context.Context) {
	c.Sync()

	ctx, cancel := context.WithCancel(ctx)
	c.mu.Lock()
	c.cancel = cancel
	c.done = make(chan struct{})
	done := c.done
	c.mu.Unlock()

	go func() {
		defer close(done)

		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.Sync()
			}
		}
	}()
}

// Stop ends background syncing and waits for it to finish.
func (c *NTP) Stop() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.cancel, c.done = nil, nil
	c.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Sync queries the server once and updates the offset.
func (c *NTP) Sync() {
	c.mu.RLock()
	query := c.query
	c.mu.RUnlock()

	resp, err := query(c.server)
	if err != nil {
		c.logger.Warn("ntp query failed", "error", err)
		return
	}
	if err := resp.Validate(); err != nil {
		c.logger.Warn("ntp response invalid", "error", err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	diff := c.offset - resp.ClockOffset
	if c.offset != 0 && diff < AllowedOffsetDrift && diff > -AllowedOffsetDrift {
		return
	}
	c.offset = resp.ClockOffset
	c.logger.Debug("ntp offset updated", "offset", c.offset)
}

// Compile-time interface satisfaction check.
var _ Clock = (*NTP)(nil)

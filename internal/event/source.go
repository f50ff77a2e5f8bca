package event

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mobil-koeln/fahrinfo/internal/clock"
)

const (
	DefaultTickRate        = 250 * time.Millisecond
	DefaultRefreshInterval = 60 * time.Second
)

// Source owns the event queue and the two periodic producers feeding it.
// Key presses arrive through SendKey from whatever reads the terminal.
type Source struct {
	queue           *Queue
	clock           clock.Clock
	tickRate        time.Duration
	refreshInterval time.Duration
	logger          *slog.Logger
}

// SourceOption configures a Source
type SourceOption func(*Source)

// WithClock sets the time source for both producers
func WithClock(c clock.Clock) SourceOption {
	return func(s *Source) { s.clock = c }
}

// WithTickRate sets the tick cadence. Zero disables ticks.
func WithTickRate(d time.Duration) SourceOption {
	return func(s *Source) { s.tickRate = d }
}

// WithRefreshInterval sets how often a reload is injected. Zero disables it.
func WithRefreshInterval(d time.Duration) SourceOption {
	return func(s *Source) { s.refreshInterval = d }
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) SourceOption {
	return func(s *Source) { s.logger = l }
}

// NewSource creates a Source with an empty queue
func NewSource(opts ...SourceOption) *Source {
	s := &Source{
		queue:           NewQueue(),
		clock:           clock.Real(),
		tickRate:        DefaultTickRate,
		refreshInterval: DefaultRefreshInterval,
		logger:          slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SendKey enqueues a key press
func (s *Source) SendKey(k Key) error {
	return s.queue.Send(KeyEvent(k))
}

// Next blocks until the next event. ErrClosed means the producers are gone
// and no more events will ever arrive.
func (s *Source) Next(ctx context.Context) (Event, error) {
	return s.queue.Next(ctx)
}

// Run drives the producers until ctx ends, then closes the queue.
func (s *Source) Run(ctx context.Context) error {
	defer s.queue.Close()

	g, ctx := errgroup.WithContext(ctx)
	if s.tickRate > 0 {
		g.Go(func() error {
			return s.every(ctx, s.tickRate, TickEvent())
		})
	}
	if s.refreshInterval > 0 {
		g.Go(func() error {
			return s.every(ctx, s.refreshInterval, KeyEvent(Reload))
		})
	}

	s.logger.Debug("event source started", "tick_rate", s.tickRate, "refresh_interval", s.refreshInterval)
	err := g.Wait()
	s.logger.Debug("event source stopped", "error", err)
	return err
}

// every sends e once per interval. It stops quietly when ctx ends and with
// ErrClosed if the queue was closed under it.
func (s *Source) every(ctx context.Context, interval time.Duration, e Event) error {
	t := s.clock.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			if err := s.queue.Send(e); err != nil {
				return err
			}
		}
	}
}

package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"

	"github.com/mobil-koeln/fahrinfo/internal/clock"
	"github.com/mobil-koeln/fahrinfo/internal/event"
	"github.com/mobil-koeln/fahrinfo/internal/models"
	"github.com/mobil-koeln/fahrinfo/internal/search"
)

// Provider fetches departure boards. *api.Client implements it.
type Provider interface {
	ListDepartures(ctx context.Context, stationID string) ([]models.Departure, error)
}

// Machine applies events to a State. It is not safe for concurrent use;
// the main loop is its only caller.
type Machine struct {
	state    State
	provider Provider
	keys     KeyMap
	matcher  *search.Matcher
	clock    clock.Clock
	logger   *slog.Logger
}

// Option configures a Machine
type Option func(*Machine)

// WithClock sets the clock used for "last refreshed" and snapshots
func WithClock(c clock.Clock) Option {
	return func(m *Machine) { m.clock = c }
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(m *Machine) { m.logger = l }
}

// WithKeyMap replaces the default bindings
func WithKeyMap(k KeyMap) Option {
	return func(m *Machine) { m.keys = k }
}

// WithStatus sets the initial status message
func WithStatus(s string) Option {
	return func(m *Machine) { m.state.status = s }
}

// NewMachine starts in Normal mode with nothing selected. The first frame
// is always painted, so the redraw flag starts set.
func NewMachine(catalog []models.Station, provider Provider, opts ...Option) *Machine {
	m := &Machine{
		state: State{
			tab:     TabStations,
			catalog: catalog,
			redraw:  true,
		},
		provider: provider,
		keys:     DefaultKeyMap(),
		matcher:  search.NewMatcher(),
		clock:    clock.Real(),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Terminated reports whether a quit key was handled
func (m *Machine) Terminated() bool { return m.state.quit }

// NeedsRedraw reports whether the screen is stale
func (m *Machine) NeedsRedraw() bool { return m.state.redraw }

// ClearRedraw is called after a frame has been handed to the renderer
func (m *Machine) ClearRedraw() { m.state.redraw = false }

// Snapshot returns a copy of the state for rendering
func (m *Machine) Snapshot() Snapshot { return m.state.snapshot(m.clock.Now()) }

// Handle applies one event. Transitions that change nothing leave the
// redraw flag alone.
func (m *Machine) Handle(ctx context.Context, e event.Event) {
	if e.Kind != event.KeyPress {
		return
	}

	if m.state.search != nil {
		m.handleSearch(ctx, e.Key)
		return
	}
	m.handleNormal(ctx, e.Key)
}

func (m *Machine) handleNormal(ctx context.Context, k event.Key) {
	s := &m.state

	switch {
	case key.Matches(k, m.keys.Quit):
		s.quit = true

	case key.Matches(k, m.keys.Tab):
		s.tab = s.tab.toggle()
		s.redraw = true

	case key.Matches(k, m.keys.Down):
		if s.stations.Advance(len(s.catalog)) {
			s.redraw = true
		}

	case key.Matches(k, m.keys.Up):
		if s.stations.Retreat(len(s.catalog)) {
			s.redraw = true
		}

	case key.Matches(k, m.keys.Enter):
		i, ok := s.stations.Index()
		if !ok {
			return
		}
		m.selectStation(ctx, s.catalog[i])

	case key.Matches(k, m.keys.Reload):
		m.reload(ctx)

	case key.Matches(k, m.keys.Search):
		s.search = &searchState{results: m.matcher.Filter(s.catalog, "")}
		s.redraw = true
	}
}

func (m *Machine) handleSearch(ctx context.Context, k event.Key) {
	s := &m.state
	q := s.search

	switch {
	case key.Matches(k, m.keys.ForceQuit):
		s.quit = true

	case key.Matches(k, m.keys.Cancel):
		s.search = nil
		s.redraw = true

	case key.Matches(k, m.keys.Select):
		i, ok := q.selection.Index()
		if !ok {
			return
		}
		st := q.results[i]
		s.search = nil
		m.selectStation(ctx, st)

	case key.Matches(k, m.keys.Next):
		if q.selection.Advance(len(q.results)) {
			s.redraw = true
		}

	case key.Matches(k, m.keys.Prev):
		if q.selection.Retreat(len(q.results)) {
			s.redraw = true
		}

	case key.Matches(k, m.keys.Backspace):
		if q.cursor == 0 {
			return
		}
		q.query = append(q.query[:q.cursor-1], q.query[q.cursor:]...)
		q.cursor--
		m.refilter()

	case key.Matches(k, m.keys.Delete):
		if q.cursor == len(q.query) {
			return
		}
		q.query = append(q.query[:q.cursor], q.query[q.cursor+1:]...)
		m.refilter()

	case key.Matches(k, m.keys.Left):
		m.moveCursor(q.cursor - 1)

	case key.Matches(k, m.keys.Right):
		m.moveCursor(q.cursor + 1)

	case key.Matches(k, m.keys.Home):
		m.moveCursor(0)

	case key.Matches(k, m.keys.End):
		m.moveCursor(len(q.query))

	case k.Printable():
		q.query = append(q.query[:q.cursor], append([]rune{k.Rune}, q.query[q.cursor:]...)...)
		q.cursor++
		m.refilter()
	}
}

// refilter recomputes the results from scratch and drops the result
// selection, so the index can never point past a shorter list.
func (m *Machine) refilter() {
	q := m.state.search
	q.results = m.matcher.Filter(m.state.catalog, string(q.query))
	q.selection.Reset()
	m.state.redraw = true
}

func (m *Machine) moveCursor(to int) {
	q := m.state.search
	to = max(0, min(to, len(q.query)))
	if to == q.cursor {
		return
	}
	q.cursor = to
	m.state.redraw = true
}

// selectStation makes st the current station, loads its board and shows it
func (m *Machine) selectStation(ctx context.Context, st models.Station) {
	s := &m.state
	cp := st.Clone()
	s.selected = &cp
	s.tab = TabDepartures
	m.fetchDepartures(ctx)
	s.redraw = true
}

func (m *Machine) reload(ctx context.Context) {
	s := &m.state
	if s.selected == nil {
		if s.status == statusNoStation {
			return
		}
		s.status = statusNoStation
		s.redraw = true
		return
	}
	m.fetchDepartures(ctx)
	s.redraw = true
}

const statusNoStation = "No station selected"

// fetchDepartures replaces the board of the selected station. A failure
// leaves an empty board and a status message; it is never fatal.
func (m *Machine) fetchDepartures(ctx context.Context) {
	s := &m.state
	st := s.selected

	deps, err := m.provider.ListDepartures(ctx, st.ID)
	if err != nil {
		m.logger.Warn("departure fetch failed", "station", st.ID, "error", err)
		s.departures = nil
		s.status = fmt.Sprintf("Failed to load departures for %s: %v", st.Name, err)
		return
	}

	s.departures = deps
	s.lastRefreshed = m.clock.Now()
	s.status = fmt.Sprintf("%d departures from %s", len(deps), st.Name)
	m.logger.Debug("departures loaded", "station", st.ID, "count", len(deps))
}

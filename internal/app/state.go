// Package app owns the dashboard state and the transition function that
// applies one event at a time to it.
package app

import (
	"time"

	"github.com/mobil-koeln/fahrinfo/internal/models"
	"github.com/mobil-koeln/fahrinfo/internal/selection"
)

// Tab is the top-level view
type Tab int

const (
	TabDepartures Tab = iota
	TabStations
)

func (t Tab) String() string {
	if t == TabStations {
		return "Stations"
	}
	return "Departures"
}

func (t Tab) toggle() Tab {
	if t == TabStations {
		return TabDepartures
	}
	return TabStations
}

// Mode decides how key presses are interpreted
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
)

func (m Mode) String() string {
	if m == ModeSearch {
		return "SEARCH"
	}
	return "NORMAL"
}

// searchState exists only while the mode is Search
type searchState struct {
	query     []rune
	cursor    int // in runes, 0..len(query)
	results   []models.Station
	selection selection.State
}

// State is everything the dashboard knows. Only the goroutine running the
// main loop touches it.
type State struct {
	tab           Tab
	catalog       []models.Station // loaded once, never mutated
	stations      selection.State
	selected      *models.Station
	departures    []models.Departure
	search        *searchState
	status        string
	lastRefreshed time.Time
	redraw        bool
	quit          bool
}

// Mode is derived from the presence of search state
func (s *State) Mode() Mode {
	if s.search != nil {
		return ModeSearch
	}
	return ModeNormal
}

// Snapshot is a read-only copy of State for the presentation layer.
// Index fields are -1 when nothing is selected.
type Snapshot struct {
	Tab  Tab
	Mode Mode

	// Stations is the catalog itself. It is never mutated, so it is shared
	// rather than copied on every frame.
	Stations     []models.Station
	StationIndex int

	Selected   *models.Station
	Departures []models.Departure

	Query       string
	Cursor      int
	Results     []models.Station
	ResultIndex int

	Status        string
	LastRefreshed time.Time
	Now           time.Time
}

func (s *State) snapshot(now time.Time) Snapshot {
	snap := Snapshot{
		Tab:           s.tab,
		Mode:          s.Mode(),
		Stations:      s.catalog,
		StationIndex:  indexOf(&s.stations),
		ResultIndex:   -1,
		Status:        s.status,
		LastRefreshed: s.lastRefreshed,
		Now:           now,
	}

	if s.selected != nil {
		st := s.selected.Clone()
		snap.Selected = &st
	}

	snap.Departures = make([]models.Departure, len(s.departures))
	for i, d := range s.departures {
		snap.Departures[i] = d.Clone()
	}

	if s.search != nil {
		snap.Query = string(s.search.query)
		snap.Cursor = s.search.cursor
		snap.ResultIndex = indexOf(&s.search.selection)
		snap.Results = make([]models.Station, len(s.search.results))
		for i, st := range s.search.results {
			snap.Results[i] = st.Clone()
		}
	}

	return snap
}

func indexOf(sel *selection.State) int {
	if i, ok := sel.Index(); ok {
		return i
	}
	return -1
}

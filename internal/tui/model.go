package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mobil-koeln/fahrinfo/internal/app"
	"github.com/mobil-koeln/fahrinfo/internal/event"
)

// KeySink receives translated key presses. *event.Source implements it.
type KeySink interface {
	SendKey(event.Key) error
}

// Model is the root Bubble Tea model. It holds no application state of
// its own: it forwards keys to the event queue and draws the most recent
// frame the main loop handed over.
type Model struct {
	sink  KeySink
	keys  app.KeyMap
	help  help.Model
	frame *app.Snapshot

	width  int
	height int
}

// New creates a Model that forwards key presses to sink
func New(sink KeySink, keys app.KeyMap) Model {
	return Model{
		sink: sink,
		keys: keys,
		help: help.New(),
	}
}

// Init has nothing to start: ticks and refreshes come from the event source.
func (m Model) Init() tea.Cmd {
	return nil
}

package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mobil-koeln/fahrinfo/internal/event"
)

// Update stores frames and window sizes and forwards key presses. It never
// interprets keys: that is the state machine's job.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		snap := msg.snap
		m.frame = &snap
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	for _, k := range translateKey(msg) {
		if err := m.sink.SendKey(k); err != nil {
			if errors.Is(err, event.ErrClosed) {
				return m, tea.Quit
			}
			return m, nil
		}
	}
	return m, nil
}

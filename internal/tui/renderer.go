package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mobil-koeln/fahrinfo/internal/app"
)

// Sender is the part of *tea.Program the renderer needs
type Sender interface {
	Send(tea.Msg)
}

// ProgramRenderer hands frames from the main loop to a running program
type ProgramRenderer struct {
	program Sender
}

// NewProgramRenderer wraps p
func NewProgramRenderer(p Sender) *ProgramRenderer {
	return &ProgramRenderer{program: p}
}

// Render implements app.Renderer
func (r *ProgramRenderer) Render(s app.Snapshot) {
	r.program.Send(frameMsg{snap: s})
}

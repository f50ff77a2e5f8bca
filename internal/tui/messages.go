package tui

import "github.com/mobil-koeln/fahrinfo/internal/app"

// frameMsg carries a new frame from the main loop
type frameMsg struct {
	snap app.Snapshot
}

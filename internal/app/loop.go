package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/mobil-koeln/fahrinfo/internal/event"
)

// Events is the ordered stream the loop consumes. *event.Source implements it.
type Events interface {
	Next(ctx context.Context) (event.Event, error)
}

// Renderer receives a frame whenever the redraw flag is set. It must not
// block for long: the loop waits for it.
type Renderer interface {
	Render(Snapshot)
}

// Run paints the first frame, then applies events one at a time until a
// quit key is handled. Blocking on events.Next is the only suspension
// point; fetches run inline. A closed event stream is fatal.
func Run(ctx context.Context, m *Machine, events Events, r Renderer) error {
	paint(m, r)

	for {
		e, err := events.Next(ctx)
		if err != nil {
			if errors.Is(err, event.ErrClosed) {
				m.logger.Error("event stream closed")
				return fmt.Errorf("main loop: %w", err)
			}
			return err
		}

		if e.Kind == event.KeyPress {
			m.logger.Debug("event", "key", e.Key.String(), "mode", m.state.Mode())
		}
		m.Handle(ctx, e)

		if m.Terminated() {
			return nil
		}
		if m.NeedsRedraw() {
			paint(m, r)
		}
	}
}

func paint(m *Machine, r Renderer) {
	r.Render(m.Snapshot())
	m.ClearRedraw()
}

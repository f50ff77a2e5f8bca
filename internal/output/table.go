package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mobil-koeln/fahrinfo/internal/models"
)

// TableOptions configures the table output
type TableOptions struct {
	Colors       *Colors
	ShowMessages bool
	// Now is the reference for the minutes column; zero means time.Now()
	Now time.Time
}

func (o TableOptions) colors() *Colors {
	if o.Colors == nil {
		return NewColors(ColorNever)
	}
	return o.Colors
}

// RenderDepartures renders a departure board as a formatted table
func RenderDepartures(w io.Writer, departures []models.Departure, opts TableOptions) {
	if len(departures) == 0 {
		_, _ = fmt.Fprintln(w, "No departures found.")
		return
	}

	c := opts.colors()
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	for i := range departures {
		dep := &departures[i]

		timeStr := dep.EffectiveTime().Local().Format("15:04")

		delayStr := "    "
		if dep.RealtimeAvailable {
			delayStr = c.FormatDelay(dep.DelayMinutes)
		}

		// Line label (truncate/pad to 6 chars)
		line := dep.Label
		if len(line) > 6 {
			line = line[:6]
		}
		lineStr := fmt.Sprintf("%-6s", line)

		// Platform (fixed 7-char width: "Pl.XXX" or spaces)
		platformStr := "       "
		if dep.Platform != nil {
			platformStr = fmt.Sprintf("Pl.%-3d ", *dep.Platform)
		}

		minutes := fmt.Sprintf("%3d min", dep.MinutesUntil(now))

		dest := dep.Destination
		if dep.Cancelled {
			dest = c.Canceled("%s [CANCELED]", dest)
			minutes = "       "
		}

		// TIME DELAY LINE  PLATFORM  MIN  DEST
		_, _ = fmt.Fprintf(w, "%s %s  %s  %s %s  %s\n",
			c.Time(timeStr),
			delayStr,
			c.Line(lineStr),
			c.Platform(platformStr),
			minutes,
			dest,
		)

		if opts.ShowMessages {
			for _, msg := range dep.Messages {
				_, _ = fmt.Fprintf(w, "                              %s\n", c.Message("! %s", msg))
			}
		}
	}
}

// RenderStations renders stations as a formatted list
func RenderStations(w io.Writer, stations []models.Station, opts TableOptions) {
	if len(stations) == 0 {
		_, _ = fmt.Fprintln(w, "No stations found.")
		return
	}

	c := opts.colors()

	_, _ = fmt.Fprintln(w, c.Header("Found stations:"))
	_, _ = fmt.Fprintln(w)

	for i := range stations {
		st := &stations[i]
		name := c.Station(st.Name)
		if zones := st.Zones(); len(zones) > 0 {
			name += " " + c.Zone("(%s)", strings.Join(zones, ","))
		}
		_, _ = fmt.Fprintf(w, "  %s\n", name)
		if st.Place != "" && st.Place != st.Name {
			_, _ = fmt.Fprintf(w, "    %s %s\n", c.Muted("Place:"), st.Place)
		}
		if len(st.Products) > 0 {
			_, _ = fmt.Fprintf(w, "    %s %s\n", c.Muted("Lines:"), strings.Join(st.Products, ", "))
		}
		_, _ = fmt.Fprintf(w, "    %s fahrinfo departures %s\n", c.Muted("Use:"), st.ID)
		_, _ = fmt.Fprintln(w)
	}
}

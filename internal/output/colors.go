package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorMode represents the color output mode
type ColorMode int

const (
	// ColorAuto enables colors if output is a TTY
	ColorAuto ColorMode = iota
	// ColorAlways forces colors on
	ColorAlways
	// ColorNever disables colors
	ColorNever
)

func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	}
	return "auto"
}

type colorFunc func(format string, a ...interface{}) string

// Colors holds the color functions for the plain-terminal commands
type Colors struct {
	Time      colorFunc
	Delay     colorFunc
	DelayHigh colorFunc
	OnTime    colorFunc
	Line      colorFunc
	Platform  colorFunc
	Canceled  colorFunc
	Message   colorFunc
	Station   colorFunc
	Zone      colorFunc
	Header    colorFunc
	Muted     colorFunc
}

// NewColors creates a Colors instance for stdout based on the color mode
func NewColors(mode ColorMode) *Colors {
	return newColors(mode, os.Stdout)
}

func newColors(mode ColorMode, out *os.File) *Colors {
	useColors := false
	switch mode {
	case ColorAlways:
		useColors = true
		color.NoColor = false
	case ColorNever:
		useColors = false
	case ColorAuto:
		useColors = isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())
	}

	if !useColors {
		noColor := func(format string, a ...interface{}) string {
			if len(a) == 0 {
				return format
			}
			return fmt.Sprintf(format, a...)
		}
		return &Colors{
			Time:      noColor,
			Delay:     noColor,
			DelayHigh: noColor,
			OnTime:    noColor,
			Line:      noColor,
			Platform:  noColor,
			Canceled:  noColor,
			Message:   noColor,
			Station:   noColor,
			Zone:      noColor,
			Header:    noColor,
			Muted:     noColor,
		}
	}

	return &Colors{
		Time:      color.New(color.FgWhite, color.Bold).SprintfFunc(),
		Delay:     color.New(color.FgYellow).SprintfFunc(),
		DelayHigh: color.New(color.FgRed, color.Bold).SprintfFunc(),
		OnTime:    color.New(color.FgGreen).SprintfFunc(),
		Line:      color.New(color.FgCyan, color.Bold).SprintfFunc(),
		Platform:  color.New(color.FgMagenta).SprintfFunc(),
		Canceled:  color.New(color.FgRed, color.Bold).SprintfFunc(),
		Message:   color.New(color.FgYellow).SprintfFunc(),
		Station:   color.New(color.FgCyan).SprintfFunc(),
		Zone:      color.New(color.FgHiBlack).SprintfFunc(),
		Header:    color.New(color.FgWhite, color.Bold).SprintfFunc(),
		Muted:     color.New(color.FgHiBlack).SprintfFunc(),
	}
}

// FormatDelay formats a delay value with appropriate color (fixed 4-char width)
func (c *Colors) FormatDelay(delay int) string {
	if delay == 0 {
		return "    "
	}
	if delay > 0 {
		if delay >= 10 {
			return c.DelayHigh("%+4d", delay)
		}
		return c.Delay("%+4d", delay)
	}
	return c.OnTime("%4d", delay)
}

// ParseColorMode parses a color mode string
func ParseColorMode(s string) ColorMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "always":
		return ColorAlways
	case "never":
		return ColorNever
	default:
		return ColorAuto
	}
}

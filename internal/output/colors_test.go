package output

import (
	"fmt"
	"os"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/fatih/color"

	"github.com/mobil-koeln/fahrinfo/internal/testutil"
)

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		input string
		want  ColorMode
	}{
		{"always", ColorAlways},
		{"ALWAYS", ColorAlways},
		{"never", ColorNever},
		{" never ", ColorNever},
		{"auto", ColorAuto},
		{"", ColorAuto},
		{"invalid", ColorAuto},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseColorMode(tt.input)
			testutil.AssertEqual(t, got, tt.want)
			if tt.input == tt.want.String() {
				testutil.AssertEqual(t, ParseColorMode(got.String()), got)
			}
		})
	}
}

func TestNewColors_NeverMode(t *testing.T) {
	oldNoColor := color.NoColor
	defer func() { color.NoColor = oldNoColor }()
	color.NoColor = true

	c := NewColors(ColorNever)

	testutil.AssertEqual(t, c.Time("15:04"), "15:04")
	testutil.AssertEqual(t, c.Delay("+2"), "+2")
	testutil.AssertEqual(t, c.Line("U2"), "U2")
	testutil.AssertEqual(t, c.Platform("Pl.2"), "Pl.2")
	testutil.AssertEqual(t, c.Canceled("CANCELED"), "CANCELED")
	testutil.AssertEqual(t, c.Message("! Aufzug defekt"), "! Aufzug defekt")
	testutil.AssertEqual(t, c.Station("Hauptbahnhof"), "Hauptbahnhof")
	testutil.AssertEqual(t, c.Zone("(m)"), "(m)")
	testutil.AssertEqual(t, c.Header("Departures"), "Departures")
	testutil.AssertEqual(t, c.Muted("details"), "details")
}

func TestNewColors_AlwaysMode(t *testing.T) {
	oldNoColor := color.NoColor
	defer func() { color.NoColor = oldNoColor }()

	c := NewColors(ColorAlways)

	result := c.Time("15:04")
	testutil.AssertContains(t, result, "\033[")
	testutil.AssertEqual(t, ansi.Strip(result), "15:04")

	result = c.Line("S8")
	testutil.AssertContains(t, result, "\033[")
	testutil.AssertEqual(t, ansi.Strip(result), "S8")
}

func TestNewColors_AutoModeNotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	testutil.AssertNil(t, err)
	defer func() { _ = f.Close() }()

	c := newColors(ColorAuto, f)
	testutil.AssertEqual(t, c.Time("15:04"), "15:04")
}

func TestFormatDelay_NoColor(t *testing.T) {
	c := NewColors(ColorNever)

	tests := []struct {
		name  string
		delay int
		want  string
	}{
		{"zero delay", 0, "    "},
		{"minor delay", 5, "  +5"},
		{"major delay", 12, " +12"},
		{"early", -3, "  -3"},
		{"large delay", 123, "+123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, c.FormatDelay(tt.delay), tt.want)
		})
	}
}

func TestFormatDelay_WithColor(t *testing.T) {
	oldNoColor := color.NoColor
	defer func() { color.NoColor = oldNoColor }()

	c := NewColors(ColorAlways)

	for _, delay := range []int{-3, 0, 5, 12, 99} {
		t.Run(fmt.Sprint(delay), func(t *testing.T) {
			got := c.FormatDelay(delay)
			testutil.AssertEqual(t, len(ansi.Strip(got)), 4)
			if delay == 0 {
				testutil.AssertNotContains(t, got, "\033[")
			} else {
				testutil.AssertContains(t, got, "\033[")
			}
		})
	}
}

func TestColors_Sprintf(t *testing.T) {
	c := NewColors(ColorNever)

	testutil.AssertEqual(t, c.Time("%02d:%02d", 14, 30), "14:30")
	testutil.AssertEqual(t, c.Platform("Pl.%d", 2), "Pl.2")
	testutil.AssertEqual(t, c.Zone("(%s)", "m,1"), "(m,1)")
}

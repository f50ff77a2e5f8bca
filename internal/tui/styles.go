package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan    = lipgloss.Color("6")
	colorYellow  = lipgloss.Color("3")
	colorRed     = lipgloss.Color("1")
	colorGreen   = lipgloss.Color("2")
	colorMagenta = lipgloss.Color("5")
	colorWhite   = lipgloss.Color("15")
	colorGray    = lipgloss.Color("8")
	colorBlack   = lipgloss.Color("0")
)

var (
	styleTime      = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	styleDelay     = lipgloss.NewStyle().Foreground(colorYellow)
	styleDelayHigh = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	styleOnTime    = lipgloss.NewStyle().Foreground(colorGreen)
	stylePlatform  = lipgloss.NewStyle().Foreground(colorMagenta)
	styleCanceled  = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	styleMuted     = lipgloss.NewStyle().Foreground(colorGray)
	styleHeader    = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	styleError     = lipgloss.NewStyle().Foreground(colorRed)
	styleLogo      = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
)

var (
	stylePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray)

	styleModal = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorCyan).
			Padding(0, 1)
)

var (
	styleTabActive   = lipgloss.NewStyle().Foreground(colorBlack).Background(colorCyan).Bold(true).Padding(0, 1)
	styleTabInactive = lipgloss.NewStyle().Foreground(colorGray).Padding(0, 1)
)

var styleSelected = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)

// Text cursor inside the search query
var styleCursor = lipgloss.NewStyle().Reverse(true)

var styleStatusBar = lipgloss.NewStyle().
	Foreground(colorGray).
	Background(colorBlack)

var (
	styleModeNormal = lipgloss.NewStyle().Foreground(colorBlack).Background(colorGreen).Bold(true).Padding(0, 1)
	styleModeSearch = lipgloss.NewStyle().Foreground(colorBlack).Background(colorYellow).Bold(true).Padding(0, 1)
)

var styleBadge = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#ffffff")).
	Bold(true).
	Padding(0, 1)

// MVG line colours
var (
	ubahnColors = map[string]lipgloss.Color{
		"U1": "#3c7235",
		"U2": "#a72d42",
		"U3": "#eb6720",
		"U4": "#01ab85",
		"U5": "#be7b00",
		"U6": "#0165af",
		"U7": "#4f832b",
		"U8": "#a72d43",
	}
	sbahnColors = map[string]lipgloss.Color{
		"S1": "#10c2e9",
		"S2": "#71c146",
		"S3": "#761971",
		"S4": "#761971",
		"S6": "#038b4f",
		"S7": "#973530",
		"S8": "#000000",
	}

	colorUbahnDefault = lipgloss.Color("#1d2b53")
	colorSbahnDefault = lipgloss.Color("#54fd54")
	colorBus          = lipgloss.Color("#115d6f")
	colorTram         = lipgloss.Color("#e71b1e")
	colorOther        = lipgloss.Color("#555555")
)

// lineColor returns the badge background for a line
func lineColor(transportType, label string) lipgloss.Color {
	switch strings.ToUpper(transportType) {
	case "UBAHN":
		if c, ok := ubahnColors[label]; ok {
			return c
		}
		return colorUbahnDefault
	case "SBAHN":
		if c, ok := sbahnColors[label]; ok {
			return c
		}
		return colorSbahnDefault
	case "BUS", "REGIONAL_BUS":
		return colorBus
	case "TRAM":
		return colorTram
	}
	return colorOther
}

func lineBadge(transportType, label string) string {
	return styleBadge.Background(lineColor(transportType, label)).Render(label)
}

// badgeProducts fixes the order of the station list badges
var badgeProducts = []string{"UBAHN", "SBAHN", "TRAM", "BUS", "BAHN", "SCHIFF"}

// productBadge is the short name shown in the station list
func productBadge(product string) string {
	switch strings.ToUpper(product) {
	case "UBAHN":
		return "U"
	case "SBAHN":
		return "S"
	case "TRAM":
		return "Tram"
	case "BUS", "REGIONAL_BUS":
		return "Bus"
	case "BAHN":
		return "Bahn"
	case "SCHIFF":
		return "Schiff"
	}
	return ""
}

// formatDelay returns a styled delay string (4-char width)
func formatDelay(delay int) string {
	if delay == 0 {
		return "    "
	}
	if delay > 0 {
		s := fmt.Sprintf("%+4d", delay)
		if delay >= 10 {
			return styleDelayHigh.Render(s)
		}
		return styleDelay.Render(s)
	}
	s := fmt.Sprintf("%4d", delay)
	return styleOnTime.Render(s)
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/mobil-koeln/fahrinfo/internal/app"
	"github.com/mobil-koeln/fahrinfo/internal/models"
)

const maxModalWidth = 64

// View renders the latest frame.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.frame == nil {
		return styleMuted.Render("Loading stations...")
	}
	snap := m.frame

	header := m.renderHeader(snap)
	statusBar := m.renderStatusBar(snap)

	panelHeight := m.height - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if panelHeight < 3 {
		panelHeight = 3
	}
	innerWidth := m.width - 2
	innerHeight := panelHeight - 2

	var body string
	switch {
	case snap.Mode == app.ModeSearch:
		body = renderSearch(snap, innerWidth, innerHeight)
	case snap.Tab == app.TabStations:
		body = renderStationList(snap, innerWidth, innerHeight)
	default:
		body = renderDepartureList(snap, innerWidth, innerHeight)
	}

	panel := stylePanel.
		Width(innerWidth).
		Height(innerHeight).
		Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, header, panel, statusBar)
}

// renderHeader renders the brand name and the tab strip.
func (m Model) renderHeader(snap *app.Snapshot) string {
	tabs := make([]string, 0, 2)
	for _, tab := range []app.Tab{app.TabDepartures, app.TabStations} {
		style := styleTabInactive
		if tab == snap.Tab {
			style = styleTabActive
		}
		tabs = append(tabs, style.Render(tab.String()))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		styleLogo.Render(" fahrinfo "),
		styleMuted.Render("│ "),
		strings.Join(tabs, " "),
	)
}

// renderStationList renders the whole catalog with the selected row marked.
func renderStationList(snap *app.Snapshot, width, height int) string {
	title := styleHeader.Render(fmt.Sprintf("STATIONS (%d)", len(snap.Stations)))
	if len(snap.Stations) == 0 {
		return title + "\n" + styleMuted.Render(" No stations loaded. Restart fahrinfo to try again.")
	}

	maxVisible := height - 1
	if maxVisible < 1 {
		maxVisible = 1
	}

	cursor := max(snap.StationIndex, 0)
	start, end := visibleRange(cursor, len(snap.Stations), maxVisible)

	var b strings.Builder
	b.WriteString(title)
	for i := start; i < end; i++ {
		b.WriteString("\n")
		b.WriteString(renderStationLine(&snap.Stations[i], width, i == snap.StationIndex))
	}
	return b.String()
}

// renderStationLine renders "name (zones)  U S Bus".
func renderStationLine(st *models.Station, width int, selected bool) string {
	name := st.Name
	if zones := st.Zones(); len(zones) > 0 {
		name += " " + styleMuted.Render("("+strings.Join(zones, ",")+")")
	}

	badges := make([]string, 0, len(badgeProducts))
	for _, p := range badgeProducts {
		if st.HasProduct(p) || (p == "BUS" && st.HasProduct("REGIONAL_BUS")) {
			badges = append(badges, productBadge(p))
		}
	}
	line := name
	if len(badges) > 0 {
		line += "  " + stylePlatform.Render(strings.Join(badges, " "))
	}

	if selected {
		return truncate(styleSelected.Render(" > ")+line, width)
	}
	return truncate("   "+line, width)
}

// renderDepartureList renders the board of the selected station.
func renderDepartureList(snap *app.Snapshot, width, height int) string {
	if snap.Selected == nil {
		return styleHeader.Render("DEPARTURES") + "\n" +
			styleMuted.Render(" No station selected. Press tab to pick one or s to search.")
	}

	title := styleHeader.Render("DEPARTURES  " + snap.Selected.Name)
	if len(snap.Departures) == 0 {
		return title + "\n" + styleMuted.Render(" No departures")
	}

	maxVisible := height - 1
	if maxVisible < 1 {
		maxVisible = 1
	}
	end := min(len(snap.Departures), maxVisible)

	var b strings.Builder
	b.WriteString(title)
	for i := 0; i < end; i++ {
		b.WriteString("\n")
		b.WriteString(renderDepartureLine(&snap.Departures[i], snap, width))
	}
	return b.String()
}

// renderDepartureLine renders a single departure entry.
func renderDepartureLine(dep *models.Departure, snap *app.Snapshot, width int) string {
	timeStr := dep.EffectiveTime().Local().Format("15:04")

	delayStr := formatDelay(dep.DelayMinutes)
	if !dep.RealtimeAvailable {
		delayStr = "    "
	}

	platformStr := "      "
	if dep.Platform != nil {
		platformStr = fmt.Sprintf("Pl.%-3d", *dep.Platform)
	}

	var whenStr string
	switch mins := dep.MinutesUntil(snap.Now); {
	case dep.Cancelled:
		whenStr = styleCanceled.Render("  [X]")
	case mins == 0:
		whenStr = styleOnTime.Render("  now")
	default:
		whenStr = fmt.Sprintf("%2d min", mins)
	}

	badge := lineBadge(dep.TransportType, dep.Label)
	badge += strings.Repeat(" ", max(0, 7-lipgloss.Width(badge)))

	dest := dep.Destination
	if dep.Cancelled {
		dest = styleCanceled.Render(dest)
	}

	fixed := fmt.Sprintf(" %s %s %s %s %s  ",
		styleTime.Render(timeStr),
		delayStr,
		badge,
		stylePlatform.Render(platformStr),
		whenStr,
	)
	return truncate(fixed+dest, width)
}

// renderSearch renders the search modal: query line and matching stations.
func renderSearch(snap *app.Snapshot, width, height int) string {
	modalWidth := min(maxModalWidth, width-4)
	if modalWidth < 10 {
		modalWidth = width
	}
	inner := modalWidth - 4

	var b strings.Builder
	b.WriteString(styleHeader.Render("Search: "))
	b.WriteString(renderQuery(snap.Query, snap.Cursor))

	maxVisible := height - 5
	if maxVisible < 1 {
		maxVisible = 1
	}

	switch {
	case len(snap.Results) == 0:
		b.WriteString("\n")
		b.WriteString(styleMuted.Render("No matching stations"))
	default:
		start, end := visibleRange(max(snap.ResultIndex, 0), len(snap.Results), maxVisible)
		for i := start; i < end; i++ {
			b.WriteString("\n")
			b.WriteString(renderStationLine(&snap.Results[i], inner, i == snap.ResultIndex))
		}
	}

	modal := styleModal.Width(modalWidth - 2).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, modal)
}

// renderQuery draws the query with a block cursor at the rune position.
func renderQuery(query string, cursor int) string {
	runes := []rune(query)
	cursor = max(0, min(cursor, len(runes)))

	under := " "
	rest := ""
	if cursor < len(runes) {
		under = string(runes[cursor])
		rest = string(runes[cursor+1:])
	}
	return string(runes[:cursor]) + styleCursor.Render(under) + rest
}

// renderStatusBar renders the mode indicator, status text, refresh time and key hints.
func (m Model) renderStatusBar(snap *app.Snapshot) string {
	modeStyle := styleModeNormal
	hints := m.keys.NormalHelp()
	if snap.Mode == app.ModeSearch {
		modeStyle = styleModeSearch
		hints = m.keys.SearchHelp()
	}
	mode := modeStyle.Render(snap.Mode.String())

	refreshed := "Last refreshed: never"
	if !snap.LastRefreshed.IsZero() {
		refreshed = "Last refreshed: " + snap.LastRefreshed.Local().Format("15:04:05")
	}

	status := snap.Status
	if strings.HasPrefix(status, "Failed") {
		status = styleError.Render(status)
	}

	gap := m.width - lipgloss.Width(mode) - lipgloss.Width(refreshed) - 2
	status = truncate(status, max(gap, 0))
	pad := max(gap-lipgloss.Width(status), 0)

	top := mode + " " + status + strings.Repeat(" ", pad) + " " + refreshed
	bottom := styleStatusBar.Width(m.width).Render(" " + m.help.ShortHelpView(hints))

	return lipgloss.JoinVertical(lipgloss.Left, truncate(top, m.width), bottom)
}

// visibleRange calculates the start and end indices for a scrollable list.
func visibleRange(cursor, total, maxVisible int) (int, int) {
	if total <= maxVisible {
		return 0, total
	}

	start := cursor - maxVisible/2
	if start < 0 {
		start = 0
	}
	end := start + maxVisible
	if end > total {
		end = total
		start = end - maxVisible
		if start < 0 {
			start = 0
		}
	}
	return start, end
}

// truncate cuts s to width terminal cells, keeping escape sequences intact.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "~")
}

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mobil-koeln/fahrinfo/internal/event"
)

var keyCodes = map[tea.KeyType]event.KeyCode{
	tea.KeyEnter:     event.KeyEnter,
	tea.KeyTab:       event.KeyTab,
	tea.KeyBackspace: event.KeyBackspace,
	tea.KeyCtrlH:     event.KeyBackspace,
	tea.KeyEsc:       event.KeyEsc,
	tea.KeyUp:        event.KeyUp,
	tea.KeyDown:      event.KeyDown,
	tea.KeyLeft:      event.KeyLeft,
	tea.KeyRight:     event.KeyRight,
	tea.KeyHome:      event.KeyHome,
	tea.KeyEnd:       event.KeyEnd,
	tea.KeyDelete:    event.KeyDelete,
	tea.KeyF5:        event.KeyF5,
}

// translateKey maps a bubbletea key to zero or more event keys. Pasted
// text arrives as one message with many runes and becomes one key each.
func translateKey(msg tea.KeyMsg) []event.Key {
	var mod event.Mod
	if msg.Alt {
		mod |= event.ModAlt
	}

	if code, ok := keyCodes[msg.Type]; ok {
		return []event.Key{{Code: code, Mod: mod}}
	}

	switch {
	case msg.Type == tea.KeyRunes:
		keys := make([]event.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, event.Key{Code: event.KeyRune, Rune: r, Mod: mod})
		}
		return keys

	case msg.Type == tea.KeySpace:
		return []event.Key{{Code: event.KeyRune, Rune: ' ', Mod: mod}}

	case msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ:
		r := 'a' + rune(msg.Type-tea.KeyCtrlA)
		return []event.Key{{Code: event.KeyRune, Rune: r, Mod: mod | event.ModCtrl}}
	}

	return nil
}

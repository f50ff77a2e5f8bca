// Package event merges keyboard input, a fixed-rate tick and a periodic
// reload trigger into one ordered stream consumed by the application loop.
package event

import "strings"

// Kind distinguishes ticks from key presses
type Kind int

const (
	Tick Kind = iota
	KeyPress
)

func (k Kind) String() string {
	if k == KeyPress {
		return "key"
	}
	return "tick"
}

// KeyCode identifies a key. Printable characters use KeyRune.
type KeyCode int

const (
	KeyRune KeyCode = iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeyEsc
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyDelete
	KeyF5
)

var keyNames = map[KeyCode]string{
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyEsc:       "esc",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyDelete:    "delete",
	KeyF5:        "f5",
}

// Mod is a set of modifier keys
type Mod uint8

const (
	ModCtrl Mod = 1 << iota
	ModAlt
)

// Key is one key press
type Key struct {
	Code KeyCode
	Rune rune // set when Code == KeyRune
	Mod  Mod
}

// Printable reports whether the key inserts text
func (k Key) Printable() bool {
	return k.Code == KeyRune && k.Mod == 0 && k.Rune >= ' '
}

// String spells the key the way bubbletea does ("q", "ctrl+c", "alt+x",
// "f5"), so bindings from bubbles/key match it.
func (k Key) String() string {
	var b strings.Builder
	if k.Mod&ModCtrl != 0 {
		b.WriteString("ctrl+")
	}
	if k.Mod&ModAlt != 0 {
		b.WriteString("alt+")
	}
	switch {
	case k.Code == KeyRune:
		b.WriteRune(k.Rune)
	default:
		b.WriteString(keyNames[k.Code])
	}
	return b.String()
}

// Event is a Tick or a KeyPress
type Event struct {
	Kind Kind
	Key  Key // zero for ticks
}

// TickEvent returns a tick
func TickEvent() Event { return Event{Kind: Tick} }

// KeyEvent wraps a key press
func KeyEvent(k Key) Event { return Event{Kind: KeyPress, Key: k} }

// Reload is the synthetic key the auto-refresh producer injects. It is the
// same key a user produces by pressing F5.
var Reload = Key{Code: KeyF5}

func (e Event) String() string {
	if e.Kind == KeyPress {
		return "key(" + e.Key.String() + ")"
	}
	return "tick"
}

package input

import "github.com/gdamore/tcell/v2"

// EventType discriminates router events
type EventType uint8

const (
	EventNone EventType = iota
	EventPointerDown
	EventPointerMove
	EventKey
	EventResize
)

// Key is a translated key press
type Key struct {
	Code   tcell.Key
	Rune   rune
	Intent IntentType
}

// Event is the terminal-independent input consumed by the frame loop
// Pointer events carry cell coordinates in Col/Row; resize carries the new size
type Event struct {
	Type EventType
	Col  int
	Row  int
	Key  Key
}

// PointerDown builds a press event at a cell
func PointerDown(col, row int) Event {
	return Event{Type: EventPointerDown, Col: col, Row: row}
}

// KeyPress builds a key event with its bound intent
func KeyPress(code tcell.Key, r rune) Event {
	return Event{Type: EventKey, Key: Key{Code: code, Rune: r, Intent: lookupIntent(code, r)}}
}

// Translator converts tcell events, tracking button state to detect press edges
type Translator struct {
	buttons tcell.ButtonMask
}

// Translate returns the router event for ev, false for events the loop ignores
func (t *Translator) Translate(ev tcell.Event) (Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		r := rune(0)
		if ev.Key() == tcell.KeyRune {
			r = ev.Rune()
		}
		return KeyPress(ev.Key(), r), true

	case *tcell.EventMouse:
		col, row := ev.Position()
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && t.buttons&tcell.Button1 == 0
		t.buttons = buttons

		if pressed {
			return PointerDown(col, row), true
		}
		return Event{Type: EventPointerMove, Col: col, Row: row}, true

	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Type: EventResize, Col: w, Row: h}, true
	}

	return Event{}, false
}

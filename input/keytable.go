package input

import "github.com/gdamore/tcell/v2"

// specialKeys maps non-rune keys to intents
var specialKeys = map[tcell.Key]IntentType{
	tcell.KeyEscape: IntentQuit,
	tcell.KeyCtrlC:  IntentQuit,
	tcell.KeyUp:     IntentRightPaddleUp,
	tcell.KeyDown:   IntentRightPaddleDown,
}

// runeKeys maps printable keys to intents
var runeKeys = map[rune]IntentType{
	'q': IntentQuit,
	'm': IntentToggleAudio,
	'c': IntentClear,
	'w': IntentLeftPaddleUp,
	's': IntentLeftPaddleDown,
}

// lookupIntent resolves a key press, IntentNone when unbound
func lookupIntent(code tcell.Key, r rune) IntentType {
	if code == tcell.KeyRune {
		return runeKeys[r]
	}
	return specialKeys[code]
}

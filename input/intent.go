package input

// IntentType discriminates semantic actions bound to keys
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // Esc, Ctrl+C, q
	IntentToggleAudio // m
	IntentClear       // c, removes every dynamic entity

	// Arena paddles
	IntentLeftPaddleUp    // w
	IntentLeftPaddleDown  // s
	IntentRightPaddleUp   // Up
	IntentRightPaddleDown // Down
)

func (i IntentType) String() string {
	switch i {
	case IntentQuit:
		return "quit"
	case IntentToggleAudio:
		return "toggle-audio"
	case IntentClear:
		return "clear"
	case IntentLeftPaddleUp:
		return "left-paddle-up"
	case IntentLeftPaddleDown:
		return "left-paddle-down"
	case IntentRightPaddleUp:
		return "right-paddle-up"
	case IntentRightPaddleDown:
		return "right-paddle-down"
	default:
		return "none"
	}
}

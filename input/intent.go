package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // q, Ctrl+C
	IntentResize // Terminal resize event

	// Cascade navigation
	IntentMovePrev // Up, Left, k, h
	IntentMoveNext // Down, Right, j, l

	// Cascade transitions
	IntentCancel  // Esc, Backspace
	IntentConfirm // Enter, Space

	// Progression
	IntentGrantNextCommand // g
)

var intentNames = map[IntentType]string{
	IntentNone:             "none",
	IntentQuit:             "quit",
	IntentResize:           "resize",
	IntentMovePrev:         "move_prev",
	IntentMoveNext:         "move_next",
	IntentCancel:           "cancel",
	IntentConfirm:          "confirm",
	IntentGrantNextCommand: "grant_next_command",
}

func (t IntentType) String() string {
	if name, ok := intentNames[t]; ok {
		return name
	}
	return "unknown"
}

// Intent represents a parsed semantic action
// Pure data struct with no engine dependencies
type Intent struct {
	Type IntentType
	Key  string // Key that produced the intent, for logging
}

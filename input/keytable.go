package input

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// KeyBehavior classifies how a key is processed
type KeyBehavior uint8

const (
	BehaviorNone KeyBehavior = iota
	BehaviorSystem
	BehaviorNavigate
	BehaviorAction
)

// KeyEntry describes a key's behavior
type KeyEntry struct {
	Behavior   KeyBehavior
	IntentType IntentType
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:      {BehaviorSystem, IntentQuit},
			tcell.KeyUp:         {BehaviorNavigate, IntentMovePrev},
			tcell.KeyLeft:       {BehaviorNavigate, IntentMovePrev},
			tcell.KeyDown:       {BehaviorNavigate, IntentMoveNext},
			tcell.KeyRight:      {BehaviorNavigate, IntentMoveNext},
			tcell.KeyEscape:     {BehaviorAction, IntentCancel},
			tcell.KeyBackspace:  {BehaviorAction, IntentCancel},
			tcell.KeyBackspace2: {BehaviorAction, IntentCancel},
			tcell.KeyEnter:      {BehaviorAction, IntentConfirm},
		},

		Runes: map[rune]KeyEntry{
			'q': {BehaviorSystem, IntentQuit},

			'k': {BehaviorNavigate, IntentMovePrev},
			'h': {BehaviorNavigate, IntentMovePrev},
			'j': {BehaviorNavigate, IntentMoveNext},
			'l': {BehaviorNavigate, IntentMoveNext},

			' ': {BehaviorAction, IntentConfirm},
			'g': {BehaviorAction, IntentGrantNextCommand},
		},
	}
}

// Translate maps a key event to an intent
// Unbound keys yield IntentNone
func (kt *KeyTable) Translate(ev *tcell.EventKey) Intent {
	if ev == nil {
		return Intent{}
	}

	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if entry, ok := kt.Runes[r]; ok {
			return Intent{Type: entry.IntentType, Key: string(r)}
		}
		return Intent{}
	}

	if entry, ok := kt.SpecialKeys[ev.Key()]; ok {
		return Intent{Type: entry.IntentType, Key: keyName(ev.Key())}
	}
	return Intent{}
}

// Clone returns a deep copy of the KeyTable with independent maps
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: cloneKeyMap(kt.SpecialKeys),
		Runes:       cloneRuneMap(kt.Runes),
	}
}

func cloneRuneMap(m map[rune]KeyEntry) map[rune]KeyEntry {
	c := make(map[rune]KeyEntry, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

func cloneKeyMap(m map[tcell.Key]KeyEntry) map[tcell.Key]KeyEntry {
	c := make(map[tcell.Key]KeyEntry, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

// keysByName is the lowercased reverse of tcell.KeyNames
var keysByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// KeyByName resolves a tcell key name such as "Enter", "Esc" or "Ctrl-C"
func KeyByName(name string) (tcell.Key, bool) {
	k, ok := keysByName[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

func keyName(k tcell.Key) string {
	if name, ok := tcell.KeyNames[k]; ok {
		return name
	}
	return "unknown"
}

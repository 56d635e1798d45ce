package input

import "sort"

// actionRegistry maps canonical action names to KeyEntry structs
// Used by the keymap config loader to resolve action strings to bindings
var actionRegistry map[string]KeyEntry

func init() {
	actionRegistry = buildActionRegistry()
}

func buildActionRegistry() map[string]KeyEntry {
	return map[string]KeyEntry{
		// Unbind sentinel
		"none": {},

		"quit": {BehaviorSystem, IntentQuit},

		"move_prev": {BehaviorNavigate, IntentMovePrev},
		"move_next": {BehaviorNavigate, IntentMoveNext},

		"cancel":             {BehaviorAction, IntentCancel},
		"confirm":            {BehaviorAction, IntentConfirm},
		"grant_next_command": {BehaviorAction, IntentGrantNextCommand},
	}
}

// ActionEntry resolves a canonical action name to its KeyEntry
// Returns zero KeyEntry and false if name is unknown
func ActionEntry(name string) (KeyEntry, bool) {
	entry, ok := actionRegistry[name]
	return entry, ok
}

// IsActionName returns true if name is a registered action
func IsActionName(name string) bool {
	_, ok := actionRegistry[name]
	return ok
}

// ActionNames returns all registered action names, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package combat

import (
	"fmt"
	"strings"
)

// Command is a top-level battle command; the value is its rank
type Command uint8

const (
	CommandAttack Command = iota
	CommandDefend
	CommandMagic
	CommandAbility
	CommandManifestation

	// CommandCount is the enumeration size; never stored in a combatant
	CommandCount
)

var commandNames = [CommandCount]string{
	CommandAttack:        "Attack",
	CommandDefend:        "Defend",
	CommandMagic:         "Magic",
	CommandAbility:       "Ability",
	CommandManifestation: "Manifestation",
}

// AllCommands returns every storable command in rank order
func AllCommands() []Command {
	cmds := make([]Command, 0, CommandCount)
	for c := CommandAttack; c < CommandCount; c++ {
		cmds = append(cmds, c)
	}
	return cmds
}

// Valid reports whether c is a storable command
func (c Command) Valid() bool {
	return c < CommandCount
}

// Rank returns the canonical sort key
func (c Command) Rank() int {
	return int(c)
}

func (c Command) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Command(%d)", uint8(c))
	}
	return commandNames[c]
}

// ParseCommand resolves a case-insensitive command name
// "manif" is accepted as the short form used in roster files
func ParseCommand(name string) (Command, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "manif" {
		return CommandManifestation, nil
	}
	for c := CommandAttack; c < CommandCount; c++ {
		if strings.ToLower(commandNames[c]) == n {
			return c, nil
		}
	}
	return CommandCount, Newf(CodeInvalidCommand, "unknown command %q", name)
}

// MarshalText encodes the command by name
func (c Command) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, Newf(CodeInvalidCommand, "cannot encode %s", c)
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes a command name
func (c *Command) UnmarshalText(text []byte) error {
	parsed, err := ParseCommand(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

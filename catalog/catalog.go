// Package catalog defines the default command archetype and the command grant progression
package catalog

import (
	"github.com/lixenwraith/atb-fighter/combat"
)

// DefaultCommands is the starting unlocked set for both parties
func DefaultCommands() []combat.Command {
	return []combat.Command{combat.CommandAttack, combat.CommandDefend, combat.CommandAbility}
}

// DefaultVariants returns a fresh copy of the default archetype's variant table
func DefaultVariants() combat.VariantTable {
	return combat.VariantTable{
		combat.CommandAttack: {
			{Name: "Strike", Damage: 8, Duration: 0.5, TimeCost: 20},
		},
		combat.CommandDefend: {
			{Name: "Guard", Duration: 1.0, TimeCost: 15},
		},
		combat.CommandMagic: {
			{Name: "Ember", Damage: 12, Duration: 1.2, TimeCost: 30, ManaCost: 8},
			{Name: "Frost", Damage: 10, Duration: 1.0, TimeCost: 25, ManaCost: 6},
		},
		combat.CommandAbility: {
			{Name: "Focus", Duration: 0.8, TimeCost: 20},
			{Name: "Rally", Duration: 1.5, TimeCost: 35, ManaCost: 4},
		},
		combat.CommandManifestation: {
			{Name: "Awakening", Damage: 30, Duration: 3.0, TimeCost: 60, ManaCost: 40},
		},
	}
}

// Progression is the order in which GrantNext hands out commands
var Progression = []combat.Command{combat.CommandMagic, combat.CommandManifestation}

// Grant describes one command handed out by GrantNext
type Grant struct {
	Combatant *combat.Combatant
	Command   combat.Command
}

// GrantNext scans the party in order and unlocks the next progression command
// on the first combatant still missing one, then stops
// ok is false when every member already holds the whole progression
func GrantNext(party *combat.Party) (grant Grant, ok bool, err error) {
	for _, c := range party.Members() {
		cmd, missing := nextMissing(c)
		if !missing {
			continue
		}
		if err := c.Unlock(cmd); err != nil {
			return Grant{}, false, err
		}
		return Grant{Combatant: c, Command: cmd}, true, nil
	}
	return Grant{}, false, nil
}

func nextMissing(c *combat.Combatant) (combat.Command, bool) {
	for _, cmd := range Progression {
		if !c.HasCommand(cmd) {
			return cmd, true
		}
	}
	return combat.CommandCount, false
}

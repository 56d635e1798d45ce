// Package atb advances per-combatant readiness clocks in real time
package atb

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/lixenwraith/atb-fighter/combat"
	"github.com/lixenwraith/atb-fighter/constants"
)

// Advance accrues delta seconds of readiness scaled by the combatant's time mod
// Readiness saturates at ReadyMax; a negative delta is treated as zero
func Advance(c *combat.Combatant, delta float64) {
	if delta <= 0 {
		return
	}
	c.SetReadiness(c.Readiness() + delta*c.TimeMod())
}

// AdvanceAll applies Advance to every combatant in both parties
func AdvanceAll(reg *combat.Registry, delta float64) {
	reg.Each(func(c *combat.Combatant) {
		Advance(c, delta)
	})
}

// Consume spends cost readiness, stopping at zero
func Consume(c *combat.Combatant, cost float64) {
	if cost <= 0 {
		return
	}
	c.SetReadiness(c.Readiness() - cost)
}

// Ready reports whether c has a full readiness clock
func Ready(c *combat.Combatant) bool {
	return c.Readiness() >= constants.ReadyMax
}

// TimeModSource draws per-combatant time multipliers as base + [0, spread)
type TimeModSource struct {
	roller dice.Roller
	base   float64
	spread float64
}

// NewTimeModSource creates a source; a nil roller uses dice.DefaultRoller
func NewTimeModSource(roller dice.Roller, base, spread float64) (*TimeModSource, error) {
	if base <= 0 {
		return nil, fmt.Errorf("time mod base must be positive, got %v", base)
	}
	if spread < 0 {
		return nil, fmt.Errorf("time mod spread must not be negative, got %v", spread)
	}
	if roller == nil {
		roller = dice.DefaultRoller
	}
	return &TimeModSource{roller: roller, base: base, spread: spread}, nil
}

// Next returns a new multiplier
func (s *TimeModSource) Next() (float64, error) {
	if s.spread == 0 {
		return s.base, nil
	}
	roll, err := s.roller.Roll(constants.TimeModResolution)
	if err != nil {
		return 0, fmt.Errorf("rolling time mod: %w", err)
	}
	// roll is 1..resolution; shift to [0, 1)
	offset := float64(roll-1) / float64(constants.TimeModResolution)
	return s.base + offset*s.spread, nil
}

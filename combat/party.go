package combat

import (
	"slices"

	"github.com/lixenwraith/atb-fighter/constants"
)

// Side identifies which party a combatant fights for
type Side uint8

const (
	SidePlayer Side = iota
	SideEnemy
)

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Party is an ordered group of 1 to PartyCapacity combatants
type Party struct {
	side    Side
	members []*Combatant
}

// NewParty builds a party; it must start with at least one member
func NewParty(side Side, members ...*Combatant) (*Party, error) {
	if len(members) == 0 {
		return nil, Newf(CodePartyEmpty, "%s party needs at least one combatant", side)
	}
	if len(members) > constants.PartyCapacity {
		return nil, Newf(CodePartyFull, "%s party holds at most %d combatants, got %d",
			side, constants.PartyCapacity, len(members))
	}
	p := &Party{side: side, members: make([]*Combatant, 0, len(members))}
	for i, m := range members {
		if m == nil {
			return nil, Newf(CodeInvalidArgument, "%s party member %d is nil", side, i)
		}
		if err := p.Add(m); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Side returns which side the party fights for
func (p *Party) Side() Side { return p.side }

// Len returns the member count
func (p *Party) Len() int { return len(p.members) }

// At returns the member at index i, nil if out of range
func (p *Party) At(i int) *Combatant {
	if i < 0 || i >= len(p.members) {
		return nil
	}
	return p.members[i]
}

// Members returns the members in order; the slice is a copy
func (p *Party) Members() []*Combatant {
	return slices.Clone(p.members)
}

// Find returns the member with the given ID
func (p *Party) Find(id string) (*Combatant, bool) {
	for _, m := range p.members {
		if m.GetID() == id {
			return m, true
		}
	}
	return nil, false
}

// Add appends c, failing when the party is full
func (p *Party) Add(c *Combatant) error {
	if c == nil {
		return Newf(CodeInvalidArgument, "cannot add nil combatant")
	}
	if len(p.members) >= constants.PartyCapacity {
		return Newf(CodePartyFull, "%s party is full", p.side).WithMeta("combatant", c.Name())
	}
	p.members = append(p.members, c)
	return nil
}

// Remove drops the member with the given ID; the last member cannot be removed
func (p *Party) Remove(id string) error {
	idx := slices.IndexFunc(p.members, func(m *Combatant) bool { return m.GetID() == id })
	if idx < 0 {
		return Newf(CodeCombatantNotFound, "no combatant %s in %s party", id, p.side)
	}
	if len(p.members) == 1 {
		return Newf(CodePartyEmpty, "cannot remove the last %s combatant", p.side)
	}
	p.members = slices.Delete(p.members, idx, idx+1)
	return nil
}

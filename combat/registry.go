package combat

import "github.com/lixenwraith/atb-fighter/constants"

// Registry owns both parties for the duration of a battle
type Registry struct {
	player *Party
	enemy  *Party
}

// NewRegistry pairs a player party with an enemy party
func NewRegistry(player, enemy *Party) (*Registry, error) {
	if player == nil || enemy == nil {
		return nil, Newf(CodeInvalidArgument, "registry needs both parties")
	}
	if player.Side() != SidePlayer || enemy.Side() != SideEnemy {
		return nil, Newf(CodeInvalidArgument, "registry parties have sides %s/%s, want player/enemy",
			player.Side(), enemy.Side())
	}
	return &Registry{player: player, enemy: enemy}, nil
}

func (r *Registry) Player() *Party { return r.player }
func (r *Registry) Enemy() *Party  { return r.enemy }

// Each visits every combatant, player party first
func (r *Registry) Each(fn func(*Combatant)) {
	for _, p := range [...]*Party{r.player, r.enemy} {
		for _, c := range p.members {
			fn(c)
		}
	}
}

// Find locates a combatant by ID in either party
func (r *Registry) Find(id string) (*Combatant, Side, bool) {
	if c, ok := r.player.Find(id); ok {
		return c, SidePlayer, true
	}
	if c, ok := r.enemy.Find(id); ok {
		return c, SideEnemy, true
	}
	return nil, 0, false
}

// CombatantView is a read-only copy of a combatant for display
type CombatantView struct {
	ID         string
	Name       string
	Side       Side
	Health     uint16
	MaxHealth  uint16
	Mana       uint16
	MaxMana    uint16
	Readiness  float64
	ReadyRatio float64
	Ready      bool
	Commands   []Command
}

// View copies c into a CombatantView
func (c *Combatant) View(side Side) CombatantView {
	return CombatantView{
		ID:         c.id,
		Name:       c.name,
		Side:       side,
		Health:     c.health,
		MaxHealth:  c.maxHealth,
		Mana:       c.mana,
		MaxMana:    c.maxMana,
		Readiness:  c.readiness,
		ReadyRatio: c.readiness / constants.ReadyMax,
		Ready:      c.readiness >= constants.ReadyMax,
		Commands:   c.Commands(),
	}
}

// Snapshot is a per-frame copy of both parties
type Snapshot struct {
	Player []CombatantView
	Enemy  []CombatantView
}

// Snapshot copies both parties; later mutation of the registry does not affect it
func (r *Registry) Snapshot() Snapshot {
	return Snapshot{
		Player: partyViews(r.player),
		Enemy:  partyViews(r.enemy),
	}
}

func partyViews(p *Party) []CombatantView {
	views := make([]CombatantView, len(p.members))
	for i, c := range p.members {
		views[i] = c.View(p.side)
	}
	return views
}

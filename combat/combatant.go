package combat

import (
	"math"
	"slices"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/google/uuid"

	"github.com/lixenwraith/atb-fighter/constants"
)

// EntityType is the core.Entity type reported by combatants
const EntityType = "combatant"

// Stats are the combatant's base attributes
type Stats struct {
	Attack  uint16 `yaml:"attack"`
	Defense uint16 `yaml:"defense"`
	Hope    uint16 `yaml:"hope"`
}

// CombatantConfig is the construction input for a combatant
type CombatantConfig struct {
	Name      string
	Stats     Stats
	Health    uint16
	MaxHealth uint16
	Mana      uint16
	MaxMana   uint16
	Readiness float64
	TimeMod   float64
	Commands  []Command
	Variants  VariantTable
}

// Combatant is a participant in battle
// All mutators keep health, mana and readiness within their bounds
type Combatant struct {
	id    string
	name  string
	stats Stats

	health    uint16
	maxHealth uint16
	mana      uint16
	maxMana   uint16

	readiness float64
	timeMod   float64

	// Sorted by rank, no duplicates
	commands []Command
	variants VariantTable
}

var _ core.Entity = (*Combatant)(nil)

// NewCombatant validates cfg and builds a combatant
// Health, mana and readiness above their maximum are clamped
func NewCombatant(cfg CombatantConfig) (*Combatant, error) {
	if cfg.Name == "" {
		return nil, Newf(CodeInvalidArgument, "combatant name is required")
	}
	if cfg.TimeMod <= 0 {
		return nil, Newf(CodeInvalidArgument, "combatant %q: time mod must be positive, got %v", cfg.Name, cfg.TimeMod)
	}
	if err := cfg.Variants.Validate(); err != nil {
		return nil, Wrap(err, "combatant "+cfg.Name)
	}

	c := &Combatant{
		id:        uuid.NewString(),
		name:      cfg.Name,
		stats:     cfg.Stats,
		maxHealth: cfg.MaxHealth,
		health:    min(cfg.Health, cfg.MaxHealth),
		maxMana:   cfg.MaxMana,
		mana:      min(cfg.Mana, cfg.MaxMana),
		timeMod:   cfg.TimeMod,
		commands:  make([]Command, 0, CommandCount),
		variants:  cfg.Variants.Clone(),
	}
	c.SetReadiness(cfg.Readiness)

	for _, cmd := range cfg.Commands {
		if err := c.Unlock(cmd); err != nil {
			return nil, Wrap(err, "combatant "+cfg.Name)
		}
	}

	return c, nil
}

// GetID returns the unique combatant ID
func (c *Combatant) GetID() string { return c.id }

// GetType returns the entity type
func (c *Combatant) GetType() string { return EntityType }

func (c *Combatant) Name() string       { return c.name }
func (c *Combatant) Stats() Stats       { return c.stats }
func (c *Combatant) Health() uint16     { return c.health }
func (c *Combatant) MaxHealth() uint16  { return c.maxHealth }
func (c *Combatant) Mana() uint16       { return c.mana }
func (c *Combatant) MaxMana() uint16    { return c.maxMana }
func (c *Combatant) Readiness() float64 { return c.readiness }
func (c *Combatant) TimeMod() float64   { return c.timeMod }

func (c *Combatant) String() string { return c.name }

// Alive reports whether health is above zero
func (c *Combatant) Alive() bool {
	return c.health > 0
}

// SetReadiness stores v clamped to [0, ReadyMax]
func (c *Combatant) SetReadiness(v float64) {
	switch {
	case v < 0 || math.IsNaN(v):
		v = 0
	case v > constants.ReadyMax:
		v = constants.ReadyMax
	}
	c.readiness = v
}

// Commands returns a copy of the unlocked commands in rank order
func (c *Combatant) Commands() []Command {
	return slices.Clone(c.commands)
}

// HasCommand reports whether cmd is unlocked
func (c *Combatant) HasCommand(cmd Command) bool {
	return slices.Contains(c.commands, cmd)
}

// Unlock adds cmd to the unlocked set and keeps the set sorted by rank
// Unlocking an already present command is a no-op
func (c *Combatant) Unlock(cmd Command) error {
	if !cmd.Valid() {
		return Newf(CodeInvalidCommand, "cannot unlock %s", cmd).WithMeta("combatant", c.name)
	}
	if c.HasCommand(cmd) {
		return nil
	}
	c.commands = append(c.commands, cmd)
	slices.SortFunc(c.commands, func(a, b Command) int {
		return a.Rank() - b.Rank()
	})
	return nil
}

// Variants returns a copy of the variants available under cmd
func (c *Combatant) Variants(cmd Command) []Variant {
	return slices.Clone(c.variants[cmd])
}

// Damage lowers health by n, stopping at zero
func (c *Combatant) Damage(n uint16) {
	if n >= c.health {
		c.health = 0
		return
	}
	c.health -= n
}

// Heal raises health by n, stopping at max
func (c *Combatant) Heal(n uint16) {
	c.health = saturatingAdd(c.health, n, c.maxHealth)
}

// SpendMana deducts n or fails without change when mana is short
func (c *Combatant) SpendMana(n uint16) error {
	if n > c.mana {
		return Newf(CodeInsufficientMana, "%s has %d mana, needs %d", c.name, c.mana, n)
	}
	c.mana -= n
	return nil
}

// RestoreMana raises mana by n, stopping at max
func (c *Combatant) RestoreMana(n uint16) {
	c.mana = saturatingAdd(c.mana, n, c.maxMana)
}

func saturatingAdd(cur, n, limit uint16) uint16 {
	if n >= limit-cur {
		return limit
	}
	return cur + n
}

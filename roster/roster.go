// Package roster builds the two parties, from a YAML file or the built-in line-up
package roster

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/atb-fighter/atb"
	"github.com/lixenwraith/atb-fighter/catalog"
	"github.com/lixenwraith/atb-fighter/combat"
)

// Member is one combatant as written in a roster file
type Member struct {
	Name      string       `yaml:"name"`
	Stats     combat.Stats `yaml:"stats"`
	Health    uint16       `yaml:"health"`
	MaxHealth uint16       `yaml:"max_health"`
	Mana      uint16       `yaml:"mana"`
	MaxMana   uint16       `yaml:"max_mana"`
	Readiness float64      `yaml:"readiness"`

	// TimeMod overrides the random multiplier when positive
	TimeMod float64 `yaml:"time_mod"`

	// Commands defaults to the catalog's starting set when empty
	Commands []string `yaml:"commands"`

	// Variants replace the catalog's list for the commands they name
	Variants map[string][]combat.Variant `yaml:"variants"`
}

// File is the top-level roster document
type File struct {
	Enemies []Member `yaml:"enemies"`
	Players []Member `yaml:"players"`
}

// Load reads and builds the roster at path
func Load(path string, mods *atb.TimeModSource) (*combat.Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open roster %s: %w", path, err)
	}
	defer f.Close()

	doc, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode roster %s: %w", path, err)
	}

	return Build(doc, mods)
}

// Parse builds a roster from YAML data
func Parse(data []byte, mods *atb.TimeModSource) (*combat.Registry, error) {
	doc, err := decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode roster: %w", err)
	}
	return Build(doc, mods)
}

// decode rejects fields the roster format does not define
func decode(r io.Reader) (File, error) {
	var doc File
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return File{}, err
	}
	return doc, nil
}

// Build validates doc and creates both parties
func Build(doc File, mods *atb.TimeModSource) (*combat.Registry, error) {
	if mods == nil {
		return nil, fmt.Errorf("time mod source is required")
	}

	enemy, err := buildParty(combat.SideEnemy, doc.Enemies, mods)
	if err != nil {
		return nil, err
	}
	player, err := buildParty(combat.SidePlayer, doc.Players, mods)
	if err != nil {
		return nil, err
	}
	return combat.NewRegistry(player, enemy)
}

func buildParty(side combat.Side, members []Member, mods *atb.TimeModSource) (*combat.Party, error) {
	combatants := make([]*combat.Combatant, 0, len(members))
	for i, m := range members {
		c, err := buildCombatant(m, mods)
		if err != nil {
			return nil, fmt.Errorf("%s party member %d: %w", side, i, err)
		}
		combatants = append(combatants, c)
	}

	party, err := combat.NewParty(side, combatants...)
	if err != nil {
		return nil, fmt.Errorf("%s party: %w", side, err)
	}
	return party, nil
}

func buildCombatant(m Member, mods *atb.TimeModSource) (*combat.Combatant, error) {
	commands := catalog.DefaultCommands()
	if len(m.Commands) > 0 {
		commands = make([]combat.Command, 0, len(m.Commands))
		for _, name := range m.Commands {
			cmd, err := combat.ParseCommand(name)
			if err != nil {
				return nil, err
			}
			commands = append(commands, cmd)
		}
	}

	variants := catalog.DefaultVariants()
	for name, list := range m.Variants {
		cmd, err := combat.ParseCommand(name)
		if err != nil {
			return nil, err
		}
		variants[cmd] = list
	}

	timeMod := m.TimeMod
	if timeMod <= 0 {
		var err error
		if timeMod, err = mods.Next(); err != nil {
			return nil, err
		}
	}

	return combat.NewCombatant(combat.CombatantConfig{
		Name:      m.Name,
		Stats:     m.Stats,
		Health:    m.Health,
		MaxHealth: m.MaxHealth,
		Mana:      m.Mana,
		MaxMana:   m.MaxMana,
		Readiness: m.Readiness,
		TimeMod:   timeMod,
		Commands:  commands,
		Variants:  variants,
	})
}

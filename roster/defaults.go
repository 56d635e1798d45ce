package roster

import (
	"github.com/lixenwraith/atb-fighter/atb"
	"github.com/lixenwraith/atb-fighter/combat"
)

// DefaultFile is the built-in line-up used when no roster file is configured
func DefaultFile() File {
	enemy := func(name string) Member {
		return Member{
			Name:      name,
			Stats:     combat.Stats{Attack: 5, Defense: 5, Hope: 2},
			Health:    23,
			MaxHealth: 100,
			Mana:      82,
			MaxMana:   100,
		}
	}

	return File{
		Enemies: []Member{
			enemy("Enemigo"),
			enemy("Enemigo2"),
			enemy("Enemigo3"),
			enemy("Enemigo4"),
		},
		Players: []Member{
			{Name: "Personaje1", Stats: combat.Stats{Attack: 5, Defense: 4, Hope: 3}, Health: 78, MaxHealth: 100, Mana: 45, MaxMana: 100},
			{Name: "Personaje2", Stats: combat.Stats{Attack: 3, Defense: 5, Hope: 4}, Health: 83, MaxHealth: 100, Mana: 56, MaxMana: 100},
			{Name: "Personaje3", Stats: combat.Stats{Attack: 3, Defense: 4, Hope: 5}, Health: 27, MaxHealth: 100, Mana: 38, MaxMana: 100},
			{Name: "Personaje4", Stats: combat.Stats{Attack: 3, Defense: 4, Hope: 5}, Health: 27, MaxHealth: 100, Mana: 38, MaxMana: 100},
		},
	}
}

// Default builds the built-in line-up
func Default(mods *atb.TimeModSource) (*combat.Registry, error) {
	return Build(DefaultFile(), mods)
}

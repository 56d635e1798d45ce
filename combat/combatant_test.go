package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/atb-fighter/combat"
	"github.com/lixenwraith/atb-fighter/constants"
)

func fullTable() combat.VariantTable {
	table := combat.VariantTable{}
	for _, cmd := range combat.AllCommands() {
		table[cmd] = []combat.Variant{{Name: cmd.String() + " I"}}
	}
	return table
}

func newTestCombatant(t *testing.T, name string, cmds ...combat.Command) *combat.Combatant {
	t.Helper()
	c, err := combat.NewCombatant(combat.CombatantConfig{
		Name:      name,
		Health:    80,
		MaxHealth: 100,
		Mana:      40,
		MaxMana:   50,
		TimeMod:   1.0,
		Commands:  cmds,
		Variants:  fullTable(),
	})
	require.NoError(t, err)
	return c
}

func TestNewCombatantClampsResources(t *testing.T) {
	c, err := combat.NewCombatant(combat.CombatantConfig{
		Name:      "Overfull",
		Health:    150,
		MaxHealth: 100,
		Mana:      90,
		MaxMana:   30,
		Readiness: 75,
		TimeMod:   1.5,
		Variants:  fullTable(),
	})
	require.NoError(t, err)

	assert.Equal(t, uint16(100), c.Health())
	assert.Equal(t, uint16(30), c.Mana())
	assert.Equal(t, constants.ReadyMax, c.Readiness())
	assert.NotEmpty(t, c.GetID())
	assert.Equal(t, combat.EntityType, c.GetType())
}

func TestNewCombatantValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  combat.CombatantConfig
		code combat.Code
	}{
		{
			name: "missing name",
			cfg:  combat.CombatantConfig{TimeMod: 1, Variants: fullTable()},
			code: combat.CodeInvalidArgument,
		},
		{
			name: "zero time mod",
			cfg:  combat.CombatantConfig{Name: "A", Variants: fullTable()},
			code: combat.CodeInvalidArgument,
		},
		{
			name: "incomplete variant table",
			cfg:  combat.CombatantConfig{Name: "A", TimeMod: 1, Variants: combat.VariantTable{combat.CommandAttack: nil}},
			code: combat.CodeInvalidArgument,
		},
		{
			name: "sentinel command",
			cfg:  combat.CombatantConfig{Name: "A", TimeMod: 1, Variants: fullTable(), Commands: []combat.Command{combat.CommandCount}},
			code: combat.CodeInvalidCommand,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := combat.NewCombatant(tt.cfg)
			require.Error(t, err)
			assert.Equal(t, tt.code, combat.GetCode(err))
		})
	}
}

func TestUnlockKeepsRankOrder(t *testing.T) {
	orders := [][]combat.Command{
		{combat.CommandAbility, combat.CommandAttack, combat.CommandDefend},
		{combat.CommandDefend, combat.CommandAbility, combat.CommandAttack},
		{combat.CommandAttack, combat.CommandDefend, combat.CommandAbility},
	}
	want := []combat.Command{combat.CommandAttack, combat.CommandDefend, combat.CommandAbility}

	for _, order := range orders {
		c := newTestCombatant(t, "Order")
		for _, cmd := range order {
			require.NoError(t, c.Unlock(cmd))
		}
		assert.Equal(t, want, c.Commands(), "insertion order %v", order)
	}
}

func TestUnlockIdempotent(t *testing.T) {
	once := newTestCombatant(t, "Once", combat.CommandAttack)
	require.NoError(t, once.Unlock(combat.CommandMagic))

	twice := newTestCombatant(t, "Twice", combat.CommandAttack)
	require.NoError(t, twice.Unlock(combat.CommandMagic))
	require.NoError(t, twice.Unlock(combat.CommandMagic))

	assert.Equal(t, once.Commands(), twice.Commands())
	assert.Len(t, twice.Commands(), 2)
}

func TestUnlockRejectsSentinel(t *testing.T) {
	c := newTestCombatant(t, "Sentinel", combat.CommandAttack)

	err := c.Unlock(combat.CommandCount)
	require.Error(t, err)
	assert.ErrorIs(t, err, combat.ErrInvalidCommand)
	assert.Equal(t, []combat.Command{combat.CommandAttack}, c.Commands())
}

func TestCommandsReturnsCopy(t *testing.T) {
	c := newTestCombatant(t, "Copy", combat.CommandAttack, combat.CommandDefend)

	cmds := c.Commands()
	cmds[0] = combat.CommandManifestation

	assert.Equal(t, combat.CommandAttack, c.Commands()[0])
}

func TestResourceMutatorsSaturate(t *testing.T) {
	c := newTestCombatant(t, "Tank")

	c.Heal(500)
	assert.Equal(t, c.MaxHealth(), c.Health())

	c.Damage(30)
	assert.Equal(t, uint16(70), c.Health())

	c.Damage(1000)
	assert.Equal(t, uint16(0), c.Health())
	assert.False(t, c.Alive())

	require.NoError(t, c.SpendMana(15))
	assert.Equal(t, uint16(25), c.Mana())

	err := c.SpendMana(26)
	assert.ErrorIs(t, err, combat.ErrInsufficientMana)
	assert.Equal(t, uint16(25), c.Mana())

	c.RestoreMana(1000)
	assert.Equal(t, c.MaxMana(), c.Mana())
}

func TestSetReadinessClamps(t *testing.T) {
	c := newTestCombatant(t, "Clock")

	c.SetReadiness(-5)
	assert.Equal(t, 0.0, c.Readiness())

	c.SetReadiness(61)
	assert.Equal(t, constants.ReadyMax, c.Readiness())

	c.SetReadiness(12.5)
	assert.Equal(t, 12.5, c.Readiness())
}

func TestParseCommand(t *testing.T) {
	for _, cmd := range combat.AllCommands() {
		parsed, err := combat.ParseCommand(cmd.String())
		require.NoError(t, err)
		assert.Equal(t, cmd, parsed)
	}

	parsed, err := combat.ParseCommand(" MANIF ")
	require.NoError(t, err)
	assert.Equal(t, combat.CommandManifestation, parsed)

	_, err = combat.ParseCommand("Max")
	assert.ErrorIs(t, err, combat.ErrInvalidCommand)
}

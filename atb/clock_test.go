package atb_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/atb-fighter/atb"
	"github.com/lixenwraith/atb-fighter/catalog"
	"github.com/lixenwraith/atb-fighter/combat"
	"github.com/lixenwraith/atb-fighter/constants"
)

type fixedRoller struct {
	value int
	err   error
}

func (r *fixedRoller) Roll(_ int) (int, error) { return r.value, r.err }
func (r *fixedRoller) RollN(count, _ int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = r.value
	}
	return out, r.err
}

func newCombatant(t *testing.T, name string, timeMod, readiness float64) *combat.Combatant {
	t.Helper()
	c, err := combat.NewCombatant(combat.CombatantConfig{
		Name:      name,
		Health:    10,
		MaxHealth: 10,
		TimeMod:   timeMod,
		Readiness: readiness,
		Commands:  catalog.DefaultCommands(),
		Variants:  catalog.DefaultVariants(),
	})
	require.NoError(t, err)
	return c
}

func TestAdvanceScalesByTimeMod(t *testing.T) {
	c := newCombatant(t, "Solo", 2.0, 0)
	player, err := combat.NewParty(combat.SidePlayer, c)
	require.NoError(t, err)
	enemy, err := combat.NewParty(combat.SideEnemy, newCombatant(t, "Foe", 1.0, 0))
	require.NoError(t, err)
	reg, err := combat.NewRegistry(player, enemy)
	require.NoError(t, err)

	atb.AdvanceAll(reg, 1.0)

	assert.Equal(t, 2.0, c.Readiness())
	assert.Equal(t, 1.0, enemy.At(0).Readiness())
}

func TestAdvanceClampProperty(t *testing.T) {
	tests := []struct {
		name     string
		start    float64
		timeMod  float64
		delta    float64
		expected float64
	}{
		{name: "Below max", start: 10, timeMod: 1.5, delta: 4, expected: 16},
		{name: "Crosses max", start: 55, timeMod: 2, delta: 5, expected: constants.ReadyMax},
		{name: "Already max", start: constants.ReadyMax, timeMod: 1.9, delta: 0.2, expected: constants.ReadyMax},
		{name: "Zero delta", start: 7, timeMod: 1.2, delta: 0, expected: 7},
		{name: "Negative delta", start: 7, timeMod: 1.2, delta: -3, expected: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCombatant(t, "Clock", tt.timeMod, tt.start)
			atb.Advance(c, tt.delta)
			assert.InDelta(t, tt.expected, c.Readiness(), 1e-9)
		})
	}
}

func TestAdvanceRepeatedNeverExceedsMax(t *testing.T) {
	c := newCombatant(t, "Fast", 1.99, 0)
	for i := 0; i < 1000; i++ {
		atb.Advance(c, 0.37)
		require.LessOrEqual(t, c.Readiness(), constants.ReadyMax)
		require.GreaterOrEqual(t, c.Readiness(), 0.0)
	}
	assert.True(t, atb.Ready(c))
}

func TestConsumeFloorsAtZero(t *testing.T) {
	c := newCombatant(t, "Spender", 1, 40)

	atb.Consume(c, 15)
	assert.Equal(t, 25.0, c.Readiness())

	atb.Consume(c, 100)
	assert.Equal(t, 0.0, c.Readiness())
	assert.False(t, atb.Ready(c))
}

func TestTimeModSourceRange(t *testing.T) {
	low, err := atb.NewTimeModSource(&fixedRoller{value: 1}, constants.TimeModBase, constants.TimeModSpread)
	require.NoError(t, err)
	v, err := low.Next()
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	high, err := atb.NewTimeModSource(&fixedRoller{value: constants.TimeModResolution}, constants.TimeModBase, constants.TimeModSpread)
	require.NoError(t, err)
	v, err = high.Next()
	require.NoError(t, err)
	assert.Less(t, v, 2.0)
	assert.Greater(t, v, 1.99)
}

func TestTimeModSourceDefaultRoller(t *testing.T) {
	src, err := atb.NewTimeModSource(nil, 1.0, 1.0)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		v, err := src.Next()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 1.0)
		assert.Less(t, v, 2.0)
	}
}

func TestTimeModSourceErrors(t *testing.T) {
	_, err := atb.NewTimeModSource(nil, 0, 1)
	assert.Error(t, err)

	_, err = atb.NewTimeModSource(nil, 1, -1)
	assert.Error(t, err)

	src, err := atb.NewTimeModSource(&fixedRoller{err: errors.New("no dice")}, 1, 1)
	require.NoError(t, err)
	_, err = src.Next()
	assert.ErrorContains(t, err, "no dice")

	flat, err := atb.NewTimeModSource(&fixedRoller{err: errors.New("unused")}, 1.25, 0)
	require.NoError(t, err)
	v, err := flat.Next()
	require.NoError(t, err)
	assert.Equal(t, 1.25, v)
}

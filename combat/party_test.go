package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/atb-fighter/combat"
)

func TestNewPartyBounds(t *testing.T) {
	_, err := combat.NewParty(combat.SidePlayer)
	assert.ErrorIs(t, err, combat.ErrPartyEmpty)

	members := make([]*combat.Combatant, 5)
	for i := range members {
		members[i] = newTestCombatant(t, "M")
	}
	_, err = combat.NewParty(combat.SidePlayer, members...)
	assert.ErrorIs(t, err, combat.ErrPartyFull)

	p, err := combat.NewParty(combat.SidePlayer, members[:4]...)
	require.NoError(t, err)
	assert.Equal(t, 4, p.Len())

	err = p.Add(members[4])
	assert.ErrorIs(t, err, combat.ErrPartyFull)
	assert.Equal(t, 4, p.Len())
}

func TestPartyRemoveKeepsOneMember(t *testing.T) {
	a := newTestCombatant(t, "A")
	b := newTestCombatant(t, "B")
	p, err := combat.NewParty(combat.SideEnemy, a, b)
	require.NoError(t, err)

	require.NoError(t, p.Remove(a.GetID()))
	assert.Equal(t, 1, p.Len())
	assert.Same(t, b, p.At(0))

	assert.ErrorIs(t, p.Remove(b.GetID()), combat.ErrPartyEmpty)
	assert.ErrorIs(t, p.Remove("missing"), combat.ErrCombatantNotFound)
	assert.Nil(t, p.At(3))
}

func TestRegistrySnapshotIsDetached(t *testing.T) {
	hero := newTestCombatant(t, "Hero", combat.CommandAttack)
	foe := newTestCombatant(t, "Foe", combat.CommandAttack)

	player, err := combat.NewParty(combat.SidePlayer, hero)
	require.NoError(t, err)
	enemy, err := combat.NewParty(combat.SideEnemy, foe)
	require.NoError(t, err)
	reg, err := combat.NewRegistry(player, enemy)
	require.NoError(t, err)

	hero.SetReadiness(30)
	snap := reg.Snapshot()

	hero.Damage(50)
	require.NoError(t, hero.Unlock(combat.CommandMagic))

	require.Len(t, snap.Player, 1)
	assert.Equal(t, uint16(80), snap.Player[0].Health)
	assert.Equal(t, 0.5, snap.Player[0].ReadyRatio)
	assert.False(t, snap.Player[0].Ready)
	assert.Equal(t, []combat.Command{combat.CommandAttack}, snap.Player[0].Commands)
	assert.Equal(t, "Foe", snap.Enemy[0].Name)
	assert.Equal(t, combat.SideEnemy, snap.Enemy[0].Side)

	found, side, ok := reg.Find(foe.GetID())
	require.True(t, ok)
	assert.Same(t, foe, found)
	assert.Equal(t, combat.SideEnemy, side)
}

func TestNewRegistryRejectsSwappedSides(t *testing.T) {
	a, err := combat.NewParty(combat.SidePlayer, newTestCombatant(t, "A"))
	require.NoError(t, err)
	b, err := combat.NewParty(combat.SideEnemy, newTestCombatant(t, "B"))
	require.NoError(t, err)

	_, err = combat.NewRegistry(b, a)
	assert.ErrorIs(t, err, combat.ErrInvalidArgument)

	_, err = combat.NewRegistry(a, nil)
	assert.ErrorIs(t, err, combat.ErrInvalidArgument)
}

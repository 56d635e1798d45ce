package engine_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/atb-fighter/combat"
	"github.com/lixenwraith/atb-fighter/engine"
	"github.com/lixenwraith/atb-fighter/selection"
)

func action(actor string) selection.ResolvedAction {
	return selection.ResolvedAction{
		ActorName:  actor,
		Command:    combat.CommandAttack,
		Variant:    combat.Variant{Name: "Strike"},
		TargetName: "Enemigo",
		TargetSide: combat.SideEnemy,
	}
}

func TestActionQueueFIFO(t *testing.T) {
	q, err := engine.NewActionQueue(4, zerolog.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, q.Submit(ctx, action("a")))
	require.NoError(t, q.Submit(ctx, action("b")))
	assert.Equal(t, 2, q.Len())

	drained := q.Drain()
	require.Len(t, drained, 2)
	assert.Equal(t, "a", drained[0].ActorName)
	assert.Equal(t, "b", drained[1].ActorName)
	assert.Equal(t, 0, q.Len())
}

func TestActionQueueFullDrops(t *testing.T) {
	q, err := engine.NewActionQueue(1, zerolog.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, q.Submit(ctx, action("a")))
	err = q.Submit(ctx, action("b"))

	require.Error(t, err)
	assert.Equal(t, combat.CodeFailedPrecondition, combat.GetCode(err))
	assert.Equal(t, 1, q.Len())
}

func TestActionQueueDefaultSize(t *testing.T) {
	q, err := engine.NewActionQueue(0, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 0, q.Len())
	assert.NoError(t, q.Submit(context.Background(), action("a")))
}

func TestActionQueueClose(t *testing.T) {
	q, err := engine.NewActionQueue(2, zerolog.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, q.Submit(ctx, action("a")))
	q.Close()
	q.Close()

	assert.Error(t, q.Submit(ctx, action("b")))

	a, ok := <-q.Actions()
	assert.True(t, ok)
	assert.Equal(t, "a", a.ActorName)

	_, ok = <-q.Actions()
	assert.False(t, ok)
}

func TestActionQueueMetrics(t *testing.T) {
	reader := installMetricReader(t)
	q, err := engine.NewActionQueue(1, zerolog.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	size, ok := collectInt64(t, reader, "atb.actions.queue.size")
	require.True(t, ok)
	assert.Equal(t, int64(0), size)

	require.NoError(t, q.Submit(ctx, action("a")))
	require.Error(t, q.Submit(ctx, action("b")))
	require.Error(t, q.Submit(ctx, action("c")))

	size, _ = collectInt64(t, reader, "atb.actions.queue.size")
	assert.Equal(t, int64(1), size)

	dropped, ok := collectInt64(t, reader, "atb.actions.dropped")
	require.True(t, ok)
	assert.Equal(t, int64(2), dropped)

	q.Drain()
	size, _ = collectInt64(t, reader, "atb.actions.queue.size")
	assert.Equal(t, int64(0), size)
}

package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric"

	"github.com/lixenwraith/atb-fighter/combat"
	"github.com/lixenwraith/atb-fighter/constants"
	"github.com/lixenwraith/atb-fighter/selection"
)

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/lixenwraith/atb-fighter/engine ActionSink,Renderer,Cues

// ActionSink receives fully resolved actions from the frame driver
// Damage resolution lives behind this boundary
type ActionSink interface {
	Submit(ctx context.Context, action selection.ResolvedAction) error
}

// ActionQueue is a bounded FIFO ActionSink
// Submit never blocks; a full queue drops the action and reports an error
type ActionQueue struct {
	buffer chan selection.ResolvedAction
	logger zerolog.Logger

	queueSize metric.Int64ObservableGauge
	dropped   metric.Int64Counter

	mu     sync.Mutex
	closed bool
}

// NewActionQueue creates a queue holding up to size actions
// A non-positive size uses ActionQueueSize
func NewActionQueue(size int, logger zerolog.Logger) (*ActionQueue, error) {
	if size <= 0 {
		size = constants.ActionQueueSize
	}
	q := &ActionQueue{
		buffer: make(chan selection.ResolvedAction, size),
		logger: logger,
	}

	m := meter()

	var err error
	q.queueSize, err = m.Int64ObservableGauge(
		"atb.actions.queue.size",
		metric.WithDescription("Current number of resolved actions awaiting resolution"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating queue size gauge: %w", err)
	}

	_, err = m.RegisterCallback(
		func(ctx context.Context, o metric.Observer) error {
			o.ObserveInt64(q.queueSize, int64(len(q.buffer)))
			return nil
		},
		q.queueSize,
	)
	if err != nil {
		return nil, fmt.Errorf("registering queue callback: %w", err)
	}

	q.dropped, err = m.Int64Counter(
		"atb.actions.dropped",
		metric.WithDescription("Total resolved actions dropped due to full queue"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating dropped counter: %w", err)
	}

	return q, nil
}

// Submit enqueues action without blocking
func (q *ActionQueue) Submit(ctx context.Context, action selection.ResolvedAction) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return combat.Newf(combat.CodeFailedPrecondition, "action queue closed")
	}

	select {
	case q.buffer <- action:
		q.logger.Info().
			Str("actor", action.ActorName).
			Str("command", action.Command.String()).
			Str("variant", action.Variant.Name).
			Str("target", action.TargetName).
			Str("target_side", action.TargetSide.String()).
			Msg("action queued")
		return nil
	default:
		q.dropped.Add(ctx, 1)
		return combat.Newf(combat.CodeFailedPrecondition, "action queue full (%d)", cap(q.buffer)).
			WithMeta("actor", action.ActorName)
	}
}

// Actions is the receive side for whatever resolves queued actions
func (q *ActionQueue) Actions() <-chan selection.ResolvedAction {
	return q.buffer
}

// Drain removes and returns every queued action without blocking
func (q *ActionQueue) Drain() []selection.ResolvedAction {
	var out []selection.ResolvedAction
	for {
		select {
		case a, ok := <-q.buffer:
			if !ok {
				return out
			}
			out = append(out, a)
		default:
			return out
		}
	}
}

// Len returns the number of queued actions
func (q *ActionQueue) Len() int {
	return len(q.buffer)
}

// Close stops accepting actions; already queued ones stay readable
func (q *ActionQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	close(q.buffer)
}

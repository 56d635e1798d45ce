// Package engine runs the frame loop: it advances readiness, refreshes the
// selection cascade, renders, and applies exactly one event per iteration
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/atb-fighter/atb"
	"github.com/lixenwraith/atb-fighter/catalog"
	"github.com/lixenwraith/atb-fighter/combat"
	"github.com/lixenwraith/atb-fighter/input"
	"github.com/lixenwraith/atb-fighter/selection"
)

// Renderer draws one frame from read-only snapshots
type Renderer interface {
	Render(snap combat.Snapshot, view selection.View)
	// Sync redraws everything after a terminal resize
	Sync()
}

// Cues plays feedback sounds for cascade transitions
type Cues interface {
	PlayConfirm()
	PlayCancel()
	PlayGrant()
	PlayResolve()
}

type silentCues struct{}

func (silentCues) PlayConfirm() {}
func (silentCues) PlayCancel()  {}
func (silentCues) PlayGrant()   {}
func (silentCues) PlayResolve() {}

// DriverConfig holds the driver's collaborators
type DriverConfig struct {
	Registry *combat.Registry
	Renderer Renderer
	Sink     ActionSink
	Clock    TimeProvider
	Cues     Cues
	Logger   zerolog.Logger

	// ConsumeOnResolve spends the variant's mana cost and then its time cost
	// from the actor when an action resolves; short mana rejects the action
	ConsumeOnResolve bool
}

// Driver is the single mutator of combat and selection state
type Driver struct {
	reg      *combat.Registry
	cascade  *selection.Cascade
	renderer Renderer
	sink     ActionSink
	clock    TimeProvider
	cues     Cues
	logger   zerolog.Logger
	metrics  *driverMetrics
	consume  bool

	lastIteration time.Time
}

// NewDriver validates cfg and creates a driver with a fresh cascade
func NewDriver(cfg *DriverConfig) (*Driver, error) {
	if cfg == nil {
		return nil, fmt.Errorf("driver config is required")
	}
	if cfg.Registry == nil {
		return nil, fmt.Errorf("registry is required")
	}
	if cfg.Renderer == nil {
		return nil, fmt.Errorf("renderer is required")
	}
	if cfg.Sink == nil {
		return nil, fmt.Errorf("action sink is required")
	}

	clock := cfg.Clock
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	cues := cfg.Cues
	if cues == nil {
		cues = silentCues{}
	}

	dm, err := newDriverMetrics()
	if err != nil {
		return nil, err
	}

	cascade := selection.New(cfg.Registry)
	cascade.Repopulate()

	return &Driver{
		reg:      cfg.Registry,
		cascade:  cascade,
		renderer: cfg.Renderer,
		sink:     cfg.Sink,
		clock:    clock,
		cues:     cues,
		logger:   cfg.Logger,
		metrics:  dm,
		consume:  cfg.ConsumeOnResolve,
	}, nil
}

// Cascade exposes the selection state for inspection
func (d *Driver) Cascade() *selection.Cascade {
	return d.cascade
}

// Step advances every readiness clock by delta, repopulates the cascade and renders
func (d *Driver) Step(ctx context.Context, delta time.Duration) {
	atb.AdvanceAll(d.reg, delta.Seconds())
	d.cascade.Repopulate()
	d.renderer.Render(d.reg.Snapshot(), d.cascade.View())
	d.metrics.frame(ctx)

	ready := 0
	d.reg.Each(func(c *combat.Combatant) {
		if atb.Ready(c) {
			ready++
		}
	})
	d.metrics.readyCount(ctx, ready)
}

// Handle applies one intent to the cascade and reports whether the loop should quit
func (d *Driver) Handle(ctx context.Context, in input.Intent) (quit bool) {
	switch in.Type {
	case input.IntentQuit:
		d.logger.Info().Msg("quit requested")
		return true

	case input.IntentResize:
		d.renderer.Sync()

	case input.IntentMovePrev:
		d.cascade.Move(selection.Prev)

	case input.IntentMoveNext:
		d.cascade.Move(selection.Next)

	case input.IntentCancel:
		if d.cascade.Cancel() {
			d.cues.PlayCancel()
		}

	case input.IntentConfirm:
		action, outcome := d.cascade.Confirm()
		switch outcome {
		case selection.OutcomeLocked:
			d.cues.PlayConfirm()
		case selection.OutcomeResolved:
			d.resolve(ctx, action)
		}

	case input.IntentGrantNextCommand:
		d.grant(ctx)
	}
	return false
}

func (d *Driver) resolve(ctx context.Context, action selection.ResolvedAction) {
	if d.consume {
		if actor, _, ok := d.reg.Find(action.ActorID); ok {
			if err := actor.SpendMana(action.Variant.ManaCost); err != nil {
				d.logger.Warn().Err(err).
					Str("actor", action.ActorName).
					Str("variant", action.Variant.Name).
					Msg("action rejected")
				d.cues.PlayCancel()
				return
			}
			atb.Consume(actor, action.Variant.TimeCost)
		}
	}

	if err := d.sink.Submit(ctx, action); err != nil {
		d.logger.Error().Err(err).
			Str("actor", action.ActorName).
			Str("command", action.Command.String()).
			Msg("action not submitted")
		return
	}

	d.metrics.resolve(ctx, action.Command.String())
	d.cues.PlayResolve()
}

func (d *Driver) grant(ctx context.Context) {
	g, ok, err := catalog.GrantNext(d.reg.Player())
	if err != nil {
		d.logger.Error().Err(err).Msg("grant failed")
		return
	}
	if !ok {
		d.logger.Debug().Msg("grant: every combatant holds the full progression")
		return
	}

	d.logger.Info().
		Str("combatant", g.Combatant.Name()).
		Str("command", g.Command.String()).
		Msg("command granted")
	d.metrics.grant(ctx, g.Command.String())
	d.cues.PlayGrant()
	d.cascade.Repopulate()
}

// Run loops until quit, ctx cancellation, or an event source failure
// Each iteration measures delta as the time since the previous iteration began,
// steps one frame, then blocks for exactly one event
// Quit and cancellation return nil
func (d *Driver) Run(ctx context.Context, events <-chan Event) error {
	d.lastIteration = time.Time{}

	for {
		now := d.clock.Now()
		var delta time.Duration
		if !d.lastIteration.IsZero() {
			delta = now.Sub(d.lastIteration)
		}
		d.lastIteration = now

		d.Step(ctx, delta)

		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return ErrEventsClosed
			}
			switch ev.Type {
			case EventTick:
			case EventInput:
				if d.Handle(ctx, ev.Intent) {
					return nil
				}
			case EventError:
				return fmt.Errorf("event source: %w", ev.Err)
			}
		}
	}
}

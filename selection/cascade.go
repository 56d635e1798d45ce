// Package selection turns a stream of move/confirm/cancel inputs into a fully
// specified action through four stages: actor, command, variant, target
//
// Stages lock from the actor outward. The first unlocked stage is the active one;
// every stage before it is locked, every stage after it is unlocked.
package selection

import (
	"strconv"

	"github.com/lixenwraith/atb-fighter/combat"
)

// ResolvedAction is a fully specified action handed off for resolution
type ResolvedAction struct {
	ActorID    string
	ActorName  string
	Command    combat.Command
	Variant    combat.Variant
	TargetID   string
	TargetName string
	TargetSide combat.Side
}

// Cascade is the four-stage selection state machine
// It is not safe for concurrent use; the frame driver is its only caller
type Cascade struct {
	reg *combat.Registry

	actor   *Cursor[combat.CombatantView]
	command *Cursor[combat.Command]
	variant *Cursor[combat.Variant]
	target  *Cursor[combat.CombatantView]

	stages [StageCount]stageCursor
}

// New creates a cascade over reg with every stage unlocked and empty
func New(reg *combat.Registry) *Cascade {
	c := &Cascade{
		reg:     reg,
		actor:   newCursor[combat.CombatantView](),
		command: newCursor[combat.Command](),
		variant: newCursor[combat.Variant](),
		target:  newCursor[combat.CombatantView](),
	}
	c.stages = [StageCount]stageCursor{c.actor, c.command, c.variant, c.target}
	return c
}

// Active returns the first unlocked stage, StageCount if all are locked
func (c *Cascade) Active() Stage {
	for i, s := range c.stages {
		if !s.Locked() {
			return Stage(i)
		}
	}
	return StageCount
}

// Locked reports whether stage st is committed
func (c *Cascade) Locked(st Stage) bool {
	if st >= StageCount {
		return false
	}
	return c.stages[st].Locked()
}

// Move shifts the highlight of the active stage
func (c *Cascade) Move(dir Direction) {
	active := c.Active()
	if active == StageCount {
		return
	}
	c.stages[active].Move(dir)
}

// Outcome reports what a Confirm did
type Outcome uint8

const (
	// OutcomeNone means nothing was highlighted
	OutcomeNone Outcome = iota
	// OutcomeLocked means a stage was committed and the next one became active
	OutcomeLocked
	// OutcomeResolved means the target was confirmed and the cascade reset
	OutcomeResolved
)

// Confirm commits the active stage's highlight
// Confirming the target resets the cascade and returns the resolved action
func (c *Cascade) Confirm() (ResolvedAction, Outcome) {
	active := c.Active()
	if active == StageCount {
		return ResolvedAction{}, OutcomeNone
	}
	if _, ok := c.stages[active].Selected(); !ok {
		return ResolvedAction{}, OutcomeNone
	}

	if active != StageTarget {
		c.stages[active].setLocked(true)
		c.Repopulate()
		return ResolvedAction{}, OutcomeLocked
	}

	action, ok := c.resolve()
	c.Reset()
	c.Repopulate()
	if !ok {
		return ResolvedAction{}, OutcomeNone
	}
	return action, OutcomeResolved
}

// Cancel unlocks the nearest locked stage behind the active one
// The stage that was active loses its highlight; with nothing locked it is a no-op
func (c *Cascade) Cancel() bool {
	for i := int(StageVariant); i >= int(StageActor); i-- {
		if !c.stages[i].Locked() {
			continue
		}
		c.stages[i].setLocked(false)
		c.stages[i+1].clearHighlight()
		c.Repopulate()
		return true
	}
	return false
}

// Reset unlocks every stage and clears every highlight
func (c *Cascade) Reset() {
	for _, s := range c.stages {
		s.reset()
	}
}

// Repopulate rebuilds every candidate list from the live registry
//
// Actor lists the player party. Command and Variant are filled only when the
// stage before them is locked on a valid highlight, and are empty otherwise.
// Target lists the enemy party followed by the player party.
func (c *Cascade) Repopulate() {
	snap := c.reg.Snapshot()

	c.actor.SetItems(combatantItems(snap.Player))

	var commands []Item[combat.Command]
	actor, actorOK := c.actor.Value()
	if c.actor.Locked() && actorOK {
		commands = commandItems(actor.Commands)
	}
	c.command.SetItems(commands)

	var variants []Item[combat.Variant]
	cmd, cmdOK := c.command.Value()
	if c.command.Locked() && cmdOK {
		if live, _, ok := c.reg.Find(actor.ID); ok {
			variants = variantItems(cmd, live.Variants(cmd))
		}
	}
	c.variant.SetItems(variants)

	targets := make([]combat.CombatantView, 0, len(snap.Enemy)+len(snap.Player))
	targets = append(targets, snap.Enemy...)
	targets = append(targets, snap.Player...)
	c.target.SetItems(combatantItems(targets))

	c.enforcePrefix()
}

// enforcePrefix keeps the locked stages a contiguous prefix with valid highlights
// A locked stage whose choice disappeared is unlocked along with everything after it
func (c *Cascade) enforcePrefix() {
	broken := false
	for _, s := range c.stages {
		if broken {
			s.reset()
			continue
		}
		if !s.Locked() {
			broken = true
			continue
		}
		if _, ok := s.Selected(); !ok {
			s.setLocked(false)
			broken = true
		}
	}
}

func (c *Cascade) resolve() (ResolvedAction, bool) {
	actor, ok1 := c.actor.Value()
	cmd, ok2 := c.command.Value()
	variant, ok3 := c.variant.Value()
	target, ok4 := c.target.Value()
	if !(ok1 && ok2 && ok3 && ok4) {
		return ResolvedAction{}, false
	}
	return ResolvedAction{
		ActorID:    actor.ID,
		ActorName:  actor.Name,
		Command:    cmd,
		Variant:    variant,
		TargetID:   target.ID,
		TargetName: target.Name,
		TargetSide: target.Side,
	}, true
}

func combatantItems(views []combat.CombatantView) []Item[combat.CombatantView] {
	items := make([]Item[combat.CombatantView], len(views))
	for i, v := range views {
		items[i] = Item[combat.CombatantView]{Key: v.ID, Label: v.Name, Value: v}
	}
	return items
}

func commandItems(cmds []combat.Command) []Item[combat.Command] {
	items := make([]Item[combat.Command], len(cmds))
	for i, cmd := range cmds {
		items[i] = Item[combat.Command]{Key: cmd.String(), Label: cmd.String(), Value: cmd}
	}
	return items
}

func variantItems(cmd combat.Command, variants []combat.Variant) []Item[combat.Variant] {
	items := make([]Item[combat.Variant], len(variants))
	for i, v := range variants {
		items[i] = Item[combat.Variant]{
			Key:   cmd.String() + "/" + strconv.Itoa(i) + "/" + v.Name,
			Label: v.Name,
			Value: v,
		}
	}
	return items
}

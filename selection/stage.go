package selection

import "github.com/lixenwraith/atb-fighter/constants"

// Stage identifies one step of the selection cascade
type Stage uint8

const (
	StageActor Stage = iota
	StageCommand
	StageVariant
	StageTarget

	// StageCount doubles as "no active stage"
	StageCount
)

var stageNames = [StageCount]string{
	StageActor:   "actor",
	StageCommand: "command",
	StageVariant: "variant",
	StageTarget:  "target",
}

var stageTitles = [StageCount]string{
	StageActor:   constants.TitleActor,
	StageCommand: constants.TitleCommand,
	StageVariant: constants.TitleVariant,
	StageTarget:  constants.TitleTarget,
}

func (s Stage) String() string {
	if s >= StageCount {
		return "none"
	}
	return stageNames[s]
}

// Title is the column header shown for the stage
func (s Stage) Title() string {
	if s >= StageCount {
		return ""
	}
	return stageTitles[s]
}

// stageCursor is the type-erased view of a Cursor the cascade iterates over
type stageCursor interface {
	Len() int
	Locked() bool
	Selected() (int, bool)
	Labels() []string
	Move(Direction)
	setLocked(bool)
	clearHighlight()
	reset()
}

var (
	_ stageCursor = (*Cursor[string])(nil)
)

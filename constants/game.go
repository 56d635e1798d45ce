package constants

import "time"

// Frame Loop Timing Constants
const (
	// FrameTickInterval is the poller tick; bounds how long the driver waits with no input
	FrameTickInterval = 200 * time.Millisecond

	// EventBufferSize is the capacity of the poller -> driver channel
	EventBufferSize = 64

	// ActionQueueSize is the capacity of the resolved action queue
	ActionQueueSize = 32

	// MetricsInterval is the default metric export period
	MetricsInterval = 10 * time.Second
)

// Readiness Constants
const (
	// ReadyMax is the saturation point of every readiness clock (seconds of accrued time)
	ReadyMax = 60.0

	// TimeModBase is the floor of a combatant's time multiplier
	TimeModBase = 1.0

	// TimeModSpread is the width of the random offset added to TimeModBase
	TimeModSpread = 1.0

	// TimeModResolution is the die size used to draw the random offset
	TimeModResolution = 1000
)

// Party Constants
const (
	// PartyCapacity is the maximum number of combatants on one side
	PartyCapacity = 4
)

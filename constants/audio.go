package constants

import "time"

// Cue Sound Timing
const (
	ConfirmSoundDuration = 40 * time.Millisecond
	CancelSoundDuration  = 60 * time.Millisecond
	GrantSoundDuration   = 180 * time.Millisecond
	ResolveSoundDuration = 120 * time.Millisecond
)

// Cue Sound Frequencies (Hz)
const (
	ConfirmSoundFreq = 880.0
	CancelSoundFreq  = 330.0
	GrantSoundFreq   = 1320.0
	ResolveSoundFreq = 660.0
)

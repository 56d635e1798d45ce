// Package audio plays short feedback cues for the selection cascade
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/atb-fighter/constants"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager mixes cue sounds onto the speaker
// Every Play method is a silent no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool

	// lockSpeaker/unlockSpeaker guard mixer changes against the speaker goroutine
	lockSpeaker   func()
	unlockSpeaker func()
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:         &beep.Mixer{},
		lockSpeaker:   speaker.Lock,
		unlockSpeaker: speaker.Unlock,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// beep has no speaker Close; an empty mixer leaves nothing audible
	sm.lockSpeaker()
	sm.mixer.Clear()
	sm.unlockSpeaker()
	sm.initialized = false
}

// SetMuted silences cues without tearing down the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// PlayConfirm plays a short high blip when a stage locks
func (sm *SoundManager) PlayConfirm() {
	sm.play(constants.ConfirmSoundDuration, NewToneGenerator(sampleRate, constants.ConfirmSoundFreq, 0.2))
}

// PlayCancel plays a low blip when a stage unlocks
func (sm *SoundManager) PlayCancel() {
	sm.play(constants.CancelSoundDuration, NewToneGenerator(sampleRate, constants.CancelSoundFreq, 0.2))
}

// PlayGrant plays a rising chime when a command is unlocked
func (sm *SoundManager) PlayGrant() {
	sm.play(constants.GrantSoundDuration, NewChimeGenerator(sampleRate, constants.GrantSoundFreq, constants.GrantSoundDuration))
}

// PlayResolve plays a two-step tone when an action is handed off
func (sm *SoundManager) PlayResolve() {
	sm.play(constants.ResolveSoundDuration, NewChimeGenerator(sampleRate, constants.ResolveSoundFreq, constants.ResolveSoundDuration))
}

func (sm *SoundManager) play(d time.Duration, s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	sm.lockSpeaker()
	sm.mixer.Add(beep.Take(sampleRate.N(d), s))
	sm.unlockSpeaker()
}

// ToneGenerator generates a sine tone with a short fade-in
type ToneGenerator struct {
	sr     beep.SampleRate
	freq   float64
	volume float64
	pos    int
}

// NewToneGenerator creates a tone generator
func NewToneGenerator(sr beep.SampleRate, freq, volume float64) *ToneGenerator {
	return &ToneGenerator{
		sr:     sr,
		freq:   freq,
		volume: volume,
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// 5ms attack avoids a click
		envelope := math.Min(t/0.005, 1.0)
		sample := g.volume * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// ChimeGenerator plays the base frequency then a fifth above it, decaying
type ChimeGenerator struct {
	sr    beep.SampleRate
	freq  float64
	split int
	pos   int
}

// NewChimeGenerator creates a chime that steps up halfway through d
func NewChimeGenerator(sr beep.SampleRate, freq float64, d time.Duration) *ChimeGenerator {
	return &ChimeGenerator{
		sr:    sr,
		freq:  freq,
		split: sr.N(d / 2),
	}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		freq := g.freq
		if g.pos >= g.split {
			freq = g.freq * 1.5
		}

		envelope := math.Min(t/0.005, 1.0) * math.Exp(-t*6)
		sample := 0.2 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

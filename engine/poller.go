package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/atb-fighter/constants"
	"github.com/lixenwraith/atb-fighter/input"
)

// Poller forwards terminal input and periodic ticks to the frame driver
// It only reads the screen and never touches combat state
type Poller struct {
	screen   tcell.Screen
	keys     *input.KeyTable
	interval time.Duration
	events   chan Event
	logger   zerolog.Logger

	crashHandler func(any)
}

// PollerConfig holds the poller's collaborators
type PollerConfig struct {
	Screen       tcell.Screen
	Keys         *input.KeyTable
	TickInterval time.Duration
	Logger       zerolog.Logger
}

// NewPoller validates cfg and creates a poller with a buffered event channel
func NewPoller(cfg *PollerConfig) (*Poller, error) {
	if cfg == nil {
		return nil, fmt.Errorf("poller config is required")
	}
	if cfg.Screen == nil {
		return nil, fmt.Errorf("screen is required")
	}
	keys := cfg.Keys
	if keys == nil {
		keys = input.DefaultKeyTable()
	}
	interval := cfg.TickInterval
	if interval <= 0 {
		interval = constants.FrameTickInterval
	}

	return &Poller{
		screen:   cfg.Screen,
		keys:     keys,
		interval: interval,
		events:   make(chan Event, constants.EventBufferSize),
		logger:   cfg.Logger,
	}, nil
}

// SetCrashHandler installs the function called when a poller goroutine panics
// The handler is expected to restore the terminal and exit
func (p *Poller) SetCrashHandler(fn func(any)) {
	p.crashHandler = fn
}

// Events is the receive side consumed by Driver.Run
func (p *Poller) Events() <-chan Event {
	return p.events
}

// Start launches the input and tick goroutines; both stop when ctx is done
// The input goroutine also stops when the screen is finalized
func (p *Poller) Start(ctx context.Context) {
	go p.pollInput(ctx)
	go p.pollTicks(ctx)
}

func (p *Poller) pollInput(ctx context.Context) {
	defer p.recoverCrash()

	for {
		ev := p.screen.PollEvent()
		if ev == nil {
			if ctx.Err() == nil {
				p.send(ctx, Event{Type: EventError, Err: ErrScreenClosed})
			}
			return
		}

		intent, ok := p.translate(ev)
		if !ok {
			continue
		}
		if !p.send(ctx, Event{Type: EventInput, Intent: intent}) {
			return
		}
	}
}

func (p *Poller) translate(ev tcell.Event) (input.Intent, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		intent := p.keys.Translate(ev)
		if intent.Type == input.IntentNone {
			p.logger.Debug().Str("key", ev.Name()).Msg("unbound key")
			return input.Intent{}, false
		}
		return intent, true
	case *tcell.EventResize:
		return input.Intent{Type: input.IntentResize}, true
	default:
		return input.Intent{}, false
	}
}

func (p *Poller) pollTicks(ctx context.Context) {
	defer p.recoverCrash()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// A backed-up driver already has a wakeup pending
			select {
			case p.events <- Event{Type: EventTick}:
			default:
			}
		}
	}
}

// send blocks until the event is queued or ctx is done
func (p *Poller) send(ctx context.Context, ev Event) bool {
	select {
	case p.events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

func (p *Poller) recoverCrash() {
	r := recover()
	if r == nil {
		return
	}
	if p.crashHandler != nil {
		p.crashHandler(r)
		return
	}
	panic(r)
}

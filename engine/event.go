package engine

import (
	"errors"

	"github.com/lixenwraith/atb-fighter/input"
)

// EventType discriminates what woke the frame driver
type EventType uint8

const (
	EventTick EventType = iota
	EventInput
	EventError
)

func (t EventType) String() string {
	switch t {
	case EventTick:
		return "tick"
	case EventInput:
		return "input"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}

// Event is one message from the poller to the frame driver
type Event struct {
	Type   EventType
	Intent input.Intent // EventInput only
	Err    error        // EventError only
}

var (
	// ErrEventsClosed is returned by Run when the event channel closes under it
	ErrEventsClosed = errors.New("event channel closed")
	// ErrScreenClosed is reported by the poller when the screen stops yielding events
	ErrScreenClosed = errors.New("screen closed")
)

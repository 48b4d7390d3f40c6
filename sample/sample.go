// Package sample implements the two sampling strategies layered over a
// protocol decoder: Periodic (fixed-rate pin poll) and Event
// (interrupt/edge-driven with a caller-supplied delta). Both turn raw pin
// state into the (level, duration) protocol.Event pairs decoders consume.
package sample

import "github.com/infraredgo/infrared/protocol"

// PinInput is the library's only read dependency: an infallible,
// constant-time boolean pin read. Concrete hardware adapters live outside
// this package (see internal/hal).
type PinInput interface {
	IsHigh() bool
}

// Periodic samples a pin at a fixed rate (the caller's responsibility — see
// §4.3: at least 2x the shortest symbol rate required by any decoder it
// feeds). Each call either extends the run of the current level or, on a
// level change, emits one protocol.Event carrying the *previous* level and
// how many ticks it was held.
type Periodic struct {
	pin          PinInput
	lastLevel    bool
	ticksAtLevel uint32
	started      bool
}

// NewPeriodic constructs a Periodic adapter reading from pin.
func NewPeriodic(pin PinInput) *Periodic {
	return &Periodic{pin: pin}
}

// Pin returns the underlying pin, so an interrupt handler can clear a
// pending-edge flag on the GPIO peripheral after this call.
func (p *Periodic) Pin() PinInput { return p.pin }

// Sample reads the pin once and advances the run-length counter. It returns
// an Event, and ok=true, exactly when the level just changed; otherwise ok
// is false and the counter was simply incremented.
func (p *Periodic) Sample() (ev protocol.Event, ok bool) {
	level := p.pin.IsHigh()
	if !p.started {
		p.started = true
		p.lastLevel = level
		p.ticksAtLevel = 1
		return protocol.Event{}, false
	}
	if level == p.lastLevel {
		p.ticksAtLevel++
		return protocol.Event{}, false
	}
	ev = protocol.Event{Level: p.lastLevel, Duration: p.ticksAtLevel}
	p.lastLevel = level
	p.ticksAtLevel = 1
	return ev, true
}

// Event adapts an edge-triggered interrupt source: the caller supplies the
// tick count since the previous edge directly, along with the new pin
// level, and Event forwards the *previous* level's duration (matching
// Periodic's Event shape) to the decoder. The previous level is always the
// logical complement of the new one — a pin can only transition to newLevel
// from its opposite — so no state needs to be tracked between calls.
// Durations longer than maxTicks are clamped, signalling the decoder should
// abandon any in-progress frame.
type Event struct {
	pin PinInput
}

// NewEvent constructs an Event adapter reading the current level from pin.
func NewEvent(pin PinInput) *Event {
	return &Event{pin: pin}
}

// Pin returns the underlying pin, so an interrupt handler can clear a
// pending-edge flag on the GPIO peripheral after this call.
func (e *Event) Pin() PinInput { return e.pin }

// Next reports the protocol.Event for an edge that just occurred
// durationTicks after the previous one, given the pin's new level. maxTicks
// is the feeding decoder's MaxSymbolTicks; a duration beyond it is clamped
// to maxTicks+1 so the decoder reliably sees "too long" and resets, per §4.3.
func (e *Event) Next(durationTicks uint32, newLevel bool, maxTicks uint32) protocol.Event {
	if durationTicks > maxTicks {
		durationTicks = maxTicks + 1
	}
	return protocol.Event{Level: !newLevel, Duration: durationTicks}
}

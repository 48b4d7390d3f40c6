// Package receiver binds a single protocol decoder to one sampling
// adapter and one input pin, and a fixed-arity MultiReceiver that drives
// several decoders off one shared pin read per tick.
package receiver

import (
	"github.com/infraredgo/infrared/protocol"
	"github.com/infraredgo/infrared/sample"
)

// Receiver binds one decoder to a periodic sampling adapter: the common
// case for a polled GPIO. Construct with NewPeriodic.
type Receiver[Cmd any] struct {
	decoder protocol.Decoder[Cmd]
	sampler *sample.Periodic
}

// NewPeriodic constructs a Receiver that polls pin at a fixed rate the
// caller guarantees (see sample.Periodic), feeding decoder.
func NewPeriodic[Cmd any](decoder protocol.Decoder[Cmd], pin sample.PinInput) *Receiver[Cmd] {
	return &Receiver[Cmd]{decoder: decoder, sampler: sample.NewPeriodic(pin)}
}

// Pin returns the underlying pin, so an interrupt handler can clear a
// pending-edge flag after Poll returns.
func (r *Receiver[Cmd]) Pin() sample.PinInput { return r.sampler.Pin() }

// Poll reads the pin once and drives the decoder. ok is true exactly when a
// command completed on this call; err is non-nil exactly when the decoder
// abandoned an in-progress frame due to a timing or data fault.
func (r *Receiver[Cmd]) Poll() (cmd Cmd, ok bool, err error) {
	ev, changed := r.sampler.Sample()
	if !changed {
		return cmd, false, nil
	}
	return feed(r.decoder, ev)
}

// EventReceiver binds one decoder to an edge-driven sampling adapter: the
// common case for an interrupt-fed GPIO where the caller already knows the
// tick delta since the previous edge. Construct with NewEvent.
type EventReceiver[Cmd any] struct {
	decoder protocol.Decoder[Cmd]
	sampler *sample.Event
}

// NewEvent constructs an EventReceiver reading pin's current level on each
// call to Event and feeding decoder.
func NewEvent[Cmd any](decoder protocol.Decoder[Cmd], pin sample.PinInput) *EventReceiver[Cmd] {
	return &EventReceiver[Cmd]{decoder: decoder, sampler: sample.NewEvent(pin)}
}

// Pin returns the underlying pin, so an interrupt handler can clear a
// pending-edge flag after Event returns.
func (r *EventReceiver[Cmd]) Pin() sample.PinInput { return r.sampler.Pin() }

// Event reads the pin for its current level and drives the decoder with the
// tick delta since the previous edge, dtTicks. ok and err follow Poll's
// contract.
func (r *EventReceiver[Cmd]) Event(dtTicks uint32) (cmd Cmd, ok bool, err error) {
	level := r.sampler.Pin().IsHigh()
	ev := r.sampler.Next(dtTicks, level, r.decoder.MaxSymbolTicks())
	return feed(r.decoder, ev)
}

func feed[Cmd any](decoder protocol.Decoder[Cmd], ev protocol.Event) (cmd Cmd, ok bool, err error) {
	result := decoder.Event(ev.Level, ev.Duration)
	switch result.Status {
	case protocol.Done:
		return result.Cmd, true, nil
	case protocol.Err:
		return cmd, false, result.Err
	default:
		return cmd, false, nil
	}
}

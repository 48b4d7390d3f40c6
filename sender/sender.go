// Package sender implements the tick-driven transmit side: a single-shot
// cooperative Sender bound to one protocol's encoder, and a MultiSender
// arbitrating a shared carrier output across several protocols.
package sender

import "github.com/infraredgo/infrared/protocol"

// CarrierOutput is the library's only write dependency: the 38 kHz (or
// protocol-specific) carrier PWM itself lives outside this package; the
// sender only flips its enable line.
type CarrierOutput interface {
	Enable()
	Disable()
}

// Encode is the shape every protocol package's Encode function has.
type Encode[Cmd any] func(cmd Cmd, rateHz uint32) protocol.Buffer

// Sender drives one protocol's Encode function against a shared carrier
// output, one tick at a time. It is single-shot and cooperative: Tick must
// be called at the same fixed rate rateHz was constructed with.
type Sender[Cmd any] struct {
	encode  Encode[Cmd]
	rateHz  uint32
	carrier CarrierOutput

	buf       protocol.Buffer
	idx       int
	onPhase   bool
	remaining uint32
	busy      bool
}

// New constructs a Sender for the given protocol Encode function, tick rate,
// and carrier output.
func New[Cmd any](encode Encode[Cmd], rateHz uint32, carrier CarrierOutput) *Sender[Cmd] {
	return &Sender[Cmd]{encode: encode, rateHz: rateHz, carrier: carrier}
}

// Load encodes cmd into the internal interval buffer and begins sending it.
// It returns false, without disturbing the send in progress, if one is
// already busy.
func (s *Sender[Cmd]) Load(cmd Cmd) bool {
	if s.busy {
		return false
	}
	buf := s.encode(cmd, s.rateHz)
	if buf.Len == 0 {
		return false
	}
	s.buf = buf
	s.idx = -1
	s.onPhase = false
	s.remaining = 0
	s.busy = true
	s.advance()
	return true
}

// IsBusy reports whether a buffer is currently in flight.
func (s *Sender[Cmd]) IsBusy() bool { return s.busy }

// Tick advances the send by one sample period. It decrements the remaining
// tick count of the current phase; when it reaches zero, it advances to the
// next phase or interval and toggles the carrier accordingly. It is a no-op
// when IsBusy is false.
func (s *Sender[Cmd]) Tick() {
	if !s.busy {
		return
	}
	if s.remaining > 0 {
		s.remaining--
	}
	if s.remaining == 0 {
		s.advance()
	}
}

// advance moves to the next non-zero-length phase, toggling the carrier on
// each on/off transition, and marks the sender idle once the buffer is
// exhausted. Zero-length phases (the synthetic leading "on" emitted by
// protocol.PackSegments for a frame that logically starts low) are skipped
// without consuming a tick.
func (s *Sender[Cmd]) advance() {
	for {
		if s.onPhase {
			s.carrier.Disable()
			s.onPhase = false
			s.remaining = s.buf.Items[s.idx].OffTicks
		} else {
			s.idx++
			if s.idx >= s.buf.Len {
				s.busy = false
				s.carrier.Disable()
				return
			}
			s.carrier.Enable()
			s.onPhase = true
			s.remaining = s.buf.Items[s.idx].OnTicks
		}
		if s.remaining > 0 {
			return
		}
	}
}

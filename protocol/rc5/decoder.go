package rc5

import (
	"github.com/infraredgo/infrared/protocol"
	"github.com/infraredgo/infrared/pulse"
)

const totalBits = 14

// Decoder decodes RC-5 bi-phase frames. Each bit cell is two half-bit
// periods of opposite polarity; a "1" bit is (space, mark) and a "0" bit is
// (mark, space) (§4.6 encode convention, inverted here for decode). Because
// Manchester coding only forces a transition in the middle of each bit, the
// boundary between two bits produces a visible edge only when the bits
// differ; when they match, the boundary's two adjacent half-periods merge
// into one double-length (long) segment. The decoder classifies every
// incoming segment as short (one half-bit) or long (two half-bits merged)
// and tracks whether it is waiting for a bit's first half or its
// (possibly-merged) second half.
type Decoder struct {
	short pulse.Window
	long  pulse.Window

	expectFirstHalf bool
	firstHalfLevel  bool
	bits            uint16
	count           uint8
}

var _ protocol.Decoder[Command] = (*Decoder)(nil)

// New constructs an RC-5 decoder for the given tick rate in Hz.
func New(rateHz uint32) *Decoder {
	return &Decoder{
		short:           pulse.NewWindow(889, 0.20, rateHz),
		long:            pulse.NewWindow(1778, 0.15, rateHz),
		expectFirstHalf: true,
	}
}

func (d *Decoder) Reset() {
	d.expectFirstHalf = true
	d.bits = 0
	d.count = 0
}

func (d *Decoder) MaxSymbolTicks() uint32 { return d.long.Hi }

func (d *Decoder) abort() protocol.Result[Command] {
	d.Reset()
	return protocol.Result[Command]{Status: protocol.Err, Err: protocol.DecoderError{Kind: protocol.ErrTiming}}
}

func (d *Decoder) pushBit(level bool) protocol.Result[Command] {
	bit := uint16(0)
	if !d.firstHalfLevel {
		bit = 1
	}
	d.bits = (d.bits << 1) | bit
	d.count++

	if d.count == totalBits {
		cmd := decodeBits(d.bits)
		d.Reset()
		return protocol.Result[Command]{Status: protocol.Done, Cmd: cmd}
	}
	return protocol.Result[Command]{Status: protocol.InProgress}
}

func (d *Decoder) Event(level bool, duration uint32) protocol.Result[Command] {
	if d.expectFirstHalf {
		if !d.short.Contains(duration) {
			if d.count == 0 {
				return protocol.Result[Command]{Status: protocol.Idle}
			}
			return d.abort()
		}
		d.firstHalfLevel = level
		d.expectFirstHalf = false
		return protocol.Result[Command]{Status: protocol.InProgress}
	}

	// Expecting the bit's second half, possibly merged with the next
	// bit's first half (long segment). Either way the observed level
	// must be the mid-bit-transition complement of the stored first half.
	if level == d.firstHalfLevel {
		return d.abort()
	}

	switch {
	case d.short.Contains(duration):
		// Clean boundary edge: this bit is done, next event starts fresh.
		r := d.pushBit(level)
		if r.Status != protocol.Done {
			d.expectFirstHalf = true
		}
		return r
	case d.long.Contains(duration):
		// Merged boundary: completes the current bit and simultaneously
		// supplies the next bit's first half at the same level.
		r := d.pushBit(level)
		if r.Status != protocol.Done {
			d.firstHalfLevel = level
			d.expectFirstHalf = false
		}
		return r
	default:
		return d.abort()
	}
}

func decodeBits(bits uint16) Command {
	return Command{
		Start1:  (bits>>13)&1 == 1,
		Start2:  (bits>>12)&1 == 1,
		Toggle:  (bits>>11)&1 == 1,
		Address: uint8((bits >> 6) & 0x1F),
		Command: uint8(bits & 0x3F),
	}
}

package sbp

import (
	"github.com/infraredgo/infrared/protocol"
	"github.com/infraredgo/infrared/pulse"
)

type fsmState uint8

const (
	stIdle fsmState = iota
	stHeaderSpace
	stBitMark
	stBitSpace
	stStopMark
)

// Decoder decodes SBP pulse-distance frames: header mark/space, 21 LSB-first
// data bits (13-bit address then 8-bit command) as mark+space pairs, then a
// trailing stop mark. Structurally identical to NEC's state machine, just
// with different nominal timings and no repeat frame or complement check.
type Decoder struct {
	headerMark  pulse.Window
	headerSpace pulse.Window
	bitMark     pulse.Window
	zeroSpace   pulse.Window
	oneSpace    pulse.Window
	stopMark    pulse.Window
	maxTicks    uint32

	state  fsmState
	bits   uint32
	bitIdx uint8
}

var _ protocol.Decoder[Command] = (*Decoder)(nil)

// New constructs an SBP decoder for the given tick rate in Hz.
func New(rateHz uint32) *Decoder {
	d := &Decoder{
		headerMark:  pulse.NewWindow(3500, 0.10, rateHz),
		headerSpace: pulse.NewWindow(1700, 0.10, rateHz),
		bitMark:     pulse.NewWindow(400, 0.25, rateHz),
		zeroSpace:   pulse.NewWindow(500, 0.25, rateHz),
		oneSpace:    pulse.NewWindow(1300, 0.15, rateHz),
		stopMark:    pulse.NewWindow(400, 0.25, rateHz),
	}
	for _, w := range []pulse.Window{d.headerMark, d.headerSpace, d.bitMark, d.zeroSpace, d.oneSpace, d.stopMark} {
		if w.Hi > d.maxTicks {
			d.maxTicks = w.Hi
		}
	}
	return d
}

func (d *Decoder) Reset() {
	d.state = stIdle
	d.bits = 0
	d.bitIdx = 0
}

func (d *Decoder) MaxSymbolTicks() uint32 { return d.maxTicks }

func (d *Decoder) abort() protocol.Result[Command] {
	d.Reset()
	return protocol.Result[Command]{Status: protocol.Err, Err: protocol.DecoderError{Kind: protocol.ErrTiming}}
}

func (d *Decoder) Event(level bool, duration uint32) protocol.Result[Command] {
	switch d.state {
	case stIdle:
		if level && d.headerMark.Contains(duration) {
			d.state = stHeaderSpace
			return protocol.Result[Command]{Status: protocol.InProgress}
		}
		return protocol.Result[Command]{Status: protocol.Idle}

	case stHeaderSpace:
		if level || !d.headerSpace.Contains(duration) {
			return d.abort()
		}
		d.bits, d.bitIdx = 0, 0
		d.state = stBitMark
		return protocol.Result[Command]{Status: protocol.InProgress}

	case stBitMark:
		if !level || !d.bitMark.Contains(duration) {
			return d.abort()
		}
		d.state = stBitSpace
		return protocol.Result[Command]{Status: protocol.InProgress}

	case stBitSpace:
		if level {
			return d.abort()
		}
		var bit uint32
		switch {
		case d.zeroSpace.Contains(duration):
			bit = 0
		case d.oneSpace.Contains(duration):
			bit = 1
		default:
			return d.abort()
		}
		d.bits |= bit << d.bitIdx
		d.bitIdx++
		if d.bitIdx == totalBits {
			d.state = stStopMark
		} else {
			d.state = stBitMark
		}
		return protocol.Result[Command]{Status: protocol.InProgress}

	case stStopMark:
		if !level || !d.stopMark.Contains(duration) {
			return d.abort()
		}
		cmd := decodeBits(d.bits)
		d.Reset()
		return protocol.Result[Command]{Status: protocol.Done, Cmd: cmd}

	default:
		d.Reset()
		return protocol.Result[Command]{Status: protocol.Idle}
	}
}

func decodeBits(bits uint32) Command {
	return Command{
		Address: uint16(bits & 0x1FFF),
		Command: uint8((bits >> addressBits) & 0xFF),
	}
}

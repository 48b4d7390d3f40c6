package nec

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
	stRepeatStop
)

// core is the NEC state machine shared by Decoder and AppleDecoder. It only
// knows about raw (level, duration) events and a 32-bit accumulator; the
// outer decoder types own the variant-specific command shape and repeat
// cache, since those differ between the 8-bit and 16-bit-address flavours.
type core struct {
	headerMark        pulse.Window
	headerSpaceNew    pulse.Window
	headerSpaceRepeat pulse.Window
	bitMark           pulse.Window
	zeroSpace         pulse.Window
	oneSpace          pulse.Window
	stopMark          pulse.Window

	state  fsmState
	bits   uint32
	bitIdx uint8
	max    uint32
}

func newCore(rateHz uint32, v Variant) core {
	c := core{
		headerMark:        pulse.NewWindow(v.HeaderMarkUs, 0.08, rateHz),
		headerSpaceNew:    pulse.NewWindow(v.HeaderSpaceUs, 0.10, rateHz),
		headerSpaceRepeat: pulse.NewWindow(v.RepeatSpaceUs, 0.15, rateHz),
		bitMark:           pulse.NewWindow(v.BitMarkUs, 0.25, rateHz),
		zeroSpace:         pulse.NewWindow(v.ZeroSpaceUs, 0.25, rateHz),
		oneSpace:          pulse.NewWindow(v.OneSpaceUs, 0.15, rateHz),
		stopMark:          pulse.NewWindow(v.BitMarkUs, 0.25, rateHz),
	}
	for _, w := range []pulse.Window{c.headerMark, c.headerSpaceNew, c.headerSpaceRepeat, c.bitMark, c.zeroSpace, c.oneSpace, c.stopMark} {
		if w.Hi > c.max {
			c.max = w.Hi
		}
	}
	return c
}

// coreResult is the type-erased outcome of one core.event call.
type coreResult struct {
	Status protocol.Status
	Bits   uint32 // valid when Status == Done && !Repeat
	Repeat bool   // valid when Status == Done
	Err    protocol.DecoderError
}

func (c *core) reset() {
	c.state = stIdle
	c.bits = 0
	c.bitIdx = 0
}

func (c *core) abort() coreResult {
	c.reset()
	return coreResult{Status: protocol.Err, Err: protocol.DecoderError{Kind: protocol.ErrTiming}}
}

func (c *core) event(level bool, duration uint32) coreResult {
	switch c.state {
	case stIdle:
		if level && c.headerMark.Contains(duration) {
			c.state = stHeaderSpace
			return coreResult{Status: protocol.InProgress}
		}
		return coreResult{Status: protocol.Idle}

	case stHeaderSpace:
		if level {
			return c.abort()
		}
		switch {
		case c.headerSpaceNew.Contains(duration):
			c.bits, c.bitIdx = 0, 0
			c.state = stBitMark
		case c.headerSpaceRepeat.Contains(duration):
			c.state = stRepeatStop
		default:
			return c.abort()
		}
		return coreResult{Status: protocol.InProgress}

	case stRepeatStop:
		if !level || !c.stopMark.Contains(duration) {
			return c.abort()
		}
		c.reset()
		return coreResult{Status: protocol.Done, Repeat: true}

	case stBitMark:
		if !level || !c.bitMark.Contains(duration) {
			return c.abort()
		}
		c.state = stBitSpace
		return coreResult{Status: protocol.InProgress}

	case stBitSpace:
		if level {
			return c.abort()
		}
		var bit uint32
		switch {
		case c.zeroSpace.Contains(duration):
			bit = 0
		case c.oneSpace.Contains(duration):
			bit = 1
		default:
			return c.abort()
		}
		c.bits |= bit << c.bitIdx
		c.bitIdx++
		if c.bitIdx == 32 {
			c.state = stStopMark
		} else {
			c.state = stBitMark
		}
		return coreResult{Status: protocol.InProgress}

	case stStopMark:
		if !level || !c.stopMark.Contains(duration) {
			return c.abort()
		}
		bits := c.bits
		c.reset()
		return coreResult{Status: protocol.Done, Bits: bits}

	default:
		c.reset()
		return coreResult{Status: protocol.Idle}
	}
}

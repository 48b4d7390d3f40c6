package rc6

import (
	"github.com/infraredgo/infrared/protocol"
	"github.com/infraredgo/infrared/pulse"
)

// totalBits is start(1) + mode(3) + toggle(1) + address(8) + command(8).
const totalBits = 21

// toggleBitIndex is the bit position (0-based, start bit first) whose cell
// is double-width.
const toggleBitIndex = 4

type fsmState uint8

const (
	stIdle fsmState = iota
	stLeaderSpace
	stBit
)

// Decoder decodes RC-6 mode-0 frames. Bit cells are bi-phase like RC-5, with
// "1" as (mark, space) and "0" as (space, mark); unlike RC-5 the cell width
// is not uniform — every bit is one 444us half-bit except the toggle bit,
// which is two (888us), so boundary-merge detection (see rc5.Decoder) must
// use a width that depends on bit position rather than one global pair of
// windows.
type Decoder struct {
	leaderMark  pulse.Window
	leaderSpace pulse.Window
	windows     [5]pulse.Window // windows[m] = m half-bit-units wide, m=1..4
	maxTicks    uint32

	state           fsmState
	idx             int
	expectFirstHalf bool
	firstHalfLevel  bool
	bits            uint32
}

var _ protocol.Decoder[Command] = (*Decoder)(nil)

// New constructs an RC-6 mode-0 decoder for the given tick rate in Hz.
func New(rateHz uint32) *Decoder {
	d := &Decoder{
		leaderMark:  pulse.NewWindow(2666, 0.08, rateHz),
		leaderSpace: pulse.NewWindow(889, 0.15, rateHz),
	}
	for m := 1; m <= 4; m++ {
		d.windows[m] = pulse.NewWindow(uint32(m)*444, 0.20, rateHz)
	}
	d.maxTicks = d.leaderMark.Hi
	for m := 1; m <= 4; m++ {
		if d.windows[m].Hi > d.maxTicks {
			d.maxTicks = d.windows[m].Hi
		}
	}
	d.Reset()
	return d
}

func (d *Decoder) Reset() {
	d.state = stIdle
	d.idx = 0
	d.expectFirstHalf = true
	d.bits = 0
}

func (d *Decoder) MaxSymbolTicks() uint32 { return d.maxTicks }

func (d *Decoder) abort() protocol.Result[Command] {
	d.Reset()
	return protocol.Result[Command]{Status: protocol.Err, Err: protocol.DecoderError{Kind: protocol.ErrTiming}}
}

// widthUnits is the half-bit-cell width, in 444us units, of bit index i.
func widthUnits(i int) int {
	if i == toggleBitIndex {
		return 2
	}
	return 1
}

func (d *Decoder) Event(level bool, duration uint32) protocol.Result[Command] {
	switch d.state {
	case stIdle:
		if level && d.leaderMark.Contains(duration) {
			d.state = stLeaderSpace
			return protocol.Result[Command]{Status: protocol.InProgress}
		}
		return protocol.Result[Command]{Status: protocol.Idle}

	case stLeaderSpace:
		if level || !d.leaderSpace.Contains(duration) {
			return d.abort()
		}
		d.state = stBit
		d.idx = 0
		d.expectFirstHalf = true
		d.bits = 0
		return protocol.Result[Command]{Status: protocol.InProgress}

	case stBit:
		return d.eventBit(level, duration)

	default:
		d.Reset()
		return protocol.Result[Command]{Status: protocol.Idle}
	}
}

func (d *Decoder) eventBit(level bool, duration uint32) protocol.Result[Command] {
	if d.expectFirstHalf {
		w := d.windows[widthUnits(d.idx)]
		if !w.Contains(duration) {
			return d.abort()
		}
		d.firstHalfLevel = level
		d.expectFirstHalf = false
		return protocol.Result[Command]{Status: protocol.InProgress}
	}

	if level == d.firstHalfLevel {
		return d.abort()
	}

	shortW := d.windows[widthUnits(d.idx)]
	hasNext := d.idx+1 < totalBits
	var longW pulse.Window
	if hasNext {
		m := widthUnits(d.idx) + widthUnits(d.idx+1)
		if m <= 4 {
			longW = d.windows[m]
		}
	}

	switch {
	case shortW.Contains(duration):
		return d.completeBit(level, false)
	case hasNext && longW.Contains(duration):
		return d.completeBit(level, true)
	default:
		return d.abort()
	}
}

// completeBit finishes the current bit cell. merged indicates the second
// half was a merged long segment that simultaneously supplies the next
// bit's first half.
func (d *Decoder) completeBit(level bool, merged bool) protocol.Result[Command] {
	bit := uint32(0)
	if d.firstHalfLevel {
		bit = 1
	}
	d.bits = (d.bits << 1) | bit
	d.idx++

	if d.idx == totalBits {
		cmd := decodeBits(d.bits)
		d.Reset()
		return protocol.Result[Command]{Status: protocol.Done, Cmd: cmd}
	}

	if merged {
		d.firstHalfLevel = level
		d.expectFirstHalf = false
	} else {
		d.expectFirstHalf = true
	}
	return protocol.Result[Command]{Status: protocol.InProgress}
}

func decodeBits(bits uint32) Command {
	return Command{
		Start:   (bits>>20)&1 == 1,
		Mode:    uint8((bits >> 17) & 0x7),
		Toggle:  (bits>>16)&1 == 1,
		Address: uint8((bits >> 8) & 0xFF),
		Command: uint8(bits & 0xFF),
	}
}

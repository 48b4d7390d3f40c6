package rc6

import "github.com/infraredgo/infrared/protocol"

// Encode turns cmd into the leader plus 21 bi-phase cells, coalesced into a
// Buffer by protocol.PackSegments. "1" is (mark, space); "0" is (space,
// mark); the toggle bit's half-cells are double the width of every other
// bit's.
func Encode(cmd Command, rateHz uint32) protocol.Buffer {
	leaderMark := protocol.TicksFromMicros(2666, rateHz)
	leaderSpace := protocol.TicksFromMicros(889, rateHz)
	unit := protocol.TicksFromMicros(444, rateHz)

	bits := []bool{cmd.Start, (cmd.Mode>>2)&1 == 1, (cmd.Mode>>1)&1 == 1, cmd.Mode&1 == 1, cmd.Toggle}
	for i := 7; i >= 0; i-- {
		bits = append(bits, (cmd.Address>>uint(i))&1 == 1)
	}
	for i := 7; i >= 0; i-- {
		bits = append(bits, (cmd.Command>>uint(i))&1 == 1)
	}

	segments := make([]protocol.Segment, 0, totalBits*2+2)
	segments = append(segments, protocol.Segment{Level: true, Ticks: leaderMark})
	segments = append(segments, protocol.Segment{Level: false, Ticks: leaderSpace})

	for i, bit := range bits {
		width := uint32(widthUnits(i)) * unit
		if bit {
			segments = append(segments, protocol.Segment{Level: true, Ticks: width})
			segments = append(segments, protocol.Segment{Level: false, Ticks: width})
		} else {
			segments = append(segments, protocol.Segment{Level: false, Ticks: width})
			segments = append(segments, protocol.Segment{Level: true, Ticks: width})
		}
	}
	return protocol.PackSegments(segments)
}

package rc5

import "github.com/infraredgo/infrared/protocol"

// Encode turns cmd into 14 Manchester bit cells (28 half-bits), coalesced into a
// Buffer by protocol.PackSegments. "1" is (space, mark); "0" is (mark, space)
// (§4.6).
func Encode(cmd Command, rateHz uint32) protocol.Buffer {
	unit := protocol.TicksFromMicros(889, rateHz)

	bits := []bool{cmd.Start1, cmd.Start2, cmd.Toggle}
	for i := 4; i >= 0; i-- {
		bits = append(bits, (cmd.Address>>uint(i))&1 == 1)
	}
	for i := 5; i >= 0; i-- {
		bits = append(bits, (cmd.Command>>uint(i))&1 == 1)
	}

	segments := make([]protocol.Segment, 0, totalBits*2)
	for _, bit := range bits {
		if bit {
			segments = append(segments, protocol.Segment{Level: false, Ticks: unit})
			segments = append(segments, protocol.Segment{Level: true, Ticks: unit})
		} else {
			segments = append(segments, protocol.Segment{Level: true, Ticks: unit})
			segments = append(segments, protocol.Segment{Level: false, Ticks: unit})
		}
	}
	return protocol.PackSegments(segments)
}

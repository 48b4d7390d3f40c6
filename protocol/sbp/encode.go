package sbp

import "github.com/infraredgo/infrared/protocol"

// Encode turns cmd into the exact inverse of the decoder's symbol table.
func Encode(cmd Command, rateHz uint32) protocol.Buffer {
	var buf protocol.Buffer

	headerMark := protocol.TicksFromMicros(3500, rateHz)
	headerSpace := protocol.TicksFromMicros(1700, rateHz)
	bitMark := protocol.TicksFromMicros(400, rateHz)
	zeroSpace := protocol.TicksFromMicros(500, rateHz)
	oneSpace := protocol.TicksFromMicros(1300, rateHz)

	bits := uint32(cmd.Address&0x1FFF) | uint32(cmd.Command)<<addressBits

	buf.Push(headerMark, headerSpace)
	for i := 0; i < totalBits; i++ {
		space := zeroSpace
		if (bits>>uint(i))&1 == 1 {
			space = oneSpace
		}
		buf.Push(bitMark, space)
	}
	buf.Push(bitMark, 0)
	return buf
}

package nec

import "github.com/infraredgo/infrared/protocol"

// Encode turns a Command into the exact inverse of the decoder's symbol
// table: header mark/space, 32 LSB-first data bits, trailing stop mark. A
// Repeat command encodes the short "AGC burst + 2250us gap + stop" frame
// instead of re-sending address/command.
func Encode(cmd Command, rateHz uint32, v Variant) protocol.Buffer {
	var buf protocol.Buffer

	headerMark := protocol.TicksFromMicros(v.HeaderMarkUs, rateHz)
	bitMark := protocol.TicksFromMicros(v.BitMarkUs, rateHz)

	if cmd.Repeat {
		repeatSpace := protocol.TicksFromMicros(v.RepeatSpaceUs, rateHz)
		buf.Push(headerMark, repeatSpace)
		buf.Push(bitMark, 0)
		return buf
	}

	headerSpace := protocol.TicksFromMicros(v.HeaderSpaceUs, rateHz)
	zeroSpace := protocol.TicksFromMicros(v.ZeroSpaceUs, rateHz)
	oneSpace := protocol.TicksFromMicros(v.OneSpaceUs, rateHz)

	bits := encodeBits(cmd, v)

	buf.Push(headerMark, headerSpace)
	for i := 0; i < 32; i++ {
		space := zeroSpace
		if (bits>>uint(i))&1 == 1 {
			space = oneSpace
		}
		buf.Push(bitMark, space)
	}
	buf.Push(bitMark, 0)
	return buf
}

// EncodeStandard encodes cmd using StandardVariant's timings, matching New's
// decoder. Use this (rather than Encode) where a fixed-signature Encode
// function is required, e.g. sender.New's Encode type parameter.
func EncodeStandard(cmd Command, rateHz uint32) protocol.Buffer {
	return Encode(cmd, rateHz, StandardVariant())
}

// EncodeSamsung encodes cmd using SamsungVariant's timings, matching
// NewSamsung's decoder.
func EncodeSamsung(cmd Command, rateHz uint32) protocol.Buffer {
	return Encode(cmd, rateHz, SamsungVariant())
}

// EncodeApple encodes an AppleCommand the same way, with the 16-bit address
// spanning the first two bytes instead of address+complement.
func EncodeApple(cmd AppleCommand, rateHz uint32) protocol.Buffer {
	v := AppleVariant()
	var buf protocol.Buffer

	headerMark := protocol.TicksFromMicros(v.HeaderMarkUs, rateHz)
	bitMark := protocol.TicksFromMicros(v.BitMarkUs, rateHz)

	if cmd.Repeat {
		repeatSpace := protocol.TicksFromMicros(v.RepeatSpaceUs, rateHz)
		buf.Push(headerMark, repeatSpace)
		buf.Push(bitMark, 0)
		return buf
	}

	headerSpace := protocol.TicksFromMicros(v.HeaderSpaceUs, rateHz)
	zeroSpace := protocol.TicksFromMicros(v.ZeroSpaceUs, rateHz)
	oneSpace := protocol.TicksFromMicros(v.OneSpaceUs, rateHz)

	bits := uint32(cmd.Address) | uint32(cmd.Command)<<16

	buf.Push(headerMark, headerSpace)
	for i := 0; i < 32; i++ {
		space := zeroSpace
		if (bits>>uint(i))&1 == 1 {
			space = oneSpace
		}
		buf.Push(bitMark, space)
	}
	buf.Push(bitMark, 0)
	return buf
}

func encodeBits(cmd Command, v Variant) uint32 {
	addr := uint32(cmd.Address)
	cmdByte := uint32(cmd.Command)

	addrInv := addr
	cmdInv := cmdByte
	if v.CheckComplement {
		addrInv = uint32(^cmd.Address) & 0xff
		cmdInv = uint32(^cmd.Command) & 0xff
	}
	return addr | addrInv<<8 | cmdByte<<16 | cmdInv<<24
}

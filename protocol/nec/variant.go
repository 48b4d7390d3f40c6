// Package nec implements the NEC pulse-distance protocol family: standard
// NEC (with inverse-byte complement check), Samsung NEC (no complement,
// repeated address byte) and Apple NEC (16-bit address, no complement).
//
// Wire format (§6): 9000us header mark, then either 4500us (new frame) or
// 2250us (repeat) header space, then 32 data bits LSB-first as
// mark(562us)+space(562us=0, 1687us=1), then a trailing 562us stop mark.
package nec

// Variant parameterises the shared NEC state machine for standard, Samsung
// and Apple flavours: same FSM shape, different nominal timings and
// complement policy (§9: "a tagged variant on the decoder with
// variant-specific constants chosen at construction").
type Variant struct {
	HeaderMarkUs    uint32
	HeaderSpaceUs   uint32
	RepeatSpaceUs   uint32
	BitMarkUs       uint32
	ZeroSpaceUs     uint32
	OneSpaceUs      uint32
	CheckComplement bool
	AppleAddress    bool // true: 16-bit address from bytes 0-1, no complement check
}

// StandardVariant is the original NEC timing with the inverse-byte complement
// check enabled.
func StandardVariant() Variant {
	return Variant{
		HeaderMarkUs:    9000,
		HeaderSpaceUs:   4500,
		RepeatSpaceUs:   2250,
		BitMarkUs:       562,
		ZeroSpaceUs:     562,
		OneSpaceUs:      1687,
		CheckComplement: true,
	}
}

// SamsungVariant uses NEC timings but does not verify the complement bytes
// (Samsung sets send the address twice instead of address+~address).
func SamsungVariant() Variant {
	v := StandardVariant()
	v.CheckComplement = false
	return v
}

// AppleVariant uses NEC timings with a fixed 16-bit address spanning bytes 0
// and 1, and no complement check.
func AppleVariant() Variant {
	v := StandardVariant()
	v.CheckComplement = false
	v.AppleAddress = true
	return v
}

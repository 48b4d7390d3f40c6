package nec

import "github.com/infraredgo/infrared/protocol"

// Decoder decodes standard and Samsung NEC frames into Command. Construct
// with New (standard, complement-checked) or NewSamsung (no complement
// check).
type Decoder struct {
	core
	variant  Variant
	last     Command
	haveLast bool
}

var _ protocol.Decoder[Command] = (*Decoder)(nil)

// New constructs a standard NEC decoder for the given tick rate in Hz.
func New(rateHz uint32) *Decoder {
	return NewVariant(rateHz, StandardVariant())
}

// NewSamsung constructs a Samsung NEC decoder (no complement check).
func NewSamsung(rateHz uint32) *Decoder {
	return NewVariant(rateHz, SamsungVariant())
}

// NewVariant constructs a decoder for an arbitrary 8-bit-address NEC
// variant. AppleVariant is not valid here; use NewApple instead.
func NewVariant(rateHz uint32, v Variant) *Decoder {
	return &Decoder{core: newCore(rateHz, v), variant: v}
}

func (d *Decoder) Event(level bool, duration uint32) protocol.Result[Command] {
	r := d.core.event(level, duration)
	switch r.Status {
	case protocol.Done:
		if r.Repeat {
			if !d.haveLast {
				return protocol.Result[Command]{Status: protocol.Idle}
			}
			cmd := d.last
			cmd.Repeat = true
			return protocol.Result[Command]{Status: protocol.Done, Cmd: cmd}
		}
		cmd, ok := decodeBits(r.Bits, d.variant)
		if !ok {
			return protocol.Result[Command]{Status: protocol.Err, Err: protocol.DecoderError{Kind: protocol.ErrData}}
		}
		d.last = cmd
		d.haveLast = true
		return protocol.Result[Command]{Status: protocol.Done, Cmd: cmd}
	case protocol.Err:
		return protocol.Result[Command]{Status: protocol.Err, Err: r.Err}
	case protocol.InProgress:
		return protocol.Result[Command]{Status: protocol.InProgress}
	default:
		return protocol.Result[Command]{Status: protocol.Idle}
	}
}

func (d *Decoder) Reset() { d.core.reset() }

func (d *Decoder) MaxSymbolTicks() uint32 { return d.core.max }

func decodeBits(bits uint32, v Variant) (Command, bool) {
	b0 := uint8(bits)
	b1 := uint8(bits >> 8)
	b2 := uint8(bits >> 16)
	b3 := uint8(bits >> 24)

	if v.CheckComplement {
		if b1 != ^b0 || b3 != ^b2 {
			return Command{}, false
		}
	}
	return Command{Address: b0, Command: b2}, true
}

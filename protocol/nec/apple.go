package nec

import "github.com/infraredgo/infrared/protocol"

// AppleDecoder decodes the Apple NEC variant: a fixed 16-bit device address
// in bytes 0-1, command in byte 2, no complement check.
type AppleDecoder struct {
	core
	last     AppleCommand
	haveLast bool
}

var _ protocol.Decoder[AppleCommand] = (*AppleDecoder)(nil)

// NewApple constructs an Apple NEC decoder for the given tick rate in Hz.
func NewApple(rateHz uint32) *AppleDecoder {
	return &AppleDecoder{core: newCore(rateHz, AppleVariant())}
}

func (d *AppleDecoder) Event(level bool, duration uint32) protocol.Result[AppleCommand] {
	r := d.core.event(level, duration)
	switch r.Status {
	case protocol.Done:
		if r.Repeat {
			if !d.haveLast {
				return protocol.Result[AppleCommand]{Status: protocol.Idle}
			}
			cmd := d.last
			cmd.Repeat = true
			return protocol.Result[AppleCommand]{Status: protocol.Done, Cmd: cmd}
		}
		cmd := decodeAppleBits(r.Bits)
		d.last = cmd
		d.haveLast = true
		return protocol.Result[AppleCommand]{Status: protocol.Done, Cmd: cmd}
	case protocol.Err:
		return protocol.Result[AppleCommand]{Status: protocol.Err, Err: r.Err}
	case protocol.InProgress:
		return protocol.Result[AppleCommand]{Status: protocol.InProgress}
	default:
		return protocol.Result[AppleCommand]{Status: protocol.Idle}
	}
}

func (d *AppleDecoder) Reset() { d.core.reset() }

func (d *AppleDecoder) MaxSymbolTicks() uint32 { return d.core.max }

func decodeAppleBits(bits uint32) AppleCommand {
	address := uint16(bits)
	command := uint8(bits >> 16)
	return AppleCommand{Address: address, Command: command}
}

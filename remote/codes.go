package remote

import (
	"github.com/infraredgo/infrared/protocol/nec"
	"github.com/infraredgo/infrared/protocol/rc5"
	"github.com/infraredgo/infrared/protocol/rc6"
	"github.com/infraredgo/infrared/protocol/sbp"
)

// NECCode is the CodeOf for nec.Command, for use with NewTable[nec.Command].
func NECCode(cmd nec.Command) (address uint16, code uint8) {
	return uint16(cmd.Address), cmd.Command
}

// AppleCode is the CodeOf for nec.AppleCommand, whose address is 16 bits.
func AppleCode(cmd nec.AppleCommand) (address uint16, code uint8) {
	return cmd.Address, cmd.Command
}

// RC5Code is the CodeOf for rc5.Command.
func RC5Code(cmd rc5.Command) (address uint16, code uint8) {
	return uint16(cmd.Address), cmd.Command
}

// RC6Code is the CodeOf for rc6.Command.
func RC6Code(cmd rc6.Command) (address uint16, code uint8) {
	return uint16(cmd.Address), cmd.Command
}

// SBPCode is the CodeOf for sbp.Command.
func SBPCode(cmd sbp.Command) (address uint16, code uint8) {
	return cmd.Address, cmd.Command
}

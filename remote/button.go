// Package remote implements the logical remote-control layer (§4.8): a
// compile-time table mapping (address, protocol command code) pairs to a
// logical Button, plus a toggle-bit repeat tracker for the bi-phase
// protocols whose decoders surface the toggle bit raw.
package remote

// Button is a logical remote-control function, independent of which
// protocol or which manufacturer's code table produced it.
type Button uint8

const (
	// Unmapped is returned when a code arrives that a Table doesn't cover,
	// or whose address doesn't match the Table's declared address.
	Unmapped Button = iota

	ButtonDigit0
	ButtonDigit1
	ButtonDigit2
	ButtonDigit3
	ButtonDigit4
	ButtonDigit5
	ButtonDigit6
	ButtonDigit7
	ButtonDigit8
	ButtonDigit9

	ButtonPower
	ButtonMute

	ButtonVolumeUp
	ButtonVolumeDown
	ButtonChannelUp
	ButtonChannelDown

	ButtonPlay
	ButtonPause
	ButtonStop
	ButtonNext
	ButtonPrevious
	ButtonRecord

	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonOK
	ButtonMenu
	ButtonBack
)

func (b Button) String() string {
	switch b {
	case ButtonDigit0, ButtonDigit1, ButtonDigit2, ButtonDigit3, ButtonDigit4,
		ButtonDigit5, ButtonDigit6, ButtonDigit7, ButtonDigit8, ButtonDigit9:
		return "digit"
	case ButtonPower:
		return "power"
	case ButtonMute:
		return "mute"
	case ButtonVolumeUp:
		return "volume-up"
	case ButtonVolumeDown:
		return "volume-down"
	case ButtonChannelUp:
		return "channel-up"
	case ButtonChannelDown:
		return "channel-down"
	case ButtonPlay:
		return "play"
	case ButtonPause:
		return "pause"
	case ButtonStop:
		return "stop"
	case ButtonNext:
		return "next"
	case ButtonPrevious:
		return "previous"
	case ButtonRecord:
		return "record"
	case ButtonUp:
		return "up"
	case ButtonDown:
		return "down"
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonOK:
		return "ok"
	case ButtonMenu:
		return "menu"
	case ButtonBack:
		return "back"
	default:
		return "unmapped"
	}
}

package hal

import (
	"fmt"

	"github.com/infraredgo/infrared/sample"
	"github.com/infraredgo/infrared/sender"
)

// NewInputPin resolves a config-selected backend ("rpio", "gpiocdev", or
// "periph") to a concrete sample.PinInput. For "gpiocdev", chipName may be
// empty to auto-detect via DetectGPIOChip. For "periph", pinName is the
// periph.io pin name (e.g. "GPIO17") and pin is ignored.
func NewInputPin(backend string, pin int, chipName, pinName string) (sample.PinInput, error) {
	switch backend {
	case "rpio":
		return NewRPIOInputPin(pin)
	case "gpiocdev":
		if chipName == "" {
			chipName = DetectGPIOChip()
		}
		return NewGpiocdevInputPin(chipName, pin)
	case "periph":
		return NewPeriphInputPin(pinName)
	default:
		return nil, fmt.Errorf("hal: unknown input backend %q", backend)
	}
}

// NewCarrierOutput resolves a config-selected backend to a concrete
// sender.CarrierOutput, driving the carrier-gate pin at carrierHz (ignored
// by the direct-drive rpio/periph backends, which assume an externally
// oscillating carrier).
func NewCarrierOutput(backend string, pin int, carrierHz int, chipName, pinName string) (sender.CarrierOutput, error) {
	switch backend {
	case "rpio":
		return NewRPIOOutputCarrier(pin)
	case "gpiocdev":
		if chipName == "" {
			chipName = DetectGPIOChip()
		}
		return NewGpiocdevCarrier(chipName, pin, carrierHz, 128)
	case "periph":
		return NewPeriphOutputCarrier(pinName)
	default:
		return nil, fmt.Errorf("hal: unknown output backend %q", backend)
	}
}

package hal

import (
	"fmt"

	"github.com/stianeikeland/go-rpio/v4"
)

// RPIOPin adapts a go-rpio direct /dev/mem register pin to sample.PinInput.
// This is the lowest-latency backend, meant for sample.Periodic's tight
// polling loop on a Raspberry Pi.
type RPIOPin struct {
	pin rpio.Pin
}

// NewRPIOInputPin opens the go-rpio memory map (idempotent across calls
// within one process) and configures pinNum as an input.
func NewRPIOInputPin(pinNum int) (*RPIOPin, error) {
	if err := rpio.Open(); err != nil {
		return nil, fmt.Errorf("hal: open go-rpio: %w", err)
	}
	p := rpio.Pin(pinNum)
	p.Input()
	return &RPIOPin{pin: p}, nil
}

// IsHigh reads the pin's current level.
func (p *RPIOPin) IsHigh() bool {
	return p.pin.Read() == rpio.High
}

// RPIOCarrier adapts a go-rpio output pin to sender.CarrierOutput, driving
// it directly high/low rather than through software PWM — suited to a board
// where the carrier is generated externally (a 555 timer or the LED
// driver's own oscillator) and this pin only gates it.
type RPIOCarrier struct {
	pin rpio.Pin
}

// NewRPIOOutputCarrier opens the go-rpio memory map and configures pinNum
// as an output, initially low.
func NewRPIOOutputCarrier(pinNum int) (*RPIOCarrier, error) {
	if err := rpio.Open(); err != nil {
		return nil, fmt.Errorf("hal: open go-rpio: %w", err)
	}
	p := rpio.Pin(pinNum)
	p.Output()
	p.Low()
	return &RPIOCarrier{pin: p}, nil
}

func (c *RPIOCarrier) Enable() { c.pin.High() }

func (c *RPIOCarrier) Disable() { c.pin.Low() }

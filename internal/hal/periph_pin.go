package hal

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// PeriphPin adapts a periph.io gpio.PinIn to sample.PinInput: the portable
// fallback when neither go-rpio's direct register access nor the Linux
// gpiocdev character device is available (BSD hosts, non-Broadcom SBCs),
// the same role periph.io plays for the rest of the pack's hardware-facing
// repos.
type PeriphPin struct {
	pin gpio.PinIn
}

// NewPeriphInputPin initializes the periph.io host drivers and resolves
// name (e.g. "GPIO17") to an input pin, leaving its pull setting unchanged.
func NewPeriphInputPin(name string) (*PeriphPin, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("hal: periph.io host init: %w", err)
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("hal: unknown periph.io pin %q", name)
	}
	if err := p.In(gpio.PullNoChange, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("hal: configure pin %q as input: %w", name, err)
	}
	return &PeriphPin{pin: p}, nil
}

// IsHigh reads the pin's current level.
func (p *PeriphPin) IsHigh() bool {
	return p.pin.Read() == gpio.High
}

// PeriphCarrier adapts a periph.io gpio.PinOut to sender.CarrierOutput,
// driving it directly high/low.
type PeriphCarrier struct {
	pin gpio.PinOut
}

// NewPeriphOutputCarrier initializes the periph.io host drivers and
// resolves name to an output pin, initially low.
func NewPeriphOutputCarrier(name string) (*PeriphCarrier, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("hal: periph.io host init: %w", err)
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("hal: unknown periph.io pin %q", name)
	}
	out, ok := p.(gpio.PinOut)
	if !ok {
		return nil, fmt.Errorf("hal: pin %q does not support output", name)
	}
	if err := out.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("hal: configure pin %q as output: %w", name, err)
	}
	return &PeriphCarrier{pin: out}, nil
}

func (c *PeriphCarrier) Enable() { _ = c.pin.Out(gpio.High) }

func (c *PeriphCarrier) Disable() { _ = c.pin.Out(gpio.Low) }

package hal

// GpiocdevPin adapts a Linux GPIO character-device input line to
// sample.PinInput, for use by sample.Periodic or as the pin a sample.Event
// reads for the edge's new level.
type GpiocdevPin struct {
	line *gpiocdevReceiveLine
}

// NewGpiocdevInputPin opens pin on chipName as an input line and returns a
// PinInput adapter over it.
func NewGpiocdevInputPin(chipName string, pin int) (*GpiocdevPin, error) {
	line, err := newGpiocdevReceiveLine(chipName, pin)
	if err != nil {
		return nil, err
	}
	return &GpiocdevPin{line: line}, nil
}

// IsHigh reads the line's current level. A read error is treated as low,
// matching an idle (unmodulated) IR receiver output.
func (p *GpiocdevPin) IsHigh() bool {
	level, err := p.line.read()
	if err != nil {
		return false
	}
	return level
}

// Close releases the underlying GPIO line.
func (p *GpiocdevPin) Close() error {
	return p.line.close()
}

// GpiocdevCarrier adapts a software-generated Linux GPIO carrier line at a
// fixed frequency to sender.CarrierOutput: Enable/Disable gate a carrier a
// dedicated goroutine keeps generating, so boards without a free hardware
// PWM peripheral can still modulate an IR LED from a plain GPIO line.
type GpiocdevCarrier struct {
	line *gpiocdevCarrierLine
}

// NewGpiocdevCarrier opens pin on chipName and starts its carrier at
// carrierHz (38000 for a typical consumer IR LED) with the given duty cycle
// (0-255) applied while enabled.
func NewGpiocdevCarrier(chipName string, pin, carrierHz, dutyHigh int) (*GpiocdevCarrier, error) {
	line, err := newGpiocdevCarrierLine(chipName, pin, carrierHz, dutyHigh)
	if err != nil {
		return nil, err
	}
	return &GpiocdevCarrier{line: line}, nil
}

// Enable starts the carrier at the configured duty cycle.
func (c *GpiocdevCarrier) Enable() { c.line.setEnabled(true) }

// Disable stops the carrier, driving the line low.
func (c *GpiocdevCarrier) Disable() { c.line.setEnabled(false) }

// Close stops the carrier goroutine and releases the underlying GPIO line.
func (c *GpiocdevCarrier) Close() error { return c.line.close() }

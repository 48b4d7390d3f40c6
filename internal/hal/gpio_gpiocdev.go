//go:build linux
// +build linux

package hal

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/warthog618/go-gpiocdev"
)

// gpiocdevReceiveLine is a single Linux GPIO character-device input line
// carrying an IR receiver's demodulated output. This works on both Pi 4
// (gpiochip0) and Pi 5 (gpiochip4 / RP1 southbridge).
type gpiocdevReceiveLine struct {
	line *gpiocdev.Line
}

// newGpiocdevReceiveLine opens pin on chip as an input line.
func newGpiocdevReceiveLine(chipName string, pin int) (*gpiocdevReceiveLine, error) {
	line, err := gpiocdev.RequestLine(chipName, pin, gpiocdev.AsInput)
	if err != nil {
		return nil, fmt.Errorf("hal: open gpiocdev input pin %d on %s: %w", pin, chipName, err)
	}
	return &gpiocdevReceiveLine{line: line}, nil
}

func (r *gpiocdevReceiveLine) read() (bool, error) {
	val, err := r.line.Value()
	if err != nil {
		return false, fmt.Errorf("hal: read gpiocdev pin: %w", err)
	}
	return val != 0, nil
}

func (r *gpiocdevReceiveLine) close() error {
	return r.line.Close()
}

// gpiocdevCarrierLine drives an IR LED's modulation carrier on a Linux GPIO
// character-device output line. go-gpiocdev exposes no hardware PWM, so the
// carrier is generated by a dedicated goroutine toggling the line at
// carrierHz while enabled; Enable/Disable just flip a flag the goroutine
// reads, keeping the carrier running (or idle-low) the whole time the line
// is open rather than starting and stopping a goroutine per tone.
type gpiocdevCarrierLine struct {
	line      *gpiocdev.Line
	carrierHz int
	dutyHigh  int // 0-255, applied while enabled
	cancel    context.CancelFunc

	mu      sync.Mutex
	enabled bool
}

// newGpiocdevCarrierLine opens pin on chip as an output line and starts its
// carrier goroutine at carrierHz (38000 for a typical consumer IR LED) with
// the given duty cycle (0-255) applied while the carrier is enabled.
func newGpiocdevCarrierLine(chipName string, pin, carrierHz, dutyHigh int) (*gpiocdevCarrierLine, error) {
	line, err := gpiocdev.RequestLine(chipName, pin, gpiocdev.AsOutput(0))
	if err != nil {
		return nil, fmt.Errorf("hal: open gpiocdev carrier pin %d on %s: %w", pin, chipName, err)
	}
	if carrierHz <= 0 {
		carrierHz = 38000
	}
	ctx, cancel := context.WithCancel(context.Background())
	c := &gpiocdevCarrierLine{line: line, carrierHz: carrierHz, dutyHigh: dutyHigh, cancel: cancel}
	go c.run(ctx)
	return c, nil
}

func (c *gpiocdevCarrierLine) setEnabled(on bool) {
	c.mu.Lock()
	c.enabled = on
	c.mu.Unlock()
}

func (c *gpiocdevCarrierLine) close() error {
	c.cancel()
	return c.line.Close()
}

// run toggles the line at carrierHz and the configured duty cycle while
// enabled, and holds it low while disabled.
func (c *gpiocdevCarrierLine) run(ctx context.Context) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	periodUs := int64(1_000_000) / int64(c.carrierHz)
	onUs := periodUs * int64(c.dutyHigh) / 255
	offUs := periodUs - onUs

	for {
		select {
		case <-ctx.Done():
			c.line.SetValue(0)
			return
		default:
		}

		c.mu.Lock()
		on := c.enabled
		c.mu.Unlock()

		if !on {
			c.line.SetValue(0)
			sleepMicroseconds(ctx, periodUs)
			continue
		}

		c.line.SetValue(1)
		sleepMicroseconds(ctx, onUs)
		c.line.SetValue(0)
		sleepMicroseconds(ctx, offUs)
	}
}

// sleepMicroseconds sleeps for the given duration, checking for context
// cancellation.
func sleepMicroseconds(ctx context.Context, us int64) {
	if us <= 0 {
		return
	}
	t := time.NewTimer(time.Duration(us) * time.Microsecond)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

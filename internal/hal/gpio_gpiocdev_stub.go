//go:build !linux
// +build !linux

package hal

import "fmt"

// gpiocdevReceiveLine is a stub for non-Linux platforms: go-gpiocdev is
// Linux-only, so the "gpiocdev" backend simply refuses to open on any other
// GOOS rather than pretending to read a line that isn't there.
type gpiocdevReceiveLine struct{}

func newGpiocdevReceiveLine(chipName string, pin int) (*gpiocdevReceiveLine, error) {
	return nil, fmt.Errorf("hal: gpiocdev backend not supported on this platform")
}

func (r *gpiocdevReceiveLine) read() (bool, error) {
	return false, fmt.Errorf("hal: gpiocdev backend not supported on this platform")
}

func (r *gpiocdevReceiveLine) close() error { return nil }

// gpiocdevCarrierLine is a stub for non-Linux platforms.
type gpiocdevCarrierLine struct{}

func newGpiocdevCarrierLine(chipName string, pin, carrierHz, dutyHigh int) (*gpiocdevCarrierLine, error) {
	return nil, fmt.Errorf("hal: gpiocdev backend not supported on this platform")
}

func (c *gpiocdevCarrierLine) setEnabled(on bool) {}

func (c *gpiocdevCarrierLine) close() error { return nil }

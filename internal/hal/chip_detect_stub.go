//go:build !linux
// +build !linux

package hal

// DetectGPIOChip is a stub on non-Linux platforms, where the gpiocdev
// backend is unavailable; callers should prefer the periph.io backend
// there instead.
func DetectGPIOChip() string {
	return "gpiochip0"
}

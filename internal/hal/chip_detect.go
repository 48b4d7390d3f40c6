//go:build linux
// +build linux

package hal

import (
	"fmt"
	"os"
	"strings"
)

// DetectGPIOChip finds the Linux gpiochip device that owns the SoC's
// general-purpose pins by reading each candidate's sysfs label, so
// NewGpiocdevInputPin's caller doesn't have to hardcode a chip name that
// differs between a Pi 4 (gpiochip0, pinctrl-bcm2835) and a Pi 5
// (gpiochip4, pinctrl-rp1).
func DetectGPIOChip() string {
	for _, chip := range []string{"gpiochip0", "gpiochip4"} {
		label, err := os.ReadFile(fmt.Sprintf("/sys/bus/gpio/devices/%s/label", chip))
		if err != nil {
			continue
		}
		if l := strings.TrimSpace(string(label)); strings.Contains(l, "pinctrl-rp1") || strings.Contains(l, "pinctrl-bcm2") {
			return chip
		}
	}
	return "gpiochip0"
}

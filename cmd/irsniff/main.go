// Command irsniff dumps raw (level, duration) edge pairs from a GPIO pin,
// independent of any protocol decoder — useful for capturing an unknown
// remote's timings before writing a remote.Table for it.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/infraredgo/infrared/internal/config"
	"github.com/infraredgo/infrared/internal/hal"
	"github.com/infraredgo/infrared/sample"
)

func main() {
	configPath := flag.String("config", "", "path to infrared.yaml")
	pin := flag.Int("pin", 0, "override configured receiver pin")
	count := flag.Int("count", 200, "number of edges to capture before exiting")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "irsniff: load config: %v\n", err)
		os.Exit(1)
	}

	pinNum := cfg.Receiver.Pin
	if *pin != 0 {
		pinNum = *pin
	}

	in, err := hal.NewInputPin(cfg.Receiver.Backend, pinNum, "", fmt.Sprintf("GPIO%d", pinNum))
	if err != nil {
		fmt.Fprintf(os.Stderr, "irsniff: open input pin: %v\n", err)
		os.Exit(1)
	}

	rateHz := cfg.Receiver.SampleRateHz
	tick := time.Second / time.Duration(rateHz)
	sampler := sample.NewPeriodic(in)

	fmt.Printf("sampling pin %d at %d Hz (tick = %d ticks/sec); capturing %d edges\n", pinNum, rateHz, rateHz, *count)

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	seen := 0
	for range ticker.C {
		ev, ok := sampler.Sample()
		if !ok {
			continue
		}
		level := "space"
		if ev.Level {
			level = "mark"
		}
		fmt.Printf("%-5s %6d ticks (%d us)\n", level, ev.Duration, uint64(ev.Duration)*1_000_000/uint64(rateHz))
		seen++
		if seen >= *count {
			return
		}
	}
}

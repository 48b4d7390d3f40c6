// Command ircat listens on one GPIO pin and prints decoded IR remote
// commands as they arrive, one line per frame.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/infraredgo/infrared/internal/config"
	"github.com/infraredgo/infrared/internal/hal"
	"github.com/infraredgo/infrared/internal/logger"
	"github.com/infraredgo/infrared/protocol/nec"
	"github.com/infraredgo/infrared/protocol/rc5"
	"github.com/infraredgo/infrared/protocol/rc6"
	"github.com/infraredgo/infrared/protocol/sbp"
	"github.com/infraredgo/infrared/receiver"
)

func main() {
	configPath := flag.String("config", "", "path to infrared.yaml")
	protocol := flag.String("protocol", "", "override configured protocol (nec, nec-samsung, nec-apple, rc5, rc6, sbp)")
	pin := flag.Int("pin", 0, "override configured receiver pin")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ircat: load config: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(logger.DefaultConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "ircat: init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	proto := cfg.Receiver.Protocols[0]
	if *protocol != "" {
		proto = *protocol
	}
	pinNum := cfg.Receiver.Pin
	if *pin != 0 {
		pinNum = *pin
	}

	in, err := hal.NewInputPin(cfg.Receiver.Backend, pinNum, "", fmt.Sprintf("GPIO%d", pinNum))
	if err != nil {
		logger.Get().Fatal("open input pin", zap.Error(err))
	}

	log := logger.WithReceiver(proto, pinNum)
	log.Info("listening", zap.Int("sample_rate_hz", cfg.Receiver.SampleRateHz))

	tick := time.Second / time.Duration(cfg.Receiver.SampleRateHz)
	rateHz := uint32(cfg.Receiver.SampleRateHz)

	switch proto {
	case "nec":
		runPeriodic(receiver.NewPeriodic[nec.Command](nec.New(rateHz), in), tick, log)
	case "nec-samsung":
		runPeriodic(receiver.NewPeriodic[nec.Command](nec.NewSamsung(rateHz), in), tick, log)
	case "nec-apple":
		runPeriodic(receiver.NewPeriodic[nec.AppleCommand](nec.NewApple(rateHz), in), tick, log)
	case "rc5":
		runPeriodic(receiver.NewPeriodic[rc5.Command](rc5.New(rateHz), in), tick, log)
	case "rc6":
		runPeriodic(receiver.NewPeriodic[rc6.Command](rc6.New(rateHz), in), tick, log)
	case "sbp":
		runPeriodic(receiver.NewPeriodic[sbp.Command](sbp.New(rateHz), in), tick, log)
	default:
		logger.Get().Fatal("unknown protocol", zap.String("protocol", proto))
	}
}

// runPeriodic drives r at the given tick period until interrupted, logging
// every decoded command and every timing/data error.
func runPeriodic[Cmd any](r *receiver.Receiver[Cmd], tick time.Duration, log *zap.Logger) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	for range ticker.C {
		cmd, ok, err := r.Poll()
		if err != nil {
			log.Warn("decode error", zap.Error(err))
			continue
		}
		if ok {
			log.Info("command", zap.Any("cmd", cmd))
		}
	}
}

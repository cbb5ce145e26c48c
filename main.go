//go:build rp2040

package main

import (
	"context"
	"machine"
	"math/rand"
	"time"

	"stampkey-go/diag"
	"stampkey-go/platform"
	"stampkey-go/services/battery"
	"stampkey-go/services/config"
	"stampkey-go/services/controller"
)

// Board selects the preset; override with
// -ldflags "-X main.Board=pico-w-proto".
var Board = "pico-w"

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(1 * time.Second)

	cfg, ok := config.Lookup(Board)
	if !ok {
		println("[main] unknown board", Board, "- using defaults")
		cfg = config.Default()
	}

	p, err := platform.New(cfg)
	log := diag.New(p.Diag)
	if err != nil {
		log.Error("main", "bluetooth unavailable, running offline", err)
	}

	ctl, err := controller.New(cfg, p, battery.Default(), rand.New(rand.NewSource(seed())))
	if err != nil {
		log.Error("main", "config", err)
		for {
			time.Sleep(time.Hour)
		}
	}

	ctl.Boot()
	ctl.Run(context.Background())

	// EnterDeepSleep does not return on hardware.
	for {
		time.Sleep(time.Hour)
	}
}

func seed() int64 {
	if n, err := machine.GetRNG(); err == nil {
		return int64(n)
	}
	return time.Now().UnixNano()
}

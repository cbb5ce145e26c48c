//go:build !rp2040

// Command hostsim runs one wake of the firmware against the host fakes on a
// virtual clock and prints the diagnostics stream and the keys sent.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"stampkey-go/platform"
	"stampkey-go/services/battery"
	"stampkey-go/services/config"
	"stampkey-go/services/controller"
	"stampkey-go/types"
	"stampkey-go/x/timex"
)

// scriptButton is pressed for holdMs after each scheduled time.
type scriptButton struct {
	clk    *timex.Fake
	at     []int64
	holdMs int64
}

func (b *scriptButton) Pressed() bool {
	now := b.clk.NowMs()
	for _, t := range b.at {
		if now >= t && now < t+b.holdMs {
			return true
		}
	}
	return false
}

func parsePresses(s string) ([]int64, error) {
	if s == "" {
		return nil, nil
	}
	var out []int64
	for _, f := range strings.Split(s, ",") {
		n, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("press time %q: %w", f, err)
		}
		out = append(out, n)
	}
	return out, nil
}

func main() {
	board := flag.String("board", "pico-w", "board preset")
	mv := flag.Float64("adc-mv", 2000, "millivolts seen at the ADC pin")
	connected := flag.Bool("connected", true, "host keyboard connected")
	presses := flag.String("press", "", "comma-separated press times in ms")
	hold := flag.Int64("hold", 25, "press duration in ms")
	edge := flag.Bool("edge", false, "fire once per press instead of while held")
	seed := flag.Int64("seed", 1, "macro selection seed")
	flag.Parse()

	cfg, ok := config.Lookup(*board)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown board %q\n", *board)
		os.Exit(2)
	}
	if *edge {
		cfg.ButtonMode = config.ButtonEdge
	}
	at, err := parsePresses(*presses)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	h := platform.NewHost()
	h.Analog.MilliVolts = *mv
	h.Keys.Connected = *connected
	h.Pwr.Cause = types.WakeExternalIO
	h.Diag = os.Stdout
	h.Button = &scriptButton{clk: h.Time, at: at, holdMs: *hold}

	ctl, err := controller.New(cfg, &h.Platform, battery.Default(), rand.New(rand.NewSource(*seed)))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	ctl.Boot()
	state := ctl.Run(context.Background())

	fmt.Printf("\nstate=%s fired=%d asleep=%v at=%dms watchdog_resets=%d\n",
		state, ctl.Fired(), h.Pwr.Asleep, h.Time.NowMs(), h.Dog.Resets)
	for _, ev := range h.Keys.Events {
		switch ev.Kind {
		case platform.EvPress:
			fmt.Printf("%8dms press 0x%02x\n", ev.AtMs, uint8(ev.Key))
		case platform.EvReleaseAll:
			fmt.Printf("%8dms release\n", ev.AtMs)
		case platform.EvPrint:
			fmt.Printf("%8dms print %q\n", ev.AtMs, ev.Text)
		}
	}
}

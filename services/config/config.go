// Package config holds the build-time configuration of the stamp firmware.
// There is no runtime configuration: a board preset is selected at build
// time and validated once at boot.
package config

import (
	"time"

	"stampkey-go/errcode"
)

// ButtonMode selects how the control loop reads the wake button.
type ButtonMode uint8

const (
	// ButtonLevel fires on every tick while the button is held low.
	ButtonLevel ButtonMode = iota
	// ButtonEdge fires once per press; the button must be released first.
	ButtonEdge
)

// Pins are logical GPIO numbers on the board.
type Pins struct {
	Button     int // active low, internal pull-up, deep-sleep wake source
	Pixel      int // WS2812 data
	AuxPower   int // rail feeding the pixel and I2C header; -1 if absent
	BatteryADC int // ADC-capable pin behind the VBat divider
}

// Blink describes one status sequence cycle.
type Blink struct {
	Times         int
	On            time.Duration
	Off           time.Duration
	BrightnessPct uint8
}

// BLE identifies the keyboard to hosts.
type BLE struct {
	DeviceName   string
	Manufacturer string
}

// Config holds every tunable of the firmware.
type Config struct {
	Board string
	Pins  Pins

	// DividerRatio multiplies the ADC reading back to pack voltage.
	DividerRatio float64
	// CPUFrequencyMHz lowers the core clock at boot. Zero leaves it alone.
	CPUFrequencyMHz uint32

	Tick            time.Duration
	SleepTimeout    time.Duration
	WatchdogTimeout time.Duration

	Blink         Blink
	LowBatteryPct int

	ChordHold   time.Duration
	MacroSettle time.Duration
	Macros      []string

	BLE        BLE
	ButtonMode ButtonMode

	DiagBaud uint32
}

// Default returns the configuration of the reference device.
func Default() Config {
	return Config{
		Board: "pico-w",
		Pins: Pins{
			Button:     26,
			Pixel:      16,
			AuxPower:   15,
			BatteryADC: 27,
		},
		DividerRatio:    2,
		CPUFrequencyMHz: 80,

		Tick:            25 * time.Millisecond,
		SleepTimeout:    30 * time.Second,
		WatchdogTimeout: 3 * time.Second,

		Blink: Blink{
			Times:         4,
			On:            100 * time.Millisecond,
			Off:           100 * time.Millisecond,
			BrightnessPct: 20,
		},
		LowBatteryPct: 20,

		ChordHold:   50 * time.Millisecond,
		MacroSettle: 500 * time.Millisecond,
		Macros:      []string{"fastamp", "goodenough"},

		BLE: BLE{
			DeviceName:   "Bektistamp 3000",
			Manufacturer: "Samudra Bekti",
		},
		ButtonMode: ButtonLevel,

		DiagBaud: 115200,
	}
}

func invalid(msg string) error {
	return &errcode.E{C: errcode.InvalidConfig, Op: "config", Msg: msg}
}

// Validate reports the first inconsistency found.
func (c Config) Validate() error {
	switch {
	case len(c.Macros) == 0:
		return &errcode.E{C: errcode.EmptyMacroSet, Op: "config", Msg: "no macros"}
	case c.Tick <= 0:
		return invalid("tick must be positive")
	case c.SleepTimeout <= c.Tick:
		return invalid("sleep timeout must exceed one tick")
	case c.WatchdogTimeout <= c.Tick:
		return invalid("watchdog timeout must exceed one tick")
	case c.DividerRatio <= 0:
		return invalid("divider ratio must be positive")
	case c.Blink.Times < 0:
		return invalid("blink count must not be negative")
	case c.Blink.BrightnessPct > 100:
		return invalid("brightness is a percentage")
	case c.LowBatteryPct < 0 || c.LowBatteryPct > 100:
		return invalid("low battery threshold is a percentage")
	case c.Pins.Button < 0 || c.Pins.Pixel < 0 || c.Pins.BatteryADC < 0:
		return invalid("button, pixel and adc pins are required")
	case c.ButtonMode > ButtonEdge:
		return invalid("unknown button mode")
	}
	for _, m := range c.Macros {
		if m == "" {
			return invalid("empty macro phrase")
		}
	}
	return nil
}

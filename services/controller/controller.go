// Package controller is the firmware's control loop.
//
// Boot runs once per power-up or wake: it reports the wake cause and the
// battery, arms the watchdog and shows the battery colour. Tick is then
// called until it returns Sleeping. Each tick either fires the macro on a
// button press, waits one tick period, or powers the device down after the
// inactivity timeout. Deep sleep restarts the program, so a Controller never
// outlives one wake.
package controller

import (
	"context"
	"math/rand"

	"stampkey-go/diag"
	"stampkey-go/platform"
	"stampkey-go/services/battery"
	"stampkey-go/services/config"
	"stampkey-go/services/indicator"
	"stampkey-go/services/macro"
	"stampkey-go/types"
)

// State of the wake/sleep machine.
type State uint8

const (
	Idle State = iota
	Triggered
	Sleeping
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Triggered:
		return "triggered"
	case Sleeping:
		return "sleeping"
	}
	return "unknown"
}

// Controller owns the device state for one wake.
type Controller struct {
	cfg config.Config
	p   *platform.Platform
	log *diag.Logger

	est *battery.Estimator
	ind *indicator.Indicator
	mac *macro.Dispatcher

	state          State
	lastActivityMs int64
	held           bool // button seen pressed on the previous tick
	fired          int
}

// New validates cfg and wires the services onto p.
func New(cfg config.Config, p *platform.Platform, est *battery.Estimator, rng *rand.Rand) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := diag.New(p.Diag)
	mac, err := macro.New(p.Keyboard, p.Clock, log, rng, cfg.Macros, macro.Timing{
		Hold:   cfg.ChordHold,
		Settle: cfg.MacroSettle,
	})
	if err != nil {
		return nil, err
	}
	return &Controller{
		cfg:            cfg,
		p:              p,
		log:            log,
		est:            est,
		ind:            indicator.New(p.Pixel, p.Clock, cfg.Blink),
		mac:            mac,
		state:          Idle,
		lastActivityMs: p.Clock.NowMs(),
	}, nil
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Fired returns how many macros were sent during this wake.
func (c *Controller) Fired() int { return c.fired }

// Boot performs the once-per-wake start-up and returns the battery reading.
func (c *Controller) Boot() battery.Reading {
	if err := c.p.Power.SetCPUFrequency(c.cfg.CPUFrequencyMHz); err != nil {
		c.log.Error("boot", "cpu frequency unchanged", err)
	}
	c.p.Power.SetAuxRail(true)
	c.log.WakeCause(c.p.Power.WakeCause())

	if err := c.p.Watchdog.Arm(c.cfg.WatchdogTimeout); err != nil {
		c.log.Error("boot", "watchdog", err)
	}

	r := c.est.Measure(c.p.ADC, c.cfg.Pins.BatteryADC, c.cfg.DividerRatio)
	c.log.Fixed("batt", "VBat: ", r.MilliVolts, 2)
	c.log.Int("batt", "Battery pct: ", int64(r.Percent))
	if err := c.p.Keyboard.SetBatteryLevel(r.Percent); err != nil {
		c.log.Error("batt", "report", err)
	}

	if r.Percent <= c.cfg.LowBatteryPct {
		c.ind.Blink(types.ColorRed)
	} else {
		c.ind.Blink(types.ColorBlue)
	}

	c.lastActivityMs = c.p.Clock.NowMs()
	c.state = Idle
	return r
}

// Tick runs one control-loop iteration and returns the resulting state.
func (c *Controller) Tick() State {
	if c.state == Sleeping {
		return c.state
	}
	pressed := c.p.Button.Pressed()
	fire := pressed && (c.cfg.ButtonMode == config.ButtonLevel || !c.held)
	c.held = pressed

	switch {
	case fire:
		c.trigger()
	case pressed:
		// Edge mode: still held after firing. Counts as activity.
		c.lastActivityMs = c.p.Clock.NowMs()
		c.wait()
	case c.p.Clock.NowMs()-c.lastActivityMs >= c.cfg.SleepTimeout.Milliseconds():
		c.sleep()
	default:
		c.wait()
	}
	return c.state
}

// Run ticks until the device goes to sleep or ctx is cancelled.
func (c *Controller) Run(ctx context.Context) State {
	for {
		if ctx.Err() != nil {
			return c.state
		}
		if c.Tick() == Sleeping {
			return Sleeping
		}
	}
}

func (c *Controller) trigger() {
	c.state = Triggered
	c.lastActivityMs = c.p.Clock.NowMs()
	if c.p.Keyboard.IsConnected() {
		phrase := c.mac.Fire()
		c.fired++
		c.log.Info("ctrl", "fired "+phrase)
		c.ind.Blink(types.ColorGreen)
	} else {
		// Nothing to send; pace the loop so a held button neither spins
		// nor starves the watchdog.
		c.wait()
	}
	c.state = Idle
}

func (c *Controller) wait() {
	c.p.Clock.Sleep(c.cfg.Tick)
	c.p.Watchdog.Reset()
}

func (c *Controller) sleep() {
	c.state = Sleeping
	c.log.Info("ctrl", "Going into deep sleep mode, bye!")
	c.log.Info("ctrl", "--------------------------------")

	c.ind.Blink(types.ColorWhite)
	c.p.Power.SetAuxRail(false)

	for _, d := range []types.PowerDomain{types.DomainSlowMemory, types.DomainFastMemory, types.DomainCrystal} {
		if err := c.p.Power.ConfigurePowerDomain(d, false); err != nil {
			c.log.Error("ctrl", "power domain "+d.String(), err)
		}
	}
	if err := c.p.Power.EnableExternalWakeup(c.cfg.Pins.Button, types.Low); err != nil {
		c.log.Error("ctrl", "wake source", err)
	}
	c.p.Power.EnterDeepSleep()
}

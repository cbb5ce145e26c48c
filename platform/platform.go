// Package platform names the hardware capabilities the firmware consumes.
//
// Board builds (rp2040) bind them to machine peripherals, the CYW43439
// radio and the RP2040 power controller. Host builds get in-memory fakes
// that record every call, for tests and the host simulator.
package platform

import (
	"io"
	"time"

	"stampkey-go/errcode"
	"stampkey-go/types"
	"stampkey-go/x/timex"
)

// Keyboard is the BLE HID transport.
type Keyboard interface {
	IsConnected() bool
	Press(k types.Key) error
	ReleaseAll() error
	Print(text string) error
	SetBatteryLevel(pct int) error
}

// Pixel is the status LED chain.
type Pixel interface {
	SetColor(i int, c types.Color)
	SetBrightness(pct uint8)
	Show() error
}

// Power controls rails, sleep domains and deep sleep entry.
type Power interface {
	SetCPUFrequency(mhz uint32) error
	SetAuxRail(on bool)
	ConfigurePowerDomain(d types.PowerDomain, on bool) error
	EnableExternalWakeup(pin int, level types.Level) error
	// EnterDeepSleep does not return on hardware; the next wake restarts
	// the program from boot.
	EnterDeepSleep()
	WakeCause() types.WakeCause
}

// Watchdog restarts the processor if not reset within the armed timeout.
type Watchdog interface {
	Arm(timeout time.Duration) error
	Reset()
}

// ADC samples an analog channel in millivolts at the pin.
type ADC interface {
	ReadMilliVolts(channel int) float64
}

// Button reports the logical state of the wake button.
type Button interface {
	Pressed() bool
}

// Platform bundles every capability for one board.
type Platform struct {
	Keyboard Keyboard
	Pixel    Pixel
	Power    Power
	Watchdog Watchdog
	ADC      ADC
	Button   Button
	Clock    timex.Clock
	Diag     io.Writer
}

// Offline stands in for the radio when it fails to start. It never reports
// a connection, so the control loop still times out into deep sleep.
type Offline struct{}

func (Offline) IsConnected() bool         { return false }
func (Offline) Press(types.Key) error     { return errcode.NotReady }
func (Offline) ReleaseAll() error         { return errcode.NotReady }
func (Offline) Print(string) error        { return errcode.NotReady }
func (Offline) SetBatteryLevel(int) error { return errcode.NotReady }

//go:build !rp2040

package platform

import (
	"bytes"
	"image/color"
	"time"

	"stampkey-go/drivers/pixel"
	"stampkey-go/errcode"
	"stampkey-go/types"
	"stampkey-go/x/timex"
)

// ----------------------------- Keyboard --------------------------------------

// KeyEventKind classifies a recorded keyboard call.
type KeyEventKind uint8

const (
	EvPress KeyEventKind = iota
	EvReleaseAll
	EvPrint
)

// KeyEvent is one recorded keyboard call.
type KeyEvent struct {
	Kind KeyEventKind
	Key  types.Key
	Text string
	AtMs int64
}

// FakeKeyboard records calls while Connected is true and drops them otherwise.
type FakeKeyboard struct {
	Connected bool
	Battery   []int
	Events    []KeyEvent
	clock     timex.Clock
}

func (k *FakeKeyboard) IsConnected() bool { return k.Connected }

func (k *FakeKeyboard) now() int64 {
	if k.clock == nil {
		return 0
	}
	return k.clock.NowMs()
}

func (k *FakeKeyboard) record(ev KeyEvent) error {
	if !k.Connected {
		return errcode.NotConnected
	}
	ev.AtMs = k.now()
	k.Events = append(k.Events, ev)
	return nil
}

func (k *FakeKeyboard) Press(key types.Key) error { return k.record(KeyEvent{Kind: EvPress, Key: key}) }
func (k *FakeKeyboard) ReleaseAll() error         { return k.record(KeyEvent{Kind: EvReleaseAll}) }
func (k *FakeKeyboard) Print(text string) error   { return k.record(KeyEvent{Kind: EvPrint, Text: text}) }

func (k *FakeKeyboard) SetBatteryLevel(pct int) error {
	k.Battery = append(k.Battery, pct)
	return nil
}

// ----------------------------- Pixel -----------------------------------------

// FrameRecorder is a pixel.Writer that keeps every frame.
type FrameRecorder struct {
	Frames [][]color.RGBA
}

func (r *FrameRecorder) WriteColors(buf []color.RGBA) error {
	r.Frames = append(r.Frames, append([]color.RGBA(nil), buf...))
	return nil
}

// Lit reports whether any channel of pixel 0 is on in frame i.
func (r *FrameRecorder) Lit(i int) bool {
	c := r.Frames[i][0]
	return c.R|c.G|c.B != 0
}

// ----------------------------- Power -----------------------------------------

// FakePower records rail, domain, wake and sleep requests.
type FakePower struct {
	CPUMHz    uint32
	AuxRail   bool
	Domains   map[types.PowerDomain]bool
	WakePin   int
	WakeLevel types.Level
	WakeArmed bool
	Asleep    bool
	Cause     types.WakeCause
}

func (p *FakePower) SetCPUFrequency(mhz uint32) error { p.CPUMHz = mhz; return nil }
func (p *FakePower) SetAuxRail(on bool)               { p.AuxRail = on }

func (p *FakePower) ConfigurePowerDomain(d types.PowerDomain, on bool) error {
	if p.Domains == nil {
		p.Domains = make(map[types.PowerDomain]bool)
	}
	p.Domains[d] = on
	return nil
}

func (p *FakePower) EnableExternalWakeup(pin int, level types.Level) error {
	if pin < 0 {
		return errcode.UnknownPin
	}
	p.WakePin, p.WakeLevel, p.WakeArmed = pin, level, true
	return nil
}

func (p *FakePower) EnterDeepSleep()            { p.Asleep = true }
func (p *FakePower) WakeCause() types.WakeCause { return p.Cause }

// ----------------------------- Watchdog --------------------------------------

// FakeWatchdog counts resets.
type FakeWatchdog struct {
	Timeout time.Duration
	Armed   bool
	Resets  int
}

func (w *FakeWatchdog) Arm(d time.Duration) error { w.Timeout, w.Armed = d, true; return nil }
func (w *FakeWatchdog) Reset()                    { w.Resets++ }

// ----------------------------- ADC / Button ----------------------------------

// FakeADC returns MilliVolts for every channel.
type FakeADC struct {
	MilliVolts float64
	Channel    int
}

func (a *FakeADC) ReadMilliVolts(ch int) float64 { a.Channel = ch; return a.MilliVolts }

// FakeButton reports Down as pressed.
type FakeButton struct{ Down bool }

func (b *FakeButton) Pressed() bool { return b.Down }

// ----------------------------- Bundle ----------------------------------------

// Host is a fully faked platform with typed access to every fake.
type Host struct {
	Platform
	Keys     *FakeKeyboard
	Frames   *FrameRecorder
	Strip    *pixel.Strip
	Pwr      *FakePower
	Dog      *FakeWatchdog
	Analog   *FakeADC
	Btn      *FakeButton
	Time     *timex.Fake
	DiagText *bytes.Buffer
}

// NewHost builds a Host whose clock starts at zero.
func NewHost() *Host {
	clk := &timex.Fake{}
	h := &Host{
		Keys:     &FakeKeyboard{clock: clk},
		Frames:   &FrameRecorder{},
		Pwr:      &FakePower{Cause: types.WakeUndefined},
		Dog:      &FakeWatchdog{},
		Analog:   &FakeADC{MilliVolts: 2000},
		Btn:      &FakeButton{},
		Time:     clk,
		DiagText: &bytes.Buffer{},
	}
	h.Strip = pixel.New(h.Frames, 1)
	h.Platform = Platform{
		Keyboard: h.Keys,
		Pixel:    h.Strip,
		Power:    h.Pwr,
		Watchdog: h.Dog,
		ADC:      h.Analog,
		Button:   h.Btn,
		Clock:    clk,
		Diag:     h.DiagText,
	}
	return h
}

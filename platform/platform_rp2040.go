//go:build rp2040

package platform

import (
	"device/rp"
	"io"
	"machine"
	"runtime/volatile"
	"time"
	"unsafe"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/bluetooth"

	"stampkey-go/drivers/blehid"
	"stampkey-go/drivers/pixel"
	"stampkey-go/errcode"
	"stampkey-go/services/config"
	"stampkey-go/types"
	"stampkey-go/x/timex"
)

// Written to WATCHDOG.SCRATCH0 just before dormant; survives the reboot
// that follows the wake. ASCII "stmp".
const sleepMagic = 0x73746d70

// New binds the board peripherals described by cfg. The BLE error is
// returned alongside a usable Platform whose keyboard is Offline.
func New(cfg config.Config) (*Platform, error) {
	clk := timex.NewSystem()
	p := &Platform{
		Power:    newPower(cfg.Pins.AuxPower),
		Watchdog: rp2Watchdog{},
		ADC:      newADC(),
		Button:   newButton(cfg.Pins.Button),
		Clock:    clk,
		Diag:     newDiag(cfg.DiagBaud),
		Keyboard: Offline{},
	}

	strip := pixel.NewWS2812(machine.Pin(cfg.Pins.Pixel), 1)
	p.Pixel = strip

	kb, err := blehid.Start(bluetooth.DefaultAdapter, blehid.Config{
		DeviceName:   cfg.BLE.DeviceName,
		Manufacturer: cfg.BLE.Manufacturer,
	}, clk)
	if err != nil {
		return p, err
	}
	p.Keyboard = kb
	return p, nil
}

// ---- diagnostics: UART0 plus USB CDC ----

func newDiag(baud uint32) io.Writer {
	u := uartx.UART0
	_ = u.Configure(uartx.UARTConfig{
		BaudRate: baud,
		TX:       machine.UART0_TX_PIN,
		RX:       machine.UART0_RX_PIN,
	})
	return io.MultiWriter(u, machine.Serial)
}

// ---- button ----

type rp2Button struct{ p machine.Pin }

func newButton(n int) rp2Button {
	pin := machine.Pin(n)
	pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return rp2Button{p: pin}
}

// Pressed is active low.
func (b rp2Button) Pressed() bool { return !b.p.Get() }

// ---- ADC ----

type rp2ADC struct {
	pins map[int]machine.ADC
}

func newADC() *rp2ADC {
	machine.InitADC()
	return &rp2ADC{pins: make(map[int]machine.ADC)}
}

// ReadMilliVolts samples the ADC pin numbered ch against the 3.3 V reference.
func (a *rp2ADC) ReadMilliVolts(ch int) float64 {
	adc, ok := a.pins[ch]
	if !ok {
		adc = machine.ADC{Pin: machine.Pin(ch)}
		adc.Configure(machine.ADCConfig{})
		a.pins[ch] = adc
	}
	// Get scales the 12-bit result to 16 bits.
	return float64(adc.Get()) * 3300 / 65535
}

// ---- watchdog ----

type rp2Watchdog struct{}

func (rp2Watchdog) Arm(d time.Duration) error {
	if err := machine.Watchdog.Configure(machine.WatchdogConfig{
		TimeoutMillis: uint32(d.Milliseconds()),
	}); err != nil {
		return err
	}
	return machine.Watchdog.Start()
}

func (rp2Watchdog) Reset() { machine.Watchdog.Update() }

// ---- power ----

// SYSCFG.MEMPOWERDOWN bits for the two 4 KiB scratch banks. The runtime
// keeps heap and stacks in SRAM0-3, so these can go dark before dormant.
const (
	memSRAM4 = 1 << 4
	memSRAM5 = 1 << 5
)

const (
	xoscDormant     = 0x636f6d61 // "coma"
	xoscStable      = 1 << 31
	pllPowerDown    = 0x2d // PD | DSMPD | POSTDIVPD | VCOPD
	wdCtrlTrigger   = 1 << 31
	psmAllButOscs   = 0x1fffc
	wakeLevelLow    = 1 << 0
	wakeLevelHigh   = 1 << 1
	pinsPerWakeRegs = 8
)

type rp2Power struct {
	aux    machine.Pin
	hasAux bool
	cause  types.WakeCause
}

func newPower(auxPin int) *rp2Power {
	p := &rp2Power{cause: types.WakeUndefined}
	if rp.WATCHDOG.SCRATCH0.Get() == sleepMagic {
		p.cause = types.WakeExternalIO
		rp.WATCHDOG.SCRATCH0.Set(0)
	}
	if auxPin >= 0 {
		p.aux = machine.Pin(auxPin)
		p.hasAux = true
		p.aux.Configure(machine.PinConfig{Mode: machine.PinOutput})
	}
	return p
}

func (p *rp2Power) WakeCause() types.WakeCause { return p.cause }

// SetCPUFrequency is not offered by the RP2040 runtime; the PLL is fixed
// at boot.
func (p *rp2Power) SetCPUFrequency(mhz uint32) error {
	if mhz == 0 || uint32(machine.CPUFrequency()/1_000_000) == mhz {
		return nil
	}
	return errcode.Unsupported
}

func (p *rp2Power) SetAuxRail(on bool) {
	if p.hasAux {
		p.aux.Set(on)
	}
}

func (p *rp2Power) ConfigurePowerDomain(d types.PowerDomain, on bool) error {
	var bit uint32
	switch d {
	case types.DomainSlowMemory:
		bit = memSRAM4
	case types.DomainFastMemory:
		bit = memSRAM5
	case types.DomainCrystal:
		// Dormant always stops the crystal.
		if on {
			return errcode.Unsupported
		}
		return nil
	default:
		return errcode.Unsupported
	}
	if on {
		rp.SYSCFG.MEMPOWERDOWN.ClearBits(bit)
	} else {
		rp.SYSCFG.MEMPOWERDOWN.SetBits(bit)
	}
	return nil
}

// EnableExternalWakeup arms the dormant wake detector for pin at level.
func (p *rp2Power) EnableExternalWakeup(pin int, level types.Level) error {
	if pin < 0 || pin > 29 {
		return errcode.UnknownPin
	}
	base := uintptr(unsafe.Pointer(&rp.IO_BANK0.DORMANT_WAKE_INTE0))
	reg := (*volatile.Register32)(unsafe.Pointer(base + uintptr(pin/pinsPerWakeRegs)*4))
	bit := uint32(wakeLevelLow)
	if level == types.High {
		bit = wakeLevelHigh
	}
	reg.SetBits(bit << (4 * uint(pin%pinsPerWakeRegs)))
	return nil
}

// EnterDeepSleep moves clk_sys onto the crystal, stops both PLLs and puts
// the crystal oscillator dormant. The wake pin restarts it; the chip is then
// rebooted through the watchdog so the program starts from boot.
func (p *rp2Power) EnterDeepSleep() {
	rp.WATCHDOG.SCRATCH0.Set(sleepMagic)

	rp.CLOCKS.CLK_SYS_CTRL.ClearBits(1) // SRC = clk_ref (XOSC)
	for rp.CLOCKS.CLK_SYS_SELECTED.Get() != 1 {
	}
	rp.PLL_SYS.PWR.Set(pllPowerDown)
	rp.PLL_USB.PWR.Set(pllPowerDown)

	rp.XOSC.DORMANT.Set(xoscDormant)
	for rp.XOSC.STATUS.Get()&xoscStable == 0 {
	}

	rp.PSM.WDSEL.Set(psmAllButOscs)
	rp.WATCHDOG.CTRL.SetBits(wdCtrlTrigger)
	for {
	}
}

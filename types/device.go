package types

// ------------------------
// Status pixel
// ------------------------

// Color is a packed 0xRRGGBB value.
type Color uint32

const (
	ColorOff   Color = 0x000000
	ColorRed   Color = 0xFF0000
	ColorBlue  Color = 0x0000FF
	ColorGreen Color = 0x00FF00
	ColorWhite Color = 0xFFFFFF
)

func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }

// ------------------------
// Keyboard
// ------------------------

// Key is a keyboard key as accepted by the HID transport. Values below 0x80
// are printable ASCII; values from 0x80 up name modifiers and special keys.
type Key uint8

const (
	KeyLeftCtrl   Key = 0x80
	KeyLeftShift  Key = 0x81
	KeyLeftAlt    Key = 0x82
	KeyLeftGUI    Key = 0x83
	KeyRightCtrl  Key = 0x84
	KeyRightShift Key = 0x85
	KeyRightAlt   Key = 0x86
	KeyRightGUI   Key = 0x87

	KeyReturn    Key = 0xB0
	KeyEsc       Key = 0xB1
	KeyBackspace Key = 0xB2
	KeyTab       Key = 0xB3
)

// IsModifier reports whether k is one of the eight modifier keys.
func (k Key) IsModifier() bool { return k >= KeyLeftCtrl && k <= KeyRightGUI }

// ------------------------
// Power / sleep
// ------------------------

// Level is a digital pin level.
type Level bool

const (
	Low  Level = false
	High Level = true
)

// PowerDomain names a block that may stay powered through deep sleep.
type PowerDomain uint8

const (
	DomainSlowMemory PowerDomain = iota
	DomainFastMemory
	DomainCrystal
)

func (d PowerDomain) String() string {
	switch d {
	case DomainSlowMemory:
		return "slow_mem"
	case DomainFastMemory:
		return "fast_mem"
	case DomainCrystal:
		return "xtal"
	}
	return "unknown"
}

// WakeCause is the reason the processor started. Numeric values are the
// codes printed on the diagnostics stream.
type WakeCause uint8

const (
	WakeUndefined    WakeCause = 0 // cold boot or reset, not a wake from sleep
	WakeExternalIO   WakeCause = 2 // single external pin
	WakeExternalCntl WakeCause = 3 // pin group through the power controller
	WakeTimer        WakeCause = 4
	WakeTouchpad     WakeCause = 5
)

package blehid

import "stampkey-go/types"

// HID usage IDs (Keyboard/Keypad page 0x07) used by the ASCII map.
const (
	usageA         = 0x04
	usage1         = 0x1E
	usage0         = 0x27
	usageEnter     = 0x28
	usageBackspace = 0x2A
	usageTab       = 0x2B
	usageSpace     = 0x2C

	modLeftShift = 0x02

	// Keys from 0x88 up map to usage k-0x88, so KeyReturn (0xB0) is 0x28.
	specialBase = 0x88
)

// punctuation maps unshifted/shifted symbol pairs to their shared usage.
var punctuation = [...]struct {
	plain, shifted byte
	usage          uint8
}{
	{'-', '_', 0x2D},
	{'=', '+', 0x2E},
	{'[', '{', 0x2F},
	{']', '}', 0x30},
	{'\\', '|', 0x31},
	{';', ':', 0x33},
	{'\'', '"', 0x34},
	{'`', '~', 0x35},
	{',', '<', 0x36},
	{'.', '>', 0x37},
	{'/', '?', 0x38},
}

// shiftedDigits lists the symbols on the digit row, '1' through '0'.
const shiftedDigits = "!@#$%^&*()"

// lookup resolves a non-modifier key to its usage ID and whether left shift
// must be held. ok is false for keys with no US-layout mapping.
func lookup(k types.Key) (usage uint8, shift bool, ok bool) {
	if k >= specialBase {
		return uint8(k - specialBase), false, true
	}
	c := byte(k)
	switch {
	case c >= 'a' && c <= 'z':
		return usageA + (c - 'a'), false, true
	case c >= 'A' && c <= 'Z':
		return usageA + (c - 'A'), true, true
	case c >= '1' && c <= '9':
		return usage1 + (c - '1'), false, true
	case c == '0':
		return usage0, false, true
	case c == ' ':
		return usageSpace, false, true
	case c == '\n':
		return usageEnter, false, true
	case c == '\t':
		return usageTab, false, true
	case c == '\b':
		return usageBackspace, false, true
	}
	for i := 0; i < len(shiftedDigits); i++ {
		if shiftedDigits[i] == c {
			return usage1 + uint8(i), true, true
		}
	}
	for _, p := range punctuation {
		if p.plain == c {
			return p.usage, false, true
		}
		if p.shifted == c {
			return p.usage, true, true
		}
	}
	return 0, false, false
}

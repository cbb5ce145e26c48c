// Package blehid is a BLE HID-over-GATT keyboard.
//
// Keyboard holds the key state and connection flag and renders boot-protocol
// reports; the GATT plumbing that carries them lives in gatt.go. Key values
// follow types.Key: ASCII below 0x80, modifiers 0x80-0x87, and special keys
// from 0x88 up whose HID usage is the value minus 0x88.
package blehid

import (
	"errors"
	"sync"
	"time"

	"stampkey-go/errcode"
	"stampkey-go/types"
	"stampkey-go/x/mathx"
	"stampkey-go/x/timex"
)

// Errors returned by the driver.
var (
	ErrRollover = errors.New("blehid: more than six keys held")
)

// Sender carries reports to the connected host.
type Sender interface {
	SendReport(report []byte) error
	SendBattery(pct uint8) error
}

// Keyboard implements the HID transport used by the control loop.
type Keyboard struct {
	out Sender

	mu        sync.Mutex
	connected bool

	rep Report
	buf [ReportLen]byte

	// Pace is the pause after every report so the host keeps up.
	Pace time.Duration
	clk  timex.Clock
}

// NewKeyboard returns a disconnected keyboard sending through out and
// pacing reports on clk.
func NewKeyboard(out Sender, clk timex.Clock) *Keyboard {
	return &Keyboard{out: out, Pace: 7 * time.Millisecond, clk: clk}
}

// SetConnected records the link state. Safe to call from the radio callback.
func (k *Keyboard) SetConnected(on bool) {
	k.mu.Lock()
	k.connected = on
	k.mu.Unlock()
}

func (k *Keyboard) IsConnected() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.connected
}

func (k *Keyboard) send() error {
	if !k.IsConnected() {
		return errcode.NotConnected
	}
	err := k.out.SendReport(k.rep.Bytes(k.buf[:]))
	if k.Pace > 0 {
		k.clk.Sleep(k.Pace)
	}
	return err
}

// Press holds key and sends the updated report.
func (k *Keyboard) Press(key types.Key) error {
	if err := k.rep.Press(key); err != nil {
		return err
	}
	return k.send()
}

// Release lets go of key and sends the updated report.
func (k *Keyboard) Release(key types.Key) error {
	if err := k.rep.Release(key); err != nil {
		return err
	}
	return k.send()
}

// ReleaseAll lets go of everything and sends an empty report.
func (k *Keyboard) ReleaseAll() error {
	k.rep.ReleaseAll()
	return k.send()
}

// Print types text one character at a time. Characters without a mapping
// are skipped; the first error is returned after the whole text is sent.
func (k *Keyboard) Print(text string) error {
	var first error
	for i := 0; i < len(text); i++ {
		key := types.Key(text[i])
		if err := k.rep.Press(key); err != nil {
			if first == nil {
				first = err
			}
			continue
		}
		if err := k.send(); err != nil && first == nil {
			first = err
		}
		_ = k.rep.Release(key)
		if err := k.send(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// SetBatteryLevel publishes pct (clamped to 0..100) on the battery service.
func (k *Keyboard) SetBatteryLevel(pct int) error {
	return k.out.SendBattery(uint8(mathx.Clamp(pct, 0, 100)))
}

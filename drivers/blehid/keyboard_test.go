package blehid

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"stampkey-go/errcode"
	"stampkey-go/types"
	"stampkey-go/x/timex"
)

type fakeSender struct {
	reports [][]byte
	battery []uint8
	err     error
}

func (f *fakeSender) SendReport(r []byte) error {
	f.reports = append(f.reports, append([]byte(nil), r...))
	return f.err
}

func (f *fakeSender) SendBattery(p uint8) error {
	f.battery = append(f.battery, p)
	return f.err
}

func newTestKeyboard() (*Keyboard, *fakeSender, *time.Duration) {
	s := &fakeSender{}
	clk := &timex.Fake{}
	kb := NewKeyboard(s, clk)
	return kb, s, &clk.Slept
}

func TestKeyboard_DisconnectedSendsNothing(t *testing.T) {
	kb, s, _ := newTestKeyboard()
	if err := kb.Press('a'); err != errcode.NotConnected {
		t.Fatalf("err = %v, want not_connected", err)
	}
	if len(s.reports) != 0 {
		t.Fatalf("sent %d reports while disconnected", len(s.reports))
	}
}

func TestKeyboard_PressReleaseAll(t *testing.T) {
	kb, s, slept := newTestKeyboard()
	kb.SetConnected(true)
	if !kb.IsConnected() {
		t.Fatal("expected connected")
	}
	_ = kb.Press(types.KeyLeftAlt)
	_ = kb.Press('c')
	_ = kb.ReleaseAll()

	want := [][]byte{
		{0x04, 0, 0, 0, 0, 0, 0, 0},
		{0x04, 0, 0x06, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
	}
	if len(s.reports) != len(want) {
		t.Fatalf("got %d reports, want %d", len(s.reports), len(want))
	}
	for i := range want {
		if !bytes.Equal(s.reports[i], want[i]) {
			t.Fatalf("report %d = % x, want % x", i, s.reports[i], want[i])
		}
	}
	if *slept != 3*kb.Pace {
		t.Fatalf("paced %v, want %v", *slept, 3*kb.Pace)
	}
}

func TestKeyboard_PrintTypesEachCharacter(t *testing.T) {
	kb, s, _ := newTestKeyboard()
	kb.SetConnected(true)
	if err := kb.Print("Hi"); err != nil {
		t.Fatal(err)
	}
	want := [][]byte{
		{modLeftShift, 0, 0x0B, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0x0C, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
	}
	if len(s.reports) != len(want) {
		t.Fatalf("got %d reports, want %d", len(s.reports), len(want))
	}
	for i := range want {
		if !bytes.Equal(s.reports[i], want[i]) {
			t.Fatalf("report %d = % x, want % x", i, s.reports[i], want[i])
		}
	}
}

func TestKeyboard_PrintSkipsUnmapped(t *testing.T) {
	kb, s, _ := newTestKeyboard()
	kb.SetConnected(true)
	err := kb.Print("a\x01b")
	if err != errcode.UnknownKey {
		t.Fatalf("err = %v, want unknown_key", err)
	}
	if len(s.reports) != 4 {
		t.Fatalf("got %d reports, want 4", len(s.reports))
	}
}

func TestKeyboard_SenderErrorIsReturned(t *testing.T) {
	kb, s, _ := newTestKeyboard()
	kb.SetConnected(true)
	s.err = errors.New("radio")
	if err := kb.ReleaseAll(); err != s.err {
		t.Fatalf("err = %v", err)
	}
}

func TestKeyboard_BatteryClamped(t *testing.T) {
	kb, s, _ := newTestKeyboard()
	_ = kb.SetBatteryLevel(150)
	_ = kb.SetBatteryLevel(-4)
	_ = kb.SetBatteryLevel(57)
	if !bytes.Equal(s.battery, []byte{100, 0, 57}) {
		t.Fatalf("battery = %v", s.battery)
	}
}

func TestKeyboard_PacingAdvancesSharedClock(t *testing.T) {
	clk := &timex.Fake{Ms: 1000}
	kb := NewKeyboard(&fakeSender{}, clk)
	kb.SetConnected(true)
	if err := kb.Print("ab"); err != nil {
		t.Fatal(err)
	}
	// Press and release per character, each followed by Pace.
	if want := int64(1000 + 4*7); clk.NowMs() != want {
		t.Fatalf("clock at %dms, want %dms", clk.NowMs(), want)
	}
}

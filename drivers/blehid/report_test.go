package blehid

import (
	"bytes"
	"testing"

	"stampkey-go/errcode"
	"stampkey-go/types"
)

func TestLookup(t *testing.T) {
	cases := []struct {
		k     types.Key
		usage uint8
		shift bool
	}{
		{'a', 0x04, false},
		{'z', 0x1D, false},
		{'G', 0x0A, true},
		{'1', 0x1E, false},
		{'0', 0x27, false},
		{'!', 0x1E, true},
		{')', 0x27, true},
		{' ', 0x2C, false},
		{'-', 0x2D, false},
		{'_', 0x2D, true},
		{'?', 0x38, true},
		{'\n', 0x28, false},
		{types.KeyReturn, 0x28, false},
		{types.KeyEsc, 0x29, false},
		{types.KeyTab, 0x2B, false},
	}
	for _, tc := range cases {
		u, s, ok := lookup(tc.k)
		if !ok || u != tc.usage || s != tc.shift {
			t.Fatalf("lookup(%#x) = %#x,%v,%v want %#x,%v", uint8(tc.k), u, s, ok, tc.usage, tc.shift)
		}
	}
	if _, _, ok := lookup(0x01); ok {
		t.Fatal("control character should not map")
	}
}

func TestReport_Chord(t *testing.T) {
	var r Report
	if err := r.Press(types.KeyLeftAlt); err != nil {
		t.Fatal(err)
	}
	if err := r.Press('a'); err != nil {
		t.Fatal(err)
	}
	got := r.Bytes(make([]byte, ReportLen))
	want := []byte{0x04, 0, 0x04, 0, 0, 0, 0, 0}
	if !bytes.Equal(got, want) {
		t.Fatalf("alt+a = % x, want % x", got, want)
	}

	r.ReleaseAll()
	if got := r.Bytes(make([]byte, ReportLen)); !bytes.Equal(got, make([]byte, ReportLen)) {
		t.Fatalf("after ReleaseAll = % x", got)
	}
}

func TestReport_GUIReturn(t *testing.T) {
	var r Report
	_ = r.Press(types.KeyLeftGUI)
	_ = r.Press(types.KeyReturn)
	got := r.Bytes(make([]byte, ReportLen))
	want := []byte{0x08, 0, 0x28, 0, 0, 0, 0, 0}
	if !bytes.Equal(got, want) {
		t.Fatalf("gui+return = % x, want % x", got, want)
	}
}

func TestReport_ShiftedReleaseClearsShift(t *testing.T) {
	var r Report
	_ = r.Press('A')
	if r.modifiers != modLeftShift || r.keys[0] != 0x04 {
		t.Fatalf("press A: mods=%#x keys=% x", r.modifiers, r.keys)
	}
	_ = r.Release('A')
	if r.modifiers != 0 || r.keys[0] != 0 {
		t.Fatalf("release A: mods=%#x keys=% x", r.modifiers, r.keys)
	}
}

func TestReport_RolloverAndDuplicates(t *testing.T) {
	var r Report
	for _, c := range "abcdef" {
		if err := r.Press(types.Key(c)); err != nil {
			t.Fatalf("press %c: %v", c, err)
		}
	}
	if err := r.Press('a'); err != nil {
		t.Fatalf("re-press of held key should be a no-op, got %v", err)
	}
	if err := r.Press('g'); err != ErrRollover {
		t.Fatalf("seventh key err = %v, want ErrRollover", err)
	}
	if err := r.Press(0x01); err != errcode.UnknownKey {
		t.Fatalf("unknown key err = %v", err)
	}
}

func TestReport_RolloverLeavesShiftAlone(t *testing.T) {
	var r Report
	for _, c := range "abcdef" {
		_ = r.Press(types.Key(c))
	}
	if err := r.Press('G'); err != ErrRollover {
		t.Fatalf("err = %v, want ErrRollover", err)
	}
	if r.modifiers != 0 {
		t.Fatalf("rejected shifted key left mods=%#x", r.modifiers)
	}
	got := r.Bytes(make([]byte, ReportLen))
	want := []byte{0, 0, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09}
	if !bytes.Equal(got, want) {
		t.Fatalf("report = % x, want % x", got, want)
	}
}

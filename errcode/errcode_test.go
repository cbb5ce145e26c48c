package errcode

import (
	"errors"
	"testing"
)

func TestCodesAreStableStrings(t *testing.T) {
	cases := map[string]Code{
		"ok":              OK,
		"unsupported":     Unsupported,
		"invalid_config":  InvalidConfig,
		"invalid_table":   InvalidTable,
		"empty_macro_set": EmptyMacroSet,
		"not_connected":   NotConnected,
		"unknown_key":     UnknownKey,
		"unknown_pin":     UnknownPin,
		"not_ready":       NotReady,
	}
	for want, c := range cases {
		if c.Error() != want {
			t.Fatalf("code %q mismatch: got %q", want, c.Error())
		}
	}
}

func TestOf(t *testing.T) {
	if Of(nil) != OK {
		t.Fatal("nil should map to ok")
	}
	if Of(InvalidTable) != InvalidTable {
		t.Fatal("bare code not preserved")
	}
	cause := errors.New("boom")
	err := Wrap(NotReady, "pixel.Show", cause)
	if Of(err) != NotReady {
		t.Fatalf("wrapped code = %q", Of(err))
	}
	if !errors.Is(err, cause) {
		t.Fatal("wrapped error should unwrap to cause")
	}
	if got := err.Error(); got != "pixel.Show: not_ready: boom" {
		t.Fatalf("message = %q", got)
	}
	if Of(errors.New("other")) != Error {
		t.Fatal("foreign errors should map to generic error")
	}
	if Wrap(Error, "x", nil) != nil {
		t.Fatal("wrapping nil should return nil")
	}
}

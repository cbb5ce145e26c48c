package diag

import (
	"bytes"
	"errors"
	"testing"

	"stampkey-go/types"
)

func TestLines(t *testing.T) {
	var b bytes.Buffer
	l := New(&b)
	l.Info("ctrl", "Going into deep sleep mode, bye!")
	l.Fixed("batt", "VBat: ", 3912.456, 2)
	l.Int("batt", "Battery pct: ", 67)
	l.Error("ble", "enable failed", errors.New("no radio"))

	want := "[ctrl] Going into deep sleep mode, bye!\r\n" +
		"[batt] VBat: 3912.46\r\n" +
		"[batt] Battery pct: 67\r\n" +
		"[ble] enable failed: no radio\r\n"
	if b.String() != want {
		t.Fatalf("got:\n%q\nwant:\n%q", b.String(), want)
	}
}

func TestWakeCause(t *testing.T) {
	cases := map[types.WakeCause]string{
		types.WakeExternalIO:   "[boot] Wake-up from external signal with RTC_IO\r\n",
		types.WakeExternalCntl: "[boot] Wake-up from external signal with RTC_CNTL\r\n",
		types.WakeTimer:        "[boot] Wake up caused by a timer\r\n",
		types.WakeTouchpad:     "[boot] Wake up caused by a touchpad\r\n",
		types.WakeUndefined:    "[boot] Wake up not caused by Deep Sleep: 0\r\n",
		types.WakeCause(7):     "[boot] Wake up not caused by Deep Sleep: 7\r\n",
	}
	for c, want := range cases {
		var b bytes.Buffer
		New(&b).WakeCause(c)
		if b.String() != want {
			t.Fatalf("cause %d: got %q want %q", c, b.String(), want)
		}
	}
}

func TestNilWriterDiscards(t *testing.T) {
	New(nil).Info("x", "y")
}

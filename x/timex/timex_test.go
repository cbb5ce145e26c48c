package timex

import (
	"testing"
	"time"
)

func TestFakeClock(t *testing.T) {
	c := &Fake{Ms: 1000}
	c.Sleep(25 * time.Millisecond)
	c.Advance(5 * time.Millisecond)
	if c.NowMs() != 1030 {
		t.Fatalf("NowMs = %d, want 1030", c.NowMs())
	}
	if c.Slept != 25*time.Millisecond {
		t.Fatalf("Slept = %v, want 25ms", c.Slept)
	}
}

func TestSystemClockIsMonotonic(t *testing.T) {
	c := NewSystem()
	a := c.NowMs()
	c.Sleep(2 * time.Millisecond)
	if b := c.NowMs(); b < a+1 {
		t.Fatalf("clock did not advance: %d -> %d", a, b)
	}
}

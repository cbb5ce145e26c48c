package timex

import "time"

// Clock is the time source for the control loop. NowMs is monotonic
// milliseconds since boot; Sleep blocks the caller.
type Clock interface {
	NowMs() int64
	Sleep(d time.Duration)
}

// System is the wall clock of the running process.
type System struct{ boot time.Time }

// NewSystem returns a clock whose zero is the moment of the call.
func NewSystem() *System { return &System{boot: time.Now()} }

func (s *System) NowMs() int64          { return time.Since(s.boot).Milliseconds() }
func (s *System) Sleep(d time.Duration) { time.Sleep(d) }

// Fake is a virtual clock for host tests. Sleep advances time instantly.
type Fake struct {
	Ms    int64
	Slept time.Duration // total requested sleep
}

func (f *Fake) NowMs() int64 { return f.Ms }

func (f *Fake) Sleep(d time.Duration) {
	f.Slept += d
	f.Ms += d.Milliseconds()
}

// Advance moves virtual time forward without counting it as sleep.
func (f *Fake) Advance(d time.Duration) { f.Ms += d.Milliseconds() }

// Package macro types a stamp phrase into the connected host.
//
// A firing is two prefix chords, one phrase picked uniformly at random, a
// settle pause for the host to expand it, and a submit chord. Delays are
// fixed pacing; nothing is retried and transport errors are only logged.
package macro

import (
	"math/rand"
	"time"

	"stampkey-go/diag"
	"stampkey-go/errcode"
	"stampkey-go/platform"
	"stampkey-go/types"
	"stampkey-go/x/timex"
)

// Chord is a modifier plus one key, pressed together.
type Chord struct {
	Mod types.Key
	Key types.Key
}

var (
	// Prefix opens the stamp field in the host application.
	Prefix = []Chord{
		{types.KeyLeftAlt, 'a'},
		{types.KeyLeftAlt, 'c'},
	}
	// Submit confirms the stamp.
	Submit = Chord{types.KeyLeftGUI, types.KeyReturn}
)

// Timing holds the fixed pacing of a firing.
type Timing struct {
	Hold   time.Duration // chord held before release
	Settle time.Duration // after the phrase
}

// Dispatcher fires macros. Not safe for concurrent use.
type Dispatcher struct {
	kb     platform.Keyboard
	clk    timex.Clock
	log    *diag.Logger
	rng    *rand.Rand
	macros []string
	t      Timing
}

// New copies macros, which must be non-empty.
func New(kb platform.Keyboard, clk timex.Clock, log *diag.Logger, rng *rand.Rand, macros []string, t Timing) (*Dispatcher, error) {
	if len(macros) == 0 {
		return nil, errcode.EmptyMacroSet
	}
	if log == nil {
		log = diag.New(nil)
	}
	return &Dispatcher{
		kb:     kb,
		clk:    clk,
		log:    log,
		rng:    rng,
		macros: append([]string(nil), macros...),
		t:      t,
	}, nil
}

// Pick returns one phrase chosen uniformly at random.
func (d *Dispatcher) Pick() string {
	return d.macros[d.rng.Intn(len(d.macros))]
}

// Fire sends the full sequence and returns the phrase typed.
// Callers check IsConnected first.
func (d *Dispatcher) Fire() string {
	for _, c := range Prefix {
		d.chord(c)
	}
	phrase := d.Pick()
	if err := d.kb.Print(phrase); err != nil {
		d.log.Error("macro", "print", err)
	}
	d.clk.Sleep(d.t.Settle)
	d.chord(Submit)
	return phrase
}

func (d *Dispatcher) chord(c Chord) {
	if err := d.kb.Press(c.Mod); err != nil {
		d.log.Error("macro", "press", err)
	}
	if err := d.kb.Press(c.Key); err != nil {
		d.log.Error("macro", "press", err)
	}
	d.clk.Sleep(d.t.Hold)
	if err := d.kb.ReleaseAll(); err != nil {
		d.log.Error("macro", "release", err)
	}
}

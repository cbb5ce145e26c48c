// Package indicator blinks the status pixel.
package indicator

import (
	"stampkey-go/platform"
	"stampkey-go/services/config"
	"stampkey-go/types"
	"stampkey-go/x/timex"
)

// Indicator owns pixel 0 of the status chain.
type Indicator struct {
	px  platform.Pixel
	clk timex.Clock
	cfg config.Blink
}

func New(px platform.Pixel, clk timex.Clock, cfg config.Blink) *Indicator {
	return &Indicator{px: px, clk: clk, cfg: cfg}
}

// Signal blinks c times times at the configured brightness and leaves the
// pixel off. Driver errors are ignored; a dark LED is its own report.
func (i *Indicator) Signal(times int, c types.Color) {
	for n := 0; n < times; n++ {
		i.set(c)
		i.clk.Sleep(i.cfg.On)
		i.set(types.ColorOff)
		i.clk.Sleep(i.cfg.Off)
	}
}

// Blink signals c the configured number of times.
func (i *Indicator) Blink(c types.Color) { i.Signal(i.cfg.Times, c) }

func (i *Indicator) set(c types.Color) {
	i.px.SetBrightness(i.cfg.BrightnessPct)
	i.px.SetColor(0, c)
	_ = i.px.Show()
}

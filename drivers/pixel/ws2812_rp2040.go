//go:build rp2040

package pixel

import (
	"machine"

	"tinygo.org/x/drivers/ws2812"
)

// NewWS2812 returns a strip of n pixels on a WS2812 data pin.
func NewWS2812(pin machine.Pin, n int) *Strip {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	dev := ws2812.NewWS2812(pin)
	return New(&dev, n)
}

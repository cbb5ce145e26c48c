// Package pixel drives a short chain of addressable RGB LEDs.
//
// Strip keeps a colour buffer and a global brightness and pushes the scaled
// frame to a Writer on Show. On the board the Writer is the tinygo WS2812
// driver; host tests record frames instead.
package pixel

import (
	"image/color"

	"stampkey-go/errcode"
	"stampkey-go/types"
	"stampkey-go/x/mathx"
)

// Writer sends one frame to the LED chain.
type Writer interface {
	WriteColors(buf []color.RGBA) error
}

// Strip implements the status LED capability.
type Strip struct {
	w      Writer
	colors []types.Color
	frame  []color.RGBA
	level  uint16 // 0..255
}

// New returns a strip of n pixels at full brightness, all off.
func New(w Writer, n int) *Strip {
	if n < 1 {
		n = 1
	}
	return &Strip{
		w:      w,
		colors: make([]types.Color, n),
		frame:  make([]color.RGBA, n),
		level:  255,
	}
}

// Len returns the number of pixels.
func (s *Strip) Len() int { return len(s.colors) }

// SetColor stores c for pixel i. Out-of-range indices are ignored.
func (s *Strip) SetColor(i int, c types.Color) {
	if i < 0 || i >= len(s.colors) {
		return
	}
	s.colors[i] = c
}

// SetBrightness sets the global brightness in percent (clamped to 100).
func (s *Strip) SetBrightness(pct uint8) {
	s.level = uint16(mathx.Scale(pct, 100, 255))
}

// Show writes the scaled frame.
func (s *Strip) Show() error {
	for i, c := range s.colors {
		s.frame[i] = color.RGBA{
			R: scale(c.R(), s.level),
			G: scale(c.G(), s.level),
			B: scale(c.B(), s.level),
			A: 255,
		}
	}
	if err := s.w.WriteColors(s.frame); err != nil {
		return errcode.Wrap(errcode.NotReady, "pixel.Show", err)
	}
	return nil
}

func scale(v uint8, level uint16) uint8 {
	return uint8((uint32(v)*uint32(level) + 127) / 255)
}

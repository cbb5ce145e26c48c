package config

// Boards maps a build-time board name to its configuration.
var Boards = map[string]func() Config{
	"pico-w": Default,
	"pico-w-proto": func() Config {
		c := Default()
		c.Board = "pico-w-proto"
		c.Pins.Pixel = 22
		c.Pins.AuxPower = -1
		c.Pins.BatteryADC = 28
		c.DividerRatio = 3
		return c
	},
}

// Lookup resolves a board preset.
func Lookup(board string) (Config, bool) {
	f, ok := Boards[board]
	if !ok {
		return Config{}, false
	}
	return f(), true
}

package app

import "flag"

// Config represents the command-line parameters for the harness.
type Config struct {
	Width  int
	Height int
	Sides  int
	Radius float64
	TPS    int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 640, Height: 480, Sides: 32, Radius: 120, TPS: 60}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "logical screen width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "logical screen height in pixels")
	fs.IntVar(&c.Sides, "sides", c.Sides, "initial circle side count")
	fs.Float64Var(&c.Radius, "radius", c.Radius, "initial circle radius in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
}

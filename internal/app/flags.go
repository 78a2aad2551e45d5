package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim string

	Rows, Cols int
	Distance   float64
	Padding    float64
	Heads      int

	TPS  int
	Seed int64

	Width, Height int
}

// NewConfig returns a Config populated with sensible defaults. The 20 TPS
// default matches the roughly 50 ms cadence the walk is tuned for.
func NewConfig() *Config {
	return &Config{
		Sim:      "mosaic",
		Rows:     24,
		Cols:     32,
		Distance: 36,
		Padding:  3,
		Heads:    5,
		TPS:      20,
		Seed:     42,
		Width:    1280,
		Height:   800,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Rows, "rows", c.Rows, "anchor rows in the lattice")
	fs.IntVar(&c.Cols, "cols", c.Cols, "anchor columns in the lattice")
	fs.Float64Var(&c.Distance, "distance", c.Distance, "anchor spacing in pixels")
	fs.Float64Var(&c.Padding, "padding", c.Padding, "gap inset per triangle edge")
	fs.IntVar(&c.Heads, "heads", c.Heads, "number of light heads")
	fs.IntVar(&c.TPS, "tps", c.TPS, "walk ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Width, "width", c.Width, "window width")
	fs.IntVar(&c.Height, "height", c.Height, "window height")
}

// SimOptions flattens the lattice and walk settings into the string map
// consumed by simulation factories.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"rows":     strconv.Itoa(c.Rows),
		"cols":     strconv.Itoa(c.Cols),
		"distance": strconv.FormatFloat(c.Distance, 'f', -1, 64),
		"padding":  strconv.FormatFloat(c.Padding, 'f', -1, 64),
		"heads":    strconv.Itoa(c.Heads),
		"seed":     strconv.FormatInt(c.Seed, 10),
	}
}

package mosaic

import "strconv"

// Config controls the lattice dimensions and the walker population.
type Config struct {
	Rows, Cols int

	// Distance is the anchor spacing in pixels; Padding pulls each
	// triangle's corners inward to leave visible gaps between faces.
	Distance float64
	Padding  float64

	Heads int
	Seed  int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Rows:     24,
		Cols:     32,
		Distance: 36,
		Padding:  3,
		Heads:    5,
		Seed:     42,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["distance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Distance = parsed
		}
	}
	if v, ok := cfg["padding"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Padding = parsed
		}
	}
	if v, ok := cfg["heads"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Heads = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

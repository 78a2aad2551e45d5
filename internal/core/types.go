package core

// Sim is the contract between a mosaic simulation and the renderer. The
// position buffer is static after construction; the color buffer is rewritten
// every Step. Both hold triangleCount*9 float32 values (3 vertices of 3
// components per triangle).
type Sim interface {
	Name() string
	TriangleCount() int
	Reset(seed int64)
	Step()
	Positions() []float32
	Colors() []float32
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

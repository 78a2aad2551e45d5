package mosaic

import (
	"trimosaic/internal/core"
	"trimosaic/internal/lattice"
)

// Mosaic runs a fixed population of light heads on a triangular lattice.
// Every tick each head makes one weighted transition across the adjacency
// graph, the triangle it vacated starts fading toward black, and the color
// buffer is rewritten. All state is owned by Step; nothing here is safe for
// concurrent use. The tick boundary is the only yield point.
type Mosaic struct {
	cfg Config
	lat *lattice.Lattice

	heads  []head
	fading map[int]*fader
	pal    *palette
	rng    *core.RNG

	pos []float32
	col []float32

	ticks int
}

// New builds the lattice, runs the angle pass and allocates the flat
// buffers. Positions are static geometry and are filled exactly once here;
// call Reset before stepping to place the heads.
func New(cfg Config) *Mosaic {
	lat := lattice.Build(cfg.Rows, cfg.Cols, cfg.Distance, cfg.Padding)
	lattice.ComputeAngles(lat)

	n := len(lat.Triangles)
	m := &Mosaic{
		cfg:    cfg,
		lat:    lat,
		fading: make(map[int]*fader),
		pal:    newPalette(cfg.Heads),
		pos:    make([]float32, n*9),
		col:    make([]float32, n*9),
	}
	for i := range lat.Triangles {
		copy(m.pos[i*9:(i+1)*9], lat.Triangles[i].Pos[:])
	}
	return m
}

// Name returns the simulation identifier.
func (m *Mosaic) Name() string { return "mosaic" }

// TriangleCount returns the number of faces in the lattice.
func (m *Mosaic) TriangleCount() int { return len(m.lat.Triangles) }

// Positions exposes the flat vertex-position buffer (triangleCount*9).
func (m *Mosaic) Positions() []float32 { return m.pos }

// Colors exposes the flat vertex-color buffer (triangleCount*9).
func (m *Mosaic) Colors() []float32 { return m.col }

// Lattice exposes the underlying geometry.
func (m *Mosaic) Lattice() *lattice.Lattice { return m.lat }

// Ticks returns the number of Steps since the last Reset.
func (m *Mosaic) Ticks() int { return m.ticks }

// HeadCount returns the number of active walkers.
func (m *Mosaic) HeadCount() int { return len(m.heads) }

// FadingCount returns the number of triangles currently fading.
func (m *Mosaic) FadingCount() int { return len(m.fading) }

// Reset reseeds the walk: the hue cursor rewinds, the fading set and color
// buffer clear, and every head lands on a uniformly random triangle with no
// backtrack history. A lattice too small to hold triangles yields a mosaic
// with no heads, which ticks as a no-op.
func (m *Mosaic) Reset(seed int64) {
	m.rng = core.NewRNG(seed)
	m.pal = newPalette(m.cfg.Heads)
	m.ticks = 0
	m.heads = m.heads[:0]
	clear(m.fading)
	clear(m.col)

	n := len(m.lat.Triangles)
	if n == 0 {
		return
	}
	for i := 0; i < m.cfg.Heads; i++ {
		hd := head{cur: m.rng.IntN(n), prev: lattice.NoLink}
		hd.h, hd.s, hd.l = m.pal.headHSL(i)
		m.heads = append(m.heads, hd)
	}
	m.paintHeads()
}

// Step advances the mosaic by one tick: transition every head in insertion
// order, rotate the shared hue cursor, sweep the fading set, then repaint the
// resident triangles at full color so they are never dimmed by a stale fade.
func (m *Mosaic) Step() {
	for i := range m.heads {
		hd := &m.heads[i]
		if m.advanceHead(hd) {
			hd.h, hd.s, hd.l = m.pal.headHSL(i)
		}
	}
	m.pal.advance()
	m.sweepFades()
	m.paintHeads()
	m.ticks++
}

func (m *Mosaic) paintHeads() {
	for i := range m.heads {
		hd := &m.heads[i]
		r, g, b := hslToRGB(hd.h, hd.s, hd.l)
		m.writeColor(hd.cur, r, g, b)
	}
}

// writeColor sets all three vertices of a triangle to the same color.
func (m *Mosaic) writeColor(tri int, r, g, b float32) {
	base := tri * 9
	for v := 0; v < 3; v++ {
		o := base + v*3
		m.col[o] = r
		m.col[o+1] = g
		m.col[o+2] = b
	}
}

func init() {
	core.Register("mosaic", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}

package mosaic

import (
	"trimosaic/internal/core"
	"trimosaic/internal/lattice"
)

// Favour weights for the three candidate transitions out of a triangle. The
// ratios are tuned for visual pacing; keep them together.
const (
	favourAbsent   = 0
	favourPrevious = 1  // immediate backtracking, discouraged but legal
	favourFading   = 2  // a trail that is still visibly fading
	favourFresh    = 20 // unexplored territory
)

// head is one independent walker. cur and prev are triangle indices; prev is
// only consulted to discourage immediate backtracking. h/s/l is the color the
// head is currently painting and will leave behind when it vacates.
type head struct {
	cur, prev int
	h, s, l   float64
}

func (m *Mosaic) favour(hd *head, nb int) int {
	switch {
	case nb == lattice.NoLink:
		return favourAbsent
	case nb == hd.prev:
		return favourPrevious
	case m.fading[nb] != nil:
		return favourFading
	default:
		return favourFresh
	}
}

// pickWeighted draws an index by cumulative sum: a uniform draw in
// [0, total) selects the first candidate whose running sum exceeds it.
// Returns -1 when the total weight is zero.
func pickWeighted(rng *core.RNG, weights [3]int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return -1
	}
	draw := rng.IntN(total)
	sum := 0
	for i, w := range weights {
		sum += w
		if draw < sum {
			return i
		}
	}
	return -1
}

// advanceHead performs one weighted transition. The vacated triangle enters
// the fading set carrying the head's color, replacing (and thereby resetting)
// any fade already running there. A zero total weight means the head is fully
// enclosed; it stays put for the tick and leaves no trail entry.
func (m *Mosaic) advanceHead(hd *head) bool {
	t := &m.lat.Triangles[hd.cur]
	nbs := t.Neighbors()
	var weights [3]int
	for i, nb := range nbs {
		weights[i] = m.favour(hd, nb)
	}
	choice := pickWeighted(m.rng, weights)
	if choice < 0 {
		return false
	}
	m.fading[hd.cur] = &fader{tri: hd.cur, h: hd.h, s: hd.s, l: hd.l}
	hd.prev = hd.cur
	hd.cur = nbs[choice]
	return true
}

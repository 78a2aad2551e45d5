package mosaic

// fadeStep is the lightness removed from every fading triangle per tick. It
// doubles as the threshold below which the color snaps to pure black.
const fadeStep = 0.001

// fader is the mutable fade state of one vacated triangle. Lightness only
// ever decreases; hue and saturation stay fixed for the whole fade.
type fader struct {
	tri     int
	h, s, l float64
}

// sweepFades darkens every fading triangle by one step and writes the result
// into the color buffer. Entries that fall under the threshold are written as
// exact black and dropped from the set on the same sweep.
func (m *Mosaic) sweepFades() {
	for idx, f := range m.fading {
		f.l -= fadeStep
		if f.l < fadeStep {
			m.writeColor(idx, 0, 0, 0)
			delete(m.fading, idx)
			continue
		}
		r, g, b := hslToRGB(f.h, f.s, f.l)
		m.writeColor(idx, r, g, b)
	}
}

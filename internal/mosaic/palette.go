package mosaic

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	// hueStep is the amount (degrees) the shared hue cursor advances per
	// tick, rotating the whole mosaic slowly through the spectrum.
	hueStep = 0.6

	headSaturation = 0.7
	headLightness  = 0.55
)

// palette derives related-but-distinct head colors from a single shared hue
// cursor. Each head is offset a fixed angle from the cursor so simultaneous
// trails stay visibly apart.
type palette struct {
	hue    float64
	spread float64
}

func newPalette(heads int) *palette {
	p := &palette{}
	if heads > 0 {
		p.spread = 360 / float64(heads)
	}
	return p
}

// advance rotates the shared cursor by one tick.
func (p *palette) advance() {
	p.hue = math.Mod(p.hue+hueStep, 360)
}

// headHSL returns the color head i paints with at the current cursor.
func (p *palette) headHSL(i int) (h, s, l float64) {
	h = math.Mod(p.hue+float64(i)*p.spread, 360)
	return h, headSaturation, headLightness
}

// hslToRGB converts to the float32 triple written into the color buffer.
func hslToRGB(h, s, l float64) (r, g, b float32) {
	c := colorful.Hsl(h, s, l)
	return float32(c.R), float32(c.G), float32(c.B)
}

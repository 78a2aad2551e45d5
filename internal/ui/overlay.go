//go:build ebiten

package ui

import (
	"fmt"

	"trimosaic/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// statsProvider is implemented by sims that expose walk statistics.
type statsProvider interface {
	Ticks() int
	HeadCount() int
	FadingCount() int
}

// Overlay draws optional debug text on top of the mosaic.
type Overlay struct {
	visible bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// Update toggles overlay visibility.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.visible = !o.visible
	}
}

// Draw prints the current simulation stats when the overlay is visible.
func (o *Overlay) Draw(screen *ebiten.Image, sim core.Sim, paused bool) {
	if !o.visible {
		return
	}
	msg := fmt.Sprintf("%s: %d triangles", sim.Name(), sim.TriangleCount())
	if st, ok := sim.(statsProvider); ok {
		msg += fmt.Sprintf("\ntick %d  heads %d  fading %d", st.Ticks(), st.HeadCount(), st.FadingCount())
	}
	if paused {
		msg += "\npaused"
	}
	ebitenutil.DebugPrint(screen, msg)
}

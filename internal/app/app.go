//go:build ebiten

package app

import (
	"image/color"
	"time"

	"trimosaic/internal/core"
	"trimosaic/internal/render"
	"trimosaic/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// parallax scales how far the mesh drifts opposite the pointer.
const parallax = 0.04

// Game adapts a core simulation to the ebiten.Game interface. The display
// runs at ebiten's own frame rate; the walk advances on the FixedStep
// schedule so the fade pacing is independent of the monitor.
type Game struct {
	sim     core.Sim
	painter *render.MeshPainter
	overlay *ui.Overlay
	stepper *core.FixedStep

	width, height int
	seed          int64
	paused        bool
	tickOnce      bool

	panX, panY float64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	return &Game{
		sim:     sim,
		painter: render.NewMeshPainter(sim.Positions()),
		overlay: ui.NewOverlay(),
		stepper: core.NewFixedStep(cfg.TPS),
		width:   cfg.Width,
		height:  cfg.Height,
		seed:    cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the walk when its tick is due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()

	cx, cy := ebiten.CursorPosition()
	g.panX = -float64(cx-g.width/2) * parallax
	g.panY = -float64(cy-g.height/2) * parallax

	if (!g.paused && g.stepper.ShouldStep()) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current mosaic state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.painter.Draw(screen, g.sim.Positions(), g.sim.Colors(), g.panX, g.panY)
	g.overlay.Draw(screen, g.sim, g.paused)
}

// Layout tracks the window size so resizes re-fit the mesh.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width = outsideWidth
		g.height = outsideHeight
	}
	return g.width, g.height
}

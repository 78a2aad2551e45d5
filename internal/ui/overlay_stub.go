//go:build !ebiten

package ui

import "trimosaic/internal/core"

// Overlay is a placeholder for headless builds.
type Overlay struct{}

// NewOverlay constructs the headless placeholder.
func NewOverlay() *Overlay { return &Overlay{} }

// Update is a no-op placeholder.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder to satisfy the interface shape.
func (o *Overlay) Draw(screen any, sim core.Sim, paused bool) {}

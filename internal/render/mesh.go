//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// maxTriangles is what uint16 triangle-list indexing can address.
const maxTriangles = 65536 / 3

// MeshPainter turns the simulation's flat position/color buffers into an
// ebiten vertex mesh and draws it in one DrawTriangles call against a white
// source image. The index list is the identity and is built once; only the
// vertex slice is rewritten per frame.
type MeshPainter struct {
	verts   []ebiten.Vertex
	indices []uint16
	src     *ebiten.Image
	opts    *ebiten.DrawTrianglesOptions

	minX, minY float32
	maxX, maxY float32
}

// NewMeshPainter sizes the mesh for the given position buffer
// (triangleCount*9 floats) and records its bounding box for the fit
// transform.
func NewMeshPainter(positions []float32) *MeshPainter {
	n := len(positions) / 9
	if n > maxTriangles {
		n = maxTriangles
	}
	mp := &MeshPainter{
		verts:   make([]ebiten.Vertex, n*3),
		indices: make([]uint16, n*3),
		opts:    &ebiten.DrawTrianglesOptions{AntiAlias: true},
	}
	for i := range mp.indices {
		mp.indices[i] = uint16(i)
	}
	mp.src = ebiten.NewImage(1, 1)
	mp.src.Fill(color.White)

	for i := 0; i < n*3; i++ {
		x := positions[i*3]
		y := positions[i*3+1]
		if i == 0 || x < mp.minX {
			mp.minX = x
		}
		if i == 0 || x > mp.maxX {
			mp.maxX = x
		}
		if i == 0 || y < mp.minY {
			mp.minY = y
		}
		if i == 0 || y > mp.maxY {
			mp.maxY = y
		}
	}
	return mp
}

// Draw uploads positions and colors into the vertex slice, fitting the
// lattice bounding box to dst with a uniform scale plus the caller's pan
// offset, and renders the whole mesh.
func (mp *MeshPainter) Draw(dst *ebiten.Image, positions, colors []float32, panX, panY float64) {
	if len(mp.verts) == 0 {
		return
	}
	b := dst.Bounds()
	sw := float32(b.Dx())
	sh := float32(b.Dy())

	w := mp.maxX - mp.minX
	h := mp.maxY - mp.minY
	scale := float32(1)
	if w > 0 && h > 0 {
		sx := sw / w
		sy := sh / h
		scale = sx
		if sy < sx {
			scale = sy
		}
		scale *= 0.95
	}
	tx := (sw-w*scale)/2 + float32(panX)
	ty := (sh-h*scale)/2 + float32(panY)

	for i := range mp.verts {
		v := &mp.verts[i]
		v.DstX = (positions[i*3]-mp.minX)*scale + tx
		v.DstY = (positions[i*3+1]-mp.minY)*scale + ty
		v.SrcX = 0
		v.SrcY = 0
		v.ColorR = colors[i*3]
		v.ColorG = colors[i*3+1]
		v.ColorB = colors[i*3+2]
		v.ColorA = 1
	}
	dst.DrawTriangles(mp.verts, mp.indices, mp.src, mp.opts)
}

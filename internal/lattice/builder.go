package lattice

import "math"

var (
	cos60 = math.Cos(math.Pi / 3)
	sin60 = math.Sin(math.Pi / 3)
	cos30 = math.Cos(math.Pi / 6)
	sin30 = math.Sin(math.Pi / 6)
)

// Lattice holds the anchor grid and the triangle set as flat arenas indexed
// by the link fields on Anchor and Triangle.
type Lattice struct {
	Rows, Cols        int
	Distance, Padding float64

	Anchors   []Anchor
	Triangles []Triangle

	// Global center used for the angular bookkeeping: half the far-corner
	// anchor's coordinates, not the true centroid of the grid. The walk's
	// visual tuning depends on this exact definition.
	CenterX, CenterY float64
}

// Build places a rows*cols anchor grid with the given inter-point distance,
// wires full neighbor connectivity, materializes every triangle with padded
// vertex positions and resolves triangle-to-triangle adjacency. The result is
// deterministic. Degenerate dimensions (below 2) yield a small or empty
// triangle set rather than an error.
func Build(rows, cols int, distance, padding float64) *Lattice {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	lat := &Lattice{Rows: rows, Cols: cols, Distance: distance, Padding: padding}
	lat.placeAnchors()
	lat.wireNeighbors()
	lat.buildTriangles()
	lat.resolveEdgeNeighbors()
	lat.computePositions()
	return lat
}

// placeAnchors fills the grid row-major. Odd rows shift right by half a step,
// which turns the square grid into the triangular packing.
func (lat *Lattice) placeAnchors() {
	lat.Anchors = make([]Anchor, lat.Rows*lat.Cols)
	for r := 0; r < lat.Rows; r++ {
		for c := 0; c < lat.Cols; c++ {
			a := &lat.Anchors[r*lat.Cols+c]
			a.Row, a.Col = r, c
			a.X = float64(c)*lat.Distance + float64(r%2)*lat.Distance*cos60
			a.Y = float64(r) * lat.Distance * sin60
			a.clearLinks()
		}
	}
}

// wireNeighbors links each anchor to its horizontal and diagonal neighbors.
// The diagonal column targets depend on row parity: even rows reach columns
// c-1 and c in the adjacent rows, odd rows reach c and c+1. Swapping the two
// rules still produces a valid-looking tiling, just not this one.
func (lat *Lattice) wireNeighbors() {
	for r := 0; r < lat.Rows; r++ {
		for c := 0; c < lat.Cols; c++ {
			a := &lat.Anchors[r*lat.Cols+c]
			if c > 0 {
				a.Left = r*lat.Cols + c - 1
			}
			if c < lat.Cols-1 {
				a.Right = r*lat.Cols + c + 1
			}
			dl, dr := c-1, c
			if r%2 == 1 {
				dl, dr = c, c+1
			}
			if r > 0 {
				if dl >= 0 && dl < lat.Cols {
					a.TopLeft = (r-1)*lat.Cols + dl
				}
				if dr >= 0 && dr < lat.Cols {
					a.TopRight = (r-1)*lat.Cols + dr
				}
			}
			if r < lat.Rows-1 {
				if dl >= 0 && dl < lat.Cols {
					a.BottomLeft = (r+1)*lat.Cols + dl
				}
				if dr >= 0 && dr < lat.Cols {
					a.BottomRight = (r+1)*lat.Cols + dr
				}
			}
		}
	}
}

// buildTriangles materializes the up-to-six triangle slots around every
// anchor. A slot exists when the required pair of neighbors is present, and
// each triangle is created exactly once: creation immediately back-links it
// into all three sharing anchors under their own slot names, so a later
// anchor finds its slot already filled. The immediate back-linking is also
// what guarantees symmetric adjacency without a second pass.
func (lat *Lattice) buildTriangles() {
	for i := range lat.Anchors {
		a := &lat.Anchors[i]

		if a.TriTop == NoLink && a.TopLeft != NoLink && a.TopRight != NoLink {
			t := lat.addTriangle(a.TopLeft, a.TopRight, NoLink, i)
			a.TriTop = t
			lat.Anchors[a.TopLeft].TriRightBottom = t
			lat.Anchors[a.TopRight].TriLeftBottom = t
		}
		if a.TriBottom == NoLink && a.BottomLeft != NoLink && a.BottomRight != NoLink {
			t := lat.addTriangle(a.BottomLeft, a.BottomRight, i, NoLink)
			a.TriBottom = t
			lat.Anchors[a.BottomLeft].TriRightTop = t
			lat.Anchors[a.BottomRight].TriLeftTop = t
		}
		if a.TriLeftTop == NoLink && a.Left != NoLink && a.TopLeft != NoLink {
			t := lat.addTriangle(a.Left, i, a.TopLeft, NoLink)
			a.TriLeftTop = t
			lat.Anchors[a.Left].TriRightTop = t
			lat.Anchors[a.TopLeft].TriBottom = t
		}
		if a.TriRightTop == NoLink && a.Right != NoLink && a.TopRight != NoLink {
			t := lat.addTriangle(i, a.Right, a.TopRight, NoLink)
			a.TriRightTop = t
			lat.Anchors[a.Right].TriLeftTop = t
			lat.Anchors[a.TopRight].TriBottom = t
		}
		if a.TriLeftBottom == NoLink && a.Left != NoLink && a.BottomLeft != NoLink {
			t := lat.addTriangle(a.Left, i, NoLink, a.BottomLeft)
			a.TriLeftBottom = t
			lat.Anchors[a.Left].TriRightBottom = t
			lat.Anchors[a.BottomLeft].TriTop = t
		}
		if a.TriRightBottom == NoLink && a.Right != NoLink && a.BottomRight != NoLink {
			t := lat.addTriangle(i, a.Right, NoLink, a.BottomRight)
			a.TriRightBottom = t
			lat.Anchors[a.Right].TriLeftBottom = t
			lat.Anchors[a.BottomRight].TriTop = t
		}
	}
}

func (lat *Lattice) addTriangle(left, right, tipTop, tipBottom int) int {
	idx := len(lat.Triangles)
	lat.Triangles = append(lat.Triangles, Triangle{
		Index:     idx,
		Left:      left,
		Right:     right,
		TipTop:    tipTop,
		TipBottom: tipBottom,
		NbLeft:    NoLink,
		NbRight:   NoLink,
		NbBack:    NoLink,
	})
	return idx
}

// resolveEdgeNeighbors derives each triangle's left/right/back neighbors from
// the triangle slots already hanging off its corner anchors. For an upward
// triangle the left neighbor is the TriTop of its own left anchor; crossing
// the base lands in the left anchor's TriRightBottom. Downward triangles
// mirror this through the bottom slots.
func (lat *Lattice) resolveEdgeNeighbors() {
	for i := range lat.Triangles {
		t := &lat.Triangles[i]
		left := &lat.Anchors[t.Left]
		right := &lat.Anchors[t.Right]
		if t.PointsUp() {
			t.NbLeft = left.TriTop
			t.NbRight = right.TriTop
			t.NbBack = left.TriRightBottom
		} else {
			t.NbLeft = left.TriBottom
			t.NbRight = right.TriBottom
			t.NbBack = left.TriRightTop
		}
	}
}

// computePositions writes the padded vertex array, centroid and center offset
// for every triangle. Each corner is pulled `padding` along its own angle
// bisector (cos 30 / sin 30 componentwise for the base corners, straight
// toward the base for the tip); the three offsets cancel, so padding never
// moves the centroid.
func (lat *Lattice) computePositions() {
	if len(lat.Anchors) > 0 {
		far := lat.Anchors[len(lat.Anchors)-1]
		lat.CenterX = far.X / 2
		lat.CenterY = far.Y / 2
	}
	p := lat.Padding
	for i := range lat.Triangles {
		t := &lat.Triangles[i]
		l := lat.Anchors[t.Left]
		r := lat.Anchors[t.Right]

		// dir is +1 when the tip row lies below the base (screen y grows
		// downward), -1 when it lies above.
		var tip Anchor
		dir := 1.0
		if t.PointsUp() {
			tip = lat.Anchors[t.TipTop]
			dir = -1.0
		} else {
			tip = lat.Anchors[t.TipBottom]
		}

		lx, ly := l.X+p*cos30, l.Y+dir*p*sin30
		rx, ry := r.X-p*cos30, r.Y+dir*p*sin30
		tx, ty := tip.X, tip.Y-dir*p

		t.Pos = [9]float32{
			float32(lx), float32(ly), 0,
			float32(rx), float32(ry), 0,
			float32(tx), float32(ty), 0,
		}
		t.CX = (lx + rx + tx) / 3
		t.CY = (ly + ry + ty) / 3
		t.OffX = t.CX - lat.CenterX
		t.OffY = t.CY - lat.CenterY
	}
}

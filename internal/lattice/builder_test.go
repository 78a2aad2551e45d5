package lattice

import "testing"

func TestThreeByThreeLattice(t *testing.T) {
	lat := Build(3, 3, 1, 0)

	if got := len(lat.Triangles); got != 8 {
		t.Fatalf("3x3 lattice produced %d triangles, expected 8", got)
	}

	center := lat.Anchors[1*3+1]
	if center.TriTop == NoLink {
		t.Fatal("interior anchor (1,1) must own a top triangle slot")
	}
	if center.TriBottom == NoLink {
		t.Fatal("interior anchor (1,1) must own a bottom triangle slot")
	}

	if got := len(lat.Triangles[0].Pos); got != 9 {
		t.Fatalf("triangle position array has %d components, expected 9", got)
	}
}

func TestTriangleCountGrowsWithGrid(t *testing.T) {
	cases := []struct {
		rows, cols int
		want       int
	}{
		{2, 2, 2},
		{3, 3, 8},
		{4, 5, 24},
		{6, 4, 30},
	}
	for _, tc := range cases {
		lat := Build(tc.rows, tc.cols, 1, 0)
		if got := len(lat.Triangles); got != tc.want {
			t.Fatalf("%dx%d grid produced %d triangles, expected %d", tc.rows, tc.cols, got, tc.want)
		}
	}
}

func TestTriangleShape(t *testing.T) {
	for _, dim := range [][2]int{{2, 2}, {3, 4}, {5, 5}, {6, 3}} {
		lat := Build(dim[0], dim[1], 2, 0)
		for _, tri := range lat.Triangles {
			if tri.Left == NoLink || tri.Right == NoLink {
				t.Fatalf("%dx%d triangle %d missing a base anchor", dim[0], dim[1], tri.Index)
			}
			up := tri.TipTop != NoLink
			down := tri.TipBottom != NoLink
			if up == down {
				t.Fatalf("%dx%d triangle %d has TipTop=%d TipBottom=%d, expected exactly one tip",
					dim[0], dim[1], tri.Index, tri.TipTop, tri.TipBottom)
			}
		}
	}
}

func TestAdjacencySymmetry(t *testing.T) {
	lat := Build(6, 7, 3, 0)
	for _, tri := range lat.Triangles {
		for _, nb := range tri.Neighbors() {
			if nb == NoLink {
				continue
			}
			back := false
			for _, rev := range lat.Triangles[nb].Neighbors() {
				if rev == tri.Index {
					back = true
					break
				}
			}
			if !back {
				t.Fatalf("triangle %d links to %d but %d has no link back", tri.Index, nb, nb)
			}
		}
	}
}

func TestParityWiring(t *testing.T) {
	lat := Build(4, 4, 1, 0)

	at := func(r, c int) int { return r*4 + c }

	// Even row: diagonals reach columns c-1 and c in the adjacent rows.
	even := lat.Anchors[at(2, 1)]
	if even.TopLeft != at(1, 0) || even.TopRight != at(1, 1) {
		t.Fatalf("even-row anchor (2,1) wired to TopLeft=%d TopRight=%d, expected %d and %d",
			even.TopLeft, even.TopRight, at(1, 0), at(1, 1))
	}

	// Odd row: diagonals reach columns c and c+1.
	odd := lat.Anchors[at(1, 1)]
	if odd.TopLeft != at(0, 1) || odd.TopRight != at(0, 2) {
		t.Fatalf("odd-row anchor (1,1) wired to TopLeft=%d TopRight=%d, expected %d and %d",
			odd.TopLeft, odd.TopRight, at(0, 1), at(0, 2))
	}
	if odd.BottomLeft != at(2, 1) || odd.BottomRight != at(2, 2) {
		t.Fatalf("odd-row anchor (1,1) wired to BottomLeft=%d BottomRight=%d, expected %d and %d",
			odd.BottomLeft, odd.BottomRight, at(2, 1), at(2, 2))
	}
}

func TestPaddedCentroidInsideUnpaddedTriangle(t *testing.T) {
	lat := Build(4, 4, 10, 1)
	for _, tri := range lat.Triangles {
		l := lat.Anchors[tri.Left]
		r := lat.Anchors[tri.Right]
		tipIdx := tri.TipTop
		if tipIdx == NoLink {
			tipIdx = tri.TipBottom
		}
		tip := lat.Anchors[tipIdx]
		if !strictlyInside(tri.CX, tri.CY, l.X, l.Y, r.X, r.Y, tip.X, tip.Y) {
			t.Fatalf("triangle %d padded centroid (%f,%f) not strictly inside its unpadded corners",
				tri.Index, tri.CX, tri.CY)
		}
	}
}

// strictlyInside reports whether (px,py) lies strictly inside the triangle
// (ax,ay)-(bx,by)-(cx,cy) using edge cross-product signs.
func strictlyInside(px, py, ax, ay, bx, by, cx, cy float64) bool {
	d1 := (px-bx)*(ay-by) - (ax-bx)*(py-by)
	d2 := (px-cx)*(by-cy) - (bx-cx)*(py-cy)
	d3 := (px-ax)*(cy-ay) - (cx-ax)*(py-ay)
	neg := d1 < 0 || d2 < 0 || d3 < 0
	pos := d1 > 0 || d2 > 0 || d3 > 0
	if d1 == 0 || d2 == 0 || d3 == 0 {
		return false
	}
	return !(neg && pos)
}

func TestDegenerateGridsDoNotPanic(t *testing.T) {
	for _, dim := range [][2]int{{0, 0}, {1, 1}, {0, 5}, {5, 0}, {1, 8}, {8, 1}, {-3, 2}} {
		lat := Build(dim[0], dim[1], 1, 0)
		if len(lat.Triangles) != 0 {
			t.Fatalf("%dx%d grid produced %d triangles, expected none", dim[0], dim[1], len(lat.Triangles))
		}
	}
}

func TestGlobalCenterIsHalfFarCorner(t *testing.T) {
	lat := Build(5, 4, 2, 0)
	far := lat.Anchors[len(lat.Anchors)-1]
	if lat.CenterX != far.X/2 || lat.CenterY != far.Y/2 {
		t.Fatalf("center (%f,%f), expected half the far-corner anchor (%f,%f)",
			lat.CenterX, lat.CenterY, far.X/2, far.Y/2)
	}
}

func TestPaddingPreservesCentroid(t *testing.T) {
	plain := Build(4, 4, 10, 0)
	padded := Build(4, 4, 10, 1.5)
	if len(plain.Triangles) != len(padded.Triangles) {
		t.Fatalf("padding changed triangle count: %d vs %d", len(plain.Triangles), len(padded.Triangles))
	}
	for i := range plain.Triangles {
		dx := plain.Triangles[i].CX - padded.Triangles[i].CX
		dy := plain.Triangles[i].CY - padded.Triangles[i].CY
		if dx > 1e-9 || dx < -1e-9 || dy > 1e-9 || dy < -1e-9 {
			t.Fatalf("triangle %d centroid moved by (%g,%g) under padding", i, dx, dy)
		}
	}
}

package lattice

// NoLink marks an absent neighbor or triangle slot. Anchors and triangles
// reference each other through indices into the lattice arenas, never through
// pointers, so the mutual back-links form no ownership cycle.
const NoLink = -1

// Anchor is a lattice point. Neighbor links and triangle slots are filled in
// during Build and are immutable afterwards; edge anchors simply keep NoLink
// in the slots that fall outside the grid.
type Anchor struct {
	Row, Col int
	X, Y     float64

	// Directional neighbors (anchor indices).
	Left, Right             int
	TopLeft, TopRight       int
	BottomLeft, BottomRight int

	// Triangle ownership slots, one per orientation touching this anchor
	// (triangle indices). TriTop is the triangle occupying the space
	// directly above the anchor, TriLeftTop the one up and to the left,
	// and so on.
	TriTop, TriBottom             int
	TriLeftTop, TriRightTop       int
	TriLeftBottom, TriRightBottom int
}

func (a *Anchor) clearLinks() {
	a.Left, a.Right = NoLink, NoLink
	a.TopLeft, a.TopRight = NoLink, NoLink
	a.BottomLeft, a.BottomRight = NoLink, NoLink
	a.TriTop, a.TriBottom = NoLink, NoLink
	a.TriLeftTop, a.TriRightTop = NoLink, NoLink
	a.TriLeftBottom, a.TriRightBottom = NoLink, NoLink
}

package lattice

// Triangle is one face of the tessellation. Left and Right are always the two
// base corners; exactly one of TipTop/TipBottom names the third corner,
// depending on which way the triangle points. NbLeft, NbRight and NbBack are
// the triangles reached by crossing the left edge, the right edge and the
// edge opposite the tip.
//
// Pos holds the padded vertex coordinates in drawing order (left, right, tip;
// x, y, z with z always 0). Angle and the Delta fields are derived by
// ComputeAngles and carry no authority over the geometry.
type Triangle struct {
	Index int

	Left, Right       int // anchor indices
	TipTop, TipBottom int // anchor indices, exactly one populated

	NbLeft, NbRight, NbBack int // triangle indices

	Pos [9]float32

	CX, CY     float64
	OffX, OffY float64

	Angle                            float64
	DeltaLeft, DeltaRight, DeltaBack float64
}

// PointsUp reports whether the triangle's tip is on its top edge row.
func (t *Triangle) PointsUp() bool { return t.TipTop != NoLink }

// Neighbors returns the three edge-neighbor indices in left, right, back
// order. Absent neighbors are NoLink.
func (t *Triangle) Neighbors() [3]int {
	return [3]int{t.NbLeft, t.NbRight, t.NbBack}
}

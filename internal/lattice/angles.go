package lattice

import "math"

// ComputeAngles attaches the derived angular fields to every triangle: the
// global angle of its centroid offset, and for each populated edge neighbor
// the angular delta between the bearing toward that neighbor and the
// triangle's own global angle. Pure post-processing over final geometry; the
// fields are recomputed from scratch, so calling it again changes nothing.
func ComputeAngles(lat *Lattice) {
	for i := range lat.Triangles {
		t := &lat.Triangles[i]
		t.Angle = math.Atan2(t.OffY, t.OffX)
		t.DeltaLeft = lat.neighborDelta(t, t.NbLeft)
		t.DeltaRight = lat.neighborDelta(t, t.NbRight)
		t.DeltaBack = lat.neighborDelta(t, t.NbBack)
	}
}

func (lat *Lattice) neighborDelta(t *Triangle, nb int) float64 {
	if nb == NoLink {
		return 0
	}
	n := &lat.Triangles[nb]
	bearing := math.Atan2(n.CY-t.CY, n.CX-t.CX)
	return normalizeAngle(bearing - t.Angle)
}

// normalizeAngle folds a into (-pi, pi].
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

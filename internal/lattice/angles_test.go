package lattice

import (
	"math"
	"testing"
)

func TestAngularDeltasInRange(t *testing.T) {
	lat := Build(6, 6, 3, 0.2)
	ComputeAngles(lat)
	for _, tri := range lat.Triangles {
		for slot, d := range []float64{tri.DeltaLeft, tri.DeltaRight, tri.DeltaBack} {
			if d <= -math.Pi || d > math.Pi {
				t.Fatalf("triangle %d slot %d delta %f outside (-pi, pi]", tri.Index, slot, d)
			}
		}
	}
}

func TestComputeAnglesIdempotent(t *testing.T) {
	lat := Build(5, 5, 2, 0.1)
	ComputeAngles(lat)

	first := make([]Triangle, len(lat.Triangles))
	copy(first, lat.Triangles)

	ComputeAngles(lat)

	for i, tri := range lat.Triangles {
		if tri.Angle != first[i].Angle ||
			tri.DeltaLeft != first[i].DeltaLeft ||
			tri.DeltaRight != first[i].DeltaRight ||
			tri.DeltaBack != first[i].DeltaBack {
			t.Fatalf("triangle %d derived fields changed on second ComputeAngles pass", i)
		}
	}
}

func TestAngleMatchesCentroidOffset(t *testing.T) {
	lat := Build(4, 4, 2, 0)
	ComputeAngles(lat)
	for _, tri := range lat.Triangles {
		want := math.Atan2(tri.OffY, tri.OffX)
		if tri.Angle != want {
			t.Fatalf("triangle %d angle %f, expected atan2 of centroid offset %f", tri.Index, tri.Angle, want)
		}
	}
}

func TestDeltaPointsTowardNeighbor(t *testing.T) {
	lat := Build(5, 5, 2, 0)
	ComputeAngles(lat)
	for _, tri := range lat.Triangles {
		nbs := tri.Neighbors()
		deltas := []float64{tri.DeltaLeft, tri.DeltaRight, tri.DeltaBack}
		for i, nb := range nbs {
			if nb == NoLink {
				continue
			}
			n := lat.Triangles[nb]
			bearing := math.Atan2(n.CY-tri.CY, n.CX-tri.CX)
			want := normalizeAngle(bearing - tri.Angle)
			if deltas[i] != want {
				t.Fatalf("triangle %d slot %d delta %f, expected %f", tri.Index, i, deltas[i], want)
			}
		}
	}
}

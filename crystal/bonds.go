package crystal

import (
	"math"

	"github.com/molgrove/poremod/geometry"
	"github.com/molgrove/poremod/graph"
)

// distanceEpsilon is the tolerance below which two distances are
// considered equal when deciding CrossBoundary: a bond crosses the
// boundary iff its nearest-image distance differs from its in-cell
// distance.
const distanceEpsilon = 1e-9

// BondDistance computes both the in-cell and nearest-image Cartesian
// distance between two fractional points under box, and whether they
// differ (CrossBoundary).
func BondDistance(box geometry.Box, a, b geometry.Vec3) (inCell, pbc float64, crossBoundary bool, err error) {
	delta := geometry.Vec3{X: b.X - a.X, Y: b.Y - a.Y, Z: b.Z - a.Z}

	inCellCart := box.FracToCart(delta)
	inCell = norm(inCellCart)

	nearest, err := geometry.NearestImageDelta(delta)
	if err != nil {
		return 0, 0, false, err
	}
	pbcCart := box.FracToCart(nearest)
	pbc = norm(pbcCart)

	crossBoundary = math.Abs(inCell-pbc) > distanceEpsilon

	return inCell, pbc, crossBoundary, nil
}

func norm(v geometry.Vec3) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// RecomputeBonds recomputes Distance/CrossBoundary for every edge in
// bonds from atoms' current fractional coordinates under box. Called
// whenever coordinates change underneath an existing bond graph, in
// particular after the replacement engine's final assembly.
func RecomputeBonds(box geometry.Box, atoms AtomSet, bonds *graph.Graph) error {
	for _, e := range bonds.Edges() {
		_, pbc, cross, err := BondDistance(box, atoms[e.U].Frac, atoms[e.V].Frac)
		if err != nil {
			return err
		}
		if err := bonds.SetEdgeProperty(e.U, e.V, graph.EdgeProps{
			Distance:      pbc,
			CrossBoundary: cross,
		}); err != nil {
			return err
		}
	}

	return nil
}

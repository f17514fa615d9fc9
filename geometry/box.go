package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 is a point or displacement in three-space, either fractional
// (unit-cell coordinates, not necessarily in [0,1)) or Cartesian
// depending on context. Reusing gonum's r3.Vec gives Add/Sub/Scale for
// free instead of hand-rolled component arithmetic.
type Vec3 = r3.Vec

// Box is a 3x3 unit cell: FToC maps fractional coordinates to
// Cartesian, CToF is its cached inverse. Both are stored as *mat.Dense
// so conversions are a single MulVec call.
type Box struct {
	FToC *mat.Dense
	CToF *mat.Dense
}

// NewBox builds a Box from a row-major 3x3 fractional-to-Cartesian
// matrix, inverting it once up front.
//
// Complexity: O(1) — a single 3x3 matrix inversion.
func NewBox(fToC [3][3]float64) (Box, error) {
	flat := make([]float64, 0, 9)
	for _, row := range fToC {
		flat = append(flat, row[0], row[1], row[2])
	}
	m := mat.NewDense(3, 3, flat)

	var inv mat.Dense
	if err := inv.Inverse(m); err != nil {
		return Box{}, fmt.Errorf("geometry: invert box: %w: %v", ErrSingularBox, err)
	}

	return Box{FToC: m, CToF: &inv}, nil
}

// FracToCart converts a fractional coordinate to Cartesian space.
func (b Box) FracToCart(f Vec3) Vec3 {
	return matVec(b.FToC, f)
}

// CartToFrac converts a Cartesian coordinate to fractional space.
func (b Box) CartToFrac(c Vec3) Vec3 {
	return matVec(b.CToF, c)
}

func matVec(m *mat.Dense, v Vec3) Vec3 {
	in := mat.NewVecDense(3, []float64{v.X, v.Y, v.Z})
	var out mat.VecDense
	out.MulVec(m, in)

	return Vec3{X: out.AtVec(0), Y: out.AtVec(1), Z: out.AtVec(2)}
}

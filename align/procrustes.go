package align

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/molgrove/poremod/geometry"
)

// Procrustes computes the rotation R minimizing ||R*A - B||_F for two
// correlated, already-centered point clouds a and b (same length,
// a[i] correlated with b[i]).
//
// Returns R, the RMSD of R applied to a against b, and a non-nil
// ErrDegenerateAlignment (alongside a still-usable R) when len(a) < 3.
//
// Complexity: O(n) to build the 3x3 correlation matrix plus a fixed
// cost 3x3 SVD; O(n) to score RMSD.
func Procrustes(a, b []geometry.Vec3) (*mat.Dense, float64, error) {
	// Stage 1: validate
	if len(a) != len(b) {
		return nil, 0, ErrPointCountMismatch
	}
	if len(a) == 0 {
		return nil, 0, ErrEmptyPointCloud
	}

	// Stage 2: build the 3x3 correlation matrix H = A * B^T, where A
	// and B have one point per column.
	h := mat.NewDense(3, 3, nil)
	for i := range a {
		ai := [3]float64{a[i].X, a[i].Y, a[i].Z}
		bi := [3]float64{b[i].X, b[i].Y, b[i].Z}
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				h.Set(r, c, h.At(r, c)+ai[r]*bi[c])
			}
		}
	}

	// Stage 3: SVD of H = U * Sigma * V^T, then R = V * U^T.
	var svd mat.SVD
	if ok := svd.Factorize(h, mat.SVDFull); !ok {
		return nil, 0, fmt.Errorf("align: SVD factorization failed")
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	var r mat.Dense
	r.Mul(&v, u.T())

	rmsd := scoreRMSD(&r, a, b)

	if len(a) < minPointsForUniqueness {
		return &r, rmsd, ErrDegenerateAlignment
	}

	return &r, rmsd, nil
}

// Apply rotates a single point by R.
func Apply(r *mat.Dense, p geometry.Vec3) geometry.Vec3 {
	in := mat.NewVecDense(3, []float64{p.X, p.Y, p.Z})
	var out mat.VecDense
	out.MulVec(r, in)

	return geometry.Vec3{X: out.AtVec(0), Y: out.AtVec(1), Z: out.AtVec(2)}
}

func scoreRMSD(r *mat.Dense, a, b []geometry.Vec3) float64 {
	var sumSq float64
	for i := range a {
		rotated := Apply(r, a[i])
		dx := rotated.X - b[i].X
		dy := rotated.Y - b[i].Y
		dz := rotated.Z - b[i].Z
		sumSq += dx*dx + dy*dy + dz*dz
	}

	return math.Sqrt(sumSq / float64(len(a)))
}

package geometry

import "math"

// maxFracDelta is the precondition every nearest-image computation
// assumes: the two points lie within the same or an adjacent unit
// cell, so no axis of their fractional displacement exceeds this in
// magnitude. Exceeding it indicates malformed input coordinates.
const maxFracDelta = 2.0

// NearestImageDelta returns the minimum-image correction of a
// fractional displacement: each axis has its nearest integer
// subtracted, mapping the component into [-0.5, 0.5].
//
// Precondition: |d.X|, |d.Y|, |d.Z| < 2 (ErrGeometricPrecondition
// otherwise — the two points must lie within the same or an adjacent
// cell for "nearest image" to be well defined).
func NearestImageDelta(d Vec3) (Vec3, error) {
	if !withinPrecondition(d) {
		return Vec3{}, ErrGeometricPrecondition
	}

	return Vec3{
		X: d.X - math.Round(d.X),
		Y: d.Y - math.Round(d.Y),
		Z: d.Z - math.Round(d.Z),
	}, nil
}

func withinPrecondition(d Vec3) bool {
	return math.Abs(d.X) < maxFracDelta && math.Abs(d.Y) < maxFracDelta && math.Abs(d.Z) < maxFracDelta
}

// AdjustForPBC makes an ordered fractional point cloud locally
// contiguous: atom 0 is the anchor and is returned unchanged; every
// other atom's displacement from the anchor is nearest-image corrected
// and re-added to the anchor. The result has no component discontinuity
// even when the original cloud straddles a cell face, which is what
// makes it suitable input for rigid-body alignment.
//
// An empty frac yields (nil, nil). Returns ErrGeometricPrecondition if
// any displacement from the anchor violates the nearest-image
// precondition.
func AdjustForPBC(frac []Vec3) ([]Vec3, error) {
	if len(frac) == 0 {
		return nil, nil
	}

	anchor := frac[0]
	out := make([]Vec3, len(frac))
	out[0] = anchor
	for i := 1; i < len(frac); i++ {
		delta := r3Sub(frac[i], anchor)
		corrected, err := NearestImageDelta(delta)
		if err != nil {
			return nil, err
		}
		out[i] = r3Add(anchor, corrected)
	}

	return out, nil
}

// Wrap maps each fractional coordinate to its representative in
// [0,1). Applying Wrap twice is equivalent to applying it once.
func Wrap(xf []Vec3) []Vec3 {
	out := make([]Vec3, len(xf))
	for i, v := range xf {
		out[i] = Vec3{X: wrapOne(v.X), Y: wrapOne(v.Y), Z: wrapOne(v.Z)}
	}

	return out
}

func wrapOne(x float64) float64 {
	w := math.Mod(x, 1.0)
	if w < 0 {
		w += 1.0
	}

	return w
}

func r3Sub(a, b Vec3) Vec3 { return Vec3{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z} }
func r3Add(a, b Vec3) Vec3 { return Vec3{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z} }

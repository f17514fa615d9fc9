package geometry

// Centroid returns the arithmetic mean of pts. Callers pass an empty
// slice at their own risk; Centroid returns the zero vector for it.
func Centroid(pts []Vec3) Vec3 {
	if len(pts) == 0 {
		return Vec3{}
	}

	var sum Vec3
	for _, p := range pts {
		sum = r3Add(sum, p)
	}

	return Vec3{X: sum.X / float64(len(pts)), Y: sum.Y / float64(len(pts)), Z: sum.Z / float64(len(pts))}
}

// Sub returns a - b componentwise.
func Sub(a, b Vec3) Vec3 { return r3Sub(a, b) }

// Add returns a + b componentwise.
func Add(a, b Vec3) Vec3 { return r3Add(a, b) }

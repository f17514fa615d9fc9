// Package align computes the orthogonal Procrustes rotation between
// two correlated 3D point clouds: the rotation R minimizing
// ||R*A - B||_F for point sets A (e.g. a replacement fragment's
// attachment atoms) and B (a PBC-adjusted parent subset, already
// centered at the origin).
//
// No reflection correction is applied — R may have det(R) == -1 when
// the best-fitting orthogonal matrix is an improper rotation, so
// chiral flips are possible. Callers wanting chirality preservation
// should detect det(R) < 0 and flip the sign of V's last column
// themselves.
package align

package geometry

import "errors"

// ErrSingularBox indicates the fractional-to-Cartesian matrix has no
// inverse (zero-volume or degenerate unit cell).
var ErrSingularBox = errors.New("geometry: box matrix is singular")

// ErrGeometricPrecondition indicates a fractional displacement reached
// 2 or more in magnitude on some axis, violating the |d| < 2
// precondition nearest-image
// correction and PBC adjustment both require. It signals malformed
// input coordinates (atoms displaced by more than one full cell from
// their neighbors) and is always fatal to the calling operation.
var ErrGeometricPrecondition = errors.New("geometry: fractional displacement outside (-2, 2)")

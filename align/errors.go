package align

import "errors"

// ErrPointCountMismatch indicates the two point clouds passed to
// Procrustes have different lengths.
var ErrPointCountMismatch = errors.New("align: point clouds have different lengths")

// ErrEmptyPointCloud indicates Procrustes was called with no points at all.
var ErrEmptyPointCloud = errors.New("align: empty point cloud")

// ErrDegenerateAlignment is a non-fatal condition: fewer than 3 points
// were supplied, so the fitted rotation is well-defined but not
// unique. Procrustes still returns a best-effort rotation; callers
// should treat this as a warning, not abort.
var ErrDegenerateAlignment = errors.New("align: fewer than 3 points, rotation is not unique")

// minPointsForUniqueness is the point count below which a 3x3 rotation
// fit is not uniquely determined.
const minPointsForUniqueness = 3

// Package geometry provides periodic (fractional/Cartesian) coordinate
// conversion for crystal unit cells.
//
// A Box carries the 3x3 linear map from fractional to Cartesian space
// (f_to_c) plus its cached inverse (c_to_f). Three free functions cover
// the periodic-boundary primitives used throughout the replacement
// engine:
//
//	NearestImageDelta — minimum-image correction of a fractional delta
//	AdjustForPBC      — anchor-relative correction of a point cloud
//	Wrap              — fold fractional coordinates into [0,1)
//
// Complexity: all operations here are O(1) per point (or O(n) over a
// point cloud); none allocate beyond their return value.
package geometry

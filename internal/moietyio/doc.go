// Package moietyio loads moiety files into crystal values. It is the
// only place the R-group sentinel-character encoding exists: on disk a
// masked atom's species symbol carries a trailing tag character
// (default '!'), while in memory the mask is always a per-atom boolean.
//
// The file format is line-oriented:
//
//	name
//	a11 a12 a13        three rows of the fractional-to-Cartesian box
//	a21 a22 a23
//	a31 a32 a33
//	N
//	Sp x y z           N atom lines; species symbol, fractional coords;
//	...                a trailing tag character marks an R-group atom
//	M
//	u v                M bond lines, 1-based atom indices
//	...
//
// Bond inference is out of scope here: bonds are read, never guessed.
// Masked atoms are reordered to the end of the atom list on load, so
// the unmasked atoms always form a contiguous prefix.
package moietyio

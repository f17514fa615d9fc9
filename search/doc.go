// Package search groups the isomorphisms found by the isomorphism
// package into locations and orientations.
//
// A location is the canonical (sorted) set of parent vertices spanned
// by one or more isomorphisms; an orientation is one particular
// isomorphism within a location. Two isomorphisms share a location iff
// their sorted images are equal.
package search

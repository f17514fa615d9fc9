// Package replace implements the geometric find-and-replace engine:
// for each selected (location, orientation) configuration it aligns a
// copy of the replacement moiety onto the matched parent subset,
// rewires bonds between preserved parent atoms and the inserted
// fragment, deletes the displaced parent atoms, and wraps the result
// back into the unit cell.
//
// Resolve (scheme.go) turns a replacement scheme — all locations,
// random orientations, an explicit loc/ori pairing, or a sampled
// subset of locations — into the concrete []Config list Engine
// consumes. Resolve never looks at geometry, and Engine never looks at
// the scheme grammar; the two share one functional-option vocabulary
// (SchemeOption) so a single option list drives a whole call.
package replace

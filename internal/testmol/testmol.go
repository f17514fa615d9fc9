// Package testmol builds small literal molecules used across the test
// suites: benzene-family rings in a cubic cell, plus two-atom
// fragments for substitution scenarios. Construction panics on error —
// these are fixtures, not production inputs.
package testmol

import (
	"math"

	"github.com/molgrove/poremod/crystal"
	"github.com/molgrove/poremod/geometry"
	"github.com/molgrove/poremod/graph"
)

// Geometry constants, in angstroms.
const (
	CellA   = 20.0 // cubic cell edge, large enough to isolate one molecule
	RingCC  = 1.39 // aromatic C-C bond length; ring radius equals this
	BondCH  = 1.09
	BondCF  = 1.35
	RadiusH = RingCC + BondCH // ring-substituent H distance from center
	RadiusF = RingCC + BondCF
)

// Center is the default fractional molecule center.
var Center = geometry.Vec3{X: 0.5, Y: 0.5, Z: 0.5}

// CubeBox returns a cubic box of edge a.
func CubeBox(a float64) geometry.Box {
	box, err := geometry.NewBox([3][3]float64{{a, 0, 0}, {0, a, 0}, {0, 0, a}})
	if err != nil {
		panic(err)
	}

	return box
}

// New assembles a crystal from atoms and 0-based bond pairs, computing
// each bond's distance and cross-boundary flag under box.
func New(name string, box geometry.Box, atoms crystal.AtomSet, bondPairs [][2]int) *crystal.Crystal {
	bonds := graph.NewGraph(atoms.Labels())
	for _, b := range bondPairs {
		_, pbc, cross, err := crystal.BondDistance(box, atoms[b[0]].Frac, atoms[b[1]].Frac)
		if err != nil {
			panic(err)
		}
		if err := bonds.AddEdge(b[0], b[1], graph.EdgeProps{Distance: pbc, CrossBoundary: cross}); err != nil {
			panic(err)
		}
	}

	c, err := crystal.New(name, box, atoms, bonds, nil)
	if err != nil {
		panic(err)
	}

	return c
}

// ringAtom places a species at the given radius and hexagon angle
// index around center (fractional, wrapped into [0,1)).
func ringAtom(species string, radius float64, k int, center geometry.Vec3) crystal.Atom {
	theta := float64(k) * math.Pi / 3
	cart := geometry.Vec3{X: radius * math.Cos(theta), Y: radius * math.Sin(theta)}
	frac := geometry.Vec3{
		X: center.X + cart.X/CellA,
		Y: center.Y + cart.Y/CellA,
		Z: center.Z + cart.Z/CellA,
	}

	return crystal.Atom{Species: species, Frac: geometry.Wrap([]geometry.Vec3{frac})[0]}
}

// Benzene returns C6H6 centered at center: atoms 0..5 are ring
// carbons, 6..11 their hydrogens, H k bonded to C k.
func Benzene(name string, center geometry.Vec3) *crystal.Crystal {
	atoms := make(crystal.AtomSet, 0, 12)
	for k := 0; k < 6; k++ {
		atoms = append(atoms, ringAtom("C", RingCC, k, center))
	}
	for k := 0; k < 6; k++ {
		atoms = append(atoms, ringAtom("H", RadiusH, k, center))
	}

	bonds := make([][2]int, 0, 12)
	for k := 0; k < 6; k++ {
		bonds = append(bonds, [2]int{k, (k + 1) % 6})
		bonds = append(bonds, [2]int{k, 6 + k})
	}

	return New(name, CubeBox(CellA), atoms, bonds)
}

// Ring returns the bare C6 ring.
func Ring(name string, center geometry.Vec3) *crystal.Crystal {
	atoms := make(crystal.AtomSet, 0, 6)
	for k := 0; k < 6; k++ {
		atoms = append(atoms, ringAtom("C", RingCC, k, center))
	}

	bonds := make([][2]int, 0, 6)
	for k := 0; k < 6; k++ {
		bonds = append(bonds, [2]int{k, (k + 1) % 6})
	}

	return New(name, CubeBox(CellA), atoms, bonds)
}

// Fluorobenzene returns C6H5F: fluorine replaces the hydrogen at ring
// position 0. Atoms 0..5 are carbons, 6 is F, 7..11 the hydrogens at
// positions 1..5.
func Fluorobenzene(name string, center geometry.Vec3) *crystal.Crystal {
	atoms := make(crystal.AtomSet, 0, 12)
	for k := 0; k < 6; k++ {
		atoms = append(atoms, ringAtom("C", RingCC, k, center))
	}
	atoms = append(atoms, ringAtom("F", RadiusF, 0, center))
	for k := 1; k < 6; k++ {
		atoms = append(atoms, ringAtom("H", RadiusH, k, center))
	}

	bonds := make([][2]int, 0, 12)
	for k := 0; k < 6; k++ {
		bonds = append(bonds, [2]int{k, (k + 1) % 6})
	}
	bonds = append(bonds, [2]int{0, 6})
	for k := 1; k < 6; k++ {
		bonds = append(bonds, [2]int{k, 6 + k})
	}

	return New(name, CubeBox(CellA), atoms, bonds)
}

// CH returns a two-atom C-H fragment with the hydrogen masked — the
// query shape for "replace this hydrogen position".
func CH(name string) *crystal.Crystal {
	atoms := crystal.AtomSet{
		{Species: "C", Frac: Center},
		{Species: "H", Masked: true, Frac: geometry.Vec3{X: Center.X + BondCH/CellA, Y: Center.Y, Z: Center.Z}},
	}

	return New(name, CubeBox(CellA), atoms, [][2]int{{0, 1}})
}

// CF returns a two-atom C-F fragment, both unmasked — the replacement
// shape pairing with CH.
func CF(name string) *crystal.Crystal {
	atoms := crystal.AtomSet{
		{Species: "C", Frac: Center},
		{Species: "F", Frac: geometry.Vec3{X: Center.X + BondCF/CellA, Y: Center.Y, Z: Center.Z}},
	}

	return New(name, CubeBox(CellA), atoms, [][2]int{{0, 1}})
}

// H returns a single unmasked hydrogen atom with no bonds.
func H(name string) *crystal.Crystal {
	return New(name, CubeBox(CellA), crystal.AtomSet{{Species: "H", Frac: Center}}, nil)
}

// Empty returns a crystal with no atoms, used for null-replacement
// scenarios.
func Empty(name string) *crystal.Crystal {
	return New(name, CubeBox(CellA), crystal.AtomSet{}, nil)
}

// SpeciesCount tallies atoms by species symbol, ignoring mask tags.
func SpeciesCount(c *crystal.Crystal) map[string]int {
	out := make(map[string]int)
	for _, a := range c.Atoms {
		out[a.Species]++
	}

	return out
}

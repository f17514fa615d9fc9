package replace_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/molgrove/poremod/crystal"
	"github.com/molgrove/poremod/geometry"
	"github.com/molgrove/poremod/internal/testmol"
	"github.com/molgrove/poremod/isomorphism"
	"github.com/molgrove/poremod/replace"
	"github.com/molgrove/poremod/search"
)

func runSearch(t *testing.T, query, parent *crystal.Crystal) *search.Search {
	t.Helper()

	isos, err := isomorphism.FindSubgraphIsomorphisms(query.Bonds, parent.Bonds, isomorphism.Options{})
	require.NoError(t, err)

	return search.Build(query, parent, isos, false)
}

func kinds(warnings []replace.Warning) map[replace.WarningKind]int {
	out := make(map[replace.WarningKind]int)
	for _, w := range warnings {
		out[w.Kind]++
	}

	return out
}

// Replacing benzene with itself must reproduce the parent up to
// reindexing: same atom count, same species multiset, same bond count,
// and every bond back at a chemically sane length.
func TestEngine_IdentityReplacement(t *testing.T) {
	parent := testmol.Benzene("benzene", testmol.Center)
	query := testmol.Benzene("query", testmol.Center)
	replacement := testmol.Benzene("replacement", testmol.Center)

	s := runSearch(t, query, parent)
	require.Equal(t, 1, s.NbLocations())

	configs, err := replace.Resolve(s)
	require.NoError(t, err)

	out, warnings, err := replace.Engine(s, replacement, configs, replace.WithName("identity"))
	require.NoError(t, err)
	require.Equal(t, "identity", out.Name)
	require.Equal(t, parent.NumAtoms(), out.NumAtoms())
	require.Equal(t, parent.Bonds.EdgeCount(), out.Bonds.EdgeCount())
	require.Equal(t, testmol.SpeciesCount(parent), testmol.SpeciesCount(out))
	require.NotContains(t, kinds(warnings), replace.WarnNoMatch)

	for _, e := range out.Bonds.Edges() {
		d := e.Props.Distance
		closeToCC := d > testmol.RingCC-1e-6 && d < testmol.RingCC+1e-6
		closeToCH := d > testmol.BondCH-1e-6 && d < testmol.BondCH+1e-6
		require.True(t, closeToCC || closeToCH, "bond length %v is neither C-C nor C-H", d)
	}
}

// Swapping one C-H unit for C-F: the ring keeps its topology, gains a
// fluorine, and the two external bonds reattach the new carbon.
func TestEngine_SingleSubstitution(t *testing.T) {
	parent := testmol.Benzene("benzene", testmol.Center)
	query := testmol.CH("ch") // H masked
	replacement := testmol.CF("cf")

	s := runSearch(t, query, parent)
	require.Equal(t, 6, s.NbLocations())

	configs, err := replace.Resolve(s, replace.WithLoc(1))
	require.NoError(t, err)

	out, warnings, err := replace.Engine(s, replacement, configs)
	require.NoError(t, err)

	require.Equal(t, 12, out.NumAtoms())
	require.Equal(t, map[string]int{"C": 6, "H": 5, "F": 1}, testmol.SpeciesCount(out))
	require.Equal(t, 12, out.Bonds.EdgeCount(),
		"9 surviving parent bonds + 1 fragment bond + 2 external bonds")

	// One correspondence point cannot pin a rotation.
	require.Contains(t, kinds(warnings), replace.WarnDegenerateAlignment)

	// The inserted carbon must be bonded into the ring: some C with
	// both another C and the F as neighbors.
	fIdx := -1
	for i, a := range out.Atoms {
		if a.Species == "F" {
			fIdx = i
		}
	}
	require.NotEqual(t, -1, fIdx)
	require.Equal(t, 1, out.Bonds.Degree(fIdx))
	cOfF := out.Bonds.Neighbors(fIdx)[0]
	require.Equal(t, "C", out.Atoms[cOfF].Species)
	require.Equal(t, 3, out.Bonds.Degree(cOfF), "two ring bonds plus the C-F bond")
}

// Deleted parent atoms must not survive: replacing every H location
// with nothing leaves the bare ring.
func TestEngine_NullReplacement(t *testing.T) {
	parent := testmol.Benzene("benzene", testmol.Center)
	query := testmol.H("h")
	replacement := testmol.Empty("empty")

	s := runSearch(t, query, parent)
	configs, err := replace.Resolve(s)
	require.NoError(t, err)
	require.Len(t, configs, 6)

	out, warnings, err := replace.Engine(s, replacement, configs)
	require.NoError(t, err)
	require.Equal(t, 6, out.NumAtoms())
	require.Equal(t, map[string]int{"C": 6}, testmol.SpeciesCount(out))
	require.Equal(t, 6, out.Bonds.EdgeCount(), "only the ring bonds remain")
	require.Contains(t, kinds(warnings), replace.WarnNullReplacement)
}

// A query with no occurrence returns the parent unchanged plus a
// NoMatch warning.
func TestEngine_NoMatch(t *testing.T) {
	parent := testmol.Benzene("benzene", testmol.Center)
	query := testmol.New("xe", testmol.CubeBox(testmol.CellA),
		crystal.AtomSet{{Species: "Xe", Frac: testmol.Center}}, nil)

	s := runSearch(t, query, parent)
	require.Zero(t, s.NbIsomorphisms())

	configs, err := replace.Resolve(s)
	require.NoError(t, err)

	out, warnings, err := replace.Engine(s, testmol.CF("cf"), configs)
	require.NoError(t, err)
	require.Equal(t, parent.NumAtoms(), out.NumAtoms())
	require.Equal(t, parent.Bonds.EdgeCount(), out.Bonds.EdgeCount())
	require.Equal(t, testmol.SpeciesCount(parent), testmol.SpeciesCount(out))
	require.Contains(t, kinds(warnings), replace.WarnNoMatch)
}

// Whole-ring functionalization: find the full benzene with one H
// masked, swap in fluorobenzene. The unmasked C6H5 has two symmetric
// embeddings in the replacement, so an ambiguity warning is expected.
func TestEngine_WholeRingFunctionalization(t *testing.T) {
	parent := testmol.Benzene("benzene", testmol.Center)
	query := testmol.Benzene("query", testmol.Center)
	require.NoError(t, query.Mask(6)) // the H at ring position 0
	replacement := testmol.Fluorobenzene("fluorobenzene", testmol.Center)

	s := runSearch(t, query, parent)
	require.Equal(t, 1, s.NbLocations())
	require.Equal(t, 12, s.NbOrientationsAtLocation(0))

	configs, err := replace.Resolve(s)
	require.NoError(t, err)

	out, warnings, err := replace.Engine(s, replacement, configs, replace.WithName("C6H5F"))
	require.NoError(t, err)
	require.Equal(t, 12, out.NumAtoms())
	require.Equal(t, map[string]int{"C": 6, "H": 5, "F": 1}, testmol.SpeciesCount(out))
	require.Equal(t, 12, out.Bonds.EdgeCount())
	require.Contains(t, kinds(warnings), replace.WarnAmbiguousReplacementMap)
}

// A match straddling the unit-cell boundary: alignment happens on the
// PBC-adjusted cloud, and the final crystal carries cross-boundary
// bonds with sane nearest-image distances.
func TestEngine_CrossBoundaryMatch(t *testing.T) {
	// Ring centered on the x=0 face: half the atoms wrap to x near 1.
	parent := testmol.Benzene("straddle", geometry.Vec3{X: 0.0, Y: 0.5, Z: 0.5})
	query := testmol.Ring("ring", testmol.Center)
	replacement := testmol.Ring("ring", testmol.Center)

	s := runSearch(t, query, parent)
	require.Equal(t, 1, s.NbLocations())

	configs, err := replace.Resolve(s)
	require.NoError(t, err)

	out, _, err := replace.Engine(s, replacement, configs)
	require.NoError(t, err)
	require.Equal(t, 12, out.NumAtoms())
	require.Equal(t, 12, out.Bonds.EdgeCount())

	crossed := 0
	for _, e := range out.Bonds.Edges() {
		d := e.Props.Distance
		closeToCC := d > testmol.RingCC-1e-6 && d < testmol.RingCC+1e-6
		closeToCH := d > testmol.BondCH-1e-6 && d < testmol.BondCH+1e-6
		require.True(t, closeToCC || closeToCH, "bond length %v is neither C-C nor C-H", d)
		if e.Props.CrossBoundary {
			crossed++
		}
	}
	require.Positive(t, crossed, "a straddling match must yield cross-boundary bonds")
}

func TestEngine_NilInputs(t *testing.T) {
	s := runSearch(t, testmol.H("h"), testmol.Benzene("benzene", testmol.Center))

	_, _, err := replace.Engine(nil, testmol.CF("cf"), nil)
	require.ErrorIs(t, err, replace.ErrNilSearch)

	_, _, err = replace.Engine(s, nil, nil)
	require.ErrorIs(t, err, replace.ErrNilReplacement)
}

func TestEngine_ConfigOutOfRange(t *testing.T) {
	s := runSearch(t, testmol.H("h"), testmol.Benzene("benzene", testmol.Center))

	_, _, err := replace.Engine(s, testmol.H("h2"), []replace.Config{{Loc: 99, Ori: replace.OriOptimal}})
	require.ErrorIs(t, err, replace.ErrInvalidScheme)

	_, _, err = replace.Engine(s, testmol.H("h2"), []replace.Config{{Loc: 0, Ori: 5}})
	require.ErrorIs(t, err, replace.ErrInvalidScheme)
}

func TestEngineLegacy_ExplicitMask(t *testing.T) {
	parent := testmol.Benzene("benzene", testmol.Center)

	// Unmasked C-H query; the legacy call masks the H by index.
	query := testmol.New("ch", testmol.CubeBox(testmol.CellA), crystal.AtomSet{
		{Species: "C", Frac: testmol.Center},
		{Species: "H", Frac: geometry.Vec3{
			X: testmol.Center.X + testmol.BondCH/testmol.CellA,
			Y: testmol.Center.Y,
			Z: testmol.Center.Z,
		}},
	}, [][2]int{{0, 1}})

	out, _, err := replace.EngineLegacy(parent, query, testmol.CF("cf"), []int{1}, replace.WithLoc(1))
	require.NoError(t, err)
	require.Equal(t, 12, out.NumAtoms())
	require.Equal(t, map[string]int{"C": 6, "H": 5, "F": 1}, testmol.SpeciesCount(out))

	// The caller's query is untouched: its H stays unmasked.
	require.False(t, query.IsMasked(1))
}

package replace_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/molgrove/poremod/internal/testmol"
	"github.com/molgrove/poremod/isomorphism"
	"github.com/molgrove/poremod/replace"
	"github.com/molgrove/poremod/search"
)

// hSearch finds the six single-H locations in benzene: 6 locations,
// one orientation each.
func hSearch(t *testing.T) *search.Search {
	t.Helper()

	query := testmol.H("h")
	parent := testmol.Benzene("benzene", testmol.Center)
	isos, err := isomorphism.FindSubgraphIsomorphisms(query.Bonds, parent.Bonds, isomorphism.Options{})
	require.NoError(t, err)

	s := search.Build(query, parent, isos, false)
	require.Equal(t, 6, s.NbLocations())

	return s
}

// ringSearch finds the C6 ring in benzene: 1 location, 12 orientations.
func ringSearch(t *testing.T) *search.Search {
	t.Helper()

	query := testmol.Ring("ring", testmol.Center)
	parent := testmol.Benzene("benzene", testmol.Center)
	isos, err := isomorphism.FindSubgraphIsomorphisms(query.Bonds, parent.Bonds, isomorphism.Options{})
	require.NoError(t, err)

	s := search.Build(query, parent, isos, false)
	require.Equal(t, 1, s.NbLocations())
	require.Equal(t, 12, s.NbOrientationsAtLocation(0))

	return s
}

func TestResolve_DefaultScheme(t *testing.T) {
	configs, err := replace.Resolve(hSearch(t))
	require.NoError(t, err)
	require.Len(t, configs, 6)
	for i, c := range configs {
		require.Equal(t, i, c.Loc)
		require.Equal(t, replace.OriOptimal, c.Ori)
	}
}

func TestResolve_RandomIsSeedReproducible(t *testing.T) {
	s := ringSearch(t)

	first, err := replace.Resolve(s, replace.WithRandom(), replace.WithSeed(42))
	require.NoError(t, err)
	second, err := replace.Resolve(s, replace.WithRandom(), replace.WithSeed(42))
	require.NoError(t, err)
	require.Equal(t, first, second)

	require.Len(t, first, 1)
	require.GreaterOrEqual(t, first[0].Ori, 0)
	require.Less(t, first[0].Ori, 12)
}

func TestResolve_NbLoc(t *testing.T) {
	configs, err := replace.Resolve(hSearch(t), replace.WithNbLoc(3), replace.WithSeed(7))
	require.NoError(t, err)
	require.Len(t, configs, 3)

	seen := make(map[int]struct{})
	for _, c := range configs {
		_, dup := seen[c.Loc]
		require.False(t, dup, "sampled locations are distinct")
		seen[c.Loc] = struct{}{}
		require.Equal(t, replace.OriOptimal, c.Ori)
	}
}

func TestResolve_NbLocZero(t *testing.T) {
	configs, err := replace.Resolve(hSearch(t), replace.WithNbLoc(0))
	require.NoError(t, err)
	require.Empty(t, configs)
}

func TestResolve_ExplicitLoc(t *testing.T) {
	configs, err := replace.Resolve(hSearch(t), replace.WithLoc(2, 5))
	require.NoError(t, err)
	require.Equal(t, []replace.Config{
		{Loc: 1, Ori: replace.OriOptimal},
		{Loc: 4, Ori: replace.OriOptimal},
	}, configs)
}

func TestResolve_ExplicitLocOri(t *testing.T) {
	configs, err := replace.Resolve(ringSearch(t), replace.WithLoc(1, 1), replace.WithOri(3, 0))
	require.NoError(t, err)
	require.Equal(t, []replace.Config{
		{Loc: 0, Ori: 2},
		{Loc: 0, Ori: replace.OriOptimal},
	}, configs)
}

func TestResolve_InvalidSchemes(t *testing.T) {
	s := hSearch(t)

	cases := []struct {
		name string
		opts []replace.SchemeOption
	}{
		{"ori without loc", []replace.SchemeOption{replace.WithOri(1)}},
		{"length mismatch", []replace.SchemeOption{replace.WithLoc(1, 2), replace.WithOri(1)}},
		{"nb_loc with loc", []replace.SchemeOption{replace.WithNbLoc(2), replace.WithLoc(1)}},
		{"nb_loc too large", []replace.SchemeOption{replace.WithNbLoc(7)}},
		{"loc out of range", []replace.SchemeOption{replace.WithLoc(0)}},
		{"loc beyond count", []replace.SchemeOption{replace.WithLoc(9)}},
		{"duplicate loc", []replace.SchemeOption{replace.WithLoc(3, 3)}},
		{"duplicate pair", []replace.SchemeOption{replace.WithLoc(1, 1), replace.WithOri(1, 1)}},
		{"ori out of range", []replace.SchemeOption{replace.WithLoc(1), replace.WithOri(2)}},
		{"random with ori", []replace.SchemeOption{replace.WithRandom(), replace.WithLoc(1), replace.WithOri(1)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := replace.Resolve(s, tc.opts...)
			require.ErrorIs(t, err, replace.ErrInvalidScheme)
		})
	}
}

func TestResolve_NilSearch(t *testing.T) {
	_, err := replace.Resolve(nil)
	require.ErrorIs(t, err, replace.ErrNilSearch)
}

func TestResolve_EmptySearch(t *testing.T) {
	s := search.Build(testmol.H("h"), testmol.Benzene("benzene", testmol.Center), nil, false)
	configs, err := replace.Resolve(s)
	require.NoError(t, err)
	require.Empty(t, configs)
}

package search

import (
	"sort"
	"strconv"
	"strings"

	"github.com/molgrove/poremod/crystal"
)

// Location is one canonical parent vertex set and every distinct
// isomorphism (orientation) that maps the query onto it.
type Location struct {
	// Vertices is the sorted, canonical parent vertex set.
	Vertices []int
	// Orientations holds each distinct injective map query index ->
	// parent index whose sorted image equals Vertices.
	Orientations [][]int
}

// Search is the immutable result of a substructure search: the
// original query and parent, and every location found, in
// deterministic order (lexicographic on sorted vertex sets).
type Search struct {
	Query     *crystal.Crystal
	Parent    *crystal.Crystal
	Exact     bool
	Locations []Location
}

// Build groups a flat list of isomorphisms (as produced by
// isomorphism.FindSubgraphIsomorphisms) by canonical sorted image.
//
// Complexity: O(k log k) where k is the number of isomorphisms.
func Build(query, parent *crystal.Crystal, isos [][]int, exact bool) *Search {
	byKey := make(map[string]*Location)

	for _, iso := range isos {
		vertices := append([]int(nil), iso...)
		sort.Ints(vertices)
		key := locationKey(vertices)

		loc, ok := byKey[key]
		if !ok {
			loc = &Location{Vertices: vertices}
			byKey[key] = loc
		}
		loc.Orientations = append(loc.Orientations, append([]int(nil), iso...))
	}

	locations := make([]Location, 0, len(byKey))
	for _, loc := range byKey {
		locations = append(locations, *loc)
	}
	sort.Slice(locations, func(a, b int) bool {
		return lessVertexSet(locations[a].Vertices, locations[b].Vertices)
	})

	return &Search{Query: query, Parent: parent, Exact: exact, Locations: locations}
}

// lessVertexSet orders sorted vertex sets lexicographically on their
// numeric elements.
func lessVertexSet(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}

func locationKey(sortedVertices []int) string {
	parts := make([]string, len(sortedVertices))
	for i, v := range sortedVertices {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ",")
}

// NbIsomorphisms returns the total number of isomorphisms across all locations.
func (s *Search) NbIsomorphisms() int {
	n := 0
	for _, l := range s.Locations {
		n += len(l.Orientations)
	}

	return n
}

// NbLocations returns the number of distinct locations.
func (s *Search) NbLocations() int {
	return len(s.Locations)
}

// NbOrientationsAtLocation returns the number of distinct orientations
// at location index k.
func (s *Search) NbOrientationsAtLocation(k int) int {
	return len(s.Locations[k].Orientations)
}

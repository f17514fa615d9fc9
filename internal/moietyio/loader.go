package moietyio

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/molgrove/poremod/crystal"
	"github.com/molgrove/poremod/geometry"
	"github.com/molgrove/poremod/graph"
)

// DefaultTag is the sentinel character marking an R-group species in a
// moiety file.
const DefaultTag = '!'

// Loader reads moiety files from a root directory. Both the root and
// the sentinel character are explicit state here rather than
// process-wide globals; construct one Loader at library setup and
// never mutate it afterward.
type Loader struct {
	Root   string
	Tag    byte
	Logger zerolog.Logger
}

// NewLoader returns a Loader rooted at dir with the default sentinel
// and a discarding logger.
func NewLoader(dir string) *Loader {
	return &Loader{Root: dir, Tag: DefaultTag, Logger: zerolog.Nop()}
}

// Load reads the named moiety file (relative to the loader root, with
// or without the .moiety extension) into a Crystal. Masked atoms are
// moved to the end of the atom order, bonds remapped accordingly, and
// bond distances computed under the file's box.
func (l *Loader) Load(name string) (*crystal.Crystal, error) {
	path := filepath.Join(l.Root, name)
	if filepath.Ext(path) == "" {
		path += ".moiety"
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "moietyio: open %q", path)
	}
	defer f.Close()

	c, err := l.parse(bufio.NewScanner(f), name)

	return c, errors.Wrapf(err, "moietyio: parse %q", path)
}

func (l *Loader) parse(sc *bufio.Scanner, name string) (*crystal.Crystal, error) {
	moietyName, err := nextLine(sc)
	if err != nil {
		return nil, errors.Wrap(err, "name line")
	}
	if moietyName == "" {
		moietyName = name
	}

	var rows [3][3]float64
	for r := 0; r < 3; r++ {
		fields, err := nextFields(sc, 3)
		if err != nil {
			return nil, errors.Wrapf(err, "box row %d", r+1)
		}
		for c := 0; c < 3; c++ {
			rows[r][c], err = strconv.ParseFloat(fields[c], 64)
			if err != nil {
				return nil, errors.Wrapf(err, "box row %d", r+1)
			}
		}
	}
	box, err := geometry.NewBox(rows)
	if err != nil {
		return nil, err
	}

	atoms, err := l.parseAtoms(sc)
	if err != nil {
		return nil, err
	}
	bondPairs, err := parseBonds(sc, len(atoms))
	if err != nil {
		return nil, err
	}

	atoms, remap := maskedLast(atoms)

	bonds := graph.NewGraph(atoms.Labels())
	for _, b := range bondPairs {
		u, v := remap[b[0]], remap[b[1]]
		_, pbc, cross, err := crystal.BondDistance(box, atoms[u].Frac, atoms[v].Frac)
		if err != nil {
			return nil, err
		}
		if err := bonds.AddEdge(u, v, graph.EdgeProps{Distance: pbc, CrossBoundary: cross}); err != nil {
			return nil, errors.Wrapf(err, "bond %d-%d", b[0]+1, b[1]+1)
		}
	}

	if comps := crystal.ConnectedComponents(bonds); len(comps) > 1 && len(atoms) > 1 {
		l.Logger.Warn().
			Str("moiety", moietyName).
			Int("components", len(comps)).
			Msg("moiety bond graph is disconnected")
	}

	return crystal.New(moietyName, box, atoms, bonds, nil)
}

func (l *Loader) parseAtoms(sc *bufio.Scanner) (crystal.AtomSet, error) {
	n, err := nextInt(sc)
	if err != nil {
		return nil, errors.Wrap(err, "atom count")
	}

	atoms := make(crystal.AtomSet, 0, n)
	for i := 0; i < n; i++ {
		fields, err := nextFields(sc, 4)
		if err != nil {
			return nil, errors.Wrapf(err, "atom %d", i+1)
		}

		species := fields[0]
		masked := false
		if strings.HasSuffix(species, string(l.Tag)) {
			masked = true
			species = strings.TrimSuffix(species, string(l.Tag))
		}
		if species == "" {
			return nil, errors.Errorf("atom %d: empty species symbol", i+1)
		}

		var frac geometry.Vec3
		for axis, dst := range []*float64{&frac.X, &frac.Y, &frac.Z} {
			if *dst, err = strconv.ParseFloat(fields[axis+1], 64); err != nil {
				return nil, errors.Wrapf(err, "atom %d", i+1)
			}
		}

		atoms = append(atoms, crystal.Atom{Species: species, Masked: masked, Frac: frac})
	}

	return atoms, nil
}

func parseBonds(sc *bufio.Scanner, nAtoms int) ([][2]int, error) {
	m, err := nextInt(sc)
	if err != nil {
		return nil, errors.Wrap(err, "bond count")
	}

	out := make([][2]int, 0, m)
	for i := 0; i < m; i++ {
		fields, err := nextFields(sc, 2)
		if err != nil {
			return nil, errors.Wrapf(err, "bond %d", i+1)
		}
		var uv [2]int
		for j := 0; j < 2; j++ {
			idx, err := strconv.Atoi(fields[j])
			if err != nil {
				return nil, errors.Wrapf(err, "bond %d", i+1)
			}
			if idx < 1 || idx > nAtoms {
				return nil, errors.Errorf("bond %d: atom index %d outside [1, %d]", i+1, idx, nAtoms)
			}
			uv[j] = idx - 1
		}
		out = append(out, uv)
	}

	return out, nil
}

// maskedLast stably reorders atoms so every unmasked atom precedes
// every masked one, returning the old-index to new-index map.
func maskedLast(atoms crystal.AtomSet) (crystal.AtomSet, []int) {
	out := make(crystal.AtomSet, 0, len(atoms))
	remap := make([]int, len(atoms))
	for i, a := range atoms {
		if !a.Masked {
			remap[i] = len(out)
			out = append(out, a)
		}
	}
	for i, a := range atoms {
		if a.Masked {
			remap[i] = len(out)
			out = append(out, a)
		}
	}

	return out, remap
}

func nextLine(sc *bufio.Scanner) (string, error) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			return line, nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", err
	}

	return "", fmt.Errorf("unexpected end of file")
}

func nextFields(sc *bufio.Scanner, want int) ([]string, error) {
	line, err := nextLine(sc)
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(line)
	if len(fields) != want {
		return nil, fmt.Errorf("want %d fields, got %d in %q", want, len(fields), line)
	}

	return fields, nil
}

func nextInt(sc *bufio.Scanner) (int, error) {
	line, err := nextLine(sc)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative count %d", n)
	}

	return n, nil
}

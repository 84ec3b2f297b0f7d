// Package libpour searches the state space of the container pouring puzzle.
//
// A puzzle is a set of containers holding quantities of colors, a target multiset of
// (quantity, color) containers, and a table of how two colors combine.  A Graph grows a tree of
// Nodes on demand, one pour per edge, and the four drivers (uniform cost search, A*, A* with
// duplicate elimination, IDA*) look for the cheapest pour sequences that reach the target.
package libpour

import (
	"strings"

	"github.com/2x3systems/go2pour/go2pour"
)

// SolveText parses the given puzzle text and runs SolvePuzzle on it, returning the complete text output.
func SolveText(name, text string, opts BatchOpts) (string, []*go2pour.Report, error) {
	pz, err := ParsePuzzle(name, text)
	if err != nil {
		return "", nil, err
	}

	out := strings.Builder{}
	out.Grow(4096)
	reports, err := SolvePuzzle(&out, pz, opts)
	return out.String(), reports, err
}

// MinSteps returns the length of the cheapest solution of the given puzzle found by duplicate-eliminating A*
// with the first admissible heuristic, or -1 if there is none within the given options.
func (pz *Puzzle) MinSteps(opts go2pour.SearchOpts) (int, error) {
	g, err := pz.NewGraph()
	if err != nil {
		return -1, err
	}
	opts.NumSolutions = 1
	opts.Heuristic = go2pour.HeuristicAdmissible1
	rep, err := g.Search(go2pour.AlgoAStarOpt, opts)
	if err != nil {
		return -1, err
	}
	if len(rep.Solutions) == 0 {
		return -1, nil
	}
	return rep.Solutions[0].NumSteps(), nil
}

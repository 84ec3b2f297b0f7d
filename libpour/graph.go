package libpour

import (
	"github.com/2x3systems/go2pour/go2pour"
	"github.com/pkg/errors"
)

// Graph is the implicit state graph of a puzzle instance: the initial state, the target state
// and the color algebra that defines how pours combine colors.
//
// A Graph is read-only once built and is shared by every node and every search run against it.
type Graph struct {
	Palette *Palette
	Initial go2pour.State
	Final   go2pour.State

	finalTally  map[go2pour.ContainerKey]int
	finalColors []go2pour.ColorCode
	finalQty    int
}

// NewGraph validates the given states and returns a Graph ready to be searched.
//
// Capacities of the final state are ignored (only quantity and color of a target container matter).
func NewGraph(pal *Palette, initial, final go2pour.State) (*Graph, error) {
	if err := initial.Validate(); err != nil {
		return nil, err
	}
	if len(final) == 0 {
		return nil, go2pour.ErrNoTarget
	}
	for _, S := range []go2pour.State{initial, final} {
		for i, ci := range S {
			if _, err := pal.Name(ci.Color); err != nil {
				return nil, errors.Wrapf(err, "container %d", i)
			}
		}
	}

	g := &Graph{
		Palette:     pal,
		Initial:     initial.Clone(),
		Final:       final.Clone(),
		finalTally:  final.Tally(),
		finalColors: final.Colors(),
		finalQty:    final.TotalOccupied(),
	}
	return g, nil
}

// FinalQty is the total quantity required by the target state.
func (g *Graph) FinalQty() int {
	return g.finalQty
}

// matchCount returns the size of the multiset intersection of S and the target state,
// where containers are compared by (occupied, color).
func (g *Graph) matchCount(S go2pour.State) int {
	tally := S.Tally()
	matched := 0
	for key, want := range g.finalTally {
		matched += min(want, tally[key])
	}
	return matched
}

// IsFinal returns true if S contains every target container (as a multiset).
func (g *Graph) IsFinal(S go2pour.State) bool {
	return g.matchCount(S) == len(g.Final)
}

// missingColors returns the number of target colors not present anywhere in S.
func (g *Graph) missingColors(S go2pour.State) int {
	missing := 0
	for _, ci := range g.finalColors {
		if !S.HasColor(ci) {
			missing++
		}
	}
	return missing
}

// colorClosure walks, breadth-first, from the target colors absent in S down through their
// constituents.  It returns the number of decompositions performed and false as soon as a
// required color is found that no combination produces.
func (g *Graph) colorClosure(S go2pour.State) (steps int, reachable bool) {
	var queueBuf [16]go2pour.ColorCode
	queue := queueBuf[:0]
	for _, ci := range g.finalColors {
		if !S.HasColor(ci) {
			queue = append(queue, ci)
		}
	}
	if len(queue) == 0 {
		return 0, true
	}

	seen := append([]go2pour.ColorCode(nil), queue...)
	for head := 0; head < len(queue); head++ {
		parts, ok := g.Palette.Decompose(queue[head])
		if !ok {
			return steps, false
		}
		steps++
		for _, pj := range parts {
			if S.HasColor(pj) || containsColor(seen, pj) {
				continue
			}
			seen = append(seen, pj)
			queue = append(queue, pj)
		}
	}
	return steps, true
}

// isPartOfSolution returns false if a node provably cannot lead to the target:
// it repeats an ancestor's state, it lacks the total quantity required, or a target color
// can't be produced from the colors at hand.
func (g *Graph) isPartOfSolution(n *Node) bool {
	if n.usableQty < g.finalQty || n.CyclesBack() {
		return false
	}
	_, reachable := g.colorClosure(n.state)
	return reachable
}

func containsColor(colors []go2pour.ColorCode, color go2pour.ColorCode) bool {
	for _, ci := range colors {
		if ci == color {
			return true
		}
	}
	return false
}

package libpour

import (
	"github.com/2x3systems/go2pour/go2pour"
)

// Infinity is the cost-to-go returned for a node from which a target color can never be produced.
const Infinity = 0x40000

// heuristicFunc estimates the number of pours still needed from n to a target match.
type heuristicFunc func(g *Graph, n *Node) int

var heuristicFuncs = [go2pour.NumHeuristics]heuristicFunc{
	go2pour.HeuristicTrivial:      trivialHeuristic,
	go2pour.HeuristicInadmissible: inadmissibleHeuristic,
	go2pour.HeuristicAdmissible1:  admissibleHeuristic1,
	go2pour.HeuristicAdmissible2:  admissibleHeuristic2,
}

// EstimateCost returns the cost-to-go of n under the given heuristic.
func (g *Graph) EstimateCost(h go2pour.Heuristic, n *Node) int {
	return heuristicFuncs[h](g, n)
}

// 0 if n matches the target, else 1
func trivialHeuristic(g *Graph, n *Node) int {
	if g.IsFinal(n.state) {
		return 0
	}
	return 1
}

// Number of target containers not exactly matched by n.  This can overestimate since a single
// pour may complete several target containers.
func inadmissibleHeuristic(g *Graph, n *Node) int {
	return len(g.Final) - g.matchCount(n.state)
}

// Number of target colors missing from n.  Producing a missing color takes at least one pour.
func admissibleHeuristic1(g *Graph, n *Node) int {
	return g.missingColors(n.state)
}

// Number of decompositions needed to reach every missing target color from the colors at hand,
// or Infinity if some target color can't be produced.
func admissibleHeuristic2(g *Graph, n *Node) int {
	steps, reachable := g.colorClosure(n.state)
	if !reachable {
		return Infinity
	}
	return steps
}

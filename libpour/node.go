package libpour

import (
	"github.com/2x3systems/go2pour/go2pour"
)

// Node is a state reached by one pour from its parent.  The root carries the initial state.
//
// All derived values (state, hash, usable quantity) are computed once at construction and never change.
// The estimated cost is assigned by the search run that creates the node.
type Node struct {
	graph        *Graph
	Parent       *Node
	From         int // container poured from
	To           int // container poured into
	CostFromRoot int

	state     go2pour.State
	stateHash uint64
	usableQty int
	estimate  int

	openKey openKey // valid while in an openList
}

func newRootNode(g *Graph) *Node {
	n := &Node{
		graph: g,
		state: g.Initial,
	}
	n.onStateChanged()
	return n
}

func newChildNode(parent *Node, from, to int) *Node {
	n := &Node{
		graph:        parent.graph,
		Parent:       parent,
		From:         from,
		To:           to,
		CostFromRoot: parent.CostFromRoot + 1,
		state:        pour(parent.graph.Palette, parent.state, from, to),
	}
	n.onStateChanged()
	return n
}

func (n *Node) onStateChanged() {
	n.stateHash = n.state.Hash()
	n.usableQty = n.state.UsableQty()
}

// pour returns a copy of S after pouring as much as fits from container i into container j.
func pour(pal *Palette, S go2pour.State, i, j int) go2pour.State {
	next := S.Clone()
	src, dst := &next[i], &next[j]

	transferred := min(dst.FreeSpace(), src.Occupied)
	src.Occupied -= transferred
	dst.Occupied += transferred
	dst.Color = pal.Combine(src.Color, dst.Color)
	if src.Occupied == 0 {
		src.Color = go2pour.ColorNone
	}
	return next
}

// State returns the container configuration of this node.  Callers must not modify it.
func (n *Node) State() go2pour.State {
	return n.state
}

func (n *Node) StateHash() uint64 {
	return n.stateHash
}

func (n *Node) UsableQty() int {
	return n.usableQty
}

// EstimatedCost is CostFromRoot plus the heuristic of the run that created this node.
func (n *Node) EstimatedCost() int {
	return n.estimate
}

// IsRoot returns true if this node has no parent.
func (n *Node) IsRoot() bool {
	return n.Parent == nil
}

// SameState returns true if n and other hold equal states.
func (n *Node) SameState(other *Node) bool {
	return n.stateHash == other.stateHash && n.state.Equal(other.state)
}

// CyclesBack returns true if any ancestor of n holds the same state as n.
func (n *Node) CyclesBack() bool {
	for ancestor := n.Parent; ancestor != nil; ancestor = ancestor.Parent {
		if n.SameState(ancestor) {
			return true
		}
	}
	return false
}

// Path returns the nodes from the root up to and including n.
func (n *Node) Path() []*Node {
	path := make([]*Node, n.CostFromRoot+1)
	for ni := n; ni != nil; ni = ni.Parent {
		path[ni.CostFromRoot] = ni
	}
	return path
}

package libpour

import (
	"github.com/2x3systems/go2pour/go2pour"
	"github.com/emirpasic/gods/trees/redblacktree"
)

// openKey orders the open list: lowest priority first, then first pushed first.
type openKey struct {
	priority int
	seq      uint64
}

func openKeyComparator(A, B interface{}) int {
	a := A.(openKey)
	b := B.(openKey)
	switch {
	case a.priority < b.priority:
		return -1
	case a.priority > b.priority:
		return 1
	case a.seq < b.seq:
		return -1
	case a.seq > b.seq:
		return 1
	}
	return 0
}

// openList is the frontier of a best-first search.
//
// If indexed, the open list also maps state hashes to the nodes that hold them so that
// a duplicate state can be found without a scan.
type openList struct {
	tree    *redblacktree.Tree
	nextSeq uint64
	byHash  map[uint64][]*Node
}

func newOpenList(indexed bool) *openList {
	open := &openList{
		tree: redblacktree.NewWith(openKeyComparator),
	}
	if indexed {
		open.byHash = make(map[uint64][]*Node)
	}
	return open
}

func (open *openList) Len() int {
	return open.tree.Size()
}

// Push adds n to the open list with the given priority.
func (open *openList) Push(n *Node, priority int) {
	open.nextSeq++
	n.openKey = openKey{
		priority: priority,
		seq:      open.nextSeq,
	}
	open.tree.Put(n.openKey, n)
	if open.byHash != nil {
		open.byHash[n.stateHash] = append(open.byHash[n.stateHash], n)
	}
}

// Pop removes and returns the node with the lowest priority (or nil if empty).
func (open *openList) Pop() *Node {
	left := open.tree.Left()
	if left == nil {
		return nil
	}
	n := left.Value.(*Node)
	open.Remove(n)
	return n
}

// Remove drops n from the open list.
func (open *openList) Remove(n *Node) {
	open.tree.Remove(n.openKey)
	if open.byHash == nil {
		return
	}
	peers := open.byHash[n.stateHash]
	for i, pi := range peers {
		if pi == n {
			peers = append(peers[:i], peers[i+1:]...)
			break
		}
	}
	if len(peers) == 0 {
		delete(open.byHash, n.stateHash)
	} else {
		open.byHash[n.stateHash] = peers
	}
}

// Find returns the node in the open list holding a state equal to S (or nil).
// Only available for an indexed open list.
func (open *openList) Find(S go2pour.State, stateHash uint64) *Node {
	for _, ni := range open.byHash[stateHash] {
		if ni.state.Equal(S) {
			return ni
		}
	}
	return nil
}

// forEach calls fn for each node in priority order.
func (open *openList) forEach(fn func(n *Node)) {
	itr := open.tree.Iterator()
	for itr.Next() {
		fn(itr.Value().(*Node))
	}
}

package libpour

import (
	"github.com/2x3systems/go2pour/go2pour"
)

// bestFirst is uniform cost search (no heuristic) or A* (with a heuristic).
// The same state may be expanded any number of times through different nodes.
func (run *searchRun) bestFirst() go2pour.Outcome {
	open := newOpenList(false)
	open.Push(run.root, run.priority(run.root))

	for open.Len() > 0 {
		n := open.Pop()

		if run.timedOut() {
			return go2pour.OutcomeTimedOut
		}

		if run.graph.IsFinal(n.state) {
			if run.recordSolution(n) {
				return go2pour.OutcomeSolved
			}
		}

		for _, si := range run.expand(n) {
			open.Push(si, run.priority(si))
		}
		run.noteResident(int64(open.Len()))

		if run.onExpand != nil {
			run.onExpand(open)
		}
	}

	return go2pour.OutcomeExhausted
}

// bestFirstDropDupes is A* that keeps each state at most once in open and at most once in closed,
// always retaining the cheaper of two nodes that hold the same state.
func (run *searchRun) bestFirstDropDupes() go2pour.Outcome {
	open := newOpenList(true)
	closed := NewClosedSet(run.opts.LSMClosedSet)
	defer closed.Close()

	open.Push(run.root, run.root.estimate)

	for open.Len() > 0 {
		n := open.Pop()

		if run.timedOut() {
			return go2pour.OutcomeTimedOut
		}

		if run.graph.IsFinal(n.state) {
			if run.recordSolution(n) {
				return go2pour.OutcomeSolved
			}
		}

		for _, si := range run.expand(n) {
			if run.admit(si, open, closed) {
				open.Push(si, si.estimate)
			}
		}
		closed.Put(n.state, n.estimate)
		run.noteResident(int64(open.Len() + closed.Len()))

		if run.onExpand != nil {
			run.onExpand(open)
		}
	}

	return go2pour.OutcomeExhausted
}

// admit decides if a freshly generated node enters the open list.
//
// A node holding the same state as a node in open replaces it only if strictly cheaper.
// Otherwise, a node holding the same state as a closed entry reopens that state only if strictly cheaper.
func (run *searchRun) admit(n *Node, open *openList, closed go2pour.ClosedSet) bool {
	if rival := open.Find(n.state, n.stateHash); rival != nil {
		if n.estimate < rival.estimate {
			open.Remove(rival)
			return true
		}
		return false
	}

	if cost, found := closed.Cost(n.state); found {
		if n.estimate < cost {
			closed.Remove(n.state)
			return true
		}
		return false
	}

	return true
}

// Bound signals returned by boundedDescent; any positive value is the smallest estimated cost
// that exceeded the current limit.
const (
	boundDone     = 0
	boundDeadEnd  = -1
	boundTimedOut = -2
)

// iterativeDeepening is IDA*: repeated depth-first descents from the root, each bounded by an
// estimated cost limit that grows to the smallest estimate that exceeded the previous limit.
func (run *searchRun) iterativeDeepening() go2pour.Outcome {
	limit := run.root.estimate

	for {
		bound := run.boundedDescent(run.root, limit, 1)
		switch bound {
		case boundDone:
			return go2pour.OutcomeSolved
		case boundTimedOut:
			return go2pour.OutcomeTimedOut
		case boundDeadEnd:
			return go2pour.OutcomeExhausted
		}
		limit = bound
	}
}

// boundedDescent explores the subtree of n while estimated costs stay within limit.
// resident is the number of nodes held along the current descent path, including n.
func (run *searchRun) boundedDescent(n *Node, limit int, resident int64) int {
	if run.timedOut() {
		return boundTimedOut
	}

	if n.estimate > limit {
		return n.estimate
	}

	if n.estimate == limit && run.graph.IsFinal(n.state) {
		if run.recordSolution(n) {
			return boundDone
		}
	}

	successors := run.expand(n)
	resident += int64(len(successors))
	run.noteResident(resident)

	minBound := boundDeadEnd
	for _, si := range successors {
		bound := run.boundedDescent(si, limit, resident)
		switch {
		case bound == boundDone || bound == boundTimedOut:
			return bound
		case bound == boundDeadEnd:
			continue
		case minBound == boundDeadEnd || bound < minBound:
			minBound = bound
		}
	}
	return minBound
}

package libpour

// generateSuccessors returns every legal single pour from n that pruning does not reject,
// in (from, to) order with from as the outer loop.  This order decides tie-breaks in every driver.
func (g *Graph) generateSuccessors(n *Node) []*Node {
	var successors []*Node

	for i, ci := range n.state {
		if ci.IsEmpty() {
			continue
		}
		for j, cj := range n.state {
			if i == j || cj.IsFull() {
				continue
			}

			child := newChildNode(n, i, j)
			if !g.isPartOfSolution(child) {
				continue
			}
			successors = append(successors, child)
		}
	}

	return successors
}

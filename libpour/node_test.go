package libpour

import (
	"errors"
	"testing"

	"github.com/2x3systems/go2pour/go2pour"
)

const scenarioB = `
red blue purple
stare_initiala
2 2 red
1 1 blue
3 0
stare_finala
3 purple
`

const mixingPuzzle = `
# two secondary colors out of three primaries
red blue purple
blue yellow green
red yellow orange
initial_state
5 3 red
4 3 blue
4 2 yellow
3 0
final_state
3 purple
2 green
`

func mustGraph(t *testing.T, text string) *Graph {
	t.Helper()
	pz, err := ParsePuzzle(t.Name(), text)
	if err != nil {
		t.Fatal(err)
	}
	g, err := pz.NewGraph()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestPourConservesVolume(t *testing.T) {
	g := mustGraph(t, mixingPuzzle)
	S := g.Initial

	for i := range S {
		for j := range S {
			if i == j {
				continue
			}
			next := pour(g.Palette, S, i, j)

			if next[i].Occupied+next[j].Occupied != S[i].Occupied+S[j].Occupied {
				t.Fatalf("pour %d->%d did not conserve volume", i, j)
			}
			for k := range S {
				if k != i && k != j && next[k] != S[k] {
					t.Fatalf("pour %d->%d changed container %d", i, j, k)
				}
			}
			if next[j].Occupied > next[j].Capacity {
				t.Fatalf("pour %d->%d overflowed", i, j)
			}
			if next[i].Occupied == 0 && next[i].Color != go2pour.ColorNone {
				t.Fatalf("pour %d->%d left a color in an empty container", i, j)
			}
		}
	}

	// the parent state is never modified
	if !S.Equal(mustGraph(t, mixingPuzzle).Initial) {
		t.Fatal("pour modified its source state")
	}
}

func TestPourMixesColors(t *testing.T) {
	g := mustGraph(t, scenarioB)
	red, _ := g.Palette.Code("red")
	purple, _ := g.Palette.Code("purple")

	S := pour(g.Palette, g.Initial, 0, 2)
	if S[0].Occupied != 0 || S[0].Color != go2pour.ColorNone || S[2].Occupied != 2 || S[2].Color != red {
		t.Fatalf("unexpected state after 0->2: %v", S)
	}
	S = pour(g.Palette, S, 1, 2)
	if S[2].Occupied != 3 || S[2].Color != purple {
		t.Fatalf("unexpected state after 1->2: %v", S)
	}
	if !g.IsFinal(S) {
		t.Fatal("expected target match")
	}
}

func TestNodeCostAndCycles(t *testing.T) {
	g := mustGraph(t, mixingPuzzle)
	root := newRootNode(g)

	n := root
	for depth := 1; depth <= 4; depth++ {
		successors := g.generateSuccessors(n)
		if len(successors) == 0 {
			t.Fatalf("no successors at depth %d", depth)
		}
		n = successors[len(successors)-1]

		ancestors := 0
		for ai := n.Parent; ai != nil; ai = ai.Parent {
			ancestors++
		}
		if n.CostFromRoot != depth || n.CostFromRoot != ancestors {
			t.Fatalf("cost from root %d, expected %d", n.CostFromRoot, ancestors)
		}
		path := n.Path()
		if len(path) != depth+1 || path[0] != root || path[depth] != n {
			t.Fatal("bad path")
		}
	}

	// pouring straight back re-creates the parent's state
	child := newChildNode(root, 0, 3)
	back := newChildNode(child, 3, 0)
	if !back.SameState(root) || !back.CyclesBack() {
		t.Fatal("expected a cycle back to the root")
	}
	for _, si := range g.generateSuccessors(child) {
		if si.SameState(root) {
			t.Fatal("a successor repeats an ancestor's state")
		}
	}
}

func TestSuccessorOrder(t *testing.T) {
	g := mustGraph(t, mixingPuzzle)
	root := newRootNode(g)

	prevFrom, prevTo := -1, -1
	for _, si := range g.generateSuccessors(root) {
		if si.From == si.To {
			t.Fatal("pour into self")
		}
		if si.From < prevFrom || (si.From == prevFrom && si.To <= prevTo) {
			t.Fatalf("successor %d->%d out of order", si.From, si.To)
		}
		prevFrom, prevTo = si.From, si.To
	}

	// container 3 is empty so it is never poured from; nothing is full except container 1
	for _, si := range g.generateSuccessors(root) {
		if si.From == 3 {
			t.Fatal("poured from an empty container")
		}
	}
}

func TestPruning(t *testing.T) {
	pal := NewPalette()
	red := pal.AddColor("red")
	blue := pal.AddColor("blue")
	green := pal.AddColor("green")

	initial := go2pour.State{
		{Capacity: 4, Occupied: 4, Color: red},
		{Capacity: 4, Occupied: 2, Color: blue},
		{Capacity: 4},
	}

	// green is neither present nor producible
	g, err := NewGraph(pal, initial, go2pour.State{{Occupied: 2, Color: green}})
	if err != nil {
		t.Fatal(err)
	}
	if successors := g.generateSuccessors(newRootNode(g)); len(successors) != 0 {
		t.Fatalf("expected every successor to be rejected, got %d", len(successors))
	}

	// mixing red and blue without a rule leaves undefined liquid, which can't supply the 6 units needed
	g, err = NewGraph(pal, initial, go2pour.State{{Occupied: 4, Color: red}, {Occupied: 2, Color: blue}})
	if err != nil {
		t.Fatal(err)
	}
	for _, si := range g.generateSuccessors(newRootNode(g)) {
		if si.usableQty < g.FinalQty() {
			t.Fatal("accepted a node with insufficient usable quantity")
		}
		if si.From == 0 && si.To == 1 {
			t.Fatal("pouring red into blue should have been rejected")
		}
	}
}

func TestHeuristics(t *testing.T) {
	g := mustGraph(t, mixingPuzzle)
	root := newRootNode(g)

	expect := map[go2pour.Heuristic]int{
		go2pour.HeuristicTrivial:      1,
		go2pour.HeuristicInadmissible: 2, // neither target container is matched
		go2pour.HeuristicAdmissible1:  2, // purple and green are missing
		go2pour.HeuristicAdmissible2:  2, // both decompose into colors at hand
	}
	for h, want := range expect {
		if got := g.EstimateCost(h, root); got != want {
			t.Fatalf("%v: expected %d, got %d", h, want, got)
		}
	}

	gB := mustGraph(t, scenarioB)
	goal := newChildNode(newChildNode(newRootNode(gB), 0, 2), 1, 2)
	for _, h := range go2pour.AllHeuristics {
		if got := gB.EstimateCost(h, goal); got != 0 {
			t.Fatalf("%v: expected 0 at a goal, got %d", h, got)
		}
	}

	// an unproducible target color is infinitely far away
	pal := NewPalette()
	red := pal.AddColor("red")
	grey := pal.AddColor("grey")
	gX, err := NewGraph(pal, go2pour.State{{Capacity: 2, Occupied: 2, Color: red}}, go2pour.State{{Occupied: 2, Color: grey}})
	if err != nil {
		t.Fatal(err)
	}
	if got := gX.EstimateCost(go2pour.HeuristicAdmissible2, newRootNode(gX)); got != Infinity {
		t.Fatalf("expected Infinity, got %d", got)
	}
}

// minPours is a brute force breadth-first search for the fewest pours from S to a target match.
func minPours(g *Graph, S go2pour.State, maxDepth int) int {
	seen := map[string]bool{string(S.AppendEncoding(nil)): true}
	frontier := []go2pour.State{S}

	for depth := 0; depth <= maxDepth; depth++ {
		var next []go2pour.State
		for _, Si := range frontier {
			if g.IsFinal(Si) {
				return depth
			}
			for i := range Si {
				for j := range Si {
					if i == j || Si[i].IsEmpty() || Si[j].IsFull() {
						continue
					}
					Sj := pour(g.Palette, Si, i, j)
					key := string(Sj.AppendEncoding(nil))
					if !seen[key] {
						seen[key] = true
						next = append(next, Sj)
					}
				}
			}
		}
		frontier = next
	}
	return -1
}

func TestAdmissibleHeuristicNeverOverestimates(t *testing.T) {
	for _, text := range []string{scenarioB, mixingPuzzle} {
		g := mustGraph(t, text)

		// check the root and every node within two pours of it
		nodes := []*Node{newRootNode(g)}
		for _, n1 := range g.generateSuccessors(nodes[0]) {
			nodes = append(nodes, n1)
			nodes = append(nodes, g.generateSuccessors(n1)...)
		}

		for _, n := range nodes {
			actual := minPours(g, n.state, 8)
			if actual < 0 {
				continue
			}
			if h := g.EstimateCost(go2pour.HeuristicAdmissible1, n); h > actual {
				t.Fatalf("admissible heuristic no. 1 estimated %d but %d pours suffice", h, actual)
			}
		}
	}
}

func TestNewGraphRejectsColoredEmptyContainer(t *testing.T) {
	pal := NewPalette()
	red := pal.AddColor("red")

	_, err := NewGraph(pal,
		go2pour.State{
			{Capacity: 2, Occupied: 2, Color: red},
			{Capacity: 2, Color: red},
		},
		go2pour.State{{Occupied: 2, Color: red}},
	)
	if !errors.Is(err, go2pour.ErrBadContainer) {
		t.Fatalf("expected ErrBadContainer, got %v", err)
	}
}

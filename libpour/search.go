package libpour

import (
	"time"

	"github.com/2x3systems/go2pour/go2pour"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

// searchRun is the state of one search driver invocation.
//
// Each run grows its own node tree from a fresh root, so estimated costs of one heuristic never
// leak into a run using another.
type searchRun struct {
	graph     *Graph
	algo      go2pour.Algorithm
	opts      go2pour.SearchOpts
	heuristic heuristicFunc // nil for uninformed search
	root      *Node
	start     time.Time
	stats     go2pour.RunStats
	remaining int
	report    *go2pour.Report

	// if set, called after each expansion of a best-first run
	onExpand func(open *openList)
}

// Search runs the given driver against g and returns what it found.
//
// Running out of time or of states is reported through Report.Outcome, not as an error.
func (g *Graph) Search(algo go2pour.Algorithm, opts go2pour.SearchOpts) (*go2pour.Report, error) {
	run, err := g.newSearchRun(algo, opts)
	if err != nil {
		return nil, err
	}
	return run.execute(), nil
}

func (g *Graph) newSearchRun(algo go2pour.Algorithm, opts go2pour.SearchOpts) (*searchRun, error) {
	if !algo.IsValid() {
		return nil, errors.Wrapf(go2pour.ErrUnknownAlgorithm, "code %d", algo)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	run := &searchRun{
		graph:     g,
		algo:      algo,
		opts:      opts,
		remaining: opts.NumSolutions,
		report: &go2pour.Report{
			Algorithm: algo,
			Heuristic: opts.Heuristic,
		},
	}
	if algo.IsInformed() {
		run.heuristic = heuristicFuncs[opts.Heuristic]
	}
	return run, nil
}

func (run *searchRun) execute() *go2pour.Report {
	run.start = time.Now()
	run.stats = go2pour.RunStats{
		MaxInMemory: 1,
	}
	run.root = newRootNode(run.graph)
	run.assignEstimate(run.root)

	klog.V(1).Infof("started %s (%s), root estimate %d", run.algo.Label(), run.heuristicLabel(), run.root.estimate)

	var outcome go2pour.Outcome
	switch run.algo {
	case go2pour.AlgoUCS, go2pour.AlgoAStar:
		outcome = run.bestFirst()
	case go2pour.AlgoAStarOpt:
		outcome = run.bestFirstDropDupes()
	case go2pour.AlgoIDAStar:
		outcome = run.iterativeDeepening()
	}

	run.stats.Elapsed = time.Since(run.start)
	run.report.Outcome = outcome
	run.report.Stats = run.stats

	if outcome == go2pour.OutcomeTimedOut {
		klog.Warningf("%s (%s) stopped due to timeout after %v", run.algo.Label(), run.heuristicLabel(), run.opts.Timeout)
	}
	klog.V(1).Infof("finished %s (%s): %v, %d solution(s), generated %s nodes, max %s in memory, %v",
		run.algo.Label(), run.heuristicLabel(), outcome, len(run.report.Solutions),
		humanize.Comma(run.stats.Generated), humanize.Comma(run.stats.MaxInMemory), run.stats.Elapsed)
	return run.report
}

func (run *searchRun) heuristicLabel() string {
	if run.heuristic == nil {
		return "uninformed"
	}
	return run.opts.Heuristic.Label()
}

func (run *searchRun) assignEstimate(n *Node) {
	n.estimate = n.CostFromRoot
	if run.heuristic != nil {
		n.estimate += run.heuristic(run.graph, n)
	}
}

// priority is the open list ordering of n for this run.
func (run *searchRun) priority(n *Node) int {
	if run.heuristic == nil {
		return n.CostFromRoot
	}
	return n.estimate
}

func (run *searchRun) timedOut() bool {
	return run.opts.Timeout > 0 && time.Since(run.start) >= run.opts.Timeout
}

// expand generates the successors of n and assigns their estimated costs.
func (run *searchRun) expand(n *Node) []*Node {
	successors := run.graph.generateSuccessors(n)
	for _, si := range successors {
		run.assignEstimate(si)
	}
	run.stats.Generated += int64(len(successors))
	return successors
}

func (run *searchRun) noteResident(count int64) {
	if run.stats.MaxInMemory < count {
		run.stats.MaxInMemory = count
	}
}

// recordSolution emits the path to n and returns true if the run is done.
func (run *searchRun) recordSolution(n *Node) bool {
	stats := run.stats
	stats.Elapsed = time.Since(run.start)

	sol := &go2pour.Solution{
		Index:   len(run.report.Solutions) + 1,
		Initial: run.root.state,
		Stats:   stats,
	}
	pal := run.graph.Palette
	for _, ni := range n.Path()[1:] {
		dst := ni.state[ni.To]
		sol.Steps = append(sol.Steps, go2pour.Step{
			From:     ni.From,
			To:       ni.To,
			Color:    pal.ColorName(dst.Color),
			Quantity: dst.Occupied,
			State:    ni.state,
		})
	}
	run.report.Solutions = append(run.report.Solutions, sol)
	run.remaining--

	klog.V(2).Infof("%s (%s): solution %d with %d steps", run.algo.Label(), run.heuristicLabel(), sol.Index, sol.NumSteps())

	return run.remaining == 0 || n == run.root
}

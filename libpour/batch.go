package libpour

import (
	"io"
	"time"

	"github.com/2x3systems/go2pour/go2pour"
	"github.com/plan-systems/klog"
)

// BatchOpts specifies which drivers SolvePuzzle runs and how.
type BatchOpts struct {
	NumSolutions int                 // solutions requested from each run
	Timeout      time.Duration       // per run, 0 denotes no limit
	Heuristics   []go2pour.Heuristic // heuristics the informed drivers are run with
	Algorithms   []go2pour.Algorithm // drivers to run; AlgoUCS runs once, the others once per heuristic
	LSMClosedSet bool                // see go2pour.SearchOpts
}

// DefaultBatchOpts runs every driver with every heuristic.
var DefaultBatchOpts = BatchOpts{
	NumSolutions: 1,
	Timeout:      10 * time.Second,
	Heuristics:   go2pour.AllHeuristics,
	Algorithms: []go2pour.Algorithm{
		go2pour.AlgoUCS,
		go2pour.AlgoAStar,
		go2pour.AlgoAStarOpt,
		go2pour.AlgoIDAStar,
	},
}

func (opts *BatchOpts) runs(algo go2pour.Algorithm) bool {
	for _, ai := range opts.Algorithms {
		if ai == algo {
			return true
		}
	}
	return false
}

func (opts *BatchOpts) searchOpts(h go2pour.Heuristic) go2pour.SearchOpts {
	return go2pour.SearchOpts{
		NumSolutions: opts.NumSolutions,
		Timeout:      opts.Timeout,
		Heuristic:    h,
		LSMClosedSet: opts.LSMClosedSet,
	}
}

// SolvePuzzle runs uniform cost search once, then each informed driver with each heuristic,
// writing every report to out.  The reports are also returned in the order they were written.
func SolvePuzzle(out io.Writer, pz *Puzzle, opts BatchOpts) ([]*go2pour.Report, error) {
	g, err := pz.NewGraph()
	if err != nil {
		return nil, err
	}

	klog.V(1).Infof("solving %q: %d containers, %d target containers, %d colors", pz.Name, len(pz.Initial), len(pz.Final), pz.Palette.NumColors())

	var reports []*go2pour.Report

	run := func(algo go2pour.Algorithm, h go2pour.Heuristic) error {
		rep, err := g.Search(algo, opts.searchOpts(h))
		if err != nil {
			return err
		}
		WriteReport(out, rep, pz.Palette)
		reports = append(reports, rep)
		return nil
	}

	if opts.runs(go2pour.AlgoUCS) {
		if err = run(go2pour.AlgoUCS, go2pour.HeuristicTrivial); err != nil {
			return reports, err
		}
	}

	for _, h := range opts.Heuristics {
		WriteHeuristicBanner(out, h)
		for _, algo := range go2pour.InformedAlgorithms {
			if !opts.runs(algo) {
				continue
			}
			if err = run(algo, h); err != nil {
				return reports, err
			}
		}
		io.WriteString(out, puzzleFooter)
	}

	return reports, nil
}

package go2pour

import (
	"time"
)

// ColorCode is a small integer that identifies a color registered with a Palette.
// Codes are issued in first-seen order starting at 1.
type ColorCode int32

const (
	ColorNone      ColorCode = 0  // empty container (no color)
	ColorUndefined ColorCode = -1 // mixture with no combination rule; unusable liquid

	// NoColorName is how ColorNone is rendered
	NoColorName = "-"

	// UndefinedColorName is how ColorUndefined is rendered
	UndefinedColorName = "undefined"
)

// ColorNamer resolves a ColorCode into a printable name.
type ColorNamer interface {
	ColorName(code ColorCode) string
}

// Heuristic selects the cost-to-go estimator used by an informed search run.
type Heuristic int32

const (
	HeuristicTrivial      Heuristic = iota // 0 on a goal state, 1 otherwise
	HeuristicInadmissible                  // number of target containers not yet matched
	HeuristicAdmissible1                   // number of target colors absent from the state
	HeuristicAdmissible2                   // number of decomposition steps needed to reach all target colors

	NumHeuristics = 4
)

var heuristicNames = [NumHeuristics]string{
	"trivial",
	"inadmissible",
	"admissible-1",
	"admissible-2",
}

var heuristicLabels = [NumHeuristics]string{
	"trivial heuristic",
	"inadmissible heuristic",
	"admissible heuristic no. 1",
	"admissible heuristic no. 2",
}

// AllHeuristics lists every Heuristic in the order a batch run visits them.
var AllHeuristics = []Heuristic{
	HeuristicTrivial,
	HeuristicInadmissible,
	HeuristicAdmissible1,
	HeuristicAdmissible2,
}

func (h Heuristic) IsValid() bool {
	return h >= 0 && h < NumHeuristics
}

// String returns the config name of this heuristic (e.g. "admissible-1")
func (h Heuristic) String() string {
	if !h.IsValid() {
		return "unknown"
	}
	return heuristicNames[h]
}

// Label returns the human-readable description of this heuristic.
func (h Heuristic) Label() string {
	if !h.IsValid() {
		return "unknown heuristic"
	}
	return heuristicLabels[h]
}

// Algorithm selects a search driver.
type Algorithm int32

const (
	AlgoUCS      Algorithm = iota // uninformed cost search
	AlgoAStar                     // A* without duplicate elimination
	AlgoAStarOpt                  // A* with open / closed duplicate elimination
	AlgoIDAStar                   // iterative-deepening A*

	NumAlgorithms = 4
)

var algoNames = [NumAlgorithms]string{
	"ucs",
	"astar",
	"astar-opt",
	"idastar",
}

var algoLabels = [NumAlgorithms]string{
	"UCS",
	"A*",
	"A* optimal",
	"IDA*",
}

// InformedAlgorithms are the drivers that are run once per Heuristic.
var InformedAlgorithms = []Algorithm{
	AlgoAStar,
	AlgoAStarOpt,
	AlgoIDAStar,
}

func (algo Algorithm) IsValid() bool {
	return algo >= 0 && algo < NumAlgorithms
}

// IsInformed returns true if this driver orders its frontier using a Heuristic.
func (algo Algorithm) IsInformed() bool {
	return algo != AlgoUCS
}

func (algo Algorithm) String() string {
	if !algo.IsValid() {
		return "unknown"
	}
	return algoNames[algo]
}

func (algo Algorithm) Label() string {
	if !algo.IsValid() {
		return "unknown algorithm"
	}
	return algoLabels[algo]
}

// SearchOpts specifies params for a single search driver run
type SearchOpts struct {
	NumSolutions int           // number of solutions to emit (>= 1)
	Timeout      time.Duration // 0 denotes no time limit
	Heuristic    Heuristic     // ignored by AlgoUCS
	LSMClosedSet bool          // if set, AlgoAStarOpt keeps its closed set in an in-memory LSM db rather than a map
}

// DefaultSearchOpts mirrors the defaults of the go2pour command.
var DefaultSearchOpts = SearchOpts{
	NumSolutions: 1,
	Timeout:      10 * time.Second,
	Heuristic:    HeuristicAdmissible1,
}

// Outcome is how a search run terminated.
type Outcome int32

const (
	OutcomeSolved    Outcome = iota // the requested number of solutions was emitted
	OutcomeExhausted                // every reachable branch was explored with solutions still requested
	OutcomeTimedOut                 // the time budget ran out
)

func (out Outcome) String() string {
	switch out {
	case OutcomeSolved:
		return "solved"
	case OutcomeExhausted:
		return "exhausted"
	case OutcomeTimedOut:
		return "timed out"
	}
	return "unknown"
}

// RunStats are the counters reported by every search driver.
type RunStats struct {
	Elapsed     time.Duration // wall time since the run started
	Generated   int64         // total successor nodes generated (and accepted by pruning)
	MaxInMemory int64         // peak number of nodes held by the driver at once
}

// ElapsedSecs returns the elapsed time in whole seconds, rounded up.
func (stats RunStats) ElapsedSecs() int64 {
	secs := int64(stats.Elapsed / time.Second)
	if stats.Elapsed%time.Second != 0 {
		secs++
	}
	return secs
}

// Step is one pour of a solution path.
type Step struct {
	From     int    // index of the container poured from
	To       int    // index of the container poured into
	Color    string // resulting color name in container To
	Quantity int    // resulting quantity in container To
	State    State  // full state after this pour
}

// Solution is a path from the initial state to a state matching the target.
type Solution struct {
	Index   int      // one-based solution number within its run
	Initial State    // state before the first step
	Steps   []Step   // zero steps means the initial state already matches
	Stats   RunStats // counters at the moment this solution was found
}

// NumSteps is the path cost of this solution.
func (sol *Solution) NumSteps() int {
	return len(sol.Steps)
}

// Report is the result of one search driver run.
type Report struct {
	Algorithm Algorithm
	Heuristic Heuristic // meaningful only if Algorithm.IsInformed()
	Outcome   Outcome
	Solutions []*Solution
	Stats     RunStats // final counters
}

// ClosedSet tracks the expanded states of a duplicate-eliminating search along with the best
// estimated cost each state was expanded with.
type ClosedSet interface {

	// Cost returns the estimated cost recorded for S, if S is present.
	Cost(S State) (cost int, found bool)

	// Put records S as expanded at the given estimated cost, replacing any previous entry.
	Put(S State, cost int)

	// Remove drops S from this set (no-op if S is not present).
	Remove(S State)

	// Len returns the number of states currently in this set.
	Len() int

	// Close releases all resources held by this set.
	Close()
}

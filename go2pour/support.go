package go2pour

import (
	"strings"

	"github.com/pkg/errors"
)

// ParseHeuristic maps a config name (e.g. "admissible-2") or its ordinal ("3") to a Heuristic.
func ParseHeuristic(name string) (Heuristic, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, hi := range heuristicNames {
		if name == hi || (len(name) == 1 && name[0] == byte('0'+i)) {
			return Heuristic(i), nil
		}
	}
	return HeuristicTrivial, errors.Wrapf(ErrUnknownHeuristic, "%q", name)
}

// ParseAlgorithm maps a config name (e.g. "astar-opt") to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, ai := range algoNames {
		if name == ai {
			return Algorithm(i), nil
		}
	}
	return AlgoUCS, errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
}

// Validate checks that opts can drive a search run.
func (opts *SearchOpts) Validate() error {
	if opts.NumSolutions < 1 {
		return errors.Wrapf(ErrBadSolutionCount, "got %d", opts.NumSolutions)
	}
	if opts.Timeout < 0 {
		return errors.Wrapf(ErrBadTimeout, "got %v", opts.Timeout)
	}
	if !opts.Heuristic.IsValid() {
		return errors.Wrapf(ErrUnknownHeuristic, "code %d", opts.Heuristic)
	}
	return nil
}

// Validate checks every container of S against Container.IsValid.
func (S State) Validate() error {
	if len(S) == 0 {
		return ErrNoContainers
	}
	for i, ci := range S {
		if !ci.IsValid() {
			return errors.Wrapf(ErrBadContainer, "container %d (capacity %d, occupied %d, color %d)", i, ci.Capacity, ci.Occupied, ci.Color)
		}
	}
	return nil
}

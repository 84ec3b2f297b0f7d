package go2pour

import "errors"

// Errors
var (
	ErrUnknownColor     = errors.New("unknown color name")
	ErrUnknownColorCode = errors.New("unknown color code")
	ErrBadPuzzle        = errors.New("bad puzzle encoding")
	ErrBadContainer     = errors.New("bad container: occupied must be within 0..capacity, with a color iff not empty")
	ErrNoContainers     = errors.New("puzzle has no containers")
	ErrNoTarget         = errors.New("puzzle has no target containers")
	ErrBadSolutionCount = errors.New("number of requested solutions must be >= 1")
	ErrUnknownHeuristic = errors.New("unknown heuristic")
	ErrUnknownAlgorithm = errors.New("unknown search algorithm")
	ErrClosedSet        = errors.New("closed set failure")
	ErrBadTimeout       = errors.New("timeout must be >= 0")
)

package libpour

import (
	"fmt"
	"io"
	"strings"

	"github.com/2x3systems/go2pour/go2pour"
)

var (
	runBanner    = "\n\n" + strings.Repeat("#", 76) + "\n\n"
	runFooter    = "\n\n" + strings.Repeat("#", 47) + "\n\n"
	puzzleFooter = "\n\n" + strings.Repeat("#", 85) + "\n\n"
)

// WriteState writes each container of S on its own line followed by a blank line.
func WriteState(out io.Writer, S go2pour.State, namer go2pour.ColorNamer) {
	for i, ci := range S {
		fmt.Fprintf(out, "%d: Capacity: %d, Qty: %d, Color: %s\n", i, ci.Capacity, ci.Occupied, namer.ColorName(ci.Color))
	}
	io.WriteString(out, "\n")
}

// WriteSteps writes the initial state followed by every pour of sol and the state it yields.
func WriteSteps(out io.Writer, sol *go2pour.Solution, namer go2pour.ColorNamer) {
	WriteState(out, sol.Initial, namer)
	for i, step := range sol.Steps {
		fmt.Fprintf(out, "Step %d: Transferred from container %d to container %d. Got color `%s` with quantity %d.\n\n",
			i+1, step.From, step.To, step.Color, step.Quantity)
		WriteState(out, step.State, namer)
	}
}

// WriteSolution writes the header of sol (with the counters at the time it was found) and its steps.
func WriteSolution(out io.Writer, sol *go2pour.Solution, namer go2pour.ColorNamer) {
	fmt.Fprintf(out, "Solution %d\n-found in %d seconds.\n-generated %d nodes, with a maximum of %d nodes in memory.\n\nSteps:\n",
		sol.Index, sol.Stats.ElapsedSecs(), sol.Stats.Generated, sol.Stats.MaxInMemory)
	WriteSteps(out, sol, namer)
}

// WriteReport writes the complete text of one search run.
func WriteReport(out io.Writer, rep *go2pour.Report, namer go2pour.ColorNamer) {
	io.WriteString(out, runBanner)
	fmt.Fprintf(out, "Started algorithm %s\n", rep.Algorithm.Label())

	for _, sol := range rep.Solutions {
		WriteSolution(out, sol, namer)
	}

	switch rep.Outcome {
	case go2pour.OutcomeTimedOut:
		io.WriteString(out, "Solution stopped due to timeout\n")
	case go2pour.OutcomeExhausted:
		io.WriteString(out, "All paths exhausted! No solution left.\n")
	}

	fmt.Fprintf(out, "Finished in %d seconds.", rep.Stats.ElapsedSecs())
	io.WriteString(out, runFooter)
}

// WriteHeuristicBanner writes the line that introduces the runs of a given heuristic.
func WriteHeuristicBanner(out io.Writer, h go2pour.Heuristic) {
	fmt.Fprintf(out, "Using %s\n\n", h.Label())
}

package pypour

import (
	"strings"
	"time"

	"github.com/2x3systems/go2pour/go2pour"
	"github.com/2x3systems/go2pour/libpour"
	"github.com/go-python/gpython/py"
)

var (
	LIB_VERSION = "v1.2024.1"
)

var (
	pyPuzzleType = py.NewType("Puzzle", "a parsed container pouring puzzle")
)

type pyPuzzle struct {
	*libpour.Puzzle
}

func (pz pyPuzzle) Type() *py.Type {
	return pyPuzzleType
}

func (pz pyPuzzle) M__str__() (py.Object, error) {
	writer := strings.Builder{}
	libpour.WriteState(&writer, pz.Initial, pz.Palette)
	return py.String(writer.String()), nil
}

func (pz pyPuzzle) M__repr__() (py.Object, error) {
	return pz.M__str__()
}

// loadBatchOpts reads the optional (num_solutions, timeout_secs) args that follow the puzzle arg.
func loadBatchOpts(args py.Tuple) (pathOrText string, opts libpour.BatchOpts, err error) {
	opts = libpour.DefaultBatchOpts
	timeoutSecs := int(opts.Timeout / time.Second)

	err = py.LoadTuple(args, []interface{}{&pathOrText, &opts.NumSolutions, &timeoutSecs})
	if err != nil {
		return
	}
	if opts.NumSolutions < 1 {
		err = py.ExceptionNewf(py.ValueError, "%v", go2pour.ErrBadSolutionCount)
		return
	}
	if timeoutSecs < 0 {
		err = py.ExceptionNewf(py.ValueError, "%v", go2pour.ErrBadTimeout)
		return
	}
	opts.Timeout = time.Duration(timeoutSecs) * time.Second
	return
}

// Arg 1 (str): puzzle text
// Arg 2 (int): number of solutions per run (optional)
// Arg 3 (int): timeout per run in seconds, 0 for none (optional)
func py_Solve(module py.Object, args py.Tuple) (py.Object, error) {
	text, opts, err := loadBatchOpts(args)
	if err != nil {
		return nil, err
	}

	out, _, err := libpour.SolveText("<string>", text, opts)
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}
	return py.String(out), nil
}

// Same as Solve but arg 1 is a puzzle pathname
func py_SolveFile(module py.Object, args py.Tuple) (py.Object, error) {
	pathname, opts, err := loadBatchOpts(args)
	if err != nil {
		return nil, err
	}

	pz, err := libpour.ReadPuzzle(pathname)
	if err != nil {
		return nil, py.ExceptionNewf(py.FileNotFoundError, "%v", err)
	}

	writer := strings.Builder{}
	if _, err = libpour.SolvePuzzle(&writer, pz, opts); err != nil {
		return nil, py.ExceptionNewf(py.RuntimeError, "%v", err)
	}
	return py.String(writer.String()), nil
}

func py_ParsePuzzle(module py.Object, args py.Tuple) (py.Object, error) {
	var text string
	err := py.LoadTuple(args, []interface{}{&text})
	if err != nil {
		return nil, err
	}

	pz, err := libpour.ParsePuzzle("<string>", text)
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}
	return py.Object(pyPuzzle{pz}), nil
}

func py_Puzzle_MinSteps(self py.Object, args py.Tuple) (py.Object, error) {
	pz := self.(pyPuzzle)

	opts := go2pour.DefaultSearchOpts
	timeoutSecs := int(opts.Timeout / time.Second)
	if err := py.LoadTuple(args, []interface{}{&timeoutSecs}); err != nil {
		return nil, err
	}
	opts.Timeout = time.Duration(timeoutSecs) * time.Second

	steps, err := pz.MinSteps(opts)
	if err != nil {
		return nil, py.ExceptionNewf(py.RuntimeError, "%v", err)
	}
	return py.Int(steps), nil
}

func py_Puzzle_NumColors(self py.Object, args py.Tuple) (py.Object, error) {
	pz := self.(pyPuzzle)
	return py.Int(pz.Palette.NumColors()), nil
}

func py_Puzzle_NumContainers(self py.Object, args py.Tuple) (py.Object, error) {
	pz := self.(pyPuzzle)
	return py.Int(len(pz.Initial)), nil
}

func init() {

	/////////////////////////////////
	// Puzzle
	{
		pyPuzzleType.Dict["MinSteps"] = py.MustNewMethod("MinSteps", py_Puzzle_MinSteps, 0, "returns the fewest pours that reach the target, or -1")
		pyPuzzleType.Dict["NumColors"] = py.MustNewMethod("NumColors", py_Puzzle_NumColors, 0, "")
		pyPuzzleType.Dict["NumContainers"] = py.MustNewMethod("NumContainers", py_Puzzle_NumContainers, 0, "")
	}

	{
		methods := []*py.Method{
			py.MustNewMethod("Solve", py_Solve, 0, "runs every driver and heuristic on the given puzzle text and returns the report text"),
			py.MustNewMethod("SolveFile", py_SolveFile, 0, "same as Solve but reads the puzzle from the given pathname"),
			py.MustNewMethod("ParsePuzzle", py_ParsePuzzle, 0, ""),
		}

		heuristics := make(py.Tuple, go2pour.NumHeuristics)
		for i, hi := range go2pour.AllHeuristics {
			heuristics[i] = py.String(hi.String())
		}

		globals := py.StringDict{
			"LIB_VERSION": py.String(LIB_VERSION),
			"HEURISTICS":  heuristics,
		}

		py.RegisterModule(&py.ModuleImpl{
			Info: py.ModuleInfo{
				Name: "_pypour",
				Doc:  "container pouring puzzle search gpython module",
			},
			Methods: methods,
			Globals: globals,
		})
	}
}

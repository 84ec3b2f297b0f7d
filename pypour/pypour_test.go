package pypour

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-python/gpython/py"
)

const twoPourPuzzle = `
red blue purple
stare_initiala
2 2 red
1 1 blue
3 0
stare_finala
3 purple
`

func TestSolve(t *testing.T) {
	out, err := py_Solve(nil, py.Tuple{py.String(twoPourPuzzle), py.Int(1), py.Int(5)})
	if err != nil {
		t.Fatal(err)
	}
	text := string(out.(py.String))
	if !strings.Contains(text, "Started algorithm IDA*") || !strings.Contains(text, "Got color `purple` with quantity 3.") {
		t.Fatalf("unexpected output:\n%s", text)
	}

	if _, err = py_Solve(nil, py.Tuple{py.String(twoPourPuzzle), py.Int(0)}); err == nil {
		t.Fatal("expected an error for zero solutions")
	}
	if _, err = py_Solve(nil, py.Tuple{py.String("stare_finala\n")}); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestSolveFile(t *testing.T) {
	pathname := filepath.Join(t.TempDir(), "input_two_pour")
	if err := os.WriteFile(pathname, []byte(twoPourPuzzle), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := py_SolveFile(nil, py.Tuple{py.String(pathname)})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(out.(py.String)), "\n\n#") {
		t.Fatal("expected a run banner")
	}
}

func TestPuzzle(t *testing.T) {
	obj, err := py_ParsePuzzle(nil, py.Tuple{py.String(twoPourPuzzle)})
	if err != nil {
		t.Fatal(err)
	}

	steps, err := py_Puzzle_MinSteps(obj, py.Tuple{})
	if err != nil {
		t.Fatal(err)
	}
	if steps.(py.Int) != 2 {
		t.Fatalf("expected 2 steps, got %v", steps)
	}

	colors, _ := py_Puzzle_NumColors(obj, nil)
	containers, _ := py_Puzzle_NumContainers(obj, nil)
	if colors.(py.Int) != 3 || containers.(py.Int) != 3 {
		t.Fatal("unexpected puzzle counts")
	}

	str, _ := obj.(pyPuzzle).M__str__()
	if !strings.HasPrefix(string(str.(py.String)), "0: Capacity: 2, Qty: 2, Color: red\n") {
		t.Fatalf("unexpected str: %q", str)
	}
}

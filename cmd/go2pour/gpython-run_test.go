package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const pypourScript = `
import _pypour

puzzle = """
red blue purple
stare_initiala
2 2 red
1 1 blue
3 0
stare_finala
3 purple
"""

pz = _pypour.ParsePuzzle(puzzle)
print("containers:", pz.NumContainers())
print("min steps:", pz.MinSteps())
print(_pypour.Solve(puzzle, 1, 5))
`

func TestScript(t *testing.T) {
	dir := t.TempDir()
	pyFile := filepath.Join(dir, "two_pour.py")
	if err := os.WriteFile(pyFile, []byte(pypourScript), 0644); err != nil {
		t.Fatal(err)
	}

	outPathname := filepath.Join(dir, "two_pour.txt")
	out, err := os.Create(outPathname)
	if err != nil {
		t.Fatal(err)
	}
	err = runScript(pyFile, out)
	out.Close()
	if err != nil {
		t.Fatal(err)
	}

	buf, err := os.ReadFile(outPathname)
	if err != nil {
		t.Fatal(err)
	}
	text := string(buf)
	for _, expect := range []string{"containers: 3\n", "min steps: 2\n", "Using admissible heuristic no. 2"} {
		if !strings.Contains(text, expect) {
			t.Fatalf("expected %q in script output:\n%s", expect, text)
		}
	}
}

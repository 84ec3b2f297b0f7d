package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
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

// orangePuzzle reuses the color names of twoPourPuzzle in a different order
const orangePuzzle = `
yellow red orange
stare_initiala
2 1 red
2 1 yellow
stare_finala
2 orange
`

func writePuzzles(t *testing.T) string {
	t.Helper()
	inputDir := t.TempDir()
	for name, text := range map[string]string{
		"two_pour.txt": twoPourPuzzle,
		"orange.txt":   orangePuzzle,
	} {
		if err := os.WriteFile(filepath.Join(inputDir, name), []byte(text), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return inputDir
}

func TestSolveAll(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Input = writePuzzles(t)
	cfg.Output = filepath.Join(t.TempDir(), "out")

	written, err := solveAll(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(written) != 2 || filepath.Base(written[0]) != "output_orange.txt" || filepath.Base(written[1]) != "output_two_pour.txt" {
		t.Fatalf("unexpected outputs %v", written)
	}

	buf, err := os.ReadFile(written[0])
	if err != nil {
		t.Fatal(err)
	}
	text := string(buf)
	if !strings.Contains(text, "Got color `orange` with quantity 2.") {
		t.Fatalf("expected the orange mix:\n%s", text)
	}
	if strings.Contains(text, "purple") {
		t.Fatal("colors leaked from another puzzle")
	}
	if strings.Count(text, "Started algorithm ") != 13 {
		t.Fatal("expected UCS plus three drivers for each of four heuristics")
	}
}

func TestSolveCommand(t *testing.T) {
	inputDir := writePuzzles(t)
	outputDir := filepath.Join(t.TempDir(), "out")

	cfgPathname := filepath.Join(t.TempDir(), "go2pour.yaml")
	err := os.WriteFile(cfgPathname, []byte("nsol: 5\nalgorithms: [ucs]\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}

	rootCmd.SetArgs([]string{
		"solve",
		"--config", cfgPathname,
		"--output", outputDir,
		"--nsol", "2",
		"--algorithms", "astar-opt,idastar",
		"--heuristics", "admissible-1",
		"--lsm",
		filepath.Join(inputDir, "two_pour.txt"),
	})
	if err = rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}

	buf, err := os.ReadFile(filepath.Join(outputDir, "output_two_pour.txt"))
	if err != nil {
		t.Fatal(err)
	}
	text := string(buf)
	if strings.Contains(text, "Started algorithm UCS") {
		t.Fatal("flags should override the config file")
	}
	if !strings.Contains(text, "Started algorithm A* optimal") || !strings.Contains(text, "Solution 2\n") {
		t.Fatalf("unexpected output:\n%s", text)
	}

	rootCmd.SetArgs([]string{"solve", "--config", cfgPathname, "--nsol", "0"})
	if err = rootCmd.Execute(); err == nil {
		t.Fatal("expected a validation error")
	}
}

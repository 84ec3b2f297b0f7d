package main

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"

	"github.com/2x3systems/go2pour/libpour"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [puzzle file...]",
	Short: "Solves every puzzle in the input directory (or the given files) into the output directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadCmdConfig(cmd)
		if err != nil {
			return err
		}
		_, err = solveAll(cfg, args)
		return err
	},
}

func init() {
	fl := solveCmd.Flags()
	fl.StringP("input", "i", "", "input directory of puzzle files")
	fl.StringP("output", "o", "", "output directory")
	fl.IntP("nsol", "n", 0, "number of solutions per run")
	fl.DurationP("timeout", "t", 0, "timeout per run (e.g. 10s; 0 for none)")
	fl.StringSlice("heuristics", nil, "heuristics to run the informed drivers with (trivial, inadmissible, admissible-1, admissible-2)")
	fl.StringSlice("algorithms", nil, "drivers to run (ucs, astar, astar-opt, idastar)")
	fl.Bool("lsm", false, "keep the closed set of duplicate-eliminating A* in an in-memory LSM store")
}

// loadCmdConfig loads the config file named by --config and applies any flags set on cmd.
func loadCmdConfig(cmd *cobra.Command) (Config, error) {
	pathname, _ := cmd.Flags().GetString("config")
	mustExist := cmd.Flags().Changed("config")

	cfg, err := LoadConfig(pathname, mustExist)
	if err != nil {
		return cfg, err
	}

	fl := cmd.Flags()
	if fl.Changed("input") {
		cfg.Input, _ = fl.GetString("input")
	}
	if fl.Changed("output") {
		cfg.Output, _ = fl.GetString("output")
	}
	if fl.Changed("nsol") {
		cfg.NumSolutions, _ = fl.GetInt("nsol")
	}
	if fl.Changed("timeout") {
		cfg.Timeout, _ = fl.GetDuration("timeout")
	}
	if fl.Changed("heuristics") {
		cfg.Heuristics, _ = fl.GetStringSlice("heuristics")
	}
	if fl.Changed("algorithms") {
		cfg.Algorithms, _ = fl.GetStringSlice("algorithms")
	}
	if fl.Changed("lsm") {
		cfg.LSMClosedSet, _ = fl.GetBool("lsm")
	}

	return cfg, cfg.Validate()
}

// solveAll solves each puzzle file into cfg.Output, returning the output pathnames written.
// If no pathnames are given, every regular file in cfg.Input is solved.
func solveAll(cfg Config, pathnames []string) ([]string, error) {
	opts, err := cfg.BatchOpts()
	if err != nil {
		return nil, err
	}

	if len(pathnames) == 0 {
		entries, err := os.ReadDir(cfg.Input)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read input directory")
		}
		for _, ei := range entries {
			if ei.Type().IsRegular() {
				pathnames = append(pathnames, filepath.Join(cfg.Input, ei.Name()))
			}
		}
		sort.Strings(pathnames)
	}

	if err = os.MkdirAll(cfg.Output, 0700); err != nil {
		return nil, err
	}

	var written []string
	for _, pathname := range pathnames {
		outPathname := filepath.Join(cfg.Output, "output_"+filepath.Base(pathname))
		if err = solveFile(pathname, outPathname, opts); err != nil {
			return written, err
		}
		written = append(written, outPathname)
	}
	return written, nil
}

// solveFile parses one puzzle into its own Palette and writes the batch output for it.
func solveFile(pathname, outPathname string, opts libpour.BatchOpts) error {
	pz, err := libpour.ReadPuzzle(pathname)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(outPathname, os.O_TRUNC|os.O_WRONLY|os.O_CREATE, 0600)
	if err != nil {
		return err
	}
	defer file.Close()

	klog.Infof("solving %v into %v", pathname, outPathname)

	out := bufio.NewWriter(file)
	if _, err = libpour.SolvePuzzle(out, pz, opts); err != nil {
		return errors.Wrap(err, pathname)
	}
	return out.Flush()
}

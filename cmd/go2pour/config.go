package main

import (
	"os"
	"time"

	"github.com/2x3systems/go2pour/go2pour"
	"github.com/2x3systems/go2pour/libpour"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const defaultConfigPathname = "go2pour.yaml"

// Config is the contents of go2pour.yaml; every field can also be set by a command line flag.
type Config struct {
	Input        string        `yaml:"input"`          // directory of puzzle files
	Output       string        `yaml:"output"`         // directory that receives output_<puzzle name>
	NumSolutions int           `yaml:"nsol"`           // solutions requested from each run
	Timeout      time.Duration `yaml:"timeout"`        // per run, e.g. "10s"; 0 for none
	Heuristics   []string      `yaml:"heuristics"`     // e.g. "trivial", "admissible-2"
	Algorithms   []string      `yaml:"algorithms"`     // e.g. "ucs", "astar", "astar-opt", "idastar"
	LSMClosedSet bool          `yaml:"lsm_closed_set"` // see go2pour.SearchOpts
}

// DefaultConfig runs every driver with every heuristic, reading ./input and writing ./output.
func DefaultConfig() Config {
	cfg := Config{
		Input:        "./input",
		Output:       "./output",
		NumSolutions: libpour.DefaultBatchOpts.NumSolutions,
		Timeout:      libpour.DefaultBatchOpts.Timeout,
	}
	for _, hi := range libpour.DefaultBatchOpts.Heuristics {
		cfg.Heuristics = append(cfg.Heuristics, hi.String())
	}
	for _, ai := range libpour.DefaultBatchOpts.Algorithms {
		cfg.Algorithms = append(cfg.Algorithms, ai.String())
	}
	return cfg
}

// LoadConfig reads the given yaml file over DefaultConfig().
// A missing file is not an error unless mustExist is set.
func LoadConfig(pathname string, mustExist bool) (Config, error) {
	cfg := DefaultConfig()

	buf, err := os.ReadFile(pathname)
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return cfg, nil
		}
		return cfg, errors.Wrap(err, "failed to read config")
	}

	if err = yaml.Unmarshal(buf, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "failed to parse config %q", pathname)
	}
	return cfg, nil
}

// BatchOpts validates cfg and converts it into options for libpour.SolvePuzzle.
func (cfg *Config) BatchOpts() (libpour.BatchOpts, error) {
	opts := libpour.BatchOpts{
		NumSolutions: cfg.NumSolutions,
		Timeout:      cfg.Timeout,
		LSMClosedSet: cfg.LSMClosedSet,
	}

	if opts.NumSolutions < 1 {
		return opts, errors.Wrapf(go2pour.ErrBadSolutionCount, "nsol %d", opts.NumSolutions)
	}
	if opts.Timeout < 0 {
		return opts, errors.Wrapf(go2pour.ErrBadTimeout, "timeout %v", opts.Timeout)
	}

	for _, name := range cfg.Heuristics {
		h, err := go2pour.ParseHeuristic(name)
		if err != nil {
			return opts, err
		}
		opts.Heuristics = append(opts.Heuristics, h)
	}
	for _, name := range cfg.Algorithms {
		algo, err := go2pour.ParseAlgorithm(name)
		if err != nil {
			return opts, err
		}
		opts.Algorithms = append(opts.Algorithms, algo)
	}
	return opts, nil
}

// Validate returns an error if cfg can't drive a batch.
func (cfg *Config) Validate() error {
	_, err := cfg.BatchOpts()
	return err
}

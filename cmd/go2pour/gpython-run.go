package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-python/gpython/py"
	"github.com/go-python/gpython/repl"
	"github.com/go-python/gpython/repl/cli"
	"github.com/spf13/cobra"

	_ "github.com/2x3systems/go2pour/pypour"
	_ "github.com/go-python/gpython/stdlib"
)

var scriptCmd = &cobra.Command{
	Use:   "script [file.py]",
	Short: "Runs a python script that imports _pypour, or a REPL if no script is given",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pathname := ""
		if len(args) > 0 {
			pathname = args[0]
		}
		return runScript(pathname, nil)
	},
}

// runScript runs the given script (or a REPL if pathname is empty).
// If stdout is set, the script's sys.stdout is redirected to it.
func runScript(pathname string, stdout *os.File) error {
	ctx := py.NewContext(py.DefaultContextOpts())

	if stdout != nil {
		sys := ctx.Store().MustGetModule("sys")
		sys.Globals["stdout"] = &py.File{
			File:     stdout,
			FileMode: py.FileWrite,
		}
	}

	var (
		err error
	)
	if len(pathname) == 0 {
		replCtx := repl.New(ctx)
		cli.RunREPL(replCtx)

	} else {
		startTime := time.Now()
		fmt.Fprintf(os.Stderr, "<<<>>>   executing '%s'   <<<>>>\n", pathname)

		// RunFile resolves relative to CurDir and sys.path, never as an absolute path
		var abs string
		abs, err = filepath.Abs(pathname)
		if err == nil {
			_, err = py.RunFile(ctx, filepath.Base(abs), py.CompileOpts{CurDir: filepath.Dir(abs)}, nil)
		}

		if err == nil {
			fmt.Fprintf(os.Stderr, "<<<>>>   execution complete: %v   <<<>>>\n", time.Since(startTime))
		}
	}

	ctx.Close()
	<-ctx.Done()

	if err != nil {
		py.TracebackDump(err)
	}
	return err
}

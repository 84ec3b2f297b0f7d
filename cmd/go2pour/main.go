package main

import (
	"flag"
	"os"

	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "go2pour",
	Short:        "Searches for pour sequences that mix a set of containers into a target set",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", defaultConfigPathname, "yaml config pathname")
	rootCmd.AddCommand(solveCmd, scriptCmd)
}

func main() {
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	fset.Set("v", "1")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	rootCmd.PersistentFlags().AddGoFlagSet(fset)

	err := rootCmd.Execute()
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}

/*
Command btree exercises the insert-only B-tree: it times bulk workloads and
offers an interactive shell.

	btree bench --degree 2056 --count 1000000 --order random --baseline
	btree shell --degree 3
*/
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/npillmayer/btreemap/bench"
	"github.com/npillmayer/btreemap/btree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var traceLevel string
	rootCmd := &cobra.Command{
		Use:           "btree",
		Short:         "Insert-only in-memory B-tree",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			gtrace.CoreTracer = gologadapter.New()
			gtrace.CoreTracer.SetTraceLevel(tracing.TraceLevelFromString(traceLevel))
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "Error", "trace level (Debug, Info, Error)")
	rootCmd.AddCommand(newBenchCmd(), newShellCmd())
	return rootCmd
}

func newBenchCmd() *cobra.Command {
	cfg := bench.DefaultConfig()
	var order string
	var baseline bool
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time bulk insertion and lookup",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg.Order, err = bench.ParseOrder(order); err != nil {
				return err
			}
			res, err := bench.Run(cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "btree(t=%d) %d %s keys\n", cfg.Degree, cfg.Count, cfg.Order)
			printTimings(out, res)
			if !baseline {
				return nil
			}
			base, err := bench.RunBaseline(cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "google/btree(degree=%d)\n", cfg.Degree)
			printTimings(out, base)
			return nil
		},
	}
	cmd.Flags().IntVar(&cfg.Degree, "degree", cfg.Degree, "minimum degree t")
	cmd.Flags().IntVar(&cfg.Count, "count", cfg.Count, "number of keys")
	cmd.Flags().StringVar(&order, "order", cfg.Order.String(), "insertion order: ascending, descending or random")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", 1, "seed for random order")
	cmd.Flags().BoolVar(&cfg.Linear, "linear", false, "also time linear lookups")
	cmd.Flags().BoolVar(&baseline, "baseline", false, "compare with github.com/google/btree")
	return cmd
}

func newShellCmd() *cobra.Command {
	var degree int
	var noColor bool
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive session on a tree with string keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			sh, err := NewShell(degree, !noColor && !color.NoColor)
			if err != nil {
				return err
			}
			return sh.Run(historyFile())
		},
	}
	cmd.Flags().IntVar(&degree, "degree", btree.MinDegree, "minimum degree t")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	return cmd
}

func historyFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "btree_shell_history")
}

func printTimings(w io.Writer, res bench.Result) {
	label := color.New(color.FgCyan).SprintFunc()
	fmt.Fprintf(w, "  %s %v\n", label("insert:"), res.Insert)
	fmt.Fprintf(w, "  %s %v\n", label("search:"), res.Search)
	if res.Config.Linear {
		fmt.Fprintf(w, "  %s %v\n", label("linear:"), res.SearchLinear)
	}
	fmt.Fprintf(w, "  %s %v\n", label("total: "), res.Total)
	if res.Height > 0 {
		fmt.Fprintf(w, "  %s %d\n", label("height:"), res.Height)
	}
}

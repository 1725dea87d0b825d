package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	config   string
	source   int
	strategy string
	verbose  bool
}

// Execute runs the sptree CLI with ctx, writing results to stdout and logs to stderr.
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx)
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:          "sptree",
		Short:        "sptree computes single-source shortest-path trees",
		Long:         `sptree runs Dijkstra's algorithm over a small weighted graph and prints distances, paths and the shortest-path tree.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if flags.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(errOut, level)))
		},
	}

	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetVersionTemplate(fmt.Sprintf("sptree %s\ncommit: %s\nbuilt: %s\n", version, commit, date))

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.config, "config", "c", "", "graph file (.toml, .yaml, .yml); defaults to the built-in reference graph")
	pf.IntVarP(&flags.source, "source", "s", 0, "source vertex (overrides the config file)")
	pf.StringVar(&flags.strategy, "strategy", "", "selection strategy: linear or heap (overrides the config file)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newDumpCmd(flags))
	root.AddCommand(newPathCmd(flags))
	root.AddCommand(newTreeCmd(flags))
	root.AddCommand(newSelectCmd(flags))

	return root
}

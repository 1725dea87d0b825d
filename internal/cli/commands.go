package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sptree/dijkstra"
	"github.com/katalvlaran/sptree/query"
)

func newDumpCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print distance and predecessor chain for every vertex",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, _, err := open(cmd, flags)
			if err != nil {
				return err
			}
			return f.Dump(cmd.OutOrStdout())
		},
	}
}

func newPathCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "path <target>",
		Short: "Print the shortest path from the source to target",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid target %q: %w", args[0], err)
			}
			f, snap, err := open(cmd, flags)
			if err != nil {
				return err
			}
			return printPath(cmd.OutOrStdout(), f, snap.Tables.Source, target)
		},
	}
}

func newTreeCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the shortest-path tree as Graphviz DOT",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, snap, err := open(cmd, flags)
			if err != nil {
				return err
			}
			return snap.Tables.WriteDOT(cmd.OutOrStdout())
		},
	}
}

func newSelectCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "select",
		Short: "Read digit keys from stdin and print the path to each selected vertex",
		Long:  `select reads stdin and treats each digit 0-9 as a target vertex. Whitespace is skipped; 'q' stops reading. Other keys are reported and ignored.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, snap, err := open(cmd, flags)
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			in := bufio.NewReader(cmd.InOrStdin())
			out := cmd.OutOrStdout()
			for {
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				key, _, err := in.ReadRune()
				if errors.Is(err, io.EOF) {
					return nil
				}
				if err != nil {
					return err
				}
				if key == 'q' {
					return nil
				}
				if unicode.IsSpace(key) {
					continue
				}
				target, err := f.TargetForKey(key)
				if err != nil {
					logger.Warn("ignored key", "key", string(key), "err", err)
					continue
				}
				if err := printPath(out, f, snap.Tables.Source, target); err != nil {
					return err
				}
			}
		},
	}
}

// printPath writes the distance and path to target, or an unreachable notice.
func printPath(w io.Writer, f *query.Facade, source, target int) error {
	path, ok, err := f.Path(target)
	if err != nil {
		return err
	}
	if !ok {
		_, err = fmt.Fprintf(w, "%d: unreachable from %d\n", target, source)
		return err
	}
	d, err := f.Distance(target)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%d: distance %s, path %s\n", target, dijkstra.FormatDistance(d), path)

	return err
}

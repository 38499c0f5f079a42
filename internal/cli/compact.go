package cli

import (
	"github.com/spf13/cobra"

	"github.com/veremark/topograph/graphio"
	"github.com/veremark/topograph/tools"
)

// newCompactCmd remaps a sparse node-ID space onto [0,n). The inverse map
// (with the original-bound sentinel) can be saved for a later restore.
func newCompactCmd() *cobra.Command {
	var (
		output  string
		mapFile string
		random  bool
	)

	cmd := &cobra.Command{
		Use:   "compact FILE",
		Short: "Remap node IDs onto a dense contiguous range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphio.ReadFile(args[0])
			if err != nil {
				return err
			}

			nodeIDMap := tools.ContinuousNodeIDs(g)
			if random {
				nodeIDMap = tools.RandomContinuousNodeIDs(g)
			}
			compacted := tools.CompactedGraph(g, nodeIDMap)
			loggerFromContext(cmd.Context()).Debug("compacted",
				"bound", g.UpperNodeIDBound(), "nodes", compacted.NumberOfNodes())

			if mapFile != "" {
				inverted := tools.InvertContinuousNodeIDs(nodeIDMap, g)
				if err := writeMapFile(mapFile, inverted); err != nil {
					return err
				}
			}

			return writeGraphOutput(cmd, compacted, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&mapFile, "map", "", "write the inverse node-ID map here (enables restore)")
	cmd.Flags().BoolVar(&random, "random", false, "assign compacted IDs in shuffled order")

	return cmd
}

// newRestoreCmd rebuilds the pre-compaction graph from a compacted graph
// and the inverse map written by `compact --map`.
func newRestoreCmd() *cobra.Command {
	var (
		output  string
		mapFile string
	)

	cmd := &cobra.Command{
		Use:   "restore FILE --map MAP",
		Short: "Rebuild the original graph from a compacted one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphio.ReadFile(args[0])
			if err != nil {
				return err
			}
			inverted, err := readMapFile(mapFile)
			if err != nil {
				return err
			}
			restored := tools.RestoreGraph(inverted, g)
			loggerFromContext(cmd.Context()).Debug("restored",
				"bound", restored.UpperNodeIDBound(), "nodes", restored.NumberOfNodes())

			return writeGraphOutput(cmd, restored, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&mapFile, "map", "", "inverse node-ID map file (required)")
	_ = cmd.MarkFlagRequired("map")

	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veremark/topograph/graphio"
	"github.com/veremark/topograph/tools"
)

// newInfoCmd reports structural facts about a stored graph.
func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Print node/edge counts, bounds, and degree maxima",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphio.ReadFile(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "directed:         %v\n", g.IsDirected())
			fmt.Fprintf(out, "weighted:         %v\n", g.IsWeighted())
			fmt.Fprintf(out, "nodes:            %d\n", g.NumberOfNodes())
			fmt.Fprintf(out, "upper node bound: %d\n", g.UpperNodeIDBound())
			fmt.Fprintf(out, "holes:            %d\n", g.UpperNodeIDBound()-g.NumberOfNodes())
			fmt.Fprintf(out, "edges:            %d\n", g.NumberOfEdges())
			fmt.Fprintf(out, "self-loops:       %d\n", g.NumberOfSelfLoops())
			fmt.Fprintf(out, "max out-degree:   %d\n", tools.MaxDegree(g))
			fmt.Fprintf(out, "max in-degree:    %d\n", tools.MaxInDegree(g))

			return nil
		},
	}
}

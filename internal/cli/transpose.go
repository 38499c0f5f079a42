package cli

import (
	"github.com/spf13/cobra"

	"github.com/veremark/topograph/graphio"
	"github.com/veremark/topograph/tools"
)

// newTransposeCmd reverses every edge of a directed graph. Undirected
// input fails with the tools usage error, surfaced verbatim.
func newTransposeCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "transpose FILE",
		Short: "Reverse every edge of a directed graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphio.ReadFile(args[0])
			if err != nil {
				return err
			}
			gt, err := tools.Transpose(g)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("transposed",
				"nodes", gt.NumberOfNodes(), "edges", gt.NumberOfEdges())

			return writeGraphOutput(cmd, gt, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}

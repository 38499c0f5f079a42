package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/veremark/topograph/dot"
	"github.com/veremark/topograph/graphio"
)

// newRenderCmd exports a graph as DOT text or a rendered image.
func newRenderCmd() *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Export a graph as DOT, SVG, or PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphio.ReadFile(args[0])
			if err != nil {
				return err
			}

			switch strings.ToLower(format) {
			case "dot":
				if output == "" {
					return dot.Write(cmd.OutOrStdout(), g)
				}
				return os.WriteFile(output, []byte(dot.Marshal(g)), 0o644)
			case "svg", "png":
				f := dot.SVG
				if format == "png" {
					f = dot.PNG
				}
				img, err := dot.Render(cmd.Context(), g, f)
				if err != nil {
					return err
				}
				if output == "" {
					return fmt.Errorf("cli: --output is required for %s", format)
				}
				return os.WriteFile(output, img, 0o644)
			default:
				return fmt.Errorf("cli: unknown format %q (want dot, svg, or png)", format)
			}
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot, svg, png")

	return cmd
}

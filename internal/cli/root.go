// Package cli implements the topograph command-line interface: thin cobra
// commands over the tools transforms, speaking the graphio JSON format so
// transforms compose in shell pipelines.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/veremark/topograph/tools"
)

var (
	version = "dev" // overridden via ldflags
	commit  = "none"
)

// SetVersion injects build metadata shown by --version; called by package
// main with ldflags-provided values.
func SetVersion(v, c string) {
	version = v
	commit = c
}

// Execute runs the topograph CLI and returns the first command error.
//
// The --verbose flag lowers the log level to debug. The logger is attached
// to the command context and doubles as the advisory sink for the tools
// package, so redundant-conversion warnings surface in CLI output.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "topograph",
		Short:        "topograph transforms graphs: transpose, extract, merge, compact",
		Long:         `topograph reads graphs in a small JSON format and applies structural transforms — transpose, subgraph extraction, disjoint/aligned merge, ID compaction and restoration — writing the result back as JSON, DOT, or a rendered image.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			tools.SetLogger(logger)
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("topograph %s\ncommit: %s\n", version, commit))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newInfoCmd())
	root.AddCommand(newTransposeCmd())
	root.AddCommand(newSubgraphCmd())
	root.AddCommand(newCompactCmd())
	root.AddCommand(newRestoreCmd())
	root.AddCommand(newRenderCmd())

	return root.ExecuteContext(context.Background())
}

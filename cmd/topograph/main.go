// Command topograph exposes the graph transforms over a JSON graph format.
package main

import (
	"os"

	"github.com/veremark/topograph/internal/cli"
)

// Build metadata, injected via -ldflags "-X main.version=... -X main.commit=...".
var (
	version = "dev"
	commit  = "none"
)

func main() {
	cli.SetVersion(version, commit)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

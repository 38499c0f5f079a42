package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/veremark/topograph/core"
	"github.com/veremark/topograph/graphio"
)

// writeGraphOutput writes g to the --output path, or to stdout when the
// flag is empty, so commands compose in pipelines.
func writeGraphOutput(cmd *cobra.Command, g *core.Graph, output string) error {
	if output == "" {
		return graphio.Write(cmd.OutOrStdout(), g)
	}

	return graphio.WriteFile(output, g)
}

// parseSeeds parses a comma-separated node-ID list ("0,4,17").
func parseSeeds(spec string) ([]core.Node, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, nil
	}
	parts := strings.Split(spec, ",")
	seeds := make([]core.Node, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("cli: bad seed %q: %w", p, err)
		}
		seeds = append(seeds, core.Node(id))
	}

	return seeds, nil
}

// writeMapFile persists an inverse node-ID map (sentinel included) as a
// JSON integer array.
func writeMapFile(path string, inverted []core.Node) error {
	ids := make([]int, len(inverted))
	for i, u := range inverted {
		ids[i] = int(u)
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("cli: marshal map: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("cli: write map %s: %w", path, err)
	}

	return nil
}

// readMapFile loads an inverse node-ID map written by writeMapFile.
func readMapFile(path string) ([]core.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cli: read map %s: %w", path, err)
	}
	var ids []int
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("cli: parse map %s: %w", path, err)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("cli: map %s is empty", path)
	}
	inverted := make([]core.Node, len(ids))
	for i, id := range ids {
		inverted[i] = core.Node(id)
	}

	return inverted, nil
}

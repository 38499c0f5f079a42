package dot

import (
	"bytes"
	"fmt"
	"io"

	"github.com/veremark/topograph/core"
)

// Marshal returns the DOT representation of g.
//
// Directed graphs become a `digraph` with `->` edges, undirected ones a
// `graph` with `--` edges. Every active node is declared explicitly so
// isolated nodes survive the round trip; holes are omitted entirely. On
// weighted graphs each edge carries a `label` and `weight` attribute.
// Output is deterministic: nodes ascending, edges in enumeration order.
func Marshal(g *core.Graph) string {
	var buf bytes.Buffer
	arrow := "--"
	if g.IsDirected() {
		buf.WriteString("digraph topograph {\n")
		arrow = "->"
	} else {
		buf.WriteString("graph topograph {\n")
	}
	buf.WriteString("  node [shape=circle];\n\n")

	g.ForNodes(func(u core.Node) {
		fmt.Fprintf(&buf, "  n%d;\n", u)
	})
	buf.WriteByte('\n')
	g.ForEdges(func(u, v core.Node, w float64, _ core.EdgeID) {
		if g.IsWeighted() {
			fmt.Fprintf(&buf, "  n%d %s n%d [label=\"%g\", weight=%g];\n", u, arrow, v, w, w)
			return
		}
		fmt.Fprintf(&buf, "  n%d %s n%d;\n", u, arrow, v)
	})

	buf.WriteString("}\n")

	return buf.String()
}

// Write writes the DOT representation of g to w.
func Write(w io.Writer, g *core.Graph) error {
	if _, err := io.WriteString(w, Marshal(g)); err != nil {
		return fmt.Errorf("dot: write: %w", err)
	}

	return nil
}

package graphio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/veremark/topograph/core"
)

// Sentinel errors for graph decoding.
var (
	// ErrBadBound indicates a negative bound or a node ID outside it.
	ErrBadBound = errors.New("graphio: node ID outside declared bound")

	// ErrBadEdge indicates an edge endpoint that is not an active node.
	ErrBadEdge = errors.New("graphio: edge endpoint is not an active node")
)

// graphJSON is the wire shape; see the package documentation.
type graphJSON struct {
	Directed bool       `json:"directed"`
	Weighted bool       `json:"weighted"`
	Bound    int        `json:"bound"`
	Nodes    []int      `json:"nodes"`
	Edges    []edgeJSON `json:"edges"`
}

type edgeJSON struct {
	U int      `json:"u"`
	V int      `json:"v"`
	W *float64 `json:"w,omitempty"`
}

// Marshal encodes g as JSON bytes. Nodes ascend and edges follow the
// graph's enumeration order, so output is deterministic for a fixed graph.
func Marshal(g *core.Graph) ([]byte, error) {
	out := graphJSON{
		Directed: g.IsDirected(),
		Weighted: g.IsWeighted(),
		Bound:    g.UpperNodeIDBound(),
		Nodes:    make([]int, 0, g.NumberOfNodes()),
		Edges:    make([]edgeJSON, 0, g.NumberOfEdges()),
	}
	g.ForNodes(func(u core.Node) {
		out.Nodes = append(out.Nodes, int(u))
	})
	g.ForEdges(func(u, v core.Node, w float64, _ core.EdgeID) {
		e := edgeJSON{U: int(u), V: int(v)}
		if g.IsWeighted() {
			weight := w
			e.W = &weight
		}
		out.Edges = append(out.Edges, e)
	})

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("graphio: marshal: %w", err)
	}

	return data, nil
}

// Unmarshal decodes JSON bytes into a fresh graph, reconstructing the hole
// pattern from the bound and the active-node list. Returns ErrBadBound or
// ErrBadEdge (wrapped) for structurally invalid input.
func Unmarshal(data []byte) (*core.Graph, error) {
	var in graphJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("graphio: unmarshal: %w", err)
	}
	if in.Bound < 0 {
		return nil, fmt.Errorf("%w: bound %d", ErrBadBound, in.Bound)
	}

	active := make(map[int]struct{}, len(in.Nodes))
	for _, u := range in.Nodes {
		if u < 0 || u >= in.Bound {
			return nil, fmt.Errorf("%w: node %d, bound %d", ErrBadBound, u, in.Bound)
		}
		active[u] = struct{}{}
	}

	g := core.NewGraph(in.Bound,
		core.WithDirected(in.Directed),
		core.WithWeighted(in.Weighted))
	for u := 0; u < in.Bound; u++ {
		if _, ok := active[u]; !ok {
			_ = g.RemoveNode(core.Node(u)) // fresh graph: cannot fail
		}
	}
	for _, e := range in.Edges {
		w := core.DefaultWeight
		if e.W != nil {
			w = *e.W
		}
		if err := g.AddEdge(core.Node(e.U), core.Node(e.V), w); err != nil {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrBadEdge, e.U, e.V)
		}
	}

	return g, nil
}

// Write encodes g to w.
func Write(w io.Writer, g *core.Graph) error {
	data, err := Marshal(g)
	if err != nil {
		return err
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("graphio: write: %w", err)
	}

	return nil
}

// Read decodes a graph from r.
func Read(r io.Reader) (*core.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("graphio: read: %w", err)
	}

	return Unmarshal(data)
}

// WriteFile writes g to path with 0644 permissions.
func WriteFile(path string, g *core.Graph) error {
	data, err := Marshal(g)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("graphio: write %s: %w", path, err)
	}

	return nil
}

// ReadFile reads and decodes the graph stored at path.
func ReadFile(path string) (*core.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: read %s: %w", path, err)
	}

	return Unmarshal(data)
}

package dot

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/veremark/topograph/core"
)

// Format selects the Render output encoding.
type Format = graphviz.Format

// Supported render formats.
const (
	SVG Format = graphviz.SVG
	PNG Format = graphviz.PNG
)

// Render lays g out with the in-process Graphviz engine and returns the
// encoded image bytes. Errors from engine setup, DOT parsing, or rendering
// are wrapped with %w for errors.Is / errors.Unwrap.
func Render(ctx context.Context, g *core.Graph, format Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("dot: init graphviz: %w", err)
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(Marshal(g)))
	if err != nil {
		return nil, fmt.Errorf("dot: parse: %w", err)
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, parsed, format, &buf); err != nil {
		return nil, fmt.Errorf("dot: render: %w", err)
	}

	return buf.Bytes(), nil
}

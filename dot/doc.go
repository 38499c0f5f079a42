// Package dot serializes core.Graph values to the Graphviz DOT language
// and renders them in-process through github.com/goccy/go-graphviz.
//
// Marshal and Write emit a `digraph` or `graph` depending on the graph's
// directedness, omit holes, and label edges with their weight when the
// graph is weighted. Render turns the same DOT text into SVG or PNG bytes
// without shelling out to a graphviz binary.
package dot

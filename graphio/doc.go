// Package graphio persists core.Graph values as JSON, preserving exactly
// what the transforms care about: flags, the active-node set including its
// hole pattern (via the explicit bound), and edge weights.
//
// The format is a single object:
//
//	{
//	  "directed": true,
//	  "weighted": true,
//	  "bound":    4,
//	  "nodes":    [0, 1, 3],
//	  "edges":    [{"u": 0, "v": 1, "w": 2.5}]
//	}
//
// "nodes" lists the ACTIVE node IDs; any ID below "bound" that is absent
// from the list is a hole. "w" is omitted on unweighted graphs. Edge IDs
// are not persisted — re-run IndexEdges after loading if needed.
package graphio

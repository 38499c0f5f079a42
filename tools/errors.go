package tools

import "errors"

var (
	// ErrTransposeUndirected indicates Transpose was called on an
	// undirected graph, for which the transpose is the identity. The call
	// is rejected instead of silently returning a copy.
	ErrTransposeUndirected = errors.New("tools: transpose is undefined for undirected graphs")
)

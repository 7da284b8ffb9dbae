package graph

import (
	"fmt"

	"github.com/perqvist/nav-analyzer/pkg/model"
)

// DuplicateNodeError reports a route path declared more than once.
// Duplicate declarations are never silently merged.
type DuplicateNodeError struct {
	Path string
}

func (e *DuplicateNodeError) Error() string {
	return fmt.Sprintf("duplicate route node %q", e.Path)
}

// DanglingEdgeError reports a link referencing a route that was never
// declared. Missing names the unknown endpoint.
type DanglingEdgeError struct {
	Edge    model.LinkEdge
	Missing string
}

func (e *DanglingEdgeError) Error() string {
	return fmt.Sprintf("link %s -> %s references unknown route %q",
		e.Edge.From, e.Edge.To, e.Missing)
}

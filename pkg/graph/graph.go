package graph

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/perqvist/nav-analyzer/pkg/model"
)

// Graph is the immutable navigation graph: declared routes as nodes and
// navigation links as directed edges. It is constructed once by Build and
// never mutated afterwards; the analysis pipeline only reads from it.
type Graph struct {
	dg    *simple.DirectedGraph
	ids   map[string]int64
	paths map[int64]string
	nodes map[string]model.RouteNode

	// gonum simple graphs reject self loops, so links from a route to
	// itself are tracked here instead of in the backing graph.
	selfLinks map[string]bool

	edges []model.LinkEdge // deduplicated, insertion order
}

// HasNode reports whether a route with the given path is declared
func (g *Graph) HasNode(path string) bool {
	_, ok := g.nodes[path]
	return ok
}

// Node returns the declared route for a path
func (g *Graph) Node(path string) (model.RouteNode, bool) {
	n, ok := g.nodes[path]
	return n, ok
}

// Paths returns all declared route paths in sorted order
func (g *Graph) Paths() []string {
	paths := make([]string, 0, len(g.nodes))
	for p := range g.nodes {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// NodeCount returns the number of declared routes
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of links after deduplication
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Edges returns a copy of the deduplicated link list
func (g *Graph) Edges() []model.LinkEdge {
	out := make([]model.LinkEdge, len(g.edges))
	copy(out, g.edges)
	return out
}

// HasEdge reports whether a directed link from one route to another exists.
// Direction matters; a reverse link does not count.
func (g *Graph) HasEdge(from, to string) bool {
	if from == to {
		return g.selfLinks[from]
	}
	fromID, ok := g.ids[from]
	if !ok {
		return false
	}
	toID, ok := g.ids[to]
	if !ok {
		return false
	}
	return g.dg.HasEdgeFromTo(fromID, toID)
}

// Successors returns the targets of all outgoing links from a route
func (g *Graph) Successors(path string) []string {
	id, ok := g.ids[path]
	if !ok {
		return nil
	}

	var out []string
	iter := g.dg.From(id)
	for iter.Next() {
		out = append(out, g.paths[iter.Node().ID()])
	}
	if g.selfLinks[path] {
		out = append(out, path)
	}
	return out
}

// Predecessors returns the sources of all incoming links to a route
func (g *Graph) Predecessors(path string) []string {
	id, ok := g.ids[path]
	if !ok {
		return nil
	}

	var out []string
	iter := g.dg.To(id)
	for iter.Next() {
		out = append(out, g.paths[iter.Node().ID()])
	}
	if g.selfLinks[path] {
		out = append(out, path)
	}
	return out
}

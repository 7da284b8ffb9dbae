package graph

import (
	"gonum.org/v1/gonum/graph/simple"

	"github.com/perqvist/nav-analyzer/pkg/model"
)

type edgeKey struct {
	from, to string
	kind     model.LinkKind
}

// Build assembles an immutable Graph from extracted route and link facts.
//
// Duplicate route paths are a construction error, as is any link whose
// endpoint does not name a declared route. Exact-duplicate links (same from,
// to, and kind) are deduplicated silently since independent extractions of
// the same navigation element are expected. Runs in O(N + E).
func Build(nodes []model.RouteNode, edges []model.LinkEdge) (*Graph, error) {
	g := &Graph{
		dg:        simple.NewDirectedGraph(),
		ids:       make(map[string]int64, len(nodes)),
		paths:     make(map[int64]string, len(nodes)),
		nodes:     make(map[string]model.RouteNode, len(nodes)),
		selfLinks: make(map[string]bool),
	}

	var nextID int64
	for _, n := range nodes {
		if _, exists := g.nodes[n.Path]; exists {
			return nil, &DuplicateNodeError{Path: n.Path}
		}
		g.nodes[n.Path] = n
		g.ids[n.Path] = nextID
		g.paths[nextID] = n.Path
		g.dg.AddNode(simple.Node(nextID))
		nextID++
	}

	seen := make(map[edgeKey]bool, len(edges))
	for _, e := range edges {
		if !g.HasNode(e.From) {
			return nil, &DanglingEdgeError{Edge: e, Missing: e.From}
		}
		if !g.HasNode(e.To) {
			return nil, &DanglingEdgeError{Edge: e, Missing: e.To}
		}

		key := edgeKey{from: e.From, to: e.To, kind: e.Kind}
		if seen[key] {
			continue
		}
		seen[key] = true
		g.edges = append(g.edges, e)

		if e.From == e.To {
			g.selfLinks[e.From] = true
			continue
		}

		fromID, toID := g.ids[e.From], g.ids[e.To]
		if !g.dg.HasEdgeFromTo(fromID, toID) {
			g.dg.SetEdge(g.dg.NewEdge(g.dg.Node(fromID), g.dg.Node(toID)))
		}
	}

	return g, nil
}

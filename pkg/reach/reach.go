// Package reach classifies every route in a navigation graph as reachable,
// orphaned, or a dead-end relative to a set of entry points.
package reach

import (
	"context"
	"sort"

	"github.com/perqvist/nav-analyzer/pkg/graph"
	"github.com/perqvist/nav-analyzer/pkg/model"
)

// Analyze traverses the graph breadth-first from all entry points at once
// and partitions the node set:
//
//   - reachable: visited by the traversal and has at least one outgoing link
//     (or is an allowed terminal)
//   - orphans: never visited from any entry point
//   - deadEnds: visited but with no outgoing links, excluding terminals
//
// Entry points must name declared routes; a typo must not silently shrink
// the reachable set. Terminals that name unknown routes simply never match.
//
// The traversal is iterative and checks ctx at every node visit, so a caller
// embedding the engine in a deadline-bound service can abort adversarially
// large graphs; expiry surfaces as *AnalysisTimeoutError.
func Analyze(ctx context.Context, g *graph.Graph, entries, terminals []string) (*model.ReachabilityResult, error) {
	if len(entries) == 0 {
		return nil, &EmptyEntrySetError{}
	}

	visited := make(map[string]bool, g.NodeCount())
	queue := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !g.HasNode(entry) {
			return nil, &UnknownEntryPointError{Path: entry}
		}
		if !visited[entry] {
			visited[entry] = true
			queue = append(queue, entry)
		}
	}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, &AnalysisTimeoutError{Err: err}
		}

		current := queue[0]
		queue = queue[1:]

		for _, next := range g.Successors(current) {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	terminalSet := make(map[string]bool, len(terminals))
	for _, t := range terminals {
		terminalSet[t] = true
	}

	result := &model.ReachabilityResult{}
	for _, path := range g.Paths() {
		switch {
		case !visited[path]:
			result.Orphans = append(result.Orphans, path)
		case len(g.Successors(path)) == 0 && !terminalSet[path]:
			result.DeadEnds = append(result.DeadEnds, path)
		default:
			result.Reachable = append(result.Reachable, path)
		}
	}

	sort.Strings(result.Reachable)
	sort.Strings(result.Orphans)
	sort.Strings(result.DeadEnds)
	return result, nil
}

package analysis

import (
	"fmt"

	"github.com/perqvist/nav-analyzer/pkg/graph"
	"github.com/perqvist/nav-analyzer/pkg/model"
)

// InvariantViolationError reports that the reachable/orphan/dead-end sets do
// not form a partition of the node set. This is a defect in the engine, not
// in the input; it is never silently corrected.
type InvariantViolationError struct {
	Detail string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("internal invariant violated: %s", e.Detail)
}

// assemble packages the pipeline outputs into the terminal result, verifying
// on the way that every node lands in exactly one of the three sets.
func assemble(g *graph.Graph, r *model.ReachabilityResult, journeys []model.JourneyResult, healthScore float64) (*model.AnalysisResult, error) {
	membership := make(map[string]int, g.NodeCount())
	for _, sets := range [][]string{r.Reachable, r.Orphans, r.DeadEnds} {
		for _, path := range sets {
			membership[path]++
		}
	}

	for path, count := range membership {
		if count > 1 {
			return nil, &InvariantViolationError{
				Detail: fmt.Sprintf("node %q classified %d times", path, count),
			}
		}
		if !g.HasNode(path) {
			return nil, &InvariantViolationError{
				Detail: fmt.Sprintf("classified node %q is not in the graph", path),
			}
		}
	}
	for _, path := range g.Paths() {
		if membership[path] == 0 {
			return nil, &InvariantViolationError{
				Detail: fmt.Sprintf("node %q missing from classification", path),
			}
		}
	}

	return &model.AnalysisResult{
		NodeCount:      g.NodeCount(),
		EdgeCount:      g.EdgeCount(),
		Reachable:      r.Reachable,
		Orphans:        r.Orphans,
		DeadEnds:       r.DeadEnds,
		JourneyResults: journeys,
		HealthScore:    healthScore,
	}, nil
}

// Package analysis runs the navigation validation pipeline: graph build,
// reachability, journey validation, health scoring, result assembly.
package analysis

import (
	"context"
	"runtime"

	"github.com/perqvist/nav-analyzer/pkg/graph"
	"github.com/perqvist/nav-analyzer/pkg/journey"
	"github.com/perqvist/nav-analyzer/pkg/logging"
	"github.com/perqvist/nav-analyzer/pkg/model"
	"github.com/perqvist/nav-analyzer/pkg/reach"
	"github.com/perqvist/nav-analyzer/pkg/score"
)

// RunInput carries the extracted facts and declarations for one analysis run.
// A nil Journeys slice disables journey validation entirely; the scorer then
// omits the journey penalty term.
type RunInput struct {
	Nodes       []model.RouteNode
	Edges       []model.LinkEdge
	EntryPoints []string
	Terminals   []string
	Journeys    []model.Journey
}

// Run executes the pipeline strictly forward. Configuration errors and
// invariant violations abort with no partial result; journey findings are
// accumulated into the result, never raised.
func Run(ctx context.Context, in RunInput) (*model.AnalysisResult, error) {
	logger := logging.New("analysis")

	g, err := graph.Build(in.Nodes, in.Edges)
	if err != nil {
		return nil, err
	}
	logger.Debug("graph built", "nodes", g.NodeCount(), "edges", g.EdgeCount())

	reachability, err := reach.Analyze(ctx, g, in.EntryPoints, in.Terminals)
	if err != nil {
		return nil, err
	}
	logger.Debug("reachability computed",
		"reachable", len(reachability.Reachable),
		"orphans", len(reachability.Orphans),
		"deadEnds", len(reachability.DeadEnds))

	var journeyResults []model.JourneyResult
	if in.Journeys != nil {
		journeyResults = journey.ValidateParallel(g, in.Journeys, runtime.NumCPU())
		logger.Debug("journeys validated", "count", len(journeyResults))
	}

	avg := score.MeanCoverage(journeyResults)
	healthScore := score.Score(len(reachability.Orphans), len(reachability.DeadEnds), avg)

	result, err := assemble(g, reachability, journeyResults, healthScore)
	if err != nil {
		return nil, err
	}

	logger.Info("analysis complete",
		"nodes", result.NodeCount,
		"orphans", len(result.Orphans),
		"deadEnds", len(result.DeadEnds),
		"journeys", len(result.JourneyResults),
		"healthScore", result.HealthScore)
	return result, nil
}

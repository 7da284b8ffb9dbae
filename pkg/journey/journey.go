// Package journey validates declared user journeys against the navigation
// graph: every consecutive step pair must be backed by a directed edge.
package journey

import (
	"sync"

	"github.com/perqvist/nav-analyzer/pkg/graph"
	"github.com/perqvist/nav-analyzer/pkg/model"
)

// Validate checks each journey independently and returns one result per
// journey, in input order.
//
// A step naming an unknown route is a data-quality finding recorded with
// ReasonUnknownNode, never an error; one broken journey must not prevent
// reporting on the rest.
func Validate(g *graph.Graph, journeys []model.Journey) []model.JourneyResult {
	if len(journeys) == 0 {
		return nil
	}

	results := make([]model.JourneyResult, len(journeys))
	for i, j := range journeys {
		results[i] = validateOne(g, j)
	}
	return results
}

// ValidateParallel is Validate fanned out across worker goroutines. Journeys
// share no state, so results are written by index and the output is
// identical to the serial form.
func ValidateParallel(g *graph.Graph, journeys []model.Journey, workers int) []model.JourneyResult {
	if len(journeys) == 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > len(journeys) {
		workers = len(journeys)
	}

	results := make([]model.JourneyResult, len(journeys))
	indices := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				results[i] = validateOne(g, journeys[i])
			}
		}()
	}

	for i := range journeys {
		indices <- i
	}
	close(indices)
	wg.Wait()

	return results
}

func validateOne(g *graph.Graph, j model.Journey) model.JourneyResult {
	pairs := len(j.Steps) - 1
	satisfied := 0
	var missing []model.MissingLink

	for i := 0; i < pairs; i++ {
		from, to := j.Steps[i], j.Steps[i+1]

		switch {
		case !g.HasNode(from) || !g.HasNode(to):
			missing = append(missing, model.MissingLink{
				From:   from,
				To:     to,
				Reason: model.ReasonUnknownNode,
			})
		case !g.HasEdge(from, to):
			missing = append(missing, model.MissingLink{
				From:   from,
				To:     to,
				Reason: model.ReasonMissingEdge,
			})
		default:
			satisfied++
		}
	}

	coverage := float64(satisfied) / float64(pairs)
	status := model.JourneyPartial
	if satisfied == pairs {
		status = model.JourneyComplete
	}

	return model.JourneyResult{
		Name:         j.Name,
		Status:       status,
		Coverage:     coverage,
		MissingLinks: missing,
	}
}

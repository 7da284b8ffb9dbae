// Package score computes the composite 0-10 navigation health score.
package score

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/perqvist/nav-analyzer/pkg/model"
)

const (
	base = 10.0

	orphanPenaltyPerNode = 0.5
	orphanPenaltyCap     = 3.0

	deadEndPenaltyPerNode = 0.2
	deadEndPenaltyCap     = 1.0

	journeyPenaltyWeight = 2.0
)

// Score applies the fixed deduction formula. avgJourneyCoverage is nil when
// no journey registry was supplied, in which case the journey term is
// omitted; this keeps one formula instead of a branching special case.
//
// Deterministic: identical inputs always produce identical output.
func Score(orphans, deadEnds int, avgJourneyCoverage *float64) float64 {
	orphanPenalty := math.Min(float64(orphans)*orphanPenaltyPerNode, orphanPenaltyCap)
	deadEndPenalty := math.Min(float64(deadEnds)*deadEndPenaltyPerNode, deadEndPenaltyCap)

	journeyPenalty := 0.0
	if avgJourneyCoverage != nil {
		journeyPenalty = (1.0 - *avgJourneyCoverage) * journeyPenaltyWeight
	}

	return math.Max(0.0, base-orphanPenalty-deadEndPenalty-journeyPenalty)
}

// MeanCoverage returns the average coverage across journey results, or nil
// when there are none.
func MeanCoverage(results []model.JourneyResult) *float64 {
	if len(results) == 0 {
		return nil
	}

	coverages := make([]float64, len(results))
	for i, r := range results {
		coverages[i] = r.Coverage
	}

	mean := floats.Sum(coverages) / float64(len(coverages))
	return &mean
}

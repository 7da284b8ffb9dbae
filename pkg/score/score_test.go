package score

import (
	"math"
	"testing"

	"github.com/perqvist/nav-analyzer/pkg/model"
)

func ptr(f float64) *float64 { return &f }

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		orphans  int
		deadEnds int
		avg      *float64
		want     float64
	}{
		{"perfect graph", 0, 0, ptr(1.0), 10.0},
		{"no journeys omits the journey term", 0, 0, nil, 10.0},
		{"orphan penalty capped at 3.0", 6, 0, nil, 7.0},
		{"hundred orphans still capped", 100, 0, nil, 7.0},
		{"dead-end penalty capped at 1.0", 0, 5, nil, 9.0},
		{"hundred dead-ends still capped", 0, 100, nil, 9.0},
		{"floor clamp at zero", 100, 100, ptr(0.0), 0.0},
		{"one orphan", 1, 0, nil, 9.5},
		{"one dead-end", 0, 1, nil, 9.8},
		{"half journey coverage", 0, 0, ptr(0.5), 9.0},
		{"combined penalties", 2, 3, ptr(0.75), 7.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.orphans, tt.deadEnds, tt.avg)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Score(%d, %d, %v) = %v, want %v",
					tt.orphans, tt.deadEnds, tt.avg, got, tt.want)
			}
		})
	}
}

func TestScoreDeterministic(t *testing.T) {
	first := Score(3, 2, ptr(0.6))
	for i := 0; i < 100; i++ {
		if got := Score(3, 2, ptr(0.6)); got != first {
			t.Fatalf("Score() not deterministic: %v != %v", got, first)
		}
	}
}

func TestMeanCoverage(t *testing.T) {
	if got := MeanCoverage(nil); got != nil {
		t.Errorf("MeanCoverage(nil) = %v, want nil", got)
	}

	results := []model.JourneyResult{
		{Name: "a", Coverage: 1.0},
		{Name: "b", Coverage: 0.5},
		{Name: "c", Coverage: 0.0},
	}

	got := MeanCoverage(results)
	if got == nil {
		t.Fatal("MeanCoverage() = nil, want value")
	}
	if math.Abs(*got-0.5) > 1e-9 {
		t.Errorf("MeanCoverage() = %v, want 0.5", *got)
	}
}

package output

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/perqvist/nav-analyzer/pkg/model"
)

// PrintAnalysisReport prints a colorized navigation health report to stdout
func PrintAnalysisReport(factsPath string, res *model.AnalysisResult) {
	bold := color.New(color.Bold)
	red := color.New(color.FgRed)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	cyan := color.New(color.FgCyan)

	bold.Println("Navigation Graph - Health Report")
	bold.Println("================================")
	fmt.Printf("Facts: %s\n", factsPath)
	fmt.Printf("Routes: %d, links: %d\n", res.NodeCount, res.EdgeCount)
	fmt.Printf("Reachable: %d route(s)\n", len(res.Reachable))
	fmt.Println()

	if len(res.Orphans) > 0 {
		red.Printf("ORPHANED ROUTES (%d):\n", len(res.Orphans))
		for _, path := range res.Orphans {
			yellow.Printf("  %s\n", path)
			fmt.Printf("    Suggestion: link it from a reachable page or remove the route\n")
		}
		fmt.Println()
	} else {
		green.Println("No orphaned routes")
	}

	if len(res.DeadEnds) > 0 {
		yellow.Printf("DEAD-END ROUTES (%d):\n", len(res.DeadEnds))
		for _, path := range res.DeadEnds {
			yellow.Printf("  %s\n", path)
			fmt.Printf("    Suggestion: add outbound navigation or declare it a terminal\n")
		}
		fmt.Println()
	} else {
		green.Println("No dead-end routes")
	}

	if len(res.JourneyResults) > 0 {
		fmt.Println()
		bold.Println("JOURNEYS:")
		for _, jr := range res.JourneyResults {
			if jr.Status == model.JourneyComplete {
				green.Printf("  ✓ %s (100%%)\n", jr.Name)
				continue
			}
			red.Printf("  ✗ %s (%.0f%%)\n", jr.Name, jr.Coverage*100)
			for _, ml := range jr.MissingLinks {
				if ml.Reason == model.ReasonUnknownNode {
					cyan.Printf("      %s -> %s (unknown route)\n", ml.From, ml.To)
				} else {
					cyan.Printf("      %s -> %s (no link)\n", ml.From, ml.To)
				}
			}
		}
	}

	fmt.Println()
	scoreColor := green
	if res.HealthScore < 9.0 {
		scoreColor = yellow
	}
	if res.HealthScore < 7.0 {
		scoreColor = red
	}
	scoreColor.Printf("Health score: %.1f/10\n", res.HealthScore)
}

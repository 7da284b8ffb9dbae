package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/perqvist/nav-analyzer/pkg/analysis"
	"github.com/perqvist/nav-analyzer/pkg/config"
	"github.com/perqvist/nav-analyzer/pkg/logging"
	"github.com/perqvist/nav-analyzer/pkg/model"
	"github.com/perqvist/nav-analyzer/pkg/output"
	"github.com/perqvist/nav-analyzer/pkg/registry"
	"github.com/perqvist/nav-analyzer/pkg/routes"
	"github.com/perqvist/nav-analyzer/pkg/watcher"
	"github.com/perqvist/nav-analyzer/pkg/web"
)

// Exit codes: 0 = healthy (no orphans, all journeys complete),
// 1 = findings present, 2 = configuration or internal error.
const (
	exitOK       = 0
	exitFindings = 1
	exitError    = 2
)

func main() {
	f := pflag.NewFlagSet("nav-analyzer", pflag.ExitOnError)
	f.String("facts", "routes.json", "Path to the extracted route/link facts (JSON)")
	f.String("registry", "", "Path to the journey registry (YAML); defaults apply when unset")
	f.StringSlice("entry", nil, "Override entry points (repeatable)")
	f.StringSlice("terminal", nil, "Override allowed terminals (repeatable)")
	f.Bool("json", false, "Print the analysis result as JSON instead of a report")
	f.Bool("web", false, "Start web server instead of printing to console")
	f.Int("port", 8080, "Port for web server (only used with --web)")
	f.Bool("watch", false, "Re-run analysis when input files change (only used with --web)")
	f.Int("timeout", 0, "Analysis deadline in seconds (0 = none)")
	f.CountP("verbose", "v", "Increase log verbosity")
	f.Bool("log-json", false, "Emit logs as JSON")
	_ = f.Parse(os.Args[1:])

	cfg, err := config.Load(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}

	level := slog.LevelInfo
	if cfg.Verbosity > 0 {
		level = slog.LevelDebug
	}
	if cfg.LogJSON {
		logging.SetJSONOutput(level)
	} else {
		logging.SetLevel(level)
	}

	if cfg.WebMode {
		runWeb(cfg)
		return
	}

	if cfg.Watch {
		logging.Warn("--watch has no effect without --web")
	}
	os.Exit(runCLI(cfg))
}

func runCLI(cfg *config.Config) int {
	res, err := runAnalysis(context.Background(), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitError
	}

	if cfg.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return exitError
		}
	} else {
		output.PrintAnalysisReport(cfg.Facts, res)
	}

	if len(res.Orphans) > 0 || !res.AllJourneysComplete() {
		return exitFindings
	}
	return exitOK
}

func runWeb(cfg *config.Config) {
	server := web.NewServer()

	refresh := func(reason string) {
		logging.Info("starting analysis", "reason", reason)
		_ = server.PublishStatus("analyzing", "Running navigation analysis...", 1, 2)

		res, err := runAnalysis(context.Background(), cfg)
		if err != nil {
			logging.Error("analysis failed", "reason", reason, "error", err)
			_ = server.PublishStatus("error", err.Error(), 1, 2)
			return
		}

		server.SetResult(res)
		_ = server.PublishStatus("ready", "Analysis complete", 2, 2)
	}

	go refresh("initial analysis")

	if cfg.Watch {
		fw, err := watcher.NewFileWatcher(cfg.Facts, cfg.Registry)
		if err != nil {
			logging.Fatal("failed to start watcher", "error", err)
		}
		fw.Start(context.Background())

		go func() {
			for event := range fw.Events() {
				logging.Info("input files changed", "paths", fmt.Sprintf("%v", event.Paths))
				refresh("input files changed")
			}
		}()
	}

	if err := server.Start(cfg.Port); err != nil {
		logging.Fatal("web server failed", "error", err)
	}
}

// runAnalysis loads the facts and declarations named by the config and runs
// the pipeline once.
func runAnalysis(ctx context.Context, cfg *config.Config) (*model.AnalysisResult, error) {
	in, err := loadInput(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.TimeoutS > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.TimeoutS)*time.Second)
		defer cancel()
	}

	return analysis.Run(ctx, in)
}

func loadInput(cfg *config.Config) (analysis.RunInput, error) {
	facts, err := routes.LoadFacts(cfg.Facts)
	if err != nil {
		return analysis.RunInput{}, err
	}

	reg := registry.Default()
	if cfg.Registry != "" {
		reg, err = registry.Load(cfg.Registry)
		if err != nil {
			return analysis.RunInput{}, err
		}
	}

	if len(cfg.Entry) > 0 {
		reg.EntryPoints = cfg.Entry
	}
	if len(cfg.Terminal) > 0 {
		reg.Terminals = cfg.Terminal
	}

	return analysis.RunInput{
		Nodes:       facts.Routes,
		Edges:       facts.Links,
		EntryPoints: reg.EntryPoints,
		Terminals:   reg.Terminals,
		Journeys:    reg.Journeys,
	}, nil
}

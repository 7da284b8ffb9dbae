package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config holds all configuration for the application
type Config struct {
	Facts     string   `koanf:"facts"`    // Path to the extracted route/link facts (JSON)
	Registry  string   `koanf:"registry"` // Path to the journey registry (YAML); "" = convention defaults
	Entry     []string `koanf:"entry"`    // Entry point overrides
	Terminal  []string `koanf:"terminal"` // Allowed terminal overrides
	JSON      bool     `koanf:"json"`     // Emit the raw result as JSON instead of the console report
	WebMode   bool     `koanf:"web"`
	Port      int      `koanf:"port"`
	Watch     bool     `koanf:"watch"`
	TimeoutS  int      `koanf:"timeout"` // Analysis deadline in seconds; 0 = none
	LogJSON   bool     `koanf:"log-json"`
	Verbosity int      `koanf:"verbose"`
}

// Load loads configuration from defaults, config file, environment variables,
// and flags. Priority: Flags > Env > Config File > Defaults
func Load(f *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	defaults := map[string]interface{}{
		"facts":    "routes.json",
		"registry": "",
		"json":     false,
		"web":      false,
		"port":     8080,
		"watch":    false,
		"timeout":  0,
		"log-json": false,
		"verbose":  0,
	}
	if err := k.Load(makeMapProvider(defaults), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file (optional) - nav-analyzer.toml
	_ = k.Load(file.Provider("nav-analyzer.toml"), toml.Parser())

	// 3. Environment variables, prefix NAV_ANALYZER_
	// (e.g. NAV_ANALYZER_PORT=9090)
	if err := k.Load(env.Provider("NAV_ANALYZER_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(
			strings.TrimPrefix(s, "NAV_ANALYZER_")), "_", "-")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags
	if f != nil {
		if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Helper to use a map as a provider
type mapProvider struct {
	m map[string]interface{}
}

func makeMapProvider(m map[string]interface{}) *mapProvider {
	return &mapProvider{m: m}
}

func (p *mapProvider) Read() (map[string]interface{}, error) {
	return p.m, nil
}

func (p *mapProvider) ReadBytes() ([]byte, error) {
	return nil, fmt.Errorf("not implemented")
}

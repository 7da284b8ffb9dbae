// Package registry loads the human-authored navigation declarations: entry
// points, allowed terminals, and named journeys.
package registry

import (
	"fmt"
	"sort"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/perqvist/nav-analyzer/pkg/model"
)

// Registry holds the traversal declarations for one analysis run. Journeys
// is nil when the registry declares none, which disables journey validation
// downstream.
type Registry struct {
	EntryPoints []string
	Terminals   []string
	Journeys    []model.Journey
}

// Default returns the framework-convention declarations used when no
// registry file is supplied: "/" as sole entry point and the usual exit and
// error pages as allowed terminals.
func Default() *Registry {
	return &Registry{
		EntryPoints: []string{"/"},
		Terminals:   []string{"/logout", "/error", "/404", "/500"},
	}
}

// Load reads a YAML registry file:
//
//	entrypoints: ["/", "/admin"]
//	terminals: ["/logout"]
//	journeys:
//	  checkout: ["/", "/cart", "/checkout"]
//
// Sections omitted from the file keep their convention defaults. Journeys
// shorter than two steps are rejected here so the validator never sees a
// journey with zero step pairs.
func Load(path string) (*Registry, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading journey registry %s: %w", path, err)
	}

	var raw struct {
		EntryPoints []string            `koanf:"entrypoints"`
		Terminals   []string            `koanf:"terminals"`
		Journeys    map[string][]string `koanf:"journeys"`
	}
	if err := k.Unmarshal("", &raw); err != nil {
		return nil, fmt.Errorf("parsing journey registry %s: %w", path, err)
	}

	reg := Default()
	if len(raw.EntryPoints) > 0 {
		reg.EntryPoints = raw.EntryPoints
	}
	if k.Exists("terminals") {
		reg.Terminals = raw.Terminals
	}

	if raw.Journeys != nil {
		names := make([]string, 0, len(raw.Journeys))
		for name := range raw.Journeys {
			names = append(names, name)
		}
		sort.Strings(names)

		reg.Journeys = make([]model.Journey, 0, len(names))
		for _, name := range names {
			steps := raw.Journeys[name]
			if len(steps) < 2 {
				return nil, fmt.Errorf("journey registry %s: journey %q needs at least 2 steps, has %d",
					path, name, len(steps))
			}
			reg.Journeys = append(reg.Journeys, model.Journey{Name: name, Steps: steps})
		}
	}

	return reg, nil
}

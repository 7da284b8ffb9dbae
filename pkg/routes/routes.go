// Package routes loads the normalized route and link facts produced by an
// upstream extractor. The engine never parses application source itself; it
// consumes these already-extracted facts.
package routes

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/perqvist/nav-analyzer/pkg/model"
)

// Facts is the extractor's output document: the declared routes and the
// navigation links between them.
type Facts struct {
	Routes []model.RouteNode `json:"routes"`
	Links  []model.LinkEdge  `json:"links"`
}

// LoadFacts reads and validates a facts document from a JSON file. Omitted
// kinds default to static routes and navigational links; an unrecognized
// kind is a load error, not a silent fallback.
func LoadFacts(path string) (*Facts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading route facts: %w", err)
	}

	var facts Facts
	if err := json.Unmarshal(data, &facts); err != nil {
		return nil, fmt.Errorf("parsing route facts %s: %w", path, err)
	}

	for i := range facts.Routes {
		r := &facts.Routes[i]
		if r.Path == "" {
			return nil, fmt.Errorf("route facts %s: route %d has no path", path, i)
		}
		switch r.Kind {
		case "":
			r.Kind = model.RouteStatic
		case model.RouteStatic, model.RouteDynamic:
		default:
			return nil, fmt.Errorf("route facts %s: route %q has unknown kind %q", path, r.Path, r.Kind)
		}
	}

	for i := range facts.Links {
		l := &facts.Links[i]
		if l.From == "" || l.To == "" {
			return nil, fmt.Errorf("route facts %s: link %d missing from/to", path, i)
		}
		switch l.Kind {
		case "":
			l.Kind = model.LinkNavigational
		case model.LinkNavigational, model.LinkProgrammatic:
		default:
			return nil, fmt.Errorf("route facts %s: link %s -> %s has unknown kind %q", path, l.From, l.To, l.Kind)
		}
	}

	return &facts, nil
}

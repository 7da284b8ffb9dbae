package graph

import (
	"errors"
	"testing"

	"github.com/perqvist/nav-analyzer/pkg/model"
)

func routes(paths ...string) []model.RouteNode {
	nodes := make([]model.RouteNode, 0, len(paths))
	for _, p := range paths {
		nodes = append(nodes, model.RouteNode{Path: p, Kind: model.RouteStatic})
	}
	return nodes
}

func link(from, to string) model.LinkEdge {
	return model.LinkEdge{From: from, To: to, Kind: model.LinkNavigational}
}

func TestBuild(t *testing.T) {
	g, err := Build(routes("/", "/login", "/dashboard"), []model.LinkEdge{
		link("/", "/login"),
		link("/login", "/dashboard"),
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if g.NodeCount() != 3 {
		t.Errorf("NodeCount() = %d, want 3", g.NodeCount())
	}
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount() = %d, want 2", g.EdgeCount())
	}

	if !g.HasEdge("/", "/login") {
		t.Error("expected edge / -> /login")
	}
	if g.HasEdge("/login", "/") {
		t.Error("reverse edge /login -> / should not exist")
	}
}

func TestBuildDuplicateNode(t *testing.T) {
	_, err := Build(routes("/", "/login", "/"), nil)
	if err == nil {
		t.Fatal("Build() should reject duplicate node paths")
	}

	var dup *DuplicateNodeError
	if !errors.As(err, &dup) {
		t.Fatalf("error = %v, want *DuplicateNodeError", err)
	}
	if dup.Path != "/" {
		t.Errorf("DuplicateNodeError.Path = %q, want %q", dup.Path, "/")
	}
}

func TestBuildDanglingEdge(t *testing.T) {
	tests := []struct {
		name        string
		edge        model.LinkEdge
		wantMissing string
	}{
		{"unknown from", link("/ghost", "/"), "/ghost"},
		{"unknown to", link("/", "/ghost"), "/ghost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(routes("/"), []model.LinkEdge{tt.edge})
			if err == nil {
				t.Fatal("Build() should reject dangling edges")
			}

			var dangling *DanglingEdgeError
			if !errors.As(err, &dangling) {
				t.Fatalf("error = %v, want *DanglingEdgeError", err)
			}
			if dangling.Missing != tt.wantMissing {
				t.Errorf("Missing = %q, want %q", dangling.Missing, tt.wantMissing)
			}
		})
	}
}

func TestBuildDeduplicatesEdges(t *testing.T) {
	g, err := Build(routes("/", "/login"), []model.LinkEdge{
		link("/", "/login"),
		link("/", "/login"),
		{From: "/", To: "/login", Kind: model.LinkProgrammatic},
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	// Exact duplicates collapse; a different kind is a distinct fact.
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount() = %d, want 2", g.EdgeCount())
	}
}

func TestSelfLink(t *testing.T) {
	g, err := Build(routes("/", "/refresh"), []model.LinkEdge{
		link("/", "/refresh"),
		link("/refresh", "/refresh"),
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if !g.HasEdge("/refresh", "/refresh") {
		t.Error("expected self link /refresh -> /refresh")
	}

	succ := g.Successors("/refresh")
	if len(succ) != 1 || succ[0] != "/refresh" {
		t.Errorf("Successors(/refresh) = %v, want [/refresh]", succ)
	}
}

func TestSuccessorsAndPredecessors(t *testing.T) {
	g, err := Build(routes("/", "/a", "/b"), []model.LinkEdge{
		link("/", "/a"),
		link("/", "/b"),
		link("/a", "/b"),
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	succ := g.Successors("/")
	if len(succ) != 2 {
		t.Errorf("Successors(/) = %v, want 2 entries", succ)
	}

	pred := g.Predecessors("/b")
	predSet := make(map[string]bool)
	for _, p := range pred {
		predSet[p] = true
	}
	if !predSet["/"] || !predSet["/a"] {
		t.Errorf("Predecessors(/b) = %v, want / and /a", pred)
	}

	if got := g.Successors("/unknown"); got != nil {
		t.Errorf("Successors(/unknown) = %v, want nil", got)
	}
}

func TestPathsSorted(t *testing.T) {
	g, err := Build(routes("/z", "/a", "/m"), nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	paths := g.Paths()
	want := []string{"/a", "/m", "/z"}
	for i, p := range want {
		if paths[i] != p {
			t.Fatalf("Paths() = %v, want %v", paths, want)
		}
	}
}

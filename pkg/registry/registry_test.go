package registry

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/perqvist/nav-analyzer/pkg/model"
)

func writeRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "journeys.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	reg := Default()

	if !reflect.DeepEqual(reg.EntryPoints, []string{"/"}) {
		t.Errorf("EntryPoints = %v, want [/]", reg.EntryPoints)
	}
	if !reflect.DeepEqual(reg.Terminals, []string{"/logout", "/error", "/404", "/500"}) {
		t.Errorf("Terminals = %v", reg.Terminals)
	}
	if reg.Journeys != nil {
		t.Errorf("Journeys = %v, want nil", reg.Journeys)
	}
}

func TestLoad(t *testing.T) {
	path := writeRegistry(t, `
entrypoints:
  - /
  - /admin
terminals:
  - /logout
journeys:
  checkout:
    - /
    - /cart
    - /checkout
  auth:
    - /login
    - /dashboard
`)

	reg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !reflect.DeepEqual(reg.EntryPoints, []string{"/", "/admin"}) {
		t.Errorf("EntryPoints = %v", reg.EntryPoints)
	}
	if !reflect.DeepEqual(reg.Terminals, []string{"/logout"}) {
		t.Errorf("Terminals = %v", reg.Terminals)
	}

	// Journeys come back sorted by name for reproducible output.
	want := []model.Journey{
		{Name: "auth", Steps: []string{"/login", "/dashboard"}},
		{Name: "checkout", Steps: []string{"/", "/cart", "/checkout"}},
	}
	if !reflect.DeepEqual(reg.Journeys, want) {
		t.Errorf("Journeys = %v, want %v", reg.Journeys, want)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeRegistry(t, `
journeys:
  auth:
    - /login
    - /dashboard
`)

	reg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !reflect.DeepEqual(reg.EntryPoints, []string{"/"}) {
		t.Errorf("EntryPoints = %v, want default [/]", reg.EntryPoints)
	}
	if len(reg.Terminals) != 4 {
		t.Errorf("Terminals = %v, want the 4 defaults", reg.Terminals)
	}
}

func TestLoadExplicitlyEmptyTerminals(t *testing.T) {
	path := writeRegistry(t, `
terminals: []
`)

	reg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// An explicit empty list overrides the defaults.
	if len(reg.Terminals) != 0 {
		t.Errorf("Terminals = %v, want empty", reg.Terminals)
	}
}

func TestLoadRejectsShortJourney(t *testing.T) {
	path := writeRegistry(t, `
journeys:
  stub:
    - /only-step
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() should reject a single-step journey")
	}
	if !strings.Contains(err.Error(), `journey "stub"`) {
		t.Errorf("error = %v, want journey name in message", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() should fail on a missing file")
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/commitgraph/pkg/errors"
)

func TestParse(t *testing.T) {
	f, err := Parse(`
[layout]
orientation = "horizontal"
step_lane = 16
scale = 2
scale_rule = "uniform"

[cache]
ttl = "1h"

[server]
addr = "127.0.0.1:9000"
`)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if f.Layout.Orientation != Horizontal {
		t.Errorf("Orientation = %q, want horizontal", f.Layout.Orientation)
	}
	if f.Layout.StepLane != 16 {
		t.Errorf("StepLane = %v, want 16", f.Layout.StepLane)
	}
	if f.Layout.StepPrimary != DefaultStepPrimary {
		t.Errorf("StepPrimary = %v, want default", f.Layout.StepPrimary)
	}
	if f.Layout.ScaleRule != ScaleRuleUniform {
		t.Errorf("ScaleRule = %q, want uniform", f.Layout.ScaleRule)
	}
	if f.Cache.CacheTTL() != time.Hour {
		t.Errorf("CacheTTL() = %v, want 1h", f.Cache.CacheTTL())
	}
	if f.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("Addr = %q", f.Server.Addr)
	}
}

func TestParseEmpty(t *testing.T) {
	f, err := Parse("")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if f.Layout != Default() {
		t.Errorf("Layout = %+v, want defaults", f.Layout)
	}
	if f.Cache.CacheTTL() != DefaultCacheTTL {
		t.Errorf("CacheTTL() = %v, want default", f.Cache.CacheTTL())
	}
	if f.Server.Addr != DefaultAddr {
		t.Errorf("Addr = %q, want default", f.Server.Addr)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", "[layout\n"},
		{"unknown key", "[layout]\ncolour = \"red\"\n"},
		{"invalid value", "[layout]\norientation = \"sideways\"\n"},
		{"bad duration", "[cache]\nttl = \"soon\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Parse() error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "commitgraph.toml")
	if err := os.WriteFile(path, []byte("[layout]\ndot_radius = 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if f.Layout.DotRadius != 4 {
		t.Errorf("DotRadius = %v, want 4", f.Layout.DotRadius)
	}

	_, err = Load(filepath.Join(dir, "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v, want FILE_NOT_FOUND", err)
	}
}

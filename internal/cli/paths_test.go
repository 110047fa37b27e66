package cli

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/matzehuels/commitgraph/pkg/config"
)

func TestCacheDir(t *testing.T) {
	t.Run("home", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CACHE_HOME", "")
		t.Setenv("HOME", home)

		dir, err := cacheDir()
		if err != nil {
			t.Fatalf("cacheDir() error: %v", err)
		}
		if want := filepath.Join(home, ".cache", appName); dir != want {
			t.Errorf("cacheDir() = %q, want %q", dir, want)
		}
	})

	t.Run("xdg", func(t *testing.T) {
		t.Setenv("XDG_CACHE_HOME", "/tmp/custom-cache")
		dir, err := cacheDir()
		if err != nil {
			t.Fatalf("cacheDir() error: %v", err)
		}
		if want := filepath.Join("/tmp/custom-cache", appName); dir != want {
			t.Errorf("cacheDir() = %q, want %q", dir, want)
		}
	})

	t.Run("config override", func(t *testing.T) {
		dir, err := cacheDirFor(config.Cache{Dir: "/srv/cache"})
		if err != nil || dir != "/srv/cache" {
			t.Errorf("cacheDirFor() = %q, %v", dir, err)
		}
	})
}

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		output  string
		formats []string
		want    map[string]string
	}{
		{"default", "data/history.json", "", []string{"png"}, map[string]string{"png": "data/history.png"}},
		{"several", "history.yaml", "", []string{"png", "svg"}, map[string]string{"png": "history.png", "svg": "history.svg"}},
		{"exact", "history.json", "out/graph.image", []string{"png"}, map[string]string{"png": "out/graph.image"}},
		{"base", "history.json", "out/graph.png", []string{"png", "json"}, map[string]string{"png": "out/graph.png", "json": "out/graph.json"}},
		{"stdin", stdinArg, "", []string{"svg"}, map[string]string{"svg": "commitgraph.svg"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputPaths(tt.input, tt.output, tt.formats); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("outputPaths() = %v, want %v", got, tt.want)
			}
		})
	}
}

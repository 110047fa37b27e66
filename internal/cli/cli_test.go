package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/matzehuels/commitgraph/pkg/config"
	"github.com/matzehuels/commitgraph/pkg/errors"
	"github.com/matzehuels/commitgraph/pkg/render/palette"
	"github.com/matzehuels/commitgraph/pkg/render/sink"
)

const twoCommits = `[["a",[0,0],[[0,0,0]]],["b",[0,0],[]]]`

// execute runs the root command with args and returns status output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	var out bytes.Buffer
	prev := stdout
	stdout = &out
	t.Cleanup(func() { stdout = prev })

	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(io.Discard)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "history.json", twoCommits)

	if _, err := execute(t, "render", input, "-f", "png,svg", "--no-cache"); err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, name := range []string{"history.png", "history.svg"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("%s not written: %v", name, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

func TestRenderConfigLayering(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "history.json", twoCommits)
	cfgPath := writeFile(t, dir, "commitgraph.toml", `
[layout]
step_lane = 10
orientation = "horizontal"
`)
	output := filepath.Join(dir, "graph.json")

	_, err := execute(t, "render", input, "-f", "json", "-o", output,
		"--config", cfgPath, "--orientation", "vertical", "--no-cache")
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	var doc sink.Output
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode output: %v", err)
	}

	if doc.Layout.StepLane != 10 {
		t.Errorf("StepLane = %v, want 10 from config file", doc.Layout.StepLane)
	}
	if doc.Layout.Orientation != config.Vertical {
		t.Errorf("Orientation = %q, want flag value %q", doc.Layout.Orientation, config.Vertical)
	}
	if doc.Layout.StepPrimary != config.DefaultStepPrimary {
		t.Errorf("StepPrimary = %v, want default %v", doc.Layout.StepPrimary, config.DefaultStepPrimary)
	}
	if doc.Dimensions.Width != 15 || doc.Dimensions.Height != 80 {
		t.Errorf("Dimensions = %vx%v, want 15x80", doc.Dimensions.Width, doc.Dimensions.Height)
	}
	if doc.Commits != 2 || doc.BranchCount != 1 {
		t.Errorf("Commits = %d, BranchCount = %d, want 2, 1", doc.Commits, doc.BranchCount)
	}
}

func TestRenderCommandErrors(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "history.json", twoCommits)

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"missing file", []string{"render", filepath.Join(dir, "nope.json"), "--no-cache"}, errors.ErrCodeFileNotFound},
		{"bad format", []string{"render", input, "-f", "gif", "--no-cache"}, errors.ErrCodeInvalidFormat},
		{"bad orientation", []string{"render", input, "--orientation", "diagonal", "--no-cache"}, errors.ErrCodeInvalidConfig},
		{"bad step", []string{"render", input, "--step-lane=-1", "--no-cache"}, errors.ErrCodeInvalidConfig},
		{"infinite step", []string{"render", input, "-f", "svg", "--step-primary=Inf", "--no-cache"}, errors.ErrCodeInvalidConfig},
		{"watch stdin", []string{"render", stdinArg, "--watch", "--no-cache"}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %q, want %q (err: %v)", got, tt.code, err)
			}
		})
	}
}

func TestPaletteJSON(t *testing.T) {
	out, err := execute(t, "palette", "--json")
	if err != nil {
		t.Fatalf("palette: %v", err)
	}

	var hex []string
	if err := json.Unmarshal([]byte(out), &hex); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(hex) != palette.Default.Len() {
		t.Fatalf("len = %d, want %d", len(hex), palette.Default.Len())
	}
	if hex[0] != "#e11d21" {
		t.Errorf("hex[0] = %q, want #e11d21", hex[0])
	}
}

func TestCachePath(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "commitgraph.toml", "[cache]\ndir = \"/srv/commitgraph\"\n")

	out, err := execute(t, "cache", "path", "--config", cfgPath)
	if err != nil {
		t.Fatalf("cache path: %v", err)
	}
	if out != "/srv/commitgraph\n" {
		t.Errorf("output = %q, want /srv/commitgraph", out)
	}
}

func TestRelevant(t *testing.T) {
	target, _ := filepath.Abs("history.json")

	tests := []struct {
		name string
		ev   fsnotify.Event
		want bool
	}{
		{"write", fsnotify.Event{Name: "history.json", Op: fsnotify.Write}, true},
		{"create", fsnotify.Event{Name: target, Op: fsnotify.Create}, true},
		{"rename", fsnotify.Event{Name: target, Op: fsnotify.Rename}, true},
		{"chmod", fsnotify.Event{Name: target, Op: fsnotify.Chmod}, false},
		{"remove", fsnotify.Event{Name: target, Op: fsnotify.Remove}, false},
		{"other file", fsnotify.Event{Name: "other.json", Op: fsnotify.Write}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := relevant(tt.ev, target); got != tt.want {
				t.Errorf("relevant() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWatchLoop(t *testing.T) {
	target, _ := filepath.Abs("history.json")

	t.Run("debounce", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		events := make(chan fsnotify.Event)
		fired := make(chan struct{}, 10)
		done := make(chan error, 1)
		go func() {
			done <- watchLoop(ctx, events, nil, target, 20*time.Millisecond, func() { fired <- struct{}{} }, func(error) {})
		}()

		for range 3 {
			events <- fsnotify.Event{Name: target, Op: fsnotify.Write}
		}
		events <- fsnotify.Event{Name: "other.json", Op: fsnotify.Write}

		select {
		case <-fired:
		case <-time.After(2 * time.Second):
			t.Fatal("fire not called")
		}
		time.Sleep(60 * time.Millisecond)
		if n := len(fired); n != 0 {
			t.Errorf("fire called %d extra times", n)
		}

		cancel()
		if err := <-done; err != nil {
			t.Errorf("watchLoop() = %v, want nil after cancel", err)
		}
	})

	t.Run("ignored events", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		events := make(chan fsnotify.Event, 2)
		events <- fsnotify.Event{Name: target, Op: fsnotify.Chmod}
		events <- fsnotify.Event{Name: "other.json", Op: fsnotify.Write}

		var calls int
		done := make(chan error, 1)
		go func() {
			done <- watchLoop(ctx, events, nil, target, 5*time.Millisecond, func() { calls++ }, func(error) {})
		}()
		time.Sleep(50 * time.Millisecond)
		cancel()
		if err := <-done; err != nil {
			t.Fatalf("watchLoop() = %v", err)
		}
		if calls != 0 {
			t.Errorf("fire called %d times, want 0", calls)
		}
	})

	t.Run("watcher errors", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		errs := make(chan error, 1)
		errs <- errors.New(errors.ErrCodeInternal, "overflow")

		got := make(chan error, 1)
		done := make(chan error, 1)
		go func() {
			done <- watchLoop(ctx, nil, errs, target, time.Millisecond, func() {}, func(err error) { got <- err })
		}()
		select {
		case err := <-got:
			if err == nil {
				t.Error("onError got nil")
			}
		case <-time.After(2 * time.Second):
			t.Fatal("onError not called")
		}
		cancel()
		<-done
	})

	t.Run("closed", func(t *testing.T) {
		events := make(chan fsnotify.Event)
		close(events)
		err := watchLoop(context.Background(), events, nil, target, time.Millisecond, func() {}, func(error) {})
		if err == nil {
			t.Error("watchLoop() = nil, want error for closed watcher")
		}
	})
}

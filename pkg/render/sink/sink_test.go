package sink

import (
	"bytes"
	"encoding/json"
	"image/png"
	"strings"
	"testing"

	"github.com/matzehuels/commitgraph/pkg/config"
	"github.com/matzehuels/commitgraph/pkg/errors"
	"github.com/matzehuels/commitgraph/pkg/graph"
	"github.com/matzehuels/commitgraph/pkg/render/canvas"
	"github.com/matzehuels/commitgraph/pkg/render/commitgraph"
	"github.com/matzehuels/commitgraph/pkg/render/palette"
)

var history = []graph.Commit{
	{ID: "a1", Index: 0, Routes: []graph.Route{{From: 0, To: 0}, {From: 0, To: 1, Branch: 1}}},
	{ID: "b2", Index: 1, Routes: []graph.Route{{From: 0, To: 0}, {From: 1, To: 0, Branch: 1}}},
	{ID: "c3", Index: 2},
}

func TestRenderPNG(t *testing.T) {
	cfg := config.Default()
	cfg.Scale = 2

	data, err := RenderPNG(history, cfg)
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	// 2 branches, 3 commits: 50x100 logical, doubled backing store.
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 200 {
		t.Errorf("bounds = %v, want 100x200", b)
	}
}

func TestRenderPNGBackground(t *testing.T) {
	cfg := config.Default()
	cfg.Background = "#ffffff"

	data, err := RenderPNG(history, cfg)
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	r, g, b, a := img.At(1, img.Bounds().Dy()-1).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Errorf("corner pixel = %x %x %x %x, want opaque white", r, g, b, a)
	}
}

func TestRenderSVG(t *testing.T) {
	cfg := config.Default()
	cfg.Scale = 2

	data, err := RenderSVG(history, cfg)
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	svg := string(data)
	for _, want := range []string{
		`width="50" height="100" viewBox="0 0 100.0 200.0"`,
		`<circle cx="40.00" cy="20.00" r="6.00" fill="#e11d21"/>`,
		`stroke="#fbca04"`,
		"</svg>",
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q", want)
		}
	}
	if n := strings.Count(svg, "<path"); n != 4 {
		t.Errorf("got %d paths, want 4", n)
	}
}

func TestRenderJSON(t *testing.T) {
	data, err := RenderJSON(history, config.Default(), WithIndent())
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out Output
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if out.BranchCount != 2 {
		t.Errorf("BranchCount = %d, want 2", out.BranchCount)
	}
	if out.Commits != 3 {
		t.Errorf("Commits = %d, want 3", out.Commits)
	}
	if out.Layout.Width != 50 || out.Layout.Height != 100 {
		t.Errorf("layout size = %vx%v, want 50x100", out.Layout.Width, out.Layout.Height)
	}
	if len(out.Ops) != 7 {
		t.Fatalf("got %d ops, want 7", len(out.Ops))
	}
	if out.Ops[0].Kind != canvas.OpStroke || out.Ops[2].Kind != canvas.OpFill {
		t.Errorf("ops out of order: %s, %s", out.Ops[0].Kind, out.Ops[2].Kind)
	}
}

func TestRenderJSONEmpty(t *testing.T) {
	data, err := RenderJSON(nil, config.Default())
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	if !strings.Contains(string(data), `"ops":[]`) {
		t.Errorf("empty render should encode an empty ops list: %s", data)
	}
}

func TestRenderWithPalette(t *testing.T) {
	p := palette.MustParse("#000000")
	data, err := RenderSVG(history, config.Default(), WithPalette(p))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if strings.Contains(string(data), "#e11d21") {
		t.Error("default palette color in output")
	}
}

func TestRenderStateHook(t *testing.T) {
	var states []commitgraph.State
	hook := WithStateHook(func(_ string, s commitgraph.State) { states = append(states, s) })

	if _, err := RenderSVG(history, config.Default(), hook); err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	want := []commitgraph.State{commitgraph.StateSized, commitgraph.StateRendering, commitgraph.StateDone}
	if len(states) != len(want) {
		t.Fatalf("states = %v, want %v", states, want)
	}
	for i := range want {
		if states[i] != want[i] {
			t.Errorf("states[%d] = %v, want %v", i, states[i], want[i])
		}
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  func(*config.Layout)
		in   []graph.Commit
		code errors.Code
	}{
		{"bad background", func(l *config.Layout) { l.Background = "white" }, history, errors.ErrCodeInvalidConfig},
		{"bad orientation", func(l *config.Layout) { l.Orientation = "diagonal" }, history, errors.ErrCodeInvalidConfig},
		{"bad input", func(*config.Layout) {}, []graph.Commit{{ID: "x", Index: 1}}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.cfg(&cfg)
			for name, fn := range map[string]func([]graph.Commit, config.Layout, ...Option) ([]byte, error){
				"png":  RenderPNG,
				"svg":  RenderSVG,
				"json": RenderJSON,
			} {
				if _, err := fn(tt.in, cfg); !errors.Is(err, tt.code) {
					t.Errorf("%s: err = %v, want %s", name, err, tt.code)
				}
			}
		})
	}
}

package sink

import (
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/commitgraph/pkg/config"
	"github.com/matzehuels/commitgraph/pkg/errors"
	"github.com/matzehuels/commitgraph/pkg/graph"
	"github.com/matzehuels/commitgraph/pkg/render/canvas"
	"github.com/matzehuels/commitgraph/pkg/render/commitgraph"
	"github.com/matzehuels/commitgraph/pkg/render/palette"
)

// Option configures a sink render.
type Option func(*renderer)

type renderer struct {
	logger  *log.Logger
	palette *palette.Palette
	hook    func(id string, s commitgraph.State)
	indent  bool
}

// WithLogger passes a logger through to the graph renderer.
func WithLogger(l *log.Logger) Option { return func(r *renderer) { r.logger = l } }

// WithPalette overrides the branch color table.
func WithPalette(p palette.Palette) Option { return func(r *renderer) { r.palette = &p } }

// WithStateHook reports the render's state transitions to fn.
func WithStateHook(fn func(id string, s commitgraph.State)) Option {
	return func(r *renderer) { r.hook = fn }
}

// WithIndent pretty-prints JSON output. Other formats ignore it.
func WithIndent() Option { return func(r *renderer) { r.indent = true } }

func newRenderer(opts []Option) renderer {
	var r renderer
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r renderer) render(commits []graph.Commit, cfg config.Layout, factory func(bg color.Color) canvas.Factory) (*commitgraph.Result, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	bg, err := background(cfg.Background)
	if err != nil {
		return nil, err
	}

	var opts []commitgraph.Option
	if r.logger != nil {
		opts = append(opts, commitgraph.WithLogger(r.logger))
	}
	if r.palette != nil {
		opts = append(opts, commitgraph.WithPalette(*r.palette))
	}
	if r.hook != nil {
		opts = append(opts, commitgraph.WithStateHook(r.hook))
	}
	return commitgraph.New(cfg, opts...).Render(commits, factory(bg))
}

// background parses the optional background color. An empty string is
// transparent.
func background(hex string) (color.Color, error) {
	if hex == "" {
		return nil, nil
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "background %q", hex)
	}
	return c, nil
}

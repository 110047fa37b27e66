package commitgraph

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/commitgraph/pkg/config"
	"github.com/matzehuels/commitgraph/pkg/errors"
	"github.com/matzehuels/commitgraph/pkg/graph"
	"github.com/matzehuels/commitgraph/pkg/render/canvas"
	"github.com/matzehuels/commitgraph/pkg/render/geometry"
	"github.com/matzehuels/commitgraph/pkg/render/palette"
)

// State is the progress of a single render.
type State int

const (
	StateSized State = iota + 1
	StateRendering
	StateDone
)

func (s State) String() string {
	switch s {
	case StateSized:
		return "sized"
	case StateRendering:
		return "rendering"
	case StateDone:
		return "done"
	}
	return "unknown"
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(r *Renderer) { r.logger = l }
}

// WithPalette replaces the branch color table.
func WithPalette(p palette.Palette) Option {
	return func(r *Renderer) { r.palette = p }
}

// WithStateHook registers fn to be called on every state transition.
func WithStateHook(fn func(id string, s State)) Option {
	return func(r *Renderer) { r.hook = fn }
}

// Renderer draws commit sequences with a fixed layout configuration.
type Renderer struct {
	layout  config.Layout
	palette palette.Palette
	logger  *log.Logger
	hook    func(string, State)
}

// New returns an independent renderer for l. Zero fields of l take their
// defaults.
func New(l config.Layout, opts ...Option) *Renderer {
	l.SetDefaults()
	r := &Renderer{
		layout:  l,
		palette: palette.Default,
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = log.Default()
	}
	if r.palette.Len() == 0 {
		r.palette = palette.Default
	}
	return r
}

// Result is a finished render.
type Result struct {
	// ID identifies the render in log output.
	ID string
	// Surface holds the drawn graph; it is not touched again by the renderer.
	Surface canvas.Surface
	// Dimensions is the logical and backing size of Surface.
	Dimensions canvas.Dimensions
	// BranchCount is the number of lanes the surface was sized for.
	BranchCount int
	// Layout is the configuration with the computed Width and Height.
	Layout config.Layout
}

// Render validates commits, allocates a surface with newSurface and draws
// the graph onto it. Invalid input is rejected before anything is drawn.
// A nil factory records the drawing operations instead.
func (r *Renderer) Render(commits []graph.Commit, newSurface canvas.Factory) (*Result, error) {
	if err := r.layout.Validate(); err != nil {
		return nil, err
	}
	if err := graph.Validate(commits); err != nil {
		return nil, err
	}
	if newSurface == nil {
		newSurface = canvas.RecorderFactory
	}

	s := &session{
		id:      uuid.NewString(),
		palette: r.palette,
		logger:  r.logger,
		hook:    r.hook,
	}

	branchCount := graph.BranchCount(commits)
	s.layout, s.dim = Size(r.layout, len(commits), branchCount)
	s.geom = geometry.New(s.layout)
	s.scale = s.layout.EffectiveScale()
	s.transition(StateSized,
		"commits", len(commits),
		"branches", branchCount,
		"width", s.dim.Width,
		"height", s.dim.Height,
		"backing_width", s.dim.BackingWidth,
		"backing_height", s.dim.BackingHeight)

	surface, err := newSurface(s.dim)
	if err != nil {
		if errors.GetCode(err) == "" {
			err = errors.Wrap(errors.ErrCodeSurfaceAllocation, err, "allocate %.0fx%.0f surface", s.dim.BackingWidth, s.dim.BackingHeight)
		}
		return nil, err
	}
	s.surface = surface

	s.transition(StateRendering)
	for _, c := range commits {
		for _, route := range c.Routes {
			s.drawRoute(c, route)
		}
		s.drawDot(c)
	}
	s.transition(StateDone, "routes", graph.RouteCount(commits))

	return &Result{
		ID:          s.id,
		Surface:     surface,
		Dimensions:  s.dim,
		BranchCount: branchCount,
		Layout:      s.layout,
	}, nil
}

// session is the state of one Render call.
type session struct {
	id      string
	layout  config.Layout
	dim     canvas.Dimensions
	geom    geometry.Geometry
	scale   float64
	palette palette.Palette
	surface canvas.Surface
	state   State
	logger  *log.Logger
	hook    func(string, State)
}

func (s *session) transition(next State, keyvals ...any) {
	s.state = next
	s.logger.Debug("render "+next.String(), append([]any{"id", s.id}, keyvals...)...)
	if s.hook != nil {
		s.hook(s.id, next)
	}
}

package config

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/commitgraph/pkg/errors"
)

// Orientation selects which screen axis the commit sequence runs along.
type Orientation string

const (
	// Vertical runs commits top to bottom; lanes spread left to right.
	Vertical Orientation = "vertical"
	// Horizontal runs commits right to left; lanes spread top to bottom.
	Horizontal Orientation = "horizontal"
)

// ScaleRule selects how the device scale factor enlarges the backing store.
type ScaleRule string

const (
	// ScaleRuleLegacy enlarges the backing store for vertical graphs when the
	// scale is above 1, and for horizontal graphs only when it is below 1.
	// Since the effective scale is clamped to at least 1, horizontal graphs
	// never get a larger backing store, while their coordinates are still
	// multiplied by the scale.
	ScaleRuleLegacy ScaleRule = "legacy"

	// ScaleRuleUniform enlarges the backing store in both orientations
	// whenever the scale is above 1.
	ScaleRuleUniform ScaleRule = "uniform"
)

// Default values for [Layout].
const (
	DefaultWidth       = 200.0
	DefaultHeight      = 800.0
	DefaultStepPrimary = 20.0
	DefaultStepLane    = 20.0
	DefaultDotRadius   = 3.0
	DefaultLineWidth   = 2.0
	DefaultScale       = 1.0

	DefaultOrientation = Vertical
	DefaultScaleRule   = ScaleRuleLegacy
)

// Layout configures one render. It is treated as immutable once a render
// starts.
type Layout struct {
	Width       float64     `toml:"width" json:"width" yaml:"width"`
	Height      float64     `toml:"height" json:"height" yaml:"height"`
	StepPrimary float64     `toml:"step_primary" json:"step_primary" yaml:"step_primary"`
	StepLane    float64     `toml:"step_lane" json:"step_lane" yaml:"step_lane"`
	Orientation Orientation `toml:"orientation" json:"orientation" yaml:"orientation"`
	DotRadius   float64     `toml:"dot_radius" json:"dot_radius" yaml:"dot_radius"`
	LineWidth   float64     `toml:"line_width" json:"line_width" yaml:"line_width"`
	Scale       float64     `toml:"scale" json:"scale" yaml:"scale"`
	ScaleRule   ScaleRule   `toml:"scale_rule" json:"scale_rule" yaml:"scale_rule"`

	// Background is an optional hex color painted under the graph.
	// Empty means transparent.
	Background string `toml:"background" json:"background,omitempty" yaml:"background"`
}

// Default returns the stock layout configuration.
func Default() Layout {
	return Layout{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		StepPrimary: DefaultStepPrimary,
		StepLane:    DefaultStepLane,
		Orientation: DefaultOrientation,
		DotRadius:   DefaultDotRadius,
		LineWidth:   DefaultLineWidth,
		Scale:       DefaultScale,
		ScaleRule:   DefaultScaleRule,
	}
}

// SetDefaults fills zero-valued fields with their defaults.
// Negative values are left alone so that Validate can report them.
func (l *Layout) SetDefaults() {
	d := Default()
	if l.Width == 0 {
		l.Width = d.Width
	}
	if l.Height == 0 {
		l.Height = d.Height
	}
	if l.StepPrimary == 0 {
		l.StepPrimary = d.StepPrimary
	}
	if l.StepLane == 0 {
		l.StepLane = d.StepLane
	}
	if l.Orientation == "" {
		l.Orientation = d.Orientation
	}
	if l.DotRadius == 0 {
		l.DotRadius = d.DotRadius
	}
	if l.LineWidth == 0 {
		l.LineWidth = d.LineWidth
	}
	if l.Scale == 0 {
		l.Scale = d.Scale
	}
	if l.ScaleRule == "" {
		l.ScaleRule = d.ScaleRule
	}
}

// Validate checks that every field holds a usable value.
func (l Layout) Validate() error {
	positive := []struct {
		field string
		value float64
	}{
		{"width", l.Width},
		{"height", l.Height},
		{"step_primary", l.StepPrimary},
		{"step_lane", l.StepLane},
		{"dot_radius", l.DotRadius},
		{"line_width", l.LineWidth},
		{"scale", l.Scale},
	}
	for _, p := range positive {
		if err := errors.ValidatePositive(p.field, p.value); err != nil {
			return err
		}
	}

	switch l.Orientation {
	case Vertical, Horizontal:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "orientation must be %q or %q, got %q", Vertical, Horizontal, l.Orientation)
	}

	switch l.ScaleRule {
	case ScaleRuleLegacy, ScaleRuleUniform:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "scale_rule must be %q or %q, got %q", ScaleRuleLegacy, ScaleRuleUniform, l.ScaleRule)
	}

	if l.Background != "" {
		if _, err := colorful.Hex(l.Background); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "background %q is not a hex color", l.Background)
		}
	}
	return nil
}

// IsHorizontal reports whether commits run along the x axis.
func (l Layout) IsHorizontal() bool {
	return l.Orientation == Horizontal
}

// EffectiveScale returns the factor coordinates are multiplied by.
// Scales at or below 1 collapse to 1.
func (l Layout) EffectiveScale() float64 {
	if l.Scale > 1 {
		return l.Scale
	}
	return 1
}

// ScalesBackingStore reports whether the backing store is enlarged by
// EffectiveScale under the configured rule and orientation.
func (l Layout) ScalesBackingStore() bool {
	s := l.EffectiveScale()
	if l.ScaleRule == ScaleRuleUniform {
		return s > 1
	}
	if l.IsHorizontal() {
		return s < 1
	}
	return s > 1
}

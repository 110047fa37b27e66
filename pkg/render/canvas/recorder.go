package canvas

import (
	"github.com/matzehuels/commitgraph/pkg/render/geometry"
)

// OpKind names a recorded drawing operation.
type OpKind string

const (
	OpStroke OpKind = "stroke"
	OpFill   OpKind = "fill"
)

// Op is one recorded drawing call.
type Op struct {
	Kind   OpKind          `json:"kind"`
	Path   *Path           `json:"path,omitempty"`
	Center *geometry.Point `json:"center,omitempty"`
	Radius float64         `json:"radius,omitempty"`
	Width  float64         `json:"width,omitempty"`
	Color  string          `json:"color"`
}

// Recorder is a surface that remembers every call instead of drawing.
type Recorder struct {
	dim Dimensions
	Ops []Op
}

// NewRecorder creates an empty recorder.
func NewRecorder(dim Dimensions) *Recorder {
	return &Recorder{dim: dim}
}

// RecorderFactory allocates Recorder surfaces.
func RecorderFactory(dim Dimensions) (Surface, error) {
	return NewRecorder(dim), nil
}

func (r *Recorder) Dimensions() Dimensions { return r.dim }

func (r *Recorder) StrokePath(p Path, s Stroke) {
	r.Ops = append(r.Ops, Op{Kind: OpStroke, Path: &p, Width: s.Width, Color: Hex(s.Color)})
}

func (r *Recorder) FillCircle(center geometry.Point, radius float64, f Fill) {
	r.Ops = append(r.Ops, Op{Kind: OpFill, Center: &center, Radius: radius, Color: Hex(f.Color)})
}

// Strokes returns the recorded stroke operations in order.
func (r *Recorder) Strokes() []Op { return r.filter(OpStroke) }

// Fills returns the recorded fill operations in order.
func (r *Recorder) Fills() []Op { return r.filter(OpFill) }

func (r *Recorder) filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

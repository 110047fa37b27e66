// Package canvas defines the drawing surface a commit graph is rendered
// onto, and three implementations of it.
//
// Surfaces carry no drawing state between calls: every stroke and fill
// receives its style explicitly.
//
//   - [Raster]: anti-aliased bitmap backed by fogleman/gg, encodes to PNG
//   - [SVG]: vector document, presented at the logical size
//   - [Recorder]: keeps the list of drawing operations (tests, JSON export)
//
// A [Factory] allocates a fresh surface for a render. Allocation failures
// are reported with the SURFACE_ALLOCATION error code.
package canvas

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/commitgraph/pkg/render/geometry"
)

// Dimensions describes a surface. Width and Height are the presented
// (logical) size; the backing store holds BackingWidth x BackingHeight
// pixels. The two differ when a device scale factor is applied.
type Dimensions struct {
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	BackingWidth  float64 `json:"backing_width"`
	BackingHeight float64 `json:"backing_height"`
}

// Pixels returns the backing store size rounded up to whole pixels.
func (d Dimensions) Pixels() (w, h int) {
	return int(math.Ceil(d.BackingWidth)), int(math.Ceil(d.BackingHeight))
}

// Stroke styles a path outline.
type Stroke struct {
	Color color.Color
	Width float64
}

// Fill styles a filled shape.
type Fill struct {
	Color color.Color
}

// Surface is a drawing target owned by a single render.
type Surface interface {
	Dimensions() Dimensions
	StrokePath(p Path, s Stroke)
	FillCircle(center geometry.Point, radius float64, f Fill)
}

// Factory allocates a fresh surface of the given dimensions.
type Factory func(Dimensions) (Surface, error)

// SegmentKind distinguishes path segments.
type SegmentKind string

const (
	SegmentLine  SegmentKind = "line"
	SegmentCubic SegmentKind = "cubic"
)

// Segment continues a path from the previous point to To. C1 and C2 are the
// control points of cubic segments.
type Segment struct {
	Kind SegmentKind     `json:"kind"`
	C1   *geometry.Point `json:"c1,omitempty"`
	C2   *geometry.Point `json:"c2,omitempty"`
	To   geometry.Point  `json:"to"`
}

// Path is an open path starting at Start.
type Path struct {
	Start    geometry.Point `json:"start"`
	Segments []Segment      `json:"segments"`
}

// MoveTo starts a new path at p.
func MoveTo(p geometry.Point) Path {
	return Path{Start: p}
}

// LineTo returns the path extended by a straight segment.
func (p Path) LineTo(to geometry.Point) Path {
	p.Segments = append(p.Segments, Segment{Kind: SegmentLine, To: to})
	return p
}

// CubicTo returns the path extended by a cubic Bézier segment.
func (p Path) CubicTo(c1, c2, to geometry.Point) Path {
	p.Segments = append(p.Segments, Segment{Kind: SegmentCubic, C1: &c1, C2: &c2, To: to})
	return p
}

// End returns the last point of the path.
func (p Path) End() geometry.Point {
	if len(p.Segments) == 0 {
		return p.Start
	}
	return p.Segments[len(p.Segments)-1].To
}

// Hex formats c as "#rrggbb", or "none" when c is nil or fully transparent.
func Hex(c color.Color) string {
	if c == nil {
		return "none"
	}
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return "none"
	}
	return cc.Hex()
}

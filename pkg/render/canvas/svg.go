package canvas

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/matzehuels/commitgraph/pkg/render/geometry"
)

// SVG is a vector surface. Its width and height attributes carry the
// logical size while the viewBox spans the backing store, which is how a
// device scale factor shows up in vector output.
type SVG struct {
	dim        Dimensions
	background color.Color
	body       bytes.Buffer
}

// NewSVG creates an empty SVG surface.
func NewSVG(dim Dimensions, background color.Color) *SVG {
	return &SVG{dim: dim, background: background}
}

// SVGFactory returns a Factory producing SVG surfaces.
func SVGFactory(background color.Color) Factory {
	return func(dim Dimensions) (Surface, error) {
		return NewSVG(dim, background), nil
	}
}

func (s *SVG) Dimensions() Dimensions { return s.dim }

func (s *SVG) StrokePath(p Path, st Stroke) {
	fmt.Fprintf(&s.body, `  <path d="M%.2f %.2f`, p.Start.X, p.Start.Y)
	for _, seg := range p.Segments {
		switch seg.Kind {
		case SegmentCubic:
			fmt.Fprintf(&s.body, " C%.2f %.2f %.2f %.2f %.2f %.2f", seg.C1.X, seg.C1.Y, seg.C2.X, seg.C2.Y, seg.To.X, seg.To.Y)
		default:
			fmt.Fprintf(&s.body, " L%.2f %.2f", seg.To.X, seg.To.Y)
		}
	}
	fmt.Fprintf(&s.body, `" fill="none" stroke="%s" stroke-width="%.2f"/>`+"\n", Hex(st.Color), st.Width)
}

func (s *SVG) FillCircle(center geometry.Point, radius float64, f Fill) {
	fmt.Fprintf(&s.body, `  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`+"\n", center.X, center.Y, radius, Hex(f.Color))
}

// Bytes returns the complete SVG document.
func (s *SVG) Bytes() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.1f %.1f">`+"\n",
		s.dim.Width, s.dim.Height, s.dim.BackingWidth, s.dim.BackingHeight)
	if s.background != nil {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", Hex(s.background))
	}
	buf.Write(s.body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

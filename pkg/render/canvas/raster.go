package canvas

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/commitgraph/pkg/errors"
	"github.com/matzehuels/commitgraph/pkg/render/geometry"
)

// MaxRasterPixels caps the backing store of a Raster (about 256 MiB of RGBA).
const MaxRasterPixels = 1 << 26

// Raster is a bitmap surface backed by a gg.Context.
type Raster struct {
	dim Dimensions
	dc  *gg.Context
}

// NewRaster allocates a bitmap for dim, cleared to background. A nil
// background leaves the bitmap transparent.
func NewRaster(dim Dimensions, background color.Color) (*Raster, error) {
	w, h := dim.Pixels()
	if w < 1 || h < 1 {
		return nil, errors.New(errors.ErrCodeSurfaceAllocation, "raster surface %dx%d has no pixels", w, h)
	}
	if w > MaxRasterPixels/h {
		return nil, errors.New(errors.ErrCodeSurfaceAllocation, "raster surface %dx%d exceeds %d pixels", w, h, MaxRasterPixels)
	}

	dc := gg.NewContext(w, h)
	if background != nil {
		dc.SetColor(background)
		dc.Clear()
	}
	return &Raster{dim: dim, dc: dc}, nil
}

// RasterFactory returns a Factory producing Raster surfaces.
func RasterFactory(background color.Color) Factory {
	return func(dim Dimensions) (Surface, error) {
		return NewRaster(dim, background)
	}
}

func (r *Raster) Dimensions() Dimensions { return r.dim }

func (r *Raster) StrokePath(p Path, s Stroke) {
	r.dc.MoveTo(p.Start.X, p.Start.Y)
	for _, seg := range p.Segments {
		switch seg.Kind {
		case SegmentCubic:
			r.dc.CubicTo(seg.C1.X, seg.C1.Y, seg.C2.X, seg.C2.Y, seg.To.X, seg.To.Y)
		default:
			r.dc.LineTo(seg.To.X, seg.To.Y)
		}
	}
	r.dc.SetColor(s.Color)
	r.dc.SetLineWidth(s.Width)
	r.dc.Stroke()
}

func (r *Raster) FillCircle(center geometry.Point, radius float64, f Fill) {
	r.dc.NewSubPath()
	r.dc.DrawArc(center.X, center.Y, radius, 0, 2*math.Pi)
	r.dc.SetColor(f.Color)
	r.dc.Fill()
}

// Image returns the backing bitmap.
func (r *Raster) Image() image.Image { return r.dc.Image() }

// EncodePNG writes the bitmap to w.
func (r *Raster) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

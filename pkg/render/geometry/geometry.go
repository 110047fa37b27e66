// Package geometry maps commit rows and lanes to pixel positions.
//
// The mapping depends on orientation, the two step sizes, the logical
// surface width (horizontal graphs are mirrored so later commits sit closer
// to the origin) and the device scale factor. Everything here is pure.
package geometry

import (
	"github.com/matzehuels/commitgraph/pkg/config"
	"github.com/matzehuels/commitgraph/pkg/graph"
)

// Point is a position in backing-store pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Geometry converts (index, lane) pairs to pixel positions.
type Geometry struct {
	horizontal  bool
	stepPrimary float64
	stepLane    float64
	width       float64
	scale       float64
}

// New captures the parts of l the mapping depends on. l.Width must already
// hold the logical surface width when the orientation is horizontal.
func New(l config.Layout) Geometry {
	return Geometry{
		horizontal:  l.IsHorizontal(),
		stepPrimary: l.StepPrimary,
		stepLane:    l.StepLane,
		width:       l.Width,
		scale:       l.EffectiveScale(),
	}
}

// Dot returns the position of a commit marker on row index, lane lane.
func (g Geometry) Dot(index, lane int) Point {
	return g.at(float64(index)+0.5, lane)
}

// RouteEnds returns the origin of r on row index and its destination on the
// following row.
func (g Geometry) RouteEnds(index int, r graph.Route) (from, to Point) {
	row := float64(index) + 0.5
	return g.at(row, r.From), g.at(row+1, r.To)
}

// Controls returns the two control points of the cubic joining origin and
// dest. Along the primary axis each control point sits two thirds of a step
// towards the other endpoint. Along the lane axis each is pushed a quarter
// of a lane step outward, so the curve leaves and enters its lanes
// smoothly.
func (g Geometry) Controls(origin, dest Point) (c1, c2 Point) {
	primary := g.stepPrimary * g.scale * 2 / 3
	cross := g.stepLane * g.scale / 4

	op, oc := g.split(origin)
	dp, dc := g.split(dest)

	dir := 1.0
	if dp < op {
		dir = -1
	}
	side := -1.0
	if oc > dc {
		side = 1
	}
	return g.join(op+dir*primary, oc+side*cross), g.join(dp-dir*primary, dc-side*cross)
}

// at maps a fractional row and a lane to a point.
func (g Geometry) at(row float64, lane int) Point {
	p := row * g.stepPrimary * g.scale
	c := float64(lane+1) * g.stepLane * g.scale
	if g.horizontal {
		return Point{X: g.width*g.scale - p, Y: c}
	}
	return Point{X: c, Y: p}
}

// split returns the primary and cross coordinates of p.
func (g Geometry) split(p Point) (primary, cross float64) {
	if g.horizontal {
		return p.X, p.Y
	}
	return p.Y, p.X
}

func (g Geometry) join(primary, cross float64) Point {
	if g.horizontal {
		return Point{X: primary, Y: cross}
	}
	return Point{X: cross, Y: primary}
}

package commitgraph

import (
	"github.com/matzehuels/commitgraph/pkg/graph"
	"github.com/matzehuels/commitgraph/pkg/render/canvas"
)

// drawRoute strokes one route of c: a straight segment when the route stays
// in its lane, an S-shaped cubic otherwise.
func (s *session) drawRoute(c graph.Commit, r graph.Route) {
	from, to := s.geom.RouteEnds(c.Index, r)

	path := canvas.MoveTo(from)
	if r.Straight() {
		path = path.LineTo(to)
	} else {
		c1, c2 := s.geom.Controls(from, to)
		path = path.CubicTo(c1, c2, to)
	}

	s.surface.StrokePath(path, canvas.Stroke{
		Color: s.palette.Color(r.Branch),
		Width: s.layout.LineWidth * s.scale,
	})
}

// drawDot fills the commit marker.
func (s *session) drawDot(c graph.Commit) {
	s.surface.FillCircle(
		s.geom.Dot(c.Index, c.Dot.Lane),
		s.layout.DotRadius*s.scale,
		canvas.Fill{Color: s.palette.Color(c.Dot.Branch)},
	)
}

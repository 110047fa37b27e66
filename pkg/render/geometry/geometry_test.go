package geometry

import (
	"math"
	"testing"

	"github.com/matzehuels/commitgraph/pkg/config"
	"github.com/matzehuels/commitgraph/pkg/graph"
)

const eps = 1e-9

func near(a, b Point) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func layout(orientation config.Orientation, width, scale float64) config.Layout {
	l := config.Default()
	l.Orientation = orientation
	l.Width = width
	l.Scale = scale
	return l
}

func TestDotVertical(t *testing.T) {
	tests := []struct {
		name  string
		index int
		lane  int
		scale float64
		want  Point
	}{
		{"origin", 0, 0, 1, Point{20, 10}},
		{"second row", 1, 0, 1, Point{20, 30}},
		{"third lane", 2, 2, 1, Point{60, 50}},
		{"scaled", 1, 1, 2, Point{80, 60}},
		{"scale below one clamps", 0, 0, 0.5, Point{20, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(layout(config.Vertical, 50, tt.scale))
			if got := g.Dot(tt.index, tt.lane); !near(got, tt.want) {
				t.Errorf("Dot(%d, %d) = %v, want %v", tt.index, tt.lane, got, tt.want)
			}
		})
	}
}

func TestDotHorizontal(t *testing.T) {
	tests := []struct {
		name  string
		index int
		lane  int
		scale float64
		want  Point
	}{
		{"origin", 0, 0, 1, Point{190, 20}},
		{"later commits move left", 3, 0, 1, Point{130, 20}},
		{"lane moves down", 0, 2, 1, Point{190, 60}},
		{"scaled", 1, 1, 2, Point{340, 80}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(layout(config.Horizontal, 200, tt.scale))
			if got := g.Dot(tt.index, tt.lane); !near(got, tt.want) {
				t.Errorf("Dot(%d, %d) = %v, want %v", tt.index, tt.lane, got, tt.want)
			}
		})
	}
}

func TestRouteEnds(t *testing.T) {
	g := New(layout(config.Vertical, 50, 1))
	from, to := g.RouteEnds(2, graph.Route{From: 0, To: 1})
	if !near(from, g.Dot(2, 0)) {
		t.Errorf("origin = %v, want dot position %v", from, g.Dot(2, 0))
	}
	if !near(to, g.Dot(3, 1)) {
		t.Errorf("destination = %v, want next row %v", to, g.Dot(3, 1))
	}

	h := New(layout(config.Horizontal, 200, 2))
	from, to = h.RouteEnds(0, graph.Route{From: 1, To: 1})
	if !near(from, h.Dot(0, 1)) || !near(to, h.Dot(1, 1)) {
		t.Errorf("horizontal ends = %v -> %v", from, to)
	}
}

func TestControlsVertical(t *testing.T) {
	g := New(layout(config.Vertical, 50, 1))

	// lane 0 -> lane 1: cross axis increases.
	from, to := g.RouteEnds(0, graph.Route{From: 0, To: 1})
	c1, c2 := g.Controls(from, to)
	if want := (Point{20 - 5, 10 + 40.0/3}); !near(c1, want) {
		t.Errorf("c1 = %v, want %v", c1, want)
	}
	if want := (Point{40 + 5, 30 - 40.0/3}); !near(c2, want) {
		t.Errorf("c2 = %v, want %v", c2, want)
	}

	// lane 1 -> lane 0: cross axis decreases, offsets flip.
	from, to = g.RouteEnds(0, graph.Route{From: 1, To: 0})
	c1, c2 = g.Controls(from, to)
	if want := (Point{40 + 5, 10 + 40.0/3}); !near(c1, want) {
		t.Errorf("c1 = %v, want %v", c1, want)
	}
	if want := (Point{20 - 5, 30 - 40.0/3}); !near(c2, want) {
		t.Errorf("c2 = %v, want %v", c2, want)
	}
}

func TestControlsHorizontal(t *testing.T) {
	g := New(layout(config.Horizontal, 200, 2))

	from, to := g.RouteEnds(0, graph.Route{From: 2, To: 0})
	c1, c2 := g.Controls(from, to)

	// Primary axis runs right to left, so control points move left from the
	// origin and right from the destination.
	primary := 20.0 * 2 * 2 / 3
	cross := 20.0 * 2 / 4
	if want := (Point{from.X - primary, from.Y + cross}); !near(c1, want) {
		t.Errorf("c1 = %v, want %v", c1, want)
	}
	if want := (Point{to.X + primary, to.Y - cross}); !near(c2, want) {
		t.Errorf("c2 = %v, want %v", c2, want)
	}
}

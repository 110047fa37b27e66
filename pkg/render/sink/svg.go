package sink

import (
	"github.com/matzehuels/commitgraph/pkg/config"
	"github.com/matzehuels/commitgraph/pkg/graph"
	"github.com/matzehuels/commitgraph/pkg/render/canvas"
)

// RenderSVG renders commits to a standalone SVG document.
func RenderSVG(commits []graph.Commit, cfg config.Layout, opts ...Option) ([]byte, error) {
	res, err := newRenderer(opts).render(commits, cfg, canvas.SVGFactory)
	if err != nil {
		return nil, err
	}
	return res.Surface.(*canvas.SVG).Bytes(), nil
}

package sink

import (
	"bytes"

	"github.com/matzehuels/commitgraph/pkg/config"
	"github.com/matzehuels/commitgraph/pkg/errors"
	"github.com/matzehuels/commitgraph/pkg/graph"
	"github.com/matzehuels/commitgraph/pkg/render/canvas"
)

// RenderPNG renders commits to a PNG image of the backing store size.
func RenderPNG(commits []graph.Commit, cfg config.Layout, opts ...Option) ([]byte, error) {
	res, err := newRenderer(opts).render(commits, cfg, canvas.RasterFactory)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := res.Surface.(*canvas.Raster).EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

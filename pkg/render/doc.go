// Package render groups the commit graph drawing packages.
//
// # Layers
//
//   - [geometry]: commit and lane indexes to surface coordinates
//   - [palette]: branch index to color
//   - [canvas]: drawing surfaces (raster, SVG, recorder) with per-call style
//   - [commitgraph]: sizing and the render state machine
//   - [sink]: encode a finished surface as PNG, SVG or JSON
//
// Most callers want [sink]:
//
//	svg, err := sink.RenderSVG(commits, cfg)
//
// Callers that supply their own surface use [commitgraph] directly:
//
//	res, err := commitgraph.New(cfg).Render(commits, canvas.RasterFactory(nil))
//
// [geometry]: github.com/matzehuels/commitgraph/pkg/render/geometry
// [palette]: github.com/matzehuels/commitgraph/pkg/render/palette
// [canvas]: github.com/matzehuels/commitgraph/pkg/render/canvas
// [commitgraph]: github.com/matzehuels/commitgraph/pkg/render/commitgraph
// [sink]: github.com/matzehuels/commitgraph/pkg/render/sink
package render

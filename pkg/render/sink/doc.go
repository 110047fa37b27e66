// Package sink renders commit sequences straight to encoded bytes.
//
// Each function runs a full [commitgraph.Renderer.Render] on a surface that
// suits the format, then encodes the result:
//
//   - [RenderPNG]: rasterised with fogleman/gg, encoded as PNG
//   - [RenderSVG]: vector document sized to the logical dimensions
//   - [RenderJSON]: the recorded drawing operations with the computed layout
//
// Basic usage:
//
//	png, err := sink.RenderPNG(commits, config.Default(), sink.WithLogger(logger))
//
// The layout's Background color, when set, is painted under PNG and SVG
// output.
package sink

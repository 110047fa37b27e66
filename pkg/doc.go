// Package pkg holds the libraries behind the commitgraph command.
//
// # Overview
//
// commitgraph draws a version-control history as a lane graph: one dot per
// commit along a primary axis and one colored route per ancestry edge. Lane
// assignment is an input; these packages only place and paint.
//
//  1. [graph] - Commit, route and dot types, wire decoding, validation
//  2. [config] - Layout settings and TOML config files
//  3. [render] - Geometry, palette, surfaces and the graph renderer
//  4. [pipeline] - Decode, render and encode with artifact caching
//  5. [cache] - File, Redis and no-op artifact stores
//
// # Data Flow
//
//	layout file (JSON/YAML)
//	         ↓
//	    [graph] decode + validate
//	         ↓
//	    [render/commitgraph] size, then routes and dots per commit
//	         ↓
//	    [render/sink] PNG / SVG / JSON
//
// # Quick Start
//
//	commits, err := io.ImportFile("history.json")
//	if err != nil {
//	    return err
//	}
//	png, err := sink.RenderPNG(commits, config.Default())
//
// Through the pipeline, with caching:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	res, err := runner.Execute(ctx, pipeline.Options{
//	    Commits: commits,
//	    Formats: []string{pipeline.FormatPNG, pipeline.FormatSVG},
//	})
//
// [graph]: github.com/matzehuels/commitgraph/pkg/graph
// [config]: github.com/matzehuels/commitgraph/pkg/config
// [render]: github.com/matzehuels/commitgraph/pkg/render
// [pipeline]: github.com/matzehuels/commitgraph/pkg/pipeline
// [cache]: github.com/matzehuels/commitgraph/pkg/cache
// [render/commitgraph]: github.com/matzehuels/commitgraph/pkg/render/commitgraph
// [render/sink]: github.com/matzehuels/commitgraph/pkg/render/sink
package pkg

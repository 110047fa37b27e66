// Package commitgraph renders a precomputed commit graph layout onto a
// drawing surface.
//
// # Overview
//
// A render is one synchronous pass:
//
//  1. Validate the commit sequence (pkg/graph.Validate)
//  2. Size the surface from the commit count and [graph.BranchCount]
//  3. Allocate a fresh surface through a [canvas.Factory]
//  4. For each commit in order, stroke its routes, then fill its dot
//
// Drawing the dot after the routes keeps it on top of the line ends.
//
// # Usage
//
//	r := commitgraph.New(config.Default(), commitgraph.WithLogger(logger))
//	res, err := r.Render(commits, canvas.RasterFactory(nil))
//	if err != nil {
//	    return err
//	}
//	raster := res.Surface.(*canvas.Raster)
//
// [New] is a factory: every call returns an independent renderer, and every
// Render call allocates its own surface, so renders never share state.
//
// # Sizing
//
// For vertical graphs the logical surface is (branchCount+0.5)*step_lane
// wide and (commits+2)*step_primary tall; horizontal graphs swap the roles.
// The device scale factor multiplies coordinates, and multiplies the backing
// store when [config.Layout.ScalesBackingStore] says so.
package commitgraph

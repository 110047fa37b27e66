// Package config holds the layout configuration that drives a commit graph
// render, together with the TOML file format used by the CLI and server.
//
// # Layout
//
// [Layout] carries the recognised render options: step sizes along the
// primary (commit) axis and the lane axis, orientation, dot radius, line
// width and device scale factor. [Default] returns the stock values:
//
//	step_primary = 20
//	step_lane    = 20
//	orientation  = "vertical"
//	dot_radius   = 3
//	line_width   = 2
//	scale        = 1
//	scale_rule   = "legacy"
//
// Width and Height are only initial values; the renderer computes the real
// extents from the commit count and branch count.
//
// # Files
//
// [Load] reads a TOML file. Unknown keys are rejected so typos surface early:
//
//	[layout]
//	orientation = "horizontal"
//	scale = 2
//
//	[cache]
//	ttl = "24h"
//
//	[server]
//	addr = ":8080"
//
// Values read from a file are layered over [Default]; CLI flags are layered
// over the file by the caller.
package config

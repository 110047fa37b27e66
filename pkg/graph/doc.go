// Package graph defines the commit graph data model and its wire formats.
//
// The renderer does not compute lanes. It consumes a precomputed layout
// where every commit carries the lane and branch of its own dot plus the
// routes leaving it towards the next row.
//
// # Core Types
//
//   - [Commit]: one row of the history (identifier, index, dot, routes)
//   - [Dot]: lane occupied by the commit marker and its color branch
//   - [Route]: an edge from lane From on this row to lane To on the next row
//
// # Wire Formats
//
// The compact tuple format is what layout generators emit:
//
//	[
//	  ["c3", [0, 0], [[0, 0, 0], [1, 0, 1]]],
//	  ["c2", [1, 1], [[1, 0, 1]]],
//	  ["c1", [0, 0], []]
//	]
//
// The object format is easier to write by hand and is accepted in JSON and
// YAML:
//
//	- id: c3
//	  dot: {lane: 0, branch: 0}
//	  routes:
//	    - {from: 0, to: 0, branch: 0}
//
// Both decode through [ReadJSON], [ReadYAML] and [Unmarshal]. [Marshal]
// always writes the compact tuple format.
//
// # Validation
//
// [Validate] enforces the input contract before any drawing happens:
// non-empty identifiers, indexes matching sequence positions, and
// non-negative lanes and branches. Violations are reported as
// INVALID_INPUT errors from pkg/errors.
package graph

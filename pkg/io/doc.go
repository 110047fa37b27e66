// Package io reads commit graph layouts from files and writes rendered
// artifacts back to disk.
//
// # Input Formats
//
// Two shapes are accepted, in JSON or YAML. The compact tuple form is what
// layout generators emit:
//
//	[
//	  ["c0ffee", [0, 0], [[0, 0, 0], [0, 1, 1]]],
//	  ["f00d",   [1, 1], [[0, 0, 0], [1, 0, 1]]],
//	  ["beef",   [0, 0], []]
//	]
//
// The object form spells the fields out:
//
//	- id: c0ffee
//	  dot: {lane: 0, branch: 0}
//	  routes:
//	    - {from: 0, to: 0, branch: 0}
//
// The encoding is chosen from the file extension: .yaml and .yml are YAML,
// anything else is JSON. Decoding and validation live in pkg/graph; this
// package adds file handling and error codes.
//
// # Output
//
// [WriteArtifact] writes through a temporary file in the target directory and
// renames it into place, so a watcher or browser never observes a
// half-written image.
package io

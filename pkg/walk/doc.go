// SPDX-License-Identifier: MPL-2.0

// Package walk enumerates component files across an ordered list of levels.
//
// A level is a directory holding one layer of a component library. Each level
// is traversed according to a Scheme that describes where block, element and
// modifier files physically live, and every file whose name follows the
// naming grammar becomes a Descriptor on the resulting Stream.
//
// File organization:
//   - walker.go: Walker, options and the level loop
//   - scheme.go: Scheme type and the strategy table
//   - flat.go, nested.go: the two traversal strategies
//   - stream.go: ordered push-stream with data/error/end signals
//   - errors.go: LevelNotFoundError and TraversalError
package walk

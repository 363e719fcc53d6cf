// SPDX-License-Identifier: MPL-2.0

// Package naming implements the component file naming grammar.
//
// A component file name has the shape
//
//	block[_mod[_val]].tech
//	block__elem[_mod[_val]].tech
//
// where "__" separates the element from its block and "_" introduces a
// modifier name and, optionally, its value. A modifier without a value is a
// boolean flag. Everything after the first "." is the technology tag.
//
// The parser is purely syntactic: it never touches the filesystem and never
// fails loudly. Names that do not follow the grammar are reported as
// "not a component file" through a false second return value.
package naming

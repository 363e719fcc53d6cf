// SPDX-License-Identifier: MPL-2.0

package walk

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/bemwalk/bemwalk/pkg/naming"
)

const (
	// dirBlock is a block directory directly under the level.
	dirBlock dirShape = iota
	// dirElem is a "__elem" directory inside a block directory.
	dirElem
	// dirMod is a "_mod" directory inside a block or element directory.
	dirMod
)

// dirShape identifies the role of a directory in the nested layout.
type dirShape int

// walkNested descends level -> block -> [__elem] -> [_mod] and emits the
// component files found at each of those positions. Files directly under the
// level, symlinks there and directories of any other shape are skipped.
func walkNested(ctx context.Context, scan *levelScan) error {
	entries, err := scan.readDir(ctx, scan.level)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		path := filepath.Join(scan.level, entry.Name())
		if entry.Mode()&os.ModeSymlink != 0 {
			scan.skip(path, "symlink outside a block directory")
			continue
		}
		if !entry.IsDir() {
			scan.skip(path, "file outside a block directory")
			continue
		}
		if strings.HasPrefix(entry.Name(), naming.ModDelim) {
			scan.skip(path, "not a block directory")
			continue
		}
		if err := walkNestedDir(ctx, scan, path, dirBlock); err != nil {
			return err
		}
	}

	return nil
}

// walkNestedDir emits the files of dir and descends into the subdirectories
// its shape allows, in listing order.
func walkNestedDir(ctx context.Context, scan *levelScan, dir string, shape dirShape) error {
	entries, err := scan.readDir(ctx, dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			if err := scan.file(ctx, dir, entry); err != nil {
				return err
			}
			continue
		}

		path := filepath.Join(dir, entry.Name())
		child, ok := childShape(shape, entry.Name())
		if !ok {
			scan.skip(path, "unrecognized directory")
			continue
		}
		if err := walkNestedDir(ctx, scan, path, child); err != nil {
			return err
		}
	}

	return nil
}

// childShape classifies a subdirectory name found inside a directory of the
// given shape. Modifier directories are terminal.
func childShape(parent dirShape, name string) (dirShape, bool) {
	switch parent {
	case dirBlock:
		if rest, ok := strings.CutPrefix(name, naming.ElemDelim); ok {
			return dirElem, rest != "" && !strings.HasPrefix(rest, naming.ModDelim)
		}
		if rest, ok := strings.CutPrefix(name, naming.ModDelim); ok {
			return dirMod, rest != ""
		}
	case dirElem:
		if strings.HasPrefix(name, naming.ElemDelim) {
			return 0, false
		}
		if rest, ok := strings.CutPrefix(name, naming.ModDelim); ok {
			return dirMod, rest != ""
		}
	}
	return 0, false
}

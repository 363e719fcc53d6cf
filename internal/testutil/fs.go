// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

// MustWriteFile writes data to path on fsys, creating parent directories.
func MustWriteFile(t testing.TB, fsys afero.Fs, path string, data []byte) {
	t.Helper()
	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := afero.WriteFile(fsys, path, data, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// WriteTree creates empty files and directories on fsys. Paths use forward
// slashes; a trailing slash creates a directory instead of a file.
//
//	testutil.WriteTree(t, fs,
//	    "blocks/block/block.ext",
//	    "blocks/block/_mod/block_mod_val.ext",
//	    "blocks/empty/",
//	)
func WriteTree(t testing.TB, fsys afero.Fs, paths ...string) {
	t.Helper()
	for _, p := range paths {
		native := filepath.FromSlash(strings.TrimSuffix(p, "/"))
		if strings.HasSuffix(p, "/") {
			if err := fsys.MkdirAll(native, 0o755); err != nil {
				t.Fatalf("failed to create directory %s: %v", native, err)
			}
			continue
		}
		MustWriteFile(t, fsys, native, nil)
	}
}

// NewMemTree returns an in-memory filesystem populated by WriteTree.
func NewMemTree(t testing.TB, paths ...string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	WriteTree(t, fsys, paths...)
	return fsys
}

// NativePath converts a forward-slash path to the host separator.
func NativePath(p string) string {
	return filepath.FromSlash(p)
}

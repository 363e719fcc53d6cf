// SPDX-License-Identifier: MPL-2.0

package walk_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/bemwalk/bemwalk/pkg/naming"
	"github.com/bemwalk/bemwalk/pkg/walk"
)

// collect walks levels over fsys with scheme and fails the test on error.
func collect(t *testing.T, fsys afero.Fs, scheme walk.Scheme, levels ...string) []walk.Descriptor {
	t.Helper()
	got, err := walk.Walk(context.Background(), levels, walk.WithFS(fsys), walk.WithScheme(scheme)).Collect()
	require.NoError(t, err)
	return got
}

// descriptor builds the expected descriptor for a file; path segments are
// joined with the host separator.
func descriptor(entity naming.Entity, tech, level string, path ...string) walk.Descriptor {
	return walk.Descriptor{
		Entity: entity,
		Tech:   tech,
		Level:  level,
		Path:   filepath.Join(path...),
	}
}

func flag() naming.ModVal { return naming.FlagModVal() }

func val(v string) naming.ModVal { return naming.StringModVal(v) }

// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"runtime"
	"testing"
)

func homeVar() string {
	if runtime.GOOS == "windows" {
		return "USERPROFILE"
	}
	return "HOME"
}

func TestSetHomeDir(t *testing.T) {
	dir := t.TempDir()
	original, had := os.LookupEnv(homeVar())

	restore := SetHomeDir(t, dir)
	if got := os.Getenv(homeVar()); got != dir {
		t.Errorf("%s = %q, want %q", homeVar(), got, dir)
	}

	restore()
	got, has := os.LookupEnv(homeVar())
	if has != had || got != original {
		t.Errorf("after restore %s = %q (set=%v), want %q (set=%v)", homeVar(), got, has, original, had)
	}
}

func TestMustUnsetenv(t *testing.T) {
	const key = "BEMWALK_TESTUTIL_PROBE"
	defer MustSetenv(t, key, "value")()

	restore := MustUnsetenv(t, key)
	if _, ok := os.LookupEnv(key); ok {
		t.Fatalf("%s still set after MustUnsetenv", key)
	}

	restore()
	if got := os.Getenv(key); got != "value" {
		t.Errorf("%s = %q after restore, want %q", key, got, "value")
	}
}

// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"github.com/bemwalk/bemwalk/internal/config"
	"github.com/bemwalk/bemwalk/internal/issue"
	"github.com/bemwalk/bemwalk/pkg/naming"
	"github.com/bemwalk/bemwalk/pkg/walk"
)

var flatTree = []string{
	"blocks/button.css",
	"blocks/button_size_s.css",
	"blocks/button__icon_theme_dark.js",
}

func TestWalk_Text(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t, nil, flatTree...)
	if err := ta.run("walk", "blocks"); err != nil {
		t.Fatalf("walk returned error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(ta.stdout.String()), "\n")
	want := []string{
		"button css " + filepath.Join("blocks", "button.css"),
		"button__icon_theme_dark js " + filepath.Join("blocks", "button__icon_theme_dark.js"),
		"button_size_s css " + filepath.Join("blocks", "button_size_s.css"),
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), ta.stdout.String())
	}
	for i := range want {
		if !strings.Contains(lines[i], want[i]) {
			t.Errorf("line %d = %q, want it to contain %q", i, lines[i], want[i])
		}
	}
}

func TestWalk_JSONL(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t, nil, flatTree...)
	if err := ta.run("walk", "--format", "jsonl", "blocks"); err != nil {
		t.Fatalf("walk returned error: %v", err)
	}

	var got []walk.Descriptor
	scanner := bufio.NewScanner(ta.stdout)
	for scanner.Scan() {
		var d walk.Descriptor
		if err := json.Unmarshal(scanner.Bytes(), &d); err != nil {
			t.Fatalf("invalid JSON line %q: %v", scanner.Text(), err)
		}
		got = append(got, d)
	}

	if len(got) != 3 {
		t.Fatalf("got %d descriptors, want 3", len(got))
	}
	want := walk.Descriptor{
		Entity: naming.Entity{Block: "button", Elem: "icon", ModName: "theme", ModVal: naming.StringModVal("dark")},
		Tech:   "js",
		Level:  "blocks",
		Path:   filepath.Join("blocks", "button__icon_theme_dark.js"),
	}
	if got[1] != want {
		t.Errorf("descriptor[1] = %+v, want %+v", got[1], want)
	}
}

func TestWalk_JSON(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t, nil, flatTree...)
	if err := ta.run("walk", "-f", "json", "blocks"); err != nil {
		t.Fatalf("walk returned error: %v", err)
	}

	var raw []map[string]any
	if err := json.Unmarshal(ta.stdout.Bytes(), &raw); err != nil {
		t.Fatalf("output is not a JSON array: %v\n%s", err, ta.stdout.String())
	}
	if len(raw) != 3 {
		t.Fatalf("got %d descriptors, want 3", len(raw))
	}
	if _, ok := raw[0]["modVal"]; ok {
		t.Error("modVal must be omitted for entities without a modifier")
	}
	if _, ok := raw[0]["elem"]; ok {
		t.Error("elem must be omitted for block entities")
	}
	if raw[2]["modVal"] != "s" || raw[2]["modName"] != "size" {
		t.Errorf("unexpected modifier fields: %v", raw[2])
	}
}

func TestWalk_JSONEmpty(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t, nil, "blocks/")
	if err := ta.run("walk", "--format", "json", "blocks"); err != nil {
		t.Fatalf("walk returned error: %v", err)
	}
	if got := strings.TrimSpace(ta.stdout.String()); got != "[]" {
		t.Errorf("output = %q, want []", got)
	}
}

func TestWalk_TOML(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t, nil, "blocks/button_disabled.css", "blocks/button.css")
	if err := ta.run("walk", "--format", "toml", "blocks"); err != nil {
		t.Fatalf("walk returned error: %v", err)
	}

	var doc struct {
		Descriptor []map[string]any `toml:"descriptor"`
	}
	if err := toml.Unmarshal(ta.stdout.Bytes(), &doc); err != nil {
		t.Fatalf("output is not TOML: %v\n%s", err, ta.stdout.String())
	}
	if len(doc.Descriptor) != 2 {
		t.Fatalf("got %d descriptors, want 2", len(doc.Descriptor))
	}
	if doc.Descriptor[0]["block"] != "button" || doc.Descriptor[0]["tech"] != "css" {
		t.Errorf("descriptor[0] = %v", doc.Descriptor[0])
	}
	if doc.Descriptor[1]["modName"] != "disabled" || doc.Descriptor[1]["modVal"] != true {
		t.Errorf("descriptor[1] = %v, want boolean modifier", doc.Descriptor[1])
	}
}

func TestWalk_ConfiguredLevels(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Output.Format = config.FormatJSONL
	cfg.Levels = []config.LevelEntry{
		{Path: "common.blocks"},
		{Path: "desktop.blocks", Scheme: config.SchemeNested},
	}

	ta := newTestApp(t, cfg,
		"common.blocks/link.css",
		"desktop.blocks/link/link.css",
		"desktop.blocks/link.css",
	)
	if err := ta.run("walk"); err != nil {
		t.Fatalf("walk returned error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(ta.stdout.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), ta.stdout.String())
	}
	if !strings.Contains(lines[1], `"path":"`+jsonPath("desktop.blocks", "link", "link.css")+`"`) {
		t.Errorf("nested level should be walked with its own scheme, got %s", lines[1])
	}
}

func jsonPath(parts ...string) string {
	b, _ := json.Marshal(filepath.Join(parts...))
	return strings.Trim(string(b), `"`)
}

func TestWalk_SchemeFlag(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t, nil, "blocks/link/link.css", "blocks/link.css")
	if err := ta.run("walk", "--scheme", "nested", "--format", "jsonl", "blocks"); err != nil {
		t.Fatalf("walk returned error: %v", err)
	}
	if !strings.Contains(ta.stdout.String(), jsonPath("blocks", "link", "link.css")) {
		t.Errorf("expected nested walk output, got %s", ta.stdout.String())
	}
	if strings.Count(ta.stdout.String(), "\n") != 1 {
		t.Errorf("expected exactly one descriptor, got %s", ta.stdout.String())
	}
}

func TestWalk_LevelNotFound(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t, nil, "blocks/button.css")
	err := ta.run("walk", "blocks", "missing.blocks")

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *ExitError, got %T: %v", err, err)
	}
	if exitErr.Code != ExitWalkFailed {
		t.Errorf("exit code = %d, want %d", exitErr.Code, ExitWalkFailed)
	}
	if !errors.Is(err, walk.ErrLevelNotFound) {
		t.Error("error should wrap walk.ErrLevelNotFound")
	}

	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("expected *issue.ActionableError in chain")
	}
	if ae.Issue != issue.LevelNotFoundId || ae.Resource != "missing.blocks" {
		t.Errorf("unexpected actionable error: %+v", ae)
	}

	if !strings.Contains(ta.stdout.String(), "button css") {
		t.Error("descriptors of earlier levels should already be printed")
	}
}

func TestWalk_InvalidScheme(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t, nil, "blocks/button.css")
	err := ta.run("walk", "--scheme", "tree", "blocks")

	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != ExitFailure {
		t.Fatalf("expected exit code %d, got %v", ExitFailure, err)
	}
	if !errors.Is(err, walk.ErrInvalidScheme) {
		t.Errorf("error should wrap walk.ErrInvalidScheme, got %v", err)
	}
	if ta.stdout.Len() != 0 {
		t.Errorf("nothing should be printed, got %q", ta.stdout.String())
	}
}

func TestWalk_InvalidFormat(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t, nil, "blocks/button.css")
	err := ta.run("walk", "--format", "xml", "blocks")

	if !errors.Is(err, config.ErrInvalidOutputFormat) {
		t.Errorf("error should wrap config.ErrInvalidOutputFormat, got %v", err)
	}
	var ae *issue.ActionableError
	if !errors.As(err, &ae) || ae.Issue != issue.InvalidOutputFormatId {
		t.Errorf("expected invalid output format issue, got %v", err)
	}
}

func TestWalk_ConfigError(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t, nil)
	ta.config.err = errors.New("broken config")

	err := ta.run("--config", "custom.cue", "--env-file", "custom.env", "walk", "blocks")
	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != ExitFailure {
		t.Fatalf("expected exit code %d, got %v", ExitFailure, err)
	}
	if ta.config.last.ConfigFilePath != "custom.cue" || ta.config.last.EnvFile != "custom.env" {
		t.Errorf("persistent flags not forwarded: %+v", ta.config.last)
	}
}

func TestWalk_Root(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	level := filepath.Join(root, "common.blocks")
	if err := os.MkdirAll(level, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(level, "page.css"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	ta := newTestAppFS(config.DefaultConfig(), nil)
	if err := ta.run("walk", "--root", root, "--format", "jsonl", "common.blocks"); err != nil {
		t.Fatalf("walk returned error: %v", err)
	}

	var d walk.Descriptor
	if err := json.Unmarshal(ta.stdout.Bytes(), &d); err != nil {
		t.Fatalf("invalid output: %v\n%s", err, ta.stdout.String())
	}
	if d.Level != "common.blocks" || d.Path != filepath.Join("common.blocks", "page.css") {
		t.Errorf("descriptor should stay relative to --root, got %+v", d)
	}
}

func TestWalk_VerboseLogsSkippedEntries(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t, nil, "blocks/button.css", "blocks/README")
	if err := ta.run("walk", "--verbose", "blocks"); err != nil {
		t.Fatalf("walk returned error: %v", err)
	}
	if !strings.Contains(ta.stderr.String(), "skipping entry") {
		t.Errorf("expected debug log of skipped entry, got %q", ta.stderr.String())
	}
}

func TestWalkError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		code int
	}{
		{"not found", &walk.LevelNotFoundError{Level: "x"}, ExitWalkFailed},
		{"traversal", &walk.TraversalError{Level: "x", Path: "x/y", Op: "read dir", Err: os.ErrPermission}, ExitWalkFailed},
		{"scheme", &walk.InvalidSchemeError{Value: "tree"}, ExitFailure},
		{"canceled", context.Canceled, ExitInterrupted},
		{"other", errors.New("boom"), ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var exitErr *ExitError
			if !errors.As(walkError(tt.err), &exitErr) {
				t.Fatal("walkError should return *ExitError")
			}
			if exitErr.Code != tt.code {
				t.Errorf("code = %d, want %d", exitErr.Code, tt.code)
			}
			if !errors.Is(exitErr, tt.err) {
				t.Error("original error should stay in the chain")
			}
		})
	}
}

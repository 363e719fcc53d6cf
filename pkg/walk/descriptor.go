// SPDX-License-Identifier: MPL-2.0

package walk

import (
	"path/filepath"

	"github.com/bemwalk/bemwalk/pkg/naming"
)

// Descriptor describes one component file found during a walk.
type Descriptor struct {
	naming.Entity
	// Tech is the technology tag derived from the file extension.
	Tech string `json:"tech"`
	// Level is the level identifier the file was found under.
	Level string `json:"level"`
	// Path is the file location joined with the host path separator.
	Path string `json:"path"`
}

// newDescriptor parses the base name of the file at dir/name and returns the
// resulting descriptor, or false when the name is not a component file.
func newDescriptor(level, dir, name string) (Descriptor, bool) {
	file, ok := naming.Parse(name)
	if !ok {
		return Descriptor{}, false
	}
	return Descriptor{
		Entity: file.Entity,
		Tech:   file.Tech,
		Level:  level,
		Path:   filepath.Join(dir, name),
	}, true
}

// Fields returns the descriptor as a map holding only the fields that are
// present, with modVal as true or a string. Encoders that cannot use the
// JSON marshalers (e.g. TOML) work from this form.
func (d Descriptor) Fields() map[string]any {
	m := map[string]any{
		"block": d.Block,
		"tech":  d.Tech,
		"level": d.Level,
		"path":  d.Path,
	}
	if d.Elem != "" {
		m["elem"] = d.Elem
	}
	if d.ModName != "" {
		m["modName"] = d.ModName
		m["modVal"] = d.ModVal.Any()
	}
	return m
}

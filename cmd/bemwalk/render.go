// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"

	"github.com/bemwalk/bemwalk/internal/config"
	"github.com/bemwalk/bemwalk/pkg/walk"
)

type (
	// descriptorWriter prints descriptors in one output format. Close is
	// called once after the last Write of a successful walk.
	descriptorWriter interface {
		Write(d walk.Descriptor) error
		Close() error
	}

	// textWriter prints "<entity> <tech> <path>" lines as descriptors arrive.
	textWriter struct {
		w io.Writer
	}

	// jsonlWriter prints one JSON object per line as descriptors arrive.
	jsonlWriter struct {
		enc *json.Encoder
	}

	// jsonWriter buffers descriptors and prints a JSON array on Close.
	jsonWriter struct {
		w           io.Writer
		descriptors []walk.Descriptor
	}

	// tomlWriter buffers descriptors and prints a [[descriptor]] array of tables on Close.
	tomlWriter struct {
		w           io.Writer
		descriptors []map[string]any
	}
)

func newDescriptorWriter(format config.OutputFormat, w io.Writer) (descriptorWriter, error) {
	if ok, errs := format.IsValid(); !ok {
		return nil, errs[0]
	}

	switch format {
	case config.FormatJSONL:
		return &jsonlWriter{enc: json.NewEncoder(w)}, nil
	case config.FormatJSON:
		return &jsonWriter{w: w, descriptors: []walk.Descriptor{}}, nil
	case config.FormatTOML:
		return &tomlWriter{w: w}, nil
	default:
		return &textWriter{w: w}, nil
	}
}

func (t *textWriter) Write(d walk.Descriptor) error {
	_, err := fmt.Fprintf(t.w, "%s %s %s\n",
		CmdStyle.Render(d.Entity.String()),
		techStyle.Render(d.Tech),
		SubtitleStyle.Render(d.Path))
	return err
}

func (t *textWriter) Close() error { return nil }

func (j *jsonlWriter) Write(d walk.Descriptor) error { return j.enc.Encode(d) }

func (j *jsonlWriter) Close() error { return nil }

func (j *jsonWriter) Write(d walk.Descriptor) error {
	j.descriptors = append(j.descriptors, d)
	return nil
}

func (j *jsonWriter) Close() error {
	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")
	return enc.Encode(j.descriptors)
}

func (t *tomlWriter) Write(d walk.Descriptor) error {
	t.descriptors = append(t.descriptors, d.Fields())
	return nil
}

func (t *tomlWriter) Close() error {
	if len(t.descriptors) == 0 {
		return nil
	}
	return toml.NewEncoder(t.w).Encode(map[string]any{"descriptor": t.descriptors})
}

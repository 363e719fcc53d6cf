// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// SchemeFlat keeps component files directly in the level directory.
	// Defined locally to avoid coupling config to pkg/walk; the CLI converts
	// with walk.ParseScheme at the boundary.
	SchemeFlat SchemeName = "flat"
	// SchemeNested keeps component files in block/__elem/_mod directories.
	SchemeNested SchemeName = "nested"

	// FormatText prints one styled line per descriptor.
	FormatText OutputFormat = "text"
	// FormatJSON prints a single JSON array once the walk ends.
	FormatJSON OutputFormat = "json"
	// FormatJSONL prints one JSON object per line as descriptors arrive.
	FormatJSONL OutputFormat = "jsonl"
	// FormatTOML prints a TOML document once the walk ends.
	FormatTOML OutputFormat = "toml"

	// LogLevelDebug enables debug logging, including skipped entries.
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo is the default log level.
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn logs warnings and errors only.
	LogLevelWarn LogLevel = "warn"
	// LogLevelError logs errors only.
	LogLevelError LogLevel = "error"
)

var (
	// ErrInvalidSchemeName is returned when a SchemeName value is not recognized.
	ErrInvalidSchemeName = errors.New("invalid scheme")
	// ErrInvalidOutputFormat is returned when an OutputFormat value is not recognized.
	ErrInvalidOutputFormat = errors.New("invalid output format")
	// ErrInvalidLogLevel is returned when a LogLevel value is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidLevelEntry is the sentinel error wrapped by InvalidLevelEntryError.
	ErrInvalidLevelEntry = errors.New("invalid level entry")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// SchemeName names a directory layout convention.
	SchemeName string

	// InvalidSchemeNameError is returned when a SchemeName value is not recognized.
	// It wraps ErrInvalidSchemeName for errors.Is() compatibility.
	InvalidSchemeNameError struct {
		Value SchemeName
	}

	// OutputFormat selects how `bemwalk walk` prints descriptors.
	OutputFormat string

	// InvalidOutputFormatError is returned when an OutputFormat value is not recognized.
	// It wraps ErrInvalidOutputFormat for errors.Is() compatibility.
	InvalidOutputFormatError struct {
		Value OutputFormat
	}

	// LogLevel selects the minimum level of log output.
	LogLevel string

	// InvalidLogLevelError is returned when a LogLevel value is not recognized.
	// It wraps ErrInvalidLogLevel for errors.Is() compatibility.
	InvalidLogLevelError struct {
		Value LogLevel
	}

	// InvalidLevelEntryError is returned when a LevelEntry has invalid fields.
	InvalidLevelEntryError struct {
		Index       int
		FieldErrors []error
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// LevelEntry is one configured level.
	LevelEntry struct {
		// Path is the level directory, relative to the working directory or absolute.
		Path string `json:"path" mapstructure:"path"`
		// Scheme overrides the top-level scheme for this level when set.
		Scheme SchemeName `json:"scheme,omitempty" mapstructure:"scheme"`
	}

	// Config holds the application configuration.
	Config struct {
		// Scheme is the layout used for levels without their own scheme.
		Scheme SchemeName `json:"scheme" mapstructure:"scheme"`
		// Levels are walked, in order, when `bemwalk walk` gets no arguments.
		Levels []LevelEntry `json:"levels" mapstructure:"levels"`
		// Output configures result printing.
		Output OutputConfig `json:"output" mapstructure:"output"`
		// UI configures the user interface.
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// OutputConfig configures result printing.
	OutputConfig struct {
		Format OutputFormat `json:"format" mapstructure:"format"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// Verbose enables debug logging and error chains.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
		// LogLevel sets the log level when Verbose is off.
		LogLevel LogLevel `json:"log_level" mapstructure:"log_level"`
	}
)

// String returns the scheme name.
func (s SchemeName) String() string { return string(s) }

// IsValid returns whether the SchemeName is one of the defined schemes.
func (s SchemeName) IsValid() (bool, []error) {
	switch s {
	case SchemeFlat, SchemeNested:
		return true, nil
	default:
		return false, []error{&InvalidSchemeNameError{Value: s}}
	}
}

// Error implements the error interface.
func (e *InvalidSchemeNameError) Error() string {
	return fmt.Sprintf("invalid scheme %q (valid: flat, nested)", e.Value)
}

// Unwrap returns ErrInvalidSchemeName for errors.Is() compatibility.
func (e *InvalidSchemeNameError) Unwrap() error { return ErrInvalidSchemeName }

// String returns the format name.
func (f OutputFormat) String() string { return string(f) }

// IsValid returns whether the OutputFormat is one of the defined formats.
func (f OutputFormat) IsValid() (bool, []error) {
	switch f {
	case FormatText, FormatJSON, FormatJSONL, FormatTOML:
		return true, nil
	default:
		return false, []error{&InvalidOutputFormatError{Value: f}}
	}
}

// Error implements the error interface.
func (e *InvalidOutputFormatError) Error() string {
	return fmt.Sprintf("invalid output format %q (valid: %s)", e.Value, strings.Join(formatNames(), ", "))
}

// Unwrap returns ErrInvalidOutputFormat for errors.Is() compatibility.
func (e *InvalidOutputFormatError) Unwrap() error { return ErrInvalidOutputFormat }

// OutputFormats returns all supported output formats.
func OutputFormats() []OutputFormat {
	return []OutputFormat{FormatText, FormatJSON, FormatJSONL, FormatTOML}
}

func formatNames() []string {
	formats := OutputFormats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return names
}

// String returns the level name.
func (l LogLevel) String() string { return string(l) }

// IsValid returns whether the LogLevel is one of the defined levels.
func (l LogLevel) IsValid() (bool, []error) {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true, nil
	default:
		return false, []error{&InvalidLogLevelError{Value: l}}
	}
}

// Error implements the error interface.
func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid: debug, info, warn, error)", e.Value)
}

// Unwrap returns ErrInvalidLogLevel for errors.Is() compatibility.
func (e *InvalidLogLevelError) Unwrap() error { return ErrInvalidLogLevel }

// IsValid returns whether the LevelEntry has a path and, when set, a valid scheme.
func (e LevelEntry) IsValid() (bool, []error) {
	var errs []error
	if strings.TrimSpace(e.Path) == "" {
		errs = append(errs, errors.New("level path must not be empty"))
	}
	if e.Scheme != "" {
		if valid, fieldErrs := e.Scheme.IsValid(); !valid {
			errs = append(errs, fieldErrs...)
		}
	}
	if len(errs) > 0 {
		return false, errs
	}
	return true, nil
}

// Error implements the error interface.
func (e *InvalidLevelEntryError) Error() string {
	return fmt.Sprintf("levels[%d]: %v", e.Index, errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidLevelEntry for errors.Is() compatibility.
func (e *InvalidLevelEntryError) Unwrap() error { return ErrInvalidLevelEntry }

// IsValid returns whether the Config has valid fields. The empty scheme,
// format and log level are invalid here; DefaultConfig fills them in.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Scheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	for i, entry := range c.Levels {
		if valid, fieldErrs := entry.IsValid(); !valid {
			errs = append(errs, &InvalidLevelEntryError{Index: i, FieldErrors: fieldErrs})
		}
	}
	if valid, fieldErrs := c.Output.Format.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.UI.LogLevel.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Validate returns the first-level validation error of c, or nil.
func (c Config) Validate() error {
	if valid, errs := c.IsValid(); !valid {
		return errs[0]
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	if len(e.FieldErrors) == 1 {
		return fmt.Sprintf("invalid config: %v", e.FieldErrors[0])
	}
	return fmt.Sprintf("invalid config: %d field error(s): %v", len(e.FieldErrors), errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// LevelPaths returns the configured level paths in order.
func (c Config) LevelPaths() []string {
	paths := make([]string, len(c.Levels))
	for i, entry := range c.Levels {
		paths[i] = entry.Path
	}
	return paths
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Scheme: SchemeFlat,
		Levels: []LevelEntry{},
		Output: OutputConfig{
			Format: FormatText,
		},
		UI: UIConfig{
			Verbose:  false,
			LogLevel: LogLevelInfo,
		},
	}
}

// SPDX-License-Identifier: MPL-2.0

package walk

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

const (
	// SchemeFlat keeps every component file directly in the level directory.
	SchemeFlat Scheme = "flat"
	// SchemeNested keeps files in block/__elem/_mod directories.
	SchemeNested Scheme = "nested"

	// DefaultScheme is used when no scheme is configured.
	DefaultScheme = SchemeFlat
)

// ErrInvalidScheme is the sentinel error wrapped by InvalidSchemeError.
var ErrInvalidScheme = errors.New("invalid scheme")

type (
	// Scheme names a directory layout convention.
	Scheme string

	// InvalidSchemeError is returned when a Scheme value is not recognized.
	// It wraps ErrInvalidScheme for errors.Is() compatibility.
	InvalidSchemeError struct {
		Value Scheme
	}

	// emitFunc hands one descriptor to the stream. A non-nil error means the
	// stream is gone and traversal must stop.
	emitFunc func(Descriptor) error

	// levelScan is the context one strategy run works with.
	levelScan struct {
		fs    afero.Fs
		level string
		emit  emitFunc
		skip  func(path, reason string)
	}

	// strategy traverses one level directory.
	strategy func(ctx context.Context, scan *levelScan) error
)

// strategies is the closed set of traversal strategies.
var strategies = map[Scheme]strategy{
	SchemeFlat:   walkFlat,
	SchemeNested: walkNested,
}

// Schemes returns all supported schemes.
func Schemes() []Scheme {
	return []Scheme{SchemeFlat, SchemeNested}
}

// String returns the scheme name.
func (s Scheme) String() string { return string(s) }

// IsValid returns whether the Scheme is one of the defined schemes.
func (s Scheme) IsValid() (bool, []error) {
	if _, ok := strategies[s]; ok {
		return true, nil
	}
	return false, []error{&InvalidSchemeError{Value: s}}
}

// ParseScheme converts a configuration value into a Scheme. The empty string
// selects DefaultScheme.
func ParseScheme(s string) (Scheme, error) {
	if strings.TrimSpace(s) == "" {
		return DefaultScheme, nil
	}
	scheme := Scheme(strings.ToLower(strings.TrimSpace(s)))
	if ok, errs := scheme.IsValid(); !ok {
		return "", errs[0]
	}
	return scheme, nil
}

// Error implements the error interface.
func (e *InvalidSchemeError) Error() string {
	return fmt.Sprintf("invalid scheme %q (valid: %s, %s)", e.Value, SchemeFlat, SchemeNested)
}

// Unwrap returns ErrInvalidScheme for errors.Is() compatibility.
func (e *InvalidSchemeError) Unwrap() error { return ErrInvalidScheme }

// SPDX-License-Identifier: MPL-2.0

package walk

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

type (
	// Walker walks levels with a fixed configuration. A Walker holds no
	// per-walk state and may run any number of walks concurrently.
	Walker struct {
		fs           afero.Fs
		scheme       Scheme
		levelSchemes map[string]Scheme
		logger       *slog.Logger
	}

	// Option configures a Walker.
	Option func(*Walker)
)

// WithScheme sets the scheme used for levels without an override.
// The empty scheme keeps DefaultScheme.
func WithScheme(s Scheme) Option {
	return func(w *Walker) {
		if s != "" {
			w.scheme = s
		}
	}
}

// WithLevelScheme overrides the scheme for one level identifier.
func WithLevelScheme(level string, s Scheme) Option {
	return func(w *Walker) {
		if w.levelSchemes == nil {
			w.levelSchemes = make(map[string]Scheme)
		}
		w.levelSchemes[level] = s
	}
}

// WithFS sets the filesystem levels are resolved against.
func WithFS(fsys afero.Fs) Option {
	return func(w *Walker) {
		if fsys != nil {
			w.fs = fsys
		}
	}
}

// WithLogger sets the logger for debug output about skipped entries.
func WithLogger(l *slog.Logger) Option {
	return func(w *Walker) {
		if l != nil {
			w.logger = l
		}
	}
}

// New creates a Walker. Without options it walks the OS filesystem, read-only,
// with the flat scheme.
func New(opts ...Option) *Walker {
	w := &Walker{
		fs:     afero.NewReadOnlyFs(afero.NewOsFs()),
		scheme: DefaultScheme,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Walk is shorthand for New(opts...).Walk(ctx, levels).
func Walk(ctx context.Context, levels []string, opts ...Option) *Stream {
	return New(opts...).Walk(ctx, levels)
}

// Walk starts walking levels in order and returns the stream of descriptors.
// Production starts asynchronously and blocks until the consumer receives,
// so no descriptor is lost between this call and attaching a consumer.
func (w *Walker) Walk(ctx context.Context, levels []string) *Stream {
	levels = append([]string(nil), levels...)
	return newStream(ctx, func(ctx context.Context, emit emitFunc) error {
		for _, level := range levels {
			if err := w.walkLevel(ctx, level, emit); err != nil {
				return err
			}
		}
		return nil
	})
}

// SchemeFor returns the scheme the walker applies to level.
func (w *Walker) SchemeFor(level string) Scheme {
	if s, ok := w.levelSchemes[level]; ok && s != "" {
		return s
	}
	return w.scheme
}

func (w *Walker) walkLevel(ctx context.Context, level string, emit emitFunc) error {
	scheme := w.SchemeFor(level)
	run, ok := strategies[scheme]
	if !ok {
		return &InvalidSchemeError{Value: scheme}
	}

	if err := w.resolveLevel(ctx, level); err != nil {
		return err
	}

	w.logger.Debug("walking level", "level", level, "scheme", scheme)

	return run(ctx, &levelScan{
		fs:    w.fs,
		level: level,
		emit:  emit,
		skip: func(path, reason string) {
			w.logger.Debug("skipping entry", "level", level, "path", path, "reason", reason)
		},
	})
}

// resolveLevel checks that level names an existing directory.
func (w *Walker) resolveLevel(ctx context.Context, level string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	info, err := w.fs.Stat(level)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &LevelNotFoundError{Level: level, Err: err}
	case err != nil:
		return &TraversalError{Level: level, Path: level, Op: "stat", Err: err}
	case !info.IsDir():
		return &LevelNotFoundError{Level: level}
	}
	return nil
}

// readDir lists dir in lexical order.
func (s *levelScan) readDir(ctx context.Context, dir string) ([]os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return nil, &TraversalError{Level: s.level, Path: dir, Op: "read dir", Err: err}
	}
	return entries, nil
}

// file emits the descriptor for a directory entry when it is a regular file
// with a component name. Symlinks are followed with one extra Stat; a link
// whose target is missing is skipped, any other Stat failure ends the walk.
func (s *levelScan) file(ctx context.Context, dir string, entry os.FileInfo) error {
	name := entry.Name()
	path := filepath.Join(dir, name)

	if entry.Mode()&os.ModeSymlink != 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		target, err := s.fs.Stat(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			s.skip(path, "broken symlink")
			return nil
		case err != nil:
			return &TraversalError{Level: s.level, Path: path, Op: "stat", Err: err}
		case target.IsDir():
			s.skip(path, "symlinked directory")
			return nil
		}
		entry = target
	}

	if !entry.Mode().IsRegular() {
		s.skip(path, "not a regular file")
		return nil
	}

	d, ok := newDescriptor(s.level, dir, name)
	if !ok {
		s.skip(path, "not a component file name")
		return nil
	}
	return s.emit(d)
}

// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/bemwalk/bemwalk/internal/config"
	"github.com/bemwalk/bemwalk/internal/issue"
	"github.com/bemwalk/bemwalk/pkg/walk"
)

// walkFlags holds the `bemwalk walk` flag values. Empty values defer to configuration.
type walkFlags struct {
	scheme string
	format string
	root   string
}

func newWalkCommand(app *App, flags *rootFlags) *cobra.Command {
	wf := &walkFlags{}

	walkCmd := &cobra.Command{
		Use:   "walk [level...]",
		Short: "Walk levels and print one descriptor per component file",
		Long: `Walk levels in order and print one descriptor per component file.

Without arguments the levels listed in the configuration are walked. Text and
jsonl output is printed as files are found; json and toml output is printed
once the walk ends. A missing level stops the walk with exit status 2.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWalk(cmd.Context(), app, flags, wf, args)
		},
	}

	walkCmd.Flags().StringVarP(&wf.scheme, "scheme", "s", "", "level layout: flat or nested (default from config, else flat)")
	walkCmd.Flags().StringVarP(&wf.format, "format", "f", "", "output format: text, json, jsonl or toml (default from config, else text)")
	walkCmd.Flags().StringVar(&wf.root, "root", "", "resolve levels against this directory instead of the working directory")

	return walkCmd
}

func runWalk(ctx context.Context, app *App, flags *rootFlags, wf *walkFlags, args []string) error {
	cfg, err := app.loadConfig(ctx, flags)
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}

	logger := newLogger(app.stderr, cfg, flags.verbose)

	opts, err := walkerOptions(cfg, wf, logger)
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}

	format := cfg.Output.Format
	if wf.format != "" {
		format = config.OutputFormat(wf.format)
	}
	out, err := newDescriptorWriter(format, app.stdout)
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: issue.NewErrorContext().
			WithOperation("select output format").
			WithResource(string(format)).
			WithSuggestion("Use one of: text, json, jsonl, toml").
			WithIssue(issue.InvalidOutputFormatId).
			Wrap(err).
			BuildError()}
	}

	levels := args
	if len(levels) == 0 {
		levels = cfg.LevelPaths()
	}
	if len(levels) == 0 {
		logger.Warn("no levels given and none configured")
	}

	stream := app.Walkers(opts...).Walk(ctx, levels)
	for d, err := range stream.All() {
		if err != nil {
			return walkError(err)
		}
		if err := out.Write(d); err != nil {
			return &ExitError{Code: ExitFailure, Err: err}
		}
	}

	if err := out.Close(); err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}
	return nil
}

// walkerOptions turns flags and configuration into walker options. The
// --scheme flag replaces the configured default scheme; per-level schemes
// from the configuration still apply to their levels.
func walkerOptions(cfg *config.Config, wf *walkFlags, logger *slog.Logger) ([]walk.Option, error) {
	schemeName := string(cfg.Scheme)
	if wf.scheme != "" {
		schemeName = wf.scheme
	}
	scheme, err := parseScheme(schemeName)
	if err != nil {
		return nil, err
	}

	opts := []walk.Option{
		walk.WithScheme(scheme),
		walk.WithLogger(logger),
	}

	for _, entry := range cfg.Levels {
		if entry.Scheme == "" {
			continue
		}
		levelScheme, err := parseScheme(string(entry.Scheme))
		if err != nil {
			return nil, err
		}
		opts = append(opts, walk.WithLevelScheme(entry.Path, levelScheme))
	}

	if wf.root != "" {
		opts = append(opts, walk.WithFS(afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), wf.root))))
	}

	return opts, nil
}

func parseScheme(name string) (walk.Scheme, error) {
	scheme, err := walk.ParseScheme(name)
	if err != nil {
		return "", issue.NewErrorContext().
			WithOperation("select scheme").
			WithResource(name).
			WithSuggestion("Use --scheme flat or --scheme nested").
			WithIssue(issue.InvalidSchemeId).
			Wrap(err).
			BuildError()
	}
	return scheme, nil
}

// walkError maps the error that ended a walk to an exit status and an
// actionable message.
func walkError(err error) error {
	var (
		notFound  *walk.LevelNotFoundError
		traversal *walk.TraversalError
	)

	switch {
	case errors.As(err, &notFound):
		return &ExitError{Code: ExitWalkFailed, Err: issue.NewErrorContext().
			WithOperation("walk level").
			WithResource(notFound.Level).
			WithSuggestion("Check that the level directory exists").
			WithSuggestion("Relative levels resolve against the working directory or --root").
			WithIssue(issue.LevelNotFoundId).
			Wrap(err).
			BuildError()}
	case errors.As(err, &traversal):
		return &ExitError{Code: ExitWalkFailed, Err: issue.NewErrorContext().
			WithOperation("walk level").
			WithResource(traversal.Path).
			WithSuggestion("Check permissions on the reported directory").
			WithIssue(issue.TraversalFailedId).
			Wrap(err).
			BuildError()}
	case errors.Is(err, walk.ErrInvalidScheme):
		return &ExitError{Code: ExitFailure, Err: issue.NewErrorContext().
			WithOperation("walk level").
			WithIssue(issue.InvalidSchemeId).
			Wrap(err).
			BuildError()}
	case errors.Is(err, context.Canceled):
		return &ExitError{Code: ExitInterrupted, Err: err}
	default:
		return &ExitError{Code: ExitFailure, Err: err}
	}
}

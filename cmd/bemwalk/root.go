// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/bemwalk/bemwalk/internal/issue"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd, _ := newRootCommand(app)
	return rootCmd
}

func newRootCommand(app *App) (*cobra.Command, *rootFlags) {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "bemwalk",
		Short: "Walk BEM redefinition levels and list component files",
		Long: TitleStyle.Render("bemwalk") + SubtitleStyle.Render(" - walk BEM redefinition levels") + `

bemwalk scans level directories for files named after BEM entities
(block, block__elem, block_mod_val, block__elem_mod_val) and prints one
descriptor per file. Levels use the flat layout (all files in the level
directory) or the nested layout (block/__elem/_mod directories).

` + SubtitleStyle.Render("Examples:") + `
  bemwalk walk common.blocks                 Walk one flat level
  bemwalk walk --scheme nested blocks        Walk a nested level
  bemwalk walk --format jsonl                Walk the configured levels
  bemwalk parse button__icon_size_s.css      Parse a file name
  bemwalk config show                        Show current configuration`,
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging and full error chains")
	pf.StringVar(&flags.configPath, "config", "", "config file (default is <config dir>/bemwalk/config.cue, then ./bemwalk.cue)")
	pf.StringVar(&flags.envFile, "env-file", "", "read BEMWALK_* variables from a .env file")

	rootCmd.AddCommand(
		newWalkCommand(app, flags),
		newParseCommand(app),
		newConfigCommand(app, flags),
		newExplainCommand(app),
	)

	return rootCmd, flags
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version != "dev" {
		return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev (built from source)"
}

// Execute runs the CLI and exits with the status carried by the returned error.
// This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})
	rootCmd, flags := newRootCommand(app)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			writeError(w, err, flags.verbose)
		}),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(ExitFailure)
	}
}

// writeError prints err for the user. In verbose mode the catalogue page
// linked to an ActionableError follows the message.
func writeError(w io.Writer, err error, verbose bool) {
	fmt.Fprintln(w, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))

	var ae *issue.ActionableError
	if !verbose || !errors.As(err, &ae) || ae.Issue == 0 {
		return
	}
	if page := issue.Get(ae.Issue); page != nil {
		if rendered, renderErr := page.Render("dark"); renderErr == nil {
			fmt.Fprint(w, rendered)
		}
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}

// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bemwalk/bemwalk/internal/config"
)

// newConfigCommand creates the read-only `bemwalk config` command tree.
func newConfigCommand(app *App, flags *rootFlags) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect bemwalk configuration",
		Long: `Inspect bemwalk configuration.

Configuration is read from the first file found:
  - the file passed with --config
  - Linux: ~/.config/bemwalk/config.cue
  - macOS: ~/Library/Application Support/bemwalk/config.cue
  - Windows: %APPDATA%\bemwalk\config.cue
  - ./bemwalk.cue

BEMWALK_* environment variables (e.g. BEMWALK_SCHEME, BEMWALK_OUTPUT_FORMAT)
override file values.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context(), app, flags)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the configuration file in use",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := app.Config.Path(flags.loadOptions())
			if err != nil {
				return err
			}
			if path == "" {
				fmt.Fprintln(app.stdout, SubtitleStyle.Render("(using defaults)"))
				return nil
			}
			fmt.Fprintln(app.stdout, path)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig(cmd.Context(), flags)
			if err != nil {
				return err
			}
			fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			return nil
		},
	})

	return cfgCmd
}

func showConfig(ctx context.Context, app *App, flags *rootFlags) error {
	cfg, err := app.loadConfig(ctx, flags)
	if err != nil {
		return err
	}

	w := app.stdout

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	if path, err := app.Config.Path(flags.loadOptions()); err == nil && path != "" {
		fmt.Fprintf(w, "%s: %s\n", CmdStyle.Render("Config file"), path)
	} else {
		fmt.Fprintf(w, "%s: %s\n", CmdStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(w)

	writeValue(w, "scheme", cfg.Scheme.String())

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", CmdStyle.Render("levels"))
	if len(cfg.Levels) == 0 {
		fmt.Fprintf(w, "  %s\n", SubtitleStyle.Render("(none configured)"))
	}
	for _, entry := range cfg.Levels {
		if entry.Scheme != "" {
			fmt.Fprintf(w, "  - %s (scheme: %s)\n", SuccessStyle.Render(entry.Path), SuccessStyle.Render(entry.Scheme.String()))
		} else {
			fmt.Fprintf(w, "  - %s\n", SuccessStyle.Render(entry.Path))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", CmdStyle.Render("output"))
	writeValue(w, "  format", cfg.Output.Format.String())

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", CmdStyle.Render("ui"))
	writeValue(w, "  verbose", fmt.Sprintf("%v", cfg.UI.Verbose))
	writeValue(w, "  log_level", cfg.UI.LogLevel.String())

	return nil
}

func writeValue(w io.Writer, key, value string) {
	fmt.Fprintf(w, "%s: %s\n", key, SuccessStyle.Render(value))
}

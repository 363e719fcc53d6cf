// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bemwalk/bemwalk/pkg/naming"
)

// parseResult is the --json form of one parsed name.
type parseResult struct {
	Name  string `json:"name"`
	Valid bool   `json:"valid"`
	*naming.File
}

func newParseCommand(app *App) *cobra.Command {
	var asJSON bool

	parseCmd := &cobra.Command{
		Use:   "parse <name>...",
		Short: "Parse file or entity names into BEM entities",
		Long: `Parse file names the way the walker does and print the entity each one names.

Names without an extension are parsed as bare entity names (block__elem_mod_val).
Names that are not component names are reported and make the command exit with
status 1.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(app, args, asJSON)
		},
	}

	parseCmd.Flags().BoolVar(&asJSON, "json", false, "print one JSON object per name")

	return parseCmd
}

func runParse(app *App, names []string, asJSON bool) error {
	enc := json.NewEncoder(app.stdout)
	rejected := 0

	for _, name := range names {
		file, ok := parseName(name)
		if !ok {
			rejected++
		}

		if asJSON {
			res := parseResult{Name: name, Valid: ok}
			if ok {
				res.File = &file
			}
			if err := enc.Encode(res); err != nil {
				return err
			}
			continue
		}

		if !ok {
			fmt.Fprintf(app.stdout, "%s %s\n", name, WarningStyle.Render("not a component name"))
			continue
		}
		fmt.Fprintf(app.stdout, "%s %s\n", name, describeFile(file))
	}

	if rejected > 0 {
		return &ExitError{Code: ExitFailure, Err: fmt.Errorf("%d of %d name(s) rejected", rejected, len(names))}
	}
	return nil
}

// parseName parses a file name, or an entity name when name has no extension.
func parseName(name string) (naming.File, bool) {
	if !strings.Contains(name, naming.TechDelim) {
		entity, ok := naming.ParseEntity(name)
		return naming.File{Entity: entity}, ok
	}
	return naming.Parse(name)
}

// describeFile renders the present fields of file as key=value pairs.
func describeFile(file naming.File) string {
	s := field("block", file.Block)
	if file.IsElem() {
		s += " " + field("elem", file.Elem)
	}
	if file.IsMod() {
		s += " " + field("modName", file.ModName) + " " + field("modVal", file.ModVal.String())
	}
	if file.Tech != "" {
		s += " " + field("tech", file.Tech)
	}
	return s
}

func field(key, value string) string {
	return CmdStyle.Render(key) + "=" + SuccessStyle.Render(value)
}

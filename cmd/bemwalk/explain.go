// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bemwalk/bemwalk/internal/issue"
)

func newExplainCommand(app *App) *cobra.Command {
	var style string

	explainCmd := &cobra.Command{
		Use:   "explain [issue]",
		Short: "Explain an error and how to fix it",
		Long: `Print the help page for an error. Without arguments, list all pages.

Errors printed with --verbose include their page automatically.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				listIssues(app)
				return nil
			}

			page, ok := issue.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown issue %q; run 'bemwalk explain' to list issues", args[0])
			}
			rendered, err := page.Render(style)
			if err != nil {
				return err
			}
			fmt.Fprint(app.stdout, rendered)
			return nil
		},
	}

	explainCmd.Flags().StringVar(&style, "style", "dark", "glamour style: dark, light, notty or a JSON style file")

	return explainCmd
}

func listIssues(app *App) {
	for _, page := range issue.Values() {
		fmt.Fprintf(app.stdout, "%s  %s\n", CmdStyle.Render(page.Name()), SubtitleStyle.Render(issueTitle(page)))
	}
}

// issueTitle returns the first Markdown heading of the page.
func issueTitle(page *issue.Issue) string {
	for line := range strings.Lines(string(page.MarkdownMsg())) {
		if title, ok := strings.CutPrefix(strings.TrimSpace(line), "# "); ok {
			return title
		}
	}
	return page.Name()
}

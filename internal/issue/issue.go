// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
)

const (
	LevelNotFoundId Id = iota + 1
	TraversalFailedId
	ConfigLoadFailedId
	InvalidSchemeId
	InvalidOutputFormatId
)

type (
	// Id identifies a catalogue page.
	Id int

	// MarkdownMsg is the Markdown body of a page.
	MarkdownMsg string

	// HttpLink is an external reference shown under "See also".
	HttpLink string

	// Issue is one catalogue page.
	Issue struct {
		id       Id
		name     string
		mdMsg    MarkdownMsg
		extLinks []HttpLink
	}
)

func (i *Issue) Id() Id {
	return i.id
}

// Name is the slug used by `bemwalk explain <name>`.
func (i *Issue) Name() string {
	return i.name
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the page for the terminal. stylePath is a glamour style
// name ("dark", "light", "notty") or a path to a JSON style file.
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.extLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range i.extLinks {
			md.WriteString("- <" + string(link) + ">\n")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	levelNotFoundIssue = &Issue{
		id:   LevelNotFoundId,
		name: "level-not-found",
		mdMsg: `
# Level not found

A level passed to the walk does not exist or is not a directory. The walk
stops at the first such level; descriptors from earlier levels were already
printed.

## Things you can try
- Check the spelling of the level path. Relative paths resolve against the
  working directory, or against ` + "`--root`" + ` when it is set.
- List the levels the configuration provides:
~~~
$ bemwalk config show
~~~
- Pass levels explicitly:
~~~
$ bemwalk walk common.blocks desktop.blocks
~~~`,
		extLinks: []HttpLink{"https://en.bem.info/methodology/redefinition-levels/"},
	}

	traversalFailedIssue = &Issue{
		id:   TraversalFailedId,
		name: "traversal-failed",
		mdMsg: `
# Level traversal failed

A directory inside a level could not be read, most often because of
missing permissions. Nothing past the failing directory was walked.

## Things you can try
- Check permissions on the reported path:
~~~
$ ls -ld <path>
~~~
- Run with ` + "`--verbose`" + ` to see the full error chain.`,
	}

	configLoadFailedIssue = &Issue{
		id:   ConfigLoadFailedId,
		name: "config-load-failed",
		mdMsg: `
# Failed to load configuration

The configuration file could not be read or does not match the schema.

## Search order
1. The file named by ` + "`--config`" + `
2. ` + "`config.cue`" + ` in the bemwalk config directory
3. ` + "`bemwalk.cue`" + ` in the working directory

## Example
~~~cue
scheme: "nested"
levels: [
	{path: "common.blocks"},
	{path: "desktop.blocks", scheme: "flat"},
]
output: format: "jsonl"
~~~

## Things you can try
- Print a valid configuration to start from:
~~~
$ bemwalk config dump
~~~`,
		extLinks: []HttpLink{"https://cuelang.org/docs/"},
	}

	invalidSchemeIssue = &Issue{
		id:   InvalidSchemeId,
		name: "invalid-scheme",
		mdMsg: `
# Unknown scheme

A scheme names the file layout of a level. Two schemes exist:

| Scheme   | Layout                                              |
|----------|-----------------------------------------------------|
| ` + "`flat`" + `   | ` + "`level/block__elem_mod_val.tech`" + `                    |
| ` + "`nested`" + ` | ` + "`level/block/__elem/_mod/block__elem_mod_val.tech`" + ` |

## Things you can try
~~~
$ bemwalk walk --scheme nested common.blocks
~~~`,
	}

	invalidOutputFormatIssue = &Issue{
		id:   InvalidOutputFormatId,
		name: "invalid-output-format",
		mdMsg: `
# Unknown output format

` + "`--format`" + ` and ` + "`output.format`" + ` accept:

- ` + "`text`" + `: one line per file, printed as found
- ` + "`jsonl`" + `: one JSON object per line, printed as found
- ` + "`json`" + `: a JSON array, printed when the walk ends
- ` + "`toml`" + `: a TOML document, printed when the walk ends`,
	}

	issues = map[Id]*Issue{
		levelNotFoundIssue.Id():       levelNotFoundIssue,
		traversalFailedIssue.Id():     traversalFailedIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
		invalidSchemeIssue.Id():       invalidSchemeIssue,
		invalidOutputFormatIssue.Id(): invalidOutputFormatIssue,
	}
)

// Values returns every issue ordered by Id.
func Values() []*Issue {
	values := make([]*Issue, 0, len(issues))
	for _, id := range slices.Sorted(maps.Keys(issues)) {
		values = append(values, issues[id])
	}
	return values
}

func Get(id Id) *Issue {
	return issues[id]
}

// Lookup finds an issue by its name.
func Lookup(name string) (*Issue, bool) {
	for _, i := range issues {
		if i.name == name {
			return i, true
		}
	}
	return nil, false
}

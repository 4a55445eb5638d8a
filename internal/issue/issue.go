// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
)

const (
	ConfigLoadFailedId Id = iota + 1
	RegistryParseFailedId
	InvalidRepoIdentifierId
	InvalidSuperprojectNameId
	StoreFailedId
	FinderFailedId
)

type (
	// Id identifies a troubleshooting guide.
	Id int

	// MarkdownMsg is the body of a guide.
	MarkdownMsg string

	// HttpLink points to further reading.
	HttpLink string

	// Issue is a Markdown troubleshooting guide for one class of failure.
	Issue struct {
		id       Id
		mdMsg    MarkdownMsg
		docLinks []HttpLink
		extLinks []HttpLink
	}
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// DocLinks returns a copy of the links to reference documentation.
func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// ExtLinks returns a copy of the links to third-party resources.
func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Links returns the documentation links followed by the external ones.
func (i *Issue) Links() []HttpLink {
	return slices.Concat(i.DocLinks(), i.ExtLinks())
}

// Render renders the guide for the terminal with the given glamour style
// ("dark", "light", "notty" or a path to a JSON style).
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.MarkdownMsg()))
	if links := i.Links(); len(links) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range links {
			md.WriteString("\n- <" + string(link) + ">")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load the configuration!

The configuration file could not be read or does not match the schema.

## Things you can try:
- Print the file that is being used:
~~~
$ git-superproject config path
~~~

- Compare it with the defaults:
~~~
$ git-superproject config dump
~~~

- Recreate a default configuration file:
~~~
$ git-superproject config init
~~~

## Example configuration:
~~~cue
registry_file: "~/.git/multi/superprojects.config"
store:         "git"
finder:        "fzf --multi --print0"
ui: {
	color_scheme: "auto"
}
~~~`,
		extLinks: []HttpLink{"https://cuelang.org/docs/"},
	}

	registryParseFailedIssue = &Issue{
		id: RegistryParseFailedId,
		mdMsg: `
# The registry file contains a malformed entry!

Every superproject entry must look like this:
~~~
[superproject "tools"]
	repo = acme/cli
	repo = acme/lib
~~~

## Things you can try:
- Inspect the entries that git sees:
~~~
$ git config --file ~/.git/multi/superprojects.config --list
~~~

- Skip malformed entries for this run:
~~~
$ git-superproject --lenient list
~~~

- Fix or delete the offending line with a text editor`,
		extLinks: []HttpLink{"https://git-scm.com/docs/git-config#_configuration_file"},
	}

	invalidRepoIdentifierIssue = &Issue{
		id: InvalidRepoIdentifierId,
		mdMsg: `
# Invalid repository identifier!

Repositories are named **owner/repo**. Both parts may contain letters, digits,
underscores, dots and dashes, and nothing else.

## Examples:
- ` + "`acme/cli`" + `
- ` + "`my-org/my.repo_2`" + `

## Things you can try:
- Drop any URL prefix such as ` + "`https://github.com/`" + `
- Drop any ` + "`.git`" + ` suffix copied from a clone URL`,
	}

	invalidSuperprojectNameIssue = &Issue{
		id: InvalidSuperprojectNameId,
		mdMsg: `
# Invalid superproject name!

Superproject names become the subsection of a git config key
(` + "`superproject.<name>.repo`" + `), so they cannot be empty and cannot
contain newlines or double quotes.

## Things you can try:
- List the existing superprojects:
~~~
$ git-superproject list
~~~`,
	}

	storeFailedIssue = &Issue{
		id: StoreFailedId,
		mdMsg: `
# Failed to read or write the registry file!

By default the registry is managed through ` + "`git config --file`" + `.

## Things you can try:
- Check that git is installed and on your PATH:
~~~
$ git --version
~~~

- Point to a different git binary in the configuration (` + "`git_binary`" + `)
- Use the built-in git config writer instead:
~~~
$ git-superproject --store file list
~~~

- Check the permissions of the registry file and its directory`,
		docLinks: []HttpLink{"https://git-scm.com/docs/git-config"},
	}

	finderFailedIssue = &Issue{
		id: FinderFailedId,
		mdMsg: `
# The finder failed!

The edit loop pipes candidates into the finder and reads the NUL-separated
selection back. Exiting the finder without a selection ends the loop.

## Things you can try:
- Check that the finder is installed:
~~~
$ fzf --version
~~~

- Use a different finder for one run:
~~~
$ git-superproject edit tools --finder 'sk --multi --print0'
~~~

- Set ` + "`finder`" + ` in the configuration file`,
		extLinks: []HttpLink{"https://github.com/junegunn/fzf"},
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id():        configLoadFailedIssue,
		registryParseFailedIssue.Id():     registryParseFailedIssue,
		invalidRepoIdentifierIssue.Id():   invalidRepoIdentifierIssue,
		invalidSuperprojectNameIssue.Id(): invalidSuperprojectNameIssue,
		storeFailedIssue.Id():             storeFailedIssue,
		finderFailedIssue.Id():            finderFailedIssue,
	}
)

// Values returns every guide ordered by Id.
func Values() []*Issue {
	return slices.SortedFunc(maps.Values(issues), func(a, b *Issue) int {
		return int(a.id) - int(b.id)
	})
}

func Get(id Id) *Issue {
	return issues[id]
}

// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

// Catalog entries.
const (
	WorkspaceRequiredId Id = iota + 1
	MalformedReferenceId
	PackNotFoundId
	AmbiguousPackId
	SessionRequiredId
	HomeDirUnavailableId
	PathUnresolvableId
	ConfigLoadFailedId
)

type (
	// Id identifies a catalog entry.
	Id int

	// MarkdownMsg is the Markdown body of an entry.
	MarkdownMsg string

	// Issue is one catalog entry.
	Issue struct {
		id    Id
		mdMsg MarkdownMsg
	}
)

// Id returns the entry's identifier.
func (i *Issue) Id() Id { return i.id }

// MarkdownMsg returns the raw Markdown body.
func (i *Issue) MarkdownMsg() MarkdownMsg { return i.mdMsg }

// Render renders the entry for the terminal using the given glamour style
// ("dark", "light", "notty" or a style file path).
func (i *Issue) Render(style string) (string, error) {
	return render(strings.TrimSpace(string(i.mdMsg)), style)
}

var (
	render = glamour.Render

	workspaceRequiredIssue = &Issue{
		id: WorkspaceRequiredId,
		mdMsg: `
# No workspace found

This path needs a workspace, but no ` + "`.aipack`" + ` directory was found in the
current directory or any of its parents.

Paths that need a workspace:
- relative paths resolved in workspace or marker mode
- ` + "`$tmp/...`" + ` session paths
- ` + "`namespace@name$workspace/...`" + ` support paths

## Things you can try
- Initialize a workspace in your project directory:
~~~
$ aip init
~~~
- Or run the command from inside an existing workspace.`,
	}

	malformedReferenceIssue = &Issue{
		id: MalformedReferenceId,
		mdMsg: `
# Malformed pack reference

Pack references have the form:
~~~
[namespace@]name[$base|$workspace][/sub/path]
~~~

- At most one ` + "`@`" + ` is allowed.
- Namespace and name use letters, digits, ` + "`-`" + ` and ` + "`_`" + `, and must not start with a digit.
- ` + "`$base`" + ` and ` + "`$workspace`" + ` need a namespace.

## Things you can try
- Check the reference for typos:
~~~
$ aip ref "pro@coder/prompts/main.md"
~~~`,
	}

	packNotFoundIssue = &Issue{
		id: PackNotFoundId,
		mdMsg: `
# Pack not found

No repository root holds this pack. Roots are searched in this order:
1. ` + "`<workspace>/.aipack/pack/custom`" + `
2. ` + "`~/.aipack-base/pack/custom`" + `
3. ` + "`~/.aipack-base/pack/installed`" + `

## Things you can try
- List the packs that can be found:
~~~
$ aip pack list
~~~
- Show which roots exist:
~~~
$ aip pack roots
~~~`,
	}

	ambiguousPackIssue = &Issue{
		id: AmbiguousPackId,
		mdMsg: `
# Ambiguous pack name

The reference has no namespace and packs with this name exist in more than
one namespace.

## Things you can try
- Add the namespace: ` + "`namespace@name`" + `
- List the candidates:
~~~
$ aip pack list
~~~`,
	}

	sessionRequiredIssue = &Issue{
		id: SessionRequiredId,
		mdMsg: `
# Session required

` + "`$tmp`" + ` paths live under ` + "`.aipack/.session/<session>/tmp`" + ` and need a session id.

## Things you can try
- Pass a session id:
~~~
$ aip resolve --session <id> '$tmp/out.txt'
~~~
- Or let aip create one:
~~~
$ aip resolve --new-session '$tmp/out.txt'
~~~`,
	}

	homeDirUnavailableIssue = &Issue{
		id: HomeDirUnavailableId,
		mdMsg: `
# Home directory unavailable

The base root ` + "`~/.aipack-base`" + ` lives in your home directory, which could not be
determined or does not exist.

## Things you can try
- Check that ` + "`HOME`" + ` (or ` + "`USERPROFILE`" + ` on Windows) is set and points to an existing directory.`,
	}

	pathUnresolvableIssue = &Issue{
		id: PathUnresolvableId,
		mdMsg: `
# Path cannot be resolved

A directory that must already exist is missing or its real path could not be
determined.

## Things you can try
- Check the path exists and that you can read it.
- Check for broken symbolic links along the path.`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration

Configuration is read from these files, later ones overriding earlier ones:
1. ` + "`~/.aipack-base/config.toml`" + `
2. ` + "`<workspace>/.aipack/config.toml`" + `

## Things you can try
- Check the TOML syntax of the file named in the error.
- Show the files and merged result:
~~~
$ aip config path
$ aip config show
~~~`,
	}

	issues = map[Id]*Issue{
		workspaceRequiredIssue.Id():  workspaceRequiredIssue,
		malformedReferenceIssue.Id(): malformedReferenceIssue,
		packNotFoundIssue.Id():       packNotFoundIssue,
		ambiguousPackIssue.Id():      ambiguousPackIssue,
		sessionRequiredIssue.Id():    sessionRequiredIssue,
		homeDirUnavailableIssue.Id(): homeDirUnavailableIssue,
		pathUnresolvableIssue.Id():   pathUnresolvableIssue,
		configLoadFailedIssue.Id():   configLoadFailedIssue,
	}
)

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return cmp.Compare(a.id, b.id) })
	return out
}

// Get returns the entry for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}

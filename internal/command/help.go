package command

import (
	"slices"
	"strconv"
	"strings"

	"github.com/footprint-tools/argot/internal/args"
	"github.com/footprint-tools/argot/internal/parsers"
	"github.com/footprint-tools/argot/internal/tokens"
	"github.com/footprint-tools/argot/internal/usage"
)

// HelpGenerator formats help for the built-in help commands.
type HelpGenerator interface {
	// PageSize is the number of entries per page; zero or less disables paging.
	PageSize(ctx *Context) int
	// Sorter orders entries by name.
	Sorter(ctx *Context) func(a, b string) int
	// SendHelp shows one page of entries. page and maxPage are 0 when paging is off.
	SendHelp(ctx *Context, entries []HelpEntry, page, maxPage int) error
	// SendFullHelp shows everything known about one command.
	SendFullHelp(ctx *Context, info HelpInfo) error
	// InvalidError reports input that is neither a valid page nor usable.
	InvalidError(ctx *Context, input string) error
	// UnknownError reports a name that matches no command.
	UnknownError(ctx *Context, input string) error
}

// HelpEntry is one row of a help listing.
type HelpEntry struct {
	Name    string
	Summary string
}

// HelpInfo is the full help of a single command.
type HelpInfo struct {
	Command     *Command
	Name        string
	Syntax      string // always starts with Name
	Aliases     string // comma separated, empty when there are none
	Description string // long description, or the summary when there is none
}

// Harvest collects help for the command bound to ctx. Unless the command has
// a static syntax it is dry-run against empty input to compose one.
func Harvest(ctx *Context) (HelpInfo, error) {
	cmd := ctx.Command()
	if cmd == nil {
		return HelpInfo{}, usage.Misuse("context has no command")
	}

	syntax, ok := cmd.Syntax()
	if !ok {
		dry := ctx.AsDry()
		a := args.New(dry, tokens.NewCursor(nil))
		if err := dry.Execute(a); err != nil {
			return HelpInfo{}, err
		}
		syntax = a.Syntax()
	}

	description := cmd.Description()
	if description == "" {
		description = cmd.Summary()
	}

	return HelpInfo{
		Command:     cmd,
		Name:        cmd.Name(),
		Syntax:      strings.TrimSpace(cmd.Name() + " " + syntax),
		Aliases:     strings.Join(cmd.Aliases(), ", "),
		Description: description,
	}, nil
}

// Entries lists commands as help rows, ordered by sorter.
func Entries(commands []*Command, sorter func(a, b string) int) []HelpEntry {
	entries := make([]HelpEntry, 0, len(commands))
	for _, cmd := range commands {
		entries = append(entries, HelpEntry{Name: cmd.Name(), Summary: cmd.Summary()})
	}
	if sorter != nil {
		slices.SortStableFunc(entries, func(a, b HelpEntry) int {
			return sorter(a.Name, b.Name)
		})
	}
	return entries
}

// Paginate returns page (1-based) of entries and the number of pages.
// A size of zero or less returns every entry with page and maxPage at 0.
// ok is false when page is out of range.
func Paginate(entries []HelpEntry, page, size int) (out []HelpEntry, maxPage int, ok bool) {
	if size <= 0 {
		return entries, 0, true
	}

	maxPage = max((len(entries)+size-1)/size, 1)
	if page < 1 || page > maxPage {
		return nil, maxPage, false
	}

	start := (page - 1) * size
	end := min(start+size, len(entries))
	return entries[start:end], maxPage, true
}

// helpTypename is the slot shown as [page|command].
const helpTypename = "page|command"

// NewHelp builds a help command over the commands returned by list.
//
// "help" or "help <page>" lists the commands a page at a time, and
// "help <command>" shows the full help of one of them.
func NewHelp(list func() []*Command) *Command {
	return MustNew(Spec{
		Name:     "help",
		Aliases:  []string{"?"},
		Summary:  "Show help for these commands",
		Executor: helpExecutor{list: list},
	})
}

type helpExecutor struct {
	list func() []*Command
}

func (h helpExecutor) Execute(ctx *Context, a *args.Arguments, dry bool) error {
	a.Named(helpTypename, parsers.DefaultValue(topicParser{list: h.list}, "1"))
	if dry {
		return nil
	}

	input, err := args.Next[string](a)
	if err != nil {
		return err
	}

	if ctx.Registry() == nil || ctx.Registry().HelpGenerator() == nil {
		return usage.Misuse("no help generator for %s", ctx.Label())
	}
	gen := ctx.Registry().HelpGenerator()

	if page, err := strconv.Atoi(input); err == nil {
		entries := Entries(h.list(), gen.Sorter(ctx))
		shown, maxPage, ok := Paginate(entries, page, gen.PageSize(ctx))
		if !ok {
			return gen.InvalidError(ctx, input)
		}
		if maxPage == 0 {
			page = 0
		}
		return gen.SendHelp(ctx, shown, page, maxPage)
	}

	for _, cmd := range h.list() {
		if !cmd.HasName(input) {
			continue
		}
		info, err := Harvest(NewContext(ctx.Registry(), cmd, cmd.Name(), true))
		if err != nil {
			return gen.InvalidError(ctx, input)
		}
		return gen.SendFullHelp(ctx, info)
	}
	return gen.UnknownError(ctx, input)
}

// topicParser reads one word and suggests the listed command names.
type topicParser struct {
	list func() []*Command
}

func (topicParser) Typename() string {
	return helpTypename
}

func (topicParser) Parse(c *tokens.Cursor) (any, error) {
	tok, _ := c.Next()
	return tok.Value, nil
}

func (t topicParser) Suggestions() ([]string, error) {
	var names []string
	for _, cmd := range t.list() {
		names = append(names, cmd.Name())
	}
	return names, nil
}

// Package help renders the output of the built-in help commands as text.
package help

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/footprint-tools/argot/internal/command"
	"github.com/footprint-tools/argot/internal/domain"
	"github.com/footprint-tools/argot/internal/usage"
)

// DefaultPageSize is used when no page size is configured.
const DefaultPageSize = 8

// minNameWidth keeps short listings aligned like long ones.
const minNameWidth = 12

// Text is a command.HelpGenerator that writes plain, optionally styled text.
type Text struct {
	out      domain.OutputWriter
	styler   domain.Styler
	pageSize int
}

// Option configures a Text generator.
type Option func(*Text)

// WithPageSize sets the number of entries per page. Zero or less turns
// paging off.
func WithPageSize(n int) Option {
	return func(t *Text) {
		t.pageSize = n
	}
}

// New creates a Text generator writing to out.
func New(out domain.OutputWriter, styler domain.Styler, opts ...Option) *Text {
	t := &Text{out: out, styler: styler, pageSize: DefaultPageSize}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Text) PageSize(*command.Context) int {
	return t.pageSize
}

// Sorter orders names alphabetically ignoring case, then by exact bytes so
// the order is total.
func (t *Text) Sorter(*command.Context) func(a, b string) int {
	return compareNames
}

func compareNames(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// SendHelp prints one page of name/summary rows and, when paging is on,
// a "page N of M" footer.
func (t *Text) SendHelp(ctx *command.Context, entries []command.HelpEntry, page, maxPage int) error {
	var out bytes.Buffer

	out.WriteString(t.styler.Header("COMMANDS"))
	out.WriteString("\n")

	width := minNameWidth
	for _, e := range entries {
		width = max(width, len(e.Name))
	}
	for _, e := range entries {
		name := t.styler.Command(fmt.Sprintf("%-*s", width, e.Name))
		fmt.Fprintf(&out, "   %s  %s\n", name, e.Summary)
	}

	if maxPage > 0 {
		out.WriteString("\n")
		out.WriteString(t.styler.Footer(fmt.Sprintf("page %d of %d", page, maxPage)))
		out.WriteString("\n")
	}

	fmt.Fprintf(&out, "\nSee '%s <command>' to read about a specific command.\n", helpLabel(ctx))

	t.out.Pager(out.String())
	return nil
}

// SendFullHelp prints the usage line, the aliases and the description.
func (t *Text) SendFullHelp(_ *command.Context, info command.HelpInfo) error {
	var out bytes.Buffer

	out.WriteString(t.styler.Command(info.Name))
	if info.Command != nil && info.Command.Summary() != "" {
		out.WriteString(" - ")
		out.WriteString(info.Command.Summary())
	}
	out.WriteString("\n\n")

	out.WriteString(t.styler.Header("USAGE"))
	out.WriteString("\n   ")
	out.WriteString(t.styler.Syntax(info.Syntax))
	out.WriteString("\n\n")

	if info.Aliases != "" {
		out.WriteString(t.styler.Header("ALIASES"))
		out.WriteString("\n   ")
		out.WriteString(info.Aliases)
		out.WriteString("\n\n")
	}

	if info.Description != "" {
		out.WriteString(info.Description)
		out.WriteString("\n")
	}

	t.out.Pager(out.String())
	return nil
}

// InvalidError reports a page that does not exist or a command whose help
// could not be built.
func (t *Text) InvalidError(_ *command.Context, input string) error {
	return usage.ValidationFailure("invalid help page or command", input)
}

// UnknownError reports a name that matches no command, pointing at the
// help of the parent the command was looked up in.
func (t *Text) UnknownError(ctx *command.Context, input string) error {
	scope := ""
	if ctx != nil && ctx.Parent() != nil {
		scope = ctx.Parent().Path()
	}
	return usage.UnknownCommand(input, scope, nil)
}

// helpLabel is the typed path of the help command, such as "calc help".
func helpLabel(ctx *command.Context) string {
	if ctx == nil || ctx.Path() == "" {
		return "help"
	}
	return ctx.Path()
}

var _ command.HelpGenerator = (*Text)(nil)

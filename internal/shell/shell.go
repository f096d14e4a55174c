// Package shell runs command lines read from a terminal or a stream.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/footprint-tools/argot/internal/domain"
	"github.com/footprint-tools/argot/internal/log"
	"github.com/footprint-tools/argot/internal/ui/style"
	"github.com/footprint-tools/argot/internal/usage"
)

// DefaultPrompt is shown when no prompt is configured.
const DefaultPrompt = "argot> "

// Runner executes and completes command lines.
type Runner interface {
	Execute(line string) error
	Complete(line string) ([]string, error)
}

// Shell reads lines and hands them to a Runner until input ends or the
// user types exit or quit.
type Shell struct {
	runner       Runner
	in           io.Reader
	out          io.Writer
	errOut       io.Writer
	prompt       string
	styler       domain.Styler
	logger       domain.Logger
	history      domain.HistoryStore
	historyLimit int
	interactive  bool
	session      []string
}

// Option configures a Shell.
type Option func(*Shell)

// WithIO sets the streams. Interactive mode is only used when in and out
// are both terminals.
func WithIO(in io.Reader, out, errOut io.Writer) Option {
	return func(s *Shell) {
		s.in, s.out, s.errOut = in, out, errOut
	}
}

// WithPrompt sets the prompt of the interactive mode.
func WithPrompt(prompt string) Option {
	return func(s *Shell) { s.prompt = prompt }
}

// WithStyler sets how prompts and errors are styled.
func WithStyler(styler domain.Styler) Option {
	return func(s *Shell) { s.styler = styler }
}

// WithLogger sets the logger.
func WithLogger(logger domain.Logger) Option {
	return func(s *Shell) { s.logger = logger }
}

// WithHistory makes up and down walk the newest limit lines of store.
func WithHistory(store domain.HistoryStore, limit int) Option {
	return func(s *Shell) {
		s.history = store
		s.historyLimit = limit
	}
}

// WithInteractive forces interactive mode on or off.
func WithInteractive(interactive bool) Option {
	return func(s *Shell) { s.interactive = interactive }
}

// New creates a shell over stdin and stdout.
func New(runner Runner, opts ...Option) *Shell {
	s := &Shell{
		runner: runner,
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
		prompt: DefaultPrompt,
		styler: style.NopStyler{},
		logger: log.NopLogger{},
	}
	s.interactive = isTerminal(s.in) && isTerminal(s.out)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Run loops until input ends. Errors of single lines are reported and the
// loop continues.
func (s *Shell) Run() error {
	if s.interactive {
		return s.runInteractive()
	}
	return s.runLines()
}

func (s *Shell) runLines() error {
	scanner := bufio.NewScanner(s.in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if isExit(line) {
			return nil
		}
		s.execute(line)
	}
	return scanner.Err()
}

func (s *Shell) runInteractive() error {
	for {
		m := newPromptModel(s.prompt, s.recall(), s.runner.Complete, s.styler)
		p := tea.NewProgram(m, tea.WithInput(s.in), tea.WithOutput(s.out))
		final, err := p.Run()
		if err != nil {
			return fmt.Errorf("read line: %w", err)
		}

		fm := final.(promptModel)
		if fm.eof {
			return nil
		}
		line := strings.TrimSpace(fm.submitted)
		if isExit(line) {
			return nil
		}
		s.execute(line)
	}
}

// recall returns the lines up and down walk through, oldest first.
func (s *Shell) recall() []string {
	if s.history == nil {
		return s.session
	}
	lines, err := s.history.Lines(s.historyLimit)
	if err != nil {
		s.logger.Warn("shell: load history: %v", err)
		return s.session
	}
	return lines
}

func (s *Shell) execute(line string) {
	if line == "" {
		return
	}
	if s.history == nil {
		s.session = append(s.session, line)
	}

	if err := s.runner.Execute(line); err != nil {
		s.logger.Debug("shell: %q: %v", line, err)
		fmt.Fprintln(s.errOut, FormatError(s.styler, err))
	}
}

func isExit(line string) bool {
	return line == "exit" || line == "quit"
}

// FormatError renders err for the terminal. Syntax errors show the usage
// line of the command that rejected the input.
func FormatError(styler domain.Styler, err error) string {
	var se *usage.SyntaxError
	if errors.As(err, &se) && se.Syntax != "" {
		return fmt.Sprintf("%s %s\n%s %s", styler.Error("error:"), se.Reason,
			styler.Muted("usage:"), styler.Syntax(se.Syntax))
	}
	return styler.Error("error:") + " " + err.Error()
}

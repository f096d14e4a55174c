package shell

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/argot/internal/testutil"
	"github.com/footprint-tools/argot/internal/ui/style"
	"github.com/footprint-tools/argot/internal/usage"
)

type fakeRunner struct {
	executed []string
	fail     map[string]error
	complete func(line string) ([]string, error)
}

func (f *fakeRunner) Execute(line string) error {
	f.executed = append(f.executed, line)
	return f.fail[line]
}

func (f *fakeRunner) Complete(line string) ([]string, error) {
	if f.complete == nil {
		return nil, nil
	}
	return f.complete(line)
}

func TestRun_Lines(t *testing.T) {
	runner := &fakeRunner{fail: map[string]error{
		"bad": errors.New("boom"),
	}}
	in := strings.NewReader("echo hi\n\n  bad  \nquit\necho never\n")
	var out, errOut bytes.Buffer

	s := New(runner, WithIO(in, &out, &errOut))
	require.NoError(t, s.Run())

	require.Equal(t, []string{"echo hi", "bad"}, runner.executed)
	require.Equal(t, "error: boom\n", errOut.String())
	require.Empty(t, out.String())
}

func TestRun_LinesUntilEOF(t *testing.T) {
	runner := &fakeRunner{}
	var out, errOut bytes.Buffer

	s := New(runner, WithIO(strings.NewReader("one\ntwo"), &out, &errOut), WithInteractive(false))
	require.NoError(t, s.Run())
	require.Equal(t, []string{"one", "two"}, runner.executed)
	require.Equal(t, []string{"one", "two"}, s.recall())
}

func TestRecall_FromStore(t *testing.T) {
	store := testutil.NewTestStore(t)
	testutil.SeedHistory(t, store, "a", "b", "a")

	s := New(&fakeRunner{}, WithHistory(store, 10), WithIO(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}))
	require.Equal(t, []string{"b", "a"}, s.recall())
}

func TestFormatError(t *testing.T) {
	styler := style.NopStyler{}

	err := &usage.SyntaxError{Kind: usage.ErrMissingArgument, Syntax: "add <number> <number>", Reason: "missing argument: number"}
	require.Equal(t, "error: missing argument: number\nusage: add <number> <number>", FormatError(styler, err))

	require.Equal(t, "error: boom", FormatError(styler, errors.New("boom")))
	require.Equal(t, "error: plain", FormatError(styler, &usage.SyntaxError{Reason: "plain"}))
}

func newTestModel(history []string, complete func(string) ([]string, error)) promptModel {
	if complete == nil {
		complete = func(string) ([]string, error) { return nil, nil }
	}
	return newPromptModel("> ", history, complete, style.NopStyler{})
}

func send(m promptModel, msgs ...tea.Msg) promptModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(promptModel)
	}
	return m
}

func TestPrompt_TypeAndSubmit(t *testing.T) {
	m := newTestModel(nil, nil)

	m = send(m,
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("echo hi")},
	)
	require.Equal(t, "echo hi", m.input.Value())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(promptModel)
	require.NotNil(t, cmd)
	require.True(t, m.done)
	require.False(t, m.eof)
	require.Equal(t, "echo hi", m.submitted)
	require.Equal(t, "> echo hi\n", m.View())
}

func TestPrompt_CtrlC(t *testing.T) {
	m := newTestModel(nil, nil)
	m.input.SetValue("half typed")

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.False(t, m.done)
	require.Empty(t, m.input.Value())

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.True(t, m.eof)
	require.Empty(t, m.View())
}

func TestPrompt_CtrlD(t *testing.T) {
	m := newTestModel(nil, nil)
	m.input.SetValue("x")

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlD})
	require.False(t, m.eof)

	m.input.SetValue("")
	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlD})
	require.True(t, m.eof)
}

func TestPrompt_History(t *testing.T) {
	m := newTestModel([]string{"first", "second"}, nil)
	m.input.SetValue("draft")

	up := tea.KeyMsg{Type: tea.KeyUp}
	down := tea.KeyMsg{Type: tea.KeyDown}

	m = send(m, up)
	require.Equal(t, "second", m.input.Value())
	m = send(m, up)
	require.Equal(t, "first", m.input.Value())
	m = send(m, up)
	require.Equal(t, "first", m.input.Value())

	m = send(m, down)
	require.Equal(t, "second", m.input.Value())
	m = send(m, down)
	require.Equal(t, "draft", m.input.Value())
	m = send(m, down)
	require.Equal(t, "draft", m.input.Value())
}

func TestPrompt_Complete(t *testing.T) {
	complete := func(line string) ([]string, error) {
		switch line {
		case "ma":
			return []string{"math"}, nil
		case "theme set ocean":
			return []string{"ocean-dark", "ocean-light"}, nil
		case "pick n":
			return []string{"neon", `"night owl"`}, nil
		case "broken":
			return nil, errors.New("no")
		}
		return nil, nil
	}
	tab := tea.KeyMsg{Type: tea.KeyTab}

	m := newTestModel(nil, complete)
	m.input.SetValue("ma")
	m = send(m, tab)
	require.Equal(t, "math ", m.input.Value())
	require.Empty(t, m.candidates)

	m.input.SetValue("theme set ocean")
	m = send(m, tab)
	require.Equal(t, "theme set ocean-", m.input.Value())
	require.Equal(t, []string{"ocean-dark", "ocean-light"}, m.candidates)
	require.Contains(t, m.View(), "ocean-dark  ocean-light\n")

	m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	require.Empty(t, m.candidates)

	m.input.SetValue("pick n")
	m = send(m, tab)
	require.Equal(t, "pick n", m.input.Value())
	require.Len(t, m.candidates, 2)

	m.input.SetValue("broken")
	m = send(m, tab)
	require.Equal(t, "broken", m.input.Value())
	require.Empty(t, m.candidates)
}

func TestLastWordStart(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"", 0},
		{"math", 0},
		{"math ", 5},
		{"math ad", 5},
		{`theme "night o`, 6},
		{`echo a\ b`, 5},
		{`echo 'x y' z`, 11},
		{"math  add\t", 10},
		{`echo "a b"c`, 5},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			require.Equal(t, tt.want, lastWordStart(tt.line))
		})
	}
}

func TestCommonPrefix(t *testing.T) {
	require.Equal(t, "", commonPrefix(nil))
	require.Equal(t, "abc", commonPrefix([]string{"abc"}))
	require.Equal(t, "ocean-", commonPrefix([]string{"ocean-dark", "ocean-light"}))
	require.Equal(t, "", commonPrefix([]string{"neon", `"night owl"`}))
}

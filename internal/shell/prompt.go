package shell

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/footprint-tools/argot/internal/domain"
	"github.com/footprint-tools/argot/internal/tokens"
)

type keyMap struct {
	Submit   key.Binding
	Complete key.Binding
	Prev     key.Binding
	Next     key.Binding
	Cancel   key.Binding
	EOF      key.Binding
}

var keys = keyMap{
	Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
	Complete: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "complete")),
	Prev:     key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "previous line")),
	Next:     key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next line")),
	Cancel:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "clear or quit")),
	EOF:      key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "quit")),
}

// promptModel reads one line. Tab completes the last word, up and down
// walk the history, ctrl+c clears the line or ends the session when the
// line is already empty.
type promptModel struct {
	input      textinput.Model
	history    []string
	pos        int // len(history) is the line being typed
	draft      string
	complete   func(line string) ([]string, error)
	candidates []string
	styler     domain.Styler

	submitted string
	done      bool
	eof       bool
}

func newPromptModel(prompt string, history []string, complete func(string) ([]string, error), styler domain.Styler) promptModel {
	input := textinput.New()
	input.Prompt = prompt
	input.Focus()

	return promptModel{
		input:    input,
		history:  history,
		pos:      len(history),
		complete: complete,
		styler:   styler,
	}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(km, keys.Submit):
		m.submitted = m.input.Value()
		m.done = true
		m.candidates = nil
		return m, tea.Quit

	case key.Matches(km, keys.Cancel):
		if m.input.Value() != "" {
			m.input.SetValue("")
			m.candidates = nil
			m.pos = len(m.history)
			return m, nil
		}
		m.eof = true
		m.done = true
		return m, tea.Quit

	case key.Matches(km, keys.EOF) && m.input.Value() == "":
		m.eof = true
		m.done = true
		return m, tea.Quit

	case key.Matches(km, keys.Complete):
		m.completeLine()
		return m, nil

	case key.Matches(km, keys.Prev):
		if m.pos > 0 {
			if m.pos == len(m.history) {
				m.draft = m.input.Value()
			}
			m.pos--
			m.setLine(m.history[m.pos])
		}
		return m, nil

	case key.Matches(km, keys.Next):
		if m.pos < len(m.history) {
			m.pos++
			if m.pos == len(m.history) {
				m.setLine(m.draft)
			} else {
				m.setLine(m.history[m.pos])
			}
		}
		return m, nil
	}

	m.candidates = nil
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *promptModel) setLine(line string) {
	m.input.SetValue(line)
	m.input.CursorEnd()
	m.candidates = nil
}

func (m *promptModel) completeLine() {
	line := m.input.Value()
	candidates, err := m.complete(line)
	if err != nil || len(candidates) == 0 {
		m.candidates = nil
		return
	}

	start := lastWordStart(line)
	head, word := line[:start], line[start:]
	if len(candidates) == 1 {
		m.setLine(head + candidates[0] + " ")
		return
	}

	if common := commonPrefix(candidates); len(common) > len(word) {
		m.input.SetValue(head + common)
		m.input.CursorEnd()
	}
	m.candidates = candidates
}

func (m promptModel) View() string {
	if m.done {
		if m.eof {
			return ""
		}
		return m.input.Prompt + m.submitted + "\n"
	}

	view := m.input.View() + "\n"
	if len(m.candidates) > 0 {
		view += m.styler.Muted(strings.Join(m.candidates, "  ")) + "\n"
	}
	return view
}

// lastWordStart returns the byte offset where the word under completion
// begins, splitting the line the same way the registry does.
func lastWordStart(line string) int {
	toks := tokens.SplitPartial(line)
	return toks[len(toks)-1].Offset
}

func commonPrefix(values []string) string {
	if len(values) == 0 {
		return ""
	}
	prefix := values[0]
	for _, v := range values[1:] {
		for !strings.HasPrefix(v, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	return prefix
}

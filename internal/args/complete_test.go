package args

import (
	"errors"
	"testing"

	"github.com/footprint-tools/argot/internal/tokens"
	"github.com/footprint-tools/argot/internal/usage"
	"github.com/stretchr/testify/require"
)

func completeFor(line string, parsers ...Parser) ([]string, error) {
	a := New(testContext{dry: true}, tokens.NewCursor(tokens.SplitPartial(line)))
	for _, p := range parsers {
		a.Declare(p)
	}
	return a.Complete()
}

func TestComplete(t *testing.T) {
	colors := word{suggestions: []string{"red", "green", "grey", "green"}}

	tests := []struct {
		name    string
		line    string
		parsers []Parser
		want    []string
	}{
		{name: "prefix filter", line: "gr", parsers: []Parser{colors}, want: []string{"green", "grey"}},
		{name: "empty prefix dedupes in order", line: "", parsers: []Parser{colors}, want: []string{"red", "green", "grey"}},
		{name: "case sensitive", line: "G", parsers: []Parser{colors}, want: []string{}},
		{name: "second slot", line: "red gre", parsers: []Parser{word{}, colors}, want: []string{"green", "grey"}},
		{name: "past last slot", line: "a b", parsers: []Parser{colors}, want: []string{}},
		{name: "no suggester", line: "1", parsers: []Parser{number{}}, want: []string{}},
		{name: "no slots", line: "x", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := completeFor(tt.line, tt.parsers...)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestComplete_NoTokens(t *testing.T) {
	a := New(testContext{}, tokens.Strings())
	a.Declare(word{suggestions: []string{"a"}})

	got, err := a.Complete()
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestComplete_Quoting(t *testing.T) {
	p := word{suggestions: []string{
		"plain",
		"two words",
		`say "hi"`,
		`it's "quoted"`,
		`it's fine`,
	}}

	got, err := completeFor("", p)
	require.NoError(t, err)
	require.Equal(t, []string{
		"plain",
		`"two words"`,
		`'say "hi"'`,
		`"it's \"quoted\""`,
		`"it's fine"`,
	}, got)
}

func TestComplete_SuggestionFailure(t *testing.T) {
	_, err := completeFor("", word{err: errors.New("offline")})
	require.ErrorIs(t, err, &usage.Error{Kind: usage.ErrContractViolation})
	require.Contains(t, err.Error(), "typename word")
}

type panickySuggester struct{ word }

func (panickySuggester) Suggestions() ([]string, error) { panic("nope") }

func TestComplete_SuggestionPanic(t *testing.T) {
	var err error
	require.NotPanics(t, func() {
		_, err = completeFor("", panickySuggester{})
	})
	require.ErrorIs(t, err, &usage.Error{Kind: usage.ErrContractViolation})
}

func TestComplete_AfterDrop(t *testing.T) {
	a := New(testContext{dry: true}, tokens.NewCursor(tokens.SplitPartial("math gr")))
	a.Declare(word{})
	require.NoError(t, a.Drop(1))
	a.Declare(word{suggestions: []string{"green", "blue"}})

	got, err := a.Complete()
	require.NoError(t, err)
	require.Equal(t, []string{"green"}, got)
}

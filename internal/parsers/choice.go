package parsers

import (
	"strings"

	"github.com/footprint-tools/argot/internal/tokens"
	"github.com/footprint-tools/argot/internal/usage"
)

// ChoiceParser accepts one of a fixed set of words, ignoring case.
// The value is the option as declared, not as typed.
type ChoiceParser struct {
	typename string
	options  []string
}

// Choice builds a ChoiceParser. The options double as completion candidates.
func Choice(typename string, options ...string) ChoiceParser {
	return ChoiceParser{typename: typename, options: options}
}

// Options returns the accepted words in declaration order.
func (p ChoiceParser) Options() []string {
	out := make([]string, len(p.options))
	copy(out, p.options)
	return out
}

func (p ChoiceParser) Typename() string {
	return p.typename
}

func (p ChoiceParser) Parse(c *tokens.Cursor) (any, error) {
	tok, _ := c.Next()
	for _, opt := range p.options {
		if strings.EqualFold(opt, tok.Value) {
			return opt, nil
		}
	}
	return nil, usage.ParseFailure("%s must be one of %s; got %s",
		p.typename, strings.Join(p.options, ", "), tok.Value)
}

func (p ChoiceParser) Suggestions() ([]string, error) {
	return p.Options(), nil
}

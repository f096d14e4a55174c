package parsers

import (
	"github.com/footprint-tools/argot/internal/args"
	"github.com/footprint-tools/argot/internal/tokens"
)

// Defaulted wraps a parser with a fallback used when input runs out.
type Defaulted struct {
	inner    args.Parser
	token    string
	hasToken bool
	value    any
	hasValue bool
}

// Default makes p optional: when no token is left, token is parsed instead.
// The slot is rendered as [type=token].
func Default(p args.Parser, token string) Defaulted {
	return Defaulted{inner: p, token: token, hasToken: true}
}

// DefaultValue makes p optional with a ready value. The slot is rendered as
// [type].
func DefaultValue(p args.Parser, value any) Defaulted {
	return Defaulted{inner: p, value: value, hasValue: true}
}

func (d Defaulted) Typename() string {
	return d.inner.Typename()
}

func (d Defaulted) Parse(c *tokens.Cursor) (any, error) {
	return d.inner.Parse(c)
}

func (d Defaulted) DefaultToken() (string, bool) {
	return d.token, d.hasToken
}

func (d Defaulted) DefaultValue() (any, bool) {
	return d.value, d.hasValue
}

func (d Defaulted) Suggestions() ([]string, error) {
	if s, ok := d.inner.(args.Suggester); ok {
		return s.Suggestions()
	}
	return nil, nil
}

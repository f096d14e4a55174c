package args

import "github.com/footprint-tools/argot/internal/tokens"

// Parser converts tokens from a cursor into one typed value.
//
// Parse may consume any number of tokens. A conversion failure should be
// returned as a usage.ParseFailure so its message reaches the user; any
// other error is treated as a broken parser and surfaced unchanged.
type Parser interface {
	Typename() string
	Parse(c *tokens.Cursor) (any, error)
}

// DefaultTokener is implemented by parsers that can parse a fallback token
// when the input runs out. It marks the slot optional.
type DefaultTokener interface {
	DefaultToken() (string, bool)
}

// DefaultValuer is implemented by parsers with a ready-made fallback value.
// It marks the slot optional and takes precedence over a default token.
type DefaultValuer interface {
	DefaultValue() (any, bool)
}

// Suggester is implemented by parsers that can offer completion candidates.
type Suggester interface {
	Suggestions() ([]string, error)
}

// Func adapts a plain function into a required Parser.
func Func(typename string, fn func(c *tokens.Cursor) (any, error)) Parser {
	return funcParser{typename: typename, fn: fn}
}

type funcParser struct {
	typename string
	fn       func(c *tokens.Cursor) (any, error)
}

func (f funcParser) Typename() string                    { return f.typename }
func (f funcParser) Parse(c *tokens.Cursor) (any, error) { return f.fn(c) }

// Rename returns p under another typename. Every optional capability of p
// is forwarded unchanged.
func Rename(p Parser, typename string) Parser {
	return renamed{inner: p, typename: typename}
}

type renamed struct {
	inner    Parser
	typename string
}

func (r renamed) Typename() string {
	return r.typename
}

func (r renamed) Parse(c *tokens.Cursor) (any, error) {
	return r.inner.Parse(c)
}

func (r renamed) DefaultToken() (string, bool) {
	return defaultToken(r.inner)
}

func (r renamed) DefaultValue() (any, bool) {
	return defaultValue(r.inner)
}

func (r renamed) Suggestions() ([]string, error) {
	if s, ok := r.inner.(Suggester); ok {
		return s.Suggestions()
	}
	return nil, nil
}

func defaultToken(p Parser) (string, bool) {
	if d, ok := p.(DefaultTokener); ok {
		return d.DefaultToken()
	}
	return "", false
}

func defaultValue(p Parser) (any, bool) {
	if d, ok := p.(DefaultValuer); ok {
		return d.DefaultValue()
	}
	return nil, false
}

// Optional reports whether a slot declared with p may be left empty.
func Optional(p Parser) bool {
	_, hasValue := defaultValue(p)
	_, hasToken := defaultToken(p)
	return hasValue || hasToken
}

// SyntaxOf renders the syntax fragment for a single slot:
// <type> when required, [type=default] when only a default token exists,
// and [type] otherwise.
func SyntaxOf(p Parser) string {
	if _, ok := defaultValue(p); ok {
		return "[" + p.Typename() + "]"
	}
	if tok, ok := defaultToken(p); ok {
		return "[" + p.Typename() + "=" + tok + "]"
	}
	return "<" + p.Typename() + ">"
}

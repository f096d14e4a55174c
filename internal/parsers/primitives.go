// Package parsers provides the stock argument parsers.
package parsers

import (
	"strconv"
	"strings"
	"time"

	"github.com/footprint-tools/argot/internal/args"
	"github.com/footprint-tools/argot/internal/tokens"
	"github.com/footprint-tools/argot/internal/usage"
)

// String reads one token as-is.
func String() args.Parser { return stringParser{} }

type stringParser struct{}

func (stringParser) Typename() string { return "string" }

func (stringParser) Parse(c *tokens.Cursor) (any, error) {
	tok, ok := c.Next()
	if !ok {
		return nil, usage.ParseFailure("expected a string")
	}
	return tok.Value, nil
}

// Text consumes every remaining token and joins them with single spaces.
func Text() args.Parser { return textParser{} }

type textParser struct{}

func (textParser) Typename() string { return "text" }

func (textParser) Parse(c *tokens.Cursor) (any, error) {
	rest := c.Remaining()
	if len(rest) == 0 {
		return nil, usage.ParseFailure("expected some text")
	}
	words := make([]string, 0, len(rest))
	for c.HasNext() {
		tok, _ := c.Next()
		words = append(words, tok.Value)
	}
	return strings.Join(words, " "), nil
}

// Int reads a base-10 integer.
func Int() args.Parser { return intParser{} }

type intParser struct{}

func (intParser) Typename() string { return "integer" }

func (intParser) Parse(c *tokens.Cursor) (any, error) {
	tok, _ := c.Next()
	n, err := strconv.Atoi(tok.Value)
	if err != nil {
		return nil, usage.ParseFailure("not an integer: %s", tok.Value)
	}
	return n, nil
}

// Number reads a float64.
func Number() args.Parser { return numberParser{} }

type numberParser struct{}

func (numberParser) Typename() string { return "number" }

func (numberParser) Parse(c *tokens.Cursor) (any, error) {
	tok, _ := c.Next()
	f, err := strconv.ParseFloat(tok.Value, 64)
	if err != nil {
		return nil, usage.ParseFailure("not a number: %s", tok.Value)
	}
	return f, nil
}

// Bool reads true/false and the usual yes/no, on/off, 1/0 spellings.
func Bool() args.Parser { return boolParser{} }

type boolParser struct{}

func (boolParser) Typename() string { return "boolean" }

func (boolParser) Parse(c *tokens.Cursor) (any, error) {
	tok, _ := c.Next()
	switch strings.ToLower(tok.Value) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	}
	return nil, usage.ParseFailure("not a boolean: %s", tok.Value)
}

func (boolParser) Suggestions() ([]string, error) {
	return []string{"true", "false"}, nil
}

// Duration reads a Go duration such as 1.5s or 200ms.
func Duration() args.Parser { return durationParser{} }

type durationParser struct{}

func (durationParser) Typename() string { return "duration" }

func (durationParser) Parse(c *tokens.Cursor) (any, error) {
	tok, _ := c.Next()
	d, err := time.ParseDuration(tok.Value)
	if err != nil {
		return nil, usage.ParseFailure("not a duration: %s", tok.Value)
	}
	return d, nil
}

package tokens

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrUnterminatedQuote is returned by Split when a quoted run is never closed.
var ErrUnterminatedQuote = errors.New("unterminated quote")

// Token is one word of input.
type Token struct {
	Value  string // unquoted, unescaped text
	Raw    string // verbatim source text
	Offset int    // byte offset of Raw in the split line
}

// Split breaks a line into tokens.
//
// Words are separated by unquoted whitespace. Double quotes group text and
// honour \" and \\ escapes, single quotes group text literally, and a backslash
// outside quotes escapes the next character. Quoted and unquoted runs that
// touch form a single token.
func Split(line string) ([]Token, error) {
	toks, open, _ := split(line)
	if open {
		return nil, ErrUnterminatedQuote
	}
	return toks, nil
}

// SplitPartial is the lenient variant used while a line is still being typed.
// An open quote is closed at the end of the line, and when the line is empty
// or ends in unquoted whitespace a trailing empty token is appended so that
// the word being completed always has a slot. That empty token sits at the
// end of the line.
func SplitPartial(line string) []Token {
	toks, _, between := split(line)
	if between {
		toks = append(toks, Token{Offset: len(line)})
	}
	return toks
}

func split(line string) (toks []Token, open bool, between bool) {
	var (
		b     strings.Builder
		start = -1
		quote rune
	)

	for i := 0; i < len(line); {
		r, size := utf8.DecodeRuneInString(line[i:])

		switch {
		case quote == '"':
			switch {
			case r == '\\' && i+size < len(line):
				next, nsize := utf8.DecodeRuneInString(line[i+size:])
				if next == '"' || next == '\\' {
					b.WriteRune(next)
					size += nsize
				} else {
					b.WriteRune(r)
				}
			case r == '"':
				quote = 0
			default:
				b.WriteRune(r)
			}

		case quote == '\'':
			if r == '\'' {
				quote = 0
			} else {
				b.WriteRune(r)
			}

		case unicode.IsSpace(r):
			if start >= 0 {
				toks = append(toks, Token{Value: b.String(), Raw: line[start:i], Offset: start})
				b.Reset()
				start = -1
			}

		default:
			if start < 0 {
				start = i
			}
			switch {
			case r == '"' || r == '\'':
				quote = r
			case r == '\\' && i+size < len(line):
				next, nsize := utf8.DecodeRuneInString(line[i+size:])
				b.WriteRune(next)
				size += nsize
			default:
				b.WriteRune(r)
			}
		}

		i += size
	}

	if start >= 0 {
		toks = append(toks, Token{Value: b.String(), Raw: line[start:], Offset: start})
		return toks, quote != 0, false
	}
	return toks, false, true
}

// Quote renders a value so that Split reads it back as a single token.
func Quote(value string) string {
	if value == "" {
		return `""`
	}
	if !strings.ContainsFunc(value, func(r rune) bool {
		return unicode.IsSpace(r) || r == '"' || r == '\'' || r == '\\'
	}) {
		return value
	}
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(value) + `"`
}

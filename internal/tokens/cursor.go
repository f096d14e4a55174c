package tokens

import "strings"

// Cursor is an ordered token stream with a read position.
type Cursor struct {
	tokens []Token
	pos    int
}

// NewCursor wraps already tokenized input.
func NewCursor(toks []Token) *Cursor {
	return &Cursor{tokens: toks}
}

// Strings builds a cursor from pre-split words, such as os.Args.
func Strings(values ...string) *Cursor {
	toks := make([]Token, len(values))
	for i, v := range values {
		toks[i] = Token{Value: v, Raw: Quote(v)}
	}
	return &Cursor{tokens: toks}
}

// Parse tokenizes line and wraps the result.
func Parse(line string) (*Cursor, error) {
	toks, err := Split(line)
	if err != nil {
		return nil, err
	}
	return NewCursor(toks), nil
}

// Peek returns the next token without consuming it.
func (c *Cursor) Peek() (Token, bool) {
	if c.pos >= len(c.tokens) {
		return Token{}, false
	}
	return c.tokens[c.pos], true
}

// Next consumes and returns the next token.
func (c *Cursor) Next() (Token, bool) {
	tok, ok := c.Peek()
	if ok {
		c.pos++
	}
	return tok, ok
}

// HasNext reports whether any token is left.
func (c *Cursor) HasNext() bool {
	return c.pos < len(c.tokens)
}

// Index is a checkpoint usable with Consumed.
func (c *Cursor) Index() int {
	return c.pos
}

// Consumed returns the verbatim text of the tokens read since start.
func (c *Cursor) Consumed(start int) string {
	if start < 0 {
		start = 0
	}
	if start >= c.pos {
		return ""
	}
	raw := make([]string, 0, c.pos-start)
	for _, tok := range c.tokens[start:c.pos] {
		raw = append(raw, tok.Raw)
	}
	return strings.Join(raw, " ")
}

// Drop removes the first n tokens and pulls the read position back with them.
func (c *Cursor) Drop(n int) {
	if n <= 0 {
		return
	}
	if n > len(c.tokens) {
		n = len(c.tokens)
	}
	c.tokens = c.tokens[n:]
	c.pos = max(c.pos-n, 0)
}

// Copy returns a cursor over the same tokens with an independent position.
func (c *Cursor) Copy() *Cursor {
	toks := make([]Token, len(c.tokens))
	copy(toks, c.tokens)
	return &Cursor{tokens: toks, pos: c.pos}
}

// Raw returns the values of every token still held, consumed or not.
func (c *Cursor) Raw() []string {
	values := make([]string, len(c.tokens))
	for i, tok := range c.tokens {
		values[i] = tok.Value
	}
	return values
}

// Remaining returns the tokens not yet consumed.
func (c *Cursor) Remaining() []Token {
	return c.tokens[c.pos:]
}

// Len is the number of tokens held.
func (c *Cursor) Len() int {
	return len(c.tokens)
}

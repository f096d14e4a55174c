package args

import (
	"errors"
	"fmt"
	"strings"

	"github.com/footprint-tools/argot/internal/tokens"
	"github.com/footprint-tools/argot/internal/usage"
)

// Context is the engine's view of the command invocation it serves.
type Context interface {
	// Dry reports whether the command is only being run to harvest syntax.
	Dry() bool
	// Label is the word the command was invoked as.
	Label() string
	// Syntax returns a static syntax line that overrides the composed one.
	Syntax() (string, bool)
}

type entry struct {
	raw   string
	value any
}

// history is shared between an engine and its copies.
type history struct {
	syntax []Parser
	parsed []entry
}

// failure is the first error recorded by an engine. It never changes once set.
type failure struct {
	kind    usage.ErrorKind
	message string
	err     error // non-syntax failure, returned unchanged on pull
}

// Arguments resolves declared parameters against a token cursor.
//
// Each Declare call records the parser's syntax and, unless an earlier
// declaration failed, immediately parses a value. Errors are held back until
// a value is pulled with Next so that the complete syntax line can be shown
// with them. Dry runs use the same declarations to harvest syntax without
// pulling anything.
type Arguments struct {
	ctx     Context
	cursor  *tokens.Cursor
	hist    *history
	current int
	err     *failure
}

// New creates an engine reading from cursor on behalf of ctx.
func New(ctx Context, cursor *tokens.Cursor) *Arguments {
	if cursor == nil {
		cursor = tokens.NewCursor(nil)
	}
	return &Arguments{
		ctx:    ctx,
		cursor: cursor,
		hist:   &history{},
	}
}

// Declare appends a parameter slot parsed by p.
func (a *Arguments) Declare(p Parser) *Arguments {
	return a.declare(p, nil, "")
}

// DeclareChecked appends a slot whose value must satisfy check. A rejected
// value is reported as "<label>: <input>".
func (a *Arguments) DeclareChecked(p Parser, check func(any) bool, label string) *Arguments {
	return a.declare(p, check, label)
}

// Named appends a slot parsed by p but shown under typename.
func (a *Arguments) Named(typename string, p Parser) *Arguments {
	return a.declare(Rename(p, typename), nil, "")
}

// NamedChecked combines Named and DeclareChecked.
func (a *Arguments) NamedChecked(typename string, p Parser, check func(any) bool, label string) *Arguments {
	return a.declare(Rename(p, typename), check, label)
}

func (a *Arguments) declare(p Parser, check func(any) bool, label string) *Arguments {
	a.hist.syntax = append(a.hist.syntax, p)
	if a.err != nil {
		return a
	}

	src := a.cursor
	if !src.HasNext() {
		if value, ok := defaultValue(p); ok {
			a.hist.parsed = append(a.hist.parsed, entry{value: value})
			return a
		}
		tok, ok := defaultToken(p)
		if !ok {
			a.fail(usage.MissingArgument(p.Typename()))
			return a
		}
		src = tokens.NewCursor([]tokens.Token{{Value: tok, Raw: tokens.Quote(tok)}})
	}

	start := src.Index()
	value, err := parse(p, src)
	if err != nil {
		a.fail(err)
		return a
	}
	if value == nil {
		a.fail(usage.ContractViolation("parser %s produced no value", p.Typename()))
		return a
	}

	consumed := src.Consumed(start)
	if check != nil && !check(value) {
		a.fail(usage.ValidationFailure(label, consumed))
		return a
	}

	a.hist.parsed = append(a.hist.parsed, entry{raw: consumed, value: value})
	return a
}

func parse(p Parser, c *tokens.Cursor) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			value = nil
			err = usage.ContractViolation("parser %s panicked: %v", p.Typename(), r)
		}
	}()
	return p.Parse(c)
}

func (a *Arguments) fail(err error) {
	if a.err != nil {
		return
	}

	var ue *usage.Error
	if errors.As(err, &ue) {
		switch ue.Kind {
		case usage.ErrMissingArgument, usage.ErrValidationFailure, usage.ErrParseFailure:
			a.err = &failure{kind: ue.Kind, message: ue.Message}
			return
		}
	}
	a.err = &failure{err: err}
}

// Next returns the next resolved value in declaration order.
//
// It refuses to run during a dry run or once every value has been pulled.
// If any declaration failed, the recorded error is returned instead: user
// input problems as a *usage.SyntaxError carrying the command's syntax, and
// anything else exactly as the parser reported it.
func (a *Arguments) Next() (any, error) {
	if a.ctx != nil && a.ctx.Dry() {
		return nil, usage.Misuse("cannot request parameters during a dry run")
	}
	if err := a.Err(); err != nil {
		return nil, err
	}
	if a.current >= len(a.hist.parsed) {
		return nil, usage.Misuse("no more parameters")
	}

	value := a.hist.parsed[a.current].value
	a.current++
	return value, nil
}

// NextOr behaves like Next but returns fallback where Next would return a
// *usage.SyntaxError. Every other error is still returned.
func (a *Arguments) NextOr(fallback any) (any, error) {
	value, err := a.Next()
	var se *usage.SyntaxError
	if errors.As(err, &se) {
		return fallback, nil
	}
	return value, err
}

// Next pulls the next value from a as a T.
func Next[T any](a *Arguments) (T, error) {
	var zero T
	value, err := a.Next()
	if err != nil {
		return zero, err
	}
	return cast[T](value)
}

// NextOr pulls the next value from a as a T, substituting fallback for
// syntax errors.
func NextOr[T any](a *Arguments, fallback T) (T, error) {
	value, err := a.NextOr(fallback)
	if err != nil {
		var zero T
		return zero, err
	}
	return cast[T](value)
}

func cast[T any](value any) (T, error) {
	t, ok := value.(T)
	if !ok {
		var zero T
		return zero, usage.Misuse("parameter is %T, not %T", value, zero)
	}
	return t, nil
}

// Peek returns the value Next would return without consuming it. It ignores
// the dry flag and reports false when the engine has failed or is exhausted.
func (a *Arguments) Peek() (any, bool) {
	if a.err != nil || a.current >= len(a.hist.parsed) {
		return nil, false
	}
	return a.hist.parsed[a.current].value, true
}

// Err returns the error Next would report for the first failed declaration,
// or nil if every declaration so far succeeded.
func (a *Arguments) Err() error {
	if a.err == nil {
		return nil
	}
	if a.err.err != nil {
		return a.err.err
	}
	return &usage.SyntaxError{Kind: a.err.kind, Syntax: a.Usage(), Reason: a.err.message}
}

// Copy returns an engine over the same declarations with its own cursor and
// pull position. The recorded error, if any, is carried over as it is now.
func (a *Arguments) Copy() *Arguments {
	return &Arguments{
		ctx:     a.ctx,
		cursor:  a.cursor.Copy(),
		hist:    a.hist,
		current: a.current,
		err:     a.err,
	}
}

// Drop discards the earliest n declarations together with their values and
// the first n tokens, renumbering what is left.
func (a *Arguments) Drop(n int) error {
	if n < 0 || n > len(a.hist.syntax) || n > len(a.hist.parsed) {
		return usage.Misuse("cannot drop %d parameters: %d declared, %d parsed",
			n, len(a.hist.syntax), len(a.hist.parsed))
	}

	a.cursor.Drop(n)
	a.hist.syntax = a.hist.syntax[n:]
	a.hist.parsed = a.hist.parsed[n:]
	a.current = max(a.current-n, 0)
	return nil
}

// WithContext rebinds the engine to ctx.
func (a *Arguments) WithContext(ctx Context) *Arguments {
	a.ctx = ctx
	return a
}

// Context returns the context the engine is bound to.
func (a *Arguments) Context() Context {
	return a.ctx
}

// Raw returns the underlying token cursor.
func (a *Arguments) Raw() *tokens.Cursor {
	return a.cursor
}

// Declared is the number of syntax entries.
func (a *Arguments) Declared() int {
	return len(a.hist.syntax)
}

// Parsed is the number of resolved values.
func (a *Arguments) Parsed() int {
	return len(a.hist.parsed)
}

// Consumed returns the verbatim input that produced the i-th value.
func (a *Arguments) Consumed(i int) (string, bool) {
	if i < 0 || i >= len(a.hist.parsed) {
		return "", false
	}
	return a.hist.parsed[i].raw, true
}

// Syntax renders every declared slot, for example "<number> [name=world]".
func (a *Arguments) Syntax() string {
	var b strings.Builder
	for i, p := range a.hist.syntax {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(SyntaxOf(p))
	}
	return b.String()
}

// Usage is the syntax line shown with errors: the context's static syntax
// when it has one, otherwise the label followed by Syntax.
func (a *Arguments) Usage() string {
	if a.ctx == nil {
		return a.Syntax()
	}
	if static, ok := a.ctx.Syntax(); ok {
		return static
	}
	return strings.TrimSpace(a.ctx.Label() + " " + a.Syntax())
}

func (a *Arguments) String() string {
	return fmt.Sprintf("Arguments(%s)", a.Usage())
}

package args

import (
	"strings"
	"unicode"

	"github.com/footprint-tools/argot/internal/usage"
)

// Complete suggests ways to finish the last token of the input.
//
// The slot is chosen by the position of the last token, so a dry run over
// partial input lines up the declared parsers with what has been typed.
// Candidates are filtered by prefix, de-duplicated in order, and quoted when
// they contain whitespace. A slot without suggestions yields an empty list.
func (a *Arguments) Complete() ([]string, error) {
	raw := a.cursor.Raw()
	if len(raw) == 0 {
		return []string{}, nil
	}

	idx := len(raw) - 1
	if idx >= len(a.hist.syntax) {
		return []string{}, nil
	}

	p := a.hist.syntax[idx]
	s, ok := p.(Suggester)
	if !ok {
		return []string{}, nil
	}

	suggested, err := suggestions(s)
	if err != nil {
		return nil, usage.ContractViolation("parser %T with typename %s failed while generating suggestions: %v",
			p, p.Typename(), err)
	}

	last := raw[idx]
	seen := make(map[string]bool, len(suggested))
	out := make([]string, 0, len(suggested))
	for _, candidate := range suggested {
		if seen[candidate] || !strings.HasPrefix(candidate, last) {
			continue
		}
		seen[candidate] = true
		out = append(out, quoteCandidate(candidate))
	}
	return out, nil
}

func suggestions(s Suggester) (out []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = usage.ContractViolation("panic: %v", r)
		}
	}()
	return s.Suggestions()
}

func quoteCandidate(s string) string {
	if !strings.ContainsFunc(s, unicode.IsSpace) {
		return s
	}

	hasDouble := strings.Contains(s, `"`)
	hasSingle := strings.Contains(s, `'`)
	switch {
	case hasDouble && hasSingle:
		return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
	case hasDouble:
		return `'` + s + `'`
	default:
		return `"` + s + `"`
	}
}

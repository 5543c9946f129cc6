package expr

import (
	"fmt"
	"strings"

	"github.com/rulego/crystalsql/funcmap"
	"github.com/rulego/crystalsql/types"
)

// Translator converts Crystal expression text to Oracle SQL text. A
// Translator is immutable after construction and safe for concurrent use;
// per-call state lives in the run type.
type Translator struct {
	resolver Resolver
	policy   types.UnsupportedPolicy
}

// NewTranslator builds a Translator with the given reference prefixes and
// unsupported-function policy.
func NewTranslator(formulaPrefix, parameterPrefix string, policy types.UnsupportedPolicy) *Translator {
	return &Translator{
		resolver: Resolver{FormulaPrefix: formulaPrefix, ParameterPrefix: parameterPrefix},
		policy:   policy,
	}
}

// Resolver returns the reference resolver the Translator was built with.
func (t *Translator) Resolver() Resolver {
	return t.resolver
}

// Translate converts one full Crystal expression to Oracle text. Empty or
// whitespace-only input succeeds with empty output. Malformed input
// (unbalanced parentheses, unterminated literal) yields Succeeded=false with
// a diagnostic warning; translation never panics.
func (t *Translator) Translate(source string) types.TranslatedExpression {
	if strings.TrimSpace(source) == "" {
		return types.TranslatedExpression{Succeeded: true}
	}

	text := stripComments(source)
	text, warnings := removeDirectives(text)

	r := &run{t: t, warnings: warnings}
	out, err := r.text(text)
	if err != nil {
		return types.TranslatedExpression{
			Succeeded: false,
			Warnings:  append(r.warnings, types.Warnf("malformed expression: "+err.Error(), source)),
		}
	}

	out = rewriteNullComparisons(out)
	out = collapseWhitespace(out)

	return types.TranslatedExpression{SQL: out, Warnings: r.warnings, Succeeded: true}
}

// run carries the state of one Translate call.
type run struct {
	t        *Translator
	warnings []types.Warning
}

func (r *run) warn(message, fragment string) {
	r.warnings = append(r.warnings, types.Warnf(message, fragment))
}

// text translates a span of expression text: string literals are carried
// over (normalized to single quotes), references are resolved, function
// calls recurse through call, and everything between goes through the
// operator pass in plain runs.
func (r *run) text(s string) (string, error) {
	var b strings.Builder
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			b.WriteString(rewritePlain(plain.String()))
			plain.Reset()
		}
	}

	i := 0
	for i < len(s) {
		c := s[i]

		switch {
		case isQuote(c):
			end, err := scanString(s, i)
			if err != nil {
				return "", err
			}
			flush()
			b.WriteString(normalizeLiteral(s[i:end]))
			i = end

		case c == '{':
			end := strings.IndexByte(s[i:], '}')
			if end < 0 {
				return "", fmt.Errorf("unclosed reference brace at position %d", i)
			}
			flush()
			b.WriteString(r.t.resolver.resolveBrace(s[i+1 : i+end]))
			i += end + 1

		case (c == '@' || c == '?') && i+1 < len(s) && (isLetter(s[i+1]) || s[i+1] == '_'):
			end := scanWord(s, i+1)
			flush()
			if c == '@' {
				b.WriteString(r.t.resolver.Formula(s[i+1 : end]))
			} else {
				b.WriteString(r.t.resolver.Parameter(s[i+1 : end]))
			}
			i = end

		case isLetter(c) || c == '_':
			end := scanWord(s, i)
			word := s[i:end]
			next := skipSpaces(s, end)

			// Word operators are never call names even when parenthesized
			// text follows, as in "NOT (:A = 1)".
			_, isOperatorWord := wordReplacements[strings.ToLower(word)]

			if !isOperatorWord && next < len(s) && s[next] == '(' {
				closeParen, err := matchParen(s, next)
				if err != nil {
					return "", err
				}
				out, err := r.call(word, s[next+1:closeParen])
				if err != nil {
					return "", err
				}
				flush()
				b.WriteString(out)
				i = closeParen + 1
				continue
			}

			plain.WriteString(word)
			i = end

		default:
			plain.WriteByte(c)
			i++
		}
	}

	flush()
	return b.String(), nil
}

// call translates one function call from its name and raw argument text.
func (r *run) call(name, argsText string) (string, error) {
	entry, ok := funcmap.Get(name)
	if !ok {
		return r.unknownCall(name, argsText)
	}

	switch entry.Handler {
	case funcmap.HandlerConditional:
		return r.conditional(name, argsText)
	case funcmap.HandlerSwitch:
		return r.switchCase(name, argsText)
	case funcmap.HandlerChoose:
		return r.choose(name, argsText)
	case funcmap.HandlerDatePart:
		return r.datePart(name, argsText)
	case funcmap.HandlerRunningTotal:
		return r.runningTotal(name, argsText)
	}

	args, err := SplitArgs(argsText)
	if err != nil {
		return "", err
	}

	translated, err := r.translateArgs(args)
	if err != nil {
		return "", err
	}

	if entry.Arity == 0 {
		if len(args) > 0 {
			r.warn(fmt.Sprintf("function %s expects no arguments, got %d", name, len(args)), argsText)
		}
		return entry.Template, nil
	}

	if entry.Arity != funcmap.Variadic && len(args) != entry.Arity {
		r.warn(fmt.Sprintf("function %s expects %d arguments, got %d", name, entry.Arity, len(args)), argsText)
	}

	out, missing := funcmap.Expand(entry.Template, translated)
	if missing && (entry.Arity == funcmap.Variadic || len(args) == entry.Arity) {
		r.warn(fmt.Sprintf("function %s template has unfilled placeholders", name), argsText)
	}
	return out, nil
}

// translateArgs translates each argument as a full sub-expression, so nested
// calls and references inside arguments are resolved innermost-first.
func (r *run) translateArgs(args []string) ([]string, error) {
	out := make([]string, len(args))
	for i, arg := range args {
		t, err := r.text(arg)
		if err != nil {
			return nil, err
		}
		out[i] = strings.TrimSpace(t)
	}
	return out, nil
}

// unknownCall applies the unsupported-function policy.
func (r *run) unknownCall(name, argsText string) (string, error) {
	switch r.t.policy {
	case types.PolicyFail:
		return "", fmt.Errorf("unsupported function %s", name)
	case types.PolicySkip:
		r.warn("unsupported function skipped", name)
		return "", nil
	default:
		args, err := SplitArgs(argsText)
		if err != nil {
			return "", err
		}
		translated, err := r.translateArgs(args)
		if err != nil {
			return "", err
		}
		r.warn("unsupported function passed through", name)
		return name + "(" + strings.Join(translated, ", ") + ")", nil
	}
}

// normalizeLiteral rewrites a Crystal string literal as an Oracle string
// literal. Double-quoted literals become single-quoted with embedded single
// quotes doubled; single-quoted literals are carried over unchanged.
func normalizeLiteral(lit string) string {
	if lit == "" || lit[0] == '\'' {
		return lit
	}
	inner := lit[1 : len(lit)-1]
	var b strings.Builder
	b.WriteByte('\'')
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if c == '"' && i+1 < len(inner) && inner[i+1] == '"' {
			b.WriteByte('"')
			i++
			continue
		}
		if c == '\'' {
			b.WriteString("''")
			continue
		}
		b.WriteByte(c)
	}
	b.WriteByte('\'')
	return b.String()
}

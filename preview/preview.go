// Package preview evaluates Crystal suppress conditions against sample rows
// before any Oracle artifact exists, so a migration engineer can check which
// rows a translated trigger would hide.
package preview

import (
	"fmt"
	"strings"

	exprlang "github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/spf13/cast"

	crystalexpr "github.com/rulego/crystalsql/expr"
)

// Condition is a compiled, evaluable suppress condition.
type Condition struct {
	program *vm.Program
	source  string
}

// Compile converts a Crystal condition into an evaluable program. Field
// references become environment variables named like their bind identifiers
// without the colon, so {Orders.Amount} reads the AMOUNT key of a row.
func Compile(condition string) (*Condition, error) {
	src := toExprSource(condition)

	program, err := exprlang.Compile(src,
		exprlang.AllowUndefinedVariables(),
		exprlang.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("preview: compile %q: %w", condition, err)
	}
	return &Condition{program: program, source: condition}, nil
}

// Evaluate runs the condition over one row. Evaluation errors count as not
// suppressed, mirroring the generated trigger's catch-all that returns FALSE.
func (c *Condition) Evaluate(row map[string]any) bool {
	result, err := exprlang.Run(c.program, normalizeEnv(row))
	if err != nil {
		return false
	}
	return cast.ToBool(result)
}

// Source returns the original Crystal condition text.
func (c *Condition) Source() string {
	return c.source
}

// Suppressed evaluates the condition over sample rows and returns one
// verdict per row.
func Suppressed(condition string, rows []map[string]any) ([]bool, error) {
	compiled, err := Compile(condition)
	if err != nil {
		return nil, err
	}
	out := make([]bool, len(rows))
	for i, row := range rows {
		out[i] = compiled.Evaluate(row)
	}
	return out, nil
}

// normalizeEnv renames row keys the way the reference resolver normalizes
// identifiers, so sample data can use the original field names.
func normalizeEnv(row map[string]any) map[string]any {
	env := make(map[string]any, len(row))
	for k, v := range row {
		env[crystalexpr.NormalizeIdentifier(k)] = v
	}
	return env
}

// toExprSource maps Crystal surface syntax onto the expression language the
// evaluator understands: references become identifiers, = becomes ==, <>
// becomes !=, & concatenates, and word operators go lowercase.
func toExprSource(s string) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		c := s[i]

		switch {
		case c == '\'' || c == '"':
			j := i + 1
			for j < len(s) && s[j] != c {
				j++
			}
			if j < len(s) {
				j++
			}
			b.WriteString(s[i:j])
			i = j

		case c == '{':
			close := strings.IndexByte(s[i:], '}')
			if close < 0 {
				b.WriteByte(c)
				i++
				continue
			}
			inner := strings.TrimSpace(s[i+1 : i+close])
			inner = strings.TrimPrefix(strings.TrimPrefix(inner, "@"), "?")
			if dot := strings.LastIndexByte(inner, '.'); dot >= 0 {
				inner = inner[dot+1:]
			}
			b.WriteString(crystalexpr.NormalizeIdentifier(strings.TrimSpace(inner)))
			i += close + 1

		case c == '<' && i+1 < len(s) && s[i+1] == '>':
			b.WriteString("!=")
			i += 2

		case c == '=' && (i == 0 || (s[i-1] != '<' && s[i-1] != '>' && s[i-1] != '!' && s[i-1] != '=')) &&
			(i+1 >= len(s) || s[i+1] != '='):
			b.WriteString("==")
			i++

		case c == '&':
			b.WriteString("+")
			i++

		case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_':
			j := i
			for j < len(s) && ((s[j] >= 'a' && s[j] <= 'z') || (s[j] >= 'A' && s[j] <= 'Z') || (s[j] >= '0' && s[j] <= '9') || s[j] == '_') {
				j++
			}
			word := s[i:j]
			switch strings.ToLower(word) {
			case "and", "or", "not", "true", "false", "nil":
				b.WriteString(strings.ToLower(word))
			default:
				b.WriteString(crystalexpr.NormalizeIdentifier(word))
			}
			i = j

		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

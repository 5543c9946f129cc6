package expr

import (
	"strings"

	"github.com/rulego/crystalsql/funcmap"
)

// wordReplacements maps Crystal word operators and literals to their Oracle
// spelling. Matching is case-insensitive and on word boundaries only, so an
// identifier like NOTIFIED is never touched.
var wordReplacements = map[string]string{
	"and":   "AND",
	"or":    "OR",
	"not":   "NOT",
	"is":    "IS",
	"null":  "NULL",
	"true":  "TRUE",
	"false": "FALSE",
}

// rewritePlain rewrites operators, boolean literals and bare keyword
// functions in a span of plain text. The span never contains string
// literals, references or function calls; the orchestrator consumes those
// before this pass runs.
func rewritePlain(s string) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		c := s[i]

		if isLetter(c) || c == '_' {
			end := scanWord(s, i)
			word := s[i:end]
			if repl, ok := funcmap.Keyword(word); ok {
				b.WriteString(repl)
			} else if repl, ok := wordReplacements[strings.ToLower(word)]; ok {
				b.WriteString(repl)
			} else {
				b.WriteString(word)
			}
			i = end
			continue
		}

		// Inequality symbol
		if c == '<' && i+1 < len(s) && s[i+1] == '>' {
			b.WriteString("!=")
			i += 2
			continue
		}

		// String concatenation, leaving && and &= alone
		if c == '&' {
			prevAmp := i > 0 && (s[i-1] == '&' || s[i-1] == '=')
			nextAmp := i+1 < len(s) && (s[i+1] == '&' || s[i+1] == '=')
			if !prevAmp && !nextAmp {
				b.WriteString("||")
				i++
				continue
			}
		}

		b.WriteByte(c)
		i++
	}
	return b.String()
}

// rewriteNullComparisons turns equality comparisons against NULL into the
// Oracle null-test idiom. It runs over the assembled output, skipping string
// literals:
//
//	:A = NULL  -> :A IS NULL
//	:A != NULL -> :A IS NOT NULL
func rewriteNullComparisons(s string) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		c := s[i]

		if isQuote(c) {
			end, err := scanString(s, i)
			if err != nil {
				b.WriteString(s[i:])
				break
			}
			b.WriteString(s[i:end])
			i = end
			continue
		}

		negated := false
		opLen := 0
		if c == '!' && i+1 < len(s) && s[i+1] == '=' {
			negated = true
			opLen = 2
		} else if c == '=' && (i == 0 || (s[i-1] != '<' && s[i-1] != '>' && s[i-1] != '!' && s[i-1] != '=')) {
			opLen = 1
		}

		if opLen > 0 {
			j := skipSpaces(s, i+opLen)
			end := scanWord(s, j)
			if end > j && strings.EqualFold(s[j:end], "null") && (end >= len(s) || !isWordChar(s[end])) {
				if negated {
					b.WriteString("IS NOT NULL")
				} else {
					b.WriteString("IS NULL")
				}
				i = end
				continue
			}
		}

		b.WriteByte(c)
		i++
	}
	return b.String()
}

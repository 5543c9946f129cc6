package expr

import (
	"strings"

	"github.com/rulego/crystalsql/funcmap"
	"github.com/rulego/crystalsql/types"
)

// stripComments removes Crystal line comments (// to end of line) outside
// string literals. Runs before any other pass.
func stripComments(s string) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		c := s[i]
		if isQuote(c) {
			end, err := scanString(s, i)
			if err != nil {
				// Leave the malformed tail for the main scan to diagnose
				b.WriteString(s[i:])
				break
			}
			b.WriteString(s[i:end])
			i = end
			continue
		}
		if c == '/' && i+1 < len(s) && s[i+1] == '/' {
			for i < len(s) && s[i] != '\n' {
				i++
			}
			continue
		}
		b.WriteByte(c)
		i++
	}
	return b.String()
}

// removeDirectives strips Crystal evaluation-time directives
// (WhilePrintingRecords and friends) together with a trailing semicolon.
// Oracle Reports schedules evaluation itself, so each removal is warned.
func removeDirectives(s string) (string, []types.Warning) {
	var b strings.Builder
	var warnings []types.Warning
	seen := map[string]bool{}

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
		if isLetter(c) || c == '_' {
			end := scanWord(s, i)
			word := s[i:end]
			if funcmap.IsEvaluationDirective(word) {
				lower := strings.ToLower(word)
				if !seen[lower] {
					seen[lower] = true
					warnings = append(warnings, types.Warnf(
						"evaluation-time directive removed, Oracle Reports schedules evaluation itself", word))
				}
				end = skipSpaces(s, end)
				if end < len(s) && s[end] == ';' {
					end++
				}
				i = skipSpaces(s, end)
				continue
			}
			b.WriteString(word)
			i = end
			continue
		}
		b.WriteByte(c)
		i++
	}
	return b.String(), warnings
}

// collapseWhitespace normalizes runs of whitespace outside string literals
// to a single space and trims the ends, so repeated translations of the same
// source are byte-identical regardless of the original layout.
func collapseWhitespace(s string) string {
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
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			i = skipSpaces(s, i)
			b.WriteByte(' ')
			continue
		}
		b.WriteByte(c)
		i++
	}
	return strings.TrimSpace(b.String())
}

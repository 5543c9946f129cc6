package formula

import (
	"strings"

	"github.com/rulego/crystalsql/types"
)

// inferDataType guesses a formula's value type from its source text. It only
// runs when the extractor supplied no declared type, and it errs toward the
// string type, which every Oracle Reports column can render.
func inferDataType(expression string) types.DataType {
	s := strings.ToLower(expression)

	// Text output: literals or concatenation anywhere in the body
	if strings.ContainsAny(s, "'\"&") {
		return types.TypeString
	}

	// Boolean output: comparisons or logical connectives
	if strings.ContainsAny(s, "<>=") ||
		hasWord(s, "and") || hasWord(s, "or") || hasWord(s, "not") ||
		hasWord(s, "isnull") || hasWord(s, "true") || hasWord(s, "false") {
		return types.TypeBoolean
	}

	// Date output: date producers without arithmetic context
	for _, w := range []string{"currentdate", "currentdatetime", "now", "today", "dateserial", "datevalue", "dateadd", "cdate"} {
		if hasWord(s, w) {
			return types.TypeDate
		}
	}

	// Numeric output: arithmetic or a leading digit
	if strings.ContainsAny(s, "+-*/") || (len(s) > 0 && s[0] >= '0' && s[0] <= '9') ||
		hasWord(s, "sum") || hasWord(s, "count") || hasWord(s, "avg") {
		return types.TypeNumber
	}

	return types.TypeString
}

// hasWord reports whether w occurs in s on word boundaries.
func hasWord(s, w string) bool {
	idx := 0
	for {
		i := strings.Index(s[idx:], w)
		if i < 0 {
			return false
		}
		i += idx
		before := i == 0 || !isIdentChar(s[i-1])
		after := i+len(w) >= len(s) || !isIdentChar(s[i+len(w)])
		if before && after {
			return true
		}
		idx = i + len(w)
	}
}

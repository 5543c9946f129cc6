package expr

import (
	"fmt"
	"strings"
)

// SplitArgs splits the text between a function call's parentheses into its
// top-level arguments. A comma splits only at parenthesis depth zero and
// outside string literals. Empty input yields no arguments.
//
// The scan fails on unbalanced parentheses or an unterminated string
// literal; the caller surfaces that as a failed translation, not a panic.
func SplitArgs(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var args []string
	depth := 0
	start := 0
	i := 0

	for i < len(s) {
		switch {
		case isQuote(s[i]):
			end, err := scanString(s, i)
			if err != nil {
				return nil, err
			}
			i = end
		case s[i] == '(':
			depth++
			i++
		case s[i] == ')':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced parentheses at position %d", i)
			}
			i++
		case s[i] == ',' && depth == 0:
			args = append(args, strings.TrimSpace(s[start:i]))
			i++
			start = i
		default:
			i++
		}
	}

	if depth != 0 {
		return nil, fmt.Errorf("unbalanced parentheses in argument list")
	}

	args = append(args, strings.TrimSpace(s[start:]))
	return args, nil
}

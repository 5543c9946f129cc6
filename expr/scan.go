package expr

import "fmt"

// isDigit checks if character is a digit
func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// isLetter checks if character is a letter
func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// isWordChar checks if character can appear inside an identifier
func isWordChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '_'
}

// isQuote checks if character opens a Crystal string literal. Crystal
// accepts both quote styles.
func isQuote(ch byte) bool {
	return ch == '\'' || ch == '"'
}

// scanString returns the index one past the closing quote of the string
// literal starting at s[start]. A doubled quote inside the literal is an
// escape. Fails when the literal never terminates.
func scanString(s string, start int) (int, error) {
	quote := s[start]
	i := start + 1
	for i < len(s) {
		if s[i] != quote {
			i++
			continue
		}
		if i+1 < len(s) && s[i+1] == quote {
			i += 2 // escaped quote
			continue
		}
		return i + 1, nil
	}
	return 0, fmt.Errorf("unterminated string literal at position %d", start)
}

// scanWord returns the index one past the identifier starting at s[start].
func scanWord(s string, start int) int {
	i := start
	for i < len(s) && isWordChar(s[i]) {
		i++
	}
	return i
}

// skipSpaces returns the index of the first non-space character at or after
// start.
func skipSpaces(s string, start int) int {
	i := start
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	return i
}

// matchParen returns the index of the parenthesis matching s[open], scanning
// over nested parentheses and string literals. Fails on unbalanced input.
func matchParen(s string, open int) (int, error) {
	depth := 0
	i := open
	for i < len(s) {
		switch {
		case isQuote(s[i]):
			end, err := scanString(s, i)
			if err != nil {
				return 0, err
			}
			i = end
		case s[i] == '(':
			depth++
			i++
		case s[i] == ')':
			depth--
			if depth == 0 {
				return i, nil
			}
			i++
		default:
			i++
		}
	}
	return 0, fmt.Errorf("unbalanced parentheses starting at position %d", open)
}

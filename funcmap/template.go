package funcmap

import "strings"

// Expand substitutes translated arguments into the numbered placeholders of
// an Oracle template. Placeholders whose index has no argument are left in
// place; the second return value reports whether that happened so the caller
// can attach an arity warning.
func Expand(template string, args []string) (string, bool) {
	var b strings.Builder
	missing := false

	i := 0
	for i < len(template) {
		c := template[i]
		if c != '{' {
			b.WriteByte(c)
			i++
			continue
		}

		// Scan a {digits} placeholder
		j := i + 1
		idx := 0
		digits := 0
		for j < len(template) && template[j] >= '0' && template[j] <= '9' {
			idx = idx*10 + int(template[j]-'0')
			digits++
			j++
		}
		if digits == 0 || j >= len(template) || template[j] != '}' {
			// Not a placeholder, copy the brace through
			b.WriteByte(c)
			i++
			continue
		}

		if idx < len(args) {
			b.WriteString(args[idx])
		} else {
			b.WriteString(template[i : j+1])
			missing = true
		}
		i = j + 1
	}

	return b.String(), missing
}

// MaxPlaceholder returns the highest placeholder index in a template, or -1
// when the template has none.
func MaxPlaceholder(template string) int {
	max := -1
	i := 0
	for i < len(template) {
		if template[i] != '{' {
			i++
			continue
		}
		j := i + 1
		idx := 0
		digits := 0
		for j < len(template) && template[j] >= '0' && template[j] <= '9' {
			idx = idx*10 + int(template[j]-'0')
			digits++
			j++
		}
		if digits > 0 && j < len(template) && template[j] == '}' {
			if idx > max {
				max = idx
			}
			i = j + 1
			continue
		}
		i++
	}
	return max
}

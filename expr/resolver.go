package expr

import "strings"

// Resolver rewrites Crystal references into Oracle identifiers. Resolution
// is a pure function of the input text and the configured prefixes.
type Resolver struct {
	// FormulaPrefix precedes generated formula function names (CF_ by default)
	FormulaPrefix string
	// ParameterPrefix precedes parameter bind names (P_ by default)
	ParameterPrefix string
}

// NormalizeIdentifier turns arbitrary source text into a valid Oracle
// identifier: uppercased, every character outside [A-Za-z0-9_] replaced with
// an underscore, and prefixed with an underscore when it would start with a
// digit.
func NormalizeIdentifier(name string) string {
	var b strings.Builder
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z':
			b.WriteByte(c - 'a' + 'A')
		case (c >= 'A' && c <= 'Z') || c == '_' || isDigit(c):
			b.WriteByte(c)
		default:
			b.WriteByte('_')
		}
	}
	out := b.String()
	if out != "" && isDigit(out[0]) {
		out = "_" + out
	}
	return out
}

// Column resolves a field reference to a bind identifier. A table qualifier
// is discarded; only the bare field name is kept.
//
//	{First Name}    -> :FIRST_NAME
//	{Orders.Amount} -> :AMOUNT
func (r Resolver) Column(ref string) string {
	name := strings.TrimSpace(ref)
	if dot := strings.LastIndexByte(name, '.'); dot >= 0 {
		name = name[dot+1:]
	}
	return ":" + NormalizeIdentifier(strings.TrimSpace(name))
}

// Formula resolves a formula reference to a zero-argument call on the
// generated function.
//
//	@Total or {@Total} -> CF_TOTAL()
func (r Resolver) Formula(ref string) string {
	name := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(ref), "@"))
	return r.FormulaPrefix + NormalizeIdentifier(name) + "()"
}

// Parameter resolves a parameter reference to a prefixed bind identifier.
//
//	?Region or {?Region} -> :P_REGION
func (r Resolver) Parameter(ref string) string {
	name := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(ref), "?"))
	return ":" + r.ParameterPrefix + NormalizeIdentifier(name)
}

// resolveBrace resolves one {...} reference from its inner text, picking the
// reference kind from the leading sigil.
func (r Resolver) resolveBrace(inner string) string {
	trimmed := strings.TrimSpace(inner)
	switch {
	case strings.HasPrefix(trimmed, "@"):
		return r.Formula(trimmed)
	case strings.HasPrefix(trimmed, "?"):
		return r.Parameter(trimmed)
	default:
		return r.Column(trimmed)
	}
}

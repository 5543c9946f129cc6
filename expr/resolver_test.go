package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNormalizeIdentifier tests Oracle identifier normalization.
func TestNormalizeIdentifier(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lower case uppercased", input: "amount", expected: "AMOUNT"},
		{name: "space becomes underscore", input: "First Name", expected: "FIRST_NAME"},
		{name: "punctuation becomes underscore", input: "Total ($)", expected: "TOTAL____"},
		{name: "leading digit prefixed", input: "2ndQuarter", expected: "_2NDQUARTER"},
		{name: "underscore kept", input: "Ship_Date", expected: "SHIP_DATE"},
		{name: "empty stays empty", input: "", expected: ""},
		{name: "hyphenated name", input: "year-to-date", expected: "YEAR_TO_DATE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeIdentifier(tt.input))
		})
	}
}

// TestResolver tests the three reference kinds.
func TestResolver(t *testing.T) {
	r := Resolver{FormulaPrefix: "CF_", ParameterPrefix: "P_"}

	t.Run("column without qualifier", func(t *testing.T) {
		assert.Equal(t, ":FIRST_NAME", r.Column("First Name"))
	})

	t.Run("column with table qualifier", func(t *testing.T) {
		assert.Equal(t, ":AMOUNT", r.Column("Orders.Amount"))
	})

	t.Run("column with schema and table qualifier", func(t *testing.T) {
		assert.Equal(t, ":AMOUNT", r.Column("Sales.Orders.Amount"))
	})

	t.Run("formula with sigil", func(t *testing.T) {
		assert.Equal(t, "CF_TOTAL()", r.Formula("@Total"))
	})

	t.Run("formula without sigil", func(t *testing.T) {
		assert.Equal(t, "CF_TOTAL()", r.Formula("Total"))
	})

	t.Run("parameter with sigil", func(t *testing.T) {
		assert.Equal(t, ":P_REGION", r.Parameter("?Region"))
	})

	t.Run("brace dispatch by sigil", func(t *testing.T) {
		assert.Equal(t, "CF_TOTAL()", r.resolveBrace("@Total"))
		assert.Equal(t, ":P_REGION", r.resolveBrace("?Region"))
		assert.Equal(t, ":AMOUNT", r.resolveBrace("Orders.Amount"))
	})

	t.Run("surrounding whitespace ignored", func(t *testing.T) {
		assert.Equal(t, ":AMOUNT", r.resolveBrace("  Orders.Amount  "))
	})
}

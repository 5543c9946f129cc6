package funcmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGet_CaseInsensitive tests that lookups ignore case.
func TestGet_CaseInsensitive(t *testing.T) {
	for _, name := range []string{"left", "Left", "LEFT", "lEfT"} {
		e, ok := Get(name)
		require.True(t, ok, "lookup %s", name)
		assert.Equal(t, "left", e.Name)
		assert.Equal(t, 2, e.Arity)
		assert.Equal(t, "SUBSTR({0}, 1, {1})", e.Template)
	}
}

// TestGet_Unknown tests that unregistered names miss.
func TestGet_Unknown(t *testing.T) {
	_, ok := Get("definitelynotafunction")
	assert.False(t, ok)
}

// TestGet_Handlers tests that handler-backed entries carry their handler ID.
func TestGet_Handlers(t *testing.T) {
	tests := []struct {
		name    string
		handler HandlerID
		arity   int
	}{
		{name: "iif", handler: HandlerConditional, arity: 3},
		{name: "switch", handler: HandlerSwitch, arity: Variadic},
		{name: "choose", handler: HandlerChoose, arity: Variadic},
		{name: "datepart", handler: HandlerDatePart, arity: 2},
		{name: "runningtotal", handler: HandlerRunningTotal, arity: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := Get(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.handler, e.Handler)
			assert.Equal(t, tt.arity, e.Arity)
		})
	}
}

// TestRegister tests registration validation.
func TestRegister(t *testing.T) {
	t.Run("empty name rejected", func(t *testing.T) {
		assert.Error(t, Register(Entry{Name: "", Template: "X"}))
	})

	t.Run("duplicate rejected case-insensitively", func(t *testing.T) {
		assert.Error(t, Register(Entry{Name: "LEFT", Arity: 2, Template: "X({0})"}))
	})
}

// TestListAll tests that listing is complete and sorted.
func TestListAll(t *testing.T) {
	all := ListAll()
	require.NotEmpty(t, all)

	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Name, all[i].Name)
	}

	names := make(map[string]bool, len(all))
	for _, e := range all {
		names[e.Name] = true
	}
	for _, want := range []string{"left", "iif", "totext", "sum", "datepart"} {
		assert.True(t, names[want], "missing %s", want)
	}
}

// TestListByCategory tests category filtering.
func TestListByCategory(t *testing.T) {
	strings := ListByCategory("string")
	require.NotEmpty(t, strings)
	for _, e := range strings {
		assert.Equal(t, "string", e.Category)
	}

	assert.Empty(t, ListByCategory("nonexistent"))
}

// TestKeyword tests bare keyword function expansion.
func TestKeyword(t *testing.T) {
	tests := []struct {
		word     string
		expected string
		ok       bool
	}{
		{word: "CurrentDate", expected: "TRUNC(SYSDATE)", ok: true},
		{word: "now", expected: "SYSDATE", ok: true},
		{word: "RecordNumber", expected: "ROWNUM", ok: true},
		{word: "PageNumber", expected: "1", ok: true},
		{word: "amount", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			repl, ok := Keyword(tt.word)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, repl)
			}
		})
	}
}

// TestIsEvaluationDirective tests directive detection.
func TestIsEvaluationDirective(t *testing.T) {
	assert.True(t, IsEvaluationDirective("WhilePrintingRecords"))
	assert.True(t, IsEvaluationDirective("whilereadingrecords"))
	assert.True(t, IsEvaluationDirective("BeforeReadingRecords"))
	assert.False(t, IsEvaluationDirective("Left"))
	assert.False(t, IsEvaluationDirective(""))
}

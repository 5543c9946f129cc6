package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSplitArgs tests top-level argument splitting.
func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty input yields no arguments",
			input:    "",
			expected: nil,
		},
		{
			name:     "whitespace-only input yields no arguments",
			input:    "   ",
			expected: nil,
		},
		{
			name:     "single argument",
			input:    "{Amount}",
			expected: []string{"{Amount}"},
		},
		{
			name:     "arguments trimmed",
			input:    " {Amount} ,  5 ",
			expected: []string{"{Amount}", "5"},
		},
		{
			name:     "comma inside nested call not a split point",
			input:    "Left({Name}, 3), 'x'",
			expected: []string{"Left({Name}, 3)", "'x'"},
		},
		{
			name:     "comma inside string literal not a split point",
			input:    "'a, b', 2",
			expected: []string{"'a, b'", "2"},
		},
		{
			name:     "comma inside double-quoted literal not a split point",
			input:    `"a, b", 2`,
			expected: []string{`"a, b"`, "2"},
		},
		{
			name:     "deeply nested parentheses",
			input:    "((({A}, {B}))), {C}",
			expected: []string{"((({A}, {B})))", "{C}"},
		},
		{
			name:     "empty middle argument kept",
			input:    "a,,b",
			expected: []string{"a", "", "b"},
		},
		{
			name:     "trailing comma yields empty argument",
			input:    "a,",
			expected: []string{"a", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args, err := SplitArgs(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, args)
		})
	}
}

// TestSplitArgs_Malformed tests that broken argument text is rejected.
func TestSplitArgs_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "unbalanced open paren", input: "Left({A}, 3"},
		{name: "unbalanced close paren", input: "a), b"},
		{name: "unterminated single-quoted literal", input: "'abc, 2"},
		{name: "unterminated double-quoted literal", input: `"abc, 2`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args, err := SplitArgs(tt.input)
			assert.Error(t, err)
			assert.Nil(t, args)
		})
	}
}

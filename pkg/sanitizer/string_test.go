package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/freshval/pkg/sanitizer"
)

func TestTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "removes leading and trailing spaces",
			input:    "  hello world  ",
			expected: "hello world",
		},
		{
			name:     "removes tabs and newlines",
			input:    "\t\nhello\n\t",
			expected: "hello",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "preserves internal whitespace",
			input:    "  hello  world  ",
			expected: "hello  world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.Trim(tt.input))
		})
	}
}

func TestToLower(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "ascii", input: "HeLLo World", expected: "hello world"},
		{name: "unicode", input: "ÄÖÜ ÉCOLE", expected: "äöü école"},
		{name: "already lowercase", input: "abc", expected: "abc"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.ToLower(tt.input))
		})
	}
}

func TestToTitle(t *testing.T) {
	assert.Equal(t, "Hello World", sanitizer.ToTitle("hello WORLD"))
	assert.Equal(t, "", sanitizer.ToTitle(""))
}

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "collapses spaces", input: "a    b", expected: "a b"},
		{name: "collapses mixed whitespace", input: "a\t\n b", expected: "a b"},
		{name: "trims edges", input: "  a b  ", expected: "a b"},
		{name: "whitespace only", input: " \t\n ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.NormalizeWhitespace(tt.input))
		})
	}
}

func TestNormalizeUnicode(t *testing.T) {
	t.Run("composes decomposed characters", func(t *testing.T) {
		decomposed := "e\u0301cole"
		assert.Equal(t, "école", sanitizer.NormalizeUnicode(decomposed))
	})

	t.Run("leaves composed text unchanged", func(t *testing.T) {
		assert.Equal(t, "école", sanitizer.NormalizeUnicode("école"))
	})
}

package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/freshval/pkg/sanitizer"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases and trims",
			input:    "  John.Doe@Example.COM ",
			expected: "john.doe@example.com",
		},
		{
			name:     "collapses repeated dots in local part",
			input:    "john..doe@example.com",
			expected: "john.doe@example.com",
		},
		{
			name:     "strips leading and trailing dots in local part",
			input:    ".john.@example.com",
			expected: "john@example.com",
		},
		{
			name:     "leaves input without at sign lowercased",
			input:    "Not-An-Email",
			expected: "not-an-email",
		},
		{
			name:     "leaves input with two at signs lowercased",
			input:    "A@B@C.com",
			expected: "a@b@c.com",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.NormalizeEmail(tt.input))
		})
	}
}

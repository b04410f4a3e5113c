package sanitizer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower folds a string to lowercase using Unicode case mapping rules that
// are independent of any particular language.
func ToLower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// ToTitle capitalizes the first letter of each word and lowercases the rest.
func ToTitle(s string) string {
	return cases.Title(language.Und).String(s)
}

// NormalizeWhitespace collapses runs of whitespace into single spaces and trims the result.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// NormalizeUnicode rewrites s into Unicode normalization form C, so that
// visually identical strings compare equal.
func NormalizeUnicode(s string) string {
	return norm.NFC.String(s)
}

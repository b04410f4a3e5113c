// Package sanitizer provides small, stateless string normalizers and the
// adapters that turn them into value transformations for the validator.
//
// The helpers fall into two groups:
//
//   - Strings – trimming, Unicode-aware case folding and NFC normalization
//     (backed by golang.org/x/text), whitespace collapsing.
//
//   - Format – normalization of user input such as e-mail addresses.
//
// Compose chains helpers into one function, and StringTransform adapts a
// func(string) string into a func(any) any that leaves non-string values
// alone and preserves named string types:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.NormalizeWhitespace,
//	    sanitizer.ToLower,
//	)
//	clean("  Mixed CASE   Input\n") // "mixed case input"
//
//	transform := sanitizer.StringTransform(clean)
//	transform(42) // 42, untouched
//
// # Error handling
//
// None of the helpers returns an error; they fall back to the original input
// when it cannot be normalized.
package sanitizer

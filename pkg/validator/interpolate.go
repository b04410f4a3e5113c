package validator

import (
	"regexp"
	"strconv"

	"github.com/davecgh/go-spew/spew"
)

var placeholderRegex = regexp.MustCompile(`\{(\w+)\}`)

// valuePrinter renders values for messages. Pointer addresses are hidden so
// messages stay stable between runs, and nested pointers print their targets.
var valuePrinter = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func formatValue(v any) string {
	if v == nil {
		return "<nil>"
	}
	return valuePrinter.Sprint(v)
}

// interpolate replaces {key} placeholders with values[key] and {n} with the
// n-th (1-based) parameter. Unknown placeholders are left as written.
func interpolate(template string, values map[string]string, params []any) string {
	return placeholderRegex.ReplaceAllStringFunc(template, func(match string) string {
		key := match[1 : len(match)-1]
		if n, err := strconv.Atoi(key); err == nil {
			if n >= 1 && n <= len(params) {
				return formatValue(params[n-1])
			}
			return match
		}
		if v, ok := values[key]; ok {
			return v
		}
		return match
	})
}

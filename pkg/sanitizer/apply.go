package sanitizer

import "reflect"

// Compose chains string helpers into one function applied left to right.
func Compose(transforms ...func(string) string) func(string) string {
	return func(s string) string {
		for _, transform := range transforms {
			s = transform(s)
		}
		return s
	}
}

// StringTransform adapts fn to arbitrary values: values of string kind are
// transformed and converted back to their original type, anything else is
// returned unchanged.
func StringTransform(fn func(string) string) func(any) any {
	return func(value any) any {
		if value == nil {
			return nil
		}
		v := reflect.ValueOf(value)
		if v.Kind() != reflect.String {
			return value
		}
		out := fn(v.String())
		if v.Type() == reflect.TypeOf(out) {
			return out
		}
		return reflect.ValueOf(out).Convert(v.Type()).Interface()
	}
}

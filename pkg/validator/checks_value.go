package validator

import (
	"reflect"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

func valueChecks() []Check {
	return []Check{
		{
			Name:     CheckContains,
			Message:  "{name} ({val}) must{not} contain the element {1}",
			Validate: containsValue,
		},
		{
			Name:     CheckHasKey,
			Message:  "{name} ({val}) must{not} have the key {1}",
			Validate: hasKey,
		},
		{
			Name:           CheckEqualTo,
			ContinueOnFail: true,
			Message:        "{name} ({val}) must{not} be equal to {1}",
			Validate: func(target any, params ...any) bool {
				return len(params) > 0 && equal(target, params[0])
			},
		},
		{
			Name:           CheckGreaterThan,
			ContinueOnFail: true,
			Message:        "{name} ({val}) must{not} be greater than {1}",
			Validate: func(target any, params ...any) bool {
				if len(params) == 0 {
					return false
				}
				c, ok := compare(target, params[0])
				return ok && c > 0
			},
		},
		{
			Name:           CheckLessThan,
			ContinueOnFail: true,
			Message:        "{name} ({val}) must{not} be less than {1}",
			Validate: func(target any, params ...any) bool {
				if len(params) == 0 {
					return false
				}
				c, ok := compare(target, params[0])
				return ok && c < 0
			},
		},
		{
			Name:           CheckOneOf,
			ContinueOnFail: true,
			Message:        "{name} ({val}) must{not} be one of {1}",
			Validate: func(target any, params ...any) bool {
				if len(params) == 1 {
					if list := reflect.ValueOf(params[0]); list.Kind() == reflect.Slice {
						return containsValue(params[0], target)
					}
				}
				for _, p := range params {
					if equal(target, p) {
						return true
					}
				}
				return false
			},
		},
		{
			Name:           CheckMinLength,
			ContinueOnFail: true,
			Message:        "{name} ({val}) must{not} have a length of at least {1}",
			Validate: func(target any, params ...any) bool {
				n, ok := length(target)
				limit, lok := intParam(params)
				return ok && lok && n >= limit
			},
		},
		{
			Name:           CheckMaxLength,
			ContinueOnFail: true,
			Message:        "{name} ({val}) must{not} have a length of at most {1}",
			Validate: func(target any, params ...any) bool {
				n, ok := length(target)
				limit, lok := intParam(params)
				return ok && lok && n <= limit
			},
		},
		{
			Name:           CheckMatches,
			ContinueOnFail: true,
			Message:        "{name} ({val}) must{not} match {1}",
			Validate:       matches,
		},
	}
}

// containsValue reports value membership: slice and array elements, map
// values, or a substring of a string.
func containsValue(target any, params ...any) bool {
	if len(params) == 0 {
		return false
	}
	want := params[0]
	v := indirect(reflect.ValueOf(target))
	if !v.IsValid() {
		return false
	}

	switch v.Kind() {
	case reflect.String:
		s, ok := want.(string)
		return ok && strings.Contains(v.String(), s)
	case reflect.Slice, reflect.Array:
		for i := range v.Len() {
			if equal(v.Index(i).Interface(), want) {
				return true
			}
		}
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			if equal(iter.Value().Interface(), want) {
				return true
			}
		}
	}
	return false
}

// hasKey reports key membership for maps and exported struct fields.
func hasKey(target any, params ...any) bool {
	if len(params) == 0 {
		return false
	}
	v := indirect(reflect.ValueOf(target))
	if !v.IsValid() {
		return false
	}

	switch v.Kind() {
	case reflect.Map:
		k, ok := mapKey(v.Type().Key(), params[0])
		return ok && v.MapIndex(k).IsValid()
	case reflect.Struct:
		_, ok := fieldIndex(v.Type(), params[0])
		return ok
	}
	return false
}

func matches(target any, params ...any) bool {
	if len(params) == 0 || target == nil {
		return false
	}
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.String {
		return false
	}

	switch p := params[0].(type) {
	case *regexp.Regexp:
		return p != nil && p.MatchString(v.String())
	case string:
		re, err := regexp.Compile(p)
		return err == nil && re.MatchString(v.String())
	}
	return false
}

// equal compares numbers by value regardless of their Go type and
// everything else with reflect.DeepEqual.
func equal(a, b any) bool {
	if x, ok := toFloat(a, false); ok {
		if y, ok := toFloat(b, false); ok {
			return x == y
		}
	}
	return reflect.DeepEqual(a, b)
}

// compare orders two numbers, two strings or two times.
func compare(a, b any) (int, bool) {
	if x, ok := toFloat(a, false); ok {
		y, ok := toFloat(b, false)
		if !ok {
			return 0, false
		}
		switch {
		case x < y:
			return -1, true
		case x > y:
			return 1, true
		}
		return 0, true
	}

	if a == nil || b == nil {
		return 0, false
	}
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.Kind() == reflect.String && bv.Kind() == reflect.String {
		return strings.Compare(av.String(), bv.String()), true
	}
	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			return at.Compare(bt), true
		}
	}
	return 0, false
}

// length is the rune count of a string or the element count of a slice,
// array or map.
func length(target any) (int, bool) {
	v := indirect(reflect.ValueOf(target))
	if !v.IsValid() {
		return 0, false
	}
	switch v.Kind() {
	case reflect.String:
		return utf8.RuneCountInString(v.String()), true
	case reflect.Slice, reflect.Array, reflect.Map:
		return v.Len(), true
	}
	return 0, false
}

func intParam(params []any) (int, bool) {
	if len(params) == 0 {
		return 0, false
	}
	f, ok := toFloat(params[0], false)
	return int(f), ok
}

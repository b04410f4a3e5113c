package validator

import (
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Built-in check names.
const (
	CheckRequired    = "required"
	CheckDefined     = "defined"
	CheckInstanceOf  = "instanceOf"
	CheckObject      = "object"
	CheckString      = "string"
	CheckNumber      = "number"
	CheckInteger     = "integer"
	CheckArray       = "array"
	CheckContains    = "contains"
	CheckHasKey      = "hasKey"
	CheckEqualTo     = "equalTo"
	CheckGreaterThan = "greaterThan"
	CheckLessThan    = "lessThan"
	CheckOneOf       = "oneOf"
	CheckMinLength   = "minLength"
	CheckMaxLength   = "maxLength"
	CheckMatches     = "matches"
	CheckUUID        = "uuid"
	CheckEmail       = "email"
	CheckTrimmed     = "trimmed"
	CheckLowercase   = "lowercase"
	CheckNormalized  = "normalized"
)

func builtinChecks() []Check {
	checks := typeChecks()
	checks = append(checks, valueChecks()...)
	checks = append(checks, formatChecks()...)
	return checks
}

func typeChecks() []Check {
	return []Check{
		{
			// Not().Required() has special handling in Chain.run.
			Name:     CheckRequired,
			Message:  "{name} ({val}) is{not} required",
			Validate: func(target any, _ ...any) bool { return !isNil(target) },
		},
		{
			Name:     CheckDefined,
			Message:  "{name} ({val}) must{not} be defined",
			Validate: func(target any, _ ...any) bool { return !isNil(target) },
		},
		{
			Name:     CheckInstanceOf,
			Message:  "{name} ({val}) must{not} be an instance of {1}",
			Validate: isInstanceOf,
		},
		{
			Name:     CheckObject,
			Message:  "{name} ({val}) must{not} be an object",
			Validate: func(target any, _ ...any) bool { return isObject(target) },
		},
		{
			Name:    CheckString,
			Message: "{name} ({val}) must{not} be a string",
			Validate: func(target any, _ ...any) bool {
				return target != nil && reflect.TypeOf(target).Kind() == reflect.String
			},
		},
		{
			Name:    CheckNumber,
			Message: "{name} ({val}) must{not} be a number",
			Validate: func(target any, _ ...any) bool {
				_, ok := toFloat(target, true)
				return ok
			},
			Transform: toNumber,
		},
		{
			Name:    CheckInteger,
			Message: "{name} ({val}) must{not} be an integer",
			Validate: func(target any, _ ...any) bool {
				f, ok := toFloat(target, true)
				return ok && f == math.Trunc(f)
			},
			Transform: toInteger,
		},
		{
			Name:    CheckArray,
			Message: "{name} ({val}) must{not} be an array",
			Validate: func(target any, _ ...any) bool {
				if target == nil {
					return false
				}
				k := reflect.TypeOf(target).Kind()
				return k == reflect.Slice || k == reflect.Array
			},
		},
	}
}

// isInstanceOf accepts either a reflect.Type or a sample value of the
// wanted type. Interface types match every implementation.
func isInstanceOf(target any, params ...any) bool {
	if target == nil || len(params) == 0 || params[0] == nil {
		return false
	}
	want, ok := params[0].(reflect.Type)
	if !ok {
		want = reflect.TypeOf(params[0])
	}
	got := reflect.TypeOf(target)
	if want.Kind() == reflect.Interface {
		return got.Implements(want)
	}
	return got == want
}

func isObject(target any) bool {
	v := indirect(reflect.ValueOf(target))
	if !v.IsValid() {
		return false
	}
	return v.Kind() == reflect.Map || v.Kind() == reflect.Struct
}

// toFloat reads target as a float64. Numeric strings (decimal, exponent or
// 0x-prefixed hex, surrounding spaces allowed) count when parseStrings is
// set. NaN and infinities never count.
func toFloat(target any, parseStrings bool) (float64, bool) {
	if target == nil {
		return 0, false
	}
	v := reflect.ValueOf(target)
	var f float64
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		f = v.Float()
	case reflect.String:
		if !parseStrings {
			return 0, false
		}
		parsed, ok := parseNumber(v.String())
		if !ok {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if rest, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		n, err := strconv.ParseUint(rest, 16, 64)
		return float64(n), err == nil
	}
	if strings.ContainsAny(s, "_") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// toNumber converts numeric strings to float64 and leaves numbers untouched.
func toNumber(target any) any {
	if target == nil || reflect.TypeOf(target).Kind() != reflect.String {
		return target
	}
	f, ok := toFloat(target, true)
	if !ok {
		return target
	}
	return f
}

// toInteger converts numeric strings to int64 and leaves numbers untouched.
func toInteger(target any) any {
	if target == nil || reflect.TypeOf(target).Kind() != reflect.String {
		return target
	}
	f, ok := toFloat(target, true)
	if !ok || f < math.MinInt64 || f >= math.MaxInt64 {
		return target
	}
	return int64(f)
}

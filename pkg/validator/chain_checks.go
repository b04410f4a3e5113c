package validator

import "reflect"

// Typed shortcuts for the built-in checks. Each one is equivalent to
// Check(<name>, params...), so a check registered on the engine under the
// same name is used instead of the built-in.

// Required fails on nil values and stops the scope. Not().Required() never
// fails: it stops the scope silently when the value is missing.
func (c *Chain) Required() *Chain { return c.Check(CheckRequired) }

// Defined is Required without the special negation rule.
func (c *Chain) Defined() *Chain { return c.Check(CheckDefined) }

// InstanceOf checks the dynamic type against t.
func (c *Chain) InstanceOf(t reflect.Type) *Chain { return c.Check(CheckInstanceOf, t) }

// Object checks for a map or struct, directly or behind a pointer.
func (c *Chain) Object() *Chain { return c.Check(CheckObject) }

// Str checks for a value of string kind.
func (c *Chain) Str() *Chain { return c.Check(CheckString) }

// Number accepts numbers and numeric strings; numeric strings become float64.
func (c *Chain) Number() *Chain { return c.Check(CheckNumber) }

// Integer accepts whole numbers and whole numeric strings; numeric strings become int64.
func (c *Chain) Integer() *Chain { return c.Check(CheckInteger) }

// Array checks for a slice or array.
func (c *Chain) Array() *Chain { return c.Check(CheckArray) }

// Contains checks that element is one of the values of a slice, array or
// map, or a substring of a string.
func (c *Chain) Contains(element any) *Chain { return c.Check(CheckContains, element) }

// HasKey checks for a map key or an exported struct field (by name or json tag).
func (c *Chain) HasKey(key any) *Chain { return c.Check(CheckHasKey, key) }

// EqualTo compares numbers by value and anything else with reflect.DeepEqual.
func (c *Chain) EqualTo(other any) *Chain { return c.Check(CheckEqualTo, other) }

// GreaterThan compares numbers, strings or times against other.
func (c *Chain) GreaterThan(other any) *Chain { return c.Check(CheckGreaterThan, other) }

// LessThan compares numbers, strings or times against other.
func (c *Chain) LessThan(other any) *Chain { return c.Check(CheckLessThan, other) }

// OneOf checks that the value equals one of values.
func (c *Chain) OneOf(values ...any) *Chain { return c.Check(CheckOneOf, values) }

// MinLength checks the length of a string (in runes), slice, array or map.
func (c *Chain) MinLength(n int) *Chain { return c.Check(CheckMinLength, n) }

// MaxLength is the upper bound counterpart of MinLength.
func (c *Chain) MaxLength(n int) *Chain { return c.Check(CheckMaxLength, n) }

// Matches accepts a pattern string or a compiled *regexp.Regexp.
func (c *Chain) Matches(pattern any) *Chain { return c.Check(CheckMatches, pattern) }

// UUID accepts any form uuid.Parse understands and canonicalizes it.
func (c *Chain) UUID() *Chain { return c.Check(CheckUUID) }

// Email validates an address and normalizes it.
func (c *Chain) Email() *Chain { return c.Check(CheckEmail) }

// Trimmed rewrites strings without surrounding whitespace.
func (c *Chain) Trimmed() *Chain { return c.Check(CheckTrimmed) }

// Lowercase rewrites strings in lower case.
func (c *Chain) Lowercase() *Chain { return c.Check(CheckLowercase) }

// Normalized rewrites strings into Unicode NFC.
func (c *Chain) Normalized() *Chain { return c.Check(CheckNormalized) }

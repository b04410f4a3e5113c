package validator

import (
	"fmt"
	"reflect"
	"strings"
)

// TransformationMode selects how successful checks apply their transformations.
type TransformationMode string

const (
	// ModeCopy transforms a private deep copy of the validated value.
	ModeCopy TransformationMode = "copy"
	// ModeMutate transforms the caller's value in place.
	ModeMutate TransformationMode = "mutate"
	// ModeNone never invokes transformation functions.
	ModeNone TransformationMode = "none"
)

// ParseTransformationMode parses a mode name, case-insensitively. An empty
// string selects ModeCopy.
func ParseTransformationMode(s string) (TransformationMode, error) {
	switch m := TransformationMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeCopy, nil
	case ModeCopy, ModeMutate, ModeNone:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q (expected %q, %q or %q)", ErrInvalidTransformationMode, s, ModeCopy, ModeMutate, ModeNone)
	}
}

// ownership decides who owns the working copy of a session's root value.
type ownership interface {
	// acquire returns the working copy for root.
	acquire(root any) any
	// transforms reports whether transformation functions run at all.
	transforms() bool
}

// ownedCopy keeps a private deep copy so caller data is never touched.
type ownedCopy struct{}

func (ownedCopy) acquire(root any) any { return deepClone(root) }
func (ownedCopy) transforms() bool     { return true }

// borrowed works directly on the caller's value.
type borrowed struct {
	transform bool
}

func (b borrowed) acquire(root any) any { return root }
func (b borrowed) transforms() bool     { return b.transform }

func ownershipFor(mode TransformationMode) (ownership, error) {
	switch mode {
	case ModeCopy, "":
		return ownedCopy{}, nil
	case ModeMutate:
		return borrowed{transform: true}, nil
	case ModeNone:
		return borrowed{transform: false}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidTransformationMode, mode)
	}
}

// identity is the reference identity of a root value: the address for maps,
// slices and pointers, the value itself for other comparable values.
type identity struct {
	typ   reflect.Type
	ptr   uintptr
	n     int
	value any
}

// identityOf returns false when v has no usable identity (e.g. a struct
// holding a slice), in which case every Is call starts a new working copy.
func identityOf(v any) (identity, bool) {
	if v == nil {
		return identity{}, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Pointer:
		return identity{typ: rv.Type(), ptr: rv.Pointer()}, true
	case reflect.Slice:
		return identity{typ: rv.Type(), ptr: rv.Pointer(), n: rv.Len()}, true
	}
	if rv.Comparable() {
		return identity{typ: rv.Type(), value: v}, true
	}
	return identity{}, false
}

// deepClone copies maps, slices, arrays, pointers and exported struct fields
// recursively. Shared and cyclic references are preserved in the copy.
// Unexported fields, funcs and channels are copied shallowly.
func deepClone(v any) any {
	if v == nil {
		return nil
	}
	c := &cloner{seen: make(map[cloneKey]reflect.Value)}
	return c.clone(reflect.ValueOf(v)).Interface()
}

type cloneKey struct {
	typ reflect.Type
	ptr uintptr
	n   int
}

type cloner struct {
	seen map[cloneKey]reflect.Value
}

func (c *cloner) clone(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return v
		}
		key := cloneKey{typ: v.Type(), ptr: v.Pointer()}
		if cp, ok := c.seen[key]; ok {
			return cp
		}
		cp := reflect.New(v.Type().Elem())
		c.seen[key] = cp
		cp.Elem().Set(c.clone(v.Elem()))
		return cp

	case reflect.Map:
		if v.IsNil() {
			return v
		}
		key := cloneKey{typ: v.Type(), ptr: v.Pointer()}
		if cp, ok := c.seen[key]; ok {
			return cp
		}
		cp := reflect.MakeMapWithSize(v.Type(), v.Len())
		c.seen[key] = cp
		iter := v.MapRange()
		for iter.Next() {
			cp.SetMapIndex(iter.Key(), c.clone(iter.Value()))
		}
		return cp

	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		key := cloneKey{typ: v.Type(), ptr: v.Pointer(), n: v.Len()}
		if cp, ok := c.seen[key]; ok {
			return cp
		}
		cp := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		c.seen[key] = cp
		for i := range v.Len() {
			cp.Index(i).Set(c.clone(v.Index(i)))
		}
		return cp

	case reflect.Array:
		cp := reflect.New(v.Type()).Elem()
		for i := range v.Len() {
			cp.Index(i).Set(c.clone(v.Index(i)))
		}
		return cp

	case reflect.Struct:
		cp := reflect.New(v.Type()).Elem()
		cp.Set(v)
		for i := range v.NumField() {
			if f := cp.Field(i); f.CanSet() {
				f.Set(c.clone(v.Field(i)))
			}
		}
		return cp

	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		cp := reflect.New(v.Type()).Elem()
		cp.Set(c.clone(v.Elem()))
		return cp
	}

	return v
}

package validator

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// isNil reports whether v is missing: an untyped nil or a nil pointer,
// interface, map, slice, func or channel.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// indirect follows pointers and interfaces. The result is invalid when a nil
// is reached.
func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

// childValue returns parent[key], or nil when parent cannot hold key.
func childValue(parent any, key any) any {
	v := indirect(reflect.ValueOf(parent))
	if !v.IsValid() {
		return nil
	}

	var child reflect.Value
	switch v.Kind() {
	case reflect.Map:
		k, ok := mapKey(v.Type().Key(), key)
		if !ok {
			return nil
		}
		child = v.MapIndex(k)
	case reflect.Slice, reflect.Array:
		i, ok := sliceIndex(key)
		if !ok || i < 0 || i >= v.Len() {
			return nil
		}
		child = v.Index(i)
	case reflect.Struct:
		i, ok := fieldIndex(v.Type(), key)
		if !ok {
			return nil
		}
		child = v.Field(i)
	default:
		return nil
	}

	if !child.IsValid() || !child.CanInterface() {
		return nil
	}
	return child.Interface()
}

// setChild stores val under key in parent. inPlace is true when the write
// mutated data shared with parent (map entry, slice element, field behind a
// pointer); otherwise updated is a modified copy of parent that the caller
// must store one level up.
func setChild(parent any, key any, val any) (updated any, inPlace bool, err error) {
	rv := reflect.ValueOf(parent)
	v := indirect(rv)
	if !v.IsValid() {
		return nil, false, fmt.Errorf("cannot set %v on a nil value", key)
	}

	switch v.Kind() {
	case reflect.Map:
		if v.IsNil() {
			return nil, false, fmt.Errorf("cannot set %v on a nil map", key)
		}
		k, ok := mapKey(v.Type().Key(), key)
		if !ok {
			return nil, false, fmt.Errorf("key %v does not fit map key type %s", key, v.Type().Key())
		}
		nv, ok := assignable(val, v.Type().Elem())
		if !ok {
			return nil, false, fmt.Errorf("value of type %T does not fit map element type %s", val, v.Type().Elem())
		}
		v.SetMapIndex(k, nv)
		return parent, true, nil

	case reflect.Slice:
		i, ok := sliceIndex(key)
		if !ok || i < 0 || i >= v.Len() {
			return nil, false, fmt.Errorf("index %v out of range", key)
		}
		nv, ok := assignable(val, v.Type().Elem())
		if !ok {
			return nil, false, fmt.Errorf("value of type %T does not fit element type %s", val, v.Type().Elem())
		}
		v.Index(i).Set(nv)
		return parent, true, nil

	case reflect.Array, reflect.Struct:
		inPlace := v.CanSet()
		if !inPlace && rv.Kind() == reflect.Pointer {
			return nil, false, fmt.Errorf("cannot set %v on unaddressable %s", key, v.Type())
		}
		target := v
		if !inPlace {
			target = reflect.New(v.Type()).Elem()
			target.Set(v)
		}

		var slot reflect.Value
		if v.Kind() == reflect.Array {
			i, ok := sliceIndex(key)
			if !ok || i < 0 || i >= target.Len() {
				return nil, false, fmt.Errorf("index %v out of range", key)
			}
			slot = target.Index(i)
		} else {
			i, ok := fieldIndex(target.Type(), key)
			if !ok {
				return nil, false, fmt.Errorf("no exported field %v in %s", key, target.Type())
			}
			slot = target.Field(i)
		}

		nv, ok := assignable(val, slot.Type())
		if !ok {
			return nil, false, fmt.Errorf("value of type %T does not fit %s", val, slot.Type())
		}
		slot.Set(nv)
		if inPlace {
			return parent, true, nil
		}
		return target.Interface(), false, nil
	}

	return nil, false, fmt.Errorf("cannot set %v on %T", key, parent)
}

// assignable converts val into a value storable in a slot of type typ.
// Numeric values convert between numeric kinds and strings between string
// kinds; anything else must be directly assignable.
func assignable(val any, typ reflect.Type) (reflect.Value, bool) {
	if val == nil {
		switch typ.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(typ), true
		}
		return reflect.Value{}, false
	}

	rv := reflect.ValueOf(val)
	if rv.Type().AssignableTo(typ) {
		return rv, true
	}
	if isNumberKind(rv.Kind()) && isNumberKind(typ.Kind()) {
		return convertNumber(rv, typ)
	}
	if rv.Kind() == reflect.String && typ.Kind() == reflect.String {
		return rv.Convert(typ), true
	}
	return reflect.Value{}, false
}

// convertNumber converts rv to typ only when the value survives unchanged:
// no overflow, no dropped fraction, no sign flip.
func convertNumber(rv reflect.Value, typ reflect.Type) (reflect.Value, bool) {
	slot := reflect.New(typ).Elem()
	switch {
	case isIntKind(rv.Kind()):
		n := rv.Int()
		switch {
		case isIntKind(typ.Kind()):
			if slot.OverflowInt(n) {
				return reflect.Value{}, false
			}
		case isUintKind(typ.Kind()):
			if n < 0 || slot.OverflowUint(uint64(n)) {
				return reflect.Value{}, false
			}
		default:
			if int64(float64(n)) != n || slot.OverflowFloat(float64(n)) {
				return reflect.Value{}, false
			}
		}

	case isUintKind(rv.Kind()):
		n := rv.Uint()
		switch {
		case isIntKind(typ.Kind()):
			if n > math.MaxInt64 || slot.OverflowInt(int64(n)) {
				return reflect.Value{}, false
			}
		case isUintKind(typ.Kind()):
			if slot.OverflowUint(n) {
				return reflect.Value{}, false
			}
		default:
			if uint64(float64(n)) != n || slot.OverflowFloat(float64(n)) {
				return reflect.Value{}, false
			}
		}

	default:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			if isIntKind(typ.Kind()) || isUintKind(typ.Kind()) {
				return reflect.Value{}, false
			}
			break
		}
		switch {
		case isIntKind(typ.Kind()):
			if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 || slot.OverflowInt(int64(f)) {
				return reflect.Value{}, false
			}
		case isUintKind(typ.Kind()):
			if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 || slot.OverflowUint(uint64(f)) {
				return reflect.Value{}, false
			}
		default:
			if slot.OverflowFloat(f) || (typ.Kind() == reflect.Float32 && float64(float32(f)) != f) {
				return reflect.Value{}, false
			}
		}
	}
	return rv.Convert(typ), true
}

func mapKey(keyType reflect.Type, key any) (reflect.Value, bool) {
	if key == nil {
		return reflect.Value{}, false
	}
	kv := reflect.ValueOf(key)
	if kv.Type().AssignableTo(keyType) {
		return kv, true
	}
	if kv.Kind() == reflect.String && keyType.Kind() == reflect.String {
		return kv.Convert(keyType), true
	}
	if isNumberKind(kv.Kind()) && isNumberKind(keyType.Kind()) {
		return kv.Convert(keyType), true
	}
	return reflect.Value{}, false
}

func sliceIndex(key any) (int, bool) {
	switch k := key.(type) {
	case int:
		return k, k >= 0
	case string:
		i, err := strconv.Atoi(k)
		return i, err == nil && i >= 0
	}
	kv := reflect.ValueOf(key)
	switch kv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if kv.Int() < 0 || kv.Int() > math.MaxInt {
			return 0, false
		}
		return int(kv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if kv.Uint() > math.MaxInt {
			return 0, false
		}
		return int(kv.Uint()), true
	}
	return 0, false
}

// fieldIndex finds an exported field by Go name, falling back to its json tag name.
func fieldIndex(t reflect.Type, key any) (int, bool) {
	name, ok := key.(string)
	if !ok || name == "" {
		return 0, false
	}
	if f, ok := t.FieldByName(name); ok && f.IsExported() && len(f.Index) == 1 {
		return f.Index[0], true
	}
	for i := range t.NumField() {
		f := t.Field(i)
		if f.IsExported() && jsonName(f) == name {
			return i, true
		}
	}
	return 0, false
}

// fieldName returns the Go name of the struct field key addresses in
// parent, or fallback when parent is not a struct or has no such field.
func fieldName(parent any, key any, fallback string) string {
	v := indirect(reflect.ValueOf(parent))
	if !v.IsValid() || v.Kind() != reflect.Struct {
		return fallback
	}
	i, ok := fieldIndex(v.Type(), key)
	if !ok {
		return fallback
	}
	return v.Type().Field(i).Name
}

func jsonName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" || tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	return name
}

func isIntKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUintKind(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

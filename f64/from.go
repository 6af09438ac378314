// SPDX-License-Identifier: Unlicense OR MIT

package f64

import (
	"image"
	"reflect"

	"golang.org/x/image/math/fixed"
)

// From converts loosely typed coordinate data to a Vector2. It
// accepts
//
//   - Vector2 and *Vector2
//   - any XYer
//   - image.Point and fixed.Point26_6
//   - maps with "x" and "y" keys, such as decoded JSON objects
//   - slices and arrays of exactly two numbers
//   - structs, or pointers to structs, with numeric X and Y fields
//
// The boolean result is false for nil and for every other kind of
// value.
func From(v interface{}) (Vector2, bool) {
	if isNil(v) {
		return Vector2{}, false
	}
	switch v := v.(type) {
	case Vector2:
		return v, true
	case *Vector2:
		return *v, true
	case XYer:
		x, y, ok := coords(v)
		return Vector2{X: x, Y: y}, ok
	case image.Point:
		return FromImage(v), true
	case fixed.Point26_6:
		return FromFixed(v), true
	case map[string]float64:
		x, okx := v["x"]
		y, oky := v["y"]
		return Vector2{X: x, Y: y}, okx && oky
	}
	return fromValue(reflect.ValueOf(v))
}

func fromValue(v reflect.Value) (Vector2, bool) {
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		if v.Len() != 2 {
			return Vector2{}, false
		}
		x, okx := number(v.Index(0))
		y, oky := number(v.Index(1))
		return Vector2{X: x, Y: y}, okx && oky
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return Vector2{}, false
		}
		x, okx := mapNumber(v, "x")
		y, oky := mapNumber(v, "y")
		return Vector2{X: x, Y: y}, okx && oky
	case reflect.Struct:
		x, okx := field(v, "X")
		y, oky := field(v, "Y")
		return Vector2{X: x, Y: y}, okx && oky
	}
	return Vector2{}, false
}

// field returns the numeric value of the named field of the struct v.
// Fields promoted through a nil embedded pointer are missing.
func field(v reflect.Value, name string) (float64, bool) {
	sf, ok := v.Type().FieldByName(name)
	if !ok {
		return 0, false
	}
	f, err := v.FieldByIndexErr(sf.Index)
	if err != nil {
		return 0, false
	}
	return number(f)
}

// coords returns the coordinates of c. A c whose XY method panics,
// such as a struct promoting XY from a nil embedded pointer, has no
// coordinates.
func coords(c XYer) (x, y float64, ok bool) {
	defer func() {
		if recover() != nil {
			x, y, ok = 0, 0, false
		}
	}()
	x, y = c.XY()
	return x, y, true
}

func mapNumber(m reflect.Value, key string) (float64, bool) {
	e := m.MapIndex(reflect.ValueOf(key).Convert(m.Type().Key()))
	if !e.IsValid() {
		return 0, false
	}
	return number(e)
}

// number extracts a float64 from a numeric value, looking through
// interfaces.
func number(v reflect.Value) (float64, bool) {
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return 0, false
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint()), true
	}
	return 0, false
}

// isNil reports whether v is nil or a nil pointer, map, slice or
// interface wrapped in a non-nil interface.
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

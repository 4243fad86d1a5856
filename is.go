package pagekit

import (
	"reflect"
	"strconv"
	"strings"
)

// IsEmpty reports whether v counts as empty.
//
// Zero counts as empty: nil, "", zero-length strings, slices, maps and
// arrays, empty selections, numeric zero, false, and strings that loosely
// equal zero ("0", "0.00", "   ") are all empty. Callers that need a real
// zero must check for it before calling IsEmpty.
func IsEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return looseZero(x)
	case Selector:
		return looseZero(string(x))
	case bool:
		return !x
	case Selection:
		return isNilInterface(x) || x.Len() == 0
	case Handle:
		return x.Selection == nil || isNilInterface(x.Selection) || x.Selection.Len() == 0
	case Literal:
		return x == 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	case reflect.Slice, reflect.Map:
		return rv.IsNil() || rv.Len() == 0
	case reflect.Array, reflect.String:
		return rv.Len() == 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	}
	return false
}

// looseZero mirrors `s == 0` for strings: blank strings and strings that
// parse to zero compare equal to zero.
func looseZero(s string) bool {
	t := strings.TrimSpace(s)
	if t == "" {
		return true
	}
	f, err := strconv.ParseFloat(t, 64)
	return err == nil && f == 0
}

// IsElementHandle reports whether v is a live selection handle.
func IsElementHandle(v any) bool {
	switch x := v.(type) {
	case Handle:
		return x.Selection != nil && !isNilInterface(x.Selection)
	case Selection:
		return !isNilInterface(x)
	}
	return false
}

// IsElementName reports whether v is a class or id selector string.
func IsElementName(v any) bool {
	var s string
	switch x := v.(type) {
	case string:
		s = x
	case Selector:
		s = string(x)
	default:
		return false
	}
	return strings.HasPrefix(s, ".") || strings.HasPrefix(s, "#")
}

func isNilInterface(v any) bool {
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

package pagekit

import (
	"fmt"
	"reflect"
	"sort"
)

// Target is a descriptor naming the elements an operation applies to.
//
// Targets are tagged values built once at the call boundary:
//
//	pagekit.Selector("#email")                     // single selector
//	pagekit.Handle{Selection: doc.Find("input")}   // single live handle
//	pagekit.Many{pagekit.Selector("#a"), h}        // ordered sequence
//	pagekit.Keyed{{Key: "name", Target: pagekit.Selector(".name")}}
//
// From converts loosely typed input (strings, selections, slices, maps,
// numbers) into the matching variant.
type Target interface {
	isTarget()
}

// Handle wraps an already resolved selection.
type Handle struct {
	Selection Selection
}

// Selector is a class (".name") or id ("#name") selector resolved against
// the surface on every call. Strings with any other prefix never resolve.
type Selector string

// Literal is a number supplied in place of an element. Only the float and
// decimal formatters accept it.
type Literal float64

// Many is an ordered sequence of single targets.
type Many []Target

// Entry is one keyed member of a Keyed descriptor.
type Entry struct {
	Key    string
	Target Target
}

// Keyed is an ordered mapping of keys to single targets. Entries are visited
// in slice order.
type Keyed []Entry

// Invalid carries a value that could not be classified. It never resolves.
type Invalid struct {
	Value any
}

func (Handle) isTarget()   {}
func (Selector) isTarget() {}
func (Literal) isTarget()  {}
func (Many) isTarget()     {}
func (Keyed) isTarget()    {}
func (Invalid) isTarget()  {}

// From classifies v into a Target.
//
// Strings starting with "." or "#" become Selectors, other strings are
// Invalid. Selections become Handles, numbers become Literals, slices and
// arrays become Many, and string-keyed maps become Keyed with entries
// sorted by key (Go maps have no insertion order). Members of a collection
// are classified the same way but only single targets resolve inside one.
func From(v any) Target {
	switch x := v.(type) {
	case nil:
		return Invalid{}
	case Target:
		return x
	case Selection:
		if isNilInterface(x) {
			return Invalid{Value: v}
		}
		return Handle{Selection: x}
	case string:
		if IsElementName(x) {
			return Selector(x)
		}
		return Invalid{Value: x}
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Literal(float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Literal(float64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return Literal(rv.Float())
	case reflect.Slice, reflect.Array:
		many := make(Many, rv.Len())
		for i := range many {
			many[i] = From(rv.Index(i).Interface())
		}
		return many
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Invalid{Value: v}
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		keyed := make(Keyed, len(keys))
		for i, k := range keys {
			val := rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key()))
			keyed[i] = Entry{Key: k, Target: From(val.Interface())}
		}
		return keyed
	}
	return Invalid{Value: v}
}

// describe renders a target for log lines and errors.
func describe(t Target) string {
	switch x := t.(type) {
	case nil:
		return "<nil>"
	case Selector:
		return fmt.Sprintf("%q", string(x))
	case Handle:
		if x.Selection == nil {
			return "handle(<nil>)"
		}
		return fmt.Sprintf("handle(%d)", x.Selection.Len())
	case Literal:
		return fmt.Sprintf("literal(%v)", float64(x))
	case Many:
		return fmt.Sprintf("many(%d)", len(x))
	case Keyed:
		return fmt.Sprintf("keyed(%d)", len(x))
	case Invalid:
		return fmt.Sprintf("%v", x.Value)
	}
	return fmt.Sprintf("%T", t)
}

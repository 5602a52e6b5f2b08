package ptree

import (
	"fmt"
	"reflect"
	"runtime"
	"strconv"
	"strings"
)

var (
	containerType = reflect.TypeFor[Container]()
	stringerType  = reflect.TypeFor[fmt.Stringer]()
	errorType     = reflect.TypeFor[error]()
)

// child is one (subscription, value) pair of a branch.
type child struct {
	sub   string
	value reflect.Value
}

// identity keys the visited set. Slices sharing a backing array but
// differing in length are distinct values. refs holds the remaining
// references of a struct identity.
type identity struct {
	typ  reflect.Type
	ptr  uintptr
	len  int
	refs string
}

// class is the outcome of classifying one node.
type class struct {
	branch   bool
	children []child
	info     BranchInfo
	leaf     LeafInfo
}

func leafOf(s string) class {
	return class{leaf: LeafInfo{Display: s}}
}

// classify decides whether v is a branch or a leaf. Identities of values
// that turn out to be branches are recorded in the visited set before their
// children are walked.
func (w *walker) classify(v reflect.Value, level int) class {
	v = unwrap(v)
	if !v.IsValid() {
		return leafOf("<nil>")
	}
	typ := v.Type()
	var ids []identity
	for {
		if id, ok := identityOf(v); ok {
			if _, seen := w.visited[id]; seen {
				return recursionOf(v, id)
			}
			ids = append(ids, id)
		}
		if s, ok := textOf(v); ok {
			if isDisplayer(v) {
				return leafOf(display(v))
			}
			return leafOf(s)
		}
		if c, ok := asContainer(v); ok {
			if v.Kind() == reflect.Struct {
				if id, ok := structIdentity(v); ok {
					if _, seen := w.visited[id]; seen {
						return recursionOf(v, id)
					}
					ids = append(ids, id)
				}
			}
			return w.branch(typ, level, ids, w.entryChildren(c.TreeEntries()))
		}
		if isDisplayer(v) {
			return leafOf(display(v))
		}
		switch v.Kind() {
		case reflect.Pointer:
			if v.IsNil() {
				return leafOf("<nil>")
			}
			v = unwrap(v.Elem())
			if !v.IsValid() {
				return leafOf("<nil>")
			}
			continue
		case reflect.Map:
			return w.branch(typ, level, ids, mapChildren(v))
		case reflect.Slice, reflect.Array:
			return w.branch(typ, level, ids, seqChildren(v))
		case reflect.Struct:
			return w.branch(typ, level, ids, structChildren(v))
		}
		return leafOf(display(v))
	}
}

func (w *walker) branch(typ reflect.Type, level int, ids []identity, children []child) class {
	for _, id := range ids {
		w.visited[id] = struct{}{}
	}
	c := class{
		branch: true,
		info: BranchInfo{
			Type:      typ.String(),
			Len:       len(children),
			Annotated: w.opts.annotate,
		},
	}
	if w.opts.depthSet && level >= w.opts.depth {
		c.info.Truncated = len(children) > 0
		return c
	}
	c.children = children
	return c
}

func unwrap(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

// identityOf returns the visited-set key of values that can take part in a
// cycle. Scalars, arrays and structs held by value cannot. Neither can
// zero-size elements, which all share one address.
func identityOf(v reflect.Value) (identity, bool) {
	switch v.Kind() {
	case reflect.Map:
		if v.IsNil() {
			return identity{}, false
		}
		return identity{typ: v.Type(), ptr: v.Pointer()}, true
	case reflect.Slice:
		if v.Len() == 0 || v.Type().Elem().Size() == 0 {
			return identity{}, false
		}
		return identity{typ: v.Type(), ptr: v.Pointer(), len: v.Len()}, true
	case reflect.Pointer:
		if v.IsNil() || v.Type().Elem().Size() == 0 {
			return identity{}, false
		}
		switch v.Type().Elem().Kind() {
		case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array, reflect.Pointer, reflect.Interface:
			return identity{typ: v.Type(), ptr: v.Pointer()}, true
		}
	}
	return identity{}, false
}

// structIdentity identifies a struct held by value through the maps,
// slices and pointers it holds. Copies of a struct share its identity.
func structIdentity(v reflect.Value) (identity, bool) {
	id := identity{typ: v.Type()}
	var refs strings.Builder
	found := false
	for i := 0; i < v.NumField(); i++ {
		ref, ok := identityOf(unwrap(v.Field(i)))
		if !ok {
			continue
		}
		if !found {
			id.ptr, id.len, found = ref.ptr, ref.len, true
			continue
		}
		fmt.Fprintf(&refs, "%d:%x/%d;", i, ref.ptr, ref.len)
	}
	id.refs = refs.String()
	return id, found
}

func recursionOf(v reflect.Value, id identity) class {
	return class{leaf: LeafInfo{
		Display:   fmt.Sprintf("<Recursion on %s with id=%#x>", v.Type(), id.ptr),
		Recursion: true,
	}}
}

// textOf reports whether v is a character or byte string.
func textOf(v reflect.Value) (string, bool) {
	switch v.Kind() {
	case reflect.String:
		return v.String(), true
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return string(v.Bytes()), true
		}
	}
	return "", false
}

func asContainer(v reflect.Value) (Container, bool) {
	if !v.CanInterface() || !v.Type().Implements(containerType) {
		return nil, false
	}
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return nil, false
	}
	c, ok := v.Interface().(Container)
	return c, ok
}

func isDisplayer(v reflect.Value) bool {
	if !v.CanInterface() {
		return false
	}
	t := v.Type()
	return t.Implements(errorType) || t.Implements(stringerType)
}

// display returns the display form of a scalar.
func display(v reflect.Value) string {
	v = unwrap(v)
	if !v.IsValid() {
		return "<nil>"
	}
	switch v.Kind() {
	case reflect.Func:
		if v.IsNil() {
			return "<nil>"
		}
		if fn := runtime.FuncForPC(v.Pointer()); fn != nil {
			return "<func " + fn.Name() + ">"
		}
		return "<" + v.Type().String() + ">"
	case reflect.Chan, reflect.UnsafePointer:
		return "<" + v.Type().String() + ">"
	}
	if v.CanInterface() {
		return fmt.Sprint(v.Interface())
	}
	return fmt.Sprint(v)
}

// isSet reports whether t is a map used as a set, i.e. map[K]struct{}.
func isSet(t reflect.Type) bool {
	e := t.Elem()
	return e.Kind() == reflect.Struct && e.NumField() == 0
}

func mapChildren(v reflect.Value) []child {
	keys := make([]reflect.Value, 0, v.Len())
	values := make([]reflect.Value, 0, v.Len())
	// MapRange rather than MapIndex: NaN keys cannot be looked up.
	for it := v.MapRange(); it.Next(); {
		keys = append(keys, it.Key())
		values = append(values, it.Value())
	}
	swap := func(i, j int) { values[i], values[j] = values[j], values[i] }
	if !sortKeys(keys, swap) {
		sortKeysFallback(keys, swap)
	}
	set := isSet(v.Type())
	children := make([]child, len(keys))
	for i, k := range keys {
		if set {
			children[i] = child{sub: strconv.Itoa(i), value: k}
			continue
		}
		children[i] = child{sub: display(k), value: values[i]}
	}
	return children
}

func seqChildren(v reflect.Value) []child {
	children := make([]child, v.Len())
	for i := range children {
		children[i] = child{sub: strconv.Itoa(i), value: v.Index(i)}
	}
	return children
}

func structChildren(v reflect.Value) []child {
	t := v.Type()
	children := make([]child, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		children = append(children, child{sub: f.Name, value: v.Field(i)})
	}
	return children
}

func (w *walker) entryChildren(entries []Entry) []child {
	if !w.opts.unsorted {
		keys := make([]reflect.Value, len(entries))
		for i := range entries {
			keys[i] = reflect.ValueOf(entries[i].Key)
		}
		sorted := make([]Entry, len(entries))
		copy(sorted, entries)
		sortKeys(keys, func(i, j int) { sorted[i], sorted[j] = sorted[j], sorted[i] })
		entries = sorted
	}
	children := make([]child, len(entries))
	for i, e := range entries {
		children[i] = child{sub: display(reflect.ValueOf(e.Key)), value: reflect.ValueOf(e.Value)}
	}
	return children
}

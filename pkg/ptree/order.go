package ptree

import (
	"reflect"
	"sort"
)

type keyClass int

const (
	otherKey keyClass = iota
	numberKey
	stringKey
	boolKey
)

func classOf(v reflect.Value) keyClass {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return numberKey
	case reflect.String:
		return stringKey
	case reflect.Bool:
		return boolKey
	}
	return otherKey
}

// comparableKeys reports whether all keys share one ordered class.
func comparableKeys(keys []reflect.Value) bool {
	if len(keys) == 0 {
		return true
	}
	first := classOf(unwrap(keys[0]))
	if first == otherKey {
		return false
	}
	for _, k := range keys[1:] {
		if classOf(unwrap(k)) != first {
			return false
		}
	}
	return true
}

// keySorter sorts keys, mirroring every swap through swap so that slices
// parallel to keys stay aligned.
type keySorter struct {
	keys []reflect.Value
	less func(a, b reflect.Value) bool
	swap func(i, j int)
}

func (s keySorter) Len() int           { return len(s.keys) }
func (s keySorter) Less(i, j int) bool { return s.less(unwrap(s.keys[i]), unwrap(s.keys[j])) }

func (s keySorter) Swap(i, j int) {
	s.keys[i], s.keys[j] = s.keys[j], s.keys[i]
	if s.swap != nil {
		s.swap(i, j)
	}
}

// sortKeys sorts keys in place when they are mutually comparable and
// reports whether it did. Incomparable keys are left untouched.
func sortKeys(keys []reflect.Value, swap func(i, j int)) bool {
	if !comparableKeys(keys) {
		return false
	}
	sort.Stable(keySorter{keys: keys, less: lessKey, swap: swap})
	return true
}

// sortKeysFallback orders keys that sortKeys could not, by type name and
// then display form.
func sortKeysFallback(keys []reflect.Value, swap func(i, j int)) {
	sort.Stable(keySorter{keys: keys, less: fallbackLess, swap: swap})
}

// lessKey orders two keys of the same class.
func lessKey(a, b reflect.Value) bool {
	switch classOf(a) {
	case numberKey:
		return lessNumber(a, b)
	case stringKey:
		return a.String() < b.String()
	case boolKey:
		return !a.Bool() && b.Bool()
	}
	return false
}

func lessNumber(a, b reflect.Value) bool {
	ai, bi := isInt(a.Kind()), isInt(b.Kind())
	au, bu := isUint(a.Kind()), isUint(b.Kind())
	switch {
	case ai && bi:
		return a.Int() < b.Int()
	case au && bu:
		return a.Uint() < b.Uint()
	case ai && bu:
		return a.Int() < 0 || uint64(a.Int()) < b.Uint()
	case au && bi:
		return b.Int() >= 0 && a.Uint() < uint64(b.Int())
	}
	return toFloat(a) < toFloat(b)
}

func isInt(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUint(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

func toFloat(v reflect.Value) float64 {
	switch {
	case isInt(v.Kind()):
		return float64(v.Int())
	case isUint(v.Kind()):
		return float64(v.Uint())
	}
	return v.Float()
}

// fallbackLess gives Go maps with incomparable keys a deterministic order,
// since they have no iteration order of their own.
func fallbackLess(a, b reflect.Value) bool {
	a, b = unwrap(a), unwrap(b)
	ta, tb := typeName(a), typeName(b)
	if ta != tb {
		return ta < tb
	}
	return display(a) < display(b)
}

func typeName(v reflect.Value) string {
	if !v.IsValid() {
		return ""
	}
	return v.Type().String()
}

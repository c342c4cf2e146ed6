// Package utils provides the small generic helpers the rest of the editor
// is built on: map extension, collection iteration, nested property access,
// and object identity stamping.
package utils

import "reflect"

// Extend shallow-copies the entries of each source map onto target, later
// sources overriding earlier ones and the target. Returns target.
func Extend[K comparable, V any](target map[K]V, sources ...map[K]V) map[K]V {
	for _, src := range sources {
		for k, v := range src {
			target[k] = v
		}
	}
	return target
}

// ForEach invokes fn(value, index) for each element in index order.
// Iteration stops early if fn returns false.
func ForEach[E any](seq []E, fn func(value E, index int) bool) {
	for i, v := range seq {
		if !fn(v, i) {
			return
		}
	}
}

// ForEachMap invokes fn(value, key) for each entry. Iteration order is
// unspecified; fn returning false stops the iteration.
func ForEachMap[K comparable, V any](coll map[K]V, fn func(value V, key K) bool) {
	for k, v := range coll {
		if !fn(v, k) {
			return
		}
	}
}

// Filter returns a new slice holding the elements for which pred is true,
// in their original order.
func Filter[E any](seq []E, pred func(E) bool) []E {
	out := make([]E, 0, len(seq))
	for _, v := range seq {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

// FilterMap returns a new map holding the entries whose value satisfies pred.
func FilterMap[K comparable, V any](coll map[K]V, pred func(V) bool) map[K]V {
	out := make(map[K]V, len(coll))
	for k, v := range coll {
		if pred(v) {
			out[k] = v
		}
	}
	return out
}

// Map returns a new slice of fn applied to each element in order.
func Map[E, R any](seq []E, fn func(E) R) []R {
	out := make([]R, len(seq))
	for i, v := range seq {
		out[i] = fn(v)
	}
	return out
}

// Pick walks nested map[string]any levels along path and returns the value
// found there. The second return is false the moment a segment is absent or
// an intermediate value is not a map; missing paths never error.
func Pick(root any, path ...string) (any, bool) {
	if len(path) == 0 {
		return root, IsExisty(root)
	}
	current := root
	for _, segment := range path {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// InArray returns the index of the first element equal to element, or -1.
func InArray[E comparable](element E, seq []E) int {
	return InArrayFrom(element, seq, 0)
}

// InArrayFrom searches from start. A negative start is treated as 0; a
// start past the end yields -1.
func InArrayFrom[E comparable](element E, seq []E, start int) int {
	if start < 0 {
		start = 0
	}
	for i := start; i < len(seq); i++ {
		if seq[i] == element {
			return i
		}
	}
	return -1
}

// IsSlice reports whether v is a slice or array value.
func IsSlice(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

// IsMap reports whether v is a map value.
func IsMap(v any) bool {
	return reflect.ValueOf(v).Kind() == reflect.Map
}

// IsString reports whether v is a string.
func IsString(v any) bool {
	_, ok := v.(string)
	return ok
}

// IsFunc reports whether v is invocable.
func IsFunc(v any) bool {
	return reflect.ValueOf(v).Kind() == reflect.Func
}

// IsNil reports whether v is nil, including typed nil pointers, maps,
// slices, funcs, channels and interfaces.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// IsExisty reports whether v holds an actual value (the negation of IsNil).
func IsExisty(v any) bool {
	return !IsNil(v)
}

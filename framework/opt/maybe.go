// Package opt provides a minimal optional-value type.
//
// The harness uses it to distinguish "no string at all" from "the empty
// string" in the folding and assertion APIs, without resorting to pointers.
package opt

// Maybe is a value of type V that may be absent. The zero value is None.
type Maybe[V any] struct {
	defined bool
	value   V
}

// Some returns a Maybe with a defined value.
func Some[V any](value V) Maybe[V] {
	return Maybe[V]{defined: true, value: value}
}

// None returns a Maybe with no value.
func None[V any]() Maybe[V] { return Maybe[V]{} }

// IsDefined returns true if the Maybe has a value.
func (m Maybe[V]) IsDefined() bool { return m.defined }

// Value returns the value if defined, or the zero value of V otherwise.
func (m Maybe[V]) Value() V { return m.value }

// Get returns the value and whether it was defined, in the comma-ok style.
func (m Maybe[V]) Get() (V, bool) { return m.value, m.defined }

// OrElse returns the value if defined, or fallback otherwise.
func (m Maybe[V]) OrElse(fallback V) V {
	if m.defined {
		return m.value
	}
	return fallback
}

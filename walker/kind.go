package walker

import (
	"fmt"
	"reflect"
)

// Kind classifies a node of an object graph.
type Kind int

const (
	// KindNil is a nil interface, pointer, map, slice, or function.
	KindNil Kind = iota

	// KindLeaf is a value with a registered converter.
	KindLeaf

	// KindMapping is a Go map.
	KindMapping

	// KindSequence is a Go slice or array.
	KindSequence

	// KindBean is a struct, a pointer to one, or a Describable.
	KindBean

	// KindOpaque is anything else (channels, functions, unsafe pointers).
	// Opaque values have no properties and no string form.
	KindOpaque
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindLeaf:
		return "leaf"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	case KindBean:
		return "bean"
	case KindOpaque:
		return "opaque"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// IsComposite reports whether nodes of this kind have properties.
func (k Kind) IsComposite() bool {
	return k == KindMapping || k == KindSequence || k == KindBean
}

// classify resolves v to its kind and the reflect value that represents it.
// Pointers and interfaces are followed until a converter, a Describable, or
// a non-pointer kind is reached.
func (w *Walker) classify(v any) (Kind, reflect.Value) {
	if v == nil {
		return KindNil, reflect.Value{}
	}
	rv := reflect.ValueOf(v)
	for {
		switch rv.Kind() {
		case reflect.Invalid:
			return KindNil, rv
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			if rv.IsNil() {
				return KindNil, rv
			}
		}
		if _, ok := w.converters.Lookup(rv.Type()); ok {
			return KindLeaf, rv
		}
		if rv.CanInterface() {
			if _, ok := rv.Interface().(Describable); ok {
				return KindBean, rv
			}
		}
		switch rv.Kind() {
		case reflect.Pointer, reflect.Interface:
			rv = rv.Elem()
			continue
		case reflect.Map:
			return KindMapping, rv
		case reflect.Slice, reflect.Array:
			return KindSequence, rv
		case reflect.Struct:
			return KindBean, rv
		}
		return KindOpaque, rv
	}
}

// KindOf classifies v using the walker's converters.
func (w *Walker) KindOf(v any) Kind {
	k, _ := w.classify(v)
	return k
}

// Resolve classifies v and returns the value it stands for once pointers
// and interfaces are followed, so that *int and int compare alike.
// Nil values resolve to nil.
func (w *Walker) Resolve(v any) (Kind, any) {
	k, rv := w.classify(v)
	if k == KindNil {
		return k, nil
	}
	if !rv.CanInterface() {
		return k, v
	}
	return k, rv.Interface()
}

// Identity is the reference identity of a composite node. Slices are keyed
// by their backing array, length and type so that re-slices of the same
// data are recognised.
type Identity struct {
	ptr uintptr
	len int
	typ reflect.Type
}

// IdentityOf returns the identity of v when it has reference semantics.
// Struct values and leaves have none.
func IdentityOf(v any) (Identity, bool) {
	if v == nil {
		return Identity{}, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Pointer:
		if rv.IsNil() {
			return Identity{}, false
		}
		return Identity{ptr: rv.Pointer(), typ: rv.Type()}, true
	case reflect.Slice:
		if rv.Len() == 0 {
			return Identity{}, false
		}
		return Identity{ptr: rv.Pointer(), len: rv.Len(), typ: rv.Type()}, true
	}
	return Identity{}, false
}

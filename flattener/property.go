package flattener

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
	"golang.org/x/text/cases"

	"github.com/DeepakRathod14/java-custom-automation/cmperrors"
	"github.com/DeepakRathod14/java-custom-automation/internal/pathutil"
	"github.com/DeepakRathod14/java-custom-automation/walker"
)

var durationType = reflect.TypeFor[time.Duration]()

// GetProperty returns the value at path within root. Mapping keys, sequence
// indices and bean properties (getters included) are resolved segment by
// segment. Errors are *cmperrors.PathError.
func GetProperty(root any, path string, opts ...Option) (any, error) {
	cfg := applyOptions(opts...)
	segments, err := pathutil.Split(path)
	if err != nil {
		return nil, &cmperrors.PathError{Path: path, Message: "invalid path", Cause: err}
	}

	w := cfg.walker()
	cur := root
	for _, seg := range segments {
		next, ok := cfg.lookup(w, cur, seg)
		if !ok {
			return nil, &cmperrors.PathError{
				Path:    path,
				Segment: seg.Name,
				Message: fmt.Sprintf("no property %q on %s", seg.Name, w.KindOf(cur)),
			}
		}
		cur = next
	}
	return cur, nil
}

// lookup resolves one segment against the properties of cur.
func (c *config) lookup(w *walker.Walker, cur any, seg pathutil.Segment) (any, bool) {
	props := w.Properties(cur)
	if w.KindOf(cur) == walker.KindSequence {
		if !seg.IsIndex || seg.Index >= len(props) {
			return nil, false
		}
		return props[seg.Index].Value, true
	}

	for _, p := range props {
		if p.Key == seg.Name {
			return p.Value, true
		}
	}
	if c.ignoreCase {
		folder := cases.Fold()
		want := folder.String(seg.Name)
		for _, p := range props {
			if folder.String(p.Key) == want {
				return p.Value, true
			}
		}
	}
	return nil, false
}

// SetProperty stores value at path within root.
//
// The parent of the final segment must be a map, a slice or array element,
// or a struct reached through a pointer; getter-only properties cannot be
// set. String values are converted to the destination's kind, so "42" may
// be stored in an int field. When the destination is an interface already
// holding a leaf, a string is converted to that leaf's type.
func SetProperty(root any, path string, value any, opts ...Option) error {
	cfg := applyOptions(opts...)
	segments, err := pathutil.Split(path)
	if err != nil {
		return &cmperrors.PathError{Path: path, Message: "invalid path", Cause: err}
	}

	w := cfg.walker()
	cur := reflect.ValueOf(root)
	for i, seg := range segments {
		last := i == len(segments)-1
		cur = indirect(cur)
		pathErr := func(msg string, cause error) error {
			return &cmperrors.PathError{Path: path, Segment: seg.Name, Message: msg, Cause: cause}
		}

		switch cur.Kind() {
		case reflect.Map:
			key, ok := cfg.mapKey(cur, seg.Name)
			if !ok {
				if !last {
					return pathErr("key not found", nil)
				}
				var err error
				if key, err = convertKey(cur.Type().Key(), seg.Name); err != nil {
					return pathErr("invalid map key", err)
				}
			}
			if last {
				v, err := convertValue(cur.Type().Elem(), cur.MapIndex(key), value)
				if err != nil {
					return pathErr("cannot convert value", err)
				}
				cur.SetMapIndex(key, v)
				return nil
			}
			cur = cur.MapIndex(key)

		case reflect.Slice, reflect.Array:
			if !seg.IsIndex {
				return pathErr("expected a sequence index", nil)
			}
			if seg.Index >= cur.Len() {
				return pathErr(fmt.Sprintf("index out of range [%d] with length %d", seg.Index, cur.Len()), nil)
			}
			cur = cur.Index(seg.Index)
			if last {
				return assign(cur, value, pathErr)
			}

		case reflect.Struct:
			idx, ok := cfg.fieldIndex(w, cur.Type(), seg.Name)
			if !ok {
				return pathErr("no settable field", nil)
			}
			field, err := cur.FieldByIndexErr(idx)
			if err != nil {
				return pathErr("field not reachable", err)
			}
			cur = field
			if last {
				return assign(cur, value, pathErr)
			}

		case reflect.Invalid:
			return pathErr("nil value", nil)

		default:
			return pathErr(fmt.Sprintf("cannot descend into %s", cur.Kind()), nil)
		}
	}
	return nil
}

func assign(dst reflect.Value, value any, pathErr func(string, error) error) error {
	if !dst.CanSet() {
		return pathErr("value is not settable", nil)
	}
	existing := reflect.Value{}
	if dst.Kind() == reflect.Interface && !dst.IsNil() {
		existing = dst.Elem()
	}
	v, err := convertValue(dst.Type(), existing, value)
	if err != nil {
		return pathErr("cannot convert value", err)
	}
	dst.Set(v)
	return nil
}

// indirect follows pointers and interfaces.
func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func (c *config) mapKey(m reflect.Value, name string) (reflect.Value, bool) {
	var (
		folded reflect.Value
		folder cases.Caser
		want   string
	)
	if c.ignoreCase {
		folder = cases.Fold()
		want = folder.String(name)
	}
	iter := m.MapRange()
	for iter.Next() {
		k := iter.Key()
		ks := fmt.Sprint(k.Interface())
		if ks == name {
			return k, true
		}
		if c.ignoreCase && !folded.IsValid() && folder.String(ks) == want {
			folded = k
		}
	}
	return folded, folded.IsValid()
}

func (c *config) fieldIndex(w *walker.Walker, t reflect.Type, name string) ([]int, bool) {
	fields := w.Fields(t)
	for _, f := range fields {
		if f.Key == name {
			return f.Index, true
		}
	}
	if c.ignoreCase {
		folder := cases.Fold()
		want := folder.String(name)
		for _, f := range fields {
			if folder.String(f.Key) == want {
				return f.Index, true
			}
		}
	}
	return nil, false
}

func convertKey(t reflect.Type, name string) (reflect.Value, error) {
	return convertValue(t, reflect.Value{}, name)
}

// convertValue produces a value assignable to t from value. existing is the
// value currently stored, used to pick a target type for interface slots.
func convertValue(t reflect.Type, existing reflect.Value, value any) (reflect.Value, error) {
	if value == nil {
		return reflect.Zero(t), nil
	}
	if existing.IsValid() && existing.Kind() == reflect.Interface {
		existing = existing.Elem()
	}
	s, isString := value.(string)
	if t.Kind() == reflect.Interface && isString && existing.IsValid() && existing.Kind() != reflect.String {
		if converted, err := convertString(existing.Type(), s); err == nil {
			return converted, nil
		}
	}

	v := reflect.ValueOf(value)
	if v.Type().AssignableTo(t) {
		return v, nil
	}
	if isString {
		return convertString(t, s)
	}
	if isNumeric(v.Kind()) && isNumeric(t.Kind()) {
		return v.Convert(t), nil
	}
	return reflect.Value{}, fmt.Errorf("cannot assign %T to %s", value, t)
}

// convertString parses s into a value of type t using cast. Integers are
// always read as decimal so that "010" stays 10 rather than becoming octal.
func convertString(t reflect.Type, s string) (reflect.Value, error) {
	out := reflect.New(t).Elem()
	if t == durationType {
		d, err := cast.ToDurationE(s)
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetInt(int64(d))
		return out, nil
	}

	switch t.Kind() {
	case reflect.String:
		out.SetString(s)
	case reflect.Bool:
		b, err := cast.ToBoolE(s)
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, t.Bits())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%q is not a decimal %s: %w", s, t, err)
		}
		out.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(strings.TrimSpace(s), 10, t.Bits())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%q is not a decimal %s: %w", s, t, err)
		}
		out.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := cast.ToFloat64E(s)
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetFloat(f)
	default:
		return reflect.Value{}, fmt.Errorf("cannot convert string to %s", t)
	}
	return out, nil
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

package walker

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/DeepakRathod14/java-custom-automation/cmperrors"
	"github.com/DeepakRathod14/java-custom-automation/internal/pathutil"
)

// Describable is implemented by beans that enumerate their own properties.
// A Describable is never reflected; its Properties result is used as-is.
type Describable interface {
	Properties() map[string]any
}

// Property is one named value of a composite node.
type Property struct {
	Key   string
	Value any
}

// Properties returns the properties of v as a map, using the default
// walker configuration. Leaves and nil yield an empty map.
func Properties(v any) map[string]any {
	w := New()
	props := w.Properties(v)
	out := make(map[string]any, len(props))
	for _, p := range props {
		out[p.Key] = p.Value
	}
	return out
}

// Properties returns the properties of v in deterministic order:
//
//   - mapping: its entries, keys rendered to strings, sorted by key
//   - sequence: "[i]" keys in index order
//   - bean: exported fields merged with getter values, sorted by key
//
// On a bean, a getter replaces the field of the same logical name. A getter
// named GetX (or IsX returning bool) maps to the key of field X when one
// exists, otherwise to the decapitalized name. Fields and getters that
// cannot be read are logged and omitted. Nil values are included.
func (w *Walker) Properties(v any) []Property {
	return w.properties(v, "")
}

func (w *Walker) properties(v any, path string) []Property {
	kind, rv := w.classify(v)
	switch kind {
	case KindMapping:
		return w.mappingProperties(rv)
	case KindSequence:
		return sequenceProperties(rv)
	case KindBean:
		if rv.CanInterface() {
			if d, ok := rv.Interface().(Describable); ok {
				return w.describableProperties(d, path)
			}
		}
		return w.beanProperties(rv, path)
	}
	return nil
}

func (w *Walker) describableProperties(d Describable, path string) (props []Property) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error("describable properties failed",
				"path", path,
				"error", &cmperrors.ReflectionError{Type: fmt.Sprintf("%T", d), Accessor: "Properties", Cause: fmt.Errorf("panic: %v", r)})
			props = nil
		}
	}()
	m := d.Properties()
	props = make([]Property, 0, len(m))
	for k, v := range m {
		props = append(props, Property{Key: k, Value: v})
	}
	sortProperties(props)
	return props
}

func (w *Walker) mappingProperties(rv reflect.Value) []Property {
	// Fast path for decoded documents.
	if m, ok := rv.Interface().(map[string]any); ok {
		props := make([]Property, 0, len(m))
		for k, v := range m {
			props = append(props, Property{Key: k, Value: v})
		}
		sortProperties(props)
		return props
	}

	props := make([]Property, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		props = append(props, Property{Key: w.renderKey(iter.Key()), Value: iter.Value().Interface()})
	}
	sortProperties(props)
	return props
}

func (w *Walker) renderKey(k reflect.Value) string {
	if k.Kind() == reflect.String {
		return k.String()
	}
	if k.CanInterface() {
		key := k.Interface()
		if s, err := w.converters.Render(key); err == nil {
			return s
		}
		return fmt.Sprint(key)
	}
	return k.String()
}

func sequenceProperties(rv reflect.Value) []Property {
	if s, ok := rv.Interface().([]any); ok {
		props := make([]Property, len(s))
		for i, v := range s {
			props[i] = Property{Key: pathutil.IndexSegment(i), Value: v}
		}
		return props
	}

	props := make([]Property, rv.Len())
	for i := range rv.Len() {
		props[i] = Property{Key: pathutil.IndexSegment(i), Value: rv.Index(i).Interface()}
	}
	return props
}

func sortProperties(props []Property) {
	slices.SortStableFunc(props, func(a, b Property) int {
		return strings.Compare(a.Key, b.Key)
	})
}

// beanPlan caches which fields and getters of a struct type are properties.
type beanPlan struct {
	fields  []beanField
	getters []beanGetter
}

type beanField struct {
	key   string
	name  string
	index []int
}

type beanGetter struct {
	key       string
	method    string
	withError bool
}

type planKey struct {
	typ     reflect.Type
	tagName string
}

var (
	plans     sync.Map // planKey -> *beanPlan
	errorType = reflect.TypeFor[error]()
)

func planFor(t reflect.Type, tagName string) *beanPlan {
	key := planKey{typ: t, tagName: tagName}
	if p, ok := plans.Load(key); ok {
		return p.(*beanPlan)
	}
	p, _ := plans.LoadOrStore(key, buildPlan(t, tagName))
	return p.(*beanPlan)
}

func buildPlan(t reflect.Type, tagName string) *beanPlan {
	plan := &beanPlan{}
	keyByName := make(map[string]string)

	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() || isEmbeddedStruct(f) {
			continue
		}
		key, ok := fieldKey(f, tagName)
		if !ok {
			continue
		}
		plan.fields = append(plan.fields, beanField{key: key, name: f.Name, index: f.Index})
		keyByName[f.Name] = key
	}

	pt := reflect.PointerTo(t)
	for i := range pt.NumMethod() {
		m := pt.Method(i)
		name, withError, ok := getterName(m)
		if !ok {
			continue
		}
		key, found := keyByName[name]
		if !found {
			key = decapitalize(name)
		}
		plan.getters = append(plan.getters, beanGetter{key: key, method: m.Name, withError: withError})
	}
	return plan
}

func isEmbeddedStruct(f reflect.StructField) bool {
	if !f.Anonymous {
		return false
	}
	t := f.Type
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

func fieldKey(f reflect.StructField, tagName string) (string, bool) {
	if tagName != "" {
		tag := f.Tag.Get(tagName)
		if tag == "-" {
			return "", false
		}
		if name, _, _ := strings.Cut(tag, ","); name != "" {
			return name, true
		}
	}
	return decapitalize(f.Name), true
}

// getterName reports whether m is a getter and returns the property name
// it exposes. Getters take no arguments and return one value, optionally
// followed by an error.
func getterName(m reflect.Method) (name string, withError bool, ok bool) {
	mt := m.Type
	if mt.NumIn() != 1 {
		return "", false, false
	}
	switch mt.NumOut() {
	case 1:
	case 2:
		if mt.Out(1) != errorType {
			return "", false, false
		}
		withError = true
	default:
		return "", false, false
	}

	switch {
	case strings.HasPrefix(m.Name, "Get"):
		name = m.Name[len("Get"):]
	case strings.HasPrefix(m.Name, "Is") && mt.Out(0).Kind() == reflect.Bool:
		name = m.Name[len("Is"):]
	default:
		return "", false, false
	}
	r, _ := utf8.DecodeRuneInString(name)
	if name == "" || !unicode.IsUpper(r) {
		return "", false, false
	}
	return name, withError, true
}

// decapitalize lowercases the first rune unless the first two runes are
// both upper case, so "Name" becomes "name" and "URL" stays "URL".
func decapitalize(name string) string {
	first, size := utf8.DecodeRuneInString(name)
	if first == utf8.RuneError {
		return name
	}
	if second, _ := utf8.DecodeRuneInString(name[size:]); unicode.IsUpper(first) && unicode.IsUpper(second) {
		return name
	}
	return string(unicode.ToLower(first)) + name[size:]
}

func (w *Walker) beanProperties(rv reflect.Value, path string) []Property {
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	t := rv.Type()
	plan := planFor(t, w.tagName)

	// Getters may have pointer receivers, so work on an addressable value.
	var ptr reflect.Value
	if rv.CanAddr() {
		ptr = rv.Addr()
	} else {
		ptr = reflect.New(t)
		ptr.Elem().Set(rv)
		rv = ptr.Elem()
	}

	values := make(map[string]any, len(plan.fields)+len(plan.getters))
	for _, f := range plan.fields {
		fv, err := rv.FieldByIndexErr(f.index)
		if err == nil && !fv.CanInterface() {
			err = fmt.Errorf("field is not readable")
		}
		if err != nil {
			w.logger.Error("failed to read field",
				"path", path,
				"error", &cmperrors.ReflectionError{Type: t.String(), Property: f.key, Accessor: f.name, Cause: err})
			continue
		}
		values[f.key] = fv.Interface()
	}

	for _, g := range plan.getters {
		v, err := callGetter(ptr.MethodByName(g.method), g.withError)
		if err != nil {
			w.logger.Debug("failed to invoke getter",
				"path", path,
				"error", &cmperrors.ReflectionError{Type: t.String(), Property: g.key, Accessor: g.method, Cause: err})
			delete(values, g.key)
			continue
		}
		values[g.key] = v
	}

	props := make([]Property, 0, len(values))
	for k, v := range values {
		props = append(props, Property{Key: k, Value: v})
	}
	sortProperties(props)
	return props
}

func callGetter(m reflect.Value, withError bool) (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	out := m.Call(nil)
	if withError && !out[1].IsNil() {
		return nil, out[1].Interface().(error)
	}
	return out[0].Interface(), nil
}

// Field describes an exported struct field exposed as a property.
type Field struct {
	// Key is the property key, e.g. the json tag name
	Key string
	// Index is the field index sequence for reflect.Value.FieldByIndex
	Index []int
}

// Fields returns the field-backed properties of struct type t, in
// declaration order. Getter-only properties are not included.
func (w *Walker) Fields(t reflect.Type) []Field {
	if t.Kind() != reflect.Struct {
		return nil
	}
	plan := planFor(t, w.tagName)
	fields := make([]Field, len(plan.fields))
	for i, f := range plan.fields {
		fields[i] = Field{Key: f.key, Index: f.index}
	}
	return fields
}

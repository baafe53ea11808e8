package walker

import (
	"encoding"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"time"

	"github.com/spf13/cast"
)

// Converter renders a leaf value to its string form.
type Converter func(v any) (string, error)

// Converters is a registry of leaf converters keyed by exact type.
//
// A value is a leaf when its type has a converter. Lookup order is: an
// exactly registered type, then types implementing encoding.TextMarshaler,
// then the basic kinds (bool, integers, floats, complex, strings) including
// named types, then []byte. Everything else is a composite.
//
// A registry is not safe for concurrent Register calls; build it once and
// share it read-only.
type Converters struct {
	byType map[reflect.Type]Converter
}

var textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()

// NewConverters returns a registry holding the default converters.
func NewConverters() *Converters {
	c := &Converters{byType: make(map[reflect.Type]Converter)}
	c.Register(time.Duration(0), func(v any) (string, error) {
		return v.(time.Duration).String(), nil
	})
	c.Register(url.URL{}, func(v any) (string, error) {
		u := v.(url.URL)
		return u.String(), nil
	})
	return c
}

// Register installs fn as the converter for the type of sample.
// A later registration for the same type replaces the earlier one.
func (c *Converters) Register(sample any, fn Converter) {
	if sample == nil || fn == nil {
		return
	}
	c.byType[reflect.TypeOf(sample)] = fn
}

// Lookup returns the converter for t, if any.
func (c *Converters) Lookup(t reflect.Type) (Converter, bool) {
	if fn, ok := c.byType[t]; ok {
		return fn, true
	}
	if t.Implements(textMarshalerType) {
		return textConverter, true
	}
	if t.Kind() != reflect.Pointer && t.Kind() != reflect.Interface && reflect.PointerTo(t).Implements(textMarshalerType) {
		return addressableTextConverter, true
	}
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return basicConverter, true
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return bytesConverter, true
		}
	}
	return nil, false
}

// Render converts v using its registered converter.
func (c *Converters) Render(v any) (string, error) {
	if v == nil {
		return "", fmt.Errorf("walker: cannot render nil")
	}
	fn, ok := c.Lookup(reflect.TypeOf(v))
	if !ok {
		return "", fmt.Errorf("walker: no converter for %T", v)
	}
	return fn(v)
}

func textConverter(v any) (string, error) {
	text, err := v.(encoding.TextMarshaler).MarshalText()
	if err != nil {
		return "", err
	}
	return string(text), nil
}

func addressableTextConverter(v any) (string, error) {
	rv := reflect.ValueOf(v)
	ptr := reflect.New(rv.Type())
	ptr.Elem().Set(rv)
	return textConverter(ptr.Interface())
}

// basicConverter handles named types by first converting to the
// underlying kind, since cast only recognises the predeclared types.
func basicConverter(v any) (string, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return cast.ToStringE(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cast.ToStringE(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cast.ToStringE(rv.Uint())
	case reflect.Float32:
		return cast.ToStringE(float32(rv.Float()))
	case reflect.Float64:
		return cast.ToStringE(rv.Float())
	case reflect.Complex64:
		return strconv.FormatComplex(rv.Complex(), 'f', -1, 64), nil
	case reflect.Complex128:
		return strconv.FormatComplex(rv.Complex(), 'f', -1, 128), nil
	case reflect.String:
		return cast.ToStringE(rv.String())
	}
	return "", fmt.Errorf("walker: unsupported leaf kind %s", rv.Kind())
}

func bytesConverter(v any) (string, error) {
	return cast.ToStringE(reflect.ValueOf(v).Bytes())
}

// Package equalutil provides equality helpers shared by the comparison packages.
package equalutil

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"

	"github.com/DeepakRathod14/java-custom-automation/walker"
)

// Values reports whether a and b hold equal data.
//
// Numbers compare by value regardless of their Go type, so int(1), int64(1)
// and float64(1) are all equal; decoders disagree on how they type numbers.
// Maps compare by their string-rendered keys and slices element-wise.
// Everything else falls back to reflect.DeepEqual. Self-referential maps
// and slices terminate: a pair of composites already under comparison is
// assumed equal.
func Values(a, b any) bool {
	return values(a, b, nil)
}

type identityPair struct {
	a, b walker.Identity
}

func values(a, b any, seen map[identityPair]struct{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if na, ok := toNumber(a); ok {
		if nb, ok := toNumber(b); ok {
			return na.Cmp(nb) == 0
		}
		return false
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ia, ok := walker.IdentityOf(a); ok {
		if ib, ok := walker.IdentityOf(b); ok {
			if ia == ib {
				return true
			}
			key := identityPair{a: ia, b: ib}
			if _, ok := seen[key]; ok {
				return true
			}
			if seen == nil {
				seen = make(map[identityPair]struct{})
			}
			seen[key] = struct{}{}
		}
	}
	switch va.Kind() {
	case reflect.Map:
		if vb.Kind() != reflect.Map || va.Len() != vb.Len() {
			return false
		}
		right := make(map[string]any, vb.Len())
		iter := vb.MapRange()
		for iter.Next() {
			right[fmt.Sprint(iter.Key().Interface())] = iter.Value().Interface()
		}
		iter = va.MapRange()
		for iter.Next() {
			other, ok := right[fmt.Sprint(iter.Key().Interface())]
			if !ok || !values(iter.Value().Interface(), other, seen) {
				return false
			}
		}
		return true
	case reflect.Slice, reflect.Array:
		if _, isBytes := a.([]byte); isBytes {
			return reflect.DeepEqual(a, b)
		}
		if (vb.Kind() != reflect.Slice && vb.Kind() != reflect.Array) || va.Len() != vb.Len() {
			return false
		}
		for i := range va.Len() {
			if !values(va.Index(i).Interface(), vb.Index(i).Interface(), seen) {
				return false
			}
		}
		return true
	}
	return reflect.DeepEqual(a, b)
}

// IndexOf returns the index of the first element of seq equal to v under
// Values, or -1.
func IndexOf(seq []any, v any) int {
	for i, elem := range seq {
		if Values(elem, v) {
			return i
		}
	}
	return -1
}

// toNumber converts any numeric kind (including named types and json.Number)
// into a big.Float so mixed kinds can be compared exactly. A json.Number is
// read as an int64 when integral and as a float64 otherwise, the same way a
// decoder without UseNumber would have typed it.
func toNumber(v any) (*big.Float, bool) {
	if n, ok := v.(json.Number); ok {
		if i, err := strconv.ParseInt(string(n), 10, 64); err == nil {
			return new(big.Float).SetInt64(i), true
		}
		f, err := strconv.ParseFloat(string(n), 64)
		if err != nil || math.IsInf(f, 0) {
			return nil, false
		}
		return big.NewFloat(f), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return new(big.Float).SetInt64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return new(big.Float).SetUint64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, false
		}
		return big.NewFloat(f), true
	}
	return nil, false
}

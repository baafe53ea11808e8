package equalutil_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/DeepakRathod14/java-custom-automation/internal/equalutil"
	"github.com/stretchr/testify/assert"
)

type celsius float64

func TestValues(t *testing.T) {
	tests := []struct {
		name string
		a    any
		b    any
		want bool
	}{
		{name: "both nil", a: nil, b: nil, want: true},
		{name: "nil vs value", a: nil, b: "x", want: false},
		{name: "value vs nil", a: 0, b: nil, want: false},
		{name: "equal strings", a: "abc", b: "abc", want: true},
		{name: "different strings", a: "abc", b: "abd", want: false},
		{name: "int vs int64", a: 1, b: int64(1), want: true},
		{name: "int vs float64", a: 2, b: 2.0, want: true},
		{name: "uint vs int", a: uint8(7), b: 7, want: true},
		{name: "named float", a: celsius(21.5), b: 21.5, want: true},
		{name: "json number", a: json.Number("10"), b: 10, want: true},
		{name: "json number fraction", a: json.Number("0.1"), b: 0.1, want: true},
		{name: "json number exponent", a: json.Number("1e2"), b: 100, want: true},
		{name: "large json number", a: json.Number("9007199254740993"), b: int64(9007199254740993), want: true},
		{name: "invalid json number", a: json.Number("abc"), b: 0, want: false},
		{name: "different numbers", a: 1, b: 1.5, want: false},
		{name: "number vs string", a: 1, b: "1", want: false},
		{name: "NaN never equal", a: math.NaN(), b: math.NaN(), want: false},
		{name: "bools", a: true, b: true, want: true},
		{
			name: "maps with mixed numeric values",
			a:    map[string]any{"a": 1, "b": []any{1, 2}},
			b:    map[string]any{"a": 1.0, "b": []any{int64(1), int64(2)}},
			want: true,
		},
		{
			name: "maps with different keys",
			a:    map[string]any{"a": 1},
			b:    map[string]any{"b": 1},
			want: false,
		},
		{
			name: "maps with different sizes",
			a:    map[string]any{"a": 1},
			b:    map[string]any{"a": 1, "b": 2},
			want: false,
		},
		{
			name: "typed map vs generic map",
			a:    map[string]int{"a": 1},
			b:    map[string]any{"a": 1},
			want: true,
		},
		{name: "slices order matters", a: []any{1, 2}, b: []any{2, 1}, want: false},
		{name: "slice vs array", a: []int{1, 2}, b: [2]int{1, 2}, want: true},
		{name: "slice length", a: []any{1}, b: []any{1, 1}, want: false},
		{name: "bytes", a: []byte("ab"), b: []byte("ab"), want: true},
		{name: "map vs slice", a: map[string]any{}, b: []any{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, equalutil.Values(tt.a, tt.b))
		})
	}
}

func TestValues_Cycles(t *testing.T) {
	self := map[string]any{"name": "a"}
	self["self"] = self
	assert.True(t, equalutil.Values(self, self))

	left := map[string]any{"name": "a"}
	left["self"] = left
	right := map[string]any{"name": "a"}
	right["self"] = right
	assert.True(t, equalutil.Values(left, right))

	other := map[string]any{"name": "b"}
	other["self"] = other
	assert.False(t, equalutil.Values(left, other))

	seq := make([]any, 2)
	seq[0] = "x"
	seq[1] = seq
	assert.True(t, equalutil.Values(seq, seq))
	assert.Equal(t, 0, equalutil.IndexOf([]any{self}, self))
}

func TestIndexOf(t *testing.T) {
	seq := []any{"a", map[string]any{"id": 1}, 3, "a"}

	assert.Equal(t, 0, equalutil.IndexOf(seq, "a"), "first occurrence wins")
	assert.Equal(t, 1, equalutil.IndexOf(seq, map[string]any{"id": 1.0}))
	assert.Equal(t, 2, equalutil.IndexOf(seq, int64(3)))
	assert.Equal(t, -1, equalutil.IndexOf(seq, "missing"))
	assert.Equal(t, -1, equalutil.IndexOf(nil, "a"))
}

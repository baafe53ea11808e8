package flattener

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/DeepakRathod14/java-custom-automation/cmperrors"
	"github.com/DeepakRathod14/java-custom-automation/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settings struct {
	Host    string            `json:"host"`
	Port    int               `json:"port"`
	Debug   bool              `json:"debug"`
	Ratio   float64           `json:"ratio"`
	Timeout time.Duration     `json:"timeout"`
	Tags    []string          `json:"tags"`
	Labels  map[string]string `json:"labels"`
	Limits  [2]int            `json:"limits"`
	Nested  *settings         `json:"nested"`
}

func (s *settings) GetAddress() string {
	return s.Host + ":" + strconv.Itoa(s.Port)
}

func TestGetProperty(t *testing.T) {
	root := testutil.NewCustomerDocument()

	tests := []struct {
		path string
		want any
	}{
		{"name", "Ada"},
		{"address.city", "London"},
		{"orders.[1].id", 2},
		{"orders[1].id", 2},
		{"orders.1.id", 2},
		{"orders.[0].items.[1]", "ink"},
		{"tags.tier", "gold"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := GetProperty(root, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetProperty_Composite(t *testing.T) {
	root := testutil.NewCustomerDocument()
	got, err := GetProperty(root, "address")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"street": "1 Analytical Way", "city": "London"}, got)
}

func TestGetProperty_BeanGetter(t *testing.T) {
	root := testutil.NewCustomer()

	got, err := GetProperty(root, "nickname")
	require.NoError(t, err)
	assert.Equal(t, "countess", got)

	got, err = GetProperty(root, "orders.[0].total")
	require.NoError(t, err)
	assert.Equal(t, 12.5, got)
}

func TestGetProperty_IgnoreCase(t *testing.T) {
	root := map[string]any{"Customer": map[string]any{"EMail": "a@b.c"}}

	_, err := GetProperty(root, "customer.email")
	require.Error(t, err)

	got, err := GetProperty(root, "customer.email", WithIgnoreCase(true))
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", got)
}

func TestGetProperty_Errors(t *testing.T) {
	root := testutil.NewCustomerDocument()

	tests := []struct {
		name    string
		path    string
		segment string
	}{
		{"missing key", "address.zip", "zip"},
		{"index out of range", "orders.[5].id", "[5]"},
		{"name on sequence", "orders.first", "first"},
		{"descend into leaf", "name.first", "first"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GetProperty(root, tt.path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, cmperrors.ErrPath))

			var pathErr *cmperrors.PathError
			require.True(t, errors.As(err, &pathErr))
			assert.Equal(t, tt.path, pathErr.Path)
			assert.Equal(t, tt.segment, pathErr.Segment)
		})
	}

	_, err := GetProperty(root, "a..b")
	assert.True(t, errors.Is(err, cmperrors.ErrPath))
}

func TestSetProperty_Mapping(t *testing.T) {
	root := testutil.NewCustomerDocument()

	require.NoError(t, SetProperty(root, "address.city", "Paris"))
	require.NoError(t, SetProperty(root, "address.zip", "75001"))
	require.NoError(t, SetProperty(root, "orders.[0].id", "10"))
	require.NoError(t, SetProperty(root, "orders.[0].total", "4.25"))

	addr := root["address"].(map[string]any)
	assert.Equal(t, "Paris", addr["city"])
	assert.Equal(t, "75001", addr["zip"], "new keys are added as given")

	order0 := root["orders"].([]any)[0].(map[string]any)
	assert.Equal(t, 10, order0["id"], "strings take the type already stored")
	assert.Equal(t, 4.25, order0["total"])
}

func TestSetProperty_SequenceElement(t *testing.T) {
	root := map[string]any{"items": []any{"a", "b"}}
	require.NoError(t, SetProperty(root, "items.[1]", "z"))
	assert.Equal(t, []any{"a", "z"}, root["items"])
}

func TestSetProperty_Struct(t *testing.T) {
	s := &settings{Host: "localhost", Tags: []string{"x"}, Labels: map[string]string{}, Nested: &settings{}}

	require.NoError(t, SetProperty(s, "port", "8080"))
	require.NoError(t, SetProperty(s, "debug", "true"))
	require.NoError(t, SetProperty(s, "ratio", "0.5"))
	require.NoError(t, SetProperty(s, "timeout", "1m30s"))
	require.NoError(t, SetProperty(s, "tags.[0]", "y"))
	require.NoError(t, SetProperty(s, "labels.env", "prod"))
	require.NoError(t, SetProperty(s, "limits.[1]", "3"))
	require.NoError(t, SetProperty(s, "nested.host", "inner"))
	require.NoError(t, SetProperty(s, "host", "example.com"))
	require.NoError(t, SetProperty(s, "port", "010"))
	assert.Equal(t, 10, s.Port)
	require.NoError(t, SetProperty(s, "PORT", 9090, WithIgnoreCase(true)))

	assert.Equal(t, 9090, s.Port)
	assert.True(t, s.Debug)
	assert.Equal(t, 0.5, s.Ratio)
	assert.Equal(t, 90*time.Second, s.Timeout)
	assert.Equal(t, []string{"y"}, s.Tags)
	assert.Equal(t, "prod", s.Labels["env"])
	assert.Equal(t, [2]int{0, 3}, s.Limits)
	assert.Equal(t, "inner", s.Nested.Host)
	assert.Equal(t, "example.com", s.Host)

	require.NoError(t, SetProperty(s, "nested", nil))
	assert.Nil(t, s.Nested)
}

func TestSetProperty_Errors(t *testing.T) {
	tests := []struct {
		name  string
		root  any
		path  string
		value any
	}{
		{"struct by value", settings{}, "port", "1"},
		{"getter only", &settings{}, "address", "x"},
		{"bad int", &settings{}, "port", "eighty"},
		{"int overflow", &struct{ N int8 }{}, "n", "1000"},
		{"hex int", &settings{}, "port", "0x10"},
		{"binary uint", &struct{ N uint }{}, "n", "0b11"},
		{"wrong type", &settings{}, "tags", 5},
		{"missing intermediate", map[string]any{}, "a.b", "x"},
		{"index out of range", map[string]any{"l": []any{}}, "l.[0]", "x"},
		{"name on sequence", map[string]any{"l": []any{1}}, "l.x", "x"},
		{"nil intermediate", &settings{}, "nested.host", "x"},
		{"into leaf", map[string]any{"a": 1}, "a.b", "x"},
		{"invalid path", map[string]any{}, "", "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SetProperty(tt.root, tt.path, tt.value)
			require.Error(t, err)
			assert.True(t, errors.Is(err, cmperrors.ErrPath), "got %v", err)
		})
	}
}

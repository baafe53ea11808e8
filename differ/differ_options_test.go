package differ

import (
	"errors"
	"testing"

	"github.com/DeepakRathod14/java-custom-automation/cmperrors"
	"github.com/DeepakRathod14/java-custom-automation/flattener"
	"github.com/DeepakRathod14/java-custom-automation/internal/testutil"
	"github.com/DeepakRathod14/java-custom-automation/parser"
	"github.com/DeepakRathod14/java-custom-automation/walker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareWithOptions_Files(t *testing.T) {
	expectedPath := testutil.WriteTempYAML(t, testutil.NewCustomerDocument())

	actual := testutil.NewCustomerDocument()
	actual["name"] = "Grace"
	actualPath := testutil.WriteTempJSON(t, actual)

	result, err := CompareWithOptions(
		WithActualFilePath(actualPath),
		WithExpectedFilePath(expectedPath),
	)
	require.NoError(t, err)
	assert.False(t, result.Equal)
	assert.Equal(t, actualPath, result.ActualSource)
	assert.Equal(t, expectedPath, result.ExpectedSource)
	assert.Equal(t, "structural", result.Mode)
	require.Len(t, result.Changes, 1)
	assert.Equal(t, "Validate field <name>: expected: <Ada> but was: <Grace>", result.Changes[0].Message)
}

func TestCompareWithOptions_Sources(t *testing.T) {
	parsed, err := parser.ParseWithOptions(parser.WithBytes([]byte(`{"a": 1}`)))
	require.NoError(t, err)

	tests := []struct {
		name       string
		opts       []Option
		wantEqual  bool
		wantSource string
	}{
		{
			name:       "bytes",
			opts:       []Option{WithActualBytes([]byte("a: 1\nb: 2\n")), WithExpectedBytes([]byte(`{"a": 1}`))},
			wantEqual:  true,
			wantSource: "ParseBytes.yaml",
		},
		{
			name:       "parsed",
			opts:       []Option{WithActualParsed(*parsed), WithExpected(map[string]any{"a": 2})},
			wantSource: "ParseBytes.json",
		},
		{
			name:       "values",
			opts:       []Option{WithActual(testutil.NewCustomer()), WithExpected(testutil.NewCustomerDocument())},
			wantEqual:  true,
			wantSource: "actual",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CompareWithOptions(tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.wantEqual, result.Equal)
			assert.Equal(t, tt.wantSource, result.ActualSource)
		})
	}
}

func TestCompareWithOptions_IgnoreNulls(t *testing.T) {
	type person struct {
		Name string `json:"name"`
		Age  *int   `json:"age"`
	}

	result, err := CompareWithOptions(
		WithActual(person{Name: "x", Age: testutil.Ptr(3)}),
		WithExpected(person{Name: "x"}),
		WithMode(ModeIgnoreNulls),
	)
	require.NoError(t, err)
	assert.True(t, result.Equal)
	assert.Equal(t, "ignore-nulls", result.Mode)
	assert.Empty(t, result.Changes)

	result, err = CompareWithOptions(
		WithActualBytes([]byte(`{"full_name": "y"}`)),
		WithExpected(struct {
			Name string `db:"full_name"`
		}{Name: "x"}),
		WithMode(ModeIgnoreNulls),
		WithFlattenOptions(flattener.WithTagName("db")),
	)
	require.NoError(t, err)
	require.Len(t, result.Changes, 1)
	assert.Equal(t, "full_name", result.Changes[0].Path)
}

func TestCompareWithOptions_Settings(t *testing.T) {
	logger := &recordingLogger{}
	conv := walker.NewConverters()

	result, err := CompareWithOptions(
		WithActual(map[string]any{"a": map[string]any{"b": 2}}),
		WithExpected(map[string]any{"a": map[string]any{"b": 1}}),
		WithMaxDepth(1),
		WithLogger(logger),
		WithConverters(conv),
	)
	require.NoError(t, err)
	assert.Len(t, result.Changes, 1)

	result, err = CompareWithOptions(
		WithActual(map[string]any{"a": map[string]any{"b": map[string]any{"c": 2}}}),
		WithExpected(map[string]any{"a": map[string]any{"b": map[string]any{"c": 1}}}),
		WithMaxDepth(1),
		WithLogger(logger),
	)
	require.NoError(t, err)
	assert.True(t, result.Equal)
	assert.Contains(t, logger.messages, "WARN max depth exceeded, skipping subtree")
}

func TestCompareWithOptions_Errors(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr string
		wantIs  error
	}{
		{
			name:    "no actual",
			opts:    []Option{WithExpected(map[string]any{})},
			wantErr: "must specify an input source (use WithActualFilePath, WithActualBytes, WithActualParsed, WithActual)",
			wantIs:  cmperrors.ErrConfig,
		},
		{
			name:    "two expected",
			opts:    []Option{WithActual(nil), WithExpected(nil), WithExpectedBytes([]byte("{}"))},
			wantErr: "must specify exactly one input source",
			wantIs:  cmperrors.ErrConfig,
		},
		{
			name:    "nil bytes",
			opts:    []Option{WithActualBytes(nil)},
			wantErr: "actual bytes cannot be nil",
		},
		{
			name:    "bad mode",
			opts:    []Option{WithMode(Mode(9))},
			wantErr: "unknown mode 9",
		},
		{
			name:    "bad depth",
			opts:    []Option{WithMaxDepth(0)},
			wantErr: "max depth must be positive",
		},
		{
			name:    "unparsable expected",
			opts:    []Option{WithActual(map[string]any{}), WithExpectedBytes([]byte(`{"a": `))},
			wantErr: "differ: failed to parse expected",
			wantIs:  cmperrors.ErrParse,
		},
		{
			name:    "missing file",
			opts:    []Option{WithActualFilePath("does-not-exist.json"), WithExpected(map[string]any{})},
			wantErr: "differ: failed to parse actual",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CompareWithOptions(tt.opts...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			if tt.wantIs != nil {
				assert.True(t, errors.Is(err, tt.wantIs))
			}
		})
	}
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "structural", ModeStructural.String())
	assert.Equal(t, "ignore-nulls", ModeIgnoreNulls.String())
	assert.Equal(t, "Mode(7)", Mode(7).String())
}

package mcpserver

import (
	"context"
	"testing"

	"github.com/DeepakRathod14/java-custom-automation/internal/testutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const compareActual = `{
  "name": "Ada",
  "email": null,
  "address": {"street": "1 Analytical Way", "city": "London"},
  "orders": [{"id": 1, "total": 12.5}, {"id": 2, "total": 3}]
}`

func TestCompareTool_Equal(t *testing.T) {
	s := newTestServer(t)
	input := compareInput{
		Actual:   docInput{Content: compareActual},
		Expected: docInput{Content: "name: Ada\naddress:\n  city: London\n"},
	}

	res, output, err := s.handleCompare(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Nil(t, res)
	assert.True(t, output.Equal)
	assert.Equal(t, "structural", output.Mode)
	assert.Zero(t, output.TotalChanges)
	assert.Empty(t, output.Changes)
	assert.Equal(t, "Documents match.", output.Summary)
}

func TestCompareTool_DetectsChanges(t *testing.T) {
	s := newTestServer(t)
	input := compareInput{
		Actual:   docInput{Content: compareActual},
		Expected: docInput{Content: `{"name": "Grace", "address": {"city": "Paris"}}`},
	}

	res, output, err := s.handleCompare(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Nil(t, res)
	assert.False(t, output.Equal)
	assert.Equal(t, 2, output.TotalChanges)
	require.Len(t, output.Changes, 2)
	assert.Equal(t, "Documents differ: 2 changes found.", output.Summary)

	messages := []string{output.Changes[0].Message, output.Changes[1].Message}
	assert.ElementsMatch(t, []string{
		"Validate field <name>: expected: <Grace> but was: <Ada>",
		"Validate field <city>: expected: <Paris> but was: <London>",
	}, messages)
	for _, c := range output.Changes {
		assert.Equal(t, "value_mismatch", c.Kind)
	}
}

func TestCompareTool_ShapeMismatch(t *testing.T) {
	s := newTestServer(t)
	input := compareInput{
		Actual:   docInput{Content: `[1, 2]`},
		Expected: docInput{Content: `{"a": 1}`},
	}

	_, output, err := s.handleCompare(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Len(t, output.Changes, 1)
	assert.Equal(t, "shape_mismatch", output.Changes[0].Kind)
	assert.Equal(t, "Documents differ: 1 change found.", output.Summary)
}

func TestCompareTool_IgnoreNulls(t *testing.T) {
	s := newTestServer(t)
	input := compareInput{
		Actual:      docInput{Content: compareActual},
		Expected:    docInput{Content: `{"name": "Ada", "email": "ada@example.com"}`},
		IgnoreNulls: true,
	}

	_, output, err := s.handleCompare(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Equal(t, "ignore-nulls", output.Mode)
	require.Len(t, output.Changes, 1)
	assert.Equal(t, "field_not_found", output.Changes[0].Kind)
	assert.Equal(t, "email", output.Changes[0].Path)
	assert.Equal(t, "--- Field email not found", output.Changes[0].Message)
}

func TestCompareTool_FileInputs(t *testing.T) {
	s := newTestServer(t)
	doc := testutil.NewCustomerDocument()
	input := compareInput{
		Actual:   docInput{File: testutil.WriteTempJSON(t, doc)},
		Expected: docInput{File: testutil.WriteTempYAML(t, doc)},
	}

	_, output, err := s.handleCompare(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.True(t, output.Equal, output.Changes)
}

func TestCompareTool_InputErrors(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name  string
		input compareInput
	}{
		{name: "missing actual", input: compareInput{Expected: docInput{Content: "{}"}}},
		{name: "missing expected", input: compareInput{Actual: docInput{Content: "{}"}}},
		{name: "missing file", input: compareInput{
			Actual:   docInput{File: "/tmp/jsoncmp-missing/actual.json"},
			Expected: docInput{Content: "{}"},
		}},
		{name: "bad content", input: compareInput{
			Actual:   docInput{Content: "{"},
			Expected: docInput{Content: "{}"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, output, err := s.handleCompare(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, res)
			assert.True(t, res.IsError)
			assert.Zero(t, output.TotalChanges)
			text := res.Content[0].(*mcp.TextContent).Text
			assert.NotContains(t, text, "/tmp/")
		})
	}
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "1 change", formatCount(1, "change"))
	assert.Equal(t, "0 changes", formatCount(0, "change"))
	assert.Equal(t, "3 changes", formatCount(3, "change"))
}

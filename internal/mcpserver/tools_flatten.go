package mcpserver

import (
	"context"

	"github.com/DeepakRathod14/java-custom-automation/flattener"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type flattenInput struct {
	Document docInput `json:"document"         jsonschema:"The document to flatten"`
	Match    []string `json:"match,omitempty"  jsonschema:"Keep only paths matching any of these wildcard patterns (* = any run of characters\\, ? = one character)"`
	Limit    int      `json:"limit,omitempty"  jsonschema:"Maximum number of entries to return (default 100)"`
	Offset   int      `json:"offset,omitempty" jsonschema:"Skip the first N entries (for pagination)"`
}

type flattenOutput struct {
	Total    int               `json:"total"`
	Returned int               `json:"returned"`
	Entries  []flattener.Entry `json:"entries,omitempty"`
}

func (s *toolServer) handleFlatten(_ context.Context, _ *mcp.CallToolRequest, input flattenInput) (*mcp.CallToolResult, flattenOutput, error) {
	doc, err := s.resolve("document", input.Document)
	if err != nil {
		return errResult(err), flattenOutput{}, nil
	}

	flat := flattener.Flatten(doc.Document,
		flattener.WithLogger(s.logger),
		flattener.WithMaxDepth(s.cfg.MaxDepth),
	).Filter(input.Match...)

	entries := flat.Entries()
	start, end := s.paginate(len(entries), input.Offset, input.Limit)
	output := flattenOutput{
		Total:    len(entries),
		Returned: end - start,
		Entries:  makeSlice[flattener.Entry](end - start),
	}
	output.Entries = append(output.Entries, entries[start:end]...)

	return nil, output, nil
}

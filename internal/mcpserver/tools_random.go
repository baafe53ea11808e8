package mcpserver

import (
	"context"
	"errors"
	"math/rand/v2"

	"github.com/DeepakRathod14/java-custom-automation/flattener"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type randomEntryInput struct {
	Document docInput `json:"document"       jsonschema:"The document to pick an entry from"`
	Seed     *uint64  `json:"seed,omitempty" jsonschema:"Seed for a reproducible pick"`
}

type randomEntryOutput struct {
	Path  string `json:"path"`
	Value string `json:"value"`
	Total int    `json:"total"`
}

func (s *toolServer) handleRandomEntry(_ context.Context, _ *mcp.CallToolRequest, input randomEntryInput) (*mcp.CallToolResult, randomEntryOutput, error) {
	doc, err := s.resolve("document", input.Document)
	if err != nil {
		return errResult(err), randomEntryOutput{}, nil
	}

	var rng *rand.Rand
	if input.Seed != nil {
		rng = rand.New(rand.NewPCG(*input.Seed, *input.Seed))
	}

	opts := []flattener.Option{
		flattener.WithLogger(s.logger),
		flattener.WithMaxDepth(s.cfg.MaxDepth),
	}
	entry, ok := flattener.RandomEntry(doc.Document, rng, opts...)
	if !ok {
		return errResult(errors.New("document has no leaf entries")), randomEntryOutput{}, nil
	}

	return nil, randomEntryOutput{
		Path:  entry.Path,
		Value: entry.Value,
		Total: flattener.Flatten(doc.Document, opts...).Len(),
	}, nil
}

package mcpserver

import (
	"context"
	"strconv"

	"github.com/DeepakRathod14/java-custom-automation/differ"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type compareInput struct {
	Actual      docInput `json:"actual"                 jsonschema:"The actual document\\, e.g. a captured API response"`
	Expected    docInput `json:"expected"               jsonschema:"The expected document; only its fields are checked"`
	IgnoreNulls bool     `json:"ignore_nulls,omitempty" jsonschema:"Compare flattened leaf renderings instead of structure"`
}

type compareChange struct {
	Kind    string `json:"kind"`
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
}

type compareOutput struct {
	Equal        bool            `json:"equal"`
	Mode         string          `json:"mode"`
	TotalChanges int             `json:"total_changes"`
	Changes      []compareChange `json:"changes,omitempty"`
	Summary      string          `json:"summary"`
}

func (s *toolServer) handleCompare(_ context.Context, _ *mcp.CallToolRequest, input compareInput) (*mcp.CallToolResult, compareOutput, error) {
	actual, err := s.resolve("actual", input.Actual)
	if err != nil {
		return errResult(err), compareOutput{}, nil
	}
	expected, err := s.resolve("expected", input.Expected)
	if err != nil {
		return errResult(err), compareOutput{}, nil
	}

	mode := differ.ModeStructural
	if input.IgnoreNulls {
		mode = differ.ModeIgnoreNulls
	}

	result, err := differ.CompareWithOptions(
		differ.WithActualParsed(*actual),
		differ.WithExpectedParsed(*expected),
		differ.WithMode(mode),
		differ.WithLogger(s.logger),
		differ.WithMaxDepth(s.cfg.MaxDepth),
	)
	if err != nil {
		return errResult(err), compareOutput{}, nil
	}

	output := compareOutput{
		Equal:        result.Equal,
		Mode:         result.Mode,
		TotalChanges: len(result.Changes),
		Changes:      makeSlice[compareChange](len(result.Changes)),
	}
	for _, c := range result.Changes {
		output.Changes = append(output.Changes, compareChange{
			Kind:    string(c.Kind),
			Path:    c.Path,
			Message: c.Message,
		})
	}
	output.Summary = buildCompareSummary(output)

	return nil, output, nil
}

func buildCompareSummary(output compareOutput) string {
	if output.Equal {
		return "Documents match."
	}
	return "Documents differ: " + formatCount(output.TotalChanges, "change") + " found."
}

func formatCount(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}

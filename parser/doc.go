// Package parser decodes JSON and YAML documents into object graphs.
//
// A decoded document is built only from map[string]any, []any and leaves
// (string, bool, int, float64 and nil), which is the shape the flattener and
// differ packages compare. JSON integers decode to int and other numbers to
// float64, so a value reads the same whether it came from JSON or YAML.
//
// # Quick Start
//
// Parse a file using functional options:
//
//	result, err := parser.ParseWithOptions(
//		parser.WithFilePath("expected.json"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.SourceFormat, parser.FormatBytes(result.SourceSize))
//
// Or create a reusable Parser instance:
//
//	p := parser.New()
//	p.MaxFileSize = 1 << 20
//	actual, _ := p.Parse("actual.yaml")
//	expected, _ := p.ParseBytes([]byte(`{"id": 1}`))
//
// # Format Detection
//
// The format is taken from the file extension (.json, .yaml, .yml) and
// otherwise from the content: input starting with '{' or '[' is JSON,
// anything else is YAML.
//
// # Errors
//
// Malformed input yields a *cmperrors.ParseError carrying the line and
// column when the decoder reports them. Input larger than MaxFileSize yields
// a *cmperrors.ResourceLimitError.
package parser

package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"go.yaml.in/yaml/v4"

	"github.com/DeepakRathod14/java-custom-automation/cmperrors"
)

// decodeJSON decodes a single JSON value. Numbers are kept exact until
// normalize picks int or float64 for them.
func decodeJSON(data []byte, path string) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, jsonParseError(data, path, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		line, col := lineColumn(data, dec.InputOffset())
		return nil, &cmperrors.ParseError{
			Path:    path,
			Line:    line,
			Column:  col,
			Message: "unexpected data after top-level value",
		}
	}
	return normalize(doc), nil
}

func jsonParseError(data []byte, path string, err error) error {
	pe := &cmperrors.ParseError{Path: path, Message: "invalid JSON", Cause: err}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		pe.Line, pe.Column = lineColumn(data, syntaxErr.Offset)
	}
	return pe
}

// lineColumn converts a byte offset into 1-based line and column numbers.
func lineColumn(data []byte, offset int64) (line, col int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	line, col = 1, 1
	for _, b := range data[:offset] {
		if b == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}

var yamlLinePattern = regexp.MustCompile(`line (\d+)(?:, column (\d+))?`)

func decodeYAML(data []byte, path string) (any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		pe := &cmperrors.ParseError{Path: path, Message: "invalid YAML", Cause: err}
		if m := yamlLinePattern.FindStringSubmatch(err.Error()); m != nil {
			pe.Line, _ = strconv.Atoi(m[1])
			if m[2] != "" {
				pe.Column, _ = strconv.Atoi(m[2])
			}
		}
		return nil, pe
	}
	return normalize(doc), nil
}

// normalize rewrites a decoded document so that every mapping is a
// map[string]any and every number is an int or float64.
func normalize(v any) any {
	switch v := v.(type) {
	case map[string]any:
		for k, elem := range v {
			v[k] = normalize(elem)
		}
		return v
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, elem := range v {
			out[fmt.Sprint(k)] = normalize(elem)
		}
		return out
	case []any:
		for i, elem := range v {
			v[i] = normalize(elem)
		}
		return v
	case json.Number:
		return normalizeNumber(v)
	case int64:
		if int64(int(v)) == v {
			return int(v)
		}
		return v
	default:
		return v
	}
}

func normalizeNumber(n json.Number) any {
	if i, err := n.Int64(); err == nil {
		if int64(int(i)) == i {
			return int(i)
		}
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}

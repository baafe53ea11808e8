// Package cliutil provides utilities for CLI operations.
package cliutil

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"go.yaml.in/yaml/v4"
)

// Output format constants shared by all subcommands.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var (
	passColor = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
	noteColor = color.New(color.FgHiBlack)
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// Passf writes a green, bold status line. Colour is dropped automatically
// when the output is not a terminal or NO_COLOR is set.
func Passf(w io.Writer, format string, args ...any) {
	Writef(w, "%s\n", passColor.Sprintf(format, args...))
}

// Failf writes a red, bold status line.
func Failf(w io.Writer, format string, args ...any) {
	Writef(w, "%s\n", failColor.Sprintf(format, args...))
}

// Notef writes a dimmed informational line.
func Notef(w io.Writer, format string, args ...any) {
	Writef(w, "%s\n", noteColor.Sprintf(format, args...))
}

// ValidateFormat returns an error if format is not a known output format.
func ValidateFormat(format string) error {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	}
	return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
}

// WriteStructured marshals data as JSON or YAML and writes it to w.
func WriteStructured(w io.Writer, data any, format string) error {
	var out []byte
	var err error

	switch format {
	case FormatJSON:
		out, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		out, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}
	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	Writef(w, "%s\n", string(out))
	return nil
}

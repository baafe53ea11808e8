// Package commands provides CLI command handlers for jsoncmp.
package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/DeepakRathod14/java-custom-automation/parser"
	"github.com/DeepakRathod14/java-custom-automation/walker"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ErrChangesFound is returned by HandleCompare when the documents differ.
// The caller maps it to exit status 1 without printing it again.
var ErrChangesFound = errors.New("differences found")

// FormatSourcePath returns a display-friendly path for a document.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatSourcePath(path string) string {
	if path == StdinFilePath {
		return "<stdin>"
	}
	return path
}

// parseDocument reads the document at path, or stdin for StdinFilePath.
func parseDocument(path string, logger walker.Logger) (*parser.ParseResult, error) {
	opts := []parser.Option{parser.WithLogger(logger)}
	if path == StdinFilePath {
		opts = append(opts, parser.WithReader(os.Stdin), parser.WithSourceName("stdin"))
	} else {
		opts = append(opts, parser.WithFilePath(path))
	}
	return parser.ParseWithOptions(opts...)
}

// newLogger returns a text logger on stderr at debug level when verbose is
// set, and a no-op logger otherwise.
func newLogger(verbose bool) walker.Logger {
	if !verbose {
		return walker.NopLogger{}
	}
	return walker.NewSlogAdapter(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
}

// overrideFlag collects "path=value" pairs. It may be given multiple times.
type overrideFlag map[string]string

// String returns the string representation of the flag value
func (o overrideFlag) String() string {
	if o == nil {
		return ""
	}
	pairs := make([]string, 0, len(o))
	for k, v := range o {
		pairs = append(pairs, k+"="+v)
	}
	return strings.Join(pairs, ",")
}

// Set parses a "path=value" pair and adds it to the map
func (o overrideFlag) Set(value string) error {
	path, v, ok := strings.Cut(value, "=")
	path = strings.TrimSpace(path)
	if !ok || path == "" {
		return fmt.Errorf("invalid override format: %q (expected path=value)", value)
	}
	o[path] = v
	return nil
}

// patternFlag collects wildcard patterns. It may be given multiple times.
type patternFlag []string

// String returns the patterns joined by commas
func (p *patternFlag) String() string {
	if p == nil {
		return ""
	}
	return strings.Join(*p, ",")
}

// Set appends a pattern
func (p *patternFlag) Set(value string) error {
	if value == "" {
		return fmt.Errorf("match pattern cannot be empty")
	}
	*p = append(*p, value)
	return nil
}

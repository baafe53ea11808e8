package parser

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/DeepakRathod14/java-custom-automation/cmperrors"
)

// DefaultMaxFileSize is the document size limit used when Parser.MaxFileSize
// is not set.
const DefaultMaxFileSize int64 = 10 * 1024 * 1024

// Parser decodes JSON and YAML documents.
type Parser struct {
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
	// MaxFileSize is the maximum document size in bytes.
	// Default: 10MB
	MaxFileSize int64
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{MaxFileSize: DefaultMaxFileSize}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

func (p *Parser) maxFileSize() int64 {
	if p.MaxFileSize > 0 {
		return p.MaxFileSize
	}
	return DefaultMaxFileSize
}

// SourceFormat represents the format of a source document
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// ParseResult contains a decoded document and metadata about its source.
// Callers should treat Document as read-only when the result is shared.
type ParseResult struct {
	// SourcePath is the document's input source path that it was read from.
	// Note: if the source was not a file path, this will be set to the name of the method
	// and end in '.yaml' or '.json' based on the detected format
	SourcePath string
	// SourceFormat is the format of the source (JSON or YAML)
	SourceFormat SourceFormat
	// Document is the decoded object graph: map[string]any, []any, a leaf, or nil
	Document any
	// LoadTime is the time taken to read the source data
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
}

// Parse reads and decodes the document at path.
func (p *Parser) Parse(path string) (*ParseResult, error) {
	loadStart := time.Now()
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read file: %w", err)
	}
	if err := p.checkSize(info.Size()); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read file: %w", err)
	}

	format := detectFormatFromPath(path)
	if format == SourceFormatUnknown {
		format = detectFormatFromContent(data)
	}

	res, err := p.decode(data, format, path)
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	return res, nil
}

// ParseReader reads and decodes a document from r.
// Note: since there is no actual ParseResult.SourcePath, it will be set to: ParseReader.yaml or ParseReader.json
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	limit := p.maxFileSize()
	loadStart := time.Now()
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read data: %w", err)
	}
	if err := p.checkSize(int64(len(data))); err != nil {
		return nil, err
	}

	res, err := p.decodeUnnamed(data, "ParseReader")
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	return res, nil
}

// ParseBytes decodes a document held in memory.
// Note: since there is no actual ParseResult.SourcePath, it will be set to: ParseBytes.yaml or ParseBytes.json
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	if err := p.checkSize(int64(len(data))); err != nil {
		return nil, err
	}
	return p.decodeUnnamed(data, "ParseBytes")
}

func (p *Parser) checkSize(size int64) error {
	if limit := p.maxFileSize(); size > limit {
		return &cmperrors.ResourceLimitError{
			ResourceType: "file size",
			Limit:        limit,
			Actual:       size,
			Message:      "document exceeds the maximum size of " + FormatBytes(limit),
		}
	}
	return nil
}

// decodeUnnamed decodes data read from a source without a path, naming the
// result after method and the detected format.
func (p *Parser) decodeUnnamed(data []byte, method string) (*ParseResult, error) {
	format := detectFormatFromContent(data)
	name := method + ".yaml"
	if format == SourceFormatJSON {
		name = method + ".json"
	}
	return p.decode(data, format, name)
}

func (p *Parser) decode(data []byte, format SourceFormat, sourcePath string) (*ParseResult, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &cmperrors.ParseError{Path: sourcePath, Message: "empty document"}
	}

	var (
		doc any
		err error
	)
	if format == SourceFormatJSON {
		doc, err = decodeJSON(data, sourcePath)
	} else {
		format = SourceFormatYAML
		doc, err = decodeYAML(data, sourcePath)
	}
	if err != nil {
		return nil, err
	}

	p.log().Debug("parsed document",
		"source", sourcePath,
		"format", format,
		"size", FormatBytes(int64(len(data))))

	return &ParseResult{
		SourcePath:   sourcePath,
		SourceFormat: format,
		Document:     doc,
		SourceSize:   int64(len(data)),
	}, nil
}

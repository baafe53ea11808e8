package differ

import (
	"fmt"

	"github.com/DeepakRathod14/java-custom-automation/flattener"
	"github.com/DeepakRathod14/java-custom-automation/internal/options"
	"github.com/DeepakRathod14/java-custom-automation/parser"
	"github.com/DeepakRathod14/java-custom-automation/walker"
)

// Mode selects how CompareWithOptions compares the two documents.
type Mode int

const (
	// ModeStructural compares with Differ.Compare
	ModeStructural Mode = iota
	// ModeIgnoreNulls compares with Differ.EqualsIgnoringNullFields
	ModeIgnoreNulls
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeStructural:
		return "structural"
	case ModeIgnoreNulls:
		return "ignore-nulls"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// CompareResult contains the outcome of CompareWithOptions.
type CompareResult struct {
	// ActualSource names where the actual document came from
	ActualSource string `json:"actualSource" yaml:"actualSource"`
	// ExpectedSource names where the expected document came from
	ExpectedSource string `json:"expectedSource" yaml:"expectedSource"`
	// Mode is the comparison mode that was used
	Mode string `json:"mode" yaml:"mode"`
	// Equal is true when no changes were found
	Equal bool `json:"equal" yaml:"equal"`
	// Changes contains all detected changes
	Changes []Change `json:"changes" yaml:"changes"`
}

// Option is a function that configures a compare operation
type Option func(*compareConfig) error

// input is one side of a comparison (exactly one field must be set).
type input struct {
	filePath *string
	bytes    []byte
	parsed   *parser.ParseResult
	value    any
	hasValue bool
}

func (in *input) validate(name string) error {
	return options.ExactlyOne(name,
		options.Source{Name: "With" + name + "FilePath", Set: in.filePath != nil},
		options.Source{Name: "With" + name + "Bytes", Set: in.bytes != nil},
		options.Source{Name: "With" + name + "Parsed", Set: in.parsed != nil},
		options.Source{Name: "With" + name, Set: in.hasValue},
	)
}

// load returns the object graph held or referenced by in and a name for
// its source.
func (in *input) load(name string, logger Logger) (any, string, error) {
	var popts []parser.Option
	if logger != nil {
		popts = append(popts, parser.WithLogger(logger))
	}
	switch {
	case in.parsed != nil:
		return in.parsed.Document, in.parsed.SourcePath, nil
	case in.hasValue:
		return in.value, name, nil
	case in.filePath != nil:
		popts = append(popts, parser.WithFilePath(*in.filePath))
	default:
		popts = append(popts, parser.WithBytes(in.bytes))
	}
	res, err := parser.ParseWithOptions(popts...)
	if err != nil {
		return nil, "", fmt.Errorf("differ: failed to parse %s: %w", name, err)
	}
	return res.Document, res.SourcePath, nil
}

// compareConfig holds configuration for a compare operation
type compareConfig struct {
	actual   input
	expected input

	mode           Mode
	logger         Logger
	maxDepth       int
	converters     *walker.Converters
	flattenOptions []flattener.Option
}

// CompareWithOptions loads two documents and compares them using
// functional options.
//
// Example:
//
//	result, err := differ.CompareWithOptions(
//	    differ.WithActualFilePath("response.json"),
//	    differ.WithExpectedFilePath("expected.yaml"),
//	    differ.WithMode(differ.ModeIgnoreNulls),
//	)
func CompareWithOptions(opts ...Option) (*CompareResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("differ: invalid options: %w", err)
	}

	actual, actualSource, err := cfg.actual.load("actual", cfg.logger)
	if err != nil {
		return nil, err
	}
	expected, expectedSource, err := cfg.expected.load("expected", cfg.logger)
	if err != nil {
		return nil, err
	}

	d := &Differ{
		Logger:         cfg.logger,
		MaxDepth:       cfg.maxDepth,
		Converters:     cfg.converters,
		FlattenOptions: cfg.flattenOptions,
	}
	if cfg.mode == ModeIgnoreNulls {
		d.EqualsIgnoringNullFields(actual, expected)
	} else {
		d.Compare(actual, expected)
	}

	return &CompareResult{
		ActualSource:   actualSource,
		ExpectedSource: expectedSource,
		Mode:           cfg.mode.String(),
		Equal:          len(d.changes) == 0,
		Changes:        d.Changes(),
	}, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*compareConfig, error) {
	cfg := &compareConfig{
		mode:     ModeStructural,
		maxDepth: walker.DefaultMaxDepth,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.actual.validate("Actual"); err != nil {
		return nil, err
	}
	if err := cfg.expected.validate("Expected"); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithActualFilePath specifies a JSON or YAML file as the actual document
func WithActualFilePath(path string) Option {
	return func(cfg *compareConfig) error {
		cfg.actual.filePath = &path
		return nil
	}
}

// WithActualBytes specifies JSON or YAML content as the actual document
func WithActualBytes(data []byte) Option {
	return func(cfg *compareConfig) error {
		if data == nil {
			return fmt.Errorf("differ: actual bytes cannot be nil")
		}
		cfg.actual.bytes = data
		return nil
	}
}

// WithActualParsed specifies a parsed document as the actual document
func WithActualParsed(result parser.ParseResult) Option {
	return func(cfg *compareConfig) error {
		cfg.actual.parsed = &result
		return nil
	}
}

// WithActual specifies an in-memory object graph as the actual document
func WithActual(v any) Option {
	return func(cfg *compareConfig) error {
		cfg.actual.value = v
		cfg.actual.hasValue = true
		return nil
	}
}

// WithExpectedFilePath specifies a JSON or YAML file as the expected document
func WithExpectedFilePath(path string) Option {
	return func(cfg *compareConfig) error {
		cfg.expected.filePath = &path
		return nil
	}
}

// WithExpectedBytes specifies JSON or YAML content as the expected document
func WithExpectedBytes(data []byte) Option {
	return func(cfg *compareConfig) error {
		if data == nil {
			return fmt.Errorf("differ: expected bytes cannot be nil")
		}
		cfg.expected.bytes = data
		return nil
	}
}

// WithExpectedParsed specifies a parsed document as the expected document
func WithExpectedParsed(result parser.ParseResult) Option {
	return func(cfg *compareConfig) error {
		cfg.expected.parsed = &result
		return nil
	}
}

// WithExpected specifies an in-memory object graph as the expected document
func WithExpected(v any) Option {
	return func(cfg *compareConfig) error {
		cfg.expected.value = v
		cfg.expected.hasValue = true
		return nil
	}
}

// WithMode sets the comparison mode
// Default: ModeStructural
func WithMode(mode Mode) Option {
	return func(cfg *compareConfig) error {
		if mode != ModeStructural && mode != ModeIgnoreNulls {
			return fmt.Errorf("differ: unknown mode %d", int(mode))
		}
		cfg.mode = mode
		return nil
	}
}

// WithLogger sets a structured logger for the comparison and for parsing.
// By default, logging is disabled.
func WithLogger(l Logger) Option {
	return func(cfg *compareConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithMaxDepth sets the maximum comparison depth
// Default: walker.DefaultMaxDepth
func WithMaxDepth(depth int) Option {
	return func(cfg *compareConfig) error {
		if depth <= 0 {
			return fmt.Errorf("differ: max depth must be positive, got %d", depth)
		}
		cfg.maxDepth = depth
		return nil
	}
}

// WithConverters sets the leaf converter registry
func WithConverters(conv *walker.Converters) Option {
	return func(cfg *compareConfig) error {
		cfg.converters = conv
		return nil
	}
}

// WithFlattenOptions adds options for flattening in ModeIgnoreNulls
func WithFlattenOptions(opts ...flattener.Option) Option {
	return func(cfg *compareConfig) error {
		cfg.flattenOptions = append(cfg.flattenOptions, opts...)
		return nil
	}
}

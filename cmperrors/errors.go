package cmperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrParse indicates a document could not be decoded.
	ErrParse = errors.New("parse error")

	// ErrPath indicates a property path could not be resolved or assigned.
	ErrPath = errors.New("path error")

	// ErrReflection indicates a bean property could not be read.
	ErrReflection = errors.New("reflection error")

	// ErrShape indicates the compared graphs have incompatible top-level shapes.
	ErrShape = errors.New("shape mismatch")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to decode a JSON or YAML document.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// PathError represents a failure to resolve or assign a dotted property path
// such as "orders.[0].id".
type PathError struct {
	// Path is the full property path that was requested
	Path string
	// Segment is the path segment at which resolution failed
	Segment string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *PathError) Error() string {
	msg := "path error"
	if e.Path != "" {
		msg += " for " + e.Path
	}
	if e.Segment != "" && e.Segment != e.Path {
		msg += " at segment " + e.Segment
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *PathError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *PathError) Is(target error) bool {
	return target == ErrPath
}

// ReflectionError represents a bean property that could not be read, for
// example a getter that panicked or returned a non-nil error.
type ReflectionError struct {
	// Type is the Go type that owns the property
	Type string
	// Property is the property name
	Property string
	// Accessor is the Go field or method name used to read the property
	Accessor string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ReflectionError) Error() string {
	msg := "reflection error"
	if e.Type != "" {
		msg += " on " + e.Type
	}
	if e.Property != "" {
		msg += "." + e.Property
	}
	if e.Accessor != "" {
		msg += " (" + e.Accessor + ")"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ReflectionError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ReflectionError) Is(target error) bool {
	return target == ErrReflection
}

// ShapeError represents a top-level shape incompatibility between an actual
// and an expected graph (e.g. a mapping compared against a sequence).
type ShapeError struct {
	// Actual is the shape of the actual graph ("mapping", "sequence", "leaf", "bean")
	Actual string
	// Expected is the shape of the expected graph
	Expected string
}

// Error returns a human-readable error message.
func (e *ShapeError) Error() string {
	msg := "shape mismatch"
	if e.Actual != "" || e.Expected != "" {
		msg += fmt.Sprintf(": actual is %s, expected is %s", orUnknown(e.Actual), orUnknown(e.Expected))
	}
	return msg
}

// Unwrap returns nil as ShapeError has no underlying cause.
func (e *ShapeError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ShapeError) Is(target error) bool {
	return target == ErrShape
}

// ResourceLimitError represents a resource exhaustion condition.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded, e.g. "depth"
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as ResourceLimitError has no underlying cause.
func (e *ResourceLimitError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}

// ConfigError represents an invalid configuration or input.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

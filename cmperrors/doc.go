// Package cmperrors provides structured error types for the comparison toolkit.
//
// These error types enable programmatic error handling via [errors.Is] and
// [errors.As]. Structural mismatches between two object graphs are never
// errors; they are reported as differ.Change values. The types here cover the
// remaining failure modes.
//
// # Error Types
//
//   - [ParseError]: JSON/YAML document decoding failures
//   - [PathError]: a property path could not be resolved or assigned
//   - [ReflectionError]: a bean property could not be read (logged, not returned, by the flattener)
//   - [ShapeError]: top-level actual/expected shape incompatibility
//   - [ResourceLimitError]: traversal exceeded a configured limit
//   - [ConfigError]: invalid options or inputs
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrPath]: Matches any [PathError]
//   - [ErrReflection]: Matches any [ReflectionError]
//   - [ErrShape]: Matches any [ShapeError]
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage
//
//	_, err := flattener.GetProperty(bean, "orders.[3].id")
//	var pathErr *cmperrors.PathError
//	if errors.As(err, &pathErr) {
//	    fmt.Println("failed segment:", pathErr.Segment)
//	}
package cmperrors

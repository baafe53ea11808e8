package differ

import "fmt"

// ChangeKind classifies a Change.
type ChangeKind string

const (
	// KindShapeMismatch indicates the two roots are not both mappings or
	// both sequences, so nothing below them was compared
	KindShapeMismatch ChangeKind = "shape_mismatch"
	// KindTypeMismatch indicates the expected value is a mapping or sequence
	// but the actual value at the same path is something else
	KindTypeMismatch ChangeKind = "type_mismatch"
	// KindValueMismatch indicates two leaves that are not equal
	KindValueMismatch ChangeKind = "value_mismatch"
	// KindFieldNotFound indicates an expected path that is missing from actual
	KindFieldNotFound ChangeKind = "field_not_found"
)

// ShapeMismatchMessage is the message of every KindShapeMismatch change.
const ShapeMismatchMessage = "Left object type is not the same as right object type. Convert JSON Object to Map."

// Change is one place where expected content is not matched by actual.
type Change struct {
	// Kind classifies the change
	Kind ChangeKind `json:"kind" yaml:"kind"`
	// Path is the flat path of the compared value, e.g. "orders.[0].id".
	// It is empty for a shape mismatch.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
	// Field is the mapping key the value was found under. Elements of a
	// sequence carry the key of the sequence itself.
	Field string `json:"field,omitempty" yaml:"field,omitempty"`
	// Expected is the expected value
	Expected any `json:"expected,omitempty" yaml:"expected,omitempty"`
	// Actual is the actual value
	Actual any `json:"actual,omitempty" yaml:"actual,omitempty"`
	// Message is a human-readable description of the change
	Message string `json:"message" yaml:"message"`
}

// String returns the change message.
func (c Change) String() string {
	return c.Message
}

func shapeMismatch(actual, expected any) Change {
	return Change{
		Kind:     KindShapeMismatch,
		Expected: expected,
		Actual:   actual,
		Message:  ShapeMismatchMessage,
	}
}

func valueMismatch(path, field string, expected, actual any, expectedText, actualText string) Change {
	return Change{
		Kind:     KindValueMismatch,
		Path:     path,
		Field:    field,
		Expected: expected,
		Actual:   actual,
		Message:  fmt.Sprintf("Validate field <%s>: expected: <%s> but was: <%s>", field, expectedText, actualText),
	}
}

func typeMismatch(path, field, expectedKind, actualKind string, expected, actual any) Change {
	return Change{
		Kind:     KindTypeMismatch,
		Path:     path,
		Field:    field,
		Expected: expected,
		Actual:   actual,
		Message:  fmt.Sprintf("Validate field <%s>: expected a %s but was a %s", field, expectedKind, actualKind),
	}
}

func fieldNotFound(path, expected string) Change {
	return Change{
		Kind:     KindFieldNotFound,
		Path:     path,
		Field:    path,
		Expected: expected,
		Message:  fmt.Sprintf("--- Field %s not found", path),
	}
}

func renderingMismatch(path, expected, actual string) Change {
	return Change{
		Kind:     KindValueMismatch,
		Path:     path,
		Field:    path,
		Expected: expected,
		Actual:   actual,
		Message:  fmt.Sprintf("--- Field %s\nActual: %s\nExpected: %s", path, actual, expected),
	}
}

// Package differ compares two object graphs and reports where the expected
// graph is not matched by the actual one.
//
// # Structural Comparison
//
// [Compare] walks expected and looks up each of its keys in actual:
//
//	changes := differ.Compare(
//	    map[string]any{"a": 2, "extra": true},
//	    map[string]any{"a": 1},
//	)
//	// changes[0].Message ==
//	//     "Validate field <a>: expected: <1> but was: <2>"
//
// The comparison is a subset check. Keys present only in actual are never
// reported. An expected key whose actual value is nil or missing is not
// reported either, so callers that need presence checks should use
// [EqualsIgnoringNullFields] instead. Inside sequences, each expected element
// is compared with the actual element at the index where that element first
// occurs in expected; elements beyond the end of actual are skipped.
//
// Leaves are equal when they hold the same value, with numbers compared
// numerically so that int64(1), 1.0 and json.Number("1") match. Structs are
// compared as mappings of their properties, the same properties the
// flattener package reports.
//
// Both roots must be mappings or both sequences. Otherwise the result is a
// single change of kind [KindShapeMismatch].
//
// # Ignoring Null Fields
//
// [EqualsIgnoringNullFields] flattens both graphs and compares the string
// rendering of every expected leaf. Nil fields of expected are not
// flattened and therefore not compared, which makes it convenient for
// comparing a partially filled expected struct against a full response.
//
// # Stateful Use
//
// A [Differ] keeps the changes of its last comparison for [Differ.Changes]
// and [Differ.Message]. Each comparison replaces them.
//
// # Documents
//
// [CompareWithOptions] loads JSON or YAML documents through the parser
// package before comparing them:
//
//	result, err := differ.CompareWithOptions(
//	    differ.WithActualFilePath("response.json"),
//	    differ.WithExpectedFilePath("expected.json"),
//	)
package differ

// Package jsoncmp provides tools for comparing JSON-like object graphs
// structurally, as API test suites do when checking a response against an
// expected document.
//
// An object graph is any Go value built from mappings (maps), sequences
// (slices and arrays), beans (structs, read through exported fields and
// GetX/IsX getters) and leaves (strings, numbers, booleans, times and other
// values with a registered string converter). Documents decoded from JSON or
// YAML by the parser package are object graphs made of map[string]any, []any
// and leaves.
//
// # Overview
//
// The library consists of these packages:
//
//   - walker: Classify values, enumerate bean properties, render leaves and
//     walk every leaf with its flat path
//   - flattener: Flatten a graph into a sorted path to value mapping, and
//     read, set, override or randomly pick properties by path
//   - differ: Compare an actual graph against an expected one and report
//     the differences as Change records
//   - parser: Decode JSON and YAML documents into object graphs
//   - softassert: Collect assertion failures during a test and report them
//     all at once
//   - cmperrors: Structured error types shared by all packages
//
// # Flat Paths
//
// A flat path names one leaf of a graph. Mapping keys and bean property
// names are joined with '.', and sequence elements are addressed by an
// "[i]" segment that is itself dot-joined:
//
//	orders.[0].id=1
//	orders.[1].items.[0]=paper
//
// # Quick Start
//
// Flatten a document:
//
//	import "github.com/DeepakRathod14/java-custom-automation/flattener"
//
//	flat := flattener.Flatten(doc)
//	for path, value := range flat.All() {
//		fmt.Printf("%s=%s\n", path, value)
//	}
//
// Compare a response against an expected document:
//
//	import "github.com/DeepakRathod14/java-custom-automation/differ"
//
//	d := differ.New()
//	if !d.IsEqual(actual, expected) {
//		fmt.Println(d.Message())
//	}
//
// Compare two files:
//
//	result, err := differ.CompareWithOptions(
//		differ.WithActualFilePath("response.json"),
//		differ.WithExpectedFilePath("expected.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, c := range result.Changes {
//		fmt.Println(c)
//	}
//
// Soft assertions in a test:
//
//	import "github.com/DeepakRathod14/java-custom-automation/softassert"
//
//	func TestGetUser(t *testing.T) {
//		sa := softassert.New()
//		sa.AssertJSON(response).CompareWithLeftMode(expected)
//		sa.MatchesExpr(response, `flat["status"] == "active"`)
//		sa.AssertAll(t)
//	}
//
// # Comparison Semantics
//
// Comparison is directional: every field of the expected graph must match
// the actual graph, while fields present only in actual are ignored. A field
// whose actual value is null or absent is skipped. Elements of an actual
// sequence are aligned with the expected sequence by searching the expected
// sequence for an equal element, so reordered but otherwise equal elements
// still match.
//
// The alternate mode, differ.Differ.EqualsIgnoringNullFields, flattens both
// graphs and requires every expected path to exist in actual with the same
// rendered value.
//
// # Command-Line Tool
//
// The jsoncmp command exposes compare, flatten and random subcommands, and
// an MCP server (jsoncmp mcp) with compare, flatten and random_entry tools.
// See cmd/jsoncmp for details.
package jsoncmp

// Package flattener converts object graphs into flat path/value mappings.
//
// [Flatten] walks a mapping, sequence or bean and records every leaf under
// its flat path, rendering the leaf to a string:
//
//	result := flattener.Flatten(map[string]any{
//	    "orders": []any{
//	        map[string]any{"id": 1},
//	        map[string]any{"id": 2},
//	    },
//	})
//	// result.Keys() == []string{"orders.[0].id", "orders.[1].id"}
//
// Nil values are skipped, so a flattened graph contains only the fields
// that were set. Self-referential graphs terminate because a composite is
// never descended into below itself, while a node shared by several fields
// is flattened under each of them. A nil or leaf root yields an empty
// result.
//
// # Path Access
//
// [GetProperty] and [SetProperty] resolve a flat path against a live graph.
// Both accept "orders.[0].id", "orders[0].id" and "orders.0.id".
// [Override] applies string overrides to every path that [Flatten] reports,
// converting each value to the type already stored at that path.
//
// # Selection
//
// [Result.Filter] keeps the entries whose path matches a wildcard pattern,
// and [RandomEntry] picks one leaf at random, for example to build a
// negative test case from a valid payload.
package flattener

// Package pathutil builds and parses the dotted property paths used to
// address leaves in an object graph, e.g. "orders.[0].id".
//
// # Path Syntax
//
// Segments are joined with '.'. A sequence element is addressed by a "[i]"
// segment which is itself dot-joined to its parent, so the first element of
// the "orders" list is "orders.[0]". Mapping keys are used verbatim.
//
// # PathBuilder Usage
//
// Use [Get] to obtain a pooled PathBuilder, and [Put] to return it:
//
//	path := pathutil.Get()
//	defer pathutil.Put(path)
//
//	path.Push("orders")
//	path.PushIndex(0)
//	path.Push("id")
//	_ = path.String() // "orders.[0].id"
//
// [Split] parses a path back into [Segment] values. Bare integer segments
// ("orders.0.id") are accepted as indices, matching the property-path syntax
// of bean utilities.
//
// [Match] tests a path against a wildcard pattern where '*' matches any run of
// characters and '?' matches exactly one.
package pathutil

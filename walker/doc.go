// Package walker enumerates and traverses the properties of arbitrary Go
// object graphs.
//
// An object graph node is one of four shapes, reported by [Kind]:
//
//   - mapping: any Go map; keys are rendered to strings
//   - sequence: any slice or array except []byte
//   - bean: a struct, a pointer to one, or a [Describable]
//   - leaf: a value with a registered [Converter], such as numbers, strings,
//     booleans, time.Time, time.Duration and any encoding.TextMarshaler
//
// # Properties
//
// [Walker.Properties] lists the named values of a composite node. For beans,
// exported fields are keyed by their json tag (or decapitalized name) and
// merged with getter methods (GetX, IsX). When a field and a getter share a
// logical name the getter wins. Beans that implement [Describable] supply
// their own properties and are never reflected.
//
// Fields and getters that cannot be read, including getters that panic or
// return a non-nil error, are logged through the configured [Logger] and
// omitted.
//
// # Walking
//
// [Walk] visits every non-nil property value depth-first and calls the
// configured handlers with the value's flat path:
//
//	err := walker.Walk(doc,
//	    walker.WithLeafHandler(func(path, text string) walker.Action {
//	        fmt.Println(path, text) // e.g. "orders.[0].id 1"
//	        return walker.Continue
//	    }),
//	)
//
// Handlers return an [Action] to control traversal:
//
//   - [Continue]: continue traversing children and siblings normally
//   - [SkipChildren]: skip all children of the current node, continue with siblings
//   - [Stop]: stop the entire walk immediately
//
// # Cycles and Depth
//
// Each walk tracks the composites on the current path by reference identity
// (map and pointer addresses, slice backing arrays). A composite that is its
// own ancestor is not descended into, so self-referential graphs terminate.
// A node shared by two paths without a cycle is walked under both.
// Subtrees deeper than [WithMaxDepth] (default 100) are skipped as well.
// Both cases are reported through [WithSkippedHandler] with the reason
// "cycle" or "depth".
package walker

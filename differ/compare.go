package differ

import (
	"fmt"

	"github.com/DeepakRathod14/java-custom-automation/cmperrors"
	"github.com/DeepakRathod14/java-custom-automation/internal/equalutil"
	"github.com/DeepakRathod14/java-custom-automation/internal/pathutil"
	"github.com/DeepakRathod14/java-custom-automation/walker"
)

// rootField labels the elements of a root-level sequence.
const rootField = "<root>"

// comparison holds the state of one top-level Compare call.
type comparison struct {
	w         *walker.Walker
	changes   []Change
	ancestors map[pairKey]struct{}
}

type pairKey struct {
	actual, expected walker.Identity
}

func newComparison(w *walker.Walker) *comparison {
	return &comparison{w: w, ancestors: make(map[pairKey]struct{})}
}

// isMapping reports whether k is compared key by key. Beans are compared
// like mappings of their properties.
func isMapping(k walker.Kind) bool {
	return k == walker.KindMapping || k == walker.KindBean
}

// checkShape returns a *cmperrors.ShapeError unless actual and expected are
// both mappings or both sequences.
func checkShape(w *walker.Walker, actual, expected any) error {
	ak, ek := w.KindOf(actual), w.KindOf(expected)
	if (isMapping(ak) && isMapping(ek)) || (ak == walker.KindSequence && ek == walker.KindSequence) {
		return nil
	}
	return &cmperrors.ShapeError{Actual: ak.String(), Expected: ek.String()}
}

func (c *comparison) run(actual, expected any) {
	if err := checkShape(c.w, actual, expected); err != nil {
		c.w.Logger().Debug("cannot compare roots", "error", err)
		c.changes = append(c.changes, shapeMismatch(actual, expected))
		return
	}

	path := pathutil.Get()
	defer pathutil.Put(path)

	if c.w.KindOf(expected) == walker.KindSequence {
		c.compareSequences(path, rootField, actual, expected, 0)
		return
	}
	c.compareMappings(path, actual, expected, 0)
}

// enter reports whether the pair (actual, expected) should be descended
// into at depth. A pair that is already being compared further up the path
// is a cycle; shared subtrees reached along different paths are compared
// each time. Every successful enter must be paired with leave.
func (c *comparison) enter(path *pathutil.PathBuilder, actual, expected any, depth int) bool {
	if depth > c.w.MaxDepth() {
		c.w.Logger().Warn("max depth exceeded, skipping subtree", "path", path.String(), "maxDepth", c.w.MaxDepth())
		return false
	}
	key, ok := identityPairOf(actual, expected)
	if !ok {
		return true
	}
	if _, seen := c.ancestors[key]; seen {
		c.w.Logger().Debug("cycle detected, skipping node", "path", path.String())
		return false
	}
	c.ancestors[key] = struct{}{}
	return true
}

func (c *comparison) leave(actual, expected any) {
	if key, ok := identityPairOf(actual, expected); ok {
		delete(c.ancestors, key)
	}
}

func identityPairOf(actual, expected any) (pairKey, bool) {
	aid, aok := walker.IdentityOf(actual)
	eid, eok := walker.IdentityOf(expected)
	if !aok || !eok {
		return pairKey{}, false
	}
	return pairKey{actual: aid, expected: eid}, true
}

// compareMappings checks every property of expected against the property
// of actual with the same key.
func (c *comparison) compareMappings(path *pathutil.PathBuilder, actual, expected any, depth int) {
	if !c.enter(path, actual, expected, depth) {
		return
	}
	defer c.leave(actual, expected)
	actualProps := make(map[string]any)
	for _, p := range c.w.Properties(actual) {
		actualProps[p.Key] = p.Value
	}
	for _, p := range c.w.Properties(expected) {
		path.Push(p.Key)
		c.compareValues(path, p.Key, actualProps[p.Key], p.Value, depth)
		path.Pop()
	}
}

// compareSequences aligns each expected element with the actual element at
// the position where the element is first found in expected. Elements
// without a counterpart in actual are skipped.
func (c *comparison) compareSequences(path *pathutil.PathBuilder, field string, actual, expected any, depth int) {
	if !c.enter(path, actual, expected, depth) {
		return
	}
	defer c.leave(actual, expected)
	expectedElems := elements(c.w.Properties(expected))
	actualElems := elements(c.w.Properties(actual))
	for _, elem := range expectedElems {
		i := equalutil.IndexOf(expectedElems, elem)
		if i < 0 || i >= len(actualElems) {
			continue
		}
		path.PushIndex(i)
		c.compareValues(path, field, actualElems[i], elem, depth)
		path.Pop()
	}
}

// compareValues compares one expected value with its actual counterpart.
// A nil actual value is never reported.
func (c *comparison) compareValues(path *pathutil.PathBuilder, field string, actual, expected any, depth int) {
	ak, av := c.w.Resolve(actual)
	if ak == walker.KindNil {
		return
	}
	ek, ev := c.w.Resolve(expected)

	switch {
	case isMapping(ek):
		if !isMapping(ak) {
			c.changes = append(c.changes, typeMismatch(path.String(), field, "mapping", ak.String(), ev, av))
			return
		}
		c.compareMappings(path, actual, expected, depth+1)
	case ek == walker.KindSequence:
		if ak != walker.KindSequence {
			c.changes = append(c.changes, typeMismatch(path.String(), field, "sequence", ak.String(), ev, av))
			return
		}
		c.compareSequences(path, field, actual, expected, depth+1)
	default:
		if !equalutil.Values(ev, av) {
			c.changes = append(c.changes, valueMismatch(path.String(), field, ev, av, c.text(ev), c.text(av)))
		}
	}
}

// text renders v for a change message.
func (c *comparison) text(v any) string {
	if v == nil {
		return "null"
	}
	if s, ok := c.w.Render(v); ok {
		return s
	}
	return fmt.Sprint(v)
}

func elements(props []walker.Property) []any {
	out := make([]any, len(props))
	for i, p := range props {
		out[i] = p.Value
	}
	return out
}

package walker

import (
	"fmt"
	"reflect"

	"github.com/DeepakRathod14/java-custom-automation/internal/pathutil"
)

// DefaultMaxDepth is the nesting depth beyond which subtrees are skipped.
const DefaultMaxDepth = 100

// Action controls the walker's behavior after visiting a node.
type Action int

const (
	// Continue continues walking normally, visiting children and siblings.
	Continue Action = iota

	// SkipChildren skips all children of the current node but continues with siblings.
	SkipChildren

	// Stop stops the walk immediately. No more nodes will be visited.
	Stop
)

// IsValid returns true if the action is one of the defined constants.
func (a Action) IsValid() bool {
	return a >= Continue && a <= Stop
}

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case Continue:
		return "Continue"
	case SkipChildren:
		return "SkipChildren"
	case Stop:
		return "Stop"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// Node is a non-nil property value reached during a walk.
type Node struct {
	// Path is the flat path of the node, e.g. "orders.[0].id"
	Path string
	// Key is the last path segment
	Key string
	// Value is the property value as found in the graph
	Value any
	// Kind classifies Value
	Kind Kind
	// Text is the rendered value for leaves, empty otherwise
	Text string
	// Depth is the nesting level; properties of the root are at depth 0
	Depth int
}

// NodeHandler is called for every non-nil property value, composite or leaf.
// Returning SkipChildren from a composite skips its descendants.
type NodeHandler func(n *Node) Action

// LeafHandler is called for every leaf with its flat path and rendered text.
type LeafHandler func(path, text string) Action

// SkippedHandler is called when a composite is not descended into.
// The reason is "cycle" when the node is one of its own ancestors,
// or "depth" when it lies deeper than the configured maximum.
type SkippedHandler func(reason, path string)

// Walker enumerates the properties of object graphs and traverses them.
// A Walker holds configuration only and is safe for concurrent use once
// constructed; every walk allocates its own ancestor set.
type Walker struct {
	onNode    NodeHandler
	onLeaf    LeafHandler
	onSkipped SkippedHandler

	logger     Logger
	converters *Converters
	tagName    string
	maxDepth   int
}

// New creates a new Walker with default settings.
func New(opts ...Option) *Walker {
	w := &Walker{
		logger:     NopLogger{},
		converters: NewConverters(),
		tagName:    "json",
		maxDepth:   DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Option configures the Walker.
type Option func(*Walker)

// WithNodeHandler sets the handler called for every non-nil property value.
func WithNodeHandler(fn NodeHandler) Option {
	return func(w *Walker) { w.onNode = fn }
}

// WithLeafHandler sets the handler called for every leaf.
// When both are set it runs after the NodeHandler, and only if that
// returned Continue.
func WithLeafHandler(fn LeafHandler) Option {
	return func(w *Walker) { w.onLeaf = fn }
}

// WithSkippedHandler sets the handler called when a subtree is skipped
// because of a cycle or the depth limit.
func WithSkippedHandler(fn SkippedHandler) Option {
	return func(w *Walker) { w.onSkipped = fn }
}

// WithLogger sets the logger for reflection failures and skipped subtrees.
// A nil logger is ignored.
func WithLogger(l Logger) Option {
	return func(w *Walker) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithConverters replaces the leaf converter registry.
// A nil registry is ignored.
func WithConverters(c *Converters) Option {
	return func(w *Walker) {
		if c != nil {
			w.converters = c
		}
	}
}

// WithTagName sets the struct tag consulted for field keys (default "json").
// An empty name disables tags, so every field uses its decapitalized Go name.
func WithTagName(name string) Option {
	return func(w *Walker) { w.tagName = name }
}

// WithMaxDepth sets the maximum composite nesting depth.
// If depth is not positive, it is silently ignored and the default (100) is kept.
func WithMaxDepth(depth int) Option {
	return func(w *Walker) {
		if depth > 0 {
			w.maxDepth = depth
		}
	}
}

// Logger returns the configured logger.
func (w *Walker) Logger() Logger {
	return w.logger
}

// Converters returns the configured converter registry.
func (w *Walker) Converters() *Converters {
	return w.converters
}

// MaxDepth returns the configured maximum nesting depth.
func (w *Walker) MaxDepth() int {
	return w.maxDepth
}

// Render returns the string form of a leaf value.
// ok is false for nil, composites, and values whose converter failed.
func (w *Walker) Render(v any) (text string, ok bool) {
	kind, rv := w.classify(v)
	if kind != KindLeaf {
		return "", false
	}
	text, err := w.render(rv)
	return text, err == nil
}

func (w *Walker) render(rv reflect.Value) (string, error) {
	fn, _ := w.converters.Lookup(rv.Type())
	return fn(rv.Interface())
}

// Walk traverses root with the given handlers and options.
//
// Example:
//
//	err := walker.Walk(order,
//	    walker.WithLeafHandler(func(path, text string) walker.Action {
//	        fmt.Println(path, "=", text)
//	        return walker.Continue
//	    }),
//	)
func Walk(root any, opts ...Option) error {
	return New(opts...).Walk(root)
}

// Walk traverses the properties of root depth-first, in the order returned
// by Properties. Nil roots and leaf roots have no properties, so nothing is
// visited. A composite that is already an ancestor of the current path is
// skipped as a cycle. Nodes shared between several paths are walked once
// under each of them.
func (w *Walker) Walk(root any) error {
	if w.onNode == nil && w.onLeaf == nil {
		return fmt.Errorf("walker: no handler specified: use WithNodeHandler or WithLeafHandler")
	}
	st := &walkState{ancestors: make(map[Identity]struct{})}
	path := pathutil.Get()
	defer pathutil.Put(path)

	w.walkComposite(root, path, 0, st)
	return nil
}

type walkState struct {
	ancestors map[Identity]struct{}
	stopped   bool
}

// enter pushes v onto the ancestor set, reporting false when it is already
// an ancestor or lies beyond the depth limit. Every successful enter must be
// paired with leave.
func (w *Walker) enter(v any, path *pathutil.PathBuilder, depth int, st *walkState) bool {
	if depth > w.maxDepth {
		p := path.String()
		w.logger.Warn("max depth exceeded, skipping subtree", "path", p, "maxDepth", w.maxDepth)
		if w.onSkipped != nil {
			w.onSkipped("depth", p)
		}
		return false
	}
	id, ok := IdentityOf(v)
	if !ok {
		return true
	}
	if _, seen := st.ancestors[id]; seen {
		p := path.String()
		w.logger.Debug("cycle detected, skipping node", "path", p)
		if w.onSkipped != nil {
			w.onSkipped("cycle", p)
		}
		return false
	}
	st.ancestors[id] = struct{}{}
	return true
}

// leave pops v from the ancestor set.
func (w *Walker) leave(v any, st *walkState) {
	if id, ok := IdentityOf(v); ok {
		delete(st.ancestors, id)
	}
}

// walkComposite visits every non-nil property of v under path.
func (w *Walker) walkComposite(v any, path *pathutil.PathBuilder, depth int, st *walkState) {
	if v == nil || !w.enter(v, path, depth, st) {
		return
	}
	defer w.leave(v, st)
	for _, prop := range w.properties(v, path.String()) {
		if st.stopped {
			return
		}
		path.Push(prop.Key)
		w.visitProperty(prop.Value, path, depth, st)
		path.Pop()
	}
}

// visitProperty expands sequence and mapping values in place, one level,
// and hands every other value to visitValue.
func (w *Walker) visitProperty(v any, path *pathutil.PathBuilder, depth int, st *walkState) {
	kind, _ := w.classify(v)
	switch kind {
	case KindNil:
		return
	case KindSequence, KindMapping:
		if w.emit(&Node{Path: path.String(), Key: path.Last(), Value: v, Kind: kind, Depth: depth}, st) != Continue {
			return
		}
		if !w.enter(v, path, depth+1, st) {
			return
		}
		defer w.leave(v, st)
		for _, elem := range w.properties(v, path.String()) {
			if st.stopped {
				return
			}
			path.Push(elem.Key)
			w.visitValue(elem.Value, path, depth+1, st)
			path.Pop()
		}
	default:
		w.visitValue(v, path, depth, st)
	}
}

// visitValue renders leaves and descends into everything else.
func (w *Walker) visitValue(v any, path *pathutil.PathBuilder, depth int, st *walkState) {
	kind, rv := w.classify(v)
	switch kind {
	case KindNil, KindOpaque:
		return
	case KindLeaf:
		text, err := w.render(rv)
		if err != nil {
			w.logger.Error("failed to render leaf", "path", path.String(), "type", fmt.Sprintf("%T", v), "error", err)
			return
		}
		w.emit(&Node{Path: path.String(), Key: path.Last(), Value: v, Kind: kind, Text: text, Depth: depth}, st)
	default:
		if w.emit(&Node{Path: path.String(), Key: path.Last(), Value: v, Kind: kind, Depth: depth}, st) != Continue {
			return
		}
		w.walkComposite(v, path, depth+1, st)
	}
}

// emit runs the handlers for n and returns the resulting action.
// Stop is recorded in st so that every loop unwinds.
func (w *Walker) emit(n *Node, st *walkState) Action {
	if st.stopped {
		return Stop
	}
	action := Continue
	if w.onNode != nil {
		action = w.onNode(n)
	}
	if action == Continue && n.Kind == KindLeaf && w.onLeaf != nil {
		action = w.onLeaf(n.Path, n.Text)
	}
	if action == Stop {
		st.stopped = true
	}
	return action
}

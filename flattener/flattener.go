package flattener

import (
	"iter"
	"slices"

	"github.com/DeepakRathod14/java-custom-automation/internal/maputil"
	"github.com/DeepakRathod14/java-custom-automation/internal/pathutil"
	"github.com/DeepakRathod14/java-custom-automation/walker"
)

// Entry is one flattened leaf.
type Entry struct {
	Path  string `json:"path" yaml:"path"`
	Value string `json:"value" yaml:"value"`
}

// String returns "path=value".
func (e Entry) String() string {
	return e.Path + "=" + e.Value
}

// Result is a flat, sorted mapping from path to rendered leaf value.
// A Result is immutable once returned.
type Result struct {
	values map[string]string
	keys   []string
}

func newResult(values map[string]string) *Result {
	return &Result{values: values, keys: maputil.SortedKeys(values)}
}

// Flatten returns every non-nil leaf of root keyed by its flat path.
// Reflection failures are logged and the affected property is omitted;
// Flatten itself never fails.
func Flatten(root any, opts ...Option) *Result {
	cfg := applyOptions(opts...)
	values := make(map[string]string)

	w := walker.New(append(cfg.walkerOpts, walker.WithLeafHandler(func(path, text string) walker.Action {
		values[path] = text
		return walker.Continue
	}))...)
	// Walk only fails when no handler is configured.
	_ = w.Walk(root)

	return newResult(values)
}

// Len returns the number of entries.
func (r *Result) Len() int {
	return len(r.keys)
}

// Keys returns the paths in sorted order.
func (r *Result) Keys() []string {
	return slices.Clone(r.keys)
}

// Get returns the rendered value at path.
func (r *Result) Get(path string) (string, bool) {
	v, ok := r.values[path]
	return v, ok
}

// Has reports whether path is present.
func (r *Result) Has(path string) bool {
	_, ok := r.values[path]
	return ok
}

// Entries returns the entries in path order.
func (r *Result) Entries() []Entry {
	entries := make([]Entry, len(r.keys))
	for i, k := range r.keys {
		entries[i] = Entry{Path: k, Value: r.values[k]}
	}
	return entries
}

// All iterates over the entries in path order.
func (r *Result) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range r.keys {
			if !yield(k, r.values[k]) {
				return
			}
		}
	}
}

// Map returns a copy of the entries as a plain map.
func (r *Result) Map() map[string]string {
	out := make(map[string]string, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

// Filter returns the entries whose path matches at least one wildcard
// pattern, where '*' matches any run of characters and '?' exactly one.
// With no patterns the result is returned unchanged.
func (r *Result) Filter(patterns ...string) *Result {
	if len(patterns) == 0 {
		return r
	}
	values := make(map[string]string)
	for _, k := range r.keys {
		if pathutil.MatchAny(k, patterns) {
			values[k] = r.values[k]
		}
	}
	return newResult(values)
}

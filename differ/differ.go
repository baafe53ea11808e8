package differ

import (
	"slices"
	"strings"

	"github.com/DeepakRathod14/java-custom-automation/flattener"
	"github.com/DeepakRathod14/java-custom-automation/walker"
)

// Logger is the structured logger used by the differ.
type Logger = walker.Logger

// Differ compares object graphs and keeps the changes of its most recent
// comparison. A Differ is not safe for concurrent use; create one per
// goroutine or use the package-level functions.
type Differ struct {
	// Logger receives reflection failures and skipped subtrees.
	// If nil, logging is disabled (default)
	Logger Logger
	// MaxDepth bounds how deep the comparison descends.
	// Default: walker.DefaultMaxDepth
	MaxDepth int
	// Converters decides which values are leaves and how they render.
	// If nil, walker.NewConverters() is used.
	Converters *walker.Converters
	// FlattenOptions are passed to flattener.Flatten by
	// EqualsIgnoringNullFields, after the options derived from the fields above.
	FlattenOptions []flattener.Option

	changes []Change
}

// New creates a new Differ instance with default settings
func New() *Differ {
	return &Differ{MaxDepth: walker.DefaultMaxDepth}
}

func (d *Differ) walker() *walker.Walker {
	opts := []walker.Option{walker.WithMaxDepth(d.MaxDepth), walker.WithConverters(d.Converters)}
	if d.Logger != nil {
		opts = append(opts, walker.WithLogger(d.Logger))
	}
	return walker.New(opts...)
}

func (d *Differ) flattenOptions() []flattener.Option {
	opts := []flattener.Option{flattener.WithMaxDepth(d.MaxDepth), flattener.WithConverters(d.Converters)}
	if d.Logger != nil {
		opts = append(opts, flattener.WithLogger(d.Logger))
	}
	return append(opts, d.FlattenOptions...)
}

// Compare reports every place where expected is not matched by actual.
// The comparison is directional: only content present in expected is
// checked, so keys that exist only in actual are ignored. An expected
// value whose actual counterpart is nil or missing is not reported
// either, and sequence elements are aligned by where the element first
// occurs in expected rather than by raw position.
//
// actual and expected must both be mappings (maps or beans) or both be
// sequences; anything else yields a single KindShapeMismatch change.
//
// Compare replaces the changes held by d and returns a copy of them.
func (d *Differ) Compare(actual, expected any) []Change {
	c := newComparison(d.walker())
	c.run(actual, expected)
	d.changes = c.changes
	return d.Changes()
}

// IsEqual reports whether Compare finds no changes.
func (d *Differ) IsEqual(actual, expected any) bool {
	return len(d.Compare(actual, expected)) == 0
}

// EqualsIgnoringNullFields flattens both graphs and checks that every
// expected path exists in actual with the same rendering. Nil fields of
// expected produce no path, so they are not compared. Paths only present
// in actual are ignored. The changes held by d are replaced.
func (d *Differ) EqualsIgnoringNullFields(actual, expected any) bool {
	opts := d.flattenOptions()
	expectedFlat := flattener.Flatten(expected, opts...)
	actualFlat := flattener.Flatten(actual, opts...)

	d.changes = nil
	for _, e := range expectedFlat.Entries() {
		got, ok := actualFlat.Get(e.Path)
		switch {
		case !ok:
			d.changes = append(d.changes, fieldNotFound(e.Path, e.Value))
		case got != e.Value:
			d.changes = append(d.changes, renderingMismatch(e.Path, e.Value, got))
		}
	}
	return len(d.changes) == 0
}

// Changes returns the changes found by the most recent comparison.
func (d *Differ) Changes() []Change {
	return slices.Clone(d.changes)
}

// Message joins the messages of the most recent changes with newlines.
// It is empty when the last comparison found no changes.
func (d *Differ) Message() string {
	return FormatChanges(d.changes)
}

// CheckShape returns a *cmperrors.ShapeError unless actual and expected
// can be compared, that is both are mappings or both are sequences.
func (d *Differ) CheckShape(actual, expected any) error {
	return checkShape(d.walker(), actual, expected)
}

// FormatChanges joins the messages of changes with newlines.
func FormatChanges(changes []Change) string {
	msgs := make([]string, len(changes))
	for i, c := range changes {
		msgs[i] = c.Message
	}
	return strings.Join(msgs, "\n")
}

// Compare reports the changes between actual and expected using a new
// Differ with default settings. See Differ.Compare.
func Compare(actual, expected any) []Change {
	return New().Compare(actual, expected)
}

// IsEqual reports whether expected is matched by actual.
// See Differ.Compare for the matching rules.
func IsEqual(actual, expected any) bool {
	return New().IsEqual(actual, expected)
}

// EqualsIgnoringNullFields reports whether every non-nil leaf of expected
// has the same rendering in actual. See Differ.EqualsIgnoringNullFields.
func EqualsIgnoringNullFields(actual, expected any) bool {
	return New().EqualsIgnoringNullFields(actual, expected)
}

// CheckShape reports whether actual and expected can be compared.
// See Differ.CheckShape.
func CheckShape(actual, expected any) error {
	return New().CheckShape(actual, expected)
}

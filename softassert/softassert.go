package softassert

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/DeepakRathod14/java-custom-automation/differ"
	"github.com/DeepakRathod14/java-custom-automation/walker"
)

// Logger is the structured logger used to trace failures.
type Logger = walker.Logger

// Failure is one failed assertion.
type Failure struct {
	// Assertion names the assertion that failed, e.g. "CompareWithLeftMode"
	Assertion string
	// Message describes the failure
	Message string
	// Changes holds the differ changes behind a JSON assertion failure
	Changes []differ.Change
}

// Error returns the failure message.
func (f Failure) Error() string {
	return f.Message
}

// SoftAssert collects failures from any number of assertions.
type SoftAssert struct {
	id       uuid.UUID
	logger   Logger
	template differ.Differ

	mu       sync.Mutex
	failures []Failure
}

// Option configures a SoftAssert.
type Option func(*SoftAssert)

// WithLogger traces every failure at debug level.
func WithLogger(l Logger) Option {
	return func(s *SoftAssert) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithID sets the identifier shown in reports. By default a random UUID
// is used.
func WithID(id uuid.UUID) Option {
	return func(s *SoftAssert) {
		s.id = id
	}
}

// WithDiffer sets the differ settings (logger, depth, converters, flatten
// options) used by JSON assertions. d is copied; its changes are ignored.
func WithDiffer(d *differ.Differ) Option {
	return func(s *SoftAssert) {
		if d != nil {
			s.template = differ.Differ{
				Logger:         d.Logger,
				MaxDepth:       d.MaxDepth,
				Converters:     d.Converters,
				FlattenOptions: slices.Clone(d.FlattenOptions),
			}
		}
	}
}

// New creates an empty SoftAssert.
func New(opts ...Option) *SoftAssert {
	s := &SoftAssert{
		id:       uuid.New(),
		logger:   walker.NopLogger{},
		template: *differ.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the identifier of s.
func (s *SoftAssert) ID() uuid.UUID {
	return s.id
}

func (s *SoftAssert) newDiffer() *differ.Differ {
	d := s.template
	return &d
}

// fail records a failure and returns false so assertions can end with
// "return s.fail(...)".
func (s *SoftAssert) fail(f Failure) bool {
	s.mu.Lock()
	s.failures = append(s.failures, f)
	s.mu.Unlock()

	s.logger.Debug("soft assertion failed", "id", s.id.String(), "assertion", f.Assertion)
	return false
}

// Failures returns the recorded failures in order.
func (s *SoftAssert) Failures() []Failure {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.failures)
}

// Failed reports whether any assertion has failed.
func (s *SoftAssert) Failed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.failures) > 0
}

// Reset discards all recorded failures.
func (s *SoftAssert) Reset() {
	s.mu.Lock()
	s.failures = nil
	s.mu.Unlock()
}

// Err returns nil when nothing failed, otherwise an error listing every
// failure.
func (s *SoftAssert) Err() error {
	failures := s.Failures()
	if len(failures) == 0 {
		return nil
	}
	return &Error{ID: s.id, Failures: failures}
}

// AssertAll reports every recorded failure on t as one error. It does
// nothing when all assertions passed.
func (s *SoftAssert) AssertAll(t testing.TB) {
	t.Helper()
	if err := s.Err(); err != nil {
		t.Errorf("%s", err)
	}
}

// Error is the combined error returned by SoftAssert.Err.
type Error struct {
	ID       uuid.UUID
	Failures []Failure
}

// Error lists the failures, numbered in the order they were recorded.
func (e *Error) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "soft assertions %s: %d failed", e.ID, len(e.Failures))
	for i, f := range e.Failures {
		fmt.Fprintf(&sb, "\n%d) %s: %s", i+1, f.Assertion, f.Message)
	}
	return sb.String()
}

// Unwrap returns the individual failures.
func (e *Error) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f
	}
	return errs
}

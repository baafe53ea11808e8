package softassert

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DeepakRathod14/java-custom-automation/differ"
	"github.com/DeepakRathod14/java-custom-automation/internal/testutil"
	"github.com/DeepakRathod14/java-custom-automation/walker"
)

// fakeT captures what AssertAll reports.
type fakeT struct {
	testing.TB
	errors []string
}

func (f *fakeT) Helper() {}

func (f *fakeT) Errorf(format string, args ...any) {
	f.errors = append(f.errors, fmt.Sprintf(format, args...))
}

type recordingLogger struct {
	walker.NopLogger
	messages []string
}

func (r *recordingLogger) Debug(msg string, _ ...any) { r.messages = append(r.messages, msg) }
func (r *recordingLogger) With(_ ...any) Logger       { return r }

func TestAssertJSON_CompareWithLeftMode(t *testing.T) {
	sa := New()

	sa.AssertJSON(testutil.NewCustomerDocument()).CompareWithLeftMode(testutil.NewCustomerDocument())
	assert.False(t, sa.Failed())

	actual := testutil.NewCustomerDocument()
	actual["name"] = "Grace"
	actual["email"] = "grace@example.com"
	sa.AssertJSON(actual).CompareWithLeftMode(testutil.NewCustomerDocument())

	failures := sa.Failures()
	require.Len(t, failures, 1)
	assert.Equal(t, "CompareWithLeftMode", failures[0].Assertion)
	assert.Equal(t, "Differences failed:\n"+
		"Validate field <email>: expected: <ada@example.com> but was: <grace@example.com>\n"+
		"Validate field <name>: expected: <Ada> but was: <Grace>", failures[0].Message)
	assert.Len(t, failures[0].Changes, 2)
}

func TestAssertJSON_ShapeMismatch(t *testing.T) {
	sa := New()
	sa.AssertJSON(map[string]any{}).CompareWithLeftMode([]any{})

	require.Len(t, sa.Failures(), 1)
	assert.Equal(t, "Differences failed:\n"+differ.ShapeMismatchMessage, sa.Failures()[0].Message)
}

func TestAssertJSON_EqualsIgnoringNullFields(t *testing.T) {
	type person struct {
		Name string `json:"name"`
		Age  *int   `json:"age"`
	}
	sa := New()

	sa.AssertJSON(person{Name: "x", Age: testutil.Ptr(30)}).
		EqualsIgnoringNullFields(person{Name: "x"}).
		EqualsIgnoringNullFields(person{Name: "y"})

	failures := sa.Failures()
	require.Len(t, failures, 1)
	assert.Equal(t, "EqualsIgnoringNullFields", failures[0].Assertion)
	assert.Equal(t, "Differences failed:\n--- Field name\nActual: x\nExpected: y", failures[0].Message)
}

func TestWithDiffer(t *testing.T) {
	conv := walker.NewConverters()
	conv.Register(uuid.UUID{}, func(v any) (string, error) {
		return "id-" + v.(uuid.UUID).String()[:4], nil
	})
	template := &differ.Differ{Converters: conv}
	sa := New(WithDiffer(template))

	id := uuid.MustParse("12345678-1234-1234-1234-123456789abc")
	other := uuid.MustParse("abcd5678-1234-1234-1234-123456789abc")
	sa.AssertJSON(map[string]any{"id": other}).CompareWithLeftMode(map[string]any{"id": id})

	require.Len(t, sa.Failures(), 1)
	assert.Contains(t, sa.Failures()[0].Message, "expected: <id-1234> but was: <id-abcd>")
	assert.Empty(t, template.Changes(), "the template differ is not used directly")
}

func TestMatches(t *testing.T) {
	sa := New()

	assert.True(t, sa.Matches(3, 2, func(a, e any) bool { return a.(int) > e.(int) }))
	assert.False(t, sa.Matches(1, 2, func(a, e any) bool { return a.(int) > e.(int) }))
	assert.True(t, sa.MatchesFunc("abc", func(a any) bool { return strings.HasPrefix(a.(string), "a") }))
	assert.False(t, sa.MatchesFunc("xyz", func(a any) bool { return strings.HasPrefix(a.(string), "a") }))

	failures := sa.Failures()
	require.Len(t, failures, 2)
	assert.Equal(t, "Matches", failures[0].Assertion)
	assert.Equal(t, "expected object to match predicate\n actual: 1\n expected: 2", failures[0].Message)
	assert.Equal(t, "MatchesFunc", failures[1].Assertion)
	assert.Equal(t, "expected object to match predicate\n actual: xyz", failures[1].Message)
}

func TestMatchesExpr(t *testing.T) {
	tests := []struct {
		name       string
		actual     any
		expression string
		want       bool
		wantMsg    string
	}{
		{
			name:       "document field",
			actual:     testutil.NewCustomerDocument(),
			expression: `actual.name == "Ada" && len(actual.orders) == 2`,
			want:       true,
		},
		{
			name:       "flattened path",
			actual:     testutil.NewCustomerDocument(),
			expression: `flat["orders.[1].items.[0]"] == "paper"`,
			want:       true,
		},
		{
			name:       "bean field",
			actual:     testutil.NewCustomer(),
			expression: `actual.Orders[0].Total > 10 && flat["nickname"] == "countess"`,
			want:       true,
		},
		{
			name:       "false",
			actual:     map[string]any{"a": 1},
			expression: `actual.a == 2`,
			wantMsg:    `expected "actual.a == 2" to hold`,
		},
		{
			name:       "not a bool",
			actual:     map[string]any{"a": 1},
			expression: `"text"`,
			wantMsg:    `invalid expression "\"text\""`,
		},
		{
			name:       "syntax error",
			actual:     map[string]any{"a": 1},
			expression: `actual.a ==`,
			wantMsg:    "invalid expression",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sa := New()
			assert.Equal(t, tt.want, sa.MatchesExpr(tt.actual, tt.expression))
			if tt.want {
				assert.False(t, sa.Failed())
				return
			}
			require.Len(t, sa.Failures(), 1)
			assert.Equal(t, "MatchesExpr", sa.Failures()[0].Assertion)
			assert.Contains(t, sa.Failures()[0].Message, tt.wantMsg)
		})
	}
}

func TestEqual(t *testing.T) {
	type point struct{ X, Y int }
	type secret struct{ hidden int }

	sa := New()
	assert.True(t, sa.Equal(point{1, 2}, point{1, 2}))
	assert.True(t, sa.Equal([]int{}, []int(nil), cmpopts.EquateEmpty()))

	assert.False(t, sa.Equal(point{1, 3}, point{1, 2}))
	assert.False(t, sa.Equal("the quick brown fox jumps over the lazy dog", "the quick brown cat jumps over the lazy dog"))
	assert.False(t, sa.Equal("a", "b"))
	assert.False(t, sa.Equal(secret{1}, secret{2}))

	failures := sa.Failures()
	require.Len(t, failures, 4)
	assert.Contains(t, failures[0].Message, "values differ (-expected +actual)")
	assert.Contains(t, failures[0].Message, "Y")
	assert.Equal(t, "strings differ ([-expected-] {+actual+}):\nthe quick brown [-fox-]{+cat+} jumps over the lazy dog", failures[1].Message)
	assert.Contains(t, failures[2].Message, "values differ")
	assert.Contains(t, failures[3].Message, "cannot compare values")
}

func TestStringDiff(t *testing.T) {
	assert.Equal(t, "abc", stringDiff("abc", "abc"))
	assert.Equal(t, "line one\nline [-two-]{+2+}", stringDiff("line one\nline two", "line one\nline 2"))
}

func TestAssertAll(t *testing.T) {
	id := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	sa := New(WithID(id))

	ft := &fakeT{}
	sa.AssertAll(ft)
	assert.Empty(t, ft.errors)
	assert.NoError(t, sa.Err())

	sa.MatchesFunc(1, func(any) bool { return false })
	sa.AssertJSON(map[string]any{"a": 2}).CompareWithLeftMode(map[string]any{"a": 1})
	sa.AssertAll(ft)

	require.Len(t, ft.errors, 1)
	assert.Equal(t, "soft assertions 00000000-0000-0000-0000-000000000001: 2 failed\n"+
		"1) MatchesFunc: expected object to match predicate\n actual: 1\n"+
		"2) CompareWithLeftMode: Differences failed:\nValidate field <a>: expected: <1> but was: <2>",
		ft.errors[0])

	err := sa.Err()
	var saErr *Error
	require.True(t, errors.As(err, &saErr))
	assert.Equal(t, id, saErr.ID)

	var failure Failure
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, "MatchesFunc", failure.Assertion)
}

func TestReset(t *testing.T) {
	sa := New()
	sa.MatchesFunc(nil, func(any) bool { return false })
	require.True(t, sa.Failed())

	sa.Reset()
	assert.False(t, sa.Failed())
	assert.Empty(t, sa.Failures())
}

func TestNew_Options(t *testing.T) {
	assert.NotEqual(t, New().ID(), New().ID())

	logger := &recordingLogger{}
	sa := New(WithLogger(logger), WithLogger(nil), WithDiffer(nil))
	sa.MatchesFunc(1, func(any) bool { return false })
	assert.Equal(t, []string{"soft assertion failed"}, logger.messages)
}

func TestConcurrentAssertions(t *testing.T) {
	sa := New()
	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sa.AssertJSON(map[string]any{"i": i}).CompareWithLeftMode(map[string]any{"i": -1})
		}()
	}
	wg.Wait()
	assert.Len(t, sa.Failures(), 20)
}

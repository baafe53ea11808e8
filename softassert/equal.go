package softassert

import (
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// longString is the length from which string mismatches are reported as
// a character diff rather than as two full values.
const longString = 40

// Equal records a failure unless actual and expected are equal under
// cmp.Equal with opts. The failure message holds a diff of the two values.
func (s *SoftAssert) Equal(actual, expected any, opts ...cmp.Option) (ok bool) {
	defer func() {
		// cmp panics on values it cannot compare, such as structs with
		// unexported fields and no cmp option covering them.
		if r := recover(); r != nil {
			ok = s.fail(Failure{
				Assertion: "Equal",
				Message:   fmt.Sprintf("cannot compare values: %v", r),
			})
		}
	}()

	if cmp.Equal(actual, expected, opts...) {
		return true
	}

	as, aok := actual.(string)
	es, eok := expected.(string)
	if aok && eok && (len(as) >= longString || len(es) >= longString || strings.Contains(as+es, "\n")) {
		return s.fail(Failure{
			Assertion: "Equal",
			Message:   "strings differ ([-expected-] {+actual+}):\n" + stringDiff(es, as),
		})
	}
	return s.fail(Failure{
		Assertion: "Equal",
		Message:   "values differ (-expected +actual):\n" + cmp.Diff(expected, actual, opts...),
	})
}

// stringDiff renders a character diff from expected to actual, marking
// deletions as [-text-] and insertions as {+text+}.
func stringDiff(expected, actual string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(expected, actual, false))

	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			sb.WriteString("[-" + d.Text + "-]")
		case diffmatchpatch.DiffInsert:
			sb.WriteString("{+" + d.Text + "+}")
		default:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}

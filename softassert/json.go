package softassert

import (
	"fmt"

	"github.com/DeepakRathod14/java-custom-automation/differ"
)

// JSONAssert compares one actual object graph against expected ones.
type JSONAssert struct {
	s      *SoftAssert
	actual any
}

// AssertJSON starts JSON assertions on actual.
//
//	sa.AssertJSON(response).
//	    CompareWithLeftMode(expectedDoc).
//	    EqualsIgnoringNullFields(expectedBean)
func (s *SoftAssert) AssertJSON(actual any) *JSONAssert {
	return &JSONAssert{s: s, actual: actual}
}

// CompareWithLeftMode records a failure when differ.Compare reports
// changes between the actual graph and expected.
func (j *JSONAssert) CompareWithLeftMode(expected any) *JSONAssert {
	d := j.s.newDiffer()
	if !d.IsEqual(j.actual, expected) {
		j.s.fail(differencesFailure("CompareWithLeftMode", d))
	}
	return j
}

// EqualsIgnoringNullFields records a failure when a non-nil leaf of
// expected is missing from, or rendered differently in, the actual graph.
func (j *JSONAssert) EqualsIgnoringNullFields(expected any) *JSONAssert {
	d := j.s.newDiffer()
	if !d.EqualsIgnoringNullFields(j.actual, expected) {
		j.s.fail(differencesFailure("EqualsIgnoringNullFields", d))
	}
	return j
}

func differencesFailure(assertion string, d *differ.Differ) Failure {
	return Failure{
		Assertion: assertion,
		Message:   fmt.Sprintf("Differences failed:\n%s", d.Message()),
		Changes:   d.Changes(),
	}
}

package softassert

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/DeepakRathod14/java-custom-automation/flattener"
)

// Matches records a failure unless fn(actual, expected) holds.
func (s *SoftAssert) Matches(actual, expected any, fn func(actual, expected any) bool) bool {
	if fn(actual, expected) {
		return true
	}
	return s.fail(Failure{
		Assertion: "Matches",
		Message:   fmt.Sprintf("expected object to match predicate\n actual: %v\n expected: %v", actual, expected),
	})
}

// MatchesFunc records a failure unless fn(actual) holds.
func (s *SoftAssert) MatchesFunc(actual any, fn func(actual any) bool) bool {
	if fn(actual) {
		return true
	}
	return s.fail(Failure{
		Assertion: "MatchesFunc",
		Message:   fmt.Sprintf("expected object to match predicate\n actual: %v", actual),
	})
}

// MatchesExpr records a failure unless the boolean expression holds. The
// expression sees two variables: actual, the value itself, and flat, the
// flattened form of actual as a map from path to rendered leaf:
//
//	sa.MatchesExpr(order, `actual.Total > 10 && flat["items.[0]"] == "pen"`)
//
// An expression that does not compile or does not yield a bool is a failure.
func (s *SoftAssert) MatchesExpr(actual any, expression string) bool {
	env := map[string]any{
		"actual": actual,
		"flat":   flattener.Flatten(actual).Map(),
	}

	program, err := expr.Compile(expression, expr.Env(env), expr.AsBool())
	if err != nil {
		return s.fail(Failure{
			Assertion: "MatchesExpr",
			Message:   fmt.Sprintf("invalid expression %q: %v", expression, err),
		})
	}
	out, err := expr.Run(program, env)
	if err != nil {
		return s.fail(Failure{
			Assertion: "MatchesExpr",
			Message:   fmt.Sprintf("expression %q failed: %v", expression, err),
		})
	}
	if ok, _ := out.(bool); ok {
		return true
	}
	return s.fail(Failure{
		Assertion: "MatchesExpr",
		Message:   fmt.Sprintf("expected %q to hold\n actual: %v", expression, actual),
	})
}

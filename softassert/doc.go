// Package softassert collects assertion failures instead of stopping at the
// first one, so a test can check a whole response and report every problem
// together.
//
// A SoftAssert has an explicit lifetime: create one per test, record
// assertions on it, then report:
//
//	func TestOrder(t *testing.T) {
//		sa := softassert.New()
//		sa.AssertJSON(actual).CompareWithLeftMode(expected)
//		sa.MatchesExpr(actual, `flat["status"] == "shipped"`)
//		sa.Equal(got.Total, 12.5)
//		sa.AssertAll(t)
//	}
//
// Assertions return whether they passed. Failures are kept in order and are
// safe to record from parallel subtests sharing one SoftAssert.
package softassert

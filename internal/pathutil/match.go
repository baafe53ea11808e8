package pathutil

// Match reports whether content matches pattern, where '*' matches any
// (possibly empty) run of characters and '?' matches exactly one character.
// Matching is greedy with single-star backtracking, so it runs in
// O(len(content)*len(pattern)) in the worst case.
func Match(content, pattern string) bool {
	i, j := 0, 0
	starIdx, matchIdx := -1, -1

	for i < len(content) {
		switch {
		case j < len(pattern) && (pattern[j] == '?' || pattern[j] == content[i]):
			i++
			j++
		case j < len(pattern) && pattern[j] == '*':
			starIdx = j
			matchIdx = i
			j++
		case starIdx != -1:
			j = starIdx + 1
			matchIdx++
			i = matchIdx
		default:
			return false
		}
	}
	for j < len(pattern) && pattern[j] == '*' {
		j++
	}
	return j == len(pattern)
}

// MatchAny reports whether content matches at least one of the patterns.
func MatchAny(content string, patterns []string) bool {
	for _, pattern := range patterns {
		if Match(content, pattern) {
			return true
		}
	}
	return false
}

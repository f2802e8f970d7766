// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Chertolet926
// Source: github.com/Chertolet926/excel-parser

package excelparser

import "strings"

// Score bands. Exact substring matches always outrank case-folded ones,
// which always outrank subsequence matches.
const (
	// scoreExactEqual is awarded when query equals candidate byte-for-byte.
	scoreExactEqual = 120
	// scoreExactSubstring is awarded for a case-sensitive substring match.
	scoreExactSubstring = 100
	// scoreFoldEqual is awarded when query equals candidate after case folding.
	scoreFoldEqual = 75
	// scoreFoldSubstring is awarded for a substring match after case folding.
	scoreFoldSubstring = 50
	// scoreSubsequenceMax caps the subsequence band before gap penalties.
	scoreSubsequenceMax = 49
	// scoreSubsequenceMin floors the subsequence band.
	scoreSubsequenceMin = 1

	// gapPenalty is subtracted per skipped candidate rune inside the match span.
	gapPenalty = 2
	// fragmentPenalty is subtracted per matched run beyond the first.
	fragmentPenalty = 3
)

// Matcher holds reusable fuzzy-match configuration. The zero value and
// NewMatcher are case-insensitive; configure once and share across calls,
// matching itself is a pure function of the configuration.
type Matcher struct {
	// caseSensitive restricts all match stages to exact case.
	caseSensitive bool
}

// NewMatcher creates a case-insensitive matcher.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// CaseSensitive toggles case-sensitive matching and returns the receiver
// for chaining.
func (m *Matcher) CaseSensitive(sensitive bool) *Matcher {
	m.caseSensitive = sensitive
	return m
}

// Score rates how well query matches candidate. The boolean is false when
// query is not even an in-order subsequence of candidate.
//
// Bands:
//   - case-sensitive substring or equality: >= 100
//   - substring after case folding: 50..99
//   - in-order subsequence with gaps: 1..49, tighter matches never scoring
//     below looser ones
func (m *Matcher) Score(candidate, query string) (int, bool) {
	if strings.Contains(candidate, query) {
		if candidate == query {
			return scoreExactEqual, true
		}

		return scoreExactSubstring, true
	}

	if m.caseSensitive {
		return scoreSubsequence(candidate, query)
	}

	foldedCandidate := strings.ToLower(candidate)
	foldedQuery := strings.ToLower(query)
	if strings.Contains(foldedCandidate, foldedQuery) {
		if foldedCandidate == foldedQuery {
			return scoreFoldEqual, true
		}

		return scoreFoldSubstring, true
	}

	return scoreSubsequence(foldedCandidate, foldedQuery)
}

// scoreSubsequence scores a greedy leftmost in-order rune subsequence match.
// The score starts at the band cap and drops with the total gap length
// inside the matched span and with the number of fragmented runs.
func scoreSubsequence(candidate, query string) (int, bool) {
	queryRunes := []rune(query)
	if len(queryRunes) == 0 {
		// Unreachable from Score: an empty query is always a substring.
		return scoreSubsequenceMax, true
	}

	first, last := -1, -1
	previous := -2
	runs := 0
	next := 0

	for i, r := range []rune(candidate) {
		if next == len(queryRunes) {
			break
		}
		if r != queryRunes[next] {
			continue
		}

		if first < 0 {
			first = i
		}
		if i != previous+1 {
			runs++
		}

		previous = i
		last = i
		next++
	}

	if next < len(queryRunes) {
		return 0, false
	}

	gap := (last - first + 1) - len(queryRunes)
	score := scoreSubsequenceMax - gap*gapPenalty - (runs-1)*fragmentPenalty
	if score < scoreSubsequenceMin {
		score = scoreSubsequenceMin
	}

	return score, true
}

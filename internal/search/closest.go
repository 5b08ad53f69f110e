// Package search ranks record names against a name typed by a user
package search

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Ratio scores the similarity of a and b from 0 to 100 by edit distance,
// ignoring case
func Ratio(a, b string) int {
	a, b = strings.ToLower(a), strings.ToLower(b)
	total := len([]rune(a)) + len([]rune(b))
	if total == 0 {
		return 100
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 100 * (total - dist) / total
}

// TokenSetRatio scores a and b by their shared and distinct words, so word
// order and repeated words do not matter
func TokenSetRatio(a, b string) int {
	ta, tb := tokens(a), tokens(b)

	var shared, onlyA, onlyB []string
	for t := range ta {
		if tb[t] {
			shared = append(shared, t)
		} else {
			onlyA = append(onlyA, t)
		}
	}
	for t := range tb {
		if !ta[t] {
			onlyB = append(onlyB, t)
		}
	}

	base := joinSorted(shared)
	withA := strings.TrimSpace(base + " " + joinSorted(onlyA))
	withB := strings.TrimSpace(base + " " + joinSorted(onlyB))

	best := Ratio(withA, withB)
	if base != "" {
		best = max(best, Ratio(base, withA), Ratio(base, withB))
	}
	return best
}

// Score is the combined rank of candidate for name; higher is closer
func Score(name, candidate string) int {
	return TokenSetRatio(name, candidate) + Ratio(name, candidate)
}

// Closest returns the candidate scoring highest against name. Ties keep the
// earlier candidate. ok is false when there are no candidates.
func Closest(name string, candidates []string) (string, bool) {
	best, bestScore := "", -1
	for _, c := range candidates {
		if score := Score(name, c); score > bestScore {
			best, bestScore = c, score
		}
	}
	return best, bestScore >= 0
}

func tokens(s string) map[string]bool {
	out := make(map[string]bool)
	for _, t := range strings.Fields(strings.ToLower(s)) {
		out[t] = true
	}
	return out
}

func joinSorted(words []string) string {
	sort.Strings(words)
	return strings.Join(words, " ")
}

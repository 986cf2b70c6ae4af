package analyzer

import "sort"

// maxSuggestionDistance is the largest edit distance still offered as a
// suggestion.
const maxSuggestionDistance = 2

// maxSuggestions caps the number of names in a "did you mean" hint.
const maxSuggestions = 3

// Suggest returns the keys closest to name by edit distance, nearest first
// and in registration order among equals. name and keys are canonical.
func Suggest(name string, keys []string) []string {
	if name == "" {
		return nil
	}

	type candidate struct {
		key  string
		dist int
		pos  int
	}
	var candidates []candidate
	for i, k := range keys {
		if d := levenshtein(name, k); d <= maxSuggestionDistance {
			candidates = append(candidates, candidate{key: k, dist: d, pos: i})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		return candidates[i].pos < candidates[j].pos
	})

	var out []string
	for _, c := range candidates {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, c.key)
	}
	return out
}

// levenshtein computes the edit distance between a and b over runes.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

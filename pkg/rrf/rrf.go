// Package rrf implements Reciprocal Rank Fusion: several ranked lists are
// merged by giving every item 1/(k+rank) points per list it appears in and
// sorting by the total.
package rrf

import "sort"

// DefaultK is the customary smoothing constant. Larger values flatten the
// gap between the top and bottom of a list.
const DefaultK = 60

// List is one ranked input. Items[0] has rank 1.
type List struct {
	Name  string
	Emoji string
	Color string
	Items []string
}

// Contribution is the score one list gave to an item.
type Contribution struct {
	List  int     // index into the input lists
	Rank  int     // 1-based rank within that list
	Score float64 // 1/(k+Rank)
}

// Result is a fused item with its total and per-list breakdown.
// Contributions are ordered by list index.
type Result struct {
	Item          string
	Score         float64
	Contributions []Contribution
}

// Score returns the contribution of a 1-based rank.
func Score(k, rank int) float64 {
	return 1 / float64(k+rank)
}

// Fuse merges lists and returns the results sorted by descending score.
// Items with equal scores keep the order in which they were first seen.
// A non-positive k is replaced with DefaultK.
func Fuse(lists []List, k int) []Result {
	if k <= 0 {
		k = DefaultK
	}

	index := make(map[string]int)
	var results []Result

	for li, list := range lists {
		for pos, item := range list.Items {
			rank := pos + 1
			s := Score(k, rank)

			i, ok := index[item]
			if !ok {
				i = len(results)
				index[item] = i
				results = append(results, Result{Item: item})
			}
			results[i].Score += s
			results[i].Contributions = append(results[i].Contributions, Contribution{
				List:  li,
				Rank:  rank,
				Score: s,
			})
		}
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Score > results[b].Score
	})
	return results
}

// ScoreFrom returns the part of the total contributed by list li.
func (r Result) ScoreFrom(li int) float64 {
	var total float64
	for _, c := range r.Contributions {
		if c.List == li {
			total += c.Score
		}
	}
	return total
}

// In reports whether the item was ranked by list li, and its contribution.
func (r Result) In(li int) (Contribution, bool) {
	for _, c := range r.Contributions {
		if c.List == li {
			return c, true
		}
	}
	return Contribution{}, false
}

// MaxScore returns the highest total in results, or 0 if empty.
func MaxScore(results []Result) float64 {
	var m float64
	for _, r := range results {
		if r.Score > m {
			m = r.Score
		}
	}
	return m
}

// Find returns the result for item.
func Find(results []Result, item string) (Result, bool) {
	for _, r := range results {
		if r.Item == item {
			return r, true
		}
	}
	return Result{}, false
}

// Items returns every distinct item across lists in first-seen order.
func Items(lists []List) []string {
	seen := make(map[string]bool)
	var out []string
	for _, l := range lists {
		for _, item := range l.Items {
			if !seen[item] {
				seen[item] = true
				out = append(out, item)
			}
		}
	}
	return out
}

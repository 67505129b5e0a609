package kmp

import "github.com/coregx/linex/simd"

// Search returns the offset of the first occurrence of pattern in text, or
// (0, false) if there is no occurrence. failure must be the standard
// [BuildFailure] table for pattern (never the optimized variant).
//
// An empty pattern matches at offset 0 regardless of text, per the
// mathematical convention that the empty string prefixes every string.
func Search(text, pattern []byte, failure []int) (int, bool) {
	m := len(pattern)
	if m == 0 {
		return 0, true
	}
	n := len(text)
	if n < m {
		return 0, false
	}

	first := pattern[0]
	limit := n - m + 1
	p := 0
	j := 0 // pattern bytes already known to match at text[p:]
	for p < limit {
		c := p
		if j == 0 {
			rel, found := simd.FindFirstEq(text[p:limit], first)
			if !found {
				return 0, false
			}
			c = p + rel
		}

		k := j + simd.PrefixEqLen(text[c+j:c+m], pattern[j:])
		if k == m {
			return c, true
		}

		j = 0
		skip := 1
		if k > 0 {
			j = failure[k-1]
			skip = k - j
		}
		p = c + skip
	}
	return 0, false
}

// SearchAll calls yield for every occurrence of pattern in text, in
// strictly increasing offset order, including overlapping occurrences.
// Iteration stops early if yield returns false.
//
// An empty pattern yields nothing: see the package doc on [CountAll] for
// why this departs from the "infinite empty matches" convention.
func SearchAll(text, pattern []byte, failure []int, yield func(int) bool) {
	m := len(pattern)
	if m == 0 {
		return
	}
	n := len(text)
	if n < m {
		return
	}

	first := pattern[0]
	limit := n - m + 1
	p := 0
	j := 0 // pattern bytes already known to match at text[p:]
	for p < limit {
		c := p
		if j == 0 {
			rel, found := simd.FindFirstEq(text[p:limit], first)
			if !found {
				return
			}
			c = p + rel
		}

		k := j + simd.PrefixEqLen(text[c+j:c+m], pattern[j:])
		if k == m && !yield(c) {
			return
		}

		j = 0
		skip := 1
		if k > 0 {
			j = failure[k-1]
			skip = k - j
		}
		p = c + skip
	}
}

// CountAll returns the number of overlapping occurrences of pattern in
// text. By convention (matching the reference implementation this engine
// was distilled from) an empty pattern counts as 0, not as one match per
// text position.
func CountAll(text, pattern []byte, failure []int) int {
	n := 0
	SearchAll(text, pattern, failure, func(int) bool {
		n++
		return true
	})
	return n
}

// CollectAll returns every occurrence of pattern in text as an ordered
// slice, equivalent to draining [SearchAll] into a slice.
func CollectAll(text, pattern []byte, failure []int) []int {
	var out []int
	SearchAll(text, pattern, failure, func(pos int) bool {
		out = append(out, pos)
		return true
	})
	return out
}

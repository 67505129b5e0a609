package linex

import "github.com/coregx/linex/kmp"

// Pattern is a precompiled literal pattern: its bytes (copied, never
// borrowed) plus the failure table built from them at construction time.
// It never mutates after construction and is safe to share by reference
// across concurrent readers.
type Pattern struct {
	bytes   []byte
	failure []int
}

// CompileLiteral copies pattern and precomputes its failure table once, so
// repeated searches against the same pattern skip the O(m) build step.
func CompileLiteral(pattern []byte) *Pattern {
	b := append([]byte(nil), pattern...)
	return &Pattern{bytes: b, failure: kmp.BuildFailure(b)}
}

// Bytes returns the pattern's byte sequence.
func (p *Pattern) Bytes() []byte { return p.bytes }

// First returns the offset of pattern's first occurrence in text, or
// (0, false) if absent. An empty pattern always reports (0, true), per the
// convention that the empty string prefixes every string.
func (p *Pattern) First(text []byte) (int, bool) {
	return kmp.Search(text, p.bytes, p.failure)
}

// Contains reports whether pattern occurs anywhere in text.
func (p *Pattern) Contains(text []byte) bool {
	_, ok := p.First(text)
	return ok
}

// Count returns the number of overlapping occurrences of pattern in text.
// An empty pattern counts as 0.
func (p *Pattern) Count(text []byte) int {
	return kmp.CountAll(text, p.bytes, p.failure)
}

// All calls yield for every occurrence of pattern in text, in strictly
// increasing offset order, stopping early if yield returns false. This is
// the lazy, generator-style form; see [Pattern.AllCollected] for the eager
// equivalent.
func (p *Pattern) All(text []byte, yield func(offset int) bool) {
	kmp.SearchAll(text, p.bytes, p.failure, yield)
}

// AllCollected returns every occurrence of pattern in text as an ordered
// slice. It produces exactly the same sequence [Pattern.All] would yield.
func (p *Pattern) AllCollected(text []byte) []int {
	return kmp.CollectAll(text, p.bytes, p.failure)
}

// First returns the offset of pattern's first occurrence in text, without
// requiring a precompiled [Pattern]. Prefer [CompileLiteral] when
// searching the same pattern repeatedly, to amortize the failure-table
// build.
func First(text, pattern []byte) (int, bool) {
	return kmp.Search(text, pattern, kmp.BuildFailure(pattern))
}

// Contains reports whether pattern occurs anywhere in text.
func Contains(text, pattern []byte) bool {
	_, ok := First(text, pattern)
	return ok
}

// Count returns the number of overlapping occurrences of pattern in text.
func Count(text, pattern []byte) int {
	return kmp.CountAll(text, pattern, kmp.BuildFailure(pattern))
}

// All calls yield for every occurrence of pattern in text, in strictly
// increasing offset order.
func All(text, pattern []byte, yield func(offset int) bool) {
	kmp.SearchAll(text, pattern, kmp.BuildFailure(pattern), yield)
}

// AllCollected returns every occurrence of pattern in text as an ordered
// slice.
func AllCollected(text, pattern []byte) []int {
	return kmp.CollectAll(text, pattern, kmp.BuildFailure(pattern))
}

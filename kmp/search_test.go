package kmp

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
)

func search(text, pattern string) (int, bool) {
	return Search([]byte(text), []byte(pattern), BuildFailure([]byte(pattern)))
}

func collect(text, pattern string) []int {
	return CollectAll([]byte(text), []byte(pattern), BuildFailure([]byte(pattern)))
}

func TestEndToEndScenarios(t *testing.T) {
	t.Run("S1", func(t *testing.T) {
		if got := collect("abracadabra", "abra"); !equalInts(got, []int{0, 7}) {
			t.Fatalf("got %v", got)
		}
	})
	t.Run("S2", func(t *testing.T) {
		got := collect("aaaa", "aa")
		if !equalInts(got, []int{0, 1, 2}) {
			t.Fatalf("got %v", got)
		}
		if n := CountAll([]byte("aaaa"), []byte("aa"), BuildFailure([]byte("aa"))); n != 3 {
			t.Fatalf("count = %d, want 3", n)
		}
	})
	t.Run("S3", func(t *testing.T) {
		pos, ok := search("ABABDABACDABABCABAB", "ABABCABAB")
		if !ok || pos != 10 {
			t.Fatalf("got (%d, %v), want (10, true)", pos, ok)
		}
	})
	t.Run("S4", func(t *testing.T) {
		pos, ok := search("hello world", "xyz")
		if ok {
			t.Fatalf("got (%d, %v), want not found", pos, ok)
		}
		if n := CountAll([]byte("hello world"), []byte("xyz"), BuildFailure([]byte("xyz"))); n != 0 {
			t.Fatalf("count = %d, want 0", n)
		}
	})
	t.Run("S5", func(t *testing.T) {
		text := strings.Repeat("a", 100000)
		text = text[:99990] + "needle" + text[99996:]
		pos, ok := search(text, "needle")
		if !ok || pos != 99990 {
			t.Fatalf("got (%d, %v), want (99990, true)", pos, ok)
		}
	})
	t.Run("S6", func(t *testing.T) {
		got := collect("the cat the dog the bird", "the")
		if !equalInts(got, []int{0, 8, 16}) {
			t.Fatalf("got %v", got)
		}
	})
}

func TestEmptyPatternConventions(t *testing.T) {
	pos, ok := search("anything", "")
	if !ok || pos != 0 {
		t.Fatalf("empty pattern Search = (%d, %v), want (0, true)", pos, ok)
	}
	if got := collect("anything", ""); got != nil {
		t.Fatalf("empty pattern CollectAll = %v, want nil", got)
	}
	if n := CountAll([]byte("anything"), []byte(""), nil); n != 0 {
		t.Fatalf("empty pattern CountAll = %d, want 0", n)
	}
}

func TestAllMatchesOrderAndSubstring(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	alphabet := []byte("ab")
	for trial := 0; trial < 200; trial++ {
		textLen := r.Intn(80)
		text := make([]byte, textLen)
		for i := range text {
			text[i] = alphabet[r.Intn(len(alphabet))]
		}
		patLen := 1 + r.Intn(4)
		pattern := make([]byte, patLen)
		for i := range pattern {
			pattern[i] = alphabet[r.Intn(len(alphabet))]
		}

		f := BuildFailure(pattern)
		all := CollectAll(text, pattern, f)

		// Strictly increasing, and each offset is a real occurrence.
		for i, off := range all {
			if off+len(pattern) > len(text) {
				t.Fatalf("offset %d out of range for text len %d, pattern len %d", off, len(text), len(pattern))
			}
			if !bytes.Equal(text[off:off+len(pattern)], pattern) {
				t.Fatalf("offset %d does not match pattern", off)
			}
			if i > 0 && all[i-1] >= off {
				t.Fatalf("offsets not strictly increasing: %v", all)
			}
		}

		// Cross-check against a naive reference scan.
		var want []int
		for i := 0; i+len(pattern) <= len(text); i++ {
			if bytes.Equal(text[i:i+len(pattern)], pattern) {
				want = append(want, i)
			}
		}
		if !equalInts(all, want) {
			t.Fatalf("text=%q pattern=%q: got %v, want %v", text, pattern, all, want)
		}

		// Contains / Search agreement with first element of all-matches.
		pos, ok := Search(text, pattern, f)
		if len(all) == 0 {
			if ok {
				t.Fatalf("Search found %d but CollectAll is empty", pos)
			}
		} else {
			if !ok || pos != all[0] {
				t.Fatalf("Search = (%d, %v), want (%d, true) to match first element of %v", pos, ok, all[0], all)
			}
		}

		if n := CountAll(text, pattern, f); n != len(all) {
			t.Fatalf("CountAll = %d, want %d", n, len(all))
		}
	}
}

func TestWorstCaseBounded(t *testing.T) {
	n := 100000
	text := bytes.Repeat([]byte("a"), n)
	pattern := append(bytes.Repeat([]byte("a"), n/10), 'b')
	_, ok := Search(text, pattern, BuildFailure(pattern))
	if ok {
		t.Fatal("expected no match")
	}
}

func TestSimdAndScalarPathsAgree(t *testing.T) {
	// Exercise both the SIMD-dispatch path (long text) and the scalar-only
	// path (short text, below the dispatch threshold) against the same
	// reference.
	pattern := []byte("needle")
	f := BuildFailure(pattern)

	short := []byte("a needle in a small haystack")
	longText := append(bytes.Repeat([]byte("x"), 500), []byte(" needle ")...)
	longText = append(longText, bytes.Repeat([]byte("y"), 500)...)

	for _, text := range [][]byte{short, longText} {
		want := bytes.Index(text, pattern)
		pos, ok := Search(text, pattern, f)
		if want == -1 {
			if ok {
				t.Fatalf("unexpected match at %d", pos)
			}
			continue
		}
		if !ok || pos != want {
			t.Fatalf("Search(%q) = (%d, %v), want (%d, true)", text, pos, ok, want)
		}
	}
}

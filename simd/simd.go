// Package simd provides width-specialized byte-scan kernels used by the KMP
// search engine to locate candidate match starts and verify candidates.
//
// FindFirstEq's kernels (16/32/64-byte lanes, plus a scalar tail) are built
// from the SWAR (SIMD Within A Register) zero-byte-detection trick: an 8-byte
// word is XORed against a broadcast needle so that matching bytes become
// 0x00, then a single subtraction-and-mask formula flags which byte (if
// any) went to zero. PrefixEqLen's kernels XOR the two inputs word by word
// and locate the first nonzero byte of the XOR with a trailing-zero count.
// Composing those primitives over 2, 4, or 8 words at a
// time gives 16-, 32-, and 64-byte "lanes" without requiring architecture
// assembly: the contract these kernels owe callers is result-identical
// across widths, not instruction-identical, so a portable implementation
// that always returns the lowest-index match satisfies it exactly.
//
// Dispatch picks the widest lane the detected CPU feature level affords
// (internal/cpufeature) and the input is long enough to amortize, then
// drains the remainder with progressively narrower lanes and finally a
// scalar loop. Every code path is reachable on every platform: SIMD level
// only changes which lane width runs the bulk of the work, never the
// result.
package simd

import (
	"encoding/binary"
	"math/bits"

	"github.com/coregx/linex/internal/cpufeature"
)

const (
	lo8 = uint64(0x0101010101010101)
	hi8 = uint64(0x8080808080808080)
)

// minSIMDLen is the input length below which lane dispatch isn't worth the
// setup cost; callers fall straight to the scalar loop.
const minSIMDLen = 64

// FindFirstEq returns the index of the first occurrence of b in buf, or
// (0, false) if buf contains no such byte. An empty buf always reports
// (0, false).
func FindFirstEq(buf []byte, b byte) (int, bool) {
	if len(buf) == 0 {
		return 0, false
	}
	if len(buf) < minSIMDLen {
		return findFirstEqScalar(buf, b)
	}

	pos := 0
	switch cpufeature.SimdLevel() {
	case cpufeature.Avx512:
		if p, ok, n := findFirstEqLane(buf, b, 8); ok {
			return p, true
		} else {
			pos = n
		}
		fallthrough
	case cpufeature.Avx2:
		if p, ok, n := findFirstEqLane(buf[pos:], b, 4); ok {
			return pos + p, true
		} else {
			pos += n
		}
		fallthrough
	case cpufeature.Sse42:
		if p, ok, n := findFirstEqLane(buf[pos:], b, 2); ok {
			return pos + p, true
		} else {
			pos += n
		}
	}
	if p, ok := findFirstEqScalar(buf[pos:], b); ok {
		return pos + p, true
	}
	return 0, false
}

// findFirstEqLane scans buf in chunks of words*8 bytes, each chunk built
// from `words` sequential 8-byte SWAR zero-byte checks. It returns the
// offset of the first match, whether one was found, and (when none was
// found) how many bytes were fully consumed and can be skipped by a
// narrower or scalar fallback.
func findFirstEqLane(buf []byte, b byte, words int) (offset int, found bool, consumed int) {
	chunk := words * 8
	needle := uint64(b) * lo8
	idx := 0
	for idx+chunk <= len(buf) {
		for w := 0; w < words; w++ {
			word := binary.LittleEndian.Uint64(buf[idx+w*8:])
			xor := word ^ needle
			hasZero := (xor - lo8) & ^xor & hi8
			if hasZero != 0 {
				return idx + w*8 + bits.TrailingZeros64(hasZero)/8, true, 0
			}
		}
		idx += chunk
	}
	return 0, false, idx
}

func findFirstEqScalar(buf []byte, b byte) (int, bool) {
	for i, c := range buf {
		if c == b {
			return i, true
		}
	}
	return 0, false
}

// PrefixEqLen returns the length of the maximal common prefix of a and b,
// 0 <= k <= min(len(a), len(b)).
func PrefixEqLen(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n == 0 {
		return 0
	}
	if n < minSIMDLen {
		return prefixEqLenScalar(a[:n], b[:n])
	}

	pos := 0
	switch cpufeature.SimdLevel() {
	case cpufeature.Avx512:
		if k, diff := prefixEqLenLane(a[pos:n], b[pos:n], 8); diff {
			return pos + k
		} else {
			pos += k
		}
		fallthrough
	case cpufeature.Avx2:
		if k, diff := prefixEqLenLane(a[pos:n], b[pos:n], 4); diff {
			return pos + k
		} else {
			pos += k
		}
		fallthrough
	case cpufeature.Sse42:
		if k, diff := prefixEqLenLane(a[pos:n], b[pos:n], 2); diff {
			return pos + k
		} else {
			pos += k
		}
	}
	return pos + prefixEqLenScalar(a[pos:n], b[pos:n])
}

// prefixEqLenLane compares a and b in chunks of words*8 bytes. It returns
// the offset of the first mismatch within the scanned region and whether a
// mismatch was found; when diff is false, k is the number of matching bytes
// consumed and scanning should continue with a or the caller's tail loop.
func prefixEqLenLane(a, b []byte, words int) (k int, diff bool) {
	chunk := words * 8
	n := len(a)
	idx := 0
	for idx+chunk <= n {
		for w := 0; w < words; w++ {
			wa := binary.LittleEndian.Uint64(a[idx+w*8:])
			wb := binary.LittleEndian.Uint64(b[idx+w*8:])
			xor := wa ^ wb
			if xor != 0 {
				// Not all 8 bytes equal: the lowest set bit of the XOR lies
				// in the first *unequal* byte (little-endian load).
				return idx + w*8 + bits.TrailingZeros64(xor)/8, true
			}
		}
		idx += chunk
	}
	return idx, false
}

func prefixEqLenScalar(a, b []byte) int {
	n := len(a)
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

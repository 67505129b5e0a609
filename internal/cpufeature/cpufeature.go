// Package cpufeature probes the host CPU once at first use and caches the
// result for the lifetime of the process.
//
// Detection rides on golang.org/x/sys/cpu, which itself issues the CPUID
// instruction (base leaf and extended leaf 7) and inspects XCR0 for
// OS-enabled wide-vector state: YMM must be enabled for AVX2 to count, and
// YMM+ZMM+opmask for AVX-512. A flag that can't be fully verified reads as
// unsupported — detection fails closed.
package cpufeature

import (
	"sync"

	"golang.org/x/sys/cpu"
)

// Set is the CPU feature flags relevant to byte-scan kernel dispatch.
type Set struct {
	SSE42    bool
	AVX2     bool
	AVX512F  bool
	AVX512BW bool
}

// Level is the widest SIMD tier the dispatcher may use. It is advisory
// only: every kernel has a scalar fallback that returns identical results.
type Level int

const (
	Scalar Level = iota
	Sse42
	Avx2
	Avx512
)

func (l Level) String() string {
	switch l {
	case Sse42:
		return "sse42"
	case Avx2:
		return "avx2"
	case Avx512:
		return "avx512"
	default:
		return "scalar"
	}
}

var (
	once   sync.Once
	cached Set
)

func detect() Set {
	return Set{
		SSE42:    cpu.X86.HasSSE42,
		AVX2:     cpu.X86.HasAVX2,
		AVX512F:  cpu.X86.HasAVX512F,
		AVX512BW: cpu.X86.HasAVX512BW,
	}
}

// Current returns the process-wide cached feature set, computing it on the
// first call. Later calls never re-probe the CPU.
func Current() Set {
	once.Do(func() {
		cached = detect()
	})
	return cached
}

// SimdLevel reports the widest kernel tier Current() makes available.
// AVX-512 requires both the foundation and byte/word instruction subsets,
// since byte-lane kernels need VPCMPB-class instructions from AVX512BW.
func SimdLevel() Level {
	s := Current()
	switch {
	case s.AVX512F && s.AVX512BW:
		return Avx512
	case s.AVX2:
		return Avx2
	case s.SSE42:
		return Sse42
	default:
		return Scalar
	}
}

// LaneWidth returns the byte-scan kernel width, in bytes, associated with a
// SIMD level: 64 for AVX-512, 32 for AVX2, 16 for SSE4.2, 0 for scalar-only.
func (l Level) LaneWidth() int {
	switch l {
	case Avx512:
		return 64
	case Avx2:
		return 32
	case Sse42:
		return 16
	default:
		return 0
	}
}

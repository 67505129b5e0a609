// Package conv provides bounds-checked narrowing conversions for the
// state-ID counters the NFA builder and DFA compiler hand out: both count
// states with a plain int but store the ID as a uint32, and a pattern
// pathological enough to overflow that narrowing is a bug worth a loud
// panic rather than a silently wrapped ID.
package conv

import "math"

// IntToUint32 converts n to uint32, panicking if n is negative or would
// overflow uint32. n is a state count taken from len(slice), so a panic
// here means a single program grew past four billion states.
func IntToUint32(n int) uint32 {
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("conv: int value out of uint32 range")
	}
	return uint32(n)
}

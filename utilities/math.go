// Package utilities holds a small numeric helper shared by the dictionary
// index's count accumulation: a saturating add that implements the
// overflow-clamp behavior §7 requires.
package utilities

import "math"

// ClampAddInt64 adds b to a, saturating at math.MaxInt64 instead of
// wrapping. Used to accumulate dictionary term counts without ever raising
// on overflow, per the count-accumulation error kind.
func ClampAddInt64(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	if b < 0 && a < math.MinInt64-b {
		return math.MinInt64
	}
	return a + b
}

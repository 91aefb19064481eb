// File: search.go
// Role: Bound-finding and binary search over the oracle, grounded on
// opt/ratcatcher.py's _carving_width_bounds / _binarysearchcw /
// _log_binarysearchcw / _carving_width_found.

package carving

import "math"

// bounds finds (low, high) such that low < carvingWidth <= high, doubling
// high until the oracle accepts it. lowSeed is the graph's max cutweight
// (the carving width's unconditional lower bound).
//
// Grounded on _carving_width_bounds: if the oracle already accepts lowSeed
// itself, (lowSeed, lowSeed) is returned as a degenerate already-found
// window (the original's defensive branch for when the cutweight lower
// bound happens to already be a strict upper bound).
func bounds(oracle Oracle, lowSeed float64) (low, high float64) {
	low = lowSeed
	if oracle.Decide(low) {
		return low, low
	}

	high = 2
	for high <= low {
		high *= 2
	}
	for !oracle.Decide(high) {
		low = high
		high *= 2
	}

	return low, high
}

// SearchInt performs the integer binary search (_binarysearchcw): given a
// window low < cw <= high, it narrows until high-low <= 1 and returns high.
// Matches the original's literal return value: the caller treats high-1 as
// the carving width when operating in the untransformed (non-log) weight
// domain, per opt/ratcatcher.py's display-only "carving-width = k-1" line.
func SearchInt(oracle Oracle, lowSeed float64) float64 {
	low, high := bounds(oracle, lowSeed)
	for high-low > 1 {
		mid := math.Floor((low + high) / 2)
		if oracle.Decide(mid) {
			high = mid
		} else {
			low = mid
		}
	}

	return high
}

// SearchLog performs the floating-point binary search over log2-rescaled
// weights (_log_binarysearchcw), terminating once round(2^high) ==
// round(2^low) (carvingWidthFound) and returning log2 of the rounded
// carving width, i.e. k in the same log2 domain as the oracle's graph, plus
// whether that value is exact (always true here, since carvingWidthFound
// only succeeds on an exact integer match).
func SearchLog(oracle Oracle, lowSeed float64) (k float64, exact bool) {
	low, high := bounds(oracle, lowSeed)
	for !carvingWidthFound(low, high) {
		mid := (low + high) / 2.0
		if mid == low || mid == high {
			mid = high
			low = high
		}
		if oracle.Decide(mid) {
			high = mid
		} else {
			low = mid
		}
	}

	spaceBottleneck := math.Round(math.Exp2(high))

	return math.Log2(spaceBottleneck), true
}

// carvingWidthFound reports whether the window [low, high] has narrowed to
// where 2^high and 2^low round to the same integer, pinning down the exact
// (un-logged) carving width.
func carvingWidthFound(low, high float64) bool {
	spaceBottleneck := math.Round(math.Exp2(high))
	spaceBottleneckLb := math.Round(math.Exp2(low))

	return spaceBottleneck-spaceBottleneckLb == 0
}

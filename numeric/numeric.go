// File: numeric.go
// Role: Weight rescaling, float comparison, and RNG construction shared by
// carving, driver, and orchestrator.

package numeric

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/carvewidth/core"
)

// ZeroEpsilon nudges a carving-width bound that must strictly exceed an
// integer candidate k, matching opt/ratcatcher.py's zero_epsilon constant:
// too large and the binary search's _carving_width_found assertion can
// fail; too small and it underflows into k's own float64 representation.
const ZeroEpsilon = 1.0e-11

// Log2Weights returns a copy of g with every edge weight replaced by its
// base-2 logarithm, the transform carving_width applies before running the
// float-insensitive _log_binarysearchcw search.
func Log2Weights(g *core.Graph) (*core.Graph, error) {
	return g.ApplyWeights(func(w float64) float64 { return math.Log2(w) })
}

// Exp2Weights is Log2Weights' inverse, mapping log2-rescaled weights back
// to the original (non-logged) weight domain.
func Exp2Weights(g *core.Graph) (*core.Graph, error) {
	return g.ApplyWeights(func(w float64) float64 { return math.Exp2(w) })
}

// IsClose reports whether a and b agree within |a-b| <= atol + rtol*|b|,
// the same element-wise tolerance contract as matrix.AllClose. Negative
// tolerances are normalized to their absolute value.
func IsClose(a, b, rtol, atol float64) bool {
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// NewRNG constructs a *rand.Rand from an explicit seed. Callers thread this
// value through driver.Run rather than relying on package-global random
// state, so a reproducible seed makes an entire edge-contraction search
// deterministic.
func NewRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(int64(seed)))
}

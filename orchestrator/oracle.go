// File: oracle.go
// Role: ratcatcherOracle, adapting ratcatcher.Decide's (bool, error) result
// into carving.Oracle's bare-bool Decide(k float64) bool contract. A
// carving-width search cannot itself recover from a mid-search error (the
// window state has no rollback), so the oracle latches the first error and
// answers false to every subsequent Decide call; Optimize checks the latch
// once the search returns.

package orchestrator

import (
	"github.com/katalvlaran/carvewidth/apsp"
	"github.com/katalvlaran/carvewidth/core"
	"github.com/katalvlaran/carvewidth/dual"
	"github.com/katalvlaran/carvewidth/ratcatcher"
)

type ratcatcherOracle struct {
	g    *core.Graph
	d    *dual.Dual
	dist *apsp.Table
	err  error
}

func (o *ratcatcherOracle) Decide(k float64) bool {
	if o.err != nil {
		return false
	}

	ok, err := ratcatcher.Decide(o.g, o.d, o.dist, k)
	if err != nil {
		o.err = err

		return false
	}

	return ok
}

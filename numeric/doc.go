// Package numeric collects the small numeric helpers shared across the
// carving-width synthesizer: log-domain weight rescaling, float tolerance
// comparison, and explicit-seed RNG construction. Grounded in style on
// matrix.AllClose (tolerance contract) and builder's explicit-*rand.Rand
// convention (no package-global RNG state).
package numeric

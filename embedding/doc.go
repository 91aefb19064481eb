// Package embedding turns a combinatorial embedding of a planar graph into
// its set of faces.
//
// A combinatorial embedding is, for every vertex, the cyclic (say,
// clockwise) order in which its incident edges leave it. Computing that
// rotation system from raw coordinates or from a planarity test is outside
// this package's scope (the spec it implements explicitly treats it as
// "computed via any standard planarity routine" and hands it in); this
// package only traces faces out of a RotationSystem that the caller
// already holds, and checks the result against Euler's formula.
package embedding

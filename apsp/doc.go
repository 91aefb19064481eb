// Package apsp computes all-pairs shortest-path distances over the planar
// dual (Component D), delegating to gonum's Floyd-Warshall implementation
// over the dual's min-reduced weighted projection — the same reduction the
// original implementation's Dual.shortest_paths() performs before running
// all-pairs shortest paths, since a heavier parallel edge never appears on a
// shortest path.
package apsp

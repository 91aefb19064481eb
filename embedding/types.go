// File: types.go
// Role: RotationSystem and Face types.

package embedding

import (
	"errors"
	"sort"
	"strings"
)

// ErrMissingRotation indicates a vertex of the graph has no entry (or an
// empty entry) in the supplied RotationSystem.
var ErrMissingRotation = errors.New("embedding: vertex missing from rotation system")

// ErrNotInRotation indicates a half-edge (u,v) was requested but u does not
// appear among v's recorded neighbors, so no rotation successor exists.
var ErrNotInRotation = errors.New("embedding: endpoint absent from neighbor's rotation")

// ErrEulerViolation indicates the traced faces fail Euler's formula
// |V| - |E| + |F| = 2, meaning the supplied rotation system does not
// correspond to a valid planar embedding of the graph.
var ErrEulerViolation = errors.New("embedding: traced faces violate Euler's formula")

// RotationSystem maps each vertex ID to the cyclic order of its neighbors
// around it, one entry per incident edge (parallel edges would need
// repeated entries; this synthesizer's graphs never carry them, see
// core.NewPlanarGraph). The order is assumed clockwise; tracing with the
// opposite convention still yields a valid face partition, only mirrored.
type RotationSystem map[string][]string

// Face is one region of the planar embedding: a cyclic walk of vertices
// where consecutive entries (wrapping around) are edges of the primal
// graph. A bridge appears on both sides of the same face, so a vertex may
// repeat within Walk.
type Face struct {
	// Walk is the cyclic vertex sequence bounding this face.
	Walk []string

	// Key canonically identifies this face by its edge set, irrespective of
	// starting point or direction: Faces with the same Key enclose the same
	// set of primal edges.
	Key string
}

// Edges returns the face's boundary as canonicalized (min, max) endpoint
// pairs, in walk order.
func (f *Face) Edges() [][2]string {
	out := make([][2]string, len(f.Walk))
	for i, v := range f.Walk {
		w := f.Walk[(i+1)%len(f.Walk)]
		out[i] = canonEdge(v, w)
	}

	return out
}

// Incident reports whether vertex v lies on face f's boundary.
func (f *Face) Incident(v string) bool {
	for _, u := range f.Walk {
		if u == v {
			return true
		}
	}

	return false
}

func canonEdge(u, v string) [2]string {
	if u <= v {
		return [2]string{u, v}
	}

	return [2]string{v, u}
}

// faceKey builds the canonical, rotation-and-direction-independent key for
// a face from its (unordered) edge multiset.
func faceKey(edges [][2]string) string {
	strs := make([]string, len(edges))
	for i, e := range edges {
		strs[i] = e[0] + "\x00" + e[1]
	}
	sort.Strings(strs)

	return strings.Join(strs, "\x01")
}

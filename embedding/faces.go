// File: faces.go
// Role: Half-edge face tracing (Component B: Face enumerator).
// AI-HINT (file):
//   - Faces() walks every undirected edge in both directions exactly once;
//     each directed half-edge belongs to exactly one face, so the unbounded
//     outer face is produced automatically, not special-cased.
//   - Result order is deterministic: faces are emitted in the order their
//     first half-edge is first encountered while scanning core.Graph.Edges()
//     (itself sorted by Edge.ID).

package embedding

import (
	"fmt"

	"github.com/katalvlaran/carvewidth/core"
)

type halfEdge struct{ from, to string }

// Faces traces every face of g under the combinatorial embedding rot.
//
// Steps:
//  1. For every primal edge, in both orientations, trace the face starting
//     at that half-edge unless it was already consumed by a previous trace.
//  2. Each trace walks forward via rotationSuccessor until it returns to its
//     starting half-edge.
//  3. Verify Euler's formula |V| - |E| + |F| == 2 as a postcondition.
//
// Complexity: O(E) half-edges visited once each, O(d) per successor lookup.
func Faces(g *core.Graph, rot RotationSystem) ([]*Face, error) {
	if g == nil {
		return nil, nil
	}
	visited := make(map[halfEdge]bool, 2*g.EdgeCount())
	var faces []*Face

	for _, e := range g.Edges() {
		for _, start := range [][2]string{{e.From, e.To}, {e.To, e.From}} {
			if visited[halfEdge{start[0], start[1]}] {
				continue
			}
			walk, err := traceFace(rot, start[0], start[1], visited)
			if err != nil {
				return nil, fmt.Errorf("embedding: Faces: %w", err)
			}
			faces = append(faces, newFace(walk))
		}
	}

	v, edgeCount, f := g.VertexCount(), g.EdgeCount(), len(faces)
	if v-edgeCount+f != 2 {
		return faces, fmt.Errorf("%w: |V|=%d -|E|=%d +|F|=%d = %d", ErrEulerViolation, v, edgeCount, f, v-edgeCount+f)
	}

	return faces, nil
}

// traceFace walks the face that starts by leaving v along the half-edge
// (v,w), marking every half-edge it consumes, until it is about to retrace
// (v,w) again.
func traceFace(rot RotationSystem, v, w string, visited map[halfEdge]bool) ([]string, error) {
	var walk []string
	prev, cur := v, w
	for {
		if prev == v && cur == w && len(walk) > 0 {
			break // back at the starting half-edge: the face is closed
		}
		visited[halfEdge{prev, cur}] = true
		walk = append(walk, prev)
		next, err := rotationSuccessor(rot, cur, prev)
		if err != nil {
			return nil, err
		}
		prev, cur = cur, next
	}

	return walk, nil
}

// rotationSuccessor returns the neighbor that follows `prev` in cur's cyclic
// rotation order: the next half-edge to take when arriving at cur from prev
// while tracing a face.
func rotationSuccessor(rot RotationSystem, cur, prev string) (string, error) {
	ring, ok := rot[cur]
	if !ok || len(ring) == 0 {
		return "", fmt.Errorf("%w: %q", ErrMissingRotation, cur)
	}
	for i, nbr := range ring {
		if nbr == prev {
			return ring[(i+1)%len(ring)], nil
		}
	}

	return "", fmt.Errorf("%w: %q not adjacent to %q in rotation", ErrNotInRotation, prev, cur)
}

func newFace(walk []string) *Face {
	f := &Face{Walk: walk}
	f.Key = faceKey(f.Edges())

	return f
}

// File: medial.go
// Role: Medial graph construction, a SUPPLEMENTED feature (not itself a
// spec component) grounded on opt/ratcatcher.py's test helper `medial`: one
// vertex per primal edge, with two medial vertices joined whenever their
// primal edges are consecutive on some face's boundary. Used only by tests
// exercising the Hicks-benchmark-style branchwidth-via-carving-width
// relationship; never imported by non-test code.

package dual

import (
	"strings"

	"github.com/katalvlaran/carvewidth/core"
	"github.com/katalvlaran/carvewidth/embedding"
)

// Medial builds g's medial graph from its already-traced faces: one vertex
// per primal edge (named by its canonical endpoint pair), one unit-weight
// edge per pair of primal edges that are consecutive on a common face.
func Medial(g *core.Graph, faces []*embedding.Face) *core.Graph {
	out := core.NewGraph(core.WithWeighted())

	for _, e := range g.Edges() {
		_ = out.AddVertex(medialName(e.From, e.To))
	}

	seen := make(map[[2]string]bool)
	for _, f := range faces {
		boundary := f.Edges()
		n := len(boundary)
		for i := 0; i < n; i++ {
			a := medialName(boundary[i][0], boundary[i][1])
			b := medialName(boundary[(i+1)%n][0], boundary[(i+1)%n][1])
			if a == b {
				continue // a bridge's two boundary appearances are the same primal edge
			}
			key := [2]string{a, b}
			if a > b {
				key = [2]string{b, a}
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			_, _ = out.AddEdge(a, b, 1)
		}
	}

	return out
}

func medialName(u, v string) string {
	if u > v {
		u, v = v, u
	}

	return strings.Join([]string{u, v}, "\x00")
}

package dfs

import (
	"github.com/katalvlaran/carvewidth/core"
)

// IsBiconnected reports whether undirected graph g is biconnected: connected,
// with at least 2 vertices, and with no articulation vertex (removing any
// single vertex leaves the rest connected). A graph with fewer than 2
// vertices is trivially considered biconnected.
//
// Implementation: classic Tarjan low-link articulation-point sweep, adapted
// from DFS's traverse walker. A single root's DFS tree with >1 root-child
// means the root is itself an articulation point (disconnects its subtrees).
//
// Complexity: Time O(V+E), Space O(V).
func IsBiconnected(g *core.Graph) bool {
	if g == nil {
		return false
	}
	vertices := g.Vertices()
	if len(vertices) < 2 {
		return true
	}

	b := &biconnWalker{
		graph:   g,
		disc:    make(map[string]int, len(vertices)),
		low:     make(map[string]int, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
	}

	root := vertices[0]
	b.visit(root, "", 0)

	// Unreachable vertex from root means g is disconnected.
	if len(b.visited) != len(vertices) {
		return false
	}
	// The DFS root is an articulation point iff it has more than one child
	// in the DFS tree: 2+ subtrees hanging off it that only connect through it.
	if b.rootChildren > 1 {
		return false
	}

	return !b.hasArticulation
}

type biconnWalker struct {
	graph *core.Graph

	disc    map[string]int
	low     map[string]int
	visited map[string]bool
	timer   int

	rootChildren    int
	hasArticulation bool
}

// visit runs one DFS step from id, whose DFS-tree parent is parent (empty
// for the root). depth distinguishes the root (depth 0) to count its
// children separately from the general articulation-point rule.
func (b *biconnWalker) visit(id, parent string, depth int) {
	b.visited[id] = true
	b.disc[id] = b.timer
	b.low[id] = b.timer
	b.timer++

	nbs, err := b.graph.Neighbors(id)
	if err != nil {
		return
	}

	for _, e := range nbs {
		nid := e.To
		if nid == id {
			nid = e.From // undirected edge is stored once; seen from its To end
		}
		if nid == id {
			continue // self-loop: never relevant to biconnectivity
		}
		if nid == parent {
			// Skip exactly one edge back to the immediate parent — a
			// distinct parallel edge to the parent would still count as a
			// back edge, but core.Graph forbids multi-edges here.
			continue
		}

		if !b.visited[nid] {
			if depth == 0 {
				b.rootChildren++
			}
			b.visit(nid, id, depth+1)

			if b.low[nid] < b.low[id] {
				b.low[id] = b.low[nid]
			}
			if depth > 0 && b.low[nid] >= b.disc[id] {
				b.hasArticulation = true
			}
		} else if b.disc[nid] < b.low[id] {
			b.low[id] = b.disc[nid]
		}
	}
}

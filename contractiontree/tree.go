// File: tree.go
// Role: Tree, NodeID, and leaf initialization, grounded on
// opt/contraction.py:ContractionTree.__init__/_init_leaves.

package contractiontree

import "github.com/katalvlaran/carvewidth/core"

// NodeID is an opaque handle into Tree's node arena.
type NodeID int

// noNode marks the absence of a child/parent/argmin node, the handle
// equivalent of Python's None.
const noNode NodeID = -1

// Pair is an ordered contraction step (u absorbs v), the unit MemoryOrdering
// and the contractor package exchange.
type Pair struct {
	U, V string
}

// treeNodeData is one arena entry: the bag of original graph vertices a
// tree node represents. Leaves have a single-element bag; the synthetic
// root inserted by Reroot has an empty bag (it represents no contraction).
type treeNodeData struct {
	bag []string
}

// Tree incrementally records a sequence of vertex contractions over g as a
// binary tree, then (via Reroot/SetParentChild/MemoryOrdering) exposes it as
// a rooted tree with a memory-efficient bottom-up evaluation order.
type Tree struct {
	g *core.Graph

	arena      []treeNodeData
	treeNodeOf map[string]NodeID // graph vertex -> its current (living) tree node
	adjacency  map[NodeID][]NodeID
	history    map[NodeID][2]string
	edgeCuts   map[NodeID]map[[2]string]bool
	cs         map[NodeID]float64
	edgeWeight map[[2]string]float64 // original graph edge weights, fixed for the tree's lifetime

	hasArgmin bool
	argmin    NodeID
	argminCut float64

	freeRoot NodeID // the last node fused by Contract: the free tree's natural (pre-reroot) root

	leftChild  map[NodeID]NodeID
	rightChild map[NodeID]NodeID
	parentOf   map[NodeID]NodeID

	root NodeID // set by Reroot; noNode until then
}

// New builds a Tree over g's vertex set, one leaf per vertex, each leaf's
// edge cut and cutweight seeded from g's edges incident to that vertex.
func New(g *core.Graph) *Tree {
	t := &Tree{
		g:          g,
		treeNodeOf: make(map[string]NodeID),
		adjacency:  make(map[NodeID][]NodeID),
		history:    make(map[NodeID][2]string),
		edgeCuts:   make(map[NodeID]map[[2]string]bool),
		cs:         make(map[NodeID]float64),
		edgeWeight: make(map[[2]string]float64, g.EdgeCount()),
		leftChild:  make(map[NodeID]NodeID),
		rightChild: make(map[NodeID]NodeID),
		parentOf:   make(map[NodeID]NodeID),
		freeRoot:   noNode,
		root:       noNode,
	}
	for _, e := range g.Edges() {
		t.edgeWeight[canon(e.From, e.To)] = e.Weight
	}
	t.initLeaves()

	return t
}

func (t *Tree) newNode(bag []string) NodeID {
	id := NodeID(len(t.arena))
	t.arena = append(t.arena, treeNodeData{bag: bag})

	return id
}

// initLeaves seeds one leaf tree node per vertex of g not already present
// (idempotent: FinalizeRemaining's minor shares g's original vertex set, so
// calling this again is a guaranteed no-op, matching the original's
// harmless repeated _init_leaves() call in contract_remaining).
func (t *Tree) initLeaves() {
	for _, v := range t.g.Vertices() {
		if _, ok := t.treeNodeOf[v]; ok {
			continue
		}
		id := t.newNode([]string{v})
		t.treeNodeOf[v] = id

		edges, err := t.g.Neighbors(v)
		if err != nil {
			continue // v isolated or absent; an empty cut is the correct leaf state
		}
		cut := make(map[[2]string]bool, len(edges))
		var cs float64
		for _, e := range edges {
			key := canon(e.From, e.To)
			cut[key] = true
			cs += e.Weight
		}
		t.edgeCuts[id] = cut
		t.cs[id] = cs
		if !t.hasArgmin || cs < t.argminCut {
			t.hasArgmin = true
			t.argmin = id
			t.argminCut = cs
		}
	}
}

func (t *Tree) bag(id NodeID) []string { return t.arena[id].bag }

// RootNode returns the node set by the most recent Reroot call, or noNode if
// Reroot has not yet been called.
func (t *Tree) RootNode() NodeID { return t.root }

// Bag exposes a tree node's represented original-graph vertex set.
func (t *Tree) Bag(id NodeID) []string { return t.arena[id].bag }

func (t *Tree) addEdge(a, b NodeID) {
	t.adjacency[a] = append(t.adjacency[a], b)
	t.adjacency[b] = append(t.adjacency[b], a)
}

func (t *Tree) removeEdge(a, b NodeID) {
	t.adjacency[a] = removeFirst(t.adjacency[a], b)
	t.adjacency[b] = removeFirst(t.adjacency[b], a)
}

func removeFirst(xs []NodeID, x NodeID) []NodeID {
	for i, v := range xs {
		if v == x {
			return append(xs[:i], xs[i+1:]...)
		}
	}

	return xs
}

func canon(u, v string) [2]string {
	if u <= v {
		return [2]string{u, v}
	}

	return [2]string{v, u}
}

func symDiff(a, b map[[2]string]bool) map[[2]string]bool {
	out := make(map[[2]string]bool, len(a)+len(b))
	for k := range a {
		if !b[k] {
			out[k] = true
		}
	}
	for k := range b {
		if !a[k] {
			out[k] = true
		}
	}

	return out
}

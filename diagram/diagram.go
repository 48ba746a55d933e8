// Package diagram exports a snapshot of a HashLife universe's quadtree
// as a Mermaid diagram, letting the node-sharing that canonicalisation
// produces be inspected visually: two branches of the tree that refer
// to the same interned node render as a single box with two incoming
// edges.
package diagram

import (
	"fmt"

	"github.com/rogpeppe/hashlife"
	"github.com/rogpeppe/hashlife/internal/universe"
	"github.com/rogpeppe/hashlife/mermaid"
)

// edge connects two nodes of the snapshot. Each node carries its level
// below the root alongside its NodeRef; a NodeRef always denotes a node
// of one depth, so every occurrence of a given NodeRef has the same
// level and renders as the same box.
type edge struct {
	from, to node
}

type node struct {
	ref   universe.NodeRef
	level uint
}

// Snapshot adapts a HashLife's quadtree to mermaid.GraphInterface,
// expanding branches down to maxDepth levels below the root.
type Snapshot struct {
	store    *universe.Store
	maxDepth uint
	nodes    []node
	children map[node][]edge
}

// NewSnapshot builds a Snapshot of h's quadtree, stopping recursion
// maxDepth levels below the root (nodes at that depth render as leaf
// boxes summarising their population instead of being expanded
// further).
func NewSnapshot(h *hashlife.HashLife, maxDepth uint) *Snapshot {
	store, root, _ := h.Universe()
	s := &Snapshot{
		store:    store,
		maxDepth: maxDepth,
		children: make(map[node][]edge),
	}
	s.walk(node{ref: root, level: 0})
	return s
}

func (s *Snapshot) walk(n node) {
	if _, ok := s.children[n]; ok {
		return
	}
	s.children[n] = nil
	s.nodes = append(s.nodes, n)
	if n.level >= s.maxDepth || !s.store.IsBranch(n.ref) {
		return
	}
	for _, child := range s.store.Children(n.ref) {
		c := node{ref: child, level: n.level + 1}
		s.children[n] = append(s.children[n], edge{from: n, to: c})
		s.walk(c)
	}
}

// AllNodes implements mermaid.GraphInterface.
func (s *Snapshot) AllNodes() []node {
	return s.nodes
}

// NodeInfo implements mermaid.GraphInterface.
func (s *Snapshot) NodeInfo(n node) mermaid.NodeInfo {
	id := fmt.Sprintf("n%d_%d", n.level, n.ref)
	text := fmt.Sprintf("pop=%d", s.store.Population(n.ref))
	if !s.store.IsBranch(n.ref) {
		text = fmt.Sprintf("alive=%v", s.store.Alive(n.ref))
	}
	return mermaid.NodeInfo{ID: id, Text: text}
}

// EdgesFrom implements graph.Graph.
func (s *Snapshot) EdgesFrom(n node) ([]edge, bool) {
	edges, ok := s.children[n]
	return edges, ok
}

// Nodes implements graph.Graph.
func (s *Snapshot) Nodes(e edge) (from, to node) {
	return e.from, e.to
}

// CmpNode implements graph.Graph.
func (s *Snapshot) CmpNode(n0, n1 node) int {
	switch {
	case n0.level != n1.level:
		if n0.level < n1.level {
			return -1
		}
		return 1
	case n0.ref < n1.ref:
		return -1
	case n0.ref > n1.ref:
		return 1
	}
	return 0
}

// Marshal renders the snapshot as a Mermaid flowchart.
func (s *Snapshot) Marshal() ([]byte, error) {
	return mermaid.NewGraph[node, edge](s).MarshalMermaid()
}

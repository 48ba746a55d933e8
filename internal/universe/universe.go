// Package universe implements the hash-consed quadtree store at the
// heart of the HashLife engine: an append-only arena of nodes keyed by
// compact indices, canonicalised so that structurally equal nodes
// always share a single handle, plus the navigation and step
// operators that read and derive new trees from it.
package universe

import "github.com/rogpeppe/hashlife/internal/p3"

// NodeRef is an opaque, comparable handle to a node in a Store. Two
// NodeRefs from the same Store are equal if and only if the nodes they
// denote are structurally equal (the canonicalisation invariant).
//
// The zero NodeRef is the canonical dead leaf: New interns it before
// any other node, so it is node 0 of every Store.
type NodeRef uint32

// node is either a leaf (a single cell) or a branch (four children in
// NW, NE, SW, SE order). A leaf's children array is unused; a branch
// with a zero children array is the all-dead depth-1 node, whose four
// children are the dead leaf NodeRef 0.
type node struct {
	alive    bool
	isBranch bool
	children [4]NodeRef
}

// key is the canonicalisation key for a node value: the intern table
// maps key to NodeRef so that structurally equal nodes collapse to a
// single handle. It is a plain comparable Go value, so it can be used
// directly as a map key without any hashing machinery of its own.
type key struct {
	alive    bool
	isBranch bool
	children [4]NodeRef
}

func keyOf(n node) key {
	return key{alive: n.alive, isBranch: n.isBranch, children: n.children}
}

// Store is the interned node store at the heart of the engine. The
// zero Store is not usable; construct one with New.
type Store struct {
	nodes       []node
	populations []uint64
	interned    map[key]NodeRef
	emptyTrees  []NodeRef

	// nextGen memoises the step operator: nextGen[nextGenKey{h, superspeed}]
	// is the correct central-subquadrant successor of h under the
	// generation policy selected by superspeed.
	nextGen map[nextGenKey]NodeRef
}

type nextGenKey struct {
	h          NodeRef
	superspeed bool
}

// New returns an empty Store, already containing the canonical depth-0
// dead leaf.
func New() *Store {
	s := &Store{
		interned: make(map[key]NodeRef),
		nextGen:  make(map[nextGenKey]NodeRef),
	}
	s.Empty(0)
	return s
}

// intern deterministically returns the unique handle for a node value,
// appending it to the store and computing its population on first
// sight. Structurally equal nodes always share a handle.
func (s *Store) intern(n node) NodeRef {
	k := keyOf(n)
	if r, ok := s.interned[k]; ok {
		return r
	}
	var population uint64
	if n.isBranch {
		for _, c := range n.children {
			population += s.populations[c]
		}
	} else if n.alive {
		population = 1
	}
	s.nodes = append(s.nodes, n)
	s.populations = append(s.populations, population)
	r := NodeRef(len(s.nodes) - 1)
	s.interned[k] = r
	return r
}

func (s *Store) internLeaf(alive bool) NodeRef {
	return s.intern(node{alive: alive})
}

func (s *Store) internBranch(children [4]NodeRef) NodeRef {
	return s.intern(node{isBranch: true, children: children})
}

// Empty returns the canonical all-dead node of depth z, lazily building
// and caching empty[0..=z].
func (s *Store) Empty(z uint) NodeRef {
	for uint(len(s.emptyTrees)) <= z {
		var r NodeRef
		if len(s.emptyTrees) == 0 {
			r = s.internLeaf(false)
		} else {
			prev := s.emptyTrees[len(s.emptyTrees)-1]
			r = s.internBranch([4]NodeRef{prev, prev, prev, prev})
		}
		s.emptyTrees = append(s.emptyTrees, r)
	}
	return s.emptyTrees[z]
}

// Population returns the number of live cells in the subtree rooted at h.
func (s *Store) Population(h NodeRef) uint64 {
	return s.populations[h]
}

// Alive returns the cell state of the leaf h. It panics if h is a branch.
func (s *Store) Alive(h NodeRef) bool {
	n := s.nodes[h]
	if n.isBranch {
		panic("universe: Alive called on a branch node")
	}
	return n.alive
}

// Children returns the four children of the branch h. It panics if h is
// a leaf.
func (s *Store) Children(h NodeRef) [4]NodeRef {
	n := s.nodes[h]
	if !n.isBranch {
		panic("universe: Children called on a leaf node")
	}
	return n.children
}

// IsBranch reports whether h denotes a branch node (as opposed to a leaf).
func (s *Store) IsBranch(h NodeRef) bool {
	return s.nodes[h].isBranch
}

// GetNode repeatedly descends p while indexing the appropriate child of
// the current node, returning the resulting handle. It is a pure read:
// the store is never mutated.
func (s *Store) GetNode(h NodeRef, p p3.P3) NodeRef {
	for {
		i, next, ok := p.Descend()
		if !ok {
			return h
		}
		h = s.Children(h)[i]
		p = next
	}
}

// SetBit returns a new root equal to h everywhere except at the cell
// addressed by p, where the cell becomes alive. It reinterns the path
// from the leaf back to the root.
func (s *Store) SetBit(h NodeRef, p p3.P3) NodeRef {
	type spineFrame struct {
		children [4]NodeRef
		i        int
	}
	var spine []spineFrame
	for {
		i, next, ok := p.Descend()
		if !ok {
			break
		}
		children := s.Children(h)
		spine = append(spine, spineFrame{children, i})
		h = children[i]
		p = next
	}
	h = s.internLeaf(true)
	for i := len(spine) - 1; i >= 0; i-- {
		f := spine[i]
		f.children[f.i] = h
		h = s.internBranch(f.children)
	}
	return h
}

// ExpandUniverse returns a depth-(level+1) node whose centre subquadrant
// equals h (a depth-level node) and whose eight surrounding
// depth-(level-1) subquadrants are all dead.
func (s *Store) ExpandUniverse(level uint, h NodeRef) NodeRef {
	children := s.Children(h)
	border := s.Empty(level - 1)
	quadrants := [4]NodeRef{
		s.internBranch([4]NodeRef{border, border, border, children[0]}),
		s.internBranch([4]NodeRef{border, border, children[1], border}),
		s.internBranch([4]NodeRef{border, children[2], border, border}),
		s.internBranch([4]NodeRef{children[3], border, border, border}),
	}
	return s.internBranch(quadrants)
}

// Reframe returns a depth-z' node whose cells are a crop of h centred at
// the cell addressed by p (whose own depth, p.Z, names the depth within
// h at which the crop's corners are looked up), built by recursion on
// the requested output depth z'.
func (s *Store) Reframe(h NodeRef, p p3.P3, z uint) NodeRef {
	lookupDepth := p.Z
	p.Z = z
	type frame struct {
		p            p3.P3
		canonicalise bool
	}
	var done []NodeRef
	todo := []frame{{p: p}}
	for len(todo) > 0 {
		f := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		if f.canonicalise {
			children := [4]NodeRef{done[len(done)-4], done[len(done)-3], done[len(done)-2], done[len(done)-1]}
			done = done[:len(done)-4]
			done = append(done, s.internBranch(children))
			continue
		}
		if qs, ok := f.p.Quadrants(); ok {
			todo = append(todo, frame{canonicalise: true})
			for i := len(qs) - 1; i >= 0; i-- {
				todo = append(todo, frame{p: qs[i]})
			}
		} else {
			done = append(done, s.GetNode(h, p3.P3{Y: f.p.Y, X: f.p.X, Z: lookupDepth}))
		}
	}
	return done[0]
}

// Package hashlife implements Conway's Game of Life on a hash-consed
// quadtree, following the classic HashLife construction: each node is
// canonicalised so that structurally identical subtrees share a single
// handle, and generations are advanced by a memoized operator that
// exploits both the spatial and temporal redundancy that canonicalisation
// exposes.
package hashlife

import (
	"iter"

	"github.com/rogpeppe/hashlife/internal/p3"
	"github.com/rogpeppe/hashlife/internal/universe"
)

// Point is a cell coordinate in the infinite plane.
type Point struct {
	Y, X int
}

// HashLife is a Game-of-Life universe. The zero value is not usable;
// construct one with New or ParsePattern.
type HashLife struct {
	store *universe.Store
	root  universe.NodeRef
	depth uint
}

// New returns an empty universe.
func New() *HashLife {
	store := universe.New()
	depth := uint(2)
	return &HashLife{
		store: store,
		root:  store.Empty(depth),
		depth: depth,
	}
}

// Depth returns the current depth of the root node: the universe spans
// cells in [-2^(depth-1), 2^(depth-1))^2.
func (h *HashLife) Depth() uint {
	return h.depth
}

// Universe exposes h's backing node store, root handle and depth for
// packages (such as diagram) that need to walk the quadtree's actual
// sharing structure rather than just its logical contents.
func (h *HashLife) Universe() (*universe.Store, universe.NodeRef, uint) {
	return h.store, h.root, h.depth
}

// Population returns the number of live cells.
func (h *HashLife) Population() uint64 {
	return h.store.Population(h.root)
}

// expand doubles the universe's span, keeping the existing contents
// centred and surrounding them with dead cells.
func (h *HashLife) expand() {
	h.root = h.store.ExpandUniverse(h.depth, h.root)
	h.depth++
}

// SetBit marks the cell at p alive, expanding the universe first if p
// falls outside its current span.
func (h *HashLife) SetBit(p Point) {
	for !(p3.P3{Y: p.Y, X: p.X, Z: h.depth}).WithinTree() {
		h.expand()
	}
	h.root = h.store.SetBit(h.root, p3.P3{Y: p.Y, X: p.X, Z: h.depth})
}

// Step advances the universe by 2^log2Steps generations.
//
// The implementation follows the standard HashLife recipe: grow the
// universe until the step operator's recursion has enough border to
// work with, verify by reframing that nothing alive reaches the
// border (growing once more if it does), grow once more
// unconditionally so the result after stepping still has a safe
// all-dead border, then invoke the memoized step operator and record
// that the root has shrunk by one level.
func (h *HashLife) Step(log2Steps uint) {
	superspeedDepth := log2Steps + 2
	for h.depth < superspeedDepth-1 {
		h.expand()
	}
	centre := h.store.Reframe(h.root, p3.Origin(2), 1)
	if h.store.Population(centre) != h.store.Population(h.root) {
		h.expand()
	}
	h.expand()
	h.root = h.store.Step(h.root, h.depth, superspeedDepth)
	h.depth--
}

// LiveCells iterates over every live cell, in an unspecified order.
func (h *HashLife) LiveCells() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		type frame struct {
			h universe.NodeRef
			p p3.P3
		}
		stack := []frame{{h: h.root, p: p3.Origin(h.depth)}}
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if h.store.Population(f.h) == 0 {
				continue
			}
			if qs, ok := f.p.Quadrants(); ok {
				children := h.store.Children(f.h)
				for i := 3; i >= 0; i-- {
					stack = append(stack, frame{h: children[i], p: qs[i]})
				}
				continue
			}
			if h.store.Alive(f.h) {
				if !yield(Point{Y: f.p.Y, X: f.p.X}) {
					return
				}
			}
		}
	}
}

// FromCells builds a universe containing exactly the given live cells.
func FromCells(cells iter.Seq[Point]) *HashLife {
	h := New()
	for p := range cells {
		h.SetBit(p)
	}
	return h
}

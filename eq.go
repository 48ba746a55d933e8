package hashlife

import "github.com/rogpeppe/hashlife/internal/universe"

// Equal reports whether h and other contain the same live cells,
// independent of how each universe's quadtree happens to be shaped or
// which Store backs it. Two universes of different depth can still be
// equal provided the extra depth is empty padding; this mirrors how
// Step and expand can grow h's depth without changing its contents.
//
// The comparison walks both trees in lock-step, maintaining a two-way
// correspondence between the NodeRefs it has already matched: once a
// pair of nodes has been seen to match structurally it is taken as
// given for every later occurrence, so structurally shared subtrees
// are checked once no matter how often they recur (a bisimulation, in
// the same spirit as the canonicalisation the two universes each
// perform internally).
func (h *HashLife) Equal(other *HashLife) bool {
	if h.Population() != other.Population() {
		return false
	}
	type pair struct {
		aNode, bNode universe.NodeRef
		depth        uint
	}
	aToB := make(map[universe.NodeRef]universe.NodeRef)
	bToA := make(map[universe.NodeRef]universe.NodeRef)

	// If the two roots have different depths, treat the shallower one
	// as implicitly surrounded by dead padding up to the deeper depth.
	a := &HashLife{store: h.store, root: h.root, depth: h.depth}
	b := &HashLife{store: other.store, root: other.root, depth: other.depth}
	for a.depth < b.depth {
		a.expand()
	}
	for b.depth < a.depth {
		b.expand()
	}
	stack := []pair{{a.root, b.root, a.depth}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		aPop := a.store.Population(p.aNode)
		bPop := b.store.Population(p.bNode)
		if aPop != bPop {
			return false
		}
		if aPop == 0 || p.depth == 0 {
			continue
		}

		prevB, aSeen := aToB[p.aNode]
		prevA, bSeen := bToA[p.bNode]
		switch {
		case aSeen && bSeen:
			if prevB != p.bNode || prevA != p.aNode {
				return false
			}
			continue
		case aSeen || bSeen:
			return false
		}
		aToB[p.aNode] = p.bNode
		bToA[p.bNode] = p.aNode

		aChildren := a.store.Children(p.aNode)
		bChildren := b.store.Children(p.bNode)
		for i := 0; i < 4; i++ {
			stack = append(stack, pair{aChildren[i], bChildren[i], p.depth - 1})
		}
	}
	return true
}

package universe

import (
	"math/bits"

	"github.com/rogpeppe/hashlife/internal/p3"
)

// Step returns the central depth-(depth-1) subquadrant of h (a
// depth-depth node) after Delta generations. Recursion depth falls as
// Step descends into subquadrants; a call at depth d <= superspeedDepth
// advances twice as far as a call at depth d-1 (2^(d-2) generations),
// while a call above superspeedDepth advances as far as a call one
// level below it. Delta is therefore 2^(min(depth, superspeedDepth)-2)
// when superspeedDepth >= 2, and passing superspeedDepth <= 2 steps by
// exactly one generation throughout. h's outer ring must be dead
// (the caller is responsible for maintaining that border before
// calling Step).
func (s *Store) Step(h NodeRef, depth, superspeedDepth uint) NodeRef {
	type opcode int
	const (
		opStep opcode = iota
		opPush9
		opPop9Into4
		opPop4Into1
		opUpdateCache
	)
	type frame struct {
		op    opcode
		h     NodeRef
		depth uint
		key   nextGenKey
	}

	var done []NodeRef
	stack := []frame{{op: opStep, h: h, depth: depth}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch f.op {
		case opStep:
			k := nextGenKey{h: f.h, superspeed: f.depth <= superspeedDepth}
			if cached, ok := s.nextGen[k]; ok {
				done = append(done, cached)
				continue
			}
			stack = append(stack, frame{op: opUpdateCache, key: k})
			stack = append(stack, frame{op: opPush9, h: f.h, depth: f.depth})

		case opPush9:
			if f.depth == 2 {
				done = append(done, s.l2Gen(s.l2Bitmask(f.h)))
				continue
			}
			l2Trees := s.nineOverlappingChildren(f.h)
			stack = append(stack, frame{op: opPop4Into1})
			stack = append(stack, frame{op: opPop9Into4, depth: f.depth})
			superspeed := f.depth <= superspeedDepth
			if superspeed {
				for i := len(l2Trees) - 1; i >= 0; i-- {
					stack = append(stack, frame{op: opStep, h: l2Trees[i], depth: f.depth - 1})
				}
			} else {
				for _, l2 := range l2Trees {
					done = append(done, s.Reframe(l2, p3.Origin(2), 1))
				}
			}

		case opPop9Into4:
			var l1 [3][3]NodeRef
			for row := 2; row >= 0; row-- {
				for col := 2; col >= 0; col-- {
					l1[row][col] = done[len(done)-1]
					done = done[:len(done)-1]
				}
			}
			groups := [4][4]int{
				{0, 1, 3, 4}, // NW
				{1, 2, 4, 5}, // NE
				{3, 4, 6, 7}, // SW
				{4, 5, 7, 8}, // SE
			}
			for _, g := range groups {
				var children [4]NodeRef
				for i, idx := range g {
					children[i] = l1[idx/3][idx%3]
				}
				l2 := s.internBranch(children)
				stack = append(stack, frame{op: opStep, h: l2, depth: f.depth - 1})
			}

		case opPop4Into1:
			// Sequential pop, topmost first: the NW child was pushed
			// first (so computed last, ending up on top of done).
			children := [4]NodeRef{done[len(done)-1], done[len(done)-2], done[len(done)-3], done[len(done)-4]}
			done = done[:len(done)-4]
			done = append(done, s.internBranch(children))

		case opUpdateCache:
			s.nextGen[f.key] = done[len(done)-1]
		}
	}
	return done[0]
}

// nineOverlappingChildren returns the nine overlapping depth-(depth-1)
// subquadrants of h (a depth-depth node) in row-major order. Each is
// obtained by reframing h as seen through a depth-3 window (an 8x8 grid
// of depth-(depth-3) blocks) centred two blocks off from h's own centre
// in each direction, then collapsing
// that to a depth-2 shell: reframe's net depth change (lookup depth 3,
// target depth 2) is -1 regardless of h's actual depth, so the result
// always has depth-(depth-1), matching the recursion one level down.
func (s *Store) nineOverlappingChildren(h NodeRef) [9]NodeRef {
	var out [9]NodeRef
	i := 0
	for _, y := range [3]int{-2, 0, 2} {
		for _, x := range [3]int{-2, 0, 2} {
			out[i] = s.Reframe(h, p3.P3{Y: y, X: x, Z: 3}, 2)
			i++
		}
	}
	return out
}

// l2Bitmask packs the 4x4 block of cells under the depth-2 node h into a
// 16-bit mask, walking (y, x) in [-2, 2)^2 in row-major order.
func (s *Store) l2Bitmask(h NodeRef) uint16 {
	var mask uint16
	for y := -2; y < 2; y++ {
		for x := -2; x < 2; x++ {
			mask <<= 1
			if s.Alive(s.GetNode(h, p3.P3{Y: y, X: x, Z: 2})) {
				mask |= 1
			}
		}
	}
	return mask
}

// l2Gen evaluates the next generation of the centre 2x2 of a depth-2
// (4x4) block given its bitmask, applying Life's B3/S23 rule via the
// four overlapping 3x3 windows aligned on the four centre cells.
func (s *Store) l2Gen(mask uint16) NodeRef {
	children := [4]NodeRef{
		s.internLeaf(l2Cell(mask >> 5)),
		s.internLeaf(l2Cell(mask >> 4)),
		s.internLeaf(l2Cell(mask >> 1)),
		s.internLeaf(l2Cell(mask >> 0)),
	}
	return s.internBranch(children)
}

// l2Cell evaluates the B3/S23 rule for the 3x3 neighbourhood encoded in
// the low 9 bits of mask, whose centre bit (bit 5, 0b0000_0010_0000) is
// the cell's own current state.
func l2Cell(mask uint16) bool {
	const (
		centreBit     = 0b0000_0010_0000
		neighbourBits = 0b0111_0101_0111
	)
	centre := mask&centreBit != 0
	n := bits.OnesCount16(mask & neighbourBits)
	return n == 3 || (centre && n == 2)
}

// Package refsim implements a deliberately naive, non-hashed Game of
// Life simulator used only by tests, as an independent reference to
// check the quadtree engine's step operator against.
package refsim

// State is a set of live cells.
type State map[[2]int]bool

// SetBit marks (y, x) alive.
func (s State) SetBit(y, x int) {
	s[[2]int{y, x}] = true
}

// Step returns the next generation under B3/S23.
func (s State) Step() State {
	counts := make(map[[2]int]int)
	for p := range s {
		for _, n := range neighbours(p) {
			counts[n]++
		}
	}
	next := make(State)
	for p, count := range counts {
		alive := s[p]
		if count == 3 || (alive && count == 2) {
			next[p] = true
		}
	}
	return next
}

// StepN returns s after n generations.
func (s State) StepN(n int) State {
	for i := 0; i < n; i++ {
		s = s.Step()
	}
	return s
}

func neighbours(p [2]int) [8][2]int {
	y, x := p[0], p[1]
	var out [8][2]int
	i := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dy == 0 && dx == 0 {
				continue
			}
			out[i] = [2]int{y + dy, x + dx}
			i++
		}
	}
	return out
}

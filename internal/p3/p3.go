// Package p3 implements the centred coordinate algebra used to address
// cells and subtrees inside a HashLife quadtree.
//
// A P3 names a cell, or the square region a node of a given depth would
// occupy, by an offset from the global origin and a depth. All quadtree
// navigation is expressed by composing the three operations here; no
// other part of the engine is allowed to know how centred coordinates
// are encoded.
package p3

// P3 is a centred address (y, x, z): a node of depth Z spans cells with
// Y, X in [-2^(Z-1), 2^(Z-1)); Z == 0 addresses a single cell at (Y, X).
type P3 struct {
	Y, X int
	Z    uint
}

// Origin returns the centre address of a node of depth z.
func Origin(z uint) P3 {
	return P3{Z: z}
}

// WithinTree reports whether p, read as a cell coordinate, fits inside a
// tree of depth p.Z.
func (p P3) WithinTree() bool {
	return Origin(p.Z).contains(P3{Y: p.Y, X: p.X})
}

// contains reports whether p's footprint contains other's footprint.
func (p P3) contains(other P3) bool {
	if other.Z >= p.Z {
		return p == other
	}
	relY, relX, relZ := other.Y-p.Y, other.X-p.X, p.Z-other.Z
	w := 1 << (relZ - 1)
	return -w <= relY && relY < w && -w <= relX && relX < w
}

// Descend interprets p as a cell coordinate inside a node of depth p.Z,
// picks the child quadrant containing that cell (NW if y<0&&x<0, NE if
// y<0&&x>=0, SW if y>=0&&x<0, SE if y>=0&&x>=0), and returns the
// quadrant index plus an updated coordinate expressed relative to that
// child's centre. The second result is only valid when ok is true; ok is
// false when p.Z == 0 (a leaf has no quadrants to descend into).
func (p P3) Descend() (quadrant int, next P3, ok bool) {
	if p.Z == 0 {
		return 0, P3{}, false
	}
	w := (1 << p.Z) / 4
	var i, dy, dx int
	switch {
	case p.Y < 0 && p.X < 0:
		i, dy, dx = 0, w, w
	case p.Y < 0 && p.X >= 0:
		i, dy, dx = 1, w, -w
	case p.Y >= 0 && p.X < 0:
		i, dy, dx = 2, -w, w
	default:
		i, dy, dx = 3, -w, -w
	}
	next.Z = p.Z - 1
	if p.Z == 1 {
		next.Y, next.X = 0, 0
	} else {
		next.Y, next.X = p.Y+dy, p.X+dx
	}
	return i, next, true
}

// Quadrants returns the centres of p's four subquadrants in NW, NE, SW,
// SE order. ok is false when p.Z == 0.
func (p P3) Quadrants() (quadrants [4]P3, ok bool) {
	if p.Z == 0 {
		return quadrants, false
	}
	pos := 1 << p.Z >> 2
	neg := pos - 1<<p.Z>>1
	z := p.Z - 1
	return [4]P3{
		{Y: p.Y + neg, X: p.X + neg, Z: z},
		{Y: p.Y + neg, X: p.X + pos, Z: z},
		{Y: p.Y + pos, X: p.X + neg, Z: z},
		{Y: p.Y + pos, X: p.X + pos, Z: z},
	}, true
}

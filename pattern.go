package hashlife

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/rogpeppe/hashlife/slice"
)

// ParsePattern parses a plain-text pattern: a space means a dead cell,
// 'o' means a live cell, and newlines separate rows. The parsed cells
// are normalised so that their bounding box is centred on the origin.
func ParsePattern(s string) (*HashLife, error) {
	var cells []Point
	for y, line := range strings.Split(s, "\n") {
		for x, c := range line {
			switch c {
			case ' ':
			case 'o':
				cells = append(cells, Point{Y: y, X: x})
			default:
				return nil, fmt.Errorf("hashlife: unexpected character %q in pattern", c)
			}
		}
	}
	return FromCells(slices.Values(normalize(cells))), nil
}

// normalize translates cells so that their bounding box is centred on
// the origin. An empty slice of cells is returned unchanged.
func normalize(cells []Point) []Point {
	if len(cells) == 0 {
		return cells
	}
	minY, maxY := cells[0].Y, cells[0].Y
	minX, maxX := cells[0].X, cells[0].X
	for _, c := range cells[1:] {
		minY = min(minY, c.Y)
		maxY = max(maxY, c.Y)
		minX = min(minX, c.X)
		maxX = max(maxX, c.X)
	}
	dy := minY + (maxY-minY+1)/2
	dx := minX + (maxX-minX+1)/2
	if dy == 0 && dx == 0 {
		return cells
	}
	out := make([]Point, len(cells))
	for i, c := range cells {
		out[i] = Point{Y: c.Y - dy, X: c.X - dx}
	}
	return out
}

// String renders h as a plain-text pattern, the inverse of
// ParsePattern: a space for a dead cell, 'o' for a live cell, each row
// on its own line, with rows and columns trimmed to the live cells'
// bounding box. An empty universe renders as the empty string.
func (h *HashLife) String() string {
	cells := sortedCells(h)
	if len(cells) == 0 {
		return ""
	}
	minY := cells[0].Y
	minX := cells[0].X
	for _, c := range cells[1:] {
		minY = min(minY, c.Y)
		minX = min(minX, c.X)
	}
	var b strings.Builder
	currentY, currentX := minY, minX
	for _, c := range cells {
		for currentY < c.Y {
			b.WriteByte('\n')
			currentX = minX
			currentY++
		}
		b.WriteString(strings.Repeat(" ", c.X-currentX))
		b.WriteByte('o')
		currentX = c.X + 1
	}
	return b.String()
}

// sortedCells returns h's live cells in row-major (y, then x) order,
// the order String needs to walk rows top to bottom, each
// left to right.
func sortedCells(h *HashLife) []Point {
	var cells []Point
	for p := range h.LiveCells() {
		cells = append(cells, p)
	}
	sort.Slice(cells, func(i, j int) bool {
		return slice.Less([]int{cells[i].Y, cells[i].X}, []int{cells[j].Y, cells[j].X})
	})
	return cells
}

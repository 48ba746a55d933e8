package hashlife

import (
	"math"

	"github.com/rogpeppe/hashlife/internal/p3"
)

// View names a square region of the universe to render: Center is its
// centre in cell coordinates and Log2Size is the base-2 logarithm of
// its side length (so a Log2Size of 0 names a single cell).
type View struct {
	CenterY, CenterX float64
	Log2Size         float64
}

// Render rasterises view into a width x height grid of per-pixel
// liveness values in [0, 1]: for a pixel whose footprint lands
// entirely within the universe's populated extent, liveness is the
// fraction of that footprint's cells which are alive, computed from a
// single quadtree node's population without visiting any cell
// individually. Pixels whose footprint would need finer resolution
// than the universe's own depth are clamped to the finest node that
// contains them.
func (h *HashLife) Render(view View, width, height int) []float64 {
	maxDepth := math.Min(math.Log2(float64(width)), float64(h.depth))
	pixelScale := math.Exp2(view.Log2Size) / float64(width)
	out := make([]float64, 0, width*height)
	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			y := view.CenterY + (float64(i)-0.5*float64(height))*pixelScale
			x := view.CenterX + (float64(j)-0.5*float64(width))*pixelScale
			out = append(out, h.liveness(maxDepth, y, x, view.Log2Size))
		}
	}
	return out
}

// liveness returns the fractional coverage of live cells under the
// node addressed by (y, x) at a fictional depth z, snapped to the
// nearest real depth no coarser than maxDepth.
func (h *HashLife) liveness(maxDepth, y, x, z float64) float64 {
	realZ := math.Max(0, math.Min(maxDepth, math.Round(z)))
	scale := math.Exp2(realZ - z)
	p := p3.P3{
		Y: int(math.Round(y * scale)),
		X: int(math.Round(x * scale)),
		Z: uint(realZ),
	}
	if !p.WithinTree() {
		return 0
	}
	node := h.store.GetNode(h.root, p)
	population := float64(h.store.Population(node))
	capacity := math.Exp2(2 * (float64(h.depth) - realZ))
	return math.Min(1, population/capacity)
}

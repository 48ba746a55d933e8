package hashlife

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/rogpeppe/hashlife/internal/p3"
)

// TestEqualPadsShallowerRootBeforeComparing constructs two universes
// holding the same single live cell but with different root depths,
// exercising Equal's implicit-padding path directly (ParsePattern
// alone can't produce a depth mismatch since both sides always start
// from the same minimum depth).
func TestEqualPadsShallowerRootBeforeComparing(t *testing.T) {
	c := qt.New(t)

	shallow := New()
	shallow.SetBit(Point{Y: 0, X: 0})

	deep := New()
	deep.SetBit(Point{Y: 0, X: 0})
	deep.expand()
	deep.expand()

	c.Assert(shallow.depth, qt.Not(qt.Equals), deep.depth)
	c.Assert(shallow.Equal(deep), qt.IsTrue)

	deep.root = deep.store.SetBit(deep.root, p3.P3{Y: 3, X: 3, Z: deep.depth})
	c.Assert(shallow.Equal(deep), qt.IsFalse)
}

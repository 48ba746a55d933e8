package hashlife_test

import (
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/rogpeppe/hashlife"
)

func TestParsePatternBlinker(t *testing.T) {
	c := qt.New(t)
	h, err := hashlife.ParsePattern("ooo")
	c.Assert(err, qt.IsNil)
	c.Assert(h.Population(), qt.Equals, uint64(3))
}

func TestParsePatternGlider(t *testing.T) {
	c := qt.New(t)
	glider := " o\n  o\nooo"
	h, err := hashlife.ParsePattern(glider)
	c.Assert(err, qt.IsNil)
	c.Assert(h.Population(), qt.Equals, uint64(5))
}

func TestParsePatternRejectsUnexpectedCharacter(t *testing.T) {
	c := qt.New(t)
	_, err := hashlife.ParsePattern("ooX")
	c.Assert(err, qt.ErrorMatches, `.*unexpected character 'X'.*`)
}

func TestDisplayRoundTrip(t *testing.T) {
	c := qt.New(t)
	glider := " o\n  o\nooo"
	h, err := hashlife.ParsePattern(glider)
	c.Assert(err, qt.IsNil)
	c.Assert(h.String(), qt.Equals, glider)
}

func TestDisplayEmptyUniverse(t *testing.T) {
	c := qt.New(t)
	h := hashlife.New()
	c.Assert(h.String(), qt.Equals, "")
}

func TestDisplayTrimsToBoundingBox(t *testing.T) {
	c := qt.New(t)
	h := hashlife.New()
	h.SetBit(hashlife.Point{Y: 10, X: 10})
	h.SetBit(hashlife.Point{Y: 11, X: 11})
	want := "o\n o"
	c.Assert(strings.TrimRight(h.String(), "\n"), qt.Equals, want)
}

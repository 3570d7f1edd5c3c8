package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPoints(t *testing.T) {
	points, warnings := ExtractPoints("the well·known author", '·')
	assert.Equal(t, 0, len(warnings))
	assert.Equal(t, 1, len(points))
	assert.Equal(t, "well", points[0].Prefix)
	assert.Equal(t, "known", points[0].Suffix)
	assert.Equal(t, 1, points[0].Index)
}

func TestExtractPointsNone(t *testing.T) {
	points, warnings := ExtractPoints("no markers here", '·')
	assert.Equal(t, 0, len(points))
	assert.Equal(t, 0, len(warnings))
}

func TestExtractPointsSeveral(t *testing.T) {
	points, _ := ExtractPoints("se·veral mar·kers", '·')
	assert.Equal(t, 2, len(points))
}

func TestExtractSkipsBoundaryMarker(t *testing.T) {
	points, warnings := ExtractPoints("wrong· token", '·')
	assert.Equal(t, 0, len(points))
	assert.Equal(t, 1, len(warnings))

	points, warnings = ExtractPoints("·wrong token", '·')
	assert.Equal(t, 0, len(points))
	assert.Equal(t, 1, len(warnings))
}

func TestExtractSkipsDoubleMarker(t *testing.T) {
	points, warnings := ExtractPoints("t·o·ken", '·')
	assert.Equal(t, 0, len(points))
	assert.Equal(t, 1, len(warnings))
}

func TestJoinedAndHyphenated(t *testing.T) {
	p := Point{Prefix: "well", Suffix: "known"}
	assert.Equal(t, "wellknown", p.Joined())
	assert.Equal(t, "well-known", p.Hyphenated())
}

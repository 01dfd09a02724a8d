package subdiv2d_test

import (
	"testing"

	subdiv2d "github.com/loopblinn/subdiv2d"
	"github.com/stretchr/testify/assert"
)

func TestPoint2fArithmetic(t *testing.T) {
	a := subdiv2d.Point2f{X: 3, Y: 4}
	b := subdiv2d.Point2f{X: 1, Y: 2}

	assert.Equal(t, subdiv2d.Point2f{X: 4, Y: 6}, a.Add(b))
	assert.Equal(t, subdiv2d.Point2f{X: 2, Y: 2}, a.Sub(b))
	assert.Equal(t, float32(11), a.Dot(b))
	assert.Equal(t, float32(25), a.SquaredNorm())
	assert.Equal(t, float32(5), a.Norm())
}

func TestRectContains(t *testing.T) {
	r := subdiv2d.Rect{X: 0, Y: 0, Width: 100, Height: 100}

	assert.True(t, r.Contains(subdiv2d.Point2f{X: 0, Y: 0}))
	assert.True(t, r.Contains(subdiv2d.Point2f{X: 99.9, Y: 50}))
	assert.False(t, r.Contains(subdiv2d.Point2f{X: 100, Y: 50}))
	assert.False(t, r.Contains(subdiv2d.Point2f{X: -0.1, Y: 50}))
	assert.Equal(t, int32(10000), r.Area())
}

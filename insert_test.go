package subdiv2d_test

import (
	"testing"

	subdiv2d "github.com/loopblinn/subdiv2d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inCircleDet is an independent reimplementation of the lifted-paraboloid
// in-circle determinant, kept separate from the package's own predicate so
// this test doesn't just check the implementation against itself.
func inCircleDet(a, b, c, d subdiv2d.Point2f) float64 {
	sq := func(p subdiv2d.Point2f) float64 { return float64(p.X)*float64(p.X) + float64(p.Y)*float64(p.Y) }
	m := [4][4]float64{
		{float64(a.X), float64(a.Y), sq(a), 1},
		{float64(b.X), float64(b.Y), sq(b), 1},
		{float64(c.X), float64(c.Y), sq(c), 1},
		{float64(d.X), float64(d.Y), sq(d), 1},
	}
	return det4(m)
}

func det4(m [4][4]float64) float64 {
	minor3 := func(m [3][3]float64) float64 {
		return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
			m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
			m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
	}
	var det float64
	sign := 1.0
	for col := 0; col < 4; col++ {
		var sub [3][3]float64
		for r := 1; r < 4; r++ {
			sc := 0
			for c := 0; c < 4; c++ {
				if c == col {
					continue
				}
				sub[r-1][sc] = m[r][c]
				sc++
			}
		}
		det += sign * m[0][col] * minor3(sub)
		sign = -sign
	}
	return det
}

// S2 (loose form) - three collinear points must all insert without error
// and the resulting triangulation must stay Delaunay-legal. The exact
// triangle count is implementation-sensitive on degenerate input, so this
// only asserts the invariants spec.md actually requires: no failure, and
// a non-degenerate, legal triangulation results.
func TestThreeCollinearPointsInsertCleanly(t *testing.T) {
	s := newSquare(t)

	pts := []subdiv2d.Point2f{{X: 10, Y: 50}, {X: 50, Y: 50}, {X: 90, Y: 50}}
	ids, err := s.InsertMany(pts)
	require.NoError(t, err)
	require.Len(t, ids, 3)
	assert.NotEqual(t, ids[0], ids[1])
	assert.NotEqual(t, ids[1], ids[2])

	assertDelaunayLegal(t, s)
	assert.NotEmpty(t, s.GetTriangleList())
}

func TestInsertManyStopsOnFirstFailure(t *testing.T) {
	s := newSquare(t)

	pts := []subdiv2d.Point2f{{X: 10, Y: 10}, {X: -5, Y: -5}, {X: 20, Y: 20}}
	ids, err := s.InsertMany(pts)
	assert.ErrorIs(t, err, subdiv2d.ErrOutOfRange)
	assert.Len(t, ids, 1)
}

// assertDelaunayLegal checks the quantified Delaunay invariant from
// spec.md directly: for every triangle in the list, no other real vertex
// lies strictly inside its circumcircle.
func assertDelaunayLegal(t *testing.T, s *subdiv2d.Subdivision) {
	t.Helper()

	tris := s.GetTriangleList()
	var allReal []subdiv2d.Point2f
	for v := subdiv2d.VertexId(1); v < subdiv2d.VertexId(s.NumVertices()); v++ {
		pt, _, err := s.GetVertex(v)
		if err == nil && !subdiv2d.IsVertexBoundary(v) {
			allReal = append(allReal, pt)
		}
	}

	for _, tri := range tris {
		a, _, errA := s.GetVertex(tri.A)
		b, _, errB := s.GetVertex(tri.B)
		c, _, errC := s.GetVertex(tri.C)
		require.NoError(t, errA)
		require.NoError(t, errB)
		require.NoError(t, errC)

		for _, p := range allReal {
			if p == a || p == b || p == c {
				continue
			}
			assert.False(t, inCircleDet(a, b, c, p) > 0,
				"point %v illegally inside circumcircle of triangle (%v,%v,%v)", p, a, b, c)
		}
	}
}

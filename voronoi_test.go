package subdiv2d_test

import (
	"testing"

	subdiv2d "github.com/loopblinn/subdiv2d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S5 - four points forming an axis-aligned square produce exactly four
// Voronoi facets, one per site, each with a non-empty boundary polygon.
// The square's four corners are concyclic (common circumcircle centred
// on the square's own centre), so whichever diagonal the triangulation
// picks to split the square, the two triangles built from the square's
// four corners alone share that exact circumcentre: every corner is a
// vertex of at least one of those two triangles, so every facet's
// polygon must contain the square's centre point. This holds regardless
// of flip order or which diagonal was chosen, unlike spec.md's literal
// S2 triangle count.
func TestVoronoiFacetsOfASquare(t *testing.T) {
	s := newSquare(t)

	corners := []subdiv2d.Point2f{
		{X: 30, Y: 30}, {X: 70, Y: 30}, {X: 70, Y: 70}, {X: 30, Y: 70},
	}
	ids, err := s.InsertMany(corners)
	require.NoError(t, err)

	facets := s.GetVoronoiFacetList(ids)
	require.Len(t, facets, 4)

	centre := subdiv2d.Point2f{X: 50, Y: 50}
	for _, f := range facets {
		assert.NotEmpty(t, f.Polygon)
		assert.Contains(t, ids, f.Vertex)

		foundCentre := false
		for _, p := range f.Polygon {
			if pointsClose(p, centre, 1e-3) {
				foundCentre = true
				break
			}
		}
		assert.True(t, foundCentre,
			"facet for vertex %v must have the square's centre (50,50) on its boundary, got %v", f.Vertex, f.Polygon)
	}
}

func pointsClose(a, b subdiv2d.Point2f, eps float32) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx <= eps && dy <= eps
}

func TestVoronoiCacheInvalidatesOnInsert(t *testing.T) {
	s := newSquare(t)
	_, err := s.Insert(subdiv2d.Point2f{X: 20, Y: 20})
	require.NoError(t, err)
	_, err = s.Insert(subdiv2d.Point2f{X: 80, Y: 20})
	require.NoError(t, err)

	first := s.GetVoronoiFacetList(nil)
	require.NotEmpty(t, first)

	v, err := s.Insert(subdiv2d.Point2f{X: 50, Y: 80})
	require.NoError(t, err)

	second := s.GetVoronoiFacetList(nil)
	found := false
	for _, f := range second {
		if f.Vertex == v {
			found = true
			assert.NotEmpty(t, f.Polygon)
		}
	}
	assert.True(t, found, "facet list after a new insert must include the new vertex")
}

func TestGetVoronoiFacetListDefaultsToAllRealVertices(t *testing.T) {
	s := newSquare(t)
	a, err := s.Insert(subdiv2d.Point2f{X: 10, Y: 10})
	require.NoError(t, err)
	b, err := s.Insert(subdiv2d.Point2f{X: 90, Y: 90})
	require.NoError(t, err)

	facets := s.GetVoronoiFacetList(nil)
	seen := map[subdiv2d.VertexId]bool{}
	for _, f := range facets {
		seen[f.Vertex] = true
	}
	assert.True(t, seen[a])
	assert.True(t, seen[b])
}

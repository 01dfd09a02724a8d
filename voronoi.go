package subdiv2d

// VoronoiFacet is one cell of the dual diagram: the closed polygon of
// circumcenters surrounding a real input vertex, together with that
// vertex's id and site position.
type VoronoiFacet struct {
	Vertex  VertexId
	Center  Point2f
	Polygon []Point2f
}

// clearVoronoi frees every virtual-dual vertex and resets the dual
// endpoint slot of every quad-edge, required before any primal mutation
// once Voronoi geometry has been computed.
func (s *Subdivision) clearVoronoi() {
	if !s.validGeometry {
		return
	}
	for q := QuadEdgeId(1); int(q) < len(s.qedges); q++ {
		if !s.qedges[q].inUse {
			continue
		}
		for _, r := range [2]int{1, 3} {
			v := s.qedges[q].endpoints[r]
			if v != InvalidVertex {
				if s.vertices[v].kind == VertexVirtualDual {
					s.deletePoint(v)
				}
				s.qedges[q].endpoints[r] = InvalidVertex
			}
		}
	}
	s.validGeometry = false
}

// calcVoronoi computes the circumcenter of every primal triangle and
// stores it as a virtual-dual vertex on the dual endpoint slot of each of
// the triangle's three edges, so that the dual vertex on the left of any
// primal edge is directly reachable without re-deriving it.
func (s *Subdivision) calcVoronoi() {
	if s.validGeometry {
		return
	}

	for q := QuadEdgeId(1); int(q) < len(s.qedges); q++ {
		if !s.qedges[q].inUse {
			continue
		}
		for r := 0; r < 2; r++ {
			e := edgeID(q, r*2)
			rotEdge := rotate(e, 1)
			if s.qedges[qe(rotEdge)].endpoints[rot(rotEdge)] != InvalidVertex {
				continue // already visited via another edge of the same face
			}
			s.fillFaceCircumcenter(e)
		}
	}
	s.validGeometry = true
}

// fillFaceCircumcenter computes the circumcenter of Left(e) and writes it
// to the dual endpoint of every edge bounding that face.
func (s *Subdivision) fillFaceCircumcenter(e EdgeId) {
	a := s.EdgeOrg(e)
	b := s.EdgeDst(e)
	c := s.EdgeDst(s.lnext(e))
	if a == InvalidVertex || b == InvalidVertex || c == InvalidVertex || a == 0 || b == 0 || c == 0 {
		return
	}

	center := s.circumcenter(s.pointAt(a), s.pointAt(b), s.pointAt(c))
	dv := s.newPoint(center, VertexVirtualDual, InvalidEdge)

	f := e
	for {
		dual := rotate(f, 1)
		s.qedges[qe(dual)].endpoints[rot(dual)] = dv
		f = s.lnext(f)
		if f == e {
			break
		}
	}
}

// circumcenterEpsilon guards against the degenerate divisor of three
// near-collinear points.
const circumcenterEpsilon = 1e-10

// circumcenter returns the circumcenter of triangle (a,b,c), falling back
// to the centroid if the points are too close to collinear for the
// standard formula's divisor to be numerically trustworthy.
func (s *Subdivision) circumcenter(a, b, c Point2f) Point2f {
	ax, ay := float64(a.X), float64(a.Y)
	bx, by := float64(b.X), float64(b.Y)
	cx, cy := float64(c.X), float64(c.Y)

	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	if d > -circumcenterEpsilon && d < circumcenterEpsilon {
		return Point2f{
			X: (a.X + b.X + c.X) / 3,
			Y: (a.Y + b.Y + c.Y) / 3,
		}
	}

	aSq := ax*ax + ay*ay
	bSq := bx*bx + by*by
	cSq := cx*cx + cy*cy

	ux := (aSq*(by-cy) + bSq*(cy-ay) + cSq*(ay-by)) / d
	uy := (aSq*(cx-bx) + bSq*(ax-cx) + cSq*(bx-ax)) / d
	return Point2f{X: float32(ux), Y: float32(uy)}
}

// GetVoronoiFacetList computes (if necessary) and returns the Voronoi
// facets for the given vertex ids, or for every real vertex when ids is
// nil or empty.
func (s *Subdivision) GetVoronoiFacetList(ids []VertexId) []VoronoiFacet {
	s.calcVoronoi()

	if len(ids) == 0 {
		ids = make([]VertexId, 0, len(s.vertices))
		for v := VertexId(1); int(v) < len(s.vertices); v++ {
			if s.vertices[v].kind == VertexReal {
				ids = append(ids, v)
			}
		}
	}

	facets := make([]VoronoiFacet, 0, len(ids))
	for _, v := range ids {
		if int(v) >= len(s.vertices) || s.vertices[v].kind != VertexReal {
			continue
		}
		facets = append(facets, s.voronoiFacetForVertex(v))
	}
	return facets
}

// voronoiFacetForVertex walks Onext around v (the ring of primal edges
// originating at v) and reads off the dual vertex on the left of each,
// which traces the facet boundary in order. The classical description
// walks Rnext instead, but Rnext does not preserve Org(e)=v as it steps,
// so that composition cannot be used to enumerate a single vertex's ring;
// Onext is the correct primitive for "edges around v" and yields the same
// cyclic sequence of left-dual vertices.
func (s *Subdivision) voronoiFacetForVertex(v VertexId) VoronoiFacet {
	facet := VoronoiFacet{Vertex: v, Center: s.pointAt(v)}

	first := s.vertices[v].firstEdge
	if first == InvalidEdge {
		return facet
	}

	e := first
	for {
		dual := rotate(e, 1)
		dv := s.qedges[qe(dual)].endpoints[rot(dual)]
		if dv != InvalidVertex {
			facet.Polygon = append(facet.Polygon, s.pointAt(dv))
		}
		e = s.onext(e)
		if e == first {
			break
		}
	}
	return facet
}

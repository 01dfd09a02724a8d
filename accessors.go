package subdiv2d

// Triangle is three vertex ids listed counter-clockwise.
type Triangle struct {
	A, B, C VertexId
}

// GetVertex returns the position and first-edge hint of v.
func (s *Subdivision) GetVertex(v VertexId) (Point2f, EdgeId, error) {
	if v == InvalidVertex || int(v) >= len(s.vertices) {
		return Point2f{}, InvalidEdge, ErrOutOfRange
	}
	s.dbgAssertVertexInRange(v)
	rec := s.vertices[v]
	return rec.pt, rec.firstEdge, nil
}

// liveQuadEdges yields the ids of quad-edges that are in use and do not
// touch the placeholder vertex 0, which both the edge list and the
// triangle/leading-edge walks must skip per the iteration contract.
func (s *Subdivision) liveQuadEdges(yield func(q QuadEdgeId)) {
	for q := QuadEdgeId(1); int(q) < len(s.qedges); q++ {
		if !s.qedges[q].inUse {
			continue
		}
		e := edgeID(q, 0)
		if s.qedges[q].endpoints[rot(e)] == 0 || s.qedges[q].endpoints[rot(sym(e))] == 0 {
			continue
		}
		yield(q)
	}
}

// GetEdgeList returns the primal forward EdgeId of every live quad-edge,
// in arena order.
func (s *Subdivision) GetEdgeList() []EdgeId {
	var out []EdgeId
	s.liveQuadEdges(func(q QuadEdgeId) {
		out = append(out, edgeID(q, 0))
	})
	return out
}

// GetLeadingEdgeList returns one representative edge per face, including
// the unbounded face outside the frame: the first primal edge, in arena
// order, whose left face has not already been walked via Lnext.
func (s *Subdivision) GetLeadingEdgeList() []EdgeId {
	seen := make(map[EdgeId]bool)
	var out []EdgeId
	s.liveQuadEdges(func(q QuadEdgeId) {
		for _, r := range [2]int{0, 2} {
			e := edgeID(q, r)
			if seen[e] {
				continue
			}
			out = append(out, e)
			s.markFaceSeen(e, seen)
		}
	})
	return out
}

func (s *Subdivision) markFaceSeen(e EdgeId, seen map[EdgeId]bool) {
	f := e
	for {
		seen[f] = true
		f = s.lnext(f)
		if f == e {
			break
		}
	}
}

// GetTriangleList returns every primal triangle as a (A,B,C) vertex
// triple listed counter-clockwise, skipping any face touching the
// placeholder vertex 0 and the clockwise unbounded face outside the
// frame. Faces touching a synthetic BoundaryCorner vertex
// are still returned, matching the iteration contract, which only
// excludes the placeholder; callers that want real-only triangles filter
// on IsVertexBoundary themselves.
func (s *Subdivision) GetTriangleList() []Triangle {
	var out []Triangle
	for _, e := range s.GetLeadingEdgeList() {
		a := s.EdgeOrg(e)
		b := s.EdgeDst(e)
		c := s.EdgeDst(s.lnext(e))
		if a == InvalidVertex || b == InvalidVertex || c == InvalidVertex {
			continue
		}
		if orient(s.pointAt(a), s.pointAt(b), s.pointAt(c)) < 0 {
			continue // the unbounded face outside the frame, traversed clockwise
		}
		out = append(out, Triangle{A: a, B: b, C: c})
	}
	return out
}

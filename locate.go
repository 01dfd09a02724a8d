package subdiv2d

// PtLoc classifies the result of a point-location walk.
type PtLoc int

const (
	// PtLocError means the walk could not bracket the point; edge and
	// vertex in the result are InvalidEdge/InvalidVertex.
	PtLocError PtLoc = iota
	// PtLocOutsideRect means the point falls outside the subdivision's
	// bounding rectangle; the walk was never attempted.
	PtLocOutsideRect
	// PtLocInside means the point falls strictly inside the left face of
	// the returned edge.
	PtLocInside
	// PtLocOnEdge means the point lies exactly on the returned edge.
	PtLocOnEdge
	// PtLocVertex means the point coincides with the returned vertex.
	PtLocVertex
)

// maxLocateSteps bounds the walk against cycling on degenerate input; the
// walk is expected O(sqrt(N)), so this is generous for any subdivision
// this package is meant to hold in memory.
const maxLocateSteps = 1 << 20

// LocateResult is the full output of a point-location query: its
// classification, the edge it bracketed or landed on, and the vertex it
// resolved to (only meaningful when Loc is PtLocVertex).
type LocateResult struct {
	Loc    PtLoc
	Edge   EdgeId
	Vertex VertexId
}

// Locate runs the Guibas-Stolfi point-location walk seeded from the
// subdivision's recent-edge cache and returns the bracketing edge (or
// owning vertex) together with its classification.
func (s *Subdivision) Locate(pt Point2f) (LocateResult, error) {
	if !s.initialized {
		return LocateResult{}, ErrNotInitialised
	}
	if !s.containsPoint(pt) {
		return LocateResult{Loc: PtLocOutsideRect, Edge: InvalidEdge, Vertex: InvalidVertex}, nil
	}

	e := s.recentEdge
	if e == InvalidEdge || int(qe(e)) >= len(s.qedges) || !s.qedges[qe(e)].inUse {
		e = s.anyLiveEdge()
	}
	if e == InvalidEdge {
		return LocateResult{}, ErrNotInitialised
	}

	if s.isRightOf(pt, e) {
		e = sym(e)
	}

	steps := 0
	for {
		steps++
		if steps > maxLocateSteps {
			return LocateResult{Loc: PtLocError, Edge: InvalidEdge, Vertex: InvalidVertex}, nil
		}

		if pt == s.pointAt(s.EdgeOrg(e)) || pt == s.pointAt(s.EdgeDst(e)) {
			goto bracketed
		}

		onextE := s.onext(e)
		dprevE := s.dprev(e)

		rightOfOnext := s.isRightOf(pt, onextE)
		rightOfDprev := s.isRightOf(pt, dprevE)

		switch {
		case rightOfOnext && rightOfDprev:
			goto bracketed
		case !rightOfOnext && rightOfDprev:
			e = onextE
		case rightOfOnext && !rightOfDprev:
			e = dprevE
		default:
			// p is on the left of both neighbours: keep turning around
			// org(e) via Onext, as the classical walk does.
			e = onextE
		}
	}

bracketed:
	s.recentEdge = e

	orientOrgDst := orient(pt, s.pointAt(s.EdgeOrg(e)), s.pointAt(s.EdgeDst(e)))
	if orientOrgDst != 0 {
		return LocateResult{Loc: PtLocInside, Edge: e, Vertex: InvalidVertex}, nil
	}

	if pt == s.pointAt(s.EdgeOrg(e)) {
		return LocateResult{Loc: PtLocVertex, Edge: e, Vertex: s.EdgeOrg(e)}, nil
	}
	if pt == s.pointAt(s.EdgeDst(e)) {
		return LocateResult{Loc: PtLocVertex, Edge: e, Vertex: s.EdgeDst(e)}, nil
	}
	return LocateResult{Loc: PtLocOnEdge, Edge: e, Vertex: InvalidVertex}, nil
}

// anyLiveEdge returns an edge id belonging to any in-use quad-edge,
// skipping the permanent placeholder slot at index 0. It is used to
// reseed the walk when the recent-edge cache is stale.
func (s *Subdivision) anyLiveEdge() EdgeId {
	for q := QuadEdgeId(1); int(q) < len(s.qedges); q++ {
		if s.qedges[q].inUse {
			return edgeID(q, 0)
		}
	}
	return InvalidEdge
}

// FindNearest returns the real corner nearest to pt of the triangle that
// Locate brackets pt in; a closer vertex outside that triangle is not
// found. It scans every real vertex instead when the walk fails or the
// triangle has no real corner, and returns InvalidVertex when the
// subdivision is empty.
func (s *Subdivision) FindNearest(pt Point2f) (VertexId, Point2f, error) {
	if !s.initialized {
		return InvalidVertex, Point2f{}, ErrNotInitialised
	}
	if s.Empty() {
		return InvalidVertex, Point2f{}, nil
	}

	res, err := s.Locate(pt)
	if err != nil {
		return InvalidVertex, Point2f{}, err
	}
	if res.Loc == PtLocError || res.Loc == PtLocOutsideRect {
		v := s.scanNearest(pt)
		return v, s.pointAt(v), nil
	}
	if res.Loc == PtLocVertex {
		return res.Vertex, s.pointAt(res.Vertex), nil
	}

	candidates := s.candidateVerticesFromEdge(res.Edge)
	best := InvalidVertex
	var bestDist float32
	for _, v := range candidates {
		if v == InvalidVertex || IsVertexBoundary(v) || v == 0 {
			continue
		}
		d := s.pointAt(v).Sub(pt).SquaredNorm()
		if best == InvalidVertex || d < bestDist {
			best, bestDist = v, d
		}
	}
	if best == InvalidVertex {
		best = s.scanNearest(pt)
	}
	return best, s.pointAt(best), nil
}

func (s *Subdivision) candidateVerticesFromEdge(e EdgeId) []VertexId {
	return []VertexId{s.EdgeOrg(e), s.EdgeDst(e), s.EdgeDst(s.lnext(e))}
}

func (s *Subdivision) scanNearest(pt Point2f) VertexId {
	best := InvalidVertex
	var bestDist float32
	for v := VertexId(1); int(v) < len(s.vertices); v++ {
		if IsVertexBoundary(v) || s.vertices[v].kind != VertexReal {
			continue
		}
		d := s.vertices[v].pt.Sub(pt).SquaredNorm()
		if best == InvalidVertex || d < bestDist {
			best, bestDist = v, d
		}
	}
	return best
}

// LocateVertexIdsArray resolves a locate query to up to three vertex ids:
// the one vertex for PtLocVertex, the two endpoints for PtLocOnEdge, or
// the three corners of the containing triangle for PtLocInside.
func (s *Subdivision) LocateVertexIdsArray(pt Point2f) VertexArray {
	var out VertexArray
	res, err := s.Locate(pt)
	if err != nil || res.Loc == PtLocError || res.Loc == PtLocOutsideRect {
		return out
	}
	switch res.Loc {
	case PtLocVertex:
		out.PushBack(res.Vertex)
	case PtLocOnEdge:
		out.PushBack(s.EdgeOrg(res.Edge))
		out.PushBack(s.EdgeDst(res.Edge))
	case PtLocInside:
		out.PushBack(s.EdgeOrg(res.Edge))
		out.PushBack(s.EdgeDst(res.Edge))
		out.PushBack(s.EdgeDst(s.lnext(res.Edge)))
	}
	return out
}

// LocateVertexIds is LocateVertexIdsArray returned as a plain slice.
func (s *Subdivision) LocateVertexIds(pt Point2f) []VertexId {
	va := s.LocateVertexIdsArray(pt)
	return va.Slice()
}

// LocateVertexIdsForInterpolationArray is LocateVertexIdsArray, refined to
// never return a synthetic BoundaryCorner vertex: if the raw result
// includes one, the walk steps across the edge opposite it into the
// neighbouring triangle and retries, up to a small bounded number of
// hops.
func (s *Subdivision) LocateVertexIdsForInterpolationArray(pt Point2f) VertexArray {
	res, err := s.Locate(pt)
	if err != nil || res.Loc == PtLocError || res.Loc == PtLocOutsideRect {
		return VertexArray{}
	}

	e := res.Edge
	if res.Loc == PtLocVertex {
		var out VertexArray
		if !IsVertexBoundary(res.Vertex) {
			out.PushBack(res.Vertex)
		}
		return out
	}

	const maxHops = 8
	for hop := 0; hop < maxHops; hop++ {
		a, b, c := s.EdgeOrg(e), s.EdgeDst(e), s.EdgeDst(s.lnext(e))
		switch {
		case IsVertexBoundary(a):
			e = sym(s.lnext(e))
		case IsVertexBoundary(b):
			e = sym(s.lprev(e))
		case IsVertexBoundary(c):
			e = sym(e)
		default:
			var out VertexArray
			out.PushBack(a)
			if res.Loc != PtLocVertex || b != InvalidVertex {
				out.PushBack(b)
			}
			out.PushBack(c)
			return out
		}
	}
	return VertexArray{}
}

// LocateVertexIdsForInterpolation is LocateVertexIdsForInterpolationArray
// returned as a plain slice.
func (s *Subdivision) LocateVertexIdsForInterpolation(pt Point2f) []VertexId {
	va := s.LocateVertexIdsForInterpolationArray(pt)
	return va.Slice()
}

package subdiv2d

// Insert adds pt to the subdivision, restoring the Delaunay property via
// Lawson flips, and returns its vertex id. If pt coincides with an
// existing vertex, that vertex's id is returned unchanged and no topology
// is touched. If pt lies outside the bounding rectangle, ErrOutOfRange is
// returned.
func (s *Subdivision) Insert(pt Point2f) (VertexId, error) {
	if !s.initialized {
		return InvalidVertex, ErrNotInitialised
	}
	if !s.containsPoint(pt) {
		return InvalidVertex, ErrOutOfRange
	}

	res, err := s.Locate(pt)
	if err != nil {
		return InvalidVertex, err
	}

	var baseEdge EdgeId
	switch res.Loc {
	case PtLocError:
		return InvalidVertex, ErrLocateFailed
	case PtLocVertex:
		return res.Vertex, nil
	case PtLocOnEdge:
		e := res.Edge
		baseEdge = s.oprev(e)
		s.clearVoronoi()
		s.deleteEdge(e)
	case PtLocInside:
		baseEdge = res.Edge
		s.clearVoronoi()
	default:
		return InvalidVertex, ErrLocateFailed
	}

	// Snapshot the polygon boundary before stellating: these are the
	// edges opposite the new vertex that Lawson flips must examine.
	polygon := make([]EdgeId, 0, 8)
	for w := baseEdge; ; {
		polygon = append(polygon, w)
		w = s.lnext(w)
		if w == baseEdge {
			break
		}
	}

	v := s.newPoint(pt, VertexReal, InvalidEdge)
	s.stellate(baseEdge, v)
	s.lawsonFlips(v, polygon)
	return v, nil
}

// stellate connects v to every vertex of the polygon whose boundary
// starts at startEdge, following Guibas-Stolfi's incremental-insertion
// construction: a first spoke is spliced in at Org(startEdge), then each
// subsequent spoke is built with Connect while walking Oprev around the
// freshly closed triangle fan.
func (s *Subdivision) stellate(startEdge EdgeId, v VertexId) {
	first := s.EdgeOrg(startEdge)
	base := s.makeEdge()
	s.setEndpoints(base, first, v)
	s.splice(base, startEdge)

	e := startEdge
	for {
		base = s.connect(e, sym(base))
		e = s.oprev(base)
		if s.EdgeDst(e) == first {
			break
		}
	}
}

// InsertMany inserts each point in pts in order, returning their vertex
// ids. It stops and returns the partial results and the first error
// encountered; points already committed before the failing one remain in
// the subdivision.
func (s *Subdivision) InsertMany(pts []Point2f) ([]VertexId, error) {
	ids := make([]VertexId, 0, len(pts))
	for _, pt := range pts {
		v, err := s.Insert(pt)
		if err != nil {
			return ids, err
		}
		ids = append(ids, v)
	}
	return ids, nil
}

// lawsonFlips repairs the Delaunay property after stellating v into the
// polygon bounded by the edges in worklist: Left(e) is the new triangle
// (Org(e), Dest(e), v) for every e still in worklist, so swapping e is
// legal exactly when v lies inside the circumcircle of the triangle
// opposite it, (Dest(e), Org(e), farApex). A swap exposes two new
// boundary edges, (Org(e), farApex) and (farApex, Dest(e)), which are
// re-queued for their own legality check.
func (s *Subdivision) lawsonFlips(v VertexId, worklist []EdgeId) {
	queue := append([]EdgeId(nil), worklist...)
	vPt := s.pointAt(v)

	for len(queue) > 0 {
		e := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		if int(qe(e)) >= len(s.qedges) || !s.qedges[qe(e)].inUse {
			continue
		}
		if s.EdgeOrg(e) == v || s.EdgeDst(e) == v {
			continue
		}

		farApex := s.EdgeDst(s.lnext(sym(e)))
		if farApex == InvalidVertex {
			continue
		}

		if inCircle(s.pointAt(s.EdgeDst(e)), s.pointAt(s.EdgeOrg(e)), s.pointAt(farApex), vPt) <= incircleEpsilon {
			continue
		}

		edgeA := s.lnext(sym(e))
		edgeB := s.lnext(edgeA)
		s.swap(e)
		queue = append(queue, edgeA, edgeB)
	}
}

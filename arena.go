package subdiv2d

// This file holds the five quad-edge topology primitives (MakeEdge,
// Splice, Connect, DeleteEdge, Swap) plus the arena bookkeeping
// (newPoint/deletePoint, free lists) they are built on.

// makeEdge allocates a fresh, disconnected quad-edge and returns its
// primal forward EdgeId. The three other directed edges sharing the
// quad-edge's storage are reachable via rotate/sym from that id.
func (s *Subdivision) makeEdge() EdgeId {
	var q QuadEdgeId
	if s.freeQEdge != InvalidQuadEdge {
		q = s.freeQEdge
		s.freeQEdge = s.qedges[q].nextFreeQE
		s.qedges[q] = quadEdge{}
	} else {
		q = QuadEdgeId(len(s.qedges))
		s.qedges = append(s.qedges, quadEdge{})
	}

	s.qedges[q].inUse = true
	for r := 0; r < 4; r++ {
		s.qedges[q].endpoints[r] = InvalidVertex
	}

	e0 := edgeID(q, 0)
	e1 := edgeID(q, 1)
	e2 := edgeID(q, 2)
	e3 := edgeID(q, 3)
	s.setOnext(e0, e0)
	s.setOnext(e2, e2)
	s.setOnext(e1, e3)
	s.setOnext(e3, e1)
	return e0
}

// deleteEdge removes e (and its sym, and both dual edges) from the
// subdivision, splicing it out of the rings around its endpoints first,
// then returns the quad-edge to the free list.
func (s *Subdivision) deleteEdge(e EdgeId) {
	s.splice(e, s.oprev(e))
	sy := sym(e)
	s.splice(sy, s.oprev(sy))

	q := qe(e)
	s.qedges[q] = quadEdge{nextFreeQE: s.freeQEdge}
	s.freeQEdge = q
}

// splice is Guibas-Stolfi's topological operator: it either merges or
// splits the Onext rings of a and b, depending on whether they were
// already in the same ring. It is its own inverse: calling it twice with
// the same (transformed) arguments undoes the first call.
func (s *Subdivision) splice(a, b EdgeId) {
	alpha := rotate(s.onext(a), 1)
	beta := rotate(s.onext(b), 1)

	aOnext := s.onext(a)
	bOnext := s.onext(b)
	alphaOnext := s.onext(alpha)
	betaOnext := s.onext(beta)

	s.setOnext(a, bOnext)
	s.setOnext(b, aOnext)
	s.setOnext(alpha, betaOnext)
	s.setOnext(beta, alphaOnext)
}

// connect creates a new edge from dst(a) to org(b) and splices it into the
// subdivision so that the new edge shares the left face of a and b.
func (s *Subdivision) connect(a, b EdgeId) EdgeId {
	e := s.makeEdge()
	s.setEndpoints(e, s.EdgeDst(a), s.EdgeOrg(b))
	s.splice(e, s.lnext(a))
	s.splice(sym(e), b)
	return e
}

// swap flips the diagonal e of the quadrilateral formed by the two
// triangles adjoining it, restoring the Delaunay property locally. e's
// endpoints move from (org,dst) to the two opposite vertices of the
// quadrilateral.
func (s *Subdivision) swap(e EdgeId) {
	a := s.oprev(e)
	b := s.oprev(sym(e))

	s.splice(e, a)
	s.splice(sym(e), b)
	s.splice(e, s.lnext(a))
	s.splice(sym(e), s.lnext(b))

	s.setEndpoints(e, s.EdgeDst(a), s.EdgeDst(b))
}

// newPoint allocates a vertex record, recycling a free-list slot when one
// is available, and returns its VertexId.
func (s *Subdivision) newPoint(pt Point2f, kind VertexKind, firstEdge EdgeId) VertexId {
	var v VertexId
	if s.freeVertex != InvalidVertex {
		v = s.freeVertex
		s.freeVertex = s.vertices[v].nextFreeVertex
		s.vertices[v] = vertex{}
	} else {
		v = VertexId(len(s.vertices))
		s.vertices = append(s.vertices, vertex{})
	}
	s.vertices[v] = vertex{pt: pt, kind: kind, firstEdge: firstEdge}
	return v
}

// deletePoint returns vertex v to the free list. Any edges still
// referencing v must be detached first by the caller.
func (s *Subdivision) deletePoint(v VertexId) {
	s.vertices[v] = vertex{kind: VertexFree, nextFreeVertex: s.freeVertex}
	s.freeVertex = v
}

func (s *Subdivision) setEndpoints(e EdgeId, org, dst VertexId) {
	s.qedges[qe(e)].endpoints[rot(e)] = org
	s.qedges[qe(e)].endpoints[rot(sym(e))] = dst
	if org != InvalidVertex {
		s.vertices[org].firstEdge = e
	}
	if dst != InvalidVertex {
		s.vertices[dst].firstEdge = sym(e)
	}
}

// EdgeOrg returns the origin vertex of e.
func (s *Subdivision) EdgeOrg(e EdgeId) VertexId {
	s.dbgAssertEdgeInRange(e)
	return s.qedges[qe(e)].endpoints[rot(e)]
}

// EdgeDst returns the destination vertex of e.
func (s *Subdivision) EdgeDst(e EdgeId) VertexId {
	s.dbgAssertEdgeInRange(e)
	return s.qedges[qe(e)].endpoints[rot(sym(e))]
}

// isRightOf reports whether pt lies strictly to the right of the directed
// line org(e) -> dst(e).
func (s *Subdivision) isRightOf(pt Point2f, e EdgeId) bool {
	return orient(pt, s.pointAt(s.EdgeDst(e)), s.pointAt(s.EdgeOrg(e))) > 0
}

func (s *Subdivision) dbgAssertEdgeInRange(e EdgeId) {
	debugAssert(e != InvalidEdge && int(qe(e)) < len(s.qedges) && s.qedges[qe(e)].inUse,
		"subdiv2d: edge id out of range or not in use")
}

func (s *Subdivision) dbgAssertVertexInRange(v VertexId) {
	debugAssert(v != InvalidVertex && int(v) < len(s.vertices), "subdiv2d: vertex id out of range")
}

package subdiv2d

// EdgeId addresses one of the four directed-edge records sharing a
// QuadEdge's storage: (quadEdgeIndex << 2) | rotation, where rotation 0/2
// are the primal forward/reversed edges and 1/3 are the dual
// forward/reversed edges.
type EdgeId uint32

// VertexId addresses a vertex record in the vertex arena.
type VertexId uint32

// QuadEdgeId addresses one quad-edge (four EdgeIds) in the edge arena.
type QuadEdgeId uint32

// Reserved sentinel ids, distinct from any valid index.
const (
	InvalidEdge     EdgeId     = ^EdgeId(0)
	InvalidVertex   VertexId   = ^VertexId(0)
	InvalidQuadEdge QuadEdgeId = ^QuadEdgeId(0)
)

// Navigation type constants for GetEdge, per the original Subdiv2D
// getEdge() bit encoding: the low nibble selects the rotation applied
// before taking Onext, the high nibble the rotation applied after.
const (
	NextAroundOrg   = 0x00
	NextAroundDst   = 0x22
	PrevAroundOrg   = 0x11
	PrevAroundDst   = 0x33
	NextAroundLeft  = 0x13
	NextAroundRight = 0x31
	PrevAroundLeft  = 0x20
	PrevAroundRight = 0x02
)

func rot(e EdgeId) int { return int(e & 3) }

func qe(e EdgeId) QuadEdgeId { return QuadEdgeId(e >> 2) }

func edgeID(q QuadEdgeId, r int) EdgeId {
	return EdgeId(q)<<2 | EdgeId(r&3)
}

// rotate returns the edge obtained by rotating e by k quarter-turns
// (positive or negative); rotate(rotate(e,k), -k) == e always holds since
// Go's bitwise & on a two's-complement int correctly reduces negative k
// modulo 4.
func rotate(e EdgeId, k int) EdgeId {
	return edgeID(qe(e), (rot(e)+k)&3)
}

// sym returns the reversed edge of the same primal/dual kind as e.
func sym(e EdgeId) EdgeId { return rotate(e, 2) }

// onext returns the next edge counter-clockwise around org(e).
func (s *Subdivision) onext(e EdgeId) EdgeId {
	return s.qedges[qe(e)].next[rot(e)]
}

func (s *Subdivision) setOnext(e, value EdgeId) {
	s.qedges[qe(e)].next[rot(e)] = value
}

// oprev returns the previous edge around org(e).
func (s *Subdivision) oprev(e EdgeId) EdgeId {
	return rotate(s.onext(rotate(e, 1)), 1)
}

// dnext returns the next edge around dst(e).
func (s *Subdivision) dnext(e EdgeId) EdgeId {
	return sym(s.onext(sym(e)))
}

// dprev returns the previous edge around dst(e).
func (s *Subdivision) dprev(e EdgeId) EdgeId {
	return rotate(s.onext(rotate(e, -1)), -1)
}

// lnext returns the next edge around the left face of e.
func (s *Subdivision) lnext(e EdgeId) EdgeId {
	return rotate(s.onext(rotate(e, -1)), 1)
}

// lprev returns the previous edge around the left face of e.
func (s *Subdivision) lprev(e EdgeId) EdgeId {
	return sym(s.onext(e))
}

// rnext returns the next edge around the right face of e.
func (s *Subdivision) rnext(e EdgeId) EdgeId {
	return rotate(s.onext(rotate(e, 1)), -1)
}

// rprev returns the previous edge around the right face of e.
func (s *Subdivision) rprev(e EdgeId) EdgeId {
	return s.onext(sym(e))
}

// GetEdge returns the edge related to e by nav, one of the NextAround*/
// PrevAround* constants.
func (s *Subdivision) GetEdge(e EdgeId, nav int) EdgeId {
	s.dbgAssertEdgeInRange(e)
	pre := nav & 0x0F
	post := (nav >> 4) & 0x0F
	return rotate(s.onext(rotate(e, pre)), post)
}

// NextEdge returns Onext(e): the next edge counter-clockwise around org(e).
func (s *Subdivision) NextEdge(e EdgeId) EdgeId {
	s.dbgAssertEdgeInRange(e)
	return s.onext(e)
}

// RotateEdge returns the edge of the same quad-edge as e at rotation
// rot(e)+r.
func (s *Subdivision) RotateEdge(e EdgeId, r int) EdgeId {
	return rotate(e, r)
}

// SymEdge returns the reversed edge of e.
func (s *Subdivision) SymEdge(e EdgeId) EdgeId {
	return sym(e)
}

package subdiv2d

import "math"

// VertexKind classifies a vertex record's role in the subdivision.
type VertexKind int

const (
	// VertexFree marks a reclaimed slot sitting on the vertex free list.
	VertexFree VertexKind = iota
	// VertexReal marks a user-inserted point.
	VertexReal
	// VertexVirtualDual marks a circumcenter created by CalcVoronoi.
	VertexVirtualDual
	// VertexBoundaryCorner marks one of the three synthetic outer-triangle
	// corners planted by Init.
	VertexBoundaryCorner
)

type quadEdge struct {
	next       [4]EdgeId
	endpoints  [4]VertexId
	inUse      bool
	nextFreeQE QuadEdgeId
}

type vertex struct {
	pt             Point2f
	firstEdge      EdgeId
	kind           VertexKind
	nextFreeVertex VertexId
}

// Subdivision is a planar subdivision under incremental Delaunay
// triangulation: a quad-edge arena plus a vertex arena, together with the
// bookkeeping (free lists, recent-edge cache, Voronoi validity flag) the
// topology operators and point-location walk depend on.
//
// A zero-value Subdivision is not usable; call Init or InitWithOptions
// first. Subdivision is not safe for concurrent mutation and does no
// internal locking.
type Subdivision struct {
	vertices      []vertex
	qedges        []quadEdge
	freeQEdge     QuadEdgeId
	freeVertex    VertexId
	validGeometry bool
	recentEdge    EdgeId
	topLeft       Point2f
	bottomRight   Point2f
	initialized   bool
}

// Options tunes arena preallocation. It does not change triangulation
// semantics.
type Options struct {
	// InitialVertexCapacity hints how many user points will be inserted,
	// so the vertex and quad-edge arenas can be preallocated once instead
	// of growing incrementally.
	InitialVertexCapacity int
}

// DefaultOptions returns the Options used by Init.
func DefaultOptions() Options {
	return Options{InitialVertexCapacity: 64}
}

// New returns an uninitialised Subdivision; call Init before using it.
func New() *Subdivision {
	return &Subdivision{freeQEdge: InvalidQuadEdge, freeVertex: InvalidVertex, recentEdge: InvalidEdge}
}

// Init creates a new empty Delaunay subdivision bounded by rect, discarding
// any prior state. All points passed to Insert must fall within rect.
func (s *Subdivision) Init(rect Rect) error {
	return s.InitWithOptions(rect, DefaultOptions())
}

// InitWithOptions is Init with an arena-sizing hint.
func (s *Subdivision) InitWithOptions(rect Rect, opts Options) error {
	if rect.Width <= 0 || rect.Height <= 0 {
		return ErrInvalidRect
	}

	n := opts.InitialVertexCapacity
	if n < 0 {
		n = 0
	}

	*s = Subdivision{
		vertices:    make([]vertex, 0, n+4),
		qedges:      make([]quadEdge, 0, 3*n+4),
		freeQEdge:   InvalidQuadEdge,
		freeVertex:  InvalidVertex,
		recentEdge:  InvalidEdge,
		topLeft:     Point2f{X: float32(rect.X), Y: float32(rect.Y)},
		bottomRight: Point2f{X: float32(rect.X + rect.Width), Y: float32(rect.Y + rect.Height)},
		initialized: true,
	}

	// Index 0 is a permanent placeholder: an always-free vertex and an
	// always-free quad-edge, never returned from any query and never
	// recycled by the free lists below.
	s.qedges = append(s.qedges, quadEdge{})
	s.vertices = append(s.vertices, vertex{})

	bigCoord := 3 * float32(math.Max(float64(rect.Width), float64(rect.Height)))
	origin := Point2f{X: float32(rect.X), Y: float32(rect.Y)}
	ptA := Point2f{X: bigCoord, Y: 0}.Add(origin)
	ptB := Point2f{X: 0, Y: bigCoord}.Add(origin)
	ptC := Point2f{X: -bigCoord, Y: -bigCoord}.Add(origin)

	pA := s.newPoint(ptA, VertexBoundaryCorner, InvalidEdge)
	pB := s.newPoint(ptB, VertexBoundaryCorner, InvalidEdge)
	pC := s.newPoint(ptC, VertexBoundaryCorner, InvalidEdge)

	edgeAB := s.makeEdge()
	edgeBC := s.makeEdge()
	edgeCA := s.makeEdge()

	s.setEndpoints(edgeAB, pA, pB)
	s.setEndpoints(edgeBC, pB, pC)
	s.setEndpoints(edgeCA, pC, pA)

	s.splice(edgeAB, sym(edgeCA))
	s.splice(edgeBC, sym(edgeAB))
	s.splice(edgeCA, sym(edgeBC))

	s.vertices[pA].firstEdge = edgeAB
	s.vertices[pB].firstEdge = edgeBC
	s.vertices[pC].firstEdge = edgeCA

	s.recentEdge = edgeAB
	return nil
}

// NumVertices returns the number of vertex slots in the arena, including
// the placeholder, the three boundary corners, Voronoi vertices and freed
// slots awaiting reuse.
func (s *Subdivision) NumVertices() int { return len(s.vertices) }

// Empty reports whether the subdivision has no user-inserted vertices.
func (s *Subdivision) Empty() bool {
	if !s.initialized {
		return true
	}
	for v := 4; v < len(s.vertices); v++ {
		if s.vertices[v].kind == VertexReal {
			return false
		}
	}
	return true
}

// IsVertexBoundary reports whether vertex is one of the three synthetic
// outer-triangle corners planted by Init. It is a pure function of the id,
// since those three ids (1..3) are permanent for the lifetime of a
// subdivision.
func IsVertexBoundary(vertex VertexId) bool {
	return vertex >= 1 && vertex <= 3
}

func (s *Subdivision) containsPoint(pt Point2f) bool {
	return s.topLeft.X <= pt.X && pt.X < s.bottomRight.X &&
		s.topLeft.Y <= pt.Y && pt.Y < s.bottomRight.Y
}

func (s *Subdivision) pointAt(v VertexId) Point2f {
	if v == InvalidVertex || int(v) >= len(s.vertices) {
		return Point2f{}
	}
	return s.vertices[v].pt
}

// LocateVertices resolves LocateVertexIdsArray to points directly.
func (s *Subdivision) LocateVertices(pt Point2f) ([]Point2f, error) {
	if !s.initialized {
		return nil, ErrNotInitialised
	}
	va := s.LocateVertexIdsArray(pt)
	out := make([]Point2f, 0, va.Len())
	for i := 0; i < va.Len(); i++ {
		out = append(out, s.pointAt(va.At(i)))
	}
	return out, nil
}

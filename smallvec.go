package subdiv2d

// VertexArray is a fixed-capacity holder for the 0-3 vertex ids a point
// location can resolve to (an interior point resolves to one triangle's
// three corners at most; a point exactly on an edge to two; a point on an
// existing vertex to one). It avoids a heap allocation for the common
// case, the same role OpenCV's small stack-based vertex buffer plays in
// Subdiv2D::locate.
type VertexArray struct {
	items [3]VertexId
	n     int
}

// PushBack appends v. It panics if the array is already at capacity,
// since the locate loop callers below never push more than is
// topologically expected.
func (a *VertexArray) PushBack(v VertexId) {
	if a.n >= len(a.items) {
		panic("subdiv2d: VertexArray overflow")
	}
	a.items[a.n] = v
	a.n++
}

// Len returns the number of vertices currently held.
func (a *VertexArray) Len() int { return a.n }

// At returns the i'th vertex id.
func (a *VertexArray) At(i int) VertexId { return a.items[i] }

// Slice returns the held vertices as a plain slice.
func (a *VertexArray) Slice() []VertexId {
	return append([]VertexId(nil), a.items[:a.n]...)
}

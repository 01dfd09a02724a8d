package subdiv2d

import "errors"

// Sentinel errors returned by subdivision operations. Callers should branch
// on these with errors.Is rather than comparing error strings.
var (
	// ErrOutOfRange indicates a point lies outside the rectangle passed to
	// Init/InitWithOptions, or, from GetVertex, a vertex id outside the
	// vertex arena.
	ErrOutOfRange = errors.New("subdiv2d: point outside bounding rectangle")

	// ErrLocateFailed indicates the point-location walk could not bracket
	// the query point (PtLocError). Insertion aborts and the subdivision is
	// left unmodified.
	ErrLocateFailed = errors.New("subdiv2d: point location walk failed")

	// ErrNotInitialised indicates a call was made before Init/InitWithOptions.
	ErrNotInitialised = errors.New("subdiv2d: subdivision not initialised")

	// ErrInvalidRect indicates a non-positive-area rectangle was passed to
	// Init/InitWithOptions.
	ErrInvalidRect = errors.New("subdiv2d: rectangle has non-positive area")
)

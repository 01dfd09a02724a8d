package subdiv2d

import "github.com/go-gl/mathgl/mgl32"

// Point2f is a 2D point with float32 coordinates. Equality is bitwise on
// the (X, Y) pair, matching Types.h's Point_<float>.
type Point2f struct {
	X, Y float32
}

func (p Point2f) vec() mgl32.Vec2 { return mgl32.Vec2{p.X, p.Y} }

// Add returns the componentwise sum of p and q.
func (p Point2f) Add(q Point2f) Point2f {
	v := p.vec().Add(q.vec())
	return Point2f{v[0], v[1]}
}

// Sub returns the componentwise difference p - q.
func (p Point2f) Sub(q Point2f) Point2f {
	v := p.vec().Sub(q.vec())
	return Point2f{v[0], v[1]}
}

// Dot returns the dot product of p and q.
func (p Point2f) Dot(q Point2f) float32 {
	return p.vec().Dot(q.vec())
}

// SquaredNorm returns the squared Euclidean length of p.
func (p Point2f) SquaredNorm() float32 {
	return p.Dot(p)
}

// Norm returns the Euclidean length of p.
func (p Point2f) Norm() float32 {
	return p.vec().Len()
}

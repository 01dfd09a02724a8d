package subdiv2d

import "github.com/go-gl/mathgl/mgl64"

// incircleEpsilon guards the Lawson-flip loop against cycling on nearly
// cocircular configurations, the same role the teacher's 1e-7 threshold
// plays around its own circumcircle determinant.
const incircleEpsilon = 1e-7

// doubleTriangleArea computes twice the signed area of triangle (a,b,c) in
// double precision, regardless of the float32 storage of the points.
func doubleTriangleArea(a, b, c Point2f) float64 {
	ax, ay := float64(a.X), float64(a.Y)
	bx, by := float64(b.X), float64(b.Y)
	cx, cy := float64(c.X), float64(c.Y)
	return (bx-ax)*(cy-ay) - (by-ay)*(cx-ax)
}

// orient returns 1 if (a,b,c) turns counter-clockwise, -1 if clockwise, and
// 0 if the three points are exactly collinear. No epsilon is applied.
func orient(a, b, c Point2f) int {
	area := doubleTriangleArea(a, b, c)
	switch {
	case area > 0:
		return 1
	case area < 0:
		return -1
	default:
		return 0
	}
}

// inCircle computes the classical lifted-paraboloid 4x4 determinant for
// the in-circle test: positive when d lies strictly inside the
// circumcircle of (a,b,c) listed counter-clockwise. This generalizes the
// teacher's mgl32.Mat4{...}.Det() circumcircle test to double precision via
// mgl64, since the predicate must run wider than the stored float32
// coordinates.
func inCircle(a, b, c, d Point2f) float64 {
	lift := func(p Point2f) (float64, float64, float64) {
		x, y := float64(p.X), float64(p.Y)
		return x, y, x*x + y*y
	}
	ax, ay, aw := lift(a)
	bx, by, bw := lift(b)
	cx, cy, cw := lift(c)
	dx, dy, dw := lift(d)
	m := mgl64.Mat4{
		ax, ay, aw, 1,
		bx, by, bw, 1,
		cx, cy, cw, 1,
		dx, dy, dw, 1,
	}
	return m.Det()
}

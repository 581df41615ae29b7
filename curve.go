package easing

import (
	"errors"
	"fmt"

	"github.com/rnavega/go-bezier-easing/internal/cubic"
)

// Errors returned by the package. ErrDegenerateCurve and
// ErrMultipleSolutions are the solver's own sentinels re-exported, so
// errors.Is works against either name.
var (
	// ErrDegenerateCurve indicates control points whose horizontal motion
	// is at most quadratic; such a curve cannot be handled by the cubic
	// solver and is rejected at construction or mutation time.
	ErrDegenerateCurve = cubic.ErrDegenerate

	// ErrMultipleSolutions indicates a query time that the curve crosses
	// more than once, i.e. the curve is not monotonic in time. Fix the
	// control points rather than handling this per frame; Crossings is
	// the explicit path for callers who want every crossing.
	ErrMultipleSolutions = cubic.ErrMultipleRoots

	// ErrControlPointIndex indicates a control point index outside 0..3.
	ErrControlPointIndex = errors.New("control point index out of range")
)

// Point is a 2D control or curve point. X is the time axis, Y the progress
// axis.
type Point struct {
	X, Y float64
}

// Curve is a cubic Bézier easing curve: a mapping from input time to eased
// progress, defined by four control points and monotonic in its horizontal
// coordinate. The solver constants for the current control points are
// derived at construction and after every mutation, so a Curve is never
// observable with a stale cache.
//
// A Curve is not safe for concurrent mutation; solving from multiple
// goroutines is fine as long as no SetControlPoint call is in flight.
// Independent Curves share no state.
type Curve struct {
	points [4]Point
	coeffs cubic.Coefficients
	tol    float64
}

// New builds a curve from four control points. The horizontal control
// values must describe genuinely cubic motion; otherwise
// ErrDegenerateCurve is returned.
func New(p0, p1, p2, p3 Point) (*Curve, error) {
	c := &Curve{
		points: [4]Point{p0, p1, p2, p3},
		tol:    cubic.DefaultBoundaryTolerance,
	}
	coeffs, err := cubic.Derive(p0.X, p1.X, p2.X, p3.X)
	if err != nil {
		return nil, err
	}
	c.coeffs = coeffs
	return c, nil
}

// NewUnit builds a unit-domain curve with the endpoints fixed at (0,0) and
// (1,1), the convention of CSS cubic-bezier() and most animation systems.
func NewUnit(x1, y1, x2, y2 float64) (*Curve, error) {
	return New(Point{}, Point{x1, y1}, Point{x2, y2}, Point{1, 1})
}

// ControlPoint returns the i-th control point, i in 0..3.
func (c *Curve) ControlPoint(i int) Point {
	return c.points[i]
}

// SetControlPoint replaces the i-th control point and re-derives the solver
// constants before returning. If the new points would make the curve
// degenerate, the curve is left unchanged and ErrDegenerateCurve is
// returned.
func (c *Curve) SetControlPoint(i int, p Point) error {
	if i < 0 || i >= len(c.points) {
		return fmt.Errorf("%w: %d", ErrControlPointIndex, i)
	}
	prev := c.points[i]
	c.points[i] = p
	coeffs, err := cubic.Derive(c.points[0].X, c.points[1].X, c.points[2].X, c.points[3].X)
	if err != nil {
		c.points[i] = prev
		return err
	}
	c.coeffs = coeffs
	return nil
}

// Domain returns the curve's horizontal span: the time values at t=0 and
// t=1. For a NewUnit curve this is (0, 1).
func (c *Curve) Domain() (start, end float64) {
	return c.points[0].X, c.points[3].X
}

// SetBoundaryTolerance adjusts the acceptance slack at the t=0 and t=1
// boundaries. Roots within tol outside [0,1] are snapped to the nearest
// endpoint; a tolerance of 0 rejects them as out of domain. The default is
// cubic.DefaultBoundaryTolerance; negative values are treated as 0.
func (c *Curve) SetBoundaryTolerance(tol float64) {
	c.tol = max(tol, 0)
}

// BoundaryTolerance reports the current boundary acceptance slack.
func (c *Curve) BoundaryTolerance() float64 {
	return c.tol
}

// Evaluate returns the curve point at parameter t. This is plain Bézier
// evaluation; it does not invert time. t is not clamped.
func (c *Curve) Evaluate(t float64) Point {
	return Point{
		X: evalAxis(c.points[0].X, c.points[1].X, c.points[2].X, c.points[3].X, t),
		Y: evalAxis(c.points[0].Y, c.points[1].Y, c.points[2].Y, c.points[3].Y, t),
	}
}

// SolveTime finds the curve parameter t in [0,1] whose horizontal
// coordinate equals the query time x, using the precomputed solver
// constants. ok is false when x is outside the curve's horizontal span.
// A non-monotonic curve crossed more than once returns
// ErrMultipleSolutions.
func (c *Curve) SolveTime(x float64) (t float64, ok bool, err error) {
	return c.coeffs.Solve(x, c.tol)
}

// Crossings reports every parameter in [0,1] at which the curve's
// horizontal coordinate equals x, up to three for a non-monotonic curve.
// This is the explicit recovery path for ErrMultipleSolutions; well-formed
// easing curves never produce more than one crossing.
func (c *Curve) Crossings(x float64) ([3]float64, int) {
	return c.coeffs.SolveAll(x, c.tol)
}

// At returns the eased progress at query time x: it inverts the horizontal
// coordinate and evaluates the vertical one at the resulting parameter.
// Query times outside the curve's horizontal span clamp to the progress of
// the nearest endpoint; use SolveTime for the unclamped result.
func (c *Curve) At(x float64) (float64, error) {
	t, ok, err := c.coeffs.Solve(x, c.tol)
	if err != nil {
		return 0, err
	}
	if !ok {
		if x < c.points[0].X {
			return c.points[0].Y, nil
		}
		return c.points[3].Y, nil
	}
	return evalAxis(c.points[0].Y, c.points[1].Y, c.points[2].Y, c.points[3].Y, t), nil
}

// evalAxis evaluates one coordinate of the cubic Bézier at t via the
// power basis in Horner form.
func evalAxis(p0, p1, p2, p3, t float64) float64 {
	c3 := p3 + 3*(p1-p2) - p0
	c2 := 3 * (p2 - 2*p1 + p0)
	c1 := 3 * (p1 - p0)
	return ((c3*t+c2)*t+c1)*t + p0
}

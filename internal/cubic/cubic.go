// Package cubic inverts the horizontal coordinate of a cubic Bézier easing
// curve: given the four horizontal control-point values and a query time x,
// it finds the curve parameter t in [0,1] with horizontal(t) == x.
//
// The cubic is solved in closed form. The full polynomial is reduced by its
// leading coefficient to a depressed cubic, the discriminant R² - Q³ selects
// between the Cardano branch (one real root) and the trigonometric Viète
// branch (three real roots), and candidates are filtered to [0,1]. A curve
// that is monotonic in its horizontal coordinate has exactly one crossing in
// range for any in-domain query, whichever branch produced it; more than one
// surviving candidate means the curve itself is ill-formed for easing and is
// reported as an error, with SolveAll as the explicit recovery path that
// returns every crossing.
//
// The query-independent part of the algebra is captured once per curve in a
// Coefficients value, making each subsequent solve O(1) with at most one
// sqrt and one cbrt on the common branch and no divisions.
package cubic

import (
	"errors"
	"fmt"
	"math"
)

// Errors reported by the solver.
var (
	// ErrDegenerate indicates control points whose horizontal motion is at
	// most quadratic (c3 == 0), for which the depressed-cubic reduction is
	// undefined.
	ErrDegenerate = errors.New("degenerate curve: horizontal coordinate is not cubic in t")

	// ErrMultipleRoots indicates a query time crossed more than once within
	// t in [0,1], i.e. the curve is not monotonic in its horizontal
	// coordinate. This is an authoring bug in the curve, not a runtime
	// condition to recover from; callers that intentionally want every
	// crossing use SolveAll.
	ErrMultipleRoots = errors.New("multiple crossings: curve is not monotonic in its horizontal coordinate")
)

// Coefficients holds the query-independent constants of the depressed cubic
// for one set of horizontal control points. A value is produced only by
// Derive and never mutated, so a stale cache requires the caller to have
// skipped Derive after a control-point change.
type Coefficients struct {
	ADiv3     float64 // a/3 of the reduced cubic t³ + at² + bt + c
	Q         float64 // (a/3)² - b/3
	QQQ       float64 // Q³, compared against R² to classify the root structure
	SqrtQQQ   float64 // sqrt(Q³); meaningful only when Q >= 0
	Neg2SqrtQ float64 // -2·sqrt(Q); meaningful only when Q >= 0
	PartialR  float64 // query-independent half of the depressed-cubic R term
	InvC3Half float64 // (1/c3)/2, folds the reduction and the /2 of R into one multiply
	P0X       float64 // first horizontal control point, forms the query-dependent term
}

// Derive computes the solver constants for the given horizontal
// control-point values. It is a pure function of its inputs and must be
// called again after any control-point change and before the next
// Coefficients.Solve. Control points with |c3| <= DegenerateEpsilon return
// ErrDegenerate.
func Derive(p0x, p1x, p2x, p3x float64) (Coefficients, error) {
	c3 := p3x + 3*(p1x-p2x) - p0x
	if math.Abs(c3) <= DegenerateEpsilon {
		return Coefficients{}, fmt.Errorf("%w: control points %v, %v, %v, %v", ErrDegenerate, p0x, p1x, p2x, p3x)
	}
	c2 := 3 * (p2x - 2*p1x + p0x)
	c1 := 3 * (p1x - p0x)

	a := c2 / c3
	b := c1 / c3
	aDiv3 := a * oneThird

	q := aDiv3*aDiv3 - b*oneThird
	co := Coefficients{
		ADiv3:     aDiv3,
		Q:         q,
		QQQ:       q * q * q,
		PartialR:  (2*aDiv3*aDiv3*aDiv3 - aDiv3*b) * 0.5,
		InvC3Half: (1 / c3) * 0.5,
		P0X:       p0x,
	}
	if q >= 0 {
		// The Viète branch requires R² < Q³, which is unreachable for
		// Q < 0, so these stay zero there.
		co.SqrtQQQ = math.Sqrt(co.QQQ)
		co.Neg2SqrtQ = -2 * math.Sqrt(q)
	}
	return co, nil
}

// Solve finds t in [0,1] with horizontal(t) == x using the precomputed
// constants. ok is false when x lies outside the curve's horizontal span.
// A query with more than one crossing in range returns ErrMultipleRoots.
//
// This is the per-frame fast path: one multiply forms the query-dependent
// term, and the common branch costs a single sqrt and cbrt.
func (c Coefficients) Solve(x, tol float64) (t float64, ok bool, err error) {
	r := c.PartialR + (c.P0X-x)*c.InvC3Half
	if r*r < c.QQQ {
		roots, n := filterRoots(vieteRoots(r, c.SqrtQQQ, c.Neg2SqrtQ, c.ADiv3), tol)
		return uniqueRoot(roots, n, x)
	}
	t, ok = accept(cardanoRoot(r, c.QQQ, c.Q, c.ADiv3), tol)
	return t, ok, nil
}

// SolveAll is the explicit recovery path: it reports every crossing of the
// query time that lies in [0,1], up to three on the Viète branch. Unlike
// Solve it never fails on a non-monotonic curve.
func (c Coefficients) SolveAll(x, tol float64) ([3]float64, int) {
	r := c.PartialR + (c.P0X-x)*c.InvC3Half
	if r*r < c.QQQ {
		return filterRoots(vieteRoots(r, c.SqrtQQQ, c.Neg2SqrtQ, c.ADiv3), tol)
	}
	var out [3]float64
	var n int
	if t, ok := accept(cardanoRoot(r, c.QQQ, c.Q, c.ADiv3), tol); ok {
		out[0] = t
		n = 1
	}
	return out, n
}

// Solve is the self-contained cold path: it derives every coefficient from
// the control points on each call. Intended for one-off queries; repeated
// queries against the same curve should go through Derive and
// Coefficients.Solve instead.
func Solve(x, p0x, p1x, p2x, p3x, tol float64) (t float64, ok bool, err error) {
	r, q, qqq, aDiv3, err := scratch(x, p0x, p1x, p2x, p3x)
	if err != nil {
		return 0, false, err
	}
	if r*r < qqq {
		roots, n := filterRoots(vieteRoots(r, math.Sqrt(qqq), -2*math.Sqrt(q), aDiv3), tol)
		return uniqueRoot(roots, n, x)
	}
	t, ok = accept(cardanoRoot(r, qqq, q, aDiv3), tol)
	return t, ok, nil
}

// SolveAll is the cold-path counterpart of Coefficients.SolveAll.
func SolveAll(x, p0x, p1x, p2x, p3x, tol float64) ([3]float64, int, error) {
	r, q, qqq, aDiv3, err := scratch(x, p0x, p1x, p2x, p3x)
	if err != nil {
		return [3]float64{}, 0, err
	}
	if r*r < qqq {
		roots, n := filterRoots(vieteRoots(r, math.Sqrt(qqq), -2*math.Sqrt(q), aDiv3), tol)
		return roots, n, nil
	}
	var out [3]float64
	var n int
	if t, ok := accept(cardanoRoot(r, qqq, q, aDiv3), tol); ok {
		out[0] = t
		n = 1
	}
	return out, n, nil
}

// scratch derives the depressed-cubic terms for a single query without a
// Coefficients value.
func scratch(x, p0x, p1x, p2x, p3x float64) (r, q, qqq, aDiv3 float64, err error) {
	c3 := p3x + 3*(p1x-p2x) - p0x
	if math.Abs(c3) <= DegenerateEpsilon {
		return 0, 0, 0, 0, fmt.Errorf("%w: control points %v, %v, %v, %v", ErrDegenerate, p0x, p1x, p2x, p3x)
	}
	c2 := 3 * (p2x - 2*p1x + p0x)
	c1 := 3 * (p1x - p0x)
	c0 := p0x - x

	a := c2 / c3
	b := c1 / c3
	c := c0 / c3
	aDiv3 = a * oneThird

	q = aDiv3*aDiv3 - b*oneThird
	r = (2*aDiv3*aDiv3*aDiv3 - aDiv3*b + c) * 0.5
	return r, q, q * q * q, aDiv3, nil
}

// uniqueRoot maps a filtered Viète candidate set onto the default-path
// result: no crossing, exactly one, or the multiple-crossings failure.
//
// A tangency query (double root, e.g. a curve with zero horizontal speed at
// an endpoint, like the CSS ease-out keyword at t=0) lands on the Viète
// branch with the double root split into two candidates by rounding;
// candidates spanning no more than CoincidentRootEpsilon collapse to a
// single crossing.
func uniqueRoot(roots [3]float64, n int, x float64) (float64, bool, error) {
	switch n {
	case 0:
		return 0, false, nil
	case 1:
		return roots[0], true, nil
	}
	lo, hi := roots[0], roots[0]
	for _, t := range roots[1:n] {
		lo = min(lo, t)
		hi = max(hi, t)
	}
	if hi-lo <= CoincidentRootEpsilon {
		return roots[0], true, nil
	}
	return 0, false, fmt.Errorf("%w: query time %v crossed %d times", ErrMultipleRoots, x, n)
}

// cardanoRoot extracts the single real root on the R² >= Q³ branch. The
// sign of R decides which of the two algebraically equivalent forms is
// evaluated, keeping the terms under the cube root from cancelling.
func cardanoRoot(r, qqq, q, aDiv3 float64) float64 {
	d := math.Sqrt(r*r - qqq)
	var bigA float64
	if r > 0 {
		bigA = -math.Cbrt(r + d)
	} else {
		bigA = math.Cbrt(-r + d)
	}
	t := bigA - aDiv3
	if bigA != 0 {
		// bigA == 0 happens at a triple root; dividing there would turn
		// Q/A into NaN when Q is also 0.
		t += q / bigA
	}
	return t
}

// vieteRoots extracts the three real roots on the R² < Q³ branch via the
// trigonometric form.
func vieteRoots(r, sqrtQQQ, neg2SqrtQ, aDiv3 float64) [3]float64 {
	theta := math.Acos(r / sqrtQQQ)
	return [3]float64{
		neg2SqrtQ*math.Cos(theta*oneThird) - aDiv3,
		neg2SqrtQ*math.Cos((theta+twoPi)*oneThird) - aDiv3,
		neg2SqrtQ*math.Cos((theta-twoPi)*oneThird) - aDiv3,
	}
}

// filterRoots keeps the candidates accepted by the [0,1] check, preserving
// their branch order.
func filterRoots(roots [3]float64, tol float64) ([3]float64, int) {
	var out [3]float64
	var n int
	for _, t := range roots {
		if t, ok := accept(t, tol); ok {
			out[n] = t
			n++
		}
	}
	return out, n
}

// accept applies the boundary policy: candidates in [-tol, 1+tol] are
// clamped into [0,1], everything else is out of domain.
func accept(t, tol float64) (float64, bool) {
	if t < -tol || t > 1+tol {
		return 0, false
	}
	return min(max(t, 0), 1), true
}

package cubic

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

const (
	// Test tolerances
	roundTripTolerance  = 1e-6
	pathMatchTolerance  = 1e-12
	exactRootTolerance  = 1e-9
	roundTripGridPoints = 101
)

// Horizontal control-point sets used across the tests.
var (
	// CSS cubic-bezier keyword curves (unit domain, strictly increasing x).
	easeX      = [4]float64{0, 0.25, 0.25, 1}
	easeInX    = [4]float64{0, 0.42, 1, 1}
	easeOutX   = [4]float64{0, 0, 0.58, 1}
	easeInOutX = [4]float64{0, 0.42, 0.58, 1}

	// Symmetric ease-in-out whose mid queries land on the Viète branch
	// (two of the three algebraic roots fall outside [0,1]).
	wideEaseX = [4]float64{0, 0.25, 0.75, 1}

	// Non-unit horizontal span.
	shiftedX = [4]float64{2, 2.5, 3.5, 4}

	// c3 == 0: horizontal motion is exactly linear in t.
	degenerateX = [4]float64{0, 1.0 / 3.0, 2.0 / 3.0, 1}

	// Wildly non-monotonic curve: x(t) = 300t(2t-1)(t-1), crossing x=0
	// at t = 0, 0.5 and 1.
	nonMonotonicX = [4]float64{0, 100, -100, 0}

	// x(t) = t³: a triple root at t=0 for query 0, hitting the A == 0
	// special case with Q and R both exactly zero.
	tripleRootX = [4]float64{0, 0, 0, 1}
)

// horizontalAt evaluates the Bézier horizontal coordinate in Bernstein form.
// Deliberately a different formulation than the solver's power basis, so a
// shared algebra bug cannot cancel out in round-trip tests.
func horizontalAt(p [4]float64, t float64) float64 {
	mt := 1 - t
	return p[0]*mt*mt*mt + 3*p[1]*mt*mt*t + 3*p[2]*mt*t*t + p[3]*t*t*t
}

func monotonicCurves() map[string][4]float64 {
	return map[string][4]float64{
		"ease":         easeX,
		"ease_in":      easeInX,
		"ease_out":     easeOutX,
		"ease_in_out":  easeInOutX,
		"wide_ease":    wideEaseX,
		"shifted_span": shiftedX,
	}
}

// TestSolve_RoundTrip checks that solving horizontal(t0) recovers t0 on
// both the cold and the cached path for every monotonic test curve.
func TestSolve_RoundTrip(t *testing.T) {
	for name, p := range monotonicCurves() {
		t.Run(name, func(t *testing.T) {
			coeffs, err := Derive(p[0], p[1], p[2], p[3])
			require.NoError(t, err)

			for i := 0; i < roundTripGridPoints; i++ {
				t0 := float64(i) / float64(roundTripGridPoints-1)
				x := horizontalAt(p, t0)

				cold, ok, err := Solve(x, p[0], p[1], p[2], p[3], DefaultBoundaryTolerance)
				require.NoError(t, err, "cold path at t0=%v", t0)
				require.True(t, ok, "cold path out of domain at t0=%v", t0)
				assert.InDelta(t, t0, cold, roundTripTolerance, "cold path at t0=%v", t0)

				fast, ok, err := coeffs.Solve(x, DefaultBoundaryTolerance)
				require.NoError(t, err, "fast path at t0=%v", t0)
				require.True(t, ok, "fast path out of domain at t0=%v", t0)
				assert.InDelta(t, t0, fast, roundTripTolerance, "fast path at t0=%v", t0)
			}
		})
	}
}

// TestSolve_Boundary checks that the span endpoints solve to exactly 0 and 1.
func TestSolve_Boundary(t *testing.T) {
	for name, p := range monotonicCurves() {
		t.Run(name, func(t *testing.T) {
			coeffs, err := Derive(p[0], p[1], p[2], p[3])
			require.NoError(t, err)

			tStart, ok, err := coeffs.Solve(horizontalAt(p, 0), DefaultBoundaryTolerance)
			require.NoError(t, err)
			require.True(t, ok)
			assert.InDelta(t, 0.0, tStart, roundTripTolerance)

			tEnd, ok, err := coeffs.Solve(horizontalAt(p, 1), DefaultBoundaryTolerance)
			require.NoError(t, err)
			require.True(t, ok)
			assert.InDelta(t, 1.0, tEnd, roundTripTolerance)
		})
	}
}

// TestSolve_OutOfDomain checks that query times outside the horizontal span
// report no solution rather than an error or a bogus root.
func TestSolve_OutOfDomain(t *testing.T) {
	tests := []struct {
		name  string
		p     [4]float64
		query float64
	}{
		{"below_unit_span", easeX, -0.25},
		{"above_unit_span", easeX, 1.25},
		{"below_shifted_span", shiftedX, 1.9},
		{"above_shifted_span", shiftedX, 4.1},
		{"far_below", easeInOutX, -100},
		{"far_above", easeInOutX, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coeffs, err := Derive(tt.p[0], tt.p[1], tt.p[2], tt.p[3])
			require.NoError(t, err)

			_, ok, err := coeffs.Solve(tt.query, DefaultBoundaryTolerance)
			require.NoError(t, err)
			assert.False(t, ok, "query %v should be out of domain", tt.query)

			_, ok, err = Solve(tt.query, tt.p[0], tt.p[1], tt.p[2], tt.p[3], DefaultBoundaryTolerance)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

// TestSolve_CacheEquivalence checks that the cold and cached paths agree to
// within floating-point noise across in-domain queries. The two paths order
// their arithmetic differently (two divisions vs. one folded multiply), so
// exact equality is not required.
func TestSolve_CacheEquivalence(t *testing.T) {
	const queries = 57

	for name, p := range monotonicCurves() {
		t.Run(name, func(t *testing.T) {
			coeffs, err := Derive(p[0], p[1], p[2], p[3])
			require.NoError(t, err)

			lo, hi := horizontalAt(p, 0), horizontalAt(p, 1)
			for i := 0; i < queries; i++ {
				x := lo + (hi-lo)*float64(i)/float64(queries-1)

				cold, okCold, err := Solve(x, p[0], p[1], p[2], p[3], DefaultBoundaryTolerance)
				require.NoError(t, err)
				fast, okFast, err := coeffs.Solve(x, DefaultBoundaryTolerance)
				require.NoError(t, err)

				require.Equal(t, okCold, okFast, "domain disagreement at x=%v", x)
				if okCold {
					assert.True(t, scalar.EqualWithinAbsOrRel(cold, fast, pathMatchTolerance, pathMatchTolerance),
						"paths disagree at x=%v: cold=%v fast=%v", x, cold, fast)
				}
			}
		})
	}
}

// TestDerive_Degenerate checks that c3 == 0 control points are refused
// instead of dividing by zero.
func TestDerive_Degenerate(t *testing.T) {
	_, err := Derive(degenerateX[0], degenerateX[1], degenerateX[2], degenerateX[3])
	require.ErrorIs(t, err, ErrDegenerate)

	// Within epsilon of zero counts as degenerate too.
	_, err = Derive(0, 1.0/3.0, 2.0/3.0, 1+1e-13)
	require.ErrorIs(t, err, ErrDegenerate)

	// The cold path detects the same condition per call.
	_, _, err = Solve(0.5, degenerateX[0], degenerateX[1], degenerateX[2], degenerateX[3], DefaultBoundaryTolerance)
	require.ErrorIs(t, err, ErrDegenerate)

	_, _, err = SolveAll(0.5, degenerateX[0], degenerateX[1], degenerateX[2], degenerateX[3], DefaultBoundaryTolerance)
	require.ErrorIs(t, err, ErrDegenerate)
}

// TestSolve_MultipleCrossings checks the default-path hard failure and the
// SolveAll recovery path on a non-monotonic curve. x(t) = 300t(2t-1)(t-1)
// crosses zero at t = 0, 0.5 and 1.
func TestSolve_MultipleCrossings(t *testing.T) {
	p := nonMonotonicX
	coeffs, err := Derive(p[0], p[1], p[2], p[3])
	require.NoError(t, err)

	_, _, err = coeffs.Solve(0, DefaultBoundaryTolerance)
	require.ErrorIs(t, err, ErrMultipleRoots)

	_, _, err = Solve(0, p[0], p[1], p[2], p[3], DefaultBoundaryTolerance)
	require.ErrorIs(t, err, ErrMultipleRoots)

	roots, n := coeffs.SolveAll(0, DefaultBoundaryTolerance)
	require.Equal(t, 3, n)
	got := append([]float64(nil), roots[:n]...)
	sort.Float64s(got)
	want := []float64{0, 0.5, 1}
	for i, w := range want {
		assert.InDelta(t, w, got[i], exactRootTolerance, "root %d", i)
	}

	coldRoots, coldN, err := SolveAll(0, p[0], p[1], p[2], p[3], DefaultBoundaryTolerance)
	require.NoError(t, err)
	require.Equal(t, 3, coldN)
	coldGot := append([]float64(nil), coldRoots[:coldN]...)
	sort.Float64s(coldGot)
	for i, w := range want {
		assert.InDelta(t, w, coldGot[i], exactRootTolerance, "cold root %d", i)
	}
}

// TestSolve_TwoCrossings covers a query crossed exactly twice in [0,1]:
// still a default-path failure, with two recovery candidates.
func TestSolve_TwoCrossings(t *testing.T) {
	p := nonMonotonicX
	coeffs, err := Derive(p[0], p[1], p[2], p[3])
	require.NoError(t, err)

	// The local maximum of x(t) on [0,1] is ~28.9, so x=20 is crossed on
	// the first rising branch and on the falling branch; the third
	// algebraic root lies beyond t=1.
	const query = 20.0

	_, _, err = coeffs.Solve(query, DefaultBoundaryTolerance)
	require.ErrorIs(t, err, ErrMultipleRoots)

	roots, n := coeffs.SolveAll(query, DefaultBoundaryTolerance)
	require.Equal(t, 2, n)
	for i, root := range roots[:n] {
		assert.InDelta(t, query, horizontalAt(p, root), 1e-7, "crossing %d does not land on the query", i)
	}
}

// TestSolve_VieteBranchUniqueRoot checks that a mid-span query on a
// monotonic curve whose discriminant selects the three-root branch still
// yields a single, correct solution after [0,1] filtering.
func TestSolve_VieteBranchUniqueRoot(t *testing.T) {
	p := wideEaseX
	coeffs, err := Derive(p[0], p[1], p[2], p[3])
	require.NoError(t, err)

	// By symmetry x(0.5) = 0.5, and the remaining algebraic roots are
	// exactly -1 and 2.
	tMid, ok, err := coeffs.Solve(0.5, DefaultBoundaryTolerance)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 0.5, tMid, roundTripTolerance)

	roots, n := coeffs.SolveAll(0.5, DefaultBoundaryTolerance)
	require.Equal(t, 1, n)
	assert.InDelta(t, 0.5, roots[0], roundTripTolerance)
}

// TestSolve_TripleRoot exercises the A == 0 special case: x(t) = t³
// queried exactly at its triple root.
func TestSolve_TripleRoot(t *testing.T) {
	p := tripleRootX
	coeffs, err := Derive(p[0], p[1], p[2], p[3])
	require.NoError(t, err)

	// Q and R are both exactly zero here; a naive Q/A would produce NaN.
	assert.Zero(t, coeffs.Q)

	root, ok, err := coeffs.Solve(0, DefaultBoundaryTolerance)
	require.NoError(t, err)
	require.True(t, ok)
	require.False(t, math.IsNaN(root))
	assert.InDelta(t, 0.0, root, exactRootTolerance)

	// Away from the triple root the same curve solves normally:
	// x = 0.125 inverts to t = 0.5.
	root, ok, err = coeffs.Solve(0.125, DefaultBoundaryTolerance)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 0.5, root, roundTripTolerance)
}

// TestSolve_TangentQuery covers a query at a point of zero horizontal
// speed: the CSS ease-out curve starts with p1x == p0x, so horizontal(0)
// is a double root. The two rounding-split candidates must collapse to a
// single crossing instead of a spurious multiple-crossings failure.
func TestSolve_TangentQuery(t *testing.T) {
	p := easeOutX
	coeffs, err := Derive(p[0], p[1], p[2], p[3])
	require.NoError(t, err)

	root, ok, err := coeffs.Solve(horizontalAt(p, 0), DefaultBoundaryTolerance)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 0.0, root, roundTripTolerance)

	// Mirror case: ease-in ends with p2x == p3x, tangent at t=1.
	p = easeInX
	coeffs, err = Derive(p[0], p[1], p[2], p[3])
	require.NoError(t, err)

	root, ok, err = coeffs.Solve(horizontalAt(p, 1), DefaultBoundaryTolerance)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 1.0, root, roundTripTolerance)
}

// TestSolve_BoundaryTolerance checks the configurable acceptance slack:
// a root a hair past t=1 is snapped to 1 under the default tolerance and
// rejected under strict zero tolerance.
func TestSolve_BoundaryTolerance(t *testing.T) {
	p := easeX
	coeffs, err := Derive(p[0], p[1], p[2], p[3])
	require.NoError(t, err)

	// Nudge the query just past the end of the span. The corresponding
	// root lands within ~1e-12 beyond t=1.
	query := horizontalAt(p, 1) + 1e-12

	root, ok, err := coeffs.Solve(query, DefaultBoundaryTolerance)
	require.NoError(t, err)
	require.True(t, ok, "near-boundary root should be accepted under default tolerance")
	assert.Equal(t, 1.0, root, "accepted root should be clamped to the boundary")

	_, ok, err = coeffs.Solve(query, 0)
	require.NoError(t, err)
	assert.False(t, ok, "strict tolerance should reject the same root")
}

// TestSolve_SymmetricMidpoint solves a symmetric ease-in-out curve,
// control points (0,0)-(0.25,0.1)-(0.75,0.9)-(1,1), at time 0.5.
func TestSolve_SymmetricMidpoint(t *testing.T) {
	px := [4]float64{0, 0.25, 0.75, 1}
	py := [4]float64{0, 0.1, 0.9, 1}

	coeffs, err := Derive(px[0], px[1], px[2], px[3])
	require.NoError(t, err)

	root, ok, err := coeffs.Solve(0.5, DefaultBoundaryTolerance)
	require.NoError(t, err)
	require.True(t, ok)

	assert.InDelta(t, 0.5, horizontalAt(px, root), roundTripTolerance)
	// The control points are symmetric about (0.5, 0.5), so the eased
	// progress at mid time is mid progress.
	assert.InDelta(t, 0.5, horizontalAt(py, root), roundTripTolerance)
}

// TestDerive_CachedTerms spot-checks the derived constants against their
// defining formulas for one curve.
func TestDerive_CachedTerms(t *testing.T) {
	p := easeInOutX
	coeffs, err := Derive(p[0], p[1], p[2], p[3])
	require.NoError(t, err)

	c3 := p[3] + 3*(p[1]-p[2]) - p[0]
	c2 := 3 * (p[2] - 2*p[1] + p[0])
	c1 := 3 * (p[1] - p[0])
	a := c2 / c3
	b := c1 / c3

	assert.InDelta(t, a/3, coeffs.ADiv3, pathMatchTolerance)
	assert.InDelta(t, (a/3)*(a/3)-b/3, coeffs.Q, pathMatchTolerance)
	assert.InDelta(t, coeffs.Q*coeffs.Q*coeffs.Q, coeffs.QQQ, pathMatchTolerance)
	assert.InDelta(t, (1/c3)/2, coeffs.InvC3Half, pathMatchTolerance)
	assert.Equal(t, p[0], coeffs.P0X)
	if coeffs.Q >= 0 {
		assert.InDelta(t, math.Sqrt(coeffs.QQQ), coeffs.SqrtQQQ, pathMatchTolerance)
		assert.InDelta(t, -2*math.Sqrt(coeffs.Q), coeffs.Neg2SqrtQ, pathMatchTolerance)
	}
}

// Package easing provides cubic Bézier easing curves with a closed-form
// time inversion, in pure Go.
//
// An easing curve maps an input time to an eased progress value through a
// cubic Bézier that is monotonic in its horizontal (time) coordinate — the
// model behind CSS cubic-bezier() and most animation systems. Evaluating
// the curve at a parameter t is easy; the work is the inverse problem of
// finding, for a query time, the t whose horizontal coordinate matches it.
// This package solves that cubic exactly (Cardano and Viète closed forms)
// rather than iterating, and caches the query-independent algebra per
// curve, so each per-frame lookup costs a handful of arithmetic operations
// and at most one square and one cube root.
//
// # Quick Start
//
// Presets cover the CSS keywords:
//
//	curve := easing.EaseInOut()
//	progress, err := curve.At(0.3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Custom curves use the cubic-bezier() convention with endpoints fixed at
// (0,0) and (1,1):
//
//	curve, err := easing.NewUnit(0.25, 0.1, 0.75, 0.9)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for frame := 0; frame < 60; frame++ {
//	    p, _ := curve.At(float64(frame) / 59)
//	    render(p)
//	}
//
// Fully general control points, including non-unit horizontal spans, go
// through [New]. [Curve.SetControlPoint] edits a curve in place and
// re-derives the solver constants before returning, so a curve can never
// be solved against stale algebra.
//
// # Errors
//
// Two conditions are authoring bugs and fail loudly rather than returning
// a made-up value:
//
//   - [ErrDegenerateCurve]: the horizontal motion is not genuinely cubic
//     (leading coefficient zero), so the closed-form reduction is
//     undefined. Rejected when the curve is built or edited.
//   - [ErrMultipleSolutions]: the curve is not monotonic in time and the
//     query is crossed more than once. [Curve.Crossings] returns all
//     crossings for callers that want them explicitly.
//
// A query time outside the curve's horizontal span is not an error:
// [Curve.SolveTime] reports ok=false and [Curve.At] clamps to the nearest
// endpoint's progress.
//
// # Lookup Tables
//
// [Curve.Table] presamples a curve into a uniform lookup table with O(1)
// interpolated reads, for hot paths that evaluate many curves per frame
// and can tolerate interpolation error:
//
//	table, err := curve.Table(256)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p := table.At(0.3) // no solving, no error path
//
// # Thread Safety
//
// Curves are immutable under solving: any number of goroutines may call
// At, SolveTime or Crossings on the same curve concurrently as long as no
// SetControlPoint call is in flight. Distinct curves share nothing.
package easing

package easing

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Table is a precomputed time→progress lookup for one curve: uniformly
// spaced query times across the curve's horizontal span, each solved once,
// with linear interpolation in between. Lookups are O(1) with no
// transcendental calls, which suits playback loops that evaluate many
// curves per frame and can tolerate interpolation error.
//
// A Table is immutable and detached from the Curve that produced it;
// editing the curve afterwards does not affect the table.
type Table struct {
	start, end float64
	step       float64
	progress   []float64
}

// Table samples the curve at n uniformly spaced query times and returns
// the lookup table. n must be at least 2; larger tables trade memory for
// interpolation accuracy. Sampling a non-monotonic curve fails with
// ErrMultipleSolutions.
func (c *Curve) Table(n int) (*Table, error) {
	if n < minTableSamples {
		return nil, fmt.Errorf("table needs at least %d samples, got %d", minTableSamples, n)
	}
	start, end := c.Domain()

	xs := make([]float64, n)
	floats.Span(xs, start, end)

	progress := make([]float64, n)
	for i, x := range xs {
		p, err := c.At(x)
		if err != nil {
			return nil, err
		}
		progress[i] = p
	}

	return &Table{
		start:    start,
		end:      end,
		step:     (end - start) / float64(n-1),
		progress: progress,
	}, nil
}

// At returns the interpolated progress at query time x. Times outside the
// sampled span clamp to the first or last sample, matching Curve.At.
func (t *Table) At(x float64) float64 {
	if x <= t.start {
		return t.progress[0]
	}
	if x >= t.end {
		return t.progress[len(t.progress)-1]
	}
	pos := (x - t.start) / t.step
	i := int(pos)
	if i >= len(t.progress)-1 {
		return t.progress[len(t.progress)-1]
	}
	frac := pos - float64(i)
	return t.progress[i] + frac*(t.progress[i+1]-t.progress[i])
}

// Len reports the number of samples in the table.
func (t *Table) Len() int {
	return len(t.progress)
}

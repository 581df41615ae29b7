package cubic

import "math"

// Numeric policy constants.
const (
	// DegenerateEpsilon is the |c3| threshold below which the horizontal
	// polynomial is treated as quadratic or lower and Derive refuses the
	// curve. Reduction of the cubic by c3 is undefined past this point.
	DegenerateEpsilon = 1e-12

	// DefaultBoundaryTolerance is the default slack applied at the [0,1]
	// acceptance check. Roots within tolerance outside the interval are
	// snapped to the nearest endpoint instead of being rejected; a
	// tolerance of 0 rejects them outright.
	DefaultBoundaryTolerance = 1e-9

	// CoincidentRootEpsilon is the span below which surviving Viète
	// candidates are treated as one double (or triple) root rather than
	// distinct crossings. A true double root perturbed by float64
	// rounding splits on the order of sqrt(epsilon) ~ 1e-8.
	CoincidentRootEpsilon = 1e-7
)

const (
	oneThird = 1.0 / 3.0
	twoPi    = 2 * math.Pi
)

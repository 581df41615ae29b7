package easing

// Control point values for the preset curves. These are the CSS
// cubic-bezier() keyword definitions.
const (
	// ease: starts fast, decelerates toward the end.
	easeX1, easeY1 = 0.25, 0.1
	easeX2, easeY2 = 0.25, 1.0

	// ease-in: starts slowly, accelerates.
	easeInX1, easeInY1 = 0.42, 0.0
	easeInX2, easeInY2 = 1.0, 1.0

	// ease-out: starts fast, decelerates.
	easeOutX1, easeOutY1 = 0.0, 0.0
	easeOutX2, easeOutY2 = 0.58, 1.0

	// ease-in-out: slow at both ends.
	easeInOutX1, easeInOutY1 = 0.42, 0.0
	easeInOutX2, easeInOutY2 = 0.58, 1.0
)

// Lookup table limits.
const (
	// minTableSamples is the smallest table that can interpolate.
	minTableSamples = 2
)

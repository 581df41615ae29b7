package easing

// Preset constructors for the CSS cubic-bezier() keyword curves. Each call
// returns a fresh, independently mutable Curve; the keyword control points
// are always solvable, so the constructors cannot fail.

// Ease is the CSS "ease" keyword: cubic-bezier(0.25, 0.1, 0.25, 1).
func Ease() *Curve {
	return mustUnit(easeX1, easeY1, easeX2, easeY2)
}

// EaseIn is the CSS "ease-in" keyword: cubic-bezier(0.42, 0, 1, 1).
func EaseIn() *Curve {
	return mustUnit(easeInX1, easeInY1, easeInX2, easeInY2)
}

// EaseOut is the CSS "ease-out" keyword: cubic-bezier(0, 0, 0.58, 1).
func EaseOut() *Curve {
	return mustUnit(easeOutX1, easeOutY1, easeOutX2, easeOutY2)
}

// EaseInOut is the CSS "ease-in-out" keyword: cubic-bezier(0.42, 0, 0.58, 1).
func EaseInOut() *Curve {
	return mustUnit(easeInOutX1, easeInOutY1, easeInOutX2, easeInOutY2)
}

func mustUnit(x1, y1, x2, y2 float64) *Curve {
	c, err := NewUnit(x1, y1, x2, y2)
	if err != nil {
		panic("easing: preset curve rejected: " + err.Error())
	}
	return c
}

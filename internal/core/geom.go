// Package core holds the types shared by games and drivers: the colored
// cell screen, input frames, runtime config and step results. It imports
// no UI library, so games built on it stay testable without a terminal.
package core

import "math"

// Rect is a cell-aligned rectangle with its top-left corner at (X, Y).
type Rect struct {
	X, Y, W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right and Bottom are exclusive edges.
func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Clamp limits val to [lo, hi].
func Clamp(val, lo, hi int) int {
	return Min(Max(val, lo), hi)
}

// ClampF limits val to [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	return math.Min(math.Max(val, lo), hi)
}

// WrapAngle maps an angle in radians into [0, 2π).
// Non-finite input yields 0.
func WrapAngle(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	// -tiny + 2π rounds to exactly 2π
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}

func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

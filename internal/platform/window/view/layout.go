// Package view holds the window driver's screen geometry. It has no
// graphics dependency so the projection can be tested headless.
package view

import (
	"image/color"
	"math"

	"github.com/vovakirdan/turnbounce/internal/core"
	"github.com/vovakirdan/turnbounce/internal/games/turnbounce"
)

// Layout tuning, in logical pixels.
const (
	hudHeight    = 48
	tilt         = 0.35 // Ellipse height as a fraction of its width
	ringFraction = 0.38
	arcGap       = turnbounce.BlockArc / 12
)

// Layout is the ring ellipse and ball geometry for one screen size.
type Layout struct {
	CX, CY     float64
	RX, RY     float64
	Thickness  float64
	BallRadius float64
	PixelsPerY float64 // Screen pixels per simulation height unit
}

// NewLayout fits the ring into a w by h screen.
func NewLayout(w, h int) Layout {
	rx := float64(w) * ringFraction
	ry := rx * tilt
	cy := float64(h) - ry - float64(h)/8
	if cy < hudHeight+ry {
		cy = hudHeight + ry
	}
	ball := math.Max(4, rx/14)
	space := cy + ry - hudHeight - 2*ball
	return Layout{
		CX:         float64(w) / 2,
		CY:         cy,
		RX:         rx,
		RY:         ry,
		Thickness:  math.Max(3, rx/12),
		BallRadius: ball,
		PixelsPerY: math.Max(1, space/turnbounce.PeakHeight),
	}
}

// Point projects a ring angle onto the ellipse. Angle 0 is the front.
func (l Layout) Point(angle float64) (x, y float64) {
	return l.CX - l.RX*math.Sin(angle), l.CY + l.RY*math.Cos(angle)
}

// Front returns the point of the ring directly under the ball.
func (l Layout) Front() (x, y float64) {
	return l.Point(0)
}

// BallCenter returns where the ball is drawn at a simulation height.
func (l Layout) BallCenter(height float64) (x, y float64) {
	fx, fy := l.Front()
	return fx, fy - l.BallRadius - height*l.PixelsPerY
}

// ShadowRadius shrinks the ball's shadow as it climbs.
func (l Layout) ShadowRadius(height float64) float64 {
	scale := 1 - height/(2*turnbounce.PeakHeight)
	return l.BallRadius * math.Max(0.25, math.Min(1, scale))
}

// Arc samples the visible part of a block centered on angle.
func (l Layout) Arc(center float64, samples int) [][2]float64 {
	if samples < 1 {
		samples = 1
	}
	half := turnbounce.BlockArc/2 - arcGap
	pts := make([][2]float64, 0, samples+1)
	for s := 0; s <= samples; s++ {
		a := center - half + 2*half*float64(s)/float64(samples)
		x, y := l.Point(a)
		pts = append(pts, [2]float64{x, y})
	}
	return pts
}

// RGBA converts a palette color.
func RGBA(c turnbounce.RGB) color.RGBA {
	return color.RGBA{
		R: uint8(math.Round(core.ClampF(c.R, 0, 1) * 255)),
		G: uint8(math.Round(core.ClampF(c.G, 0, 1) * 255)),
		B: uint8(math.Round(core.ClampF(c.B, 0, 1) * 255)),
		A: 255,
	}
}

// Shade darkens blocks on the far side of the ring.
// Depth is the cosine of the block angle: 1 at the front, -1 at the back.
func Shade(c color.RGBA, depth float64) color.RGBA {
	k := 0.6 + 0.4*(core.ClampF(depth, -1, 1)+1)/2
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}

package view

import (
	"image/color"
	"math"
	"testing"

	"github.com/vovakirdan/turnbounce/internal/games/turnbounce"
)

const eps = 1e-9

func TestPoint(t *testing.T) {
	l := NewLayout(640, 480)

	tests := []struct {
		name  string
		angle float64
		x, y  float64
	}{
		{"front", 0, l.CX, l.CY + l.RY},
		{"back", math.Pi, l.CX, l.CY - l.RY},
		{"quarter", math.Pi / 2, l.CX - l.RX, l.CY},
		{"negative quarter", -math.Pi / 2, l.CX + l.RX, l.CY},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := l.Point(tt.angle)
			if math.Abs(x-tt.x) > eps || math.Abs(y-tt.y) > eps {
				t.Errorf("Point(%v) = (%v, %v), want (%v, %v)", tt.angle, x, y, tt.x, tt.y)
			}
		})
	}
}

func TestLayoutFits(t *testing.T) {
	for _, size := range [][2]int{{640, 480}, {320, 240}, {1920, 1080}, {100, 100}} {
		l := NewLayout(size[0], size[1])
		if l.RX <= 0 || l.RY <= 0 || l.RY >= l.RX {
			t.Errorf("%v: bad ellipse %+v", size, l)
		}
		if l.CX-l.RX < 0 || l.CX+l.RX > float64(size[0]) {
			t.Errorf("%v: ring wider than screen", size)
		}
		if l.PixelsPerY < 1 {
			t.Errorf("%v: PixelsPerY = %v", size, l.PixelsPerY)
		}
	}
}

func TestBallCenter(t *testing.T) {
	l := NewLayout(640, 480)
	fx, fy := l.Front()

	x, y := l.BallCenter(0)
	if x != fx || math.Abs(y-(fy-l.BallRadius)) > eps {
		t.Errorf("resting ball at (%v, %v), want on top of (%v, %v)", x, y, fx, fy)
	}

	_, high := l.BallCenter(1)
	if high >= y {
		t.Errorf("higher ball drawn lower: %v >= %v", high, y)
	}
	if _, peak := l.BallCenter(turnbounce.PeakHeight); peak < 0 {
		t.Errorf("peak height off screen: y = %v", peak)
	}
}

func TestShadowRadius(t *testing.T) {
	l := NewLayout(640, 480)
	if got := l.ShadowRadius(0); math.Abs(got-l.BallRadius) > eps {
		t.Errorf("ShadowRadius(0) = %v, want %v", got, l.BallRadius)
	}
	if l.ShadowRadius(1) >= l.ShadowRadius(0.2) {
		t.Error("shadow did not shrink with height")
	}
	if got := l.ShadowRadius(100); got < l.BallRadius*0.25-eps {
		t.Errorf("ShadowRadius(100) = %v, below floor", got)
	}
	if got := l.ShadowRadius(-1); got > l.BallRadius+eps {
		t.Errorf("ShadowRadius(-1) = %v, above ball radius", got)
	}
}

func TestArc(t *testing.T) {
	l := NewLayout(640, 480)
	pts := l.Arc(0, 8)
	if len(pts) != 9 {
		t.Fatalf("got %d points, want 9", len(pts))
	}
	// Symmetric around the front
	first, last := pts[0], pts[len(pts)-1]
	if math.Abs((first[0]-l.CX)+(last[0]-l.CX)) > 1e-6 || math.Abs(first[1]-last[1]) > 1e-6 {
		t.Errorf("arc not symmetric: %v %v", first, last)
	}
	if got := len(l.Arc(0, 0)); got != 2 {
		t.Errorf("Arc with no samples returned %d points, want 2", got)
	}
}

func TestRGBA(t *testing.T) {
	tests := []struct {
		in   turnbounce.RGB
		want color.RGBA
	}{
		{turnbounce.RGB{R: 1}, color.RGBA{255, 0, 0, 255}},
		{turnbounce.RGB{R: 1, G: 1}, color.RGBA{255, 255, 0, 255}},
		{turnbounce.RGB{R: 2, B: -1}, color.RGBA{255, 0, 0, 255}},
		{turnbounce.RGB{G: 0.5}, color.RGBA{0, 128, 0, 255}},
	}

	for _, tt := range tests {
		if got := RGBA(tt.in); got != tt.want {
			t.Errorf("RGBA(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestShade(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}
	if got := Shade(c, 1); got != c {
		t.Errorf("front shade = %v, want unchanged %v", got, c)
	}
	back := Shade(c, -1)
	if back.R >= c.R || back.A != 255 {
		t.Errorf("back shade = %v", back)
	}
	if Shade(c, -5) != back {
		t.Error("depth not clamped")
	}
}

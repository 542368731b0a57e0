package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/turnbounce/internal/platform/window/view"
)

// Renderable is anything the driver can tint and paint.
type Renderable interface {
	SetColor(c color.Color)
	Draw(dst *ebiten.Image)
}

// tint is the color state shared by every sprite.
type tint struct {
	clr color.Color
}

// SetColor sets the fill color.
func (t *tint) SetColor(c color.Color) {
	t.clr = c
}

func (t *tint) color() color.Color {
	if t.clr == nil {
		return color.White
	}
	return t.clr
}

// blockSprite is one ring segment drawn as a thick polyline along the ellipse.
type blockSprite struct {
	tint
	points [][2]float64
	width  float32
}

func newBlockSprite(l view.Layout, angle float64) *blockSprite {
	return &blockSprite{
		points: l.Arc(angle, arcSamples),
		width:  float32(l.Thickness),
	}
}

// Draw paints the arc with rounded joints.
func (s *blockSprite) Draw(dst *ebiten.Image) {
	c := s.color()
	for i := 1; i < len(s.points); i++ {
		a, b := s.points[i-1], s.points[i]
		vector.StrokeLine(dst, float32(a[0]), float32(a[1]), float32(b[0]), float32(b[1]), s.width, c, true)
	}
	for _, p := range s.points {
		vector.DrawFilledCircle(dst, float32(p[0]), float32(p[1]), s.width/2, c, true)
	}
}

// ballSprite is a filled disc, used for the ball and its shadow.
type ballSprite struct {
	tint
	x, y, r float32
}

func newBallSprite(x, y, r float64) *ballSprite {
	return &ballSprite{x: float32(x), y: float32(y), r: float32(r)}
}

// Draw paints the disc.
func (s *ballSprite) Draw(dst *ebiten.Image) {
	vector.DrawFilledCircle(dst, s.x, s.y, s.r, s.color(), true)
}

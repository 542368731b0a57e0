package turnbounce

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/turnbounce/internal/core"
)

// Visual characters for rendering
const (
	BlockFrontChar = '█'
	BlockBackChar  = '▒'
	BallChar       = '●'
	ShadowChar     = '▁'
	MarkerChar     = '▲'
)

// Layout tuning for the terminal view
const (
	maxRadiusX   = 30
	arcSamples   = 24
	hudRows      = 2
	maxShadowW   = 5
	minBallSpace = 3
)

// PeakHeight is roughly the highest point of a level-one bounce, in
// simulation units. Drivers scale the space above the ring to it.
const PeakHeight = 1.5

// paletteTerm maps palette indices to terminal colors.
var paletteTerm = [NumColors]core.Color{
	core.ColorRed,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorCyan,
	core.ColorBlue,
	core.ColorMagenta,
}

// TermColor returns the terminal color for a palette index.
func TermColor(index int) core.Color {
	if index < 0 || index >= NumColors {
		return core.ColorDefault
	}
	return paletteTerm[index]
}

// ringLayout holds screen geometry derived from the screen size.
type ringLayout struct {
	cx, cy    int
	rx, ry    float64
	frontRow  int // Row of the ring directly under the ball
	rowsPerUp float64
}

func newRingLayout(w, h int) ringLayout {
	cx := w / 2
	cy := hudRows + (h-hudRows)*2/3
	rx := math.Min(float64(w/2-4), maxRadiusX)
	ry := math.Max(2, float64(h)/6)
	if rx < 4 {
		rx = 4
	}
	frontRow := cy + int(math.Round(ry))
	space := frontRow - hudRows - 1
	if space < minBallSpace {
		space = minBallSpace
	}
	return ringLayout{
		cx:        cx,
		cy:        cy,
		rx:        rx,
		ry:        ry,
		frontRow:  frontRow,
		rowsPerUp: float64(space) / PeakHeight,
	}
}

// point projects a ring angle to screen coordinates. Angle 0 is the front.
func (l ringLayout) point(angle float64) (int, int) {
	x := float64(l.cx) - l.rx*math.Sin(angle)
	y := float64(l.cy) + l.ry*math.Cos(angle)
	return int(math.Round(x)), int(math.Round(y))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.ring == nil {
		return
	}

	layout := newRingLayout(dst.Width(), dst.Height())
	g.drawRing(dst, layout)
	g.drawBall(dst, layout)
	g.drawHUD(dst)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.ring.Over() {
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Level %d  |  %d bounces  |  R to restart", g.ring.Level(), g.ring.Bounces()))
	}
}

// drawRing draws the six blocks back to front.
func (g *Game) drawRing(dst *core.Screen, l ringLayout) {
	blocks := g.ring.Blocks()
	rotation := g.ring.Rotation()

	for _, i := range g.ring.DepthOrder() {
		b := blocks[i]
		center := b.Angle(rotation)
		color := TermColor(b.ColorIndex())
		// Leave a small gap between neighbours
		half := BlockArc/2 - BlockArc/12
		for s := 0; s <= arcSamples; s++ {
			a := center - half + 2*half*float64(s)/arcSamples
			ch := BlockFrontChar
			if math.Cos(a) < 0 {
				ch = BlockBackChar
			}
			x, y := l.point(a)
			dst.SetColored(x, y, ch, color)
		}
	}

	// Marker under the front of the ring
	dst.SetColored(l.cx, l.frontRow+1, MarkerChar, TermColor(blocks[g.ring.BlockBelow()].ColorIndex()))
}

// drawBall draws the ball and its shadow on the front of the ring.
func (g *Game) drawBall(dst *core.Screen, l ringLayout) {
	ball := g.ring.Ball()
	y := ball.VerticalPosition()

	// The shadow shrinks as the ball climbs and vanishes once it falls through
	if y > g.ring.Params().BounceWindowLow {
		w := core.Clamp(int(math.Round(float64(maxShadowW)-2*y*float64(maxShadowW)/PeakHeight)), 1, maxShadowW)
		for x := l.cx - w/2; x < l.cx-w/2+w; x++ {
			dst.SetColored(x, l.frontRow-1, ShadowChar, core.ColorDarkGray)
		}
	}

	row := l.frontRow - 1 - int(math.Round(y*l.rowsPerUp))
	dst.SetColored(l.cx, row, BallChar, TermColor(ball.ColorIndex()))
}

// drawHUD draws level and progress in the top-right corner.
func (g *Game) drawHUD(dst *core.Screen) {
	title := " " + g.Title() + " "
	dst.DrawTextColored(1, 0, title, core.ColorBrightWhite)

	level := fmt.Sprintf("Level %d ", g.ring.Level())
	progress := fmt.Sprintf("%d / %d ", g.ring.Score(), g.ring.Level())
	dst.DrawTextColored(dst.Width()-len(level), 0, level, core.ColorBrightWhite)
	dst.DrawTextColored(dst.Width()-len(progress), 1, progress, core.ColorGray)

	help := "←/→ A/D or mouse: turn  P: pause  Q: quit"
	if len([]rune(help)) < dst.Width() {
		dst.DrawTextColored(1, dst.Height()-1, help, core.ColorGray)
	}
}

// drawCenteredMessage draws a boxed two-line message in the middle of dst.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	tw, sw := utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)
	box := core.NewRect(0, 0, core.Max(tw, sw)+4, 5)
	box.X = (dst.Width() - box.W) / 2
	box.Y = (dst.Height() - box.H) / 2

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorGray)
	dst.DrawTextColored(box.X+(box.W-tw)/2, box.Y+1, title, core.ColorBrightWhite)
	dst.DrawText(box.X+(box.W-sw)/2, box.Y+3, subtitle)
}

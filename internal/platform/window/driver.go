// Package window runs a game in a desktop window using ebiten.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/turnbounce/internal/core"
	"github.com/vovakirdan/turnbounce/internal/games/turnbounce"
	"github.com/vovakirdan/turnbounce/internal/platform/window/view"
	"github.com/vovakirdan/turnbounce/internal/storage"
)

// Logical screen size; ebiten scales it to the window.
const (
	ScreenWidth  = 640
	ScreenHeight = 480
	arcSamples   = 16
)

var (
	background = color.RGBA{18, 18, 24, 255}
	shadowTint = color.RGBA{0, 0, 0, 110}
	hudColor   = color.RGBA{230, 230, 230, 255}
	dimColor   = color.RGBA{140, 140, 150, 255}
	overlay    = color.RGBA{0, 0, 0, 170}
)

// SoundPlayer receives game events for audio cues.
type SoundPlayer interface {
	Play(core.Event)
}

// Options configures a window Driver.
type Options struct {
	Config core.RuntimeConfig
	Store  *storage.Store
	Sound  SoundPlayer
	Logger *log.Logger
}

// Driver adapts a Turn & Bounce game to ebiten's Update/Draw/Layout loop.
type Driver struct {
	game       *turnbounce.Game
	opts       Options
	input      core.InputFrame
	state      core.GameState
	scoreSaved bool
	lastX      int
	mouseSeen  bool
}

// NewDriver creates a driver and starts a run.
func NewDriver(game *turnbounce.Game, opts Options) *Driver {
	if opts.Config.TickRate <= 0 {
		opts.Config.TickRate = core.DefaultTickRate
	}
	if opts.Config.Seed == 0 {
		opts.Config.Seed = time.Now().UnixNano()
	}
	opts.Config.ScreenW = ScreenWidth
	opts.Config.ScreenH = ScreenHeight

	d := &Driver{
		game:  game,
		opts:  opts,
		input: core.NewInputFrame(),
	}
	d.game.Reset(d.opts.Config)
	d.state = d.game.State()
	return d
}

// Update reads input and advances the game by one tick.
func (d *Driver) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if d.state.GameOver && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		d.restart()
		return nil
	}

	d.input.Clear()
	d.readInput()

	result := d.game.Step(d.input)
	d.state = result.State

	if d.opts.Sound != nil {
		for _, e := range result.Events {
			d.opts.Sound.Play(e)
		}
	}

	if d.state.GameOver && !d.scoreSaved {
		d.saveRun()
		d.scoreSaved = true
	}
	return nil
}

// readInput maps held keys and horizontal mouse travel onto the input frame.
func (d *Driver) readInput() {
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		d.input.Set(core.ActionLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		d.input.Set(core.ActionRight)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		d.input.Set(core.ActionPause)
	}

	x, _ := ebiten.CursorPosition()
	if d.mouseSeen {
		d.input.AddPointer(float64(x - d.lastX))
	}
	d.lastX = x
	d.mouseSeen = true
}

func (d *Driver) restart() {
	d.opts.Config.Seed = time.Now().UnixNano()
	d.game.Reset(d.opts.Config)
	d.state = d.game.State()
	d.scoreSaved = false
}

// saveRun persists the finished run. Failures are logged and ignored.
func (d *Driver) saveRun() {
	if d.opts.Store == nil || d.state.Score <= 0 {
		return
	}
	_, err := d.opts.Store.SaveRun(d.game.ID(), d.state.Score, d.state.Level)
	if d.opts.Logger == nil {
		return
	}
	if err != nil {
		d.opts.Logger.Warn("could not save run", "game", d.game.ID(), "error", err)
		return
	}
	d.opts.Logger.Debug("run saved", "game", d.game.ID(), "score", d.state.Score, "level", d.state.Level)
}

// Draw paints the ring, the ball and the HUD.
func (d *Driver) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	ring := d.game.Ring()
	if ring == nil {
		return
	}
	b := screen.Bounds()
	l := view.NewLayout(b.Dx(), b.Dy())

	for _, r := range d.sprites(ring, l) {
		r.Draw(screen)
	}
	d.drawHUD(screen, ring)

	switch {
	case d.state.GameOver:
		d.drawMessage(screen, "GAME OVER",
			fmt.Sprintf("Level %d  |  %d bounces  |  R to restart", ring.Level(), ring.Bounces()))
	case d.state.Paused:
		d.drawMessage(screen, "PAUSED", "Press P to resume")
	}
}

// sprites builds the frame's drawables back to front.
func (d *Driver) sprites(ring *turnbounce.RingGame, l view.Layout) []Renderable {
	blocks := ring.Blocks()
	rotation := ring.Rotation()
	out := make([]Renderable, 0, turnbounce.NumBlocks+2)

	for _, i := range ring.DepthOrder() {
		angle := blocks[i].Angle(rotation)
		s := newBlockSprite(l, angle)
		s.SetColor(view.Shade(view.RGBA(turnbounce.PaletteColor(blocks[i].ColorIndex())), depth(angle)))
		out = append(out, s)
	}

	ball := ring.Ball()
	height := ball.VerticalPosition()
	if height > ring.Params().BounceWindowLow {
		fx, fy := l.Front()
		shadow := newBallSprite(fx, fy, l.ShadowRadius(height))
		shadow.SetColor(shadowTint)
		out = append(out, shadow)
	}

	x, y := l.BallCenter(height)
	bs := newBallSprite(x, y, l.BallRadius)
	bs.SetColor(view.RGBA(turnbounce.PaletteColor(ball.ColorIndex())))
	return append(out, bs)
}

func (d *Driver) drawHUD(screen *ebiten.Image, ring *turnbounce.RingGame) {
	face := basicfont.Face7x13
	w := screen.Bounds().Dx()

	text.Draw(screen, d.game.Title(), face, 12, 20, hudColor)

	level := fmt.Sprintf("Level %d", ring.Level())
	progress := fmt.Sprintf("%d / %d", ring.Score(), ring.Level())
	text.Draw(screen, level, face, w-12-textWidth(level), 20, hudColor)
	text.Draw(screen, progress, face, w-12-textWidth(progress), 38, dimColor)

	help := "Left/Right, A/D or mouse: turn   P: pause   Esc: quit"
	text.Draw(screen, help, face, 12, screen.Bounds().Dy()-12, dimColor)
}

func (d *Driver) drawMessage(screen *ebiten.Image, title, subtitle string) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), overlay, false)

	face := basicfont.Face7x13
	cy := b.Dy() / 2
	text.Draw(screen, title, face, (b.Dx()-textWidth(title))/2, cy-8, hudColor)
	text.Draw(screen, subtitle, face, (b.Dx()-textWidth(subtitle))/2, cy+14, dimColor)
}

// Layout keeps a fixed logical resolution.
func (d *Driver) Layout(_, _ int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// State returns the last observed game state.
func (d *Driver) State() core.GameState {
	return d.state
}

// Run opens the window and blocks until it is closed.
func Run(game *turnbounce.Game, opts Options) error {
	d := NewDriver(game, opts)

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(d.opts.Config.TickRate)

	if err := ebiten.RunGame(d); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

func depth(angle float64) float64 {
	return math.Cos(angle)
}

func textWidth(s string) int {
	return text.BoundString(basicfont.Face7x13, s).Dx()
}

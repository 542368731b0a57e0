package turnbounce

import (
	"math"
	"math/rand"
	"sort"

	"github.com/vovakirdan/turnbounce/internal/core"
)

// Ring layout
const (
	NumBlocks = 6
	NumColors = 6

	// BlockArc is the angular width of one block.
	BlockArc = 2 * math.Pi / NumBlocks
)

// Outcome is the per-frame continuation signal returned by Advance.
type Outcome int

const (
	Continue Outcome = iota
	GameOver
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	if o == GameOver {
		return "GameOver"
	}
	return "Continue"
}

// RGB is a color with components in [0, 1].
type RGB struct {
	R, G, B float64
}

// palette holds the six block/ball colors, addressed by color index.
var palette = [NumColors]RGB{
	{1, 0, 0}, // Red
	{1, 1, 0}, // Yellow
	{0, 1, 0}, // Green
	{0, 1, 1}, // Cyan
	{0, 0, 1}, // Blue
	{1, 0, 1}, // Magenta
}

// PaletteColor returns the RGB value for a color index.
// Out-of-range indices wrap.
func PaletteColor(index int) RGB {
	index %= NumColors
	if index < 0 {
		index += NumColors
	}
	return palette[index]
}

// Params are the tunables of the ring simulation.
type Params struct {
	InitialGravity  float64
	GravityIncrease float64
	LaunchVelocity  float64
	Scale           float64
	BounceWindowLow float64
	FallLimit       float64
	WrapRotation    bool
}

// DefaultParams returns the prototype's constants.
func DefaultParams() Params {
	return Params{
		InitialGravity:  0.1,
		GravityIncrease: 0.1,
		LaunchVelocity:  5.0,
		Scale:           0.01,
		BounceWindowLow: -0.5,
		FallLimit:       -5.0,
		WrapRotation:    true,
	}
}

// Block is one segment of the ring.
type Block struct {
	colorIndex int
	offset     float64
}

// ColorIndex returns the block's palette index.
func (b Block) ColorIndex() int { return b.colorIndex }

// AngularOffset returns the block's fixed position around the ring.
func (b Block) AngularOffset() float64 { return b.offset }

// Angle returns where the block currently sits for a ring rotation.
// Zero is the front of the ring, directly under the ball.
func (b Block) Angle(rotation float64) float64 {
	return rotation - b.offset
}

// Ball is the bouncing ball.
type Ball struct {
	colorIndex int
	y          float64
	frames     int
	gravity    float64
}

// ColorIndex returns the ball's palette index.
func (b Ball) ColorIndex() int { return b.colorIndex }

// VerticalPosition returns the height relative to the last bounce point.
func (b Ball) VerticalPosition() float64 { return b.y }

// FramesSinceBounce returns the frames elapsed since the last bounce.
func (b Ball) FramesSinceBounce() int { return b.frames }

// Gravity returns the current gravitational constant.
func (b Ball) Gravity() float64 { return b.gravity }

// fall advances the per-frame displacement recurrence.
func (b *Ball) fall(scale, launch float64) {
	b.frames++
	b.y += scale * (launch - b.gravity*float64(b.frames))
}

// bounce restarts the flight from the ring plane.
func (b *Ball) bounce() {
	b.y = 0
	b.frames = 0
}

// RingGame is the game-state core: six blocks, one ball, score and level.
// It has no I/O and is advanced once per frame by a driver.
type RingGame struct {
	params   Params
	blocks   [NumBlocks]Block
	ball     Ball
	rotation float64
	score    int // progress toward the next level, in [0, level)
	level    int
	bounces  int // successful bounces over the whole run
	over     bool

	rng    *rand.Rand
	reseed func() int64 // non-nil: reseed before every color change

	events []core.Event
}

// Option customizes a RingGame.
type Option func(*RingGame)

// WithReseed reseeds the color generator from clock before every color
// reassignment instead of relying on the seed given to NewRingGame.
func WithReseed(clock func() int64) Option {
	return func(g *RingGame) {
		g.reseed = clock
	}
}

// NewRingGame creates the ring, the ball and the first color assignment.
func NewRingGame(p Params, seed int64, opts ...Option) *RingGame {
	g := &RingGame{
		params: p,
		level:  1,
		rng:    rand.New(rand.NewSource(seed)),
	}
	for _, opt := range opts {
		opt(g)
	}

	for i := range g.blocks {
		g.blocks[i] = Block{offset: float64(i) * BlockArc}
	}
	g.ball = Ball{gravity: p.InitialGravity}

	g.reassignColors()
	return g
}

// Advance runs one frame: apply the rotation input, move the ball, resolve
// a bounce and report whether the ball has fallen through the ring.
// Once GameOver has been returned every further call returns GameOver.
func (g *RingGame) Advance(rotationDelta float64) Outcome {
	g.events = g.events[:0]
	if g.over {
		return GameOver
	}

	g.rotation -= rotationDelta
	if g.params.WrapRotation {
		g.rotation = core.WrapAngle(g.rotation)
	}

	g.ball.fall(g.params.Scale, g.params.LaunchVelocity)

	// One chance per fall: only frames inside the window may match
	if g.InBounceWindow() {
		if g.ball.colorIndex == g.blocks[g.BlockBelow()].colorIndex {
			g.reassignColors()
			g.ball.bounce()
			g.increaseScore()
		}
	}

	if g.ball.y < g.params.FallLimit {
		g.over = true
		g.events = append(g.events, core.EventGameOver)
		return GameOver
	}
	return Continue
}

// InBounceWindow reports whether the ball is at or just below the ring plane.
func (g *RingGame) InBounceWindow() bool {
	return g.ball.y > g.params.BounceWindowLow && g.ball.y <= 0
}

// BlockBelow returns the index of the block currently under the ball.
func (g *RingGame) BlockBelow() int {
	return BlockBelow(g.rotation)
}

// BlockBelow maps a ring rotation to the block in front of it.
// The π/6 shift centers block 0 on rotation 0. The result is 2π-periodic
// and always in [0, NumBlocks), including for huge or non-finite input.
func BlockBelow(rotation float64) int {
	if math.IsNaN(rotation) || math.IsInf(rotation, 0) {
		return 0
	}
	r := math.Mod(rotation+math.Pi/6, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	idx := int(math.Floor(r/BlockArc)) % NumBlocks
	for idx < 0 {
		idx += NumBlocks
	}
	return idx
}

// reassignColors picks fresh colors for the ball and every block and makes
// sure at least one block matches the ball.
func (g *RingGame) reassignColors() {
	if g.reseed != nil {
		g.rng.Seed(g.reseed())
	}

	g.ball.colorIndex = g.rng.Intn(NumColors)

	matched := false
	for i := range g.blocks {
		c := g.rng.Intn(NumColors)
		g.blocks[i].colorIndex = c
		if c == g.ball.colorIndex {
			matched = true
		}
	}

	if !matched {
		g.blocks[g.rng.Intn(NumBlocks)].colorIndex = g.ball.colorIndex
	}
}

// increaseScore records a successful bounce and levels up when the
// in-level score reaches the level number.
func (g *RingGame) increaseScore() {
	g.bounces++
	g.score++
	g.events = append(g.events, core.EventBounce)

	if g.score == g.level {
		g.level++
		g.score = 0
		g.ball.gravity += g.ball.gravity * g.params.GravityIncrease
		g.events = append(g.events, core.EventLevelUp)
	}
}

// Level returns the current level, starting at 1.
func (g *RingGame) Level() int { return g.level }

// Score returns the progress toward the next level.
func (g *RingGame) Score() int { return g.score }

// Bounces returns the number of successful bounces this run.
func (g *RingGame) Bounces() int { return g.bounces }

// Over reports whether the ball has fallen through the ring.
func (g *RingGame) Over() bool { return g.over }

// Rotation returns the accumulated ring rotation in radians.
func (g *RingGame) Rotation() float64 { return g.rotation }

// Ball returns a snapshot of the ball.
func (g *RingGame) Ball() Ball { return g.ball }

// Blocks returns a snapshot of the ring.
func (g *RingGame) Blocks() [NumBlocks]Block { return g.blocks }

// DepthOrder returns block indices from the back of the ring to the front,
// the order in which a top-down view should paint them.
func (g *RingGame) DepthOrder() [NumBlocks]int {
	var order [NumBlocks]int
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order[:], func(a, b int) bool {
		return math.Cos(g.blocks[order[a]].Angle(g.rotation)) < math.Cos(g.blocks[order[b]].Angle(g.rotation))
	})
	return order
}

// Params returns the simulation parameters.
func (g *RingGame) Params() Params { return g.params }

// LastEvents returns what happened during the most recent Advance.
// The slice is reused by the next call.
func (g *RingGame) LastEvents() []core.Event { return g.events }

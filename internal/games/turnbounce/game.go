// Package turnbounce implements Turn & Bounce: a ball bounces above a ring
// of six colored blocks and the player turns the ring so that a block of
// the ball's color is underneath whenever it comes down.
package turnbounce

import (
	"time"

	"github.com/vovakirdan/turnbounce/internal/config"
	"github.com/vovakirdan/turnbounce/internal/core"
	"github.com/vovakirdan/turnbounce/internal/registry"
)

// Game IDs
const (
	GameID        = "turnbounce"
	ClassicGameID = "turnbounce_classic"
)

// configPath and difficultyPreset are set via CLI before Reset.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game adapts RingGame to the arcade platform.
type Game struct {
	classic bool
	ring    *RingGame
	cfg     config.TurnBounceConfig
	runtime core.RuntimeConfig
	paused  bool
	frames  int
	clock   func() int64
	preset  config.DifficultyPreset // Overrides the package default when set
}

// New creates the standard variant: seeded once per game, wrapped rotation.
func New() *Game {
	return &Game{clock: wallClock}
}

// NewClassic creates the variant that keeps the prototype's bookkeeping.
func NewClassic() *Game {
	return &Game{classic: true, clock: wallClock}
}

func wallClock() int64 {
	return time.Now().UnixNano()
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.classic {
		return ClassicGameID
	}
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.classic {
		return "Turn & Bounce (Classic)"
	}
	return "Turn & Bounce"
}

// Description is the one-line summary shown on the menu.
func (g *Game) Description() string {
	if g.classic {
		return "Colors reseeded from the clock each pick; rotation never wraps"
	}
	return "One seed per run; replayable with --seed"
}

// SetDifficulty picks a preset for this instance only, taking effect on the
// next Reset. Unknown names clear the override.
func (g *Game) SetDifficulty(preset string) {
	g.preset = config.ParsePreset(preset)
}

// Difficulty returns the preset in effect after the last Reset.
func (g *Game) Difficulty() string {
	return g.cfg.Difficulty.Preset
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultTurnBounceConfig()
	}
	// Instance override, then CLI default, then the YAML preset
	preset := g.preset
	if preset == "" {
		preset = difficultyPreset
	}
	if preset == "" {
		preset = config.ParsePreset(cfg.Difficulty.Preset)
	}
	config.ApplyPreset(&cfg, preset)
	if g.classic {
		config.ApplyClassic(&cfg)
	}
	g.applyConfig(cfg)
}

// applyConfig builds a fresh ring from a resolved configuration.
func (g *Game) applyConfig(cfg config.TurnBounceConfig) {
	g.cfg = cfg
	g.paused = false
	g.frames = 0

	var opts []Option
	if cfg.RNG.ReseedEachAssignment {
		opts = append(opts, WithReseed(g.clock))
	}
	g.ring = NewRingGame(paramsFromConfig(cfg), g.runtime.Seed, opts...)
}

// paramsFromConfig maps the YAML physics section onto simulation params.
func paramsFromConfig(cfg config.TurnBounceConfig) Params {
	return Params{
		InitialGravity:  cfg.Physics.InitialGravity,
		GravityIncrease: cfg.Physics.GravityIncrease,
		LaunchVelocity:  cfg.Physics.LaunchVelocity,
		Scale:           cfg.Physics.Scale,
		BounceWindowLow: cfg.Physics.BounceWindowLow,
		FallLimit:       cfg.Physics.FallLimit,
		WrapRotation:    cfg.Rotation.Wrap,
	}
}

// RotationDelta converts one frame of input into the value fed to Advance.
func (g *Game) RotationDelta(in core.InputFrame) float64 {
	var delta float64
	if in.Has(core.ActionLeft) {
		delta -= g.cfg.Controls.KeyboardStep
	}
	if in.Has(core.ActionRight) {
		delta += g.cfg.Controls.KeyboardStep
	}
	return delta + in.Pointer*g.cfg.Controls.MouseScale
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.ring == nil {
		g.Reset(core.DefaultConfig())
	}
	if g.ring.Over() {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.frames++
	g.ring.Advance(g.RotationDelta(in))

	events := append([]core.Event(nil), g.ring.LastEvents()...)
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.ring == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.ring.Bounces(),
		Level:    g.ring.Level(),
		Progress: g.ring.Score(),
		GameOver: g.ring.Over(),
		Paused:   g.paused,
	}
}

// Ring exposes the simulation for drivers that draw it themselves.
func (g *Game) Ring() *RingGame {
	return g.ring
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
	registry.Register(ClassicGameID, func() registry.Game {
		return NewClassic()
	})
}

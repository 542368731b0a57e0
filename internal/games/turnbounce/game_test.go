package turnbounce

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/turnbounce/internal/config"
	"github.com/vovakirdan/turnbounce/internal/core"
	"github.com/vovakirdan/turnbounce/internal/registry"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.runtime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: core.DefaultTickRate, Seed: seed}
	g.applyConfig(config.DefaultTurnBounceConfig())
	return g
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{GameID, ClassicGameID} {
		if !registry.Exists(id) {
			t.Fatalf("%q not registered", id)
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, want %q", g.ID(), id)
		}
	}
}

func TestTitles(t *testing.T) {
	if New().Title() != "Turn & Bounce" {
		t.Errorf("Title = %q", New().Title())
	}
	if NewClassic().Title() != "Turn & Bounce (Classic)" {
		t.Errorf("classic Title = %q", NewClassic().Title())
	}
	if New().Description() == NewClassic().Description() {
		t.Error("variants should describe themselves differently")
	}
}

func TestRotationDelta(t *testing.T) {
	g := newTestGame(t, 1)

	tests := []struct {
		name    string
		actions []core.Action
		pointer float64
		want    float64
	}{
		{"idle", nil, 0, 0},
		{"left", []core.Action{core.ActionLeft}, 0, -0.05},
		{"right", []core.Action{core.ActionRight}, 0, 0.05},
		{"both cancel", []core.Action{core.ActionLeft, core.ActionRight}, 0, 0},
		{"mouse", nil, 10, 0.1},
		{"mouse and key", []core.Action{core.ActionRight}, -3, 0.02},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := core.NewInputFrame()
			for _, a := range tt.actions {
				in.Set(a)
			}
			in.AddPointer(tt.pointer)
			if got := g.RotationDelta(in); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("RotationDelta = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStepAppliesRotation(t *testing.T) {
	g := newTestGame(t, 1)
	in := core.NewInputFrame()
	in.Set(core.ActionLeft)

	g.Step(in)

	// Left subtracts from the delta which is subtracted from the rotation
	if math.Abs(g.Ring().Rotation()-0.05) > 1e-9 {
		t.Errorf("Rotation = %v, want 0.05", g.Ring().Rotation())
	}
	if g.Ring().Ball().FramesSinceBounce() != 1 {
		t.Errorf("ball did not advance")
	}
}

func TestStepPause(t *testing.T) {
	g := newTestGame(t, 1)
	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	idle := core.NewInputFrame()

	res := g.Step(pause)
	if !res.State.Paused {
		t.Fatal("expected paused")
	}
	for i := 0; i < 10; i++ {
		g.Step(idle)
	}
	if g.Ring().Ball().FramesSinceBounce() != 0 {
		t.Error("ring advanced while paused")
	}

	res = g.Step(pause)
	if res.State.Paused {
		t.Fatal("expected resumed")
	}
	if g.Ring().Ball().FramesSinceBounce() != 1 {
		t.Errorf("frames = %d after resume, want 1", g.Ring().Ball().FramesSinceBounce())
	}
}

func TestStepEventsAndState(t *testing.T) {
	g := newTestGame(t, 1)
	r := g.Ring()
	r.rotation = 0
	r.ball.colorIndex = r.blocks[0].colorIndex
	r.ball.y = -0.1
	r.ball.frames = 100

	res := g.Step(core.NewInputFrame())
	if !res.Has(core.EventBounce) || !res.Has(core.EventLevelUp) {
		t.Errorf("events = %v, want Bounce and LevelUp", res.Events)
	}
	if res.State.Score != 1 || res.State.Level != 2 || res.State.Progress != 0 {
		t.Errorf("state = %+v", res.State)
	}

	// The returned events must not alias the ring's buffer
	events := res.Events
	g.Step(core.NewInputFrame())
	if len(events) != 2 || events[0] != core.EventBounce {
		t.Errorf("events changed after next step: %v", events)
	}
}

func TestStepAfterGameOver(t *testing.T) {
	g := newTestGame(t, 1)
	mismatchAll(g.Ring())

	var res core.StepResult
	for i := 0; i < 10000 && !res.State.GameOver; i++ {
		res = g.Step(core.NewInputFrame())
	}
	if !res.State.GameOver {
		t.Fatal("game never ended")
	}
	if !res.Has(core.EventGameOver) {
		t.Error("missing GameOver event on the final step")
	}

	res = g.Step(core.NewInputFrame())
	if !res.State.GameOver || len(res.Events) != 0 {
		t.Errorf("step after game over: %+v", res)
	}
}

func TestStateBeforeReset(t *testing.T) {
	g := New()
	if s := g.State(); s != (core.GameState{}) {
		t.Errorf("State before Reset = %+v", s)
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, 12345)
	g2 := newTestGame(t, 12345)

	in := core.NewInputFrame()
	for i := 0; i < 2000; i++ {
		in.Clear()
		if i%7 == 0 {
			in.Set(core.ActionRight)
		}
		if i%11 == 0 {
			in.AddPointer(3)
		}
		g1.Step(in)
		g2.Step(in)
	}

	if g1.State() != g2.State() {
		t.Errorf("state mismatch: %+v vs %+v", g1.State(), g2.State())
	}
	if g1.Ring().Blocks() != g2.Ring().Blocks() || g1.Ring().Ball() != g2.Ring().Ball() {
		t.Error("ring mismatch")
	}
}

func TestClassicConfig(t *testing.T) {
	g := NewClassic()
	g.Reset(core.DefaultConfig())

	if !g.cfg.RNG.ReseedEachAssignment {
		t.Error("classic should reseed each assignment")
	}
	if g.cfg.Rotation.Wrap || g.Ring().Params().WrapRotation {
		t.Error("classic should not wrap rotation")
	}
	if g.Ring().reseed == nil {
		t.Error("classic ring has no reseed clock")
	}
}

func TestParamsFromConfig(t *testing.T) {
	cfg := config.DefaultTurnBounceConfig()
	cfg.Physics.InitialGravity = 0.2
	cfg.Physics.FallLimit = -3

	p := paramsFromConfig(cfg)
	if p.InitialGravity != 0.2 || p.FallLimit != -3 {
		t.Errorf("params = %+v", p)
	}
	if p.LaunchVelocity != 5.0 || p.Scale != 0.01 || p.BounceWindowLow != -0.5 {
		t.Errorf("defaults not carried: %+v", p)
	}
}

func TestRenderHUD(t *testing.T) {
	g := newTestGame(t, 1)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"Turn & Bounce", "Level 1", "0 / 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
	if !strings.ContainsRune(out, BallChar) {
		t.Error("ball not drawn")
	}
	if !strings.ContainsRune(out, BlockFrontChar) || !strings.ContainsRune(out, BlockBackChar) {
		t.Error("ring not drawn")
	}
}

func TestRenderBallColor(t *testing.T) {
	g := newTestGame(t, 1)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	want := TermColor(g.Ring().Ball().ColorIndex())
	found := false
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			c := screen.GetCell(x, y)
			if c.Rune == BallChar && c.Color == want {
				found = true
			}
		}
	}
	if !found {
		t.Errorf("ball not drawn in %v", want)
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(t, 1)
	screen := core.NewScreen(80, 24)

	g.paused = true
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause box missing")
	}

	g.paused = false
	g.Ring().over = true
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over box missing")
	}
}

func TestRenderSmallScreens(t *testing.T) {
	g := newTestGame(t, 1)
	for _, size := range [][2]int{{1, 1}, {10, 5}, {20, 8}, {200, 60}} {
		screen := core.NewScreen(size[0], size[1])
		g.Render(screen)
	}
	New().Render(core.NewScreen(10, 10))
}

func TestTermColor(t *testing.T) {
	if TermColor(0) != core.ColorRed || TermColor(5) != core.ColorMagenta {
		t.Error("palette mapping changed")
	}
	if TermColor(-1) != core.ColorDefault || TermColor(NumColors) != core.ColorDefault {
		t.Error("out-of-range should map to default")
	}
}

func TestSetDifficulty(t *testing.T) {
	g := New()
	g.SetDifficulty("hard")
	g.Reset(core.DefaultConfig())

	if g.Difficulty() != "hard" {
		t.Errorf("Difficulty = %q, want hard", g.Difficulty())
	}
	want := g.cfg.Physics.InitialGravity
	if got := g.Ring().Ball().Gravity(); got != want {
		t.Errorf("Gravity = %v, want %v", got, want)
	}

	easy := New()
	easy.SetDifficulty("easy")
	easy.Reset(core.DefaultConfig())
	if easy.Ring().Ball().Gravity() >= g.Ring().Ball().Gravity() {
		t.Errorf("easy gravity %v not below hard %v", easy.Ring().Ball().Gravity(), g.Ring().Ball().Gravity())
	}
}

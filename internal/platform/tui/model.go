package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/turnbounce/internal/core"
	"github.com/vovakirdan/turnbounce/internal/registry"
	"github.com/vovakirdan/turnbounce/internal/storage"
)

// Terminals report key presses, not key state. A turn key counts as held
// for this long after its last press or auto-repeat.
const holdDuration = 150 * time.Millisecond

// mouseCellUnits converts one terminal cell of mouse travel into pointer units.
const mouseCellUnits = 8.0

// SoundPlayer receives game events for audio cues.
type SoundPlayer interface {
	Play(core.Event)
}

// Option customizes a game Model.
type Option func(*Model)

// WithSound attaches a sound player.
func WithSound(p SoundPlayer) Option {
	return func(m *Model) {
		m.sound = p
	}
}

// WithMenuReturn makes Back (on pause or game over) hand control back to an
// enclosing menu instead of quitting the program.
func WithMenuReturn() Option {
	return func(m *Model) {
		m.menuReturn = true
	}
}

// WithLogger sets the logger used for run results and storage warnings.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		m.logger = l
	}
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	sound      SoundPlayer
	logger     *log.Logger
	keyMapper  *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	menuReturn bool
	backToMenu bool
	scoreSaved bool // Whether the run has been saved for current game over
	newRecord  bool // The saved run beat the stored best

	holdTicks   int // Ticks a turn key stays held
	leftHeld    int
	rightHeld   int
	mouseX      int
	mouseActive bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		keyMapper:  NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		holdTicks:  core.Max(1, int(holdDuration*time.Duration(cfg.TickRate)/time.Second)),
	}
	for _, opt := range opts {
		opt(&m)
	}

	// Reset here so the first View has something to draw
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionLeft:
		m.leftHeld = m.holdTicks
		m.rightHeld = 0
	case core.ActionRight:
		m.rightHeld = m.holdTicks
		m.leftHeld = 0
	case core.ActionBack:
		if !m.menuReturn {
			m.quitting = true
			return m, tea.Quit
		}
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
		}
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleMouse turns horizontal mouse travel into pointer input.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionMotion {
		return m, nil
	}
	if m.mouseActive {
		m.inputFrame.AddPointer(float64(msg.X-m.mouseX) * mouseCellUnits)
	}
	m.mouseX = msg.X
	m.mouseActive = true
	return m, nil
}

// handleResize processes window resize events.
// The ring is laid out from the screen size on every frame, so the run
// continues across resizes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.newRecord = false
		m.leftHeld, m.rightHeld = 0, 0
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	if m.leftHeld > 0 {
		m.inputFrame.Set(core.ActionLeft)
		m.leftHeld--
	}
	if m.rightHeld > 0 {
		m.inputFrame.Set(core.ActionRight)
		m.rightHeld--
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.sound != nil {
		for _, e := range result.Events {
			m.sound.Play(e)
		}
	}

	// Save run on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRun persists the finished run and notes whether it beat the stored
// best score or level. Failures are logged and ignored.
func (m *Model) saveRun() {
	m.newRecord = false
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	id := m.game.ID()
	prevScore, errScore := m.store.HighScore(id)
	prevLevel, errLevel := m.store.BestLevel(id)

	if _, err := m.store.SaveRun(id, m.gameState.Score, m.gameState.Level); err != nil {
		if m.logger != nil {
			m.logger.Warn("could not save run", "game", id, "error", err)
		}
		return
	}

	m.newRecord = (errScore == nil && m.gameState.Score > prevScore) ||
		(errLevel == nil && m.gameState.Level > prevLevel)
	if m.logger != nil {
		m.logger.Debug("run saved", "game", id, "score", m.gameState.Score,
			"level", m.gameState.Level, "record", m.newRecord)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".turnbounce", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.newRecord && m.gameState.GameOver {
		const banner = "★ NEW BEST ★"
		x := (m.screen.Width() - utf8.RuneCountInString(banner)) / 2
		m.screen.DrawTextColored(x, m.screen.Height()/2+3, banner, core.ColorYellow)
	}
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// NewRecord reports whether the last saved run set a new best score or level.
func (m Model) NewRecord() bool {
	return m.newRecord
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Motion without a button turns the ring
	)

	_, err := p.Run()
	return err
}

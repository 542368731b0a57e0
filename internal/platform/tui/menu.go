package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/turnbounce/internal/config"
	"github.com/vovakirdan/turnbounce/internal/core"
	"github.com/vovakirdan/turnbounce/internal/registry"
	"github.com/vovakirdan/turnbounce/internal/storage"
)

// difficulties is the cycle order for the menu's difficulty switch.
var difficulties = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
}

// describer is implemented by games that offer a one-line menu blurb.
type describer interface {
	Description() string
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	cardStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).Padding(0, 2).Width(46)
	cardActiveStyle = cardStyle.BorderForeground(lipgloss.Color("57"))
	pillStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	pillActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// MenuItem is one variant on the picker.
type MenuItem struct {
	GameID    string
	Title     string
	Blurb     string
	BestScore int
	BestLevel int
}

// MenuModel picks a variant and a difficulty, or opens the scoreboard.
type MenuModel struct {
	items      []MenuItem
	cursor     int
	difficulty int // Index into difficulties
	width      int
	height     int
	config     core.RuntimeConfig
	keyMapper  *KeyMapper

	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel lists every registered variant with its best run.
// An unknown difficulty starts the switch at normal.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, difficulty string) MenuModel {
	var best map[string]*storage.GameStats
	if store != nil {
		best, _ = store.GetAllGamesStats()
	}

	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		item := MenuItem{GameID: g.ID, Title: g.Title}
		if game, err := registry.Create(g.ID); err == nil {
			if d, ok := game.(describer); ok {
				item.Blurb = d.Description()
			}
		}
		if st, ok := best[g.ID]; ok {
			item.BestScore, item.BestLevel = st.HighScore, st.BestLevel
		}
		items = append(items, item)
	}

	m := MenuModel{
		items:      items,
		difficulty: 1,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
	}
	for i, d := range difficulties {
		if string(d) == difficulty {
			m.difficulty = i
		}
	}
	return m
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	}
	return m, nil
}

// handleKey ends the menu with tea.Quit once a choice is made; callers
// read Selected, WantsScoreboard or IsQuitting to see which.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(difficulties)

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = core.Max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = core.Clamp(m.cursor+1, 0, len(m.items)-1)
	case MenuActionDifficulty:
		m.difficulty = (m.difficulty + 1) % n
	case MenuActionDifficultyPrev:
		m.difficulty = (m.difficulty + n - 1) % n
	case MenuActionSelect:
		if len(m.items) > 0 {
			item := m.items[m.cursor]
			m.selected = &item
			return m, tea.Quit
		}
	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerStyled(menuTitleStyle, "T U R N   &   B O U N C E", m.width))
	b.WriteString("\n")
	b.WriteString(centerStyled(menuDimStyle, "Turn the ring so the ball lands on its own color", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		b.WriteString(centerBlock(m.card(item, i == m.cursor), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.difficultyRow(), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerStyled(menuDimStyle,
		"↑/↓ variant  ←/→ difficulty  enter play  tab scores  q quit", m.width))
	b.WriteString("\n")
	return b.String()
}

func (m MenuModel) card(item MenuItem, active bool) string {
	title, style := item.Title, cardStyle
	if active {
		title, style = menuTitleStyle.Render("> "+item.Title), cardActiveStyle
	}

	lines := []string{title}
	if item.Blurb != "" {
		lines = append(lines, menuDimStyle.Render(item.Blurb))
	}
	if item.BestScore > 0 {
		lines = append(lines, fmt.Sprintf("best %d bounces, level %d", item.BestScore, item.BestLevel))
	} else {
		lines = append(lines, menuDimStyle.Render("no runs yet"))
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (m MenuModel) difficultyRow() string {
	parts := []string{"Difficulty"}
	for i, d := range difficulties {
		if i == m.difficulty {
			parts = append(parts, pillActiveStyle.Render("["+string(d)+"]"))
		} else {
			parts = append(parts, pillStyle.Render(" "+string(d)+" "))
		}
	}
	return strings.Join(parts, " ")
}

// Selected returns the chosen variant, or nil if none was chosen.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Difficulty returns the chosen difficulty preset name.
func (m MenuModel) Difficulty() string {
	return string(difficulties[m.difficulty])
}

func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the runtime config, updated by resizes.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText pads text on the left to center it within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// centerStyled renders text in style and centers the result.
func centerStyled(style lipgloss.Style, text string, width int) string {
	return centerText(style.Render(text), width)
}

// centerBlock centers a multi-line block as a unit.
func centerBlock(block string, width int) string {
	pad := (width - lipgloss.Width(block)) / 2
	if pad <= 0 {
		return block
	}
	return lipgloss.NewStyle().MarginLeft(pad).Render(block)
}

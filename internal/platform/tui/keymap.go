package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/turnbounce/internal/core"
)

// gameKeys binds key names, as reported by tea.KeyMsg.String, to actions
// during a run. Quit keys are handled separately.
var gameKeys = map[string]core.Action{
	"left": core.ActionLeft, "a": core.ActionLeft, "h": core.ActionLeft,
	"right": core.ActionRight, "d": core.ActionRight, "l": core.ActionRight,
	"p": core.ActionPause, " ": core.ActionPause, "esc": core.ActionPause,
	"r": core.ActionRestart,
	"b": core.ActionBack,
}

var quitKeys = map[string]bool{"q": true, "ctrl+c": true}

// KeyMapper translates Bubble Tea key messages into actions.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey returns the action bound to msg, which may be ActionNone,
// and whether msg asks to quit.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := msg.String()
	if quitKeys[k] {
		return core.ActionQuit, true
	}
	return gameKeys[k], false
}

// MapKeyToFrame sets the bound action on frame and reports a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction is an action on the variant picker.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
	MenuActionDifficulty     // Next harder preset, wrapping
	MenuActionDifficultyPrev // Next easier preset, wrapping
)

var menuKeys = map[string]MenuAction{
	"ctrl+c": MenuActionQuit, "q": MenuActionQuit,
	"up": MenuActionUp, "w": MenuActionUp, "k": MenuActionUp,
	"down": MenuActionDown, "s": MenuActionDown, "j": MenuActionDown,
	"enter": MenuActionSelect, " ": MenuActionSelect,
	"esc": MenuActionBack, "b": MenuActionBack,
	"tab": MenuActionScoreboard,
	"right": MenuActionDifficulty, "d": MenuActionDifficulty,
	"left": MenuActionDifficultyPrev, "a": MenuActionDifficultyPrev,
}

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	return menuKeys[msg.String()]
}

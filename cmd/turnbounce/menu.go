package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/turnbounce/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the game picker menu",
	Long: `Start in interactive menu mode.

Pick a variant and difficulty, play, and come back to the menu when the
run is over. Tab opens the scoreboard.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change difficulty
  Enter        - Play
  Tab          - Scoreboard
  Q            - Quit

Examples:
  turnbounce menu
  turnbounce menu --difficulty easy
  turnbounce menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	opts := tui.SessionOptions{
		Difficulty: flagDifficulty,
		Logger:     logger,
	}
	if opts.Difficulty == "" {
		opts.Difficulty = "normal"
	}
	if sm := openSound(); sm != nil {
		defer sm.Cleanup()
		opts.Sound = sm
	}

	if err := tui.RunSession(store, runtimeConfig(), opts); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/turnbounce/internal/games/turnbounce"
	"github.com/vovakirdan/turnbounce/internal/platform/tui"
	"github.com/vovakirdan/turnbounce/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal. The game defaults to "turnbounce".

Controls:
  Left/Right, A/D, H/L - Turn the ring
  Mouse motion         - Turn the ring
  P/Space/Esc          - Pause
  R                    - Restart (after game over)
  Ctrl+S               - Save a screenshot
  Q/Ctrl+C             - Quit

Difficulty options:
  easy   - Gentler gravity (x 0.8)
  normal - Config values as written
  hard   - Heavier gravity (x 1.3)

Examples:
  turnbounce play
  turnbounce play turnbounce_classic
  turnbounce play --difficulty hard --sound
  turnbounce play --config ./my-turnbounce.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

// gameFromArgs creates the requested variant, or the default one.
func gameFromArgs(args []string) (registry.Game, error) {
	gameID := turnbounce.GameID
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return nil, fmt.Errorf("unknown game %q, run 'turnbounce list' to see available games", gameID)
	}
	return registry.Create(gameID)
}

func runPlay(_ *cobra.Command, args []string) error {
	game, err := gameFromArgs(args)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	opts := []tui.Option{tui.WithLogger(logger)}
	if sm := openSound(); sm != nil {
		defer sm.Cleanup()
		opts = append(opts, tui.WithSound(sm))
	}

	if err := tui.Run(game, store, runtimeConfig(), opts...); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

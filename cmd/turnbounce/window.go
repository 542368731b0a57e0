package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/turnbounce/internal/games/turnbounce"
	"github.com/vovakirdan/turnbounce/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window [game]",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play there.

Controls:
  Left/Right, A/D - Turn the ring
  Mouse motion    - Turn the ring
  P/Space         - Pause
  R               - Restart (after game over)
  Esc/Q           - Quit

Examples:
  turnbounce window
  turnbounce window turnbounce_classic --sound`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, args []string) error {
	g, err := gameFromArgs(args)
	if err != nil {
		return err
	}
	game, ok := g.(*turnbounce.Game)
	if !ok {
		return fmt.Errorf("game %q cannot run in a window", g.ID())
	}

	opts := window.Options{
		Config: runtimeConfig(),
		Logger: logger,
	}
	if store := openStore(); store != nil {
		defer store.Close()
		opts.Store = store
	}
	if sm := openSound(); sm != nil {
		defer sm.Cleanup()
		opts.Sound = sm
	}

	return window.Run(game, opts)
}

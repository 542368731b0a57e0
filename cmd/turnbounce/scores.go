package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/turnbounce/internal/platform/tui"
	"github.com/vovakirdan/turnbounce/internal/registry"
	"github.com/vovakirdan/turnbounce/internal/storage"
)

var (
	flagScoresLimit int
	flagInteractive bool
	flagClear       bool
	flagAll         bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show best runs for a game",
	Long: `Display the best runs for the specified game, ranked by bounces
and then by level reached.

Examples:
  turnbounce scores
  turnbounce scores turnbounce_classic --limit 25
  turnbounce scores --all
  turnbounce scores --interactive
  turnbounce scores turnbounce --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse all games in the scoreboard view")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all runs for the game")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "Show every recorded run, ignoring --limit")
}

func runScores(_ *cobra.Command, args []string) error {
	game, err := gameFromArgs(args)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(game.ID()); err != nil {
			return err
		}
		fmt.Printf("Cleared runs for %s.\n", game.Title())
		return nil
	}

	if flagInteractive {
		return runInteractiveScores(store)
	}

	return printScores(store, game)
}

func runInteractiveScores(store *storage.Store) error {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	if _, err := tui.RunScoreboard(store, width, height); err != nil {
		return fmt.Errorf("running scoreboard: %w", err)
	}
	return nil
}

func printScores(store *storage.Store, game registry.Game) error {
	var runs []storage.RunEntry
	var err error
	if flagAll {
		runs, err = store.AllRuns(game.ID())
	} else {
		runs, err = store.TopRuns(game.ID(), flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Printf("Best Runs - %s\n", game.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'turnbounce play %s' to set the first one!\n", game.ID())
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %s\n", "Rank", "Bounces", "Level", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %s\n", "----", "-------", "-----", "----")

	for i, run := range runs {
		fmt.Printf("  %-4d  %-8d  %-5d  %s\n", i+1, run.Score, run.Level, run.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(game.ID()); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d bounces, level %d, over %d runs\n", stats.HighScore, stats.BestLevel, stats.GamesCount)
	}
	return nil
}

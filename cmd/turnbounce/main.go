// turnbounce is Turn & Bounce: turn a ring of six colored blocks so the
// bouncing ball always lands on its own color.
//
// Usage:
//
//	turnbounce list              - List game variants
//	turnbounce play [game]       - Play in the terminal
//	turnbounce menu              - Menu, game and scoreboard in one session
//	turnbounce window [game]     - Play in a desktop window
//	turnbounce serve             - Start SSH server for remote play
//	turnbounce scores <game>     - Show best runs for a game
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 120)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.turnbounce/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal or hard
//	--sound               - Play audio cues
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/turnbounce/internal/audio"
	"github.com/vovakirdan/turnbounce/internal/config"
	"github.com/vovakirdan/turnbounce/internal/core"
	"github.com/vovakirdan/turnbounce/internal/games/turnbounce"
	"github.com/vovakirdan/turnbounce/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagSound      bool
	flagVolume     float64
	flagLogLevel   string
)

// logger is built from --log-level before any command runs.
var logger *log.Logger

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "turnbounce",
	Short: "Turn & Bounce - keep the ball bouncing on its own color",
	Long: `Turn & Bounce puts a ball above a ring of six colored blocks.
Turn the ring so that a block of the ball's color is underneath each time
the ball comes down. Every bounce recolors the ring and the ball. Bounce
as many times as your level to level up; gravity grows with each level.

Available commands:
  list     - Show game variants
  play     - Play in the terminal
  menu     - Menu, game and scoreboard in one session
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View best runs

Examples:
  turnbounce play
  turnbounce play turnbounce_classic --difficulty hard
  turnbounce window --sound
  turnbounce serve --ssh :2222
  turnbounce scores turnbounce`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger = log.NewWithOptions(os.Stderr, log.Options{
			Level:  level,
			Prefix: "turnbounce",
		})

		// An explicit config must load; games fall back to defaults silently
		if flagConfig != "" {
			if _, err := config.Load(flagConfig); err != nil {
				return err
			}
		}
		if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
			logger.Warn("unknown difficulty, using the config default", "difficulty", flagDifficulty)
		}

		turnbounce.SetConfigPath(flagConfig)
		turnbounce.SetDifficultyPreset(flagDifficulty)
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", core.DefaultTickRate, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.turnbounce/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.BoolVar(&flagSound, "sound", false, "Play audio cues")
	pf.Float64Var(&flagVolume, "volume", 0.6, "Audio volume from 0 to 1")
	pf.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// runtimeConfig builds the runtime config from the global flags and the
// terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the runs database. A failure is logged and the game
// runs without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, runs will not be saved", "error", err)
		return nil
	}
	return store
}

// openSound starts audio when --sound is set. It returns nil when audio is
// off or unavailable.
func openSound() *audio.SoundManager {
	if !flagSound {
		return nil
	}
	sm := audio.NewSoundManager(flagVolume)
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio unavailable, playing silently", "error", err)
		return nil
	}
	return sm
}

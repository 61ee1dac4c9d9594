package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/game"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/scoreboard"
)

var (
	flagDifficulty string
	flagTheme      string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Space Invaders",
	Long: `Start the game on the main menu.

Controls:
  Left/Right/h/l  - Move ship
  Space           - Fire
  P               - Pause
  R               - Restart
  Esc/B           - Back to menu
  Ctrl+S          - Screenshot
  Q/Ctrl+C        - Quit

Difficulty options:
  easy    - 3x6 aliens, slow swarm, rare obstacles
  medium  - 5x8 aliens, 1.5x points
  hard    - 7x10 aliens, fast swarm, frequent obstacles, 2x points

Themes: classic, neon, sunset, ocean, forest

Examples:
  invaders play
  invaders play --difficulty hard
  invaders play --theme sunset --store sqlite
  invaders play --config ./my-invaders.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the settings flags shared by root and play.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "medium", "Starting difficulty: easy, medium, hard")
	cmd.Flags().StringVar(&flagTheme, "theme", "classic", "Starting theme: classic, neon, sunset, ocean, forest")
}

func runPlay(_ *cobra.Command, _ []string) {
	difficulty, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	theme, err := config.ParseTheme(flagTheme)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger("invaders", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	world := loadWorld()

	// Open score storage
	store, err := openStore(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores: %v\n", err)
		// Continue without persistence - game still works
		store = scoreboard.NewStore(nil, scoreboard.WithLogger(logger))
	}
	//nolint:errcheck // Best-effort close on exit
	defer store.Close()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed(),
	}

	machine := game.NewMachine(world, store,
		game.WithSeed(cfg.Seed),
		game.WithDifficulty(difficulty),
		game.WithTheme(theme),
		game.WithLogger(logger),
	)

	logger.Info("starting", "difficulty", difficulty, "theme", theme, "store", flagStore, "seed", cfg.Seed)

	if err := tui.Run(machine, cfg, tui.Options{ScreenshotDir: screenshotDir()}); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
